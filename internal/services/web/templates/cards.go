package templates

import (
	"strconv"
	"strings"

	"github.com/a-h/templ"
)

// Skill limits per card style.
const (
	FeedSkillLimit        = 7
	ConnectionsSkillLimit = 5
	RequestsSkillLimit    = 4
)

// UserCardView is the display shape of a profile.
type UserCardView struct {
	ID       string
	Name     string
	Age      int
	Gender   string
	PhotoURL string
	About    string
	Skills   []string
}

// ActionView is a POST button on a card.
type ActionView struct {
	Action   string
	Label    string
	Class    string
	Disabled bool
}

// UserCard renders the large feed card with the given actions.
func UserCard(loc Localizer, user UserCardView, actions []ActionView) templ.Component {
	return component(func(h *html) {
		h.open("article", "card user-card")
		h.raw("<img")
		h.url("src", photoOrPlaceholder(user.PhotoURL))
		h.attr("alt", user.Name)
		h.raw(">")
		h.open("div", "card-body")
		h.element("h2", "", user.Name)
		cardMeta(h, loc, user)
		if user.About != "" {
			h.element("p", "about", user.About)
		}
		skillList(h, user.Skills, FeedSkillLimit)
		actionRow(h, actions)
		h.close("div")
		h.close("article")
	})
}

// UserRow renders a compact list card used by connections and requests.
func UserRow(loc Localizer, user UserCardView, skillLimit int, actions []ActionView) templ.Component {
	return component(func(h *html) {
		h.raw(`<article class="card"`)
		if user.ID != "" {
			h.attr("data-id", user.ID)
		}
		h.raw("><img")
		h.url("src", photoOrPlaceholder(user.PhotoURL))
		h.attr("alt", user.Name)
		h.raw(">")
		h.open("div", "card-body")
		h.element("h2", "", user.Name)
		cardMeta(h, loc, user)
		if user.About != "" {
			h.element("p", "about", user.About)
		}
		skillList(h, user.Skills, skillLimit)
		h.close("div")
		actionRow(h, actions)
		h.close("article")
	})
}

func cardMeta(h *html, loc Localizer, user UserCardView) {
	var parts []string
	if user.Age > 0 {
		parts = append(parts, T(loc, "card.age", user.Age))
	}
	if user.Gender != "" {
		parts = append(parts, T(loc, "profile.gender."+user.Gender))
	}
	if len(parts) == 0 {
		return
	}
	h.element("p", "meta", strings.Join(parts, ", "))
}

func skillList(h *html, skills []string, limit int) {
	skills = truncateSkills(skills, limit)
	if len(skills) == 0 {
		return
	}
	h.open("ul", "skills")
	for _, skill := range skills {
		h.element("li", "", skill)
	}
	h.close("ul")
}

func actionRow(h *html, actions []ActionView) {
	if len(actions) == 0 {
		return
	}
	h.open("div", "actions")
	for _, action := range actions {
		h.raw(`<form method="post"`)
		h.url("action", action.Action)
		h.raw("><button")
		if action.Class != "" {
			h.attr("class", action.Class)
		}
		h.raw(` type="submit"`)
		if action.Disabled {
			h.raw(" disabled")
		}
		h.raw(">")
		h.text(action.Label)
		h.raw("</button></form>")
	}
	h.close("div")
}

func truncateSkills(skills []string, limit int) []string {
	if limit > 0 && len(skills) > limit {
		return skills[:limit]
	}
	return skills
}

func itoa(n int) string {
	if n <= 0 {
		return ""
	}
	return strconv.Itoa(n)
}
