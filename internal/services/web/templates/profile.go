package templates

import (
	"github.com/a-h/templ"

	"github.com/devtinder/web/internal/services/web/routepath"
)

// genders lists the selectable profile genders in display order.
var genders = []string{"male", "female", "other"}

// ProfileView holds the edit form values and the live preview.
type ProfileView struct {
	FirstName string
	LastName  string
	Age       int
	Gender    string
	PhotoURL  string
	About     string
	Skills    string
	Error     string
	Preview   UserCardView
}

// ProfileForm renders the edit form next to a preview card.
func ProfileForm(loc Localizer, view ProfileView) templ.Component {
	return component(func(h *html) {
		h.element("h1", "", T(loc, "title.profile"))
		h.open("div", "profile")

		h.raw(`<form class="form card card-body" method="post"`)
		h.url("action", routepath.AppProfile)
		h.raw(">")
		input(h, T(loc, "profile.photo_url"), "url", "photoUrl", view.PhotoURL, "photo")
		input(h, T(loc, "profile.first_name"), "text", "firstName", view.FirstName, "given-name")
		input(h, T(loc, "profile.last_name"), "text", "lastName", view.LastName, "family-name")
		input(h, T(loc, "profile.age"), "number", "age", itoa(view.Age), "off")
		genderSelect(h, loc, view.Gender)
		h.raw("<label>")
		h.text(T(loc, "profile.about"))
		h.raw(`<textarea name="about" rows="3">`)
		h.text(view.About)
		h.raw("</textarea></label>")
		input(h, T(loc, "profile.skills"), "text", "skills", view.Skills, "off")
		formError(h, view.Error)
		h.raw(`<button type="submit">`)
		h.text(T(loc, "profile.save"))
		h.raw("</button>")
		h.close("form")

		h.open("section", "preview")
		h.element("h2", "", T(loc, "profile.preview"))
		h.render(UserCard(loc, view.Preview, nil))
		h.close("section")

		h.close("div")
	})
}

func genderSelect(h *html, loc Localizer, selected string) {
	if selected == "" {
		selected = genders[0]
	}
	h.raw("<label>")
	h.text(T(loc, "profile.gender"))
	h.raw(`<select name="gender">`)
	for _, gender := range genders {
		h.raw("<option")
		h.attr("value", gender)
		if gender == selected {
			h.raw(" selected")
		}
		h.raw(">")
		h.text(T(loc, "profile.gender."+gender))
		h.raw("</option>")
	}
	h.raw("</select></label>")
}
