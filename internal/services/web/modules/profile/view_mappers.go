package profile

import (
	"strconv"
	"strings"

	webtemplates "github.com/devtinder/web/internal/services/web/templates"
)

// profileView echoes f into the form and renders the preview from the same
// values.
func profileView(f form, message string) webtemplates.ProfileView {
	age, _ := strconv.Atoi(strings.TrimSpace(f.Age))
	gender := strings.ToLower(strings.TrimSpace(f.Gender))
	return webtemplates.ProfileView{
		FirstName: f.FirstName,
		LastName:  f.LastName,
		Age:       age,
		Gender:    gender,
		PhotoURL:  f.PhotoURL,
		About:     f.About,
		Skills:    f.Skills,
		Error:     message,
		Preview: webtemplates.UserCardView{
			Name:     strings.TrimSpace(strings.TrimSpace(f.FirstName) + " " + strings.TrimSpace(f.LastName)),
			Age:      age,
			Gender:   gender,
			PhotoURL: strings.TrimSpace(f.PhotoURL),
			About:    f.About,
			Skills:   splitSkills(f.Skills),
		},
	}
}
