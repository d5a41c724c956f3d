package i18n

import "golang.org/x/text/message"

var messagesEN = map[string]string{
	"app.name":        "DevTinder",
	"nav.feed":        "Feed",
	"nav.connections": "Connections",
	"nav.requests":    "Requests",
	"nav.profile":     "Profile",
	"nav.logout":      "Logout",
	"nav.welcome":     "Welcome, %s",
	"nav.lang_en":     "EN",
	"nav.lang_pt_br":  "PT-BR",

	"title.login":       "Login",
	"title.signup":      "Sign up",
	"title.feed":        "Feed",
	"title.connections": "Connections",
	"title.requests":    "Connection Requests",
	"title.profile":     "Edit Profile",
	"title.error":       "Something went wrong",

	"auth.email":                     "Email ID",
	"auth.password":                  "Password",
	"auth.first_name":                "First Name",
	"auth.last_name":                 "Last Name",
	"auth.login":                     "Login",
	"auth.signup":                    "Sign up",
	"auth.to_signup":                 "New user? Sign up here",
	"auth.to_login":                  "Existing user? Login here",
	"auth.error.missing_credentials": "Please enter both email and password.",
	"auth.error.missing_signup":      "Please enter email, password and first name.",
	"auth.error.failed":              "Invalid credentials or server error.",
	"auth.error.logout_failed":       "Logout failed. Please try again.",
	"auth.notice.signed_out":         "You have been logged out.",
	"auth.notice.session_expired":    "Your session has expired. Please log in again.",

	"feed.loading":    "Loading feed...",
	"feed.empty":      "No new users found!",
	"feed.interested": "Interested",
	"feed.ignore":     "Ignore",

	"connections.loading": "Loading connections...",
	"connections.empty":   "No Connections Found",

	"requests.loading":              "Loading requests...",
	"requests.empty":                "No Requests Found",
	"requests.accept":               "Accept",
	"requests.reject":               "Reject",
	"requests.working":              "Working...",
	"requests.notice.accepted":      "Accepted connection!",
	"requests.notice.rejected":      "Rejected connection!",
	"requests.notice.accept_failed": "Failed to accept request.",
	"requests.notice.reject_failed": "Failed to reject request.",
	"requests.error.in_flight":      "This request is already being reviewed.",

	"profile.first_name":       "First Name",
	"profile.last_name":        "Last Name",
	"profile.age":              "Age",
	"profile.gender":           "Gender",
	"profile.gender.male":      "Male",
	"profile.gender.female":    "Female",
	"profile.gender.other":     "Other",
	"profile.photo_url":        "Photo URL",
	"profile.about":            "About",
	"profile.skills":           "Skills (comma separated)",
	"profile.save":             "Save Profile",
	"profile.preview":          "Preview",
	"profile.notice.saved":     "Profile updated successfully!",
	"profile.error.failed":     "Failed to save profile. Check server connection.",
	"profile.error.first_name": "First name is required.",
	"profile.error.age":        "Age must be a positive number.",
	"profile.error.gender":     "Gender must be male, female or other.",

	"card.age": "Age: %d",

	"error.unavailable": "The DevTinder service is unavailable right now.",
	"error.not_found":   "Page not found.",
	"error.generic":     "Something went wrong. Please try again.",
}

func init() {
	for key, value := range messagesEN {
		_ = message.SetString(english, key, value)
	}
}
