package store

import "github.com/devtinder/web/internal/services/web/api"

// SessionState is the signed-in user, or absent.
type SessionState struct {
	user *api.User
}

// Present reports whether a user is signed in.
func (s SessionState) Present() bool { return s.user != nil }

// User returns a copy of the signed-in user.
func (s SessionState) User() (api.User, bool) {
	if s.user == nil {
		return api.User{}, false
	}
	return cloneUser(*s.user), true
}

// Identity returns the signed-in user id, or "" when absent.
func (s SessionState) Identity() string {
	if s.user == nil {
		return ""
	}
	return s.user.ID
}

// WithUser replaces the session user wholesale.
func (s SessionState) WithUser(user api.User) SessionState {
	u := cloneUser(user)
	return SessionState{user: &u}
}

// Cleared returns the absent session.
func (s SessionState) Cleared() SessionState { return SessionState{} }

// MergeProfile applies a saved profile edit over user. Fields absent from the
// edit keep their previous value; skills are always replaced.
func MergeProfile(user api.User, edit api.ProfileEdit) api.User {
	merged := cloneUser(user)
	merged.FirstName = edit.FirstName
	merged.LastName = edit.LastName
	if edit.Age != 0 {
		merged.Age = edit.Age
	}
	if edit.Gender != "" {
		merged.Gender = edit.Gender
	}
	if edit.PhotoURL != "" {
		merged.PhotoURL = edit.PhotoURL
	}
	merged.About = edit.About
	merged.Skills = append([]string(nil), edit.Skills...)
	return merged
}

func cloneUser(user api.User) api.User {
	if user.Skills != nil {
		user.Skills = append([]string(nil), user.Skills...)
	}
	return user
}
