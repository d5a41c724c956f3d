package api

import (
	"strings"
)

// Gender is the profile gender enum accepted by the DevTinder API.
type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
	GenderOther  Gender = "other"
)

// ParseGender normalizes a form value into a Gender.
func ParseGender(value string) (Gender, bool) {
	switch Gender(strings.ToLower(strings.TrimSpace(value))) {
	case GenderMale:
		return GenderMale, true
	case GenderFemale:
		return GenderFemale, true
	case GenderOther:
		return GenderOther, true
	default:
		return "", false
	}
}

// User is the profile shape shared by the session, feed and connections.
type User struct {
	ID        string   `json:"_id"`
	EmailID   string   `json:"emailID,omitempty"`
	FirstName string   `json:"firstName"`
	LastName  string   `json:"lastName,omitempty"`
	Age       int      `json:"age,omitempty"`
	Gender    Gender   `json:"gender,omitempty"`
	PhotoURL  string   `json:"photoUrl,omitempty"`
	About     string   `json:"about,omitempty"`
	Skills    []string `json:"skills,omitempty"`
}

// Key returns the user identifier used for cache removal.
func (u User) Key() string {
	return strings.TrimSpace(u.ID)
}

// FullName joins first and last name the way cards display them.
func (u User) FullName() string {
	return strings.TrimSpace(strings.TrimSpace(u.FirstName) + " " + strings.TrimSpace(u.LastName))
}

// PendingRequest wraps the sender of an incoming connection request.
type PendingRequest struct {
	ID       string `json:"_id"`
	FromUser User   `json:"fromUserId"`
}

// Key returns the request identifier used for cache removal.
func (r PendingRequest) Key() string {
	return strings.TrimSpace(r.ID)
}

// Decision is the viewer's verdict on a feed candidate.
type Decision string

const (
	DecisionInterested Decision = "interested"
	DecisionIgnored    Decision = "ignored"
)

// ParseDecision validates a feed decision path value.
func ParseDecision(value string) (Decision, bool) {
	switch Decision(strings.ToLower(strings.TrimSpace(value))) {
	case DecisionInterested:
		return DecisionInterested, true
	case DecisionIgnored:
		return DecisionIgnored, true
	default:
		return "", false
	}
}

// ReviewStatus is the terminal state of a reviewed pending request.
type ReviewStatus string

const (
	ReviewAccepted ReviewStatus = "accepted"
	ReviewRejected ReviewStatus = "rejected"
)

// Credentials carries the login payload. The wire field is emailID.
type Credentials struct {
	EmailID  string `json:"emailID"`
	Password string `json:"password"`
}

// Signup carries the account creation payload.
type Signup struct {
	EmailID   string `json:"emailID"`
	Password  string `json:"password"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

// ProfileEdit is the partial update sent to PATCH /profile/edit. Empty
// optional fields are omitted so the server keeps its stored value.
type ProfileEdit struct {
	FirstName string   `json:"firstName"`
	LastName  string   `json:"lastName"`
	Age       int      `json:"age,omitempty"`
	Gender    Gender   `json:"gender,omitempty"`
	PhotoURL  string   `json:"photoUrl,omitempty"`
	About     string   `json:"about,omitempty"`
	Skills    []string `json:"skills"`
}
