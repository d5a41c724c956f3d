package profile

import (
	"context"
	"log"
	"strconv"
	"strings"

	"github.com/devtinder/web/internal/services/web/api"
	apperrors "github.com/devtinder/web/internal/services/web/platform/errors"
	"github.com/devtinder/web/internal/services/web/store"
	"github.com/devtinder/web/internal/services/web/websession"
)

// ProfileGateway saves profile edits upstream.
type ProfileGateway interface {
	EditProfile(ctx context.Context, sess *websession.Session, edit api.ProfileEdit) error
}

type service struct {
	gateway ProfileGateway
	logger  *log.Logger
}

func newService(gateway ProfileGateway, logger *log.Logger) service {
	if gateway == nil {
		gateway = unavailableGateway{}
	}
	if logger == nil {
		logger = log.Default()
	}
	return service{gateway: gateway, logger: logger}
}

// form is the raw profile form as submitted.
type form struct {
	FirstName string
	LastName  string
	Age       string
	Gender    string
	PhotoURL  string
	About     string
	Skills    string
}

func formFromUser(user api.User) form {
	f := form{
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Gender:    string(user.Gender),
		PhotoURL:  user.PhotoURL,
		About:     user.About,
		Skills:    strings.Join(user.Skills, ", "),
	}
	if user.Age > 0 {
		f.Age = strconv.Itoa(user.Age)
	}
	return f
}

// parseEdit validates f and builds the upstream edit. Gender defaults to
// male; empty optional fields are left out of the edit.
func parseEdit(f form) (api.ProfileEdit, error) {
	edit := api.ProfileEdit{
		FirstName: strings.TrimSpace(f.FirstName),
		LastName:  strings.TrimSpace(f.LastName),
		PhotoURL:  strings.TrimSpace(f.PhotoURL),
		About:     strings.TrimSpace(f.About),
		Skills:    splitSkills(f.Skills),
	}
	if edit.FirstName == "" {
		return api.ProfileEdit{}, apperrors.EK(apperrors.KindInvalidInput, "profile.error.first_name", "first name is required")
	}
	if raw := strings.TrimSpace(f.Age); raw != "" {
		age, err := strconv.Atoi(raw)
		if err != nil || age <= 0 {
			return api.ProfileEdit{}, apperrors.EK(apperrors.KindInvalidInput, "profile.error.age", "age must be a positive integer")
		}
		edit.Age = age
	}
	gender := api.GenderMale
	if raw := strings.TrimSpace(f.Gender); raw != "" {
		parsed, ok := api.ParseGender(raw)
		if !ok {
			return api.ProfileEdit{}, apperrors.EK(apperrors.KindInvalidInput, "profile.error.gender", "unknown gender")
		}
		gender = parsed
	}
	edit.Gender = gender
	return edit, nil
}

func splitSkills(raw string) []string {
	skills := []string{}
	for _, part := range strings.Split(raw, ",") {
		if skill := strings.TrimSpace(part); skill != "" {
			skills = append(skills, skill)
		}
	}
	return skills
}

func requireSignedIn(sess *websession.Session) error {
	if !sess.SignedIn() {
		return apperrors.EK(apperrors.KindUnauthorized, "auth.notice.session_expired", "sign in required")
	}
	return nil
}

// current returns the signed-in user.
func (s service) current(sess *websession.Session) (api.User, error) {
	if err := requireSignedIn(sess); err != nil {
		return api.User{}, err
	}
	user, ok := sess.Store.Session().User()
	if !ok {
		return api.User{}, apperrors.EK(apperrors.KindUnauthorized, "auth.notice.session_expired", "sign in required")
	}
	return user, nil
}

// save validates and sends the edit. On success the session user is
// replaced by the merged profile and returned.
func (s service) save(ctx context.Context, sess *websession.Session, f form) (api.User, error) {
	user, err := s.current(sess)
	if err != nil {
		return api.User{}, err
	}
	edit, err := parseEdit(f)
	if err != nil {
		return api.User{}, err
	}
	if err := s.gateway.EditProfile(ctx, sess, edit); err != nil {
		s.logger.Printf("profile save failed session=%s user=%s err=%v", sess.ID, user.ID, err)
		return api.User{}, err
	}
	merged := store.MergeProfile(user, edit)
	sess.Store.SetUser(merged)
	return merged, nil
}
