package auth

import (
	"context"
	"log"
	"strings"

	"github.com/devtinder/web/internal/services/web/api"
	apperrors "github.com/devtinder/web/internal/services/web/platform/errors"
	"github.com/devtinder/web/internal/services/web/websession"
)

// AuthGateway performs the upstream auth calls for one session.
type AuthGateway interface {
	Login(ctx context.Context, sess *websession.Session, creds api.Credentials) (api.User, error)
	Signup(ctx context.Context, sess *websession.Session, signup api.Signup) (api.User, error)
	Logout(ctx context.Context, sess *websession.Session) error
}

type service struct {
	gateway   AuthGateway
	sessions  Sessions
	onSignOut func(string)
	logger    *log.Logger
}

func newService(cfg Config) service {
	s := service{
		gateway:   cfg.Gateway,
		sessions:  cfg.Sessions,
		onSignOut: cfg.OnSignOut,
		logger:    cfg.Base.Logger(),
	}
	if s.gateway == nil {
		s.gateway = unavailableGateway{}
	}
	if s.logger == nil {
		s.logger = log.Default()
	}
	return s
}

func validateLogin(creds api.Credentials) error {
	if creds.EmailID == "" || creds.Password == "" {
		return apperrors.EK(apperrors.KindInvalidInput, "auth.error.missing_credentials", "email and password are required")
	}
	return nil
}

func validateSignup(signup api.Signup) error {
	if signup.EmailID == "" || signup.Password == "" || signup.FirstName == "" {
		return apperrors.EK(apperrors.KindInvalidInput, "auth.error.missing_signup", "email, password and first name are required")
	}
	return nil
}

// authenticate runs call against sess, or against a fresh session when sess
// is nil. A fresh session that fails to sign in is discarded. The returned
// session holds the signed-in user.
func (s service) authenticate(ctx context.Context, sess *websession.Session, op string, call func(*websession.Session) (api.User, error)) (*websession.Session, error) {
	created := false
	if sess == nil {
		if s.sessions == nil {
			return nil, errUnavailable
		}
		fresh, err := s.sessions.Create(ctx)
		if err != nil {
			s.logger.Printf("%s session create failed err=%v", op, err)
			return nil, apperrors.E(apperrors.KindUnavailable, "create web session")
		}
		sess, created = fresh, true
	}
	user, err := call(sess)
	if err == nil && strings.TrimSpace(user.ID) == "" {
		err = apperrors.E(apperrors.KindUnknown, "upstream returned no user")
	}
	if err != nil {
		s.logger.Printf("%s failed session=%s err=%v", op, sess.ID, err)
		if created {
			s.sessions.Discard(ctx, sess.ID)
		}
		return nil, err
	}
	sess.Store.SetUser(user)
	s.logger.Printf("%s succeeded session=%s user=%s", op, sess.ID, user.ID)
	return sess, nil
}

func (s service) login(ctx context.Context, sess *websession.Session, creds api.Credentials) (*websession.Session, error) {
	if err := validateLogin(creds); err != nil {
		return nil, err
	}
	return s.authenticate(ctx, sess, "login", func(target *websession.Session) (api.User, error) {
		return s.gateway.Login(ctx, target, creds)
	})
}

func (s service) signup(ctx context.Context, sess *websession.Session, signup api.Signup) (*websession.Session, error) {
	if err := validateSignup(signup); err != nil {
		return nil, err
	}
	return s.authenticate(ctx, sess, "signup", func(target *websession.Session) (api.User, error) {
		return s.gateway.Signup(ctx, target, signup)
	})
}

// logout signs sess out upstream. Local state is only dropped once the API
// confirms.
func (s service) logout(ctx context.Context, sess *websession.Session) error {
	if !sess.SignedIn() {
		return apperrors.EK(apperrors.KindUnauthorized, "auth.notice.session_expired", "sign in required")
	}
	if err := s.gateway.Logout(ctx, sess); err != nil {
		s.logger.Printf("logout failed session=%s err=%v", sess.ID, err)
		return err
	}
	sess.Store.ClearUser()
	if s.onSignOut != nil {
		s.onSignOut(sess.ID)
	}
	if s.sessions != nil {
		s.sessions.Discard(ctx, sess.ID)
	}
	return nil
}
