package session

import (
	"context"

	"github.com/Klea008/bookctl/internal/api"
)

// Roles the auth service assigns.
const (
	RoleAdmin    = "admin"
	RoleCustomer = "customer"
)

// Auth is the slice of the API client the store drives.
type Auth interface {
	Profile(ctx context.Context) (*api.User, string, error)
	Login(ctx context.Context, email, password string) (*api.User, string, error)
	Signup(ctx context.Context, fullName, email, password string) (*api.User, string, error)
	Logout(ctx context.Context) (string, error)
}

// Store holds the current authenticated user, or none. It starts in the
// checking state until the first profile check resolves. Only the UI
// event loop touches it, one handler at a time.
type Store struct {
	auth     Auth
	user     *api.User
	checking bool
	notice   string
}

// NewStore creates a store in the checking state.
func NewStore(auth Auth) *Store {
	return &Store{auth: auth, checking: true}
}

// CheckAuth issues one profile check. Success authenticates; any error
// resolves to anonymous. The checking flag never survives the call.
func (s *Store) CheckAuth(ctx context.Context) {
	s.checking = true
	defer func() { s.checking = false }()

	user, _, err := s.auth.Profile(ctx)
	if err != nil {
		s.user = nil
		return
	}
	s.user = user
}

// Login exchanges credentials for a session. On failure the state is
// unchanged and the error is returned for the caller to report.
func (s *Store) Login(ctx context.Context, email, password string) error {
	user, msg, err := s.auth.Login(ctx, email, password)
	if err != nil {
		return err
	}
	s.user = user
	s.notice = msg
	return nil
}

// Signup creates an account and authenticates as it.
func (s *Store) Signup(ctx context.Context, fullName, email, password string) error {
	user, msg, err := s.auth.Signup(ctx, fullName, email, password)
	if err != nil {
		return err
	}
	s.user = user
	s.notice = msg
	return nil
}

// Logout invalidates the server session. The store goes anonymous
// regardless of the call outcome; the error is returned for logging.
func (s *Store) Logout(ctx context.Context) error {
	msg, err := s.auth.Logout(ctx)
	s.user = nil
	if err == nil {
		s.notice = msg
	}
	return err
}

// User returns the authenticated user, or nil.
func (s *Store) User() *api.User { return s.user }

// Checking reports whether the startup profile check is in flight.
func (s *Store) Checking() bool { return s.checking }

// Authenticated reports whether a user is logged in.
func (s *Store) Authenticated() bool { return s.user != nil }

// IsAdmin reports whether the current user has the admin role.
func (s *Store) IsAdmin() bool {
	return s.user != nil && s.user.Role == RoleAdmin
}

// TakeNotice returns and clears the last server message, for toast display.
func (s *Store) TakeNotice() string {
	n := s.notice
	s.notice = ""
	return n
}

// Landing names the destination a user hitting the login route should
// be redirected to: admins manage the paginated view, other users get
// the plain list, anonymous users stay on login.
func (s *Store) Landing() string {
	switch {
	case s.IsAdmin():
		return "paged"
	case s.Authenticated():
		return "browse"
	default:
		return "login"
	}
}
