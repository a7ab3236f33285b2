package session_test

import (
	"context"
	"errors"
	"testing"

	"github.com/Klea008/bookctl/internal/api"
	"github.com/Klea008/bookctl/internal/session"
)

type fakeAuth struct {
	user *api.User
	msg  string
	err  error
}

func (f *fakeAuth) Profile(ctx context.Context) (*api.User, string, error) {
	return f.user, f.msg, f.err
}

func (f *fakeAuth) Login(ctx context.Context, email, password string) (*api.User, string, error) {
	return f.user, f.msg, f.err
}

func (f *fakeAuth) Signup(ctx context.Context, fullName, email, password string) (*api.User, string, error) {
	return f.user, f.msg, f.err
}

func (f *fakeAuth) Logout(ctx context.Context) (string, error) {
	return f.msg, f.err
}

func TestCheckAuth_Success(t *testing.T) {
	u := &api.User{ID: "u1", FullName: "Ada", Role: session.RoleCustomer}
	s := session.NewStore(&fakeAuth{user: u})

	if !s.Checking() {
		t.Error("new store should start in the checking state")
	}
	s.CheckAuth(context.Background())

	if s.Checking() {
		t.Error("Checking still true after CheckAuth")
	}
	if got := s.User(); got != u {
		t.Errorf("User = %v, want %v", got, u)
	}
}

func TestCheckAuth_ErrorResolvesAnonymous(t *testing.T) {
	s := session.NewStore(&fakeAuth{err: errors.New("no session")})
	s.CheckAuth(context.Background())

	if s.Checking() {
		t.Error("Checking still true after failed CheckAuth")
	}
	if s.Authenticated() {
		t.Error("Authenticated = true, want anonymous after profile error")
	}
}

func TestLogin_FailureLeavesStateUnchanged(t *testing.T) {
	auth := &fakeAuth{err: errors.New("bad credentials")}
	s := session.NewStore(auth)
	s.CheckAuth(context.Background())

	if err := s.Login(context.Background(), "a@b.c", "pw"); err == nil {
		t.Fatal("Login returned nil error, want failure")
	}
	if s.Authenticated() {
		t.Error("failed login authenticated the store")
	}
	if s.TakeNotice() != "" {
		t.Error("failed login left a notice")
	}
}

func TestLogin_SuccessSetsUserAndNotice(t *testing.T) {
	auth := &fakeAuth{user: &api.User{ID: "u1", Role: session.RoleAdmin}, msg: "Login successful"}
	s := session.NewStore(auth)

	if err := s.Login(context.Background(), "a@b.c", "pw"); err != nil {
		t.Fatalf("Login: %v", err)
	}
	if !s.IsAdmin() {
		t.Error("IsAdmin = false, want true")
	}
	if got, want := s.TakeNotice(), "Login successful"; got != want {
		t.Errorf("TakeNotice = %q, want %q", got, want)
	}
	if s.TakeNotice() != "" {
		t.Error("TakeNotice did not clear the notice")
	}
}

func TestLogout_ForcesAnonymousEvenOnError(t *testing.T) {
	auth := &fakeAuth{user: &api.User{ID: "u1"}}
	s := session.NewStore(auth)
	s.CheckAuth(context.Background())

	auth.err = errors.New("server unreachable")
	if err := s.Logout(context.Background()); err == nil {
		t.Fatal("Logout returned nil error, want failure")
	}
	if s.Authenticated() {
		t.Error("store still authenticated after logout")
	}
}

func TestLanding(t *testing.T) {
	tests := []struct {
		name string
		user *api.User
		want string
	}{
		{"anonymous", nil, "login"},
		{"customer", &api.User{ID: "u1", Role: session.RoleCustomer}, "browse"},
		{"admin", &api.User{ID: "u2", Role: session.RoleAdmin}, "paged"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := session.NewStore(&fakeAuth{user: tt.user})
			s.CheckAuth(context.Background())
			if got := s.Landing(); got != tt.want {
				t.Errorf("Landing = %q, want %q", got, tt.want)
			}
		})
	}
}
