package auth

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/abhisek/pathwise/internal/apperr"
	"github.com/abhisek/pathwise/internal/logger"
	"github.com/abhisek/pathwise/internal/store"
)

type fakeUserRepo struct {
	byEmail map[string]*store.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{byEmail: make(map[string]*store.User)}
}

func (f *fakeUserRepo) Create(_ context.Context, u *store.User) (*store.User, error) {
	if _, ok := f.byEmail[u.Email]; ok {
		return nil, store.ErrEmailTaken
	}
	cp := *u
	cp.ID = uuid.New()
	f.byEmail[u.Email] = &cp
	return &cp, nil
}

func (f *fakeUserRepo) ByEmail(_ context.Context, email string) (*store.User, error) {
	return f.byEmail[email], nil
}

func (f *fakeUserRepo) ByID(_ context.Context, id uuid.UUID) (*store.User, error) {
	for _, u := range f.byEmail {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) UpdateProfile(_ context.Context, _ uuid.UUID, _, _ []string) error {
	return nil
}

func newTestService() *Service {
	return NewService(newFakeUserRepo(), NewTokenIssuer("test-secret", time.Hour), logger.NewNop())
}

func TestRegisterAndLogin(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	sess, err := svc.Register(ctx, "Dana", "Dana@Example.com", "hunter2boogaloo", []string{"python"}, nil)
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if sess.User.Email != "dana@example.com" {
		t.Errorf("email = %q, want lowercased", sess.User.Email)
	}
	if sess.User.PasswordHash == "hunter2boogaloo" {
		t.Fatal("password stored in the clear")
	}
	if sess.Token == "" {
		t.Error("no token issued")
	}

	logged, err := svc.Login(ctx, "dana@example.com", "hunter2boogaloo")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if logged.User.ID != sess.User.ID {
		t.Error("login returned a different user")
	}

	if _, err := svc.Login(ctx, "dana@example.com", "wrong-password"); err != ErrInvalidCredentials {
		t.Errorf("wrong password: got %v, want ErrInvalidCredentials", err)
	}
	if _, err := svc.Login(ctx, "nobody@example.com", "hunter2boogaloo"); err != ErrInvalidCredentials {
		t.Errorf("unknown email: got %v, want ErrInvalidCredentials", err)
	}
}

func TestRegister_Validation(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	cases := []struct {
		name, userName, email, password string
	}{
		{"empty name", "", "a@b.com", "longenough"},
		{"bad email", "Dana", "not-an-email", "longenough"},
		{"short password", "Dana", "a@b.com", "short"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Register(ctx, tc.userName, tc.email, tc.password, nil, nil)
			if !apperr.IsValidation(err) {
				t.Fatalf("got %v, want validation error", err)
			}
		})
	}
}

func TestRegister_DuplicateEmail(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	if _, err := svc.Register(ctx, "Dana", "a@b.com", "longenough", nil, nil); err != nil {
		t.Fatalf("Register: %v", err)
	}
	_, err := svc.Register(ctx, "Other", "a@b.com", "longenough", nil, nil)
	if !apperr.IsValidation(err) {
		t.Fatalf("got %v, want validation error for duplicate email", err)
	}
}

func TestTokenRoundTrip(t *testing.T) {
	issuer := NewTokenIssuer("test-secret", time.Hour)
	userID := uuid.New()

	token, err := issuer.Issue(userID)
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}
	got, err := issuer.Parse(token)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if got != userID {
		t.Errorf("subject = %s, want %s", got, userID)
	}
}

func TestToken_Invalid(t *testing.T) {
	issuer := NewTokenIssuer("test-secret", time.Hour)
	userID := uuid.New()

	if _, err := issuer.Parse("not.a.token"); err != ErrInvalidToken {
		t.Errorf("malformed: got %v, want ErrInvalidToken", err)
	}

	// Signed with a different secret.
	other := NewTokenIssuer("other-secret", time.Hour)
	token, _ := other.Issue(userID)
	if _, err := issuer.Parse(token); err != ErrInvalidToken {
		t.Errorf("wrong secret: got %v, want ErrInvalidToken", err)
	}

	// Expired.
	stale := NewTokenIssuer("test-secret", time.Hour)
	stale.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }
	token, _ = stale.Issue(userID)
	if _, err := issuer.Parse(token); err != ErrInvalidToken {
		t.Errorf("expired: got %v, want ErrInvalidToken", err)
	}
}
