// Package auth handles account registration, login and access tokens.
// Passwords are stored as bcrypt hashes; sessions are stateless JWTs.
package auth

import (
	"context"
	"errors"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/abhisek/pathwise/internal/apperr"
	"github.com/abhisek/pathwise/internal/logger"
	"github.com/abhisek/pathwise/internal/store"
)

// ErrInvalidCredentials is returned for a wrong email or password. The
// two cases are deliberately indistinguishable.
var ErrInvalidCredentials = errors.New("invalid credentials")

const minPasswordLen = 8

// Service registers and authenticates users.
type Service struct {
	users  store.UserRepo
	tokens *TokenIssuer
	log    *logger.Logger
}

func NewService(users store.UserRepo, tokens *TokenIssuer, log *logger.Logger) *Service {
	return &Service{users: users, tokens: tokens, log: log}
}

// Session is a logged-in user with their access token.
type Session struct {
	User  *store.User
	Token string
}

// Register creates an account and returns a live session for it.
func (s *Service) Register(ctx context.Context, name, email, password string, skills, domains []string) (*Session, error) {
	name = strings.TrimSpace(name)
	email = strings.ToLower(strings.TrimSpace(email))

	if name == "" {
		return nil, apperr.Validation("name", "must not be empty")
	}
	if !strings.Contains(email, "@") || strings.ContainsAny(email, " \t") {
		return nil, apperr.Validation("email", "must be a valid email address")
	}
	if len(password) < minPasswordLen {
		return nil, apperr.Validation("password", "must be at least 8 characters")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user, err := s.users.Create(ctx, &store.User{
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
		Skills:       skills,
		Domains:      domains,
	})
	if err != nil {
		if errors.Is(err, store.ErrEmailTaken) {
			return nil, apperr.Validation("email", "already registered")
		}
		return nil, err
	}

	token, err := s.tokens.Issue(user.ID)
	if err != nil {
		return nil, err
	}
	s.log.Info("user registered", "user_id", user.ID)
	return &Session{User: user, Token: token}, nil
}

// Login authenticates by email and password.
func (s *Service) Login(ctx context.Context, email, password string) (*Session, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	user, err := s.users.ByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user.ID)
	if err != nil {
		return nil, err
	}
	s.log.Info("user logged in", "user_id", user.ID)
	return &Session{User: user, Token: token}, nil
}
