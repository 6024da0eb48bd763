package services

import (
	"database/sql"
	"errors"
	"strings"

	"magnetlog/internal/domain"
	"magnetlog/internal/repos"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrBadCreds      = errors.New("invalid email or password")
	ErrDuplicateUser = errors.New("email already registered")
)

type AuthService struct {
	Users *repos.UserRepo
}

// Register creates a user and binds the session to the submitted email.
// The duplicate check and the stored user email are case-folded; the session
// keeps the email exactly as submitted.
func (s *AuthService) Register(sid, name, email, password string) (*domain.User, error) {
	if _, err := s.Users.ByEmailFold(email); err == nil {
		return nil, ErrDuplicateUser
	} else if !errors.Is(err, sql.ErrNoRows) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), 12)
	if err != nil {
		return nil, err
	}
	u := &domain.User{
		ID:    uuid.NewString(),
		Email: strings.ToLower(email),
		Name:  name,
		Hash:  string(hash),
	}
	if err := s.Users.Create(u); err != nil {
		return nil, err
	}
	if err := s.Users.BindSession(sid, email); err != nil {
		return nil, err
	}
	return u, nil
}

// Login looks the user up by exact email match and binds the session to the
// lowercased email. Unknown user and wrong password are indistinguishable to
// the caller.
func (s *AuthService) Login(sid, email, password string) (*domain.User, error) {
	u, err := s.Users.ByEmail(email)
	if err != nil {
		return nil, ErrBadCreds
	}
	if bcrypt.CompareHashAndPassword([]byte(u.Hash), []byte(password)) != nil {
		return nil, ErrBadCreds
	}
	if err := s.Users.BindSession(sid, strings.ToLower(email)); err != nil {
		return nil, err
	}
	return u, nil
}

func (s *AuthService) Logout(sid string) error {
	return s.Users.UnbindSession(sid)
}

// CurrentEmail returns the session's bound email, or "" when the session is
// anonymous or unknown.
func (s *AuthService) CurrentEmail(sid string) string {
	email, err := s.Users.SessionEmail(sid)
	if err != nil {
		return ""
	}
	return email
}

// CurrentUser resolves the session email to its user record.
func (s *AuthService) CurrentUser(sid string) (*domain.User, error) {
	email := s.CurrentEmail(sid)
	if email == "" {
		return nil, sql.ErrNoRows
	}
	return s.Users.ByEmailFold(email)
}
