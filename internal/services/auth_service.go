package services

import (
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"studenthub/internal/auth"
	"studenthub/internal/domain"
	"studenthub/internal/repos"
)

type AuthService struct {
	Users  *repos.UserRepo
	Tokens *auth.Tokens
}

// Signup creates a user with a freshly hashed secret. The caller has already
// trimmed and validated name, email and password.
func (s *AuthService) Signup(name, email, password string) (*domain.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), 12)
	if err != nil {
		return nil, err
	}
	u := &domain.User{ID: uuid.NewString(), Email: email, Name: name, Hash: string(hash)}
	if err := s.Users.Create(u); err != nil {
		return nil, err
	}
	return u, nil
}

// Login verifies credentials and mints a token. Both a missing account and a
// wrong password surface the same ErrInvalidCredentials.
func (s *AuthService) Login(email, password string) (string, *domain.User, error) {
	u, err := s.Users.ByEmail(email)
	if err != nil {
		return "", nil, domain.ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(u.Hash), []byte(password)) != nil {
		return "", nil, domain.ErrInvalidCredentials
	}
	token, err := s.Tokens.Issue(u.ID)
	if err != nil {
		return "", nil, err
	}
	return token, u, nil
}
