// internal/service/auth_service.go
package service

import (
	"context"

	"golang.org/x/crypto/bcrypt"

	appErrors "github.com/unclebandit/campaigntrack/internal/errors"
	"github.com/unclebandit/campaigntrack/internal/model"
	"github.com/unclebandit/campaigntrack/internal/repository"
)

type AuthService struct {
	UserRepo repository.UserRepositoryInterface

	ids idSource
}

// Signup registers a new user. Email uniqueness is an equality scan
// against the stored collection; the password is stored as a bcrypt
// hash and never echoed back.
func (s *AuthService) Signup(ctx context.Context, name, email, password string) (*model.User, error) {
	if name == "" || email == "" || password == "" {
		return nil, appErrors.NewValidation("All fields are required")
	}

	existing, err := s.UserRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, appErrors.NewEmailExists(email)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	u := &model.User{
		ID:           s.ids.next(),
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
	}
	if err := s.UserRepo.Create(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}

// Login checks the credentials against the stored record. Email match
// is exact (case-sensitive); any mismatch yields the same generic
// error so callers cannot probe which half was wrong.
func (s *AuthService) Login(ctx context.Context, email, password string) (*model.User, error) {
	if email == "" || password == "" {
		return nil, appErrors.NewValidation("Email and password are required")
	}

	u, err := s.UserRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, appErrors.NewInvalidCredentials()
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return nil, appErrors.NewInvalidCredentials()
	}
	return u, nil
}
