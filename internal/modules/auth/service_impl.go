package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/georgemunganga/mostrador/internal/modules/user"
	"github.com/georgemunganga/mostrador/internal/session"
)

type service struct {
	userRepo user.Repository
}

// NewService creates a new auth service.
func NewService(userRepo user.Repository) Service {
	return &service{userRepo: userRepo}
}

func (s *service) Login(ctx context.Context, username, password string) (*session.Identity, error) {
	if username == "" || password == "" {
		return nil, ErrMissingCredentials
	}

	u, err := s.userRepo.GetUserByUsername(ctx, username)
	if errors.Is(err, user.ErrNotFound) {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, fmt.Errorf("Error al autenticar: %w", err)
	}

	if !VerifyPassword(u.PasswordHash, password) {
		return nil, ErrInvalidCredentials
	}

	return &session.Identity{Username: u.Username, Role: u.Role}, nil
}
