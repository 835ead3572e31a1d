package user

import (
	"context"
	"errors"
	"strings"

	"github.com/georgemunganga/mostrador/internal/session"
)

var (
	ErrMissingFields = errors.New("usuario y contraseña son obligatorios")
	ErrInvalidRole   = errors.New("rol inválido")
)

type service struct {
	repo Repository
}

// NewService creates a new user service.
func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) CreateUser(ctx context.Context, username, password, role string) (*User, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return nil, ErrMissingFields
	}
	r := session.Role(role)
	if !r.Valid() {
		return nil, ErrInvalidRole
	}

	hash, err := HashPassword(password)
	if err != nil {
		return nil, err
	}

	user := &User{
		Username:     username,
		PasswordHash: hash,
		Role:         r,
	}
	if err := s.repo.CreateUser(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *service) UpdateUser(ctx context.Context, id int64, username, password, role string) error {
	username = strings.TrimSpace(username)
	if username == "" {
		return ErrMissingFields
	}
	r := session.Role(role)
	if !r.Valid() {
		return ErrInvalidRole
	}

	user := &User{ID: id, Username: username, Role: r}
	if password != "" {
		hash, err := HashPassword(password)
		if err != nil {
			return err
		}
		user.PasswordHash = hash
	}
	return s.repo.UpdateUser(ctx, user)
}

func (s *service) DeleteUser(ctx context.Context, id int64) error {
	if _, err := s.repo.GetUserByID(ctx, id); err != nil {
		return err
	}
	return s.repo.DeleteUser(ctx, id)
}

func (s *service) ListUsers(ctx context.Context) ([]*User, error) {
	return s.repo.ListUsers(ctx)
}
