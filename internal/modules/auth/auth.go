package auth

import (
	"context"
	"errors"

	"github.com/georgemunganga/mostrador/internal/session"
)

var (
	// ErrInvalidCredentials covers both an unknown account and a wrong password.
	ErrInvalidCredentials = errors.New("Usuario o contraseña incorrectos")
	ErrMissingCredentials = errors.New("Debe ingresar usuario y contraseña")
)

// Service defines the interface for authentication-related business logic.
type Service interface {
	Login(ctx context.Context, username, password string) (*session.Identity, error)
}
