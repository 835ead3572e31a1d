package user

import (
	"context"
	"errors"
)

var (
	ErrNotFound  = errors.New("el usuario no existe")
	ErrDuplicate = errors.New("ya existe un usuario con ese nombre")
)

// Repository defines data access for accounts.
type Repository interface {
	CreateUser(ctx context.Context, user *User) error
	GetUserByUsername(ctx context.Context, username string) (*User, error)
	GetUserByID(ctx context.Context, id int64) (*User, error)
	ListUsers(ctx context.Context) ([]*User, error)
	// UpdateUser writes username and role, and the password hash only when it is non-empty.
	UpdateUser(ctx context.Context, user *User) error
	DeleteUser(ctx context.Context, id int64) error
}
