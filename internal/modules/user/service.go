package user

import "context"

// Service defines account administration.
type Service interface {
	CreateUser(ctx context.Context, username, password, role string) (*User, error)
	UpdateUser(ctx context.Context, id int64, username, password, role string) error
	DeleteUser(ctx context.Context, id int64) error
	ListUsers(ctx context.Context) ([]*User, error)
}
