package auth

import (
	"context"
	"errors"
	"testing"

	"github.com/georgemunganga/mostrador/internal/modules/user"
	"github.com/georgemunganga/mostrador/internal/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type stubUsers struct {
	user.Repository
	accounts map[string]*user.User
	err      error
}

func (s *stubUsers) GetUserByUsername(_ context.Context, username string) (*user.User, error) {
	if s.err != nil {
		return nil, s.err
	}
	u, ok := s.accounts[username]
	if !ok {
		return nil, user.ErrNotFound
	}
	return u, nil
}

func newStubUsers(t *testing.T) *stubUsers {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.MinCost)
	require.NoError(t, err)
	return &stubUsers{accounts: map[string]*user.User{
		"admin": {ID: 1, Username: "admin", PasswordHash: string(hash), Role: session.RoleAdmin},
	}}
}

func TestLoginSuccess(t *testing.T) {
	svc := NewService(newStubUsers(t))

	id, err := svc.Login(context.Background(), "admin", "admin123")
	require.NoError(t, err)
	assert.Equal(t, &session.Identity{Username: "admin", Role: session.RoleAdmin}, id)
}

func TestLoginFailuresAreGeneric(t *testing.T) {
	svc := NewService(newStubUsers(t))

	_, wrongPassword := svc.Login(context.Background(), "admin", "nope")
	_, unknownUser := svc.Login(context.Background(), "ghost", "admin123")

	assert.ErrorIs(t, wrongPassword, ErrInvalidCredentials)
	assert.ErrorIs(t, unknownUser, ErrInvalidCredentials)
	assert.Equal(t, "Usuario o contraseña incorrectos", wrongPassword.Error())
	assert.Equal(t, wrongPassword.Error(), unknownUser.Error())
}

func TestLoginMissingFields(t *testing.T) {
	svc := NewService(newStubUsers(t))
	_, err := svc.Login(context.Background(), "admin", "")
	assert.ErrorIs(t, err, ErrMissingCredentials)
}

func TestLoginDatabaseError(t *testing.T) {
	repo := newStubUsers(t)
	repo.err = errors.New("connection refused")

	_, err := NewService(repo).Login(context.Background(), "admin", "admin123")
	assert.EqualError(t, err, "Error al autenticar: connection refused")
}
