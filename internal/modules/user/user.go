package user

import (
	"github.com/georgemunganga/mostrador/internal/session"
	"golang.org/x/crypto/bcrypt"
)

// User is an account that can log in to the point of sale.
type User struct {
	ID           int64        `json:"id"`
	Username     string       `json:"usuario"`
	PasswordHash string       `json:"-"`
	Role         session.Role `json:"rol"`
}

// HashPassword returns the bcrypt hash stored for new and changed passwords.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}
