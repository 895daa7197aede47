package auth

import (
	"crypto/subtle"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

var ErrInvalidCredentials = errors.New("invalid username or password")

// Admin holds the single back-office account.
type Admin struct {
	Username     string
	passwordHash []byte
}

// NewAdmin accepts either a bcrypt hash or a plaintext password, which is
// hashed once here. The hash wins when both are set.
func NewAdmin(username, passwordHash, password string) (*Admin, error) {
	if username == "" {
		return nil, errors.New("admin username is empty")
	}

	switch {
	case passwordHash != "":
		if _, err := bcrypt.Cost([]byte(passwordHash)); err != nil {
			return nil, fmt.Errorf("admin password hash: %w", err)
		}
		return &Admin{Username: username, passwordHash: []byte(passwordHash)}, nil
	case password != "":
		h, err := HashPassword(password)
		if err != nil {
			return nil, err
		}
		return &Admin{Username: username, passwordHash: h}, nil
	default:
		return nil, errors.New("admin password is not configured")
	}
}

// Check compares both fields; the password is always compared so timing does
// not reveal whether the username matched.
func (a *Admin) Check(username, password string) error {
	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(a.Username)) == 1
	passErr := bcrypt.CompareHashAndPassword(a.passwordHash, []byte(password))
	if !userOK || passErr != nil {
		return ErrInvalidCredentials
	}
	return nil
}

func HashPassword(password string) ([]byte, error) {
	h, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}
	return h, nil
}
