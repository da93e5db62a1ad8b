package auth

import "errors"

var (
	// ErrEmailTaken is returned when registering with an email that exists
	ErrEmailTaken = errors.New("email already registered")

	// ErrInvalidCredentials is returned on unknown email or wrong password
	ErrInvalidCredentials = errors.New("invalid credentials")
)
