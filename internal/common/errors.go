// Package common defines shared constants and sentinel errors used across
// picshelf components. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrNotFound = errors.New("not found")

	// Registration / credential errors.
	ErrAlreadyRegistered  = errors.New("already registered")
	ErrInvalidCredentials = errors.New("invalid login/password")

	// Token lifecycle errors. An invalid (malformed or tampered) token and an
	// expired one lead to the same user-visible outcome, but monitors log them
	// differently.
	ErrInvalidToken = errors.New("invalid token")
	ErrTokenExpired = errors.New("token expired")
)
