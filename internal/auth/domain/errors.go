package domain

import "errors"

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("invalid token")
	ErrSessionNotFound    = errors.New("session not found")
	ErrInvalidState       = errors.New("invalid oauth state")
	ErrProviderDisabled   = errors.New("provider not configured")
)
