package domain

import "time"

// RoleAdmin is granted to every signed-in user.
const RoleAdmin = "admin"

// Provider names the sign-in method that produced a session
type Provider string

const (
	ProviderCredentials Provider = "credentials"
	ProviderGitHub      Provider = "github"
)

// User is the identity carried by a session token
type User struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Email    string   `json:"email,omitempty"`
	Image    string   `json:"image,omitempty"`
	Role     string   `json:"role"`
	Provider Provider `json:"provider"`
}

// Session is a signed-in user. ID matches the token's jti claim.
type Session struct {
	ID        string    `json:"id"`
	User      User      `json:"user"`
	IssuedAt  time.Time `json:"issued_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

// LoginRequest is the credentials form
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}
