// Package api holds the wire contract shared by the HTTP handlers and the
// Go client.
package api

import "github.com/luanpessuti/case01furia/domain"

// Cookie and header names of the session contract
const (
	CookieName       = "auth_token"
	HeaderAuthEvent  = "X-Auth-Event"
	HeaderAuthStatus = "X-Auth-Status"
	EventLogout      = "logout"

	StatusAuthenticated   = "authenticated"
	StatusUnauthenticated = "unauthenticated"
)

// RegisterRequest is the body of POST /auth/register
type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest is the body of POST /auth/login
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// VerifyRequest is the body of POST /users/verify
type VerifyRequest struct {
	UserID      string            `json:"userId"`
	SocialLinks map[string]string `json:"socialLinks,omitempty"`
}

// VoteRequest is the body of POST /polls/:id/vote
type VoteRequest struct {
	Option string `json:"option"`
}

// AuthResponse is returned by register and login
type AuthResponse struct {
	Success bool               `json:"success"`
	User    *domain.PublicUser `json:"user"`
}

// VoteResponse is returned by a successful poll vote
type VoteResponse struct {
	Success bool         `json:"success"`
	Poll    *domain.Poll `json:"poll"`
}

// ErrorResponse is the uniform error body
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}
