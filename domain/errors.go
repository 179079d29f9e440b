package domain

import "errors"

// Authentication errors
var (
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmailTaken         = errors.New("email already registered")
	ErrNotAuthenticated   = errors.New("not authenticated")
)

// Token errors
var (
	ErrTokenInvalid   = errors.New("invalid token")
	ErrTokenExpired   = errors.New("token has expired")
	ErrTokenMalformed = errors.New("malformed token")
)

// Match errors
var (
	ErrMatchNotFound = errors.New("match not found")
)

// Poll errors
var (
	ErrPollNotFound  = errors.New("poll not found")
	ErrUnknownOption = errors.New("unknown poll option")
	ErrAlreadyVoted  = errors.New("user already voted")
)
