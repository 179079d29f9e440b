package domain

import (
	"context"
	"time"
)

// UserRepository defines user data access operations
type UserRepository interface {
	Create(ctx context.Context, user *User) error
	FindByEmail(ctx context.Context, email string) (*User, error)
	FindByID(ctx context.Context, id string) (*User, error)
	Update(ctx context.Context, user *User) error
	SetVerified(ctx context.Context, userID string, verifiedAt time.Time, step int) error
}

// MatchRepository defines match snapshot storage
type MatchRepository interface {
	Save(ctx context.Context, match *Match) error
	FindByID(ctx context.Context, matchID string) (*Match, error)
	List(ctx context.Context) ([]*Match, error)
}

// PollRepository defines fan poll storage and vote tallying
type PollRepository interface {
	Save(ctx context.Context, poll *Poll) error
	FindByID(ctx context.Context, pollID string) (*Poll, error)
	Vote(ctx context.Context, pollID, optionID, userID string) error
}

// AuthService defines authentication business logic
type AuthService interface {
	Register(ctx context.Context, name, email, password string) (*User, string, error)
	Login(ctx context.Context, email, password string) (*User, string, error)
	Authenticate(ctx context.Context, token string) (*User, error)
}

// VerificationService defines the identity-proofing flow
type VerificationService interface {
	Verify(ctx context.Context, userID string, socialLinks map[string]string) error
}

// MatchService defines read access to the live match feed
type MatchService interface {
	List(ctx context.Context) ([]*Match, error)
	Get(ctx context.Context, matchID string) (*Match, error)
}

// PollService defines fan poll operations
type PollService interface {
	Get(ctx context.Context, pollID string) (*Poll, error)
	Vote(ctx context.Context, pollID, optionID, userID string) (*Poll, error)
}

// PasswordService defines password operations
type PasswordService interface {
	Hash(password string) (string, error)
	Verify(hashedPassword, password string) bool
}

// TokenService defines session token operations
type TokenService interface {
	Generate(userID, email, name string) (string, error)
	Validate(token string) (*TokenClaims, error)
}
