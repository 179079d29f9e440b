package domain

import "time"

// User represents a registered fan account
type User struct {
	ID               string
	Name             string
	Email            string
	PasswordHash     string
	CPF              string
	Verified         bool
	VerifiedAt       *time.Time
	VerificationStep int
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// PublicUser is the sanitized view of a user returned by the API.
// The password hash is intentionally absent from this type so it can
// never be serialized.
type PublicUser struct {
	ID               string     `json:"_id"`
	Name             string     `json:"name"`
	Email            string     `json:"email"`
	Verified         bool       `json:"verified"`
	VerifiedAt       *time.Time `json:"verifiedAt,omitempty"`
	VerificationStep int        `json:"verificationStep"`
}

// Sanitize returns the public view of the user
func (u *User) Sanitize() *PublicUser {
	return &PublicUser{
		ID:               u.ID,
		Name:             u.Name,
		Email:            u.Email,
		Verified:         u.Verified,
		VerifiedAt:       u.VerifiedAt,
		VerificationStep: u.VerificationStep,
	}
}

// TokenClaims represents the session token payload
type TokenClaims struct {
	UserID    string `json:"userId"`
	Email     string `json:"email"`
	Name      string `json:"name,omitempty"`
	IssuedAt  int64  `json:"iat"`
	ExpiresAt int64  `json:"exp"`
}

// MatchStatus is the lifecycle state of a match
type MatchStatus string

const (
	MatchUpcoming MatchStatus = "upcoming"
	MatchLive     MatchStatus = "live"
	MatchFinished MatchStatus = "finished"
)

// Team represents one side of a match
type Team struct {
	Name  string `json:"name"`
	Logo  string `json:"logo"`
	Score int    `json:"score"`
}

// MatchTeams pairs the two sides of a match
type MatchTeams struct {
	Team1 Team `json:"team1"`
	Team2 Team `json:"team2"`
}

// MatchEvent is a single in-game occurrence shown on the live feed
type MatchEvent struct {
	ID        int    `json:"id"`
	Text      string `json:"text"`
	Timestamp string `json:"timestamp"`
}

// Match is a snapshot of a match as served to clients
type Match struct {
	MatchID       string       `json:"matchId"`
	Teams         MatchTeams   `json:"teams"`
	Map           string       `json:"map"`
	Status        MatchStatus  `json:"status"`
	CurrentRound  int          `json:"currentRound,omitempty"`
	TotalRounds   int          `json:"totalRounds,omitempty"`
	TimeRemaining string       `json:"timeRemaining,omitempty"`
	LastEvents    []MatchEvent `json:"lastEvents,omitempty"`
}

// PollOption is a single answer in a fan poll
type PollOption struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	Votes int64  `json:"votes"`
}

// Poll is a fan poll with its current tallies
type Poll struct {
	ID         string       `json:"id"`
	Question   string       `json:"question"`
	Options    []PollOption `json:"options"`
	TotalVotes int64        `json:"totalVotes"`
}
