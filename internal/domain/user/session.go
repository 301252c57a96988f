package user

import (
	"fmt"
	"time"

	"curator/internal/shared/biztime"
)

// Session represents one live authenticated client. The stored token is the
// signed bearer token itself: a token is only trusted while its exact session
// row exists and is unexpired, so deleting the row revokes the token
// immediately regardless of its embedded expiry.
type Session struct {
	ID        uint
	UserID    uint
	Token     string
	IPAddress string
	UserAgent string
	CreatedAt time.Time
	ExpiresAt time.Time
}

func NewSession(userID uint, token, ipAddress, userAgent string, expiresAt time.Time) (*Session, error) {
	if userID == 0 {
		return nil, fmt.Errorf("user ID is required")
	}
	if token == "" {
		return nil, fmt.Errorf("token is required")
	}

	return &Session{
		UserID:    userID,
		Token:     token,
		IPAddress: ipAddress,
		UserAgent: userAgent,
		CreatedAt: biztime.NowUTC(),
		ExpiresAt: expiresAt,
	}, nil
}

func (s *Session) IsExpired() bool {
	return biztime.NowUTC().After(s.ExpiresAt)
}

// ActiveSessionInfo is the superadmin-facing view of a live session.
type ActiveSessionInfo struct {
	SessionID uint      `json:"id"`
	Email     string    `json:"email"`
	IPAddress string    `json:"ip"`
	UserAgent string    `json:"device"`
	CreatedAt time.Time `json:"loginTime"`
	ExpiresAt time.Time `json:"expiresAt"`
}
