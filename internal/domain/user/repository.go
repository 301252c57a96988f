package user

import (
	"context"
	"time"
)

// Repository persists user accounts.
type Repository interface {
	Create(ctx context.Context, u *User) error
	GetByID(ctx context.Context, id uint) (*User, error)
	// GetActiveByEmail returns (nil, nil) when no active account matches,
	// so callers can produce a uniform invalid-credentials error.
	GetActiveByEmail(ctx context.Context, email string) (*User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
}

// SessionRepository is the server-side session registry. Every authorization
// decision re-reads it; rows are never cached in process.
type SessionRepository interface {
	// Replace deletes all existing sessions for the user and inserts the new
	// one in a single transaction, enforcing one active session per account.
	Replace(ctx context.Context, s *Session) error
	// GetByUserAndToken returns the unexpired session matching the exact
	// user/token pair, or a not-found error.
	GetByUserAndToken(ctx context.Context, userID uint, token string) (*Session, error)
	// DeleteByToken removes the session holding the token. Deleting a
	// non-existent row is not an error (logout is idempotent).
	DeleteByToken(ctx context.Context, token string) error
	ListActive(ctx context.Context) ([]ActiveSessionInfo, error)
	DeleteExpired(ctx context.Context) error
}

// AdminUpgradeRequest is a pending role-upgrade request, owned by an
// external workflow; this service only lists it for superadmin review.
type AdminUpgradeRequest struct {
	ID            uint      `json:"id"`
	Email         string    `json:"name"`
	RequestedRole string    `json:"type"`
	CreatedAt     time.Time `json:"date"`
}

type AdminRequestRepository interface {
	ListPending(ctx context.Context) ([]AdminUpgradeRequest, error)
}
