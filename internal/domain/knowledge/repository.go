package knowledge

import (
	"context"
	"time"
)

// PendingItem is the superadmin review view of a pending request.
type PendingItem struct {
	ID         uint      `json:"id"`
	Title      string    `json:"title"`
	Type       string    `json:"type"`
	Content    string    `json:"content"`
	CreatedAt  time.Time `json:"created_at"`
	AdminEmail string    `json:"admin_email"`
}

// Repository persists knowledge requests.
type Repository interface {
	Create(ctx context.Context, r *Request) error
	// ListByOwner returns the caller's own requests, newest first.
	ListByOwner(ctx context.Context, adminID uint) ([]*Request, error)
	// ListPending returns all pending requests across owners, newest first.
	ListPending(ctx context.Context) ([]PendingItem, error)
	// DecideIfPending applies a terminal decision only when the row is still
	// pending, returning the stored file path. A missing row yields a
	// not-found error; a row that is no longer pending yields a conflict.
	DecideIfPending(ctx context.Context, id uint, status Status, deciderID uint, decidedAt time.Time) (filePath string, err error)
	// GetOwnerIDByContent resolves the owning admin of the request whose
	// content column carries the given tag (e.g. "PDF:<filename>").
	GetOwnerIDByContent(ctx context.Context, contentTag string) (uint, error)
}
