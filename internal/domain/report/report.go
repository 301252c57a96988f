// Package report defines the read-only reporting views served to superadmins.
package report

import (
	"context"
	"time"
)

// SentimentData is the sentiment breakdown of recent chat interactions.
type SentimentData struct {
	Positive int64 `json:"positive"`
	Neutral  int64 `json:"neutral"`
	Negative int64 `json:"negative"`
}

// HistoryEntry is one decided knowledge request in the audit history. The
// decision field carries the uppercased terminal status.
type HistoryEntry struct {
	ID          uint       `json:"id"`
	Title       string     `json:"title"`
	Type        string     `json:"type"`
	Decision    string     `json:"decision"`
	DecisionAt  *time.Time `json:"decision_at"`
	SubmittedBy string     `json:"submitted_by"`
	DecidedBy   string     `json:"decided_by"`
}

// Repository exposes the reporting queries. All of them are read-only
// projections over persisted rows.
type Repository interface {
	SentimentCounts(ctx context.Context, since time.Time) (SentimentData, error)
	CountAdmins(ctx context.Context) (int64, error)
	RequestHistory(ctx context.Context) ([]HistoryEntry, error)
}
