package usecases

import (
	"context"
	"time"

	"curator/internal/domain/knowledge"
	"curator/internal/shared/errors"
	"curator/internal/shared/logger"
)

// OwnRequest is the submitter's view of one of their requests. For pdf
// requests the raw content tag is withheld and a file reference is exposed
// instead.
type OwnRequest struct {
	ID          uint      `json:"id"`
	Title       string    `json:"title"`
	Type        string    `json:"type"`
	Content     *string   `json:"content"`
	Description string    `json:"description,omitempty"`
	Status      string    `json:"status"`
	FileURL     string    `json:"file_url,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

type ListOwnRequestsUseCase struct {
	requests knowledge.Repository
	logger   logger.Interface
}

func NewListOwnRequestsUseCase(requests knowledge.Repository) *ListOwnRequestsUseCase {
	return &ListOwnRequestsUseCase{
		requests: requests,
		logger:   logger.NewLogger().With("usecase", "list_own_requests"),
	}
}

func (uc *ListOwnRequestsUseCase) Execute(ctx context.Context, adminID uint) ([]OwnRequest, error) {
	rows, err := uc.requests.ListByOwner(ctx, adminID)
	if err != nil {
		uc.logger.Errorw("failed to list requests", "error", err, "admin_id", adminID)
		return nil, errors.NewInternalError("failed to list requests")
	}

	out := make([]OwnRequest, 0, len(rows))
	for _, r := range rows {
		item := OwnRequest{
			ID:          r.ID(),
			Title:       r.Title(),
			Type:        r.ContentType().String(),
			Description: r.Description(),
			Status:      r.Status().String(),
			CreatedAt:   r.CreatedAt(),
		}
		if r.ContentType() == knowledge.TypePDF {
			item.FileURL = "/api/knowledge-files/" + r.AttachmentFilename()
		} else {
			content := r.Content()
			item.Content = &content
		}
		out = append(out, item)
	}
	return out, nil
}
