package usecases

import (
	"context"

	"curator/internal/domain/knowledge"
	"curator/internal/shared/errors"
	"curator/internal/shared/logger"
)

type ListPendingRequestsUseCase struct {
	requests knowledge.Repository
	logger   logger.Interface
}

func NewListPendingRequestsUseCase(requests knowledge.Repository) *ListPendingRequestsUseCase {
	return &ListPendingRequestsUseCase{
		requests: requests,
		logger:   logger.NewLogger().With("usecase", "list_pending_requests"),
	}
}

func (uc *ListPendingRequestsUseCase) Execute(ctx context.Context) ([]knowledge.PendingItem, error) {
	items, err := uc.requests.ListPending(ctx)
	if err != nil {
		uc.logger.Errorw("failed to list pending requests", "error", err)
		return nil, errors.NewInternalError("failed to list pending requests")
	}
	if items == nil {
		items = []knowledge.PendingItem{}
	}
	return items, nil
}
