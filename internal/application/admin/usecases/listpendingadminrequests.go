package usecases

import (
	"context"

	"curator/internal/domain/user"
	"curator/internal/shared/errors"
	"curator/internal/shared/logger"
)

type ListPendingAdminRequestsUseCase struct {
	requests user.AdminRequestRepository
	logger   logger.Interface
}

func NewListPendingAdminRequestsUseCase(requests user.AdminRequestRepository) *ListPendingAdminRequestsUseCase {
	return &ListPendingAdminRequestsUseCase{
		requests: requests,
		logger:   logger.NewLogger().With("usecase", "list_pending_admin_requests"),
	}
}

func (uc *ListPendingAdminRequestsUseCase) Execute(ctx context.Context) ([]user.AdminUpgradeRequest, error) {
	requests, err := uc.requests.ListPending(ctx)
	if err != nil {
		uc.logger.Errorw("failed to list admin requests", "error", err)
		return nil, errors.NewInternalError("failed to list pending requests")
	}
	if requests == nil {
		requests = []user.AdminUpgradeRequest{}
	}
	return requests, nil
}
