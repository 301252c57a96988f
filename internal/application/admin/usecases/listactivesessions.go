package usecases

import (
	"context"

	"curator/internal/domain/user"
	"curator/internal/shared/errors"
	"curator/internal/shared/logger"
)

type ListActiveSessionsUseCase struct {
	sessions user.SessionRepository
	logger   logger.Interface
}

func NewListActiveSessionsUseCase(sessions user.SessionRepository) *ListActiveSessionsUseCase {
	return &ListActiveSessionsUseCase{
		sessions: sessions,
		logger:   logger.NewLogger().With("usecase", "list_active_sessions"),
	}
}

func (uc *ListActiveSessionsUseCase) Execute(ctx context.Context) ([]user.ActiveSessionInfo, error) {
	infos, err := uc.sessions.ListActive(ctx)
	if err != nil {
		uc.logger.Errorw("failed to list sessions", "error", err)
		return nil, errors.NewInternalError("failed to list active sessions")
	}
	if infos == nil {
		infos = []user.ActiveSessionInfo{}
	}
	return infos, nil
}
