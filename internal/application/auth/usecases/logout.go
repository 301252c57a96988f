package usecases

import (
	"context"

	"curator/internal/domain/user"
	"curator/internal/shared/logger"
)

type LogoutUseCase struct {
	sessions user.SessionRepository
	logger   logger.Interface
}

func NewLogoutUseCase(sessions user.SessionRepository) *LogoutUseCase {
	return &LogoutUseCase{
		sessions: sessions,
		logger:   logger.NewLogger().With("usecase", "logout"),
	}
}

// Execute revokes the session holding the token. Logout is idempotent: a
// token with no backing row still logs out successfully.
func (uc *LogoutUseCase) Execute(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	if err := uc.sessions.DeleteByToken(ctx, token); err != nil {
		uc.logger.Errorw("failed to delete session", "error", err)
		return err
	}
	return nil
}
