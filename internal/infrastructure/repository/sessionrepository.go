package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"curator/internal/domain/user"
	"curator/internal/infrastructure/persistence/mappers"
	"curator/internal/infrastructure/persistence/models"
	"curator/internal/shared/biztime"
	apperrors "curator/internal/shared/errors"
)

type SessionRepository struct {
	db     *gorm.DB
	mapper *mappers.SessionMapper
}

func NewSessionRepository(db *gorm.DB) *SessionRepository {
	return &SessionRepository{
		db:     db,
		mapper: mappers.NewSessionMapper(),
	}
}

// Replace enforces the single-session invariant: the delete and the insert
// run in one transaction so a concurrent login cannot leave two live rows.
func (r *SessionRepository) Replace(ctx context.Context, s *user.Session) error {
	model := r.mapper.ToModel(s)

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", s.UserID).Delete(&models.SessionModel{}).Error; err != nil {
			return err
		}
		return tx.Create(model).Error
	})
	if err != nil {
		return fmt.Errorf("failed to replace session: %w", err)
	}

	s.ID = model.ID
	return nil
}

func (r *SessionRepository) GetByUserAndToken(ctx context.Context, userID uint, token string) (*user.Session, error) {
	var model models.SessionModel
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND session_token = ? AND expires_at > ?", userID, token, biztime.NowUTC()).
		First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("session not found")
		}
		return nil, fmt.Errorf("failed to get session: %w", err)
	}
	return r.mapper.ToDomain(&model), nil
}

func (r *SessionRepository) DeleteByToken(ctx context.Context, token string) error {
	err := r.db.WithContext(ctx).
		Where("session_token = ?", token).
		Delete(&models.SessionModel{}).Error
	if err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	return nil
}

func (r *SessionRepository) ListActive(ctx context.Context) ([]user.ActiveSessionInfo, error) {
	var infos []user.ActiveSessionInfo
	err := r.db.WithContext(ctx).
		Table("active_sessions AS s").
		Select("s.id AS session_id, u.email, s.ip_address, s.user_agent, s.created_at, s.expires_at").
		Joins("JOIN users u ON u.id = s.user_id").
		Where("s.expires_at > ?", biztime.NowUTC()).
		Order("s.created_at DESC").
		Scan(&infos).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list active sessions: %w", err)
	}
	return infos, nil
}

func (r *SessionRepository) DeleteExpired(ctx context.Context) error {
	err := r.db.WithContext(ctx).
		Where("expires_at <= ?", biztime.NowUTC()).
		Delete(&models.SessionModel{}).Error
	if err != nil {
		return fmt.Errorf("failed to delete expired sessions: %w", err)
	}
	return nil
}
