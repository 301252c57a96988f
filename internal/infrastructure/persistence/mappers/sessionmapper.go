package mappers

import (
	"curator/internal/domain/user"
	"curator/internal/infrastructure/persistence/models"
)

type SessionMapper struct{}

func NewSessionMapper() *SessionMapper {
	return &SessionMapper{}
}

func (m *SessionMapper) ToModel(s *user.Session) *models.SessionModel {
	return &models.SessionModel{
		ID:           s.ID,
		UserID:       s.UserID,
		SessionToken: s.Token,
		IPAddress:    s.IPAddress,
		UserAgent:    s.UserAgent,
		CreatedAt:    s.CreatedAt,
		ExpiresAt:    s.ExpiresAt,
	}
}

func (m *SessionMapper) ToDomain(model *models.SessionModel) *user.Session {
	return &user.Session{
		ID:        model.ID,
		UserID:    model.UserID,
		Token:     model.SessionToken,
		IPAddress: model.IPAddress,
		UserAgent: model.UserAgent,
		CreatedAt: model.CreatedAt,
		ExpiresAt: model.ExpiresAt,
	}
}
