// Package mappers converts between domain entities and GORM models.
package mappers

import (
	"fmt"

	"curator/internal/domain/user"
	"curator/internal/infrastructure/persistence/models"
	"curator/internal/shared/authorization"
)

type UserMapper struct{}

func NewUserMapper() *UserMapper {
	return &UserMapper{}
}

func (m *UserMapper) ToModel(u *user.User) *models.UserModel {
	return &models.UserModel{
		ID:           u.ID(),
		Email:        u.Email(),
		PasswordHash: u.PasswordHash(),
		Role:         u.Role().String(),
		IsActive:     u.IsActive(),
		CreatedAt:    u.CreatedAt(),
	}
}

func (m *UserMapper) ToDomain(model *models.UserModel) (*user.User, error) {
	role, ok := authorization.ParseRole(model.Role)
	if !ok {
		return nil, fmt.Errorf("unknown role in users row %d: %s", model.ID, model.Role)
	}
	return user.ReconstructUser(model.ID, model.Email, model.PasswordHash, role, model.IsActive, model.CreatedAt)
}
