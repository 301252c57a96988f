package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"curator/internal/domain/user"
)

type AdminRequestRepository struct {
	db *gorm.DB
}

func NewAdminRequestRepository(db *gorm.DB) *AdminRequestRepository {
	return &AdminRequestRepository{db: db}
}

func (r *AdminRequestRepository) ListPending(ctx context.Context) ([]user.AdminUpgradeRequest, error) {
	var requests []user.AdminUpgradeRequest
	err := r.db.WithContext(ctx).
		Table("admin_requests AS ar").
		Select("ar.id, u.email, ar.requested_role, ar.created_at").
		Joins("JOIN users u ON u.id = ar.requester_id").
		Where("ar.status = ?", "pending").
		Order("ar.created_at DESC").
		Scan(&requests).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list pending admin requests: %w", err)
	}
	return requests, nil
}
