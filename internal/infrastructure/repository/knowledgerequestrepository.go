package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"curator/internal/domain/knowledge"
	"curator/internal/infrastructure/persistence/mappers"
	"curator/internal/infrastructure/persistence/models"
	apperrors "curator/internal/shared/errors"
)

type KnowledgeRequestRepository struct {
	db     *gorm.DB
	mapper *mappers.KnowledgeRequestMapper
}

func NewKnowledgeRequestRepository(db *gorm.DB) *KnowledgeRequestRepository {
	return &KnowledgeRequestRepository{
		db:     db,
		mapper: mappers.NewKnowledgeRequestMapper(),
	}
}

func (r *KnowledgeRequestRepository) Create(ctx context.Context, req *knowledge.Request) error {
	model := r.mapper.ToModel(req)
	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create knowledge request: %w", err)
	}
	return req.SetID(model.ID)
}

func (r *KnowledgeRequestRepository) ListByOwner(ctx context.Context, adminID uint) ([]*knowledge.Request, error) {
	var rows []models.KnowledgeRequestModel
	err := r.db.WithContext(ctx).
		Where("admin_id = ?", adminID).
		Order("created_at DESC").
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list knowledge requests: %w", err)
	}

	requests := make([]*knowledge.Request, 0, len(rows))
	for i := range rows {
		req, err := r.mapper.ToDomain(&rows[i])
		if err != nil {
			return nil, fmt.Errorf("failed to map knowledge request %d: %w", rows[i].ID, err)
		}
		requests = append(requests, req)
	}
	return requests, nil
}

func (r *KnowledgeRequestRepository) ListPending(ctx context.Context) ([]knowledge.PendingItem, error) {
	var items []knowledge.PendingItem
	err := r.db.WithContext(ctx).
		Table("knowledge_requests AS kr").
		Select("kr.id, kr.title, kr.type, kr.content, kr.created_at, u.email AS admin_email").
		Joins("JOIN users u ON u.id = kr.admin_id").
		Where("kr.status = ?", knowledge.StatusPending.String()).
		Order("kr.created_at DESC").
		Scan(&items).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list pending requests: %w", err)
	}
	return items, nil
}

// DecideIfPending applies the decision with a guarded update so two
// concurrent reviewers cannot both win. The pending-status predicate in the
// WHERE clause is what makes the transition single-shot.
func (r *KnowledgeRequestRepository) DecideIfPending(ctx context.Context, id uint, status knowledge.Status, deciderID uint, decidedAt time.Time) (string, error) {
	var filePath string

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var row models.KnowledgeRequestModel
		if err := tx.Select("file_path, status").First(&row, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.NewNotFoundError("request not found")
			}
			return fmt.Errorf("failed to load request: %w", err)
		}
		filePath = row.FilePath

		result := tx.Model(&models.KnowledgeRequestModel{}).
			Where("id = ? AND status = ?", id, knowledge.StatusPending.String()).
			Updates(map[string]interface{}{
				"status":      status.String(),
				"decision_by": deciderID,
				"decision_at": decidedAt,
			})
		if result.Error != nil {
			return fmt.Errorf("failed to update request: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return apperrors.NewConflictError("request already decided", fmt.Sprintf("current status is %s", row.Status))
		}
		return nil
	})
	if err != nil {
		return "", err
	}
	return filePath, nil
}

func (r *KnowledgeRequestRepository) GetOwnerIDByContent(ctx context.Context, contentTag string) (uint, error) {
	var row models.KnowledgeRequestModel
	err := r.db.WithContext(ctx).
		Select("admin_id").
		Where("content = ?", contentTag).
		First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, apperrors.NewNotFoundError("request not found")
		}
		return 0, fmt.Errorf("failed to resolve request owner: %w", err)
	}
	return row.AdminID, nil
}
