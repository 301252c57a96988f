package mappers

import (
	"curator/internal/domain/knowledge"
	"curator/internal/infrastructure/persistence/models"
)

type KnowledgeRequestMapper struct{}

func NewKnowledgeRequestMapper() *KnowledgeRequestMapper {
	return &KnowledgeRequestMapper{}
}

func (m *KnowledgeRequestMapper) ToModel(r *knowledge.Request) *models.KnowledgeRequestModel {
	return &models.KnowledgeRequestModel{
		ID:          r.ID(),
		AdminID:     r.AdminID(),
		Title:       r.Title(),
		Type:        r.ContentType().String(),
		Content:     r.Content(),
		Description: r.Description(),
		FilePath:    r.FilePath(),
		Status:      r.Status().String(),
		DecisionBy:  r.DecisionBy(),
		DecisionAt:  r.DecisionAt(),
		CreatedAt:   r.CreatedAt(),
	}
}

func (m *KnowledgeRequestMapper) ToDomain(model *models.KnowledgeRequestModel) (*knowledge.Request, error) {
	return knowledge.ReconstructRequest(
		model.ID,
		model.AdminID,
		model.Title,
		knowledge.ContentType(model.Type),
		model.Content,
		model.Description,
		model.FilePath,
		knowledge.Status(model.Status),
		model.DecisionBy,
		model.DecisionAt,
		model.CreatedAt,
	)
}
