package repository

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"curator/internal/domain/report"
	"curator/internal/infrastructure/persistence/models"
)

type ReportRepository struct {
	db *gorm.DB
}

func NewReportRepository(db *gorm.DB) *ReportRepository {
	return &ReportRepository{db: db}
}

// SentimentCounts aggregates chat sentiment over the trailing window.
func (r *ReportRepository) SentimentCounts(ctx context.Context, since time.Time) (report.SentimentData, error) {
	var data report.SentimentData
	err := r.db.WithContext(ctx).
		Model(&models.ChatLogModel{}).
		Select(
			"COALESCE(SUM(CASE WHEN sentiment = 'positive' THEN 1 ELSE 0 END), 0) AS positive, " +
				"COALESCE(SUM(CASE WHEN sentiment = 'neutral' THEN 1 ELSE 0 END), 0) AS neutral, " +
				"COALESCE(SUM(CASE WHEN sentiment = 'negative' THEN 1 ELSE 0 END), 0) AS negative").
		Where("timestamp >= ?", since).
		Scan(&data).Error
	if err != nil {
		return report.SentimentData{}, fmt.Errorf("failed to aggregate sentiment: %w", err)
	}
	return data, nil
}

// CountAdmins counts all active operator accounts, both roles.
func (r *ReportRepository) CountAdmins(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.UserModel{}).
		Where("role IN ? AND is_active = ?", []string{"admin", "superadmin"}, true).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count admins: %w", err)
	}
	return count, nil
}

// RequestHistory lists decided knowledge requests, newest decision first,
// with submitter and decider emails resolved.
func (r *ReportRepository) RequestHistory(ctx context.Context) ([]report.HistoryEntry, error) {
	var entries []report.HistoryEntry
	err := r.db.WithContext(ctx).
		Table("knowledge_requests AS kr").
		Select("kr.id, kr.title, kr.type, UPPER(kr.status) AS decision, kr.decision_at, "+
			"u1.email AS submitted_by, u2.email AS decided_by").
		Joins("JOIN users u1 ON u1.id = kr.admin_id").
		Joins("LEFT JOIN users u2 ON u2.id = kr.decision_by").
		Where("kr.status IN ?", []string{"approved", "rejected"}).
		Order("kr.decision_at DESC").
		Scan(&entries).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load request history: %w", err)
	}
	return entries, nil
}
