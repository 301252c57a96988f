package usecases

import (
	"context"

	"curator/internal/domain/report"
	"curator/internal/shared/biztime"
	"curator/internal/shared/errors"
	"curator/internal/shared/logger"
)

const sentimentWindowDays = 7

type ReportsUseCase struct {
	reports report.Repository
	logger  logger.Interface
}

func NewReportsUseCase(reports report.Repository) *ReportsUseCase {
	return &ReportsUseCase{
		reports: reports,
		logger:  logger.NewLogger().With("usecase", "reports"),
	}
}

// SentimentData aggregates chat sentiment over the trailing week.
func (uc *ReportsUseCase) SentimentData(ctx context.Context) (report.SentimentData, error) {
	since := biztime.NowUTC().AddDate(0, 0, -sentimentWindowDays)
	data, err := uc.reports.SentimentCounts(ctx, since)
	if err != nil {
		uc.logger.Errorw("failed to aggregate sentiment", "error", err)
		return report.SentimentData{}, errors.NewInternalError("failed to load sentiment data")
	}
	return data, nil
}

func (uc *ReportsUseCase) TotalAdmins(ctx context.Context) (int64, error) {
	count, err := uc.reports.CountAdmins(ctx)
	if err != nil {
		uc.logger.Errorw("failed to count admins", "error", err)
		return 0, errors.NewInternalError("failed to count admins")
	}
	return count, nil
}

func (uc *ReportsUseCase) RequestHistory(ctx context.Context) ([]report.HistoryEntry, error) {
	entries, err := uc.reports.RequestHistory(ctx)
	if err != nil {
		uc.logger.Errorw("failed to load request history", "error", err)
		return nil, errors.NewInternalError("failed to load request history")
	}
	if entries == nil {
		entries = []report.HistoryEntry{}
	}
	return entries, nil
}
