package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"curator/internal/domain/knowledge"
	"curator/internal/infrastructure/persistence/models"
	"curator/internal/shared/authorization"
	"curator/internal/shared/biztime"
)

func TestSentimentCountsWindow(t *testing.T) {
	db := setupTestDB(t)
	repo := NewReportRepository(db)
	ctx := context.Background()

	now := biztime.NowUTC()
	rows := []models.ChatLogModel{
		{Sentiment: "positive", Timestamp: now.Add(-time.Hour)},
		{Sentiment: "positive", Timestamp: now.Add(-48 * time.Hour)},
		{Sentiment: "negative", Timestamp: now.Add(-time.Hour)},
		// Outside the window, must not count.
		{Sentiment: "neutral", Timestamp: now.AddDate(0, 0, -10)},
	}
	for i := range rows {
		require.NoError(t, db.Create(&rows[i]).Error)
	}

	data, err := repo.SentimentCounts(ctx, now.AddDate(0, 0, -7))
	require.NoError(t, err)
	assert.Equal(t, int64(2), data.Positive)
	assert.Equal(t, int64(0), data.Neutral)
	assert.Equal(t, int64(1), data.Negative)
}

func TestCountAdmins(t *testing.T) {
	db := setupTestDB(t)
	repo := NewReportRepository(db)
	ctx := context.Background()

	createTestUser(t, db, "alice@example.com", authorization.RoleAdmin)
	createTestUser(t, db, "boss@example.com", authorization.RoleSuperadmin)

	count, err := repo.CountAdmins(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)
}

func TestRequestHistoryShowsDecisionsUppercased(t *testing.T) {
	db := setupTestDB(t)
	reports := NewReportRepository(db)
	requests := NewKnowledgeRequestRepository(db)
	ctx := context.Background()

	alice := createTestUser(t, db, "alice@example.com", authorization.RoleAdmin)
	boss := createTestUser(t, db, "boss@example.com", authorization.RoleSuperadmin)

	req, err := knowledge.NewRequest(alice.ID(), "Support FAQ", knowledge.TypeText, "content", "")
	require.NoError(t, err)
	require.NoError(t, requests.Create(ctx, req))

	pending, err := knowledge.NewRequest(alice.ID(), "Still pending", knowledge.TypeText, "content", "")
	require.NoError(t, err)
	require.NoError(t, requests.Create(ctx, pending))

	_, err = requests.DecideIfPending(ctx, req.ID(), knowledge.StatusApproved, boss.ID(), biztime.NowUTC())
	require.NoError(t, err)

	entries, err := reports.RequestHistory(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "APPROVED", entries[0].Decision)
	assert.Equal(t, "alice@example.com", entries[0].SubmittedBy)
	assert.Equal(t, "boss@example.com", entries[0].DecidedBy)
	require.NotNil(t, entries[0].DecisionAt)
}
