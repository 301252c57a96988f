package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"curator/internal/domain/user"
	"curator/internal/shared/authorization"
)

// setupTestDB opens an in-memory sqlite database with the production schema
// translated to sqlite DDL (the real migrations target MySQL).
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared&_pragma=foreign_keys(1)"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	statements := []string{
		`CREATE TABLE users (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			email TEXT NOT NULL UNIQUE,
			password_hash TEXT NOT NULL,
			role TEXT NOT NULL DEFAULT 'admin',
			is_active BOOLEAN NOT NULL DEFAULT 1,
			created_at DATETIME NOT NULL
		)`,
		`CREATE TABLE active_sessions (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			user_id INTEGER NOT NULL,
			session_token TEXT NOT NULL,
			ip_address TEXT,
			user_agent TEXT,
			created_at DATETIME NOT NULL,
			expires_at DATETIME NOT NULL
		)`,
		`CREATE TABLE knowledge_requests (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			admin_id INTEGER NOT NULL,
			title TEXT NOT NULL,
			type TEXT NOT NULL,
			content TEXT NOT NULL,
			description TEXT,
			file_path TEXT,
			status TEXT NOT NULL DEFAULT 'pending',
			decision_by INTEGER,
			decision_at DATETIME,
			created_at DATETIME NOT NULL
		)`,
		`CREATE TABLE admin_requests (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			requester_id INTEGER NOT NULL,
			requested_role TEXT NOT NULL,
			status TEXT NOT NULL DEFAULT 'pending',
			created_at DATETIME NOT NULL
		)`,
		`CREATE TABLE chat_logs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			sentiment TEXT NOT NULL,
			timestamp DATETIME NOT NULL
		)`,
	}
	for _, stmt := range statements {
		require.NoError(t, db.Exec(stmt).Error)
	}

	t.Cleanup(func() {
		sqlDB, err := db.DB()
		if err == nil {
			sqlDB.Close()
		}
	})
	return db
}

func createTestUser(t *testing.T, db *gorm.DB, email string, role authorization.Role) *user.User {
	t.Helper()

	u, err := user.NewUser(email, "$2a$12$testhashtesthashtesthash", role)
	require.NoError(t, err)
	require.NoError(t, NewUserRepository(db).Create(context.Background(), u))
	return u
}
