package models

import "time"

// SessionModel is the GORM representation of a live session row. The raw
// bearer token is stored so revocation checks can match on exact value.
type SessionModel struct {
	ID           uint      `gorm:"primaryKey;autoIncrement"`
	UserID       uint      `gorm:"not null;index:idx_sessions_user"`
	SessionToken string    `gorm:"type:varchar(512);not null"`
	IPAddress    string    `gorm:"type:varchar(45)"`
	UserAgent    string    `gorm:"type:varchar(512)"`
	CreatedAt    time.Time `gorm:"not null"`
	ExpiresAt    time.Time `gorm:"not null;index:idx_sessions_expires"`
}

func (SessionModel) TableName() string {
	return "active_sessions"
}
