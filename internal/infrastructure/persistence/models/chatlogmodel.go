package models

import "time"

// ChatLogModel is the GORM representation of a classified chat interaction,
// read by the sentiment report.
type ChatLogModel struct {
	ID        uint      `gorm:"primaryKey;autoIncrement"`
	Sentiment string    `gorm:"type:enum('positive','neutral','negative');not null"`
	Timestamp time.Time `gorm:"not null;index:idx_chat_logs_timestamp"`
}

func (ChatLogModel) TableName() string {
	return "chat_logs"
}
