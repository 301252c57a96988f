package models

import "time"

// KnowledgeRequestModel is the GORM representation of a submitted knowledge
// item awaiting (or past) review.
type KnowledgeRequestModel struct {
	ID          uint       `gorm:"primaryKey;autoIncrement"`
	AdminID     uint       `gorm:"not null;index:idx_knowledge_admin"`
	Title       string     `gorm:"type:varchar(255);not null"`
	Type        string     `gorm:"type:enum('text','link','pdf');not null"`
	Content     string     `gorm:"type:text;not null"`
	Description string     `gorm:"type:varchar(500)"`
	FilePath    string     `gorm:"type:varchar(512)"`
	Status      string     `gorm:"type:enum('pending','approved','rejected');not null;default:'pending';index:idx_knowledge_status"`
	DecisionBy  *uint      `gorm:""`
	DecisionAt  *time.Time `gorm:""`
	CreatedAt   time.Time  `gorm:"not null"`
}

func (KnowledgeRequestModel) TableName() string {
	return "knowledge_requests"
}
