package models

import "time"

// UserModel is the GORM representation of an operator account.
type UserModel struct {
	ID           uint      `gorm:"primaryKey;autoIncrement"`
	Email        string    `gorm:"type:varchar(255);not null;uniqueIndex:uq_users_email"`
	PasswordHash string    `gorm:"type:varchar(255);not null"`
	Role         string    `gorm:"type:enum('admin','superadmin');not null;default:'admin'"`
	IsActive     bool      `gorm:"not null;default:true"`
	CreatedAt    time.Time `gorm:"not null"`
}

func (UserModel) TableName() string {
	return "users"
}
