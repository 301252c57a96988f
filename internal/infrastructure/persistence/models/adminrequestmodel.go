package models

import "time"

// AdminRequestModel is the GORM representation of a pending role upgrade
// request raised by an operator.
type AdminRequestModel struct {
	ID            uint      `gorm:"primaryKey;autoIncrement"`
	RequesterID   uint      `gorm:"not null"`
	RequestedRole string    `gorm:"type:enum('admin','superadmin');not null"`
	Status        string    `gorm:"type:enum('pending','approved','rejected');not null;default:'pending';index:idx_admin_requests_status"`
	CreatedAt     time.Time `gorm:"not null"`
}

func (AdminRequestModel) TableName() string {
	return "admin_requests"
}
