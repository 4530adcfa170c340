package model

import (
	"time"

	"github.com/google/uuid"
)

// UserModel mirrors the 'users' table. Uniqueness of email and username is
// enforced by partial indexes over active rows.
type UserModel struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey"`
	Email           string    `gorm:"type:varchar(255);not null"`
	Username        string    `gorm:"type:varchar(100);not null"`
	PasswordHash    *string   `gorm:"type:varchar(255)"`
	GoogleID        *string   `gorm:"type:varchar(255)"`
	Phone           *string   `gorm:"type:varchar(20)"`
	Company         *string   `gorm:"type:varchar(100)"`
	GoogleMapsURL   *string   `gorm:"type:varchar(500)"`
	ProfileComplete bool      `gorm:"not null;default:false"`
	Active          bool      `gorm:"not null;default:true"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}
