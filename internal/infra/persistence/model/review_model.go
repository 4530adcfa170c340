package model

import (
	"time"

	"github.com/google/uuid"
)

// ReviewModel mirrors the 'reviews' table.
type ReviewModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID      uuid.UUID `gorm:"type:uuid;not null;index"`
	Author      string    `gorm:"type:varchar(255);not null"`
	Rating      int       `gorm:"not null"`
	Text        string    `gorm:"type:text"`
	PublishedAt *time.Time
	SourceURL   string `gorm:"type:varchar(500);not null"`
	CreatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (ReviewModel) TableName() string {
	return "reviews"
}
