package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Link struct {
	ID        string    `gorm:"primaryKey;size:36" json:"id"`
	CreatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
	ShortCode string    `gorm:"unique;not null;size:20;index" json:"short_code"`
	TargetURL string    `gorm:"not null;type:text" json:"target_url"`
}

// TableName overrides the table name used by Link to `link`
func (Link) TableName() string {
	return "link"
}

func (l *Link) BeforeCreate(tx *gorm.DB) error {
	if l.ID == "" {
		l.ID = uuid.NewString()
	}
	if l.CreatedAt.IsZero() {
		l.CreatedAt = time.Now().UTC()
	}
	return nil
}
