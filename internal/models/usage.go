package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// LinkUsage is one recorded redirect. Rows are append-only: never updated,
// never deleted.
type LinkUsage struct {
	ID        string    `gorm:"primaryKey;size:36" json:"id"`
	CreatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP;index:idx_link_usage_link_created,priority:2" json:"created_at"`
	LinkID    string    `gorm:"not null;size:36;index:idx_link_usage_link_created,priority:1" json:"link_id"`
	IPAddress *string   `gorm:"size:45" json:"ip_address,omitempty"`
	UserAgent *string   `gorm:"size:255" json:"user_agent,omitempty"`
}

// TableName overrides the table name used by LinkUsage to `link_usage`
func (LinkUsage) TableName() string {
	return "link_usage"
}

func (u *LinkUsage) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	if u.CreatedAt.IsZero() {
		u.CreatedAt = time.Now().UTC()
	}
	return nil
}
