package repository

import (
	"fmt"

	"shortlink/internal/models"

	"gorm.io/gorm"
)

type UsageRepository struct {
	db *gorm.DB
}

func NewUsageRepository(db *gorm.DB) *UsageRepository {
	return &UsageRepository{db: db}
}

func (r *UsageRepository) Record(linkID string, ipAddress *string, userAgent *string) error {
	usage := models.LinkUsage{
		LinkID:    linkID,
		IPAddress: ipAddress,
		UserAgent: userAgent,
	}

	if err := r.db.Create(&usage).Error; err != nil {
		return fmt.Errorf("failed to record usage: %w", err)
	}

	return nil
}

// ListByLink returns usage events for one link, most recent first. Paging past
// the end yields an empty slice, not an error.
func (r *UsageRepository) ListByLink(linkID string, offset int, limit int) ([]models.LinkUsage, error) {
	var events []models.LinkUsage
	err := r.db.
		Where("link_id = ?", linkID).
		Order("created_at desc").
		Offset(offset).
		Limit(limit).
		Find(&events).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list usage: %w", err)
	}

	return events, nil
}
