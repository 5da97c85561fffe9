package repository

import (
	"errors"
	"fmt"

	"shortlink/internal/models"

	"gorm.io/gorm"
)

var (
	// ErrDuplicateShortCode signals a short code collision on insert. The
	// link service recovers by regenerating; nothing else should see it.
	ErrDuplicateShortCode = errors.New("short code already exists")

	ErrLinkNotFound = errors.New("short link not found")
)

type LinkRepository struct {
	db *gorm.DB
}

func NewLinkRepository(db *gorm.DB) *LinkRepository {
	return &LinkRepository{db: db}
}

// Create inserts a new link. Uniqueness of the short code is enforced by the
// database constraint, not by a pre-check, so two racing inserts can never
// both succeed.
func (r *LinkRepository) Create(shortCode string, targetURL string) (*models.Link, error) {
	link := models.Link{
		ShortCode: shortCode,
		TargetURL: targetURL,
	}

	if err := r.db.Create(&link).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrDuplicateShortCode
		}
		return nil, fmt.Errorf("failed to create link: %w", err)
	}

	return &link, nil
}

func (r *LinkRepository) GetByShortCode(shortCode string) (*models.Link, error) {
	var link models.Link
	err := r.db.Where("short_code = ?", shortCode).First(&link).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrLinkNotFound
		}
		return nil, fmt.Errorf("failed to look up link: %w", err)
	}

	return &link, nil
}
