package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"shortlink/internal/models"
	"shortlink/internal/repository"
	"shortlink/pkg/utils"

	"github.com/redis/go-redis/v9"
)

var (
	// ErrInvalidLink rejects a URL that fails validation after normalization.
	ErrInvalidLink = errors.New("link is not valid")

	// ErrCodeSpaceExhausted means every generated candidate collided. With a
	// 62^5 code space this signals a capacity or configuration fault, not
	// something worth retrying further.
	ErrCodeSpaceExhausted = errors.New("could not allocate a free short code")
)

const (
	maxCodeAttempts = 10
	linkCacheTTL    = 10 * time.Minute
)

type LinkService struct {
	links         *repository.LinkRepository
	usage         *repository.UsageRepository
	rdb           *redis.Client
	logger        *slog.Logger
	codeGenerator func(int) string
	codeLength    int
}

func NewLinkService(
	links *repository.LinkRepository,
	usage *repository.UsageRepository,
	rdb *redis.Client,
	logger *slog.Logger,
	codeLength int,
) *LinkService {
	return &LinkService{
		links:         links,
		usage:         usage,
		rdb:           rdb,
		logger:        logger,
		codeGenerator: utils.GenerateShortCode,
		codeLength:    codeLength,
	}
}

// CreateLink normalizes and validates the raw URL, then inserts it under a
// freshly generated short code. Collisions are resolved by the store's unique
// constraint plus regeneration, never by a check-then-insert.
func (s *LinkService) CreateLink(rawURL string) (string, error) {
	target := utils.NormalizeURL(rawURL)
	if !utils.IsValidURL(target) {
		return "", ErrInvalidLink
	}

	for attempt := 1; attempt <= maxCodeAttempts; attempt++ {
		shortCode := s.codeGenerator(s.codeLength)

		_, err := s.links.Create(shortCode, target)
		if err == nil {
			return shortCode, nil
		}
		if errors.Is(err, repository.ErrDuplicateShortCode) {
			s.logger.Debug("short code collision, regenerating", "attempt", attempt)
			continue
		}
		return "", err
	}

	s.logger.Error("short code space exhausted", "attempts", maxCodeAttempts, "length", s.codeLength)
	return "", ErrCodeSpaceExhausted
}

// Resolve maps a short code to its target URL. It is side-effect-free: usage
// recording is a separate step so a statistics peek never pollutes the log.
func (s *LinkService) Resolve(shortCode string) (string, error) {
	link, err := s.lookup(shortCode)
	if err != nil {
		return "", err
	}
	return link.TargetURL, nil
}

// RecordVisit re-resolves the link and appends one usage event. Empty ip or
// user-agent strings are stored as NULLs.
func (s *LinkService) RecordVisit(shortCode string, ipAddress string, userAgent string) error {
	link, err := s.lookup(shortCode)
	if err != nil {
		return err
	}

	return s.usage.Record(link.ID, optional(ipAddress), optional(userAgent))
}

// Statistics returns one page of usage events, most recent first. Bounds on
// page and pageSize are the HTTP layer's responsibility; here they are assumed
// valid and only turned into an offset.
func (s *LinkService) Statistics(shortCode string, page int, pageSize int) ([]models.LinkUsage, error) {
	link, err := s.lookup(shortCode)
	if err != nil {
		return nil, err
	}

	offset := (page - 1) * pageSize
	return s.usage.ListByLink(link.ID, offset, pageSize)
}

// lookup fetches a link through the cache. Links are immutable, so a stale
// cache entry cannot serve wrong data, only a vanished one, and links are
// never deleted.
func (s *LinkService) lookup(shortCode string) (*models.Link, error) {
	ctx := context.Background()
	cacheKey := "link:" + shortCode

	if s.rdb != nil {
		val, err := s.rdb.Get(ctx, cacheKey).Result()
		if err == nil {
			var cached models.Link
			if err := json.Unmarshal([]byte(val), &cached); err == nil {
				return &cached, nil
			}
		}
	}

	link, err := s.links.GetByShortCode(shortCode)
	if err != nil {
		return nil, err
	}

	if s.rdb != nil {
		data, err := json.Marshal(link)
		if err == nil {
			if err := s.rdb.Set(ctx, cacheKey, data, linkCacheTTL).Err(); err != nil {
				s.logger.Debug("failed to cache link", "short_code", shortCode, "error", err)
			}
		}
	}

	return link, nil
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// ShortURL renders the public URL for a short code under the configured base.
func ShortURL(baseURL string, shortCode string) string {
	return fmt.Sprintf("%s/%s", baseURL, shortCode)
}
