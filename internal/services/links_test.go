package services

import (
	"fmt"
	"log/slog"
	"os"
	"sync"
	"testing"

	"shortlink/internal/models"
	"shortlink/internal/repository"
	"shortlink/pkg/utils"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T, name string) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file:"+name+"?mode=memory&cache=shared"), &gorm.Config{TranslateError: true})
	if err != nil {
		t.Fatalf("failed to connect database: %v", err)
	}
	if err := db.AutoMigrate(&models.Link{}, &models.LinkUsage{}); err != nil {
		t.Fatalf("failed to migrate database: %v", err)
	}
	return db
}

func newTestService(t *testing.T, name string) (*LinkService, *gorm.DB) {
	t.Helper()
	db := setupTestDB(t, name)
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	links := repository.NewLinkRepository(db)
	usage := repository.NewUsageRepository(db)
	return NewLinkService(links, usage, nil, logger, 5), db
}

func TestCreateLink(t *testing.T) {
	service, db := newTestService(t, "svc_create")

	t.Run("Create and resolve roundtrip", func(t *testing.T) {
		shortCode, err := service.CreateLink("https://example.com/page")
		assert.NoError(t, err)
		assert.Len(t, shortCode, 5)

		target, err := service.Resolve(shortCode)
		assert.NoError(t, err)
		assert.Equal(t, "https://example.com/page", target)
	})

	t.Run("Scheme is prepended before storing", func(t *testing.T) {
		shortCode, err := service.CreateLink("example.org/path")
		assert.NoError(t, err)

		target, err := service.Resolve(shortCode)
		assert.NoError(t, err)
		assert.Equal(t, "https://example.org/path", target)
	})

	t.Run("Invalid link rejected before persistence", func(t *testing.T) {
		var before int64
		db.Model(&models.Link{}).Count(&before)

		_, err := service.CreateLink("not a url")
		assert.ErrorIs(t, err, ErrInvalidLink)

		var after int64
		db.Model(&models.Link{}).Count(&after)
		assert.Equal(t, before, after)
	})

	t.Run("Collision Retry", func(t *testing.T) {
		calls := 0
		service.codeGenerator = func(int) string {
			calls++
			if calls == 1 {
				return "CLASH"
			}
			return "FRESH"
		}
		defer func() { service.codeGenerator = utils.GenerateShortCode }()

		db.Create(&models.Link{ShortCode: "CLASH", TargetURL: "https://a.example.com"})

		shortCode, err := service.CreateLink("https://b.example.com")
		assert.NoError(t, err)
		assert.Equal(t, "FRESH", shortCode)
		assert.Equal(t, 2, calls)
	})

	t.Run("Code space exhaustion", func(t *testing.T) {
		service.codeGenerator = func(int) string { return "STUCK" }
		defer func() { service.codeGenerator = utils.GenerateShortCode }()

		db.Create(&models.Link{ShortCode: "STUCK", TargetURL: "https://a.example.com"})

		_, err := service.CreateLink("https://b.example.com")
		assert.ErrorIs(t, err, ErrCodeSpaceExhausted)
	})

	t.Run("DB Create Error", func(t *testing.T) {
		serviceErr, dbErr := newTestService(t, "svc_create_broken")
		dbErr.Migrator().DropTable(&models.Link{})

		_, err := serviceErr.CreateLink("https://example.com")
		assert.Error(t, err)
		assert.NotErrorIs(t, err, ErrCodeSpaceExhausted)
	})
}

func TestCreateLink_Concurrent(t *testing.T) {
	service, db := newTestService(t, "svc_concurrent")

	// Serialize the sqlite pool; concurrency under test is the goroutines
	// racing through code generation and insert, not sqlite write locking.
	sqlDB, err := db.DB()
	assert.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	const n = 20
	codes := make(chan string, n)
	errs := make(chan error, n)

	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			shortCode, err := service.CreateLink(fmt.Sprintf("https://example.com/%d", i))
			if err != nil {
				errs <- err
				return
			}
			codes <- shortCode
		}(i)
	}
	wg.Wait()
	close(codes)
	close(errs)

	for err := range errs {
		assert.NoError(t, err)
	}

	seen := make(map[string]bool)
	for code := range codes {
		assert.False(t, seen[code], "short code %q allocated twice", code)
		seen[code] = true
	}
	assert.Len(t, seen, n)
}

func TestResolve(t *testing.T) {
	service, _ := newTestService(t, "svc_resolve")

	t.Run("Unknown code", func(t *testing.T) {
		_, err := service.Resolve("ZZZZZ")
		assert.ErrorIs(t, err, repository.ErrLinkNotFound)
	})

	t.Run("Resolve does not record usage", func(t *testing.T) {
		shortCode, err := service.CreateLink("https://example.com")
		assert.NoError(t, err)

		_, err = service.Resolve(shortCode)
		assert.NoError(t, err)

		events, err := service.Statistics(shortCode, 1, 10)
		assert.NoError(t, err)
		assert.Empty(t, events)
	})
}

func TestRecordVisitAndStatistics(t *testing.T) {
	service, _ := newTestService(t, "svc_visits")

	t.Run("Visit shows up first in statistics", func(t *testing.T) {
		shortCode, err := service.CreateLink("https://example.com")
		assert.NoError(t, err)

		assert.NoError(t, service.RecordVisit(shortCode, "203.0.113.9", "curl/8.0"))

		events, err := service.Statistics(shortCode, 1, 10)
		assert.NoError(t, err)
		assert.Len(t, events, 1)
		assert.Equal(t, "203.0.113.9", *events[0].IPAddress)
		assert.Equal(t, "curl/8.0", *events[0].UserAgent)
	})

	t.Run("Empty ip and user agent stored as NULL", func(t *testing.T) {
		shortCode, err := service.CreateLink("https://example.com/anon")
		assert.NoError(t, err)

		assert.NoError(t, service.RecordVisit(shortCode, "", ""))

		events, err := service.Statistics(shortCode, 1, 10)
		assert.NoError(t, err)
		assert.Len(t, events, 1)
		assert.Nil(t, events[0].IPAddress)
		assert.Nil(t, events[0].UserAgent)
	})

	t.Run("Visit on unknown code", func(t *testing.T) {
		err := service.RecordVisit("ZZZZZ", "203.0.113.9", "curl/8.0")
		assert.ErrorIs(t, err, repository.ErrLinkNotFound)
	})

	t.Run("Statistics on unknown code", func(t *testing.T) {
		_, err := service.Statistics("ZZZZZ", 1, 10)
		assert.ErrorIs(t, err, repository.ErrLinkNotFound)
	})

	t.Run("Statistics pagination", func(t *testing.T) {
		shortCode, err := service.CreateLink("https://example.com/paged")
		assert.NoError(t, err)

		for i := 0; i < 15; i++ {
			assert.NoError(t, service.RecordVisit(shortCode, "", ""))
		}

		page1, err := service.Statistics(shortCode, 1, 10)
		assert.NoError(t, err)
		assert.Len(t, page1, 10)

		page2, err := service.Statistics(shortCode, 2, 10)
		assert.NoError(t, err)
		assert.Len(t, page2, 5)
	})
}

func TestShortURL(t *testing.T) {
	assert.Equal(t, "http://localhost:8080/abc12", ShortURL("http://localhost:8080", "abc12"))
}
