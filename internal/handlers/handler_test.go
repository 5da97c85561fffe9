package handlers

import (
	"log/slog"
	"os"
	"testing"

	"shortlink/internal/config"
	"shortlink/internal/models"
	"shortlink/internal/repository"
	"shortlink/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

func setupTestHandler(t *testing.T, name string) (*Handler, *gorm.DB) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file:"+name+"?mode=memory&cache=shared"), &gorm.Config{TranslateError: true})
	if err != nil {
		t.Fatalf("failed to connect database: %v", err)
	}
	if err := db.AutoMigrate(&models.Link{}, &models.LinkUsage{}); err != nil {
		t.Fatalf("failed to migrate database: %v", err)
	}

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	cfg := config.Config{
		BaseURL:         "http://localhost:8080",
		ShortCodeLength: 5,
	}

	links := repository.NewLinkRepository(db)
	usage := repository.NewUsageRepository(db)
	linkService := services.NewLinkService(links, usage, nil, logger, cfg.ShortCodeLength)
	visits := services.NewVisitRecorder(linkService, logger)
	qr := services.NewQRService()

	h := NewHandler(cfg, logger, linkService, visits, qr)
	return h, db
}

func setupTestRouter(h *Handler) *gin.Engine {
	gin.SetMode(gin.TestMode)
	return h.SetupRouter()
}
