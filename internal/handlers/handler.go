package handlers

import (
	"log/slog"

	"shortlink/internal/config"
	"shortlink/internal/services"
)

type Handler struct {
	cfg         config.Config
	logger      *slog.Logger
	linkService *services.LinkService
	visits      *services.VisitRecorder
	qrService   *services.QRService
}

func NewHandler(
	cfg config.Config,
	logger *slog.Logger,
	linkService *services.LinkService,
	visits *services.VisitRecorder,
	qrService *services.QRService,
) *Handler {
	return &Handler{
		cfg:         cfg,
		logger:      logger,
		linkService: linkService,
		visits:      visits,
		qrService:   qrService,
	}
}
