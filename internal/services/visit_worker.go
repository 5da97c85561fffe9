package services

import (
	"context"
	"errors"
	"log/slog"

	"shortlink/internal/repository"
)

// Visit is a redirect observation queued for asynchronous recording.
type Visit struct {
	ShortCode string
	IPAddress string
	UserAgent string
}

type VisitRecorder struct {
	service      *LinkService
	logger       *slog.Logger
	visitChannel chan Visit
	done         chan struct{}
}

func NewVisitRecorder(service *LinkService, logger *slog.Logger) *VisitRecorder {
	return &VisitRecorder{
		service:      service,
		logger:       logger,
		visitChannel: make(chan Visit, 1000),
		done:         make(chan struct{}),
	}
}

// Done is closed once Start has returned; shutdown waits on it instead of
// guessing how long the worker needs.
func (r *VisitRecorder) Done() <-chan struct{} {
	return r.done
}

func (r *VisitRecorder) Start(ctx context.Context) {
	defer close(r.done)

	r.logger.Info("Visit recorder starting")
	for {
		select {
		case visit := <-r.visitChannel:
			err := r.service.RecordVisit(visit.ShortCode, visit.IPAddress, visit.UserAgent)
			if errors.Is(err, repository.ErrLinkNotFound) {
				// The redirect already happened; recording is best-effort.
				r.logger.Warn("link vanished before usage write", "short_code", visit.ShortCode)
			} else if err != nil {
				r.logger.Error("Failed to record visit", "short_code", visit.ShortCode, "error", err)
			}
		case <-ctx.Done():
			r.logger.Info("Visit recorder stopping")
			return
		}
	}
}

// RecordAsync enqueues without blocking the redirect path; a full channel
// drops the event.
func (r *VisitRecorder) RecordAsync(visit Visit) {
	select {
	case r.visitChannel <- visit:
		// Sent
	default:
		r.logger.Warn("Visit channel full, dropping usage event")
	}
}
