package handlers

import (
	"errors"
	"net/http"

	"shortlink/internal/repository"
	"shortlink/internal/services"

	"github.com/gin-gonic/gin"
)

func (h *Handler) RedirectToURL(c *gin.Context) {
	shortCode := c.Param("short_code")

	target, err := h.linkService.Resolve(shortCode)
	if err != nil {
		if errors.Is(err, repository.ErrLinkNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "short link not found"})
			return
		}
		h.logger.Error("Failed to resolve link", "short_code", shortCode, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	// Fire-and-forget; the redirect must not wait on the usage write.
	h.visits.RecordAsync(services.Visit{
		ShortCode: shortCode,
		IPAddress: c.ClientIP(),
		UserAgent: c.Request.UserAgent(),
	})

	c.Redirect(http.StatusMovedPermanently, target)
}
