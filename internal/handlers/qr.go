package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"shortlink/internal/repository"
	"shortlink/internal/services"

	"github.com/gin-gonic/gin"
)

// ShowQRCode serves a PNG QR code pointing at the short link. The lookup is a
// peek: it never records a usage event.
func (h *Handler) ShowQRCode(c *gin.Context) {
	shortCode := c.Param("short_code")

	if _, err := h.linkService.Resolve(shortCode); err != nil {
		if errors.Is(err, repository.ErrLinkNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "short link not found"})
			return
		}
		h.logger.Error("Failed to resolve link", "short_code", shortCode, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	size, _ := strconv.Atoi(c.DefaultQuery("size", "256"))
	png, err := h.qrService.GeneratePNG(services.ShortURL(h.cfg.BaseURL, shortCode), size)
	if err != nil {
		h.logger.Error("Failed to generate QR code", "short_code", shortCode, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.Data(http.StatusOK, "image/png", png)
}
