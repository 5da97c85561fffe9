package handlers

import (
	"errors"
	"net/http"

	"shortlink/internal/services"

	"github.com/gin-gonic/gin"
)

type ShortenRequest struct {
	URL string `json:"url" binding:"required"`
}

// ShortenURL handles the API request to shorten a URL
func (h *Handler) ShortenURL(c *gin.Context) {
	var req ShortenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	shortCode, err := h.linkService.CreateLink(req.URL)
	if err != nil {
		if errors.Is(err, services.ErrInvalidLink) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "link is not valid"})
			return
		}
		h.logger.Error("Failed to create link", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"short_code": shortCode,
		"short_url":  services.ShortURL(h.cfg.BaseURL, shortCode),
	})
}
