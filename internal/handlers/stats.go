package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"shortlink/internal/repository"

	"github.com/gin-gonic/gin"
)

// ShowStats returns one page of usage events for a short link, most recent
// first. Pagination bounds are checked here, before any store access.
func (h *Handler) ShowStats(c *gin.Context) {
	shortCode := c.Param("short_code")

	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "page must be greater than 0"})
		return
	}

	pageSize, err := strconv.Atoi(c.DefaultQuery("page_size", "10"))
	if err != nil || pageSize < 1 || pageSize > 100 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "page_size must be between 1 and 100"})
		return
	}

	events, err := h.linkService.Statistics(shortCode, page, pageSize)
	if err != nil {
		if errors.Is(err, repository.ErrLinkNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "short link not found"})
			return
		}
		h.logger.Error("Failed to load statistics", "short_code", shortCode, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"short_code": shortCode,
		"page":       page,
		"page_size":  pageSize,
		"usage":      events,
	})
}
