package services

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestQRService(t *testing.T) {
	service := NewQRService()

	t.Run("Generate PNG QR Code", func(t *testing.T) {
		data, err := service.GeneratePNG("https://example.com/abc12", 256)
		assert.NoError(t, err)
		assert.NotEmpty(t, data)
		// PNG magic bytes
		assert.Equal(t, byte(0x89), data[0])
		assert.Equal(t, "PNG", string(data[1:4]))
	})

	t.Run("Default size", func(t *testing.T) {
		data, err := service.GeneratePNG("https://example.com/abc12", 0)
		assert.NoError(t, err)
		assert.NotEmpty(t, data)
	})

	t.Run("Content too large", func(t *testing.T) {
		_, err := service.GeneratePNG(strings.Repeat("A", 10000), 256)
		assert.Error(t, err)
	})
}
