package handlers

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
)

// LatencyHeader stamps every response with an X-Latency header (milliseconds)
// and logs the request at debug level once it completes.
func (h *Handler) LatencyHeader() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Writer = &latencyWriter{ResponseWriter: c.Writer, start: start}

		c.Next()

		elapsed := float64(time.Since(start).Microseconds()) / 1000.0
		h.logger.Debug("request completed",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"latency_ms", elapsed,
		)
	}
}

// latencyWriter injects the header just before the status line goes out;
// headers cannot be added once the response is written.
type latencyWriter struct {
	gin.ResponseWriter
	start   time.Time
	stamped bool
}

func (w *latencyWriter) WriteHeader(code int) {
	if !w.stamped {
		elapsed := float64(time.Since(w.start).Microseconds()) / 1000.0
		w.Header().Set("X-Latency", strconv.FormatFloat(elapsed, 'f', 2, 64))
		w.stamped = true
	}
	w.ResponseWriter.WriteHeader(code)
}
