package api

import (
	"io"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
)

// streamSimulations pushes melt frames to the client as server-sent events.
// An optional ?run_id narrows the stream to a single simulation. The stream
// closes when the client disconnects or the broadcaster shuts down.
func (h *Handler) streamSimulations(c *gin.Context) {
	if h.broadcaster == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "streaming unavailable"})
		return
	}

	runID := c.Query("run_id")

	id, ch := h.broadcaster.Subscribe()
	defer h.broadcaster.Unsubscribe(id)

	slog.Info("client subscribed to melt stream", "subscriber_id", id, "run_id", runID)

	c.Header("Content-Type", "text/event-stream")
	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")

	c.Stream(func(w io.Writer) bool {
		select {
		case <-c.Request.Context().Done():
			slog.Info("client disconnected from melt stream", "subscriber_id", id)
			return false
		case f, ok := <-ch:
			if !ok {
				return false
			}
			if runID != "" && f.RunID != runID {
				return true
			}
			c.SSEvent("melt", f)
			return !f.Done || runID == ""
		}
	})
}
