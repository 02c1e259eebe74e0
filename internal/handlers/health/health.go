package health

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// Handler reports liveness and process uptime.
type Handler struct {
	started time.Time
	now     func() time.Time
}

func New(started time.Time) *Handler {
	return &Handler{started: started, now: time.Now}
}

// Get handles GET /health. uptime is in seconds.
func (h *Handler) Get(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
		"uptime": h.now().Sub(h.started).Seconds(),
	})
}
