package analytics

import (
	"net/http"

	"github.com/gin-gonic/gin"
	agg "github.com/jordache-jozz8/BA-system/internal/analytics"
	"github.com/jordache-jozz8/BA-system/internal/db"
	"github.com/jordache-jozz8/BA-system/internal/handlers/common"
)

// Handler serves the dashboard summary, recomputed on every call.
type Handler struct {
	reservations db.ReservationStore
	customers    db.CustomerStore
}

func New(rs db.ReservationStore, cs db.CustomerStore) *Handler {
	return &Handler{reservations: rs, customers: cs}
}

// Get handles GET /api/analytics.
func (h *Handler) Get(c *gin.Context) {
	ctx := c.Request.Context()
	rs, err := h.reservations.List(ctx)
	if err != nil {
		common.ServerError(c, err)
		return
	}
	cs, err := h.customers.List(ctx)
	if err != nil {
		common.ServerError(c, err)
		return
	}
	c.JSON(http.StatusOK, agg.Compute(rs, cs))
}
