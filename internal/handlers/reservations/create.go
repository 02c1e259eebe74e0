package reservations

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jordache-jozz8/BA-system/internal/db"
	"github.com/jordache-jozz8/BA-system/internal/handlers/common"
)

// Create adds a reservation.
// KISS flow:
// 1) Decode payload (client id/status are not part of it)
// 2) Store validates required fields and assigns the next id
// 3) Return the stored record with 201
func (h *Handler) Create(c *gin.Context) {
	var in db.NewReservation
	if err := common.BindJSON(c, &in); err != nil {
		common.InvalidRequest(c, "Invalid JSON body.")
		return
	}

	r, err := h.store.Create(c.Request.Context(), in)
	if err != nil {
		common.StoreError(c, err, entity)
		return
	}
	c.JSON(http.StatusCreated, r)
}
