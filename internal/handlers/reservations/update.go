package reservations

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jordache-jozz8/BA-system/internal/db"
	"github.com/jordache-jozz8/BA-system/internal/handlers/common"
)

// Update overwrites the fields present in the body. The id never changes,
// even when the body carries one.
func (h *Handler) Update(c *gin.Context) {
	id, ok := common.ParseID(c)
	if !ok {
		common.NotFound(c, entity)
		return
	}

	var p db.ReservationPatch
	if err := common.BindJSON(c, &p); err != nil {
		common.InvalidRequest(c, "Invalid JSON body.")
		return
	}

	r, err := h.store.Update(c.Request.Context(), id, p)
	if err != nil {
		common.StoreError(c, err, entity)
		return
	}
	c.JSON(http.StatusOK, r)
}
