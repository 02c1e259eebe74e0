package reservations

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jordache-jozz8/BA-system/internal/handlers/common"
)

// Delete removes a reservation and returns the removed record.
func (h *Handler) Delete(c *gin.Context) {
	id, ok := common.ParseID(c)
	if !ok {
		common.NotFound(c, entity)
		return
	}

	r, err := h.store.Delete(c.Request.Context(), id)
	if err != nil {
		common.StoreError(c, err, entity)
		return
	}
	c.JSON(http.StatusOK, r)
}
