package customers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jordache-jozz8/BA-system/internal/handlers/common"
)

// List returns all customers in insertion order.
func (h *Handler) List(c *gin.Context) {
	cs, err := h.store.List(c.Request.Context())
	if err != nil {
		common.ServerError(c, err)
		return
	}
	c.JSON(http.StatusOK, cs)
}
