package customers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jordache-jozz8/BA-system/internal/db"
	"github.com/jordache-jozz8/BA-system/internal/handlers/common"
)

// Create adds a customer.
// KISS flow:
// 1) Decode payload
// 2) Store checks name/email/phone, assigns the id and stamps lastVisit
// 3) Return the stored record with 201
func (h *Handler) Create(c *gin.Context) {
	var in db.NewCustomer
	if err := common.BindJSON(c, &in); err != nil {
		common.InvalidRequest(c, "Invalid JSON body.")
		return
	}

	cu, err := h.store.Create(c.Request.Context(), in)
	if err != nil {
		common.StoreError(c, err, entity)
		return
	}
	c.JSON(http.StatusCreated, cu)
}
