package customers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jordache-jozz8/BA-system/internal/db"
	"github.com/jordache-jozz8/BA-system/internal/handlers/common"
)

// Update modifies the customer fields present in the body.
// KISS flow:
// 1) Resolve the id (a non-numeric id is simply unknown)
// 2) Validate payload shape
// 3) Apply the patch; id is not patchable
// 4) Return the updated customer
func (h *Handler) Update(c *gin.Context) {
	id, ok := common.ParseID(c)
	if !ok {
		common.NotFound(c, entity)
		return
	}

	var p db.CustomerPatch
	if err := common.BindJSON(c, &p); err != nil {
		common.InvalidRequest(c, "Invalid JSON body.")
		return
	}

	cu, err := h.store.Update(c.Request.Context(), id, p)
	if err != nil {
		common.StoreError(c, err, entity)
		return
	}
	c.JSON(http.StatusOK, cu)
}
