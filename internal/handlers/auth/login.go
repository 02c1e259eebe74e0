package auth

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jordache-jozz8/BA-system/internal/handlers/common"
)

// Login answers any non-empty email/password pair with the demo token.
func (h *Handler) Login(c *gin.Context) {
	var in struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := common.BindJSON(c, &in); err != nil || in.Email == "" || in.Password == "" {
		common.InvalidRequest(c, "Email and password are required.")
		return
	}

	c.JSON(http.StatusOK, response{
		Message: "Login successful",
		User:    user{ID: demoUserID, Name: "Demo User", Email: in.Email},
		Token:   h.token,
	})
}
