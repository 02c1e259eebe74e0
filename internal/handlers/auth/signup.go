package auth

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jordache-jozz8/BA-system/internal/handlers/common"
)

// Signup echoes name and email back with the demo token. Nothing is stored.
func (h *Handler) Signup(c *gin.Context) {
	var in struct {
		Name     string `json:"name"`
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := common.BindJSON(c, &in); err != nil || in.Name == "" || in.Email == "" || in.Password == "" {
		common.InvalidRequest(c, "Name, email, and password are required.")
		return
	}

	c.JSON(http.StatusCreated, response{
		Message: "Account created successfully",
		User:    user{ID: demoUserID, Name: in.Name, Email: in.Email},
		Token:   h.token,
	})
}
