package common

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/jordache-jozz8/BA-system/internal/db"
	"github.com/jordache-jozz8/BA-system/internal/middleware"
)

// Package common provides small, shared helpers used across handlers.
// KISS: tiny functions, no shared state, one response shape per status.

// BindJSON decodes the request body into dst. An empty body decodes as {}.
func BindJSON(c *gin.Context, dst any) error {
	if c.Request.Body == nil || c.Request.ContentLength == 0 {
		return nil
	}
	if err := c.ShouldBindJSON(dst); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

// ParseID reads the :id path param. ok is false when it is not an integer;
// such an id can never match a record.
func ParseID(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	return id, err == nil
}

func InvalidRequest(c *gin.Context, msg string) {
	c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_request", "message": msg})
}

// NotFound answers 404 naming the entity and the id exactly as requested.
func NotFound(c *gin.Context, entity string) {
	c.JSON(http.StatusNotFound, gin.H{"error": "not_found", "message": fmt.Sprintf("%s %s not found.", entity, c.Param("id"))})
}

// ServerError logs err and answers a generic 500.
func ServerError(c *gin.Context, err error) {
	log := middleware.LoggerFrom(c)
	log.Error().Err(err).Str("path", c.Request.URL.Path).Msg("handler error")
	c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
}

// StoreError maps a store error to its response.
func StoreError(c *gin.Context, err error, entity string) {
	var verr *db.ValidationError
	switch {
	case errors.As(err, &verr):
		InvalidRequest(c, verr.Message)
	case errors.Is(err, db.ErrNotFound):
		NotFound(c, entity)
	default:
		ServerError(c, err)
	}
}
