package handler

import (
	"errors"
	"strconv"

	domainerr "github.com/amirhossein-jamali/fanattics-portal/internal/domain/error"
	coreport "github.com/amirhossein-jamali/fanattics-portal/internal/domain/port/core"
	"github.com/amirhossein-jamali/fanattics-portal/internal/infrastructure/adapter/api/dto"
	"github.com/amirhossein-jamali/fanattics-portal/internal/infrastructure/adapter/api/middleware"
	"github.com/amirhossein-jamali/fanattics-portal/internal/infrastructure/adapter/logger"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

const maxListLimit = 100

// parseIDParam reads a positive numeric path parameter, answering 400 when it is malformed
func parseIDParam(c *gin.Context, name string, invalid error) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		c.JSON(domainerr.HTTPStatus(invalid), dto.NewErrorResponse(c.Request.Context(), invalid, "Invalid "+name+" format"))
		return 0, false
	}
	return id, true
}

// queryLimit reads ?limit=, clamped to [1, maxListLimit]
func queryLimit(c *gin.Context, fallback int) int {
	limit, err := strconv.Atoi(c.Query("limit"))
	if err != nil || limit <= 0 {
		return fallback
	}
	if limit > maxListLimit {
		return maxListLimit
	}
	return limit
}

// bindJSON decodes and validates the body, answering 400 on failure
func bindJSON(c *gin.Context, target any) bool {
	err := c.ShouldBindJSON(target)
	if err == nil {
		return true
	}

	message := "Invalid request body"
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		message = "Invalid field " + verrs[0].Field() + ": " + verrs[0].Tag()
	}
	c.JSON(domainerr.HTTPStatus(domainerr.ErrInvalidInput), dto.NewErrorResponse(c.Request.Context(), domainerr.ErrInvalidInput, message))
	return false
}

// respondError maps err onto its status and logs server-side failures
func respondError(c *gin.Context, log coreport.Logger, err error, message string) {
	status := domainerr.HTTPStatus(err)
	if status >= 500 {
		log.Error(message, map[string]any{
			"error":      err.Error(),
			"path":       c.Request.URL.Path,
			"request_id": logger.RequestID(c.Request.Context()),
		})
	}
	_ = c.Error(err)

	if status < 500 {
		message = err.Error()
	}
	c.JSON(status, dto.NewErrorResponse(c.Request.Context(), err, message))
}

// mustUser returns the authenticated member; Auth guarantees one on /api routes
func mustUser(c *gin.Context) (uint64, bool) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.AbortWithStatusJSON(domainerr.HTTPStatus(domainerr.ErrUnauthorized), dto.NewErrorResponse(c.Request.Context(), domainerr.ErrUnauthorized, "Authentication required"))
		return 0, false
	}
	return user.ID, true
}
