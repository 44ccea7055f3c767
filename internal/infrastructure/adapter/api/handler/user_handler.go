package handler

import (
	"net/http"

	domainerr "github.com/amirhossein-jamali/fanattics-portal/internal/domain/error"
	coreport "github.com/amirhossein-jamali/fanattics-portal/internal/domain/port/core"
	"github.com/amirhossein-jamali/fanattics-portal/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/fanattics-portal/internal/infrastructure/adapter/api/dto"
	"github.com/amirhossein-jamali/fanattics-portal/internal/infrastructure/adapter/api/middleware"
	"github.com/gin-gonic/gin"
)

// UserHandler handles profile and points requests
type UserHandler struct {
	userUseCase   usecase.UserUseCase
	pointsUseCase usecase.PointsUseCase
	logger        coreport.Logger
}

// NewUserHandler creates a new user handler instance
func NewUserHandler(
	userUseCase usecase.UserUseCase,
	pointsUseCase usecase.PointsUseCase,
	logger coreport.Logger,
) *UserHandler {
	return &UserHandler{
		userUseCase:   userUseCase,
		pointsUseCase: pointsUseCase,
		logger:        logger,
	}
}

// GetMe handles GET /api/me
func (h *UserHandler) GetMe(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		respondError(c, h.logger, domainerr.ErrUnauthorized, "Authentication required")
		return
	}
	c.JSON(http.StatusOK, dto.NewProfileResponse(user))
}

// UpdateMe handles PATCH /api/me
func (h *UserHandler) UpdateMe(c *gin.Context) {
	userID, ok := mustUser(c)
	if !ok {
		return
	}

	var req dto.UpdateProfileRequest
	if !bindJSON(c, &req) {
		return
	}

	user, err := h.userUseCase.UpdateProfile(c.Request.Context(), userID, req.ToProfileUpdate())
	if err != nil {
		respondError(c, h.logger, err, "Failed to update profile")
		return
	}
	c.JSON(http.StatusOK, dto.NewProfileResponse(user))
}

// MyPoints handles GET /api/me/points
func (h *UserHandler) MyPoints(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		respondError(c, h.logger, domainerr.ErrUnauthorized, "Authentication required")
		return
	}
	c.JSON(http.StatusOK, dto.PointsResponse{
		UserID: user.ID,
		Points: h.pointsUseCase.CalculateUserPoints(c.Request.Context(), user),
	})
}

// MyStats handles GET /api/me/stats
func (h *UserHandler) MyStats(c *gin.Context) {
	userID, ok := mustUser(c)
	if !ok {
		return
	}
	stats := h.pointsUseCase.ComputeStats(c.Request.Context(), []uint64{userID})
	c.JSON(http.StatusOK, stats[userID])
}

// UserPoints handles GET /api/users/:userId/points
func (h *UserHandler) UserPoints(c *gin.Context) {
	userID, ok := parseIDParam(c, "userId", domainerr.ErrInvalidUserID)
	if !ok {
		return
	}

	user, err := h.userUseCase.GetProfile(c.Request.Context(), userID)
	if err != nil {
		respondError(c, h.logger, err, "Failed to load user")
		return
	}
	c.JSON(http.StatusOK, dto.PointsResponse{
		UserID: user.ID,
		Points: h.pointsUseCase.CalculateUserPoints(c.Request.Context(), user),
	})
}

// AwardPoints handles POST /api/admin/users/:userId/points
func (h *UserHandler) AwardPoints(c *gin.Context) {
	userID, ok := parseIDParam(c, "userId", domainerr.ErrInvalidUserID)
	if !ok {
		return
	}

	var req dto.AwardPointsRequest
	if !bindJSON(c, &req) {
		return
	}

	entry, err := h.pointsUseCase.AwardPoints(c.Request.Context(), userID, req.Amount, req.Reason)
	if err != nil {
		respondError(c, h.logger, err, "Failed to award points")
		return
	}

	h.logger.Info("Points awarded by administrator", map[string]any{
		"user_id": userID,
		"amount":  req.Amount,
	})
	c.JSON(http.StatusCreated, dto.NewLedgerEntryResponse(entry))
}
