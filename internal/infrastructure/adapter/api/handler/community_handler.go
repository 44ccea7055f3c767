package handler

import (
	"net/http"
	"strings"

	"github.com/amirhossein-jamali/fanattics-portal/internal/domain/entity"
	domainerr "github.com/amirhossein-jamali/fanattics-portal/internal/domain/error"
	coreport "github.com/amirhossein-jamali/fanattics-portal/internal/domain/port/core"
	"github.com/amirhossein-jamali/fanattics-portal/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/fanattics-portal/internal/infrastructure/adapter/api/dto"
	"github.com/gin-gonic/gin"
)

const defaultLeaderboardSize = 50

// CommunityHandler serves the leaderboard, the directory, challenges and discussions
type CommunityHandler struct {
	leaderboard usecase.LeaderboardUseCase
	points      usecase.PointsUseCase
	discussions usecase.DiscussionUseCase
	logger      coreport.Logger
}

// NewCommunityHandler creates a new community handler instance
func NewCommunityHandler(
	leaderboard usecase.LeaderboardUseCase,
	points usecase.PointsUseCase,
	discussions usecase.DiscussionUseCase,
	logger coreport.Logger,
) *CommunityHandler {
	return &CommunityHandler{
		leaderboard: leaderboard,
		points:      points,
		discussions: discussions,
		logger:      logger,
	}
}

// Leaderboard handles GET /api/leaderboard
func (h *CommunityHandler) Leaderboard(c *gin.Context) {
	entries, err := h.leaderboard.Leaderboard(c.Request.Context(), queryLimit(c, defaultLeaderboardSize))
	if err != nil {
		respondError(c, h.logger, err, "Failed to load leaderboard")
		return
	}
	c.JSON(http.StatusOK, entries)
}

// Directory handles GET /api/directory
func (h *CommunityHandler) Directory(c *gin.Context) {
	query := strings.TrimSpace(c.Query("q"))
	entries, err := h.leaderboard.Directory(c.Request.Context(), query, queryLimit(c, maxListLimit))
	if err != nil {
		respondError(c, h.logger, err, "Failed to search directory")
		return
	}
	c.JSON(http.StatusOK, entries)
}

// ListChallenges handles GET /api/challenges
func (h *CommunityHandler) ListChallenges(c *gin.Context) {
	userID, ok := mustUser(c)
	if !ok {
		return
	}

	views, err := h.points.ListChallenges(c.Request.Context(), userID)
	if err != nil {
		respondError(c, h.logger, err, "Failed to load challenges")
		return
	}

	resp := make([]dto.ChallengeResponse, len(views))
	for i, v := range views {
		resp[i] = dto.NewChallengeResponse(v, false)
	}
	c.JSON(http.StatusOK, resp)
}

// GetChallenge handles GET /api/challenges/:slug
func (h *CommunityHandler) GetChallenge(c *gin.Context) {
	userID, ok := mustUser(c)
	if !ok {
		return
	}

	view, err := h.points.GetChallenge(c.Request.Context(), userID, c.Param("slug"))
	if err != nil {
		respondError(c, h.logger, err, "Failed to load challenge")
		return
	}
	c.JSON(http.StatusOK, dto.NewChallengeResponse(*view, true))
}

// CompleteChallenge handles POST /api/admin/challenges/:challengeId/completions
func (h *CommunityHandler) CompleteChallenge(c *gin.Context) {
	challengeID, ok := parseIDParam(c, "challengeId", domainerr.ErrInvalidInput)
	if !ok {
		return
	}

	var req dto.CompletionRequest
	if !bindJSON(c, &req) {
		return
	}

	entry, err := h.points.CompleteChallenge(c.Request.Context(), req.UserID, challengeID)
	if err != nil {
		respondError(c, h.logger, err, "Failed to complete challenge")
		return
	}
	c.JSON(http.StatusCreated, dto.NewLedgerEntryResponse(entry))
}

// ListPosts handles GET /api/discussions
func (h *CommunityHandler) ListPosts(c *gin.Context) {
	posts, err := h.discussions.ListPosts(c.Request.Context(), queryLimit(c, 0))
	if err != nil {
		respondError(c, h.logger, err, "Failed to load discussions")
		return
	}

	resp := make([]dto.PostResponse, len(posts))
	for i, p := range posts {
		resp[i] = dto.NewPostResponse(p)
	}
	c.JSON(http.StatusOK, resp)
}

// ListComments handles GET /api/discussions/:postId/comments
func (h *CommunityHandler) ListComments(c *gin.Context) {
	postID, ok := parseIDParam(c, "postId", domainerr.ErrInvalidInput)
	if !ok {
		return
	}

	comments, err := h.discussions.ListComments(c.Request.Context(), postID)
	if err != nil {
		respondError(c, h.logger, err, "Failed to load comments")
		return
	}
	c.JSON(http.StatusOK, commentResponses(comments))
}

// AddComment handles POST /api/discussions/:postId/comments
func (h *CommunityHandler) AddComment(c *gin.Context) {
	userID, ok := mustUser(c)
	if !ok {
		return
	}
	postID, ok := parseIDParam(c, "postId", domainerr.ErrInvalidInput)
	if !ok {
		return
	}

	var req dto.CreateCommentRequest
	if !bindJSON(c, &req) {
		return
	}

	comment, err := h.discussions.AddComment(c.Request.Context(), userID, postID, req.Body)
	if err != nil {
		respondError(c, h.logger, err, "Failed to add comment")
		return
	}
	c.JSON(http.StatusCreated, dto.NewCommentResponse(comment))
}

// ModerateComment handles PATCH /api/admin/comments/:commentId
func (h *CommunityHandler) ModerateComment(c *gin.Context) {
	commentID, ok := parseIDParam(c, "commentId", domainerr.ErrInvalidInput)
	if !ok {
		return
	}

	var req dto.ModerationRequest
	if !bindJSON(c, &req) {
		return
	}

	var moderation usecase.Moderation
	if req.Status != nil {
		status := entity.CommentStatus(*req.Status)
		moderation.Status = &status
	}
	moderation.Deleted = req.Deleted

	comment, err := h.discussions.ModerateComment(c.Request.Context(), commentID, moderation)
	if err != nil {
		respondError(c, h.logger, err, "Failed to moderate comment")
		return
	}
	c.JSON(http.StatusOK, dto.NewCommentResponse(comment))
}

func commentResponses(comments []*entity.Comment) []dto.CommentResponse {
	resp := make([]dto.CommentResponse, len(comments))
	for i, comment := range comments {
		resp[i] = dto.NewCommentResponse(comment)
	}
	return resp
}
