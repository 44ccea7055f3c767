package discussion

import (
	"context"
	"fmt"

	"github.com/amirhossein-jamali/fanattics-portal/internal/domain/entity"
	errs "github.com/amirhossein-jamali/fanattics-portal/internal/domain/error"
	"github.com/amirhossein-jamali/fanattics-portal/internal/domain/port/cache"
	coreport "github.com/amirhossein-jamali/fanattics-portal/internal/domain/port/core"
	"github.com/amirhossein-jamali/fanattics-portal/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/fanattics-portal/internal/domain/port/usecase"
)

const maxPostsPerPage = 100

var _ usecase.DiscussionUseCase = (*Service)(nil)

// Service manages discussion posts and their comments
type Service struct {
	postRepo     persistence.DiscussionPostRepository
	commentRepo  persistence.CommentRepository
	viewCache    cache.ViewCache
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

// NewService creates a new discussion Service
func NewService(
	postRepo persistence.DiscussionPostRepository,
	commentRepo persistence.CommentRepository,
	viewCache cache.ViewCache,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) *Service {
	return &Service{
		postRepo:     postRepo,
		commentRepo:  commentRepo,
		viewCache:    viewCache,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// ListPosts returns the newest posts
func (s *Service) ListPosts(ctx context.Context, limit int) ([]*entity.DiscussionPost, error) {
	if limit <= 0 || limit > maxPostsPerPage {
		limit = maxPostsPerPage
	}
	return s.postRepo.List(ctx, limit)
}

// ListComments returns the approved comments of a post
func (s *Service) ListComments(ctx context.Context, postID uint64) ([]*entity.Comment, error) {
	if _, err := s.postRepo.GetByID(ctx, postID); err != nil {
		return nil, err
	}
	return s.commentRepo.ListApprovedByPost(ctx, postID)
}

// AddComment stores a pending comment; it counts once a moderator approves it
func (s *Service) AddComment(ctx context.Context, userID, postID uint64, body string) (*entity.Comment, error) {
	comment, err := entity.NewPostComment(userID, postID, body, s.timeProvider)
	if err != nil {
		return nil, err
	}

	if _, err := s.postRepo.GetByID(ctx, postID); err != nil {
		return nil, err
	}

	if err := s.commentRepo.Create(ctx, comment); err != nil {
		return nil, fmt.Errorf("failed to create comment: %w", err)
	}

	s.logger.Info("Comment submitted", map[string]any{
		"comment_id": comment.ID,
		"user_id":    userID,
		"post_id":    postID,
	})
	return comment, nil
}

// ModerateComment changes status and/or the deleted flag of a comment
func (s *Service) ModerateComment(ctx context.Context, commentID uint64, m usecase.Moderation) (*entity.Comment, error) {
	if m.Status != nil && !m.Status.IsValid() {
		return nil, errs.ErrInvalidInput
	}

	comment, err := s.commentRepo.GetByID(ctx, commentID)
	if err != nil {
		return nil, err
	}

	countedBefore := comment.Counts()
	if m.Status != nil {
		comment.Status = *m.Status
	}
	if m.Deleted != nil {
		comment.Deleted = *m.Deleted
	}

	if err := s.commentRepo.Update(ctx, comment); err != nil {
		return nil, fmt.Errorf("failed to update comment %d: %w", commentID, err)
	}

	s.logger.Info("Comment moderated", map[string]any{
		"comment_id": commentID,
		"status":     string(comment.Status),
		"deleted":    comment.Deleted,
	})

	// Comment counts feed the leaderboard
	if countedBefore != comment.Counts() {
		if err := s.viewCache.Invalidate(ctx, cache.KeyLeaderboard); err != nil {
			s.logger.Warn("Failed to invalidate leaderboard cache", map[string]any{
				"error": err.Error(),
			})
		}
	}

	return comment, nil
}
