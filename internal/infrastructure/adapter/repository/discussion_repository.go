package repository

import (
	"context"

	"github.com/amirhossein-jamali/fanattics-portal/internal/domain/entity"
	errs "github.com/amirhossein-jamali/fanattics-portal/internal/domain/error"
	coreport "github.com/amirhossein-jamali/fanattics-portal/internal/domain/port/core"
	"github.com/amirhossein-jamali/fanattics-portal/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/fanattics-portal/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
)

var (
	_ persistence.CommentRepository        = (*CommentRepository)(nil)
	_ persistence.DiscussionPostRepository = (*DiscussionPostRepository)(nil)
)

// CommentRepository implements CommentRepository interface using GORM
type CommentRepository struct {
	db     *gorm.DB
	logger coreport.Logger
	dbErrors
}

// NewCommentRepository creates a new CommentRepository instance
func NewCommentRepository(db *gorm.DB, logger coreport.Logger) *CommentRepository {
	return &CommentRepository{
		db:       db,
		logger:   logger,
		dbErrors: newDBErrors(logger, errs.ErrCommentNotFound),
	}
}

func commentToEntity(m *model.Comment) *entity.Comment {
	c := &entity.Comment{
		ID:        m.ID,
		User:      entity.Ref[*entity.User](m.UserID),
		Body:      m.Body,
		Status:    entity.CommentStatus(m.Status),
		Deleted:   m.Deleted,
		CreatedAt: m.CreatedAt,
	}
	if m.ChallengeID != nil {
		c.Challenge = entity.Ref[*entity.Challenge](*m.ChallengeID)
	}
	if m.DiscussionPostID != nil {
		c.DiscussionPost = entity.Ref[*entity.DiscussionPost](*m.DiscussionPostID)
	}
	return c
}

// Create stores a comment and assigns its ID
func (r *CommentRepository) Create(ctx context.Context, comment *entity.Comment) error {
	row := &model.Comment{
		UserID:           comment.User.ID(),
		ChallengeID:      optionalID(comment.Challenge.ID()),
		DiscussionPostID: optionalID(comment.DiscussionPost.ID()),
		Body:             comment.Body,
		Status:           string(comment.Status),
		Deleted:          comment.Deleted,
		CreatedAt:        comment.CreatedAt,
	}
	if err := r.db.WithContext(ctx).Create(row).Error; err != nil {
		return r.handleDatabaseError("creating comment", err, map[string]any{"user_id": row.UserID})
	}
	comment.ID = row.ID
	return nil
}

// GetByID retrieves a comment, including deleted ones
func (r *CommentRepository) GetByID(ctx context.Context, id uint64) (*entity.Comment, error) {
	var row model.Comment
	if err := r.db.WithContext(ctx).First(&row, id).Error; err != nil {
		return nil, r.handleDatabaseError("getting comment", err, map[string]any{"comment_id": id})
	}
	return commentToEntity(&row), nil
}

// Update saves moderation changes
func (r *CommentRepository) Update(ctx context.Context, comment *entity.Comment) error {
	result := r.db.WithContext(ctx).
		Model(&model.Comment{}).
		Where("id = ?", comment.ID).
		Updates(map[string]any{
			"body":    comment.Body,
			"status":  string(comment.Status),
			"deleted": comment.Deleted,
		})
	if result.Error != nil {
		return r.handleDatabaseError("updating comment", result.Error, map[string]any{"comment_id": comment.ID})
	}
	if result.RowsAffected == 0 {
		return errs.ErrCommentNotFound
	}

	r.logger.Info("Comment moderated", map[string]any{
		"comment_id": comment.ID,
		"status":     string(comment.Status),
		"deleted":    comment.Deleted,
	})
	return nil
}

// ListApprovedByPost returns the visible comments of a post, oldest first
func (r *CommentRepository) ListApprovedByPost(ctx context.Context, postID uint64) ([]*entity.Comment, error) {
	var rows []model.Comment
	err := r.db.WithContext(ctx).
		Where("discussion_post_id = ? AND status = ? AND deleted = ?", postID, string(entity.CommentApproved), false).
		Order("created_at, id").
		Find(&rows).Error
	if err != nil {
		return nil, r.handleDatabaseError("listing post comments", err, map[string]any{"post_id": postID})
	}
	return commentsToEntities(rows), nil
}

// FindApprovedByUsers returns approved, non-deleted comments of all given users
func (r *CommentRepository) FindApprovedByUsers(ctx context.Context, userIDs []uint64) ([]*entity.Comment, error) {
	db := r.db.WithContext(ctx).
		Where("status = ? AND deleted = ?", string(entity.CommentApproved), false).
		Order("user_id, created_at, id")
	if len(userIDs) > 0 {
		db = db.Where("user_id IN ?", userIDs)
	}

	var rows []model.Comment
	if err := db.Find(&rows).Error; err != nil {
		return nil, r.handleDatabaseError("finding comments of users", err, map[string]any{"user_count": len(userIDs)})
	}
	return commentsToEntities(rows), nil
}

func commentsToEntities(rows []model.Comment) []*entity.Comment {
	comments := make([]*entity.Comment, 0, len(rows))
	for i := range rows {
		comments = append(comments, commentToEntity(&rows[i]))
	}
	return comments
}

// DiscussionPostRepository implements DiscussionPostRepository interface using GORM
type DiscussionPostRepository struct {
	db *gorm.DB
	dbErrors
}

// NewDiscussionPostRepository creates a new DiscussionPostRepository instance
func NewDiscussionPostRepository(db *gorm.DB, logger coreport.Logger) *DiscussionPostRepository {
	return &DiscussionPostRepository{
		db:       db,
		dbErrors: newDBErrors(logger, errs.ErrPostNotFound),
	}
}

func postToEntity(m *model.DiscussionPost) *entity.DiscussionPost {
	return &entity.DiscussionPost{
		ID:        m.ID,
		Author:    entity.Ref[*entity.User](m.AuthorID),
		Title:     m.Title,
		Body:      m.Body,
		CreatedAt: m.CreatedAt,
	}
}

// GetByID retrieves a post
func (r *DiscussionPostRepository) GetByID(ctx context.Context, id uint64) (*entity.DiscussionPost, error) {
	var row model.DiscussionPost
	if err := r.db.WithContext(ctx).First(&row, id).Error; err != nil {
		return nil, r.handleDatabaseError("getting discussion post", err, map[string]any{"post_id": id})
	}
	return postToEntity(&row), nil
}

// List returns posts newest first
func (r *DiscussionPostRepository) List(ctx context.Context, limit int) ([]*entity.DiscussionPost, error) {
	db := r.db.WithContext(ctx).Order("created_at DESC, id DESC")
	if limit > 0 {
		db = db.Limit(limit)
	}

	var rows []model.DiscussionPost
	if err := db.Find(&rows).Error; err != nil {
		return nil, r.handleDatabaseError("listing discussion posts", err, nil)
	}

	posts := make([]*entity.DiscussionPost, 0, len(rows))
	for i := range rows {
		posts = append(posts, postToEntity(&rows[i]))
	}
	return posts, nil
}
