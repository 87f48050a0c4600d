package repository

import (
	"context"
	"errors"

	"inkwell/internal/models"

	"gorm.io/gorm"
)

// CommentRepository defines persistence operations for comments.
type CommentRepository interface {
	Create(ctx context.Context, comment *models.Comment) error
	GetByID(ctx context.Context, id uint) (*models.Comment, error)
	ListByPost(ctx context.Context, postID uint) ([]*models.Comment, error)
	UpdateOwned(ctx context.Context, id, postID, authorID uint, content string) (*models.Comment, error)
	DeleteOwned(ctx context.Context, id, postID, authorID uint) error
	Search(ctx context.Context, query string) ([]*models.Comment, error)
}

type commentRepository struct {
	db *gorm.DB
}

// NewCommentRepository returns a new CommentRepository implementation.
func NewCommentRepository(db *gorm.DB) CommentRepository {
	return &commentRepository{db: db}
}

func (r *commentRepository) Create(ctx context.Context, comment *models.Comment) error {
	defer dbMetrics.TrackQuery("create", "comments")()

	if err := r.db.WithContext(ctx).Create(comment).Error; err != nil {
		return models.NewInternalError(err)
	}
	// Reload with the author resolved for the response.
	if err := r.db.WithContext(ctx).Preload("Author").First(comment, comment.ID).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *commentRepository) GetByID(ctx context.Context, id uint) (*models.Comment, error) {
	var comment models.Comment
	err := r.db.WithContext(ctx).
		Preload("Author").
		First(&comment, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Comment not found")
		}
		return nil, models.NewInternalError(err)
	}
	return &comment, nil
}

func (r *commentRepository) ListByPost(ctx context.Context, postID uint) ([]*models.Comment, error) {
	var comments []*models.Comment
	err := r.db.WithContext(ctx).
		Preload("Author").
		Where("post_id = ?", postID).
		Order("created_at DESC").
		Find(&comments).Error
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return comments, nil
}

// UpdateOwned updates comment content gated by the combined id+post+author
// predicate; zero affected rows conflates missing and foreign comments.
func (r *commentRepository) UpdateOwned(ctx context.Context, id, postID, authorID uint, content string) (*models.Comment, error) {
	res := r.db.WithContext(ctx).
		Model(&models.Comment{}).
		Where("id = ? AND post_id = ? AND author_id = ?", id, postID, authorID).
		Update("content", content)
	if res.Error != nil {
		return nil, models.NewInternalError(res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, models.NewNotFoundError("Comment not found or not owned by user")
	}
	return r.GetByID(ctx, id)
}

func (r *commentRepository) DeleteOwned(ctx context.Context, id, postID, authorID uint) error {
	res := r.db.WithContext(ctx).
		Where("id = ? AND post_id = ? AND author_id = ?", id, postID, authorID).
		Delete(&models.Comment{})
	if res.Error != nil {
		return models.NewInternalError(res.Error)
	}
	if res.RowsAffected == 0 {
		return models.NewNotFoundError("Comment not found or not owned by user")
	}
	return nil
}

func (r *commentRepository) Search(ctx context.Context, query string) ([]*models.Comment, error) {
	defer dbMetrics.TrackQuery("search", "comments")()

	var comments []*models.Comment
	like := likePattern(query)
	err := r.db.WithContext(ctx).
		Preload("Author").
		Preload("Post").
		Where("LOWER(content) LIKE ?", like).
		Order("created_at DESC").
		Limit(searchLimit).
		Find(&comments).Error
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return comments, nil
}
