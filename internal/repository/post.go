package repository

import (
	"context"
	"errors"

	"inkwell/internal/cache"
	"inkwell/internal/models"

	"gorm.io/gorm"
)

// PostFilter narrows post listings. Zero values mean "no filter".
type PostFilter struct {
	AuthorID uint
	TagID    uint
}

// PostRepository defines persistence operations for posts.
type PostRepository interface {
	Create(ctx context.Context, post *models.Post, tags []models.Tag) error
	GetByID(ctx context.Context, id uint) (*models.Post, error)
	List(ctx context.Context, filter PostFilter) ([]*models.Post, error)
	UpdateOwned(ctx context.Context, id, authorID uint, fields map[string]any, tags []models.Tag) (*models.Post, error)
	DeleteOwned(ctx context.Context, id, authorID uint) error
	Search(ctx context.Context, query string) ([]*models.Post, error)
}

type postRepository struct {
	db *gorm.DB
}

// NewPostRepository returns a new PostRepository implementation.
func NewPostRepository(db *gorm.DB) PostRepository {
	return &postRepository{db: db}
}

func (r *postRepository) Create(ctx context.Context, post *models.Post, tags []models.Tag) error {
	defer dbMetrics.TrackQuery("create", "posts")()

	post.Tags = tags
	if err := r.db.WithContext(ctx).Create(post).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *postRepository) GetByID(ctx context.Context, id uint) (*models.Post, error) {
	var post models.Post
	err := r.db.WithContext(ctx).
		Preload("Author").
		Preload("Tags").
		First(&post, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Post not found")
		}
		return nil, models.NewInternalError(err)
	}
	return &post, nil
}

func (r *postRepository) List(ctx context.Context, filter PostFilter) ([]*models.Post, error) {
	var posts []*models.Post
	q := r.db.WithContext(ctx).
		Preload("Author").
		Preload("Tags")

	if filter.AuthorID != 0 {
		q = q.Where("posts.author_id = ?", filter.AuthorID)
	}
	if filter.TagID != 0 {
		q = q.Joins("JOIN post_tags ON post_tags.post_id = posts.id").
			Where("post_tags.tag_id = ?", filter.TagID)
	}

	if err := q.Order("posts.created_at DESC").Find(&posts).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return posts, nil
}

// UpdateOwned applies a partial update gated by the combined id+author
// predicate. Zero affected rows means the post is missing or foreign; the
// two cases are deliberately indistinguishable to the caller.
func (r *postRepository) UpdateOwned(ctx context.Context, id, authorID uint, fields map[string]any, tags []models.Tag) (*models.Post, error) {
	defer dbMetrics.TrackQuery("update", "posts")()

	var post models.Post
	err := r.db.WithContext(ctx).
		Where("id = ? AND author_id = ?", id, authorID).
		First(&post).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Post not found or not owned by user")
		}
		return nil, models.NewInternalError(err)
	}

	err = r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if len(fields) > 0 {
			if err := tx.Model(&post).Updates(fields).Error; err != nil {
				return err
			}
		}
		if tags != nil {
			if err := tx.Model(&post).Association("Tags").Replace(tags); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, models.NewInternalError(err)
	}

	cache.InvalidatePost(ctx, id)
	return r.GetByID(ctx, id)
}

// DeleteOwned removes the post gated by the combined id+author predicate.
func (r *postRepository) DeleteOwned(ctx context.Context, id, authorID uint) error {
	res := r.db.WithContext(ctx).
		Where("id = ? AND author_id = ?", id, authorID).
		Delete(&models.Post{})
	if res.Error != nil {
		return models.NewInternalError(res.Error)
	}
	if res.RowsAffected == 0 {
		return models.NewNotFoundError("Post not found or not owned by user")
	}
	cache.InvalidatePost(ctx, id)
	return nil
}

func (r *postRepository) Search(ctx context.Context, query string) ([]*models.Post, error) {
	defer dbMetrics.TrackQuery("search", "posts")()

	var posts []*models.Post
	like := likePattern(query)
	err := r.db.WithContext(ctx).
		Preload("Author").
		Preload("Tags").
		Where("LOWER(title) LIKE ? OR LOWER(content) LIKE ?", like, like).
		Order("created_at DESC").
		Limit(searchLimit).
		Find(&posts).Error
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return posts, nil
}
