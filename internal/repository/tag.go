package repository

import (
	"context"
	"errors"

	"inkwell/internal/cache"
	"inkwell/internal/models"

	"gorm.io/gorm"
)

// TagRepository defines persistence operations for tags.
type TagRepository interface {
	Create(ctx context.Context, tag *models.Tag) error
	GetByID(ctx context.Context, id uint) (*models.Tag, error)
	GetByIDs(ctx context.Context, ids []uint) ([]models.Tag, error)
	List(ctx context.Context) ([]models.Tag, error)
	UpdateFields(ctx context.Context, id uint, fields map[string]any) (*models.Tag, error)
	Delete(ctx context.Context, id uint) error
	Search(ctx context.Context, query string) ([]models.Tag, error)
}

type tagRepository struct {
	db *gorm.DB
}

// NewTagRepository returns a new TagRepository implementation.
func NewTagRepository(db *gorm.DB) TagRepository {
	return &tagRepository{db: db}
}

func (r *tagRepository) Create(ctx context.Context, tag *models.Tag) error {
	if err := r.db.WithContext(ctx).Create(tag).Error; err != nil {
		if isUniqueConstraintError(err) {
			return models.NewValidationError("Tag slug already exists")
		}
		return models.NewInternalError(err)
	}
	cache.InvalidateTagsList(ctx)
	return nil
}

func (r *tagRepository) GetByID(ctx context.Context, id uint) (*models.Tag, error) {
	var tag models.Tag
	if err := r.db.WithContext(ctx).First(&tag, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Tag not found")
		}
		return nil, models.NewInternalError(err)
	}
	return &tag, nil
}

// GetByIDs returns the tags matching ids. Unknown ids are silently skipped.
func (r *tagRepository) GetByIDs(ctx context.Context, ids []uint) ([]models.Tag, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var tags []models.Tag
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&tags).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return tags, nil
}

// List returns the full tag catalog ordered by name. The catalog is small
// and read often (every post form, every generate call), so it sits behind
// the cache.
func (r *tagRepository) List(ctx context.Context) ([]models.Tag, error) {
	var tags []models.Tag
	err := cache.Aside(ctx, cache.TagsListKey(), &tags, cache.TagsListTTL, func() error {
		if err := r.db.WithContext(ctx).Order("name ASC").Find(&tags).Error; err != nil {
			return models.NewInternalError(err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return tags, nil
}

func (r *tagRepository) UpdateFields(ctx context.Context, id uint, fields map[string]any) (*models.Tag, error) {
	if len(fields) > 0 {
		res := r.db.WithContext(ctx).
			Model(&models.Tag{}).
			Where("id = ?", id).
			Updates(fields)
		if res.Error != nil {
			if isUniqueConstraintError(res.Error) {
				return nil, models.NewValidationError("Tag slug already exists")
			}
			return nil, models.NewInternalError(res.Error)
		}
		if res.RowsAffected == 0 {
			return nil, models.NewNotFoundError("Tag not found")
		}
		cache.InvalidateTagsList(ctx)
	}
	return r.GetByID(ctx, id)
}

func (r *tagRepository) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&models.Tag{}, id)
	if res.Error != nil {
		return models.NewInternalError(res.Error)
	}
	if res.RowsAffected == 0 {
		return models.NewNotFoundError("Tag not found")
	}
	cache.InvalidateTagsList(ctx)
	return nil
}

func (r *tagRepository) Search(ctx context.Context, query string) ([]models.Tag, error) {
	defer dbMetrics.TrackQuery("search", "tags")()

	var tags []models.Tag
	like := likePattern(query)
	err := r.db.WithContext(ctx).
		Where("LOWER(name) LIKE ? OR LOWER(slug) LIKE ?", like, like).
		Order("created_at DESC").
		Limit(searchLimit).
		Find(&tags).Error
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return tags, nil
}
