package service

import (
	"context"

	"inkwell/internal/models"
	"inkwell/internal/repository"
	"inkwell/internal/validation"
)

// TagService implements tag use cases. All mutations are admin-gated at the
// route level.
type TagService struct {
	tagRepo repository.TagRepository
}

// UpdateTagInput carries a partial tag update; nil pointers leave fields
// untouched.
type UpdateTagInput struct {
	TagID uint
	Name  *string
	Slug  *string
}

// NewTagService returns a new TagService.
func NewTagService(tagRepo repository.TagRepository) *TagService {
	return &TagService{tagRepo: tagRepo}
}

func (s *TagService) ListTags(ctx context.Context) ([]models.Tag, error) {
	return s.tagRepo.List(ctx)
}

func (s *TagService) GetTag(ctx context.Context, id uint) (*models.Tag, error) {
	return s.tagRepo.GetByID(ctx, id)
}

func (s *TagService) CreateTag(ctx context.Context, name, slug string) (*models.Tag, error) {
	if err := validation.ValidateTagName(name); err != nil {
		return nil, models.NewValidationError(err.Error())
	}
	if err := validation.ValidateTagSlug(slug); err != nil {
		return nil, models.NewValidationError(err.Error())
	}

	tag := &models.Tag{Name: name, Slug: slug}
	if err := s.tagRepo.Create(ctx, tag); err != nil {
		return nil, err
	}
	return tag, nil
}

func (s *TagService) UpdateTag(ctx context.Context, in UpdateTagInput) (*models.Tag, error) {
	fields := map[string]any{}
	if in.Name != nil {
		if err := validation.ValidateTagName(*in.Name); err != nil {
			return nil, models.NewValidationError(err.Error())
		}
		fields["name"] = *in.Name
	}
	if in.Slug != nil {
		if err := validation.ValidateTagSlug(*in.Slug); err != nil {
			return nil, models.NewValidationError(err.Error())
		}
		fields["slug"] = *in.Slug
	}
	return s.tagRepo.UpdateFields(ctx, in.TagID, fields)
}

func (s *TagService) DeleteTag(ctx context.Context, id uint) error {
	return s.tagRepo.Delete(ctx, id)
}
