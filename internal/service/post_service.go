// Package service contains the application's business logic above the
// repository layer: validation, authorization, and orchestration.
package service

import (
	"context"

	"inkwell/internal/models"
	"inkwell/internal/repository"
	"inkwell/internal/validation"
)

// PostService implements post use cases.
type PostService struct {
	postRepo repository.PostRepository
	tagRepo  repository.TagRepository
}

// CreatePostInput carries the fields for creating a post. The author is
// always the verified subject, never a client-supplied value.
type CreatePostInput struct {
	AuthorID uint
	Title    string
	Content  string
	TagIDs   []uint
}

// UpdatePostInput carries a partial update. Nil pointers mean "leave the
// field untouched"; a nil TagIDs slice leaves the tag set unchanged.
type UpdatePostInput struct {
	PostID   uint
	AuthorID uint
	Title    *string
	Content  *string
	TagIDs   []uint
	HasTags  bool
}

// NewPostService returns a new PostService.
func NewPostService(postRepo repository.PostRepository, tagRepo repository.TagRepository) *PostService {
	return &PostService{postRepo: postRepo, tagRepo: tagRepo}
}

func (s *PostService) CreatePost(ctx context.Context, in CreatePostInput) (*models.Post, error) {
	if err := validation.ValidatePostTitle(in.Title); err != nil {
		return nil, models.NewValidationError(err.Error())
	}
	if err := validation.ValidatePostContent(in.Content); err != nil {
		return nil, models.NewValidationError(err.Error())
	}

	tags, err := s.tagRepo.GetByIDs(ctx, in.TagIDs)
	if err != nil {
		return nil, err
	}

	post := &models.Post{
		Title:    in.Title,
		Content:  in.Content,
		AuthorID: in.AuthorID,
	}
	if err := s.postRepo.Create(ctx, post, tags); err != nil {
		return nil, err
	}
	return s.postRepo.GetByID(ctx, post.ID)
}

func (s *PostService) GetPost(ctx context.Context, id uint) (*models.Post, error) {
	return s.postRepo.GetByID(ctx, id)
}

func (s *PostService) ListPosts(ctx context.Context, filter repository.PostFilter) ([]*models.Post, error) {
	return s.postRepo.List(ctx, filter)
}

func (s *PostService) ListMyPosts(ctx context.Context, authorID uint) ([]*models.Post, error) {
	return s.postRepo.List(ctx, repository.PostFilter{AuthorID: authorID})
}

func (s *PostService) UpdatePost(ctx context.Context, in UpdatePostInput) (*models.Post, error) {
	fields := map[string]any{}
	if in.Title != nil {
		if err := validation.ValidatePostTitle(*in.Title); err != nil {
			return nil, models.NewValidationError(err.Error())
		}
		fields["title"] = *in.Title
	}
	if in.Content != nil {
		if err := validation.ValidatePostContent(*in.Content); err != nil {
			return nil, models.NewValidationError(err.Error())
		}
		fields["content"] = *in.Content
	}

	var tags []models.Tag
	if in.HasTags {
		resolved, err := s.tagRepo.GetByIDs(ctx, in.TagIDs)
		if err != nil {
			return nil, err
		}
		// An explicit empty tagIds list clears the tag set.
		tags = resolved
		if tags == nil {
			tags = []models.Tag{}
		}
	}

	return s.postRepo.UpdateOwned(ctx, in.PostID, in.AuthorID, fields, tags)
}

func (s *PostService) DeletePost(ctx context.Context, postID, authorID uint) error {
	return s.postRepo.DeleteOwned(ctx, postID, authorID)
}
