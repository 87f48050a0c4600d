package service

import (
	"context"
	"errors"
	"strings"

	"inkwell/internal/generate"
	"inkwell/internal/models"
	"inkwell/internal/observability"
	"inkwell/internal/repository"
)

// GenerateService drives AI-assisted drafting. It returns drafts only; the
// caller decides whether to persist them through the normal write paths.
type GenerateService struct {
	generator generate.TextGenerator
	tagRepo   repository.TagRepository
}

// GeneratedPost is the draft handed back to the client. TagIDs holds the
// catalog ids of the model's suggested tag names; unknown names are dropped.
type GeneratedPost struct {
	Title   string `json:"title"`
	Content string `json:"content"`
	TagIDs  []uint `json:"tagIds"`
}

// GeneratedTag is a suggested new tag for the catalog.
type GeneratedTag struct {
	Name string `json:"name"`
	Slug string `json:"slug"`
}

// NewGenerateService returns a new GenerateService.
func NewGenerateService(generator generate.TextGenerator, tagRepo repository.TagRepository) *GenerateService {
	return &GenerateService{generator: generator, tagRepo: tagRepo}
}

// GeneratePost asks the model for a post draft grounded on the current tag
// catalog.
func (s *GenerateService) GeneratePost(ctx context.Context) (*GeneratedPost, error) {
	tags, err := s.tagRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(tags))
	for _, tag := range tags {
		names = append(names, tag.Name)
	}

	text, err := s.generator.GenerateText(ctx, generate.PostPrompt(names))
	if err != nil {
		observability.GenerateRequests.WithLabelValues("post", "error").Inc()
		return nil, mapGenerateError("Could not generate post", err)
	}

	draft, parsed := generate.ParsePostDraft(text)
	outcome := "parsed"
	if !parsed {
		outcome = "fallback"
	}
	observability.GenerateRequests.WithLabelValues("post", outcome).Inc()

	return &GeneratedPost{
		Title:   draft.Title,
		Content: draft.Content,
		TagIDs:  matchTagIDs(tags, draft.TagNames),
	}, nil
}

// GenerateTag asks the model for one new tag absent from the catalog.
func (s *GenerateService) GenerateTag(ctx context.Context) (*GeneratedTag, error) {
	tags, err := s.tagRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	existing := make([]string, 0, len(tags))
	for _, tag := range tags {
		existing = append(existing, tag.Name)
	}

	text, err := s.generator.GenerateText(ctx, generate.TagPrompt(existing))
	if err != nil {
		observability.GenerateRequests.WithLabelValues("tag", "error").Inc()
		return nil, mapGenerateError("Could not generate tag", err)
	}

	draft, ok := generate.ParseTagDraft(text)
	if !ok {
		observability.GenerateRequests.WithLabelValues("tag", "error").Inc()
		return nil, models.NewUpstreamError("Could not generate tag", errors.New("model reply was not a tag draft"))
	}
	observability.GenerateRequests.WithLabelValues("tag", "parsed").Inc()

	return &GeneratedTag{Name: draft.Name, Slug: draft.Slug}, nil
}

// matchTagIDs resolves suggested names against the catalog, matching
// case-insensitively and dropping names with no catalog entry.
func matchTagIDs(tags []models.Tag, names []string) []uint {
	ids := []uint{}
	for _, name := range names {
		for _, tag := range tags {
			if strings.EqualFold(tag.Name, name) {
				ids = append(ids, tag.ID)
				break
			}
		}
	}
	return ids
}

func mapGenerateError(message string, err error) error {
	if errors.Is(err, generate.ErrNotConfigured) {
		return &models.AppError{Code: models.CodeInternal, Message: generate.ErrNotConfigured.Error()}
	}
	return models.NewUpstreamError(message, err)
}
