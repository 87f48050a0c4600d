package service

import (
	"context"
	"strings"

	"inkwell/internal/models"
	"inkwell/internal/observability"
	"inkwell/internal/repository"
)

// Search scopes. An unknown scope matches no collections and returns an
// empty envelope rather than erroring.
const (
	ScopeAll      = "all"
	ScopePosts    = "posts"
	ScopeUsers    = "users"
	ScopeTags     = "tags"
	ScopeComments = "comments"
)

// SearchResults is the fan-out envelope. Every collection key is always
// present so clients never branch on shape; Total counts the returned
// (capped) items, not the database-wide match count.
type SearchResults struct {
	Query    string            `json:"query"`
	Posts    []*models.Post    `json:"posts"`
	Users    []models.User     `json:"users"`
	Tags     []models.Tag      `json:"tags"`
	Comments []*models.Comment `json:"comments"`
	Total    int               `json:"total"`
}

// SearchService fans a query out across the searchable collections.
type SearchService struct {
	postRepo    repository.PostRepository
	userRepo    repository.UserRepository
	tagRepo     repository.TagRepository
	commentRepo repository.CommentRepository
}

// NewSearchService returns a new SearchService.
func NewSearchService(
	postRepo repository.PostRepository,
	userRepo repository.UserRepository,
	tagRepo repository.TagRepository,
	commentRepo repository.CommentRepository,
) *SearchService {
	return &SearchService{
		postRepo:    postRepo,
		userRepo:    userRepo,
		tagRepo:     tagRepo,
		commentRepo: commentRepo,
	}
}

// Search runs the query against every collection the scope selects. Each
// collection query is independent and capped at the repository layer.
func (s *SearchService) Search(ctx context.Context, query, scope string) (*SearchResults, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, models.NewValidationError("Search query is required")
	}
	if scope == "" {
		scope = ScopeAll
	}
	observability.SearchRequests.WithLabelValues(metricScope(scope)).Inc()

	results := &SearchResults{
		Query:    query,
		Posts:    []*models.Post{},
		Users:    []models.User{},
		Tags:     []models.Tag{},
		Comments: []*models.Comment{},
	}

	if scope == ScopeAll || scope == ScopePosts {
		posts, err := s.postRepo.Search(ctx, query)
		if err != nil {
			return nil, err
		}
		if posts != nil {
			results.Posts = posts
		}
	}
	if scope == ScopeAll || scope == ScopeUsers {
		users, err := s.userRepo.Search(ctx, query)
		if err != nil {
			return nil, err
		}
		if users != nil {
			results.Users = users
		}
	}
	if scope == ScopeAll || scope == ScopeTags {
		tags, err := s.tagRepo.Search(ctx, query)
		if err != nil {
			return nil, err
		}
		if tags != nil {
			results.Tags = tags
		}
	}
	if scope == ScopeAll || scope == ScopeComments {
		comments, err := s.commentRepo.Search(ctx, query)
		if err != nil {
			return nil, err
		}
		if comments != nil {
			results.Comments = comments
		}
	}

	results.Total = len(results.Posts) + len(results.Users) + len(results.Tags) + len(results.Comments)
	return results, nil
}

// metricScope collapses client-supplied scopes onto the known label set so
// arbitrary ?type= values cannot grow the metric's cardinality.
func metricScope(scope string) string {
	switch scope {
	case ScopeAll, ScopePosts, ScopeUsers, ScopeTags, ScopeComments:
		return scope
	}
	return "other"
}
