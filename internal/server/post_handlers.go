package server

import (
	"inkwell/internal/featureflags"
	"inkwell/internal/models"
	"inkwell/internal/repository"
	"inkwell/internal/service"

	"github.com/gofiber/fiber/v2"
)

// GetPosts handles GET /api/posts. Supports optional ?author= and ?tag=
// filters.
func (s *Server) GetPosts(c *fiber.Ctx) error {
	filter := repository.PostFilter{}
	if author := c.QueryInt("author"); author > 0 {
		filter.AuthorID = uint(author)
	}
	if tag := c.QueryInt("tag"); tag > 0 {
		filter.TagID = uint(tag)
	}

	posts, err := s.postService.ListPosts(c.Context(), filter)
	if err != nil {
		return models.RespondWithAppError(c, err)
	}
	return c.JSON(posts)
}

// GetMyPosts handles GET /api/posts/me.
func (s *Server) GetMyPosts(c *fiber.Ctx) error {
	posts, err := s.postService.ListMyPosts(c.Context(), s.currentUserID(c))
	if err != nil {
		return models.RespondWithAppError(c, err)
	}
	return c.JSON(posts)
}

// GetPost handles GET /api/posts/:id.
func (s *Server) GetPost(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	post, err := s.postService.GetPost(c.Context(), id)
	if err != nil {
		return models.RespondWithAppError(c, err)
	}
	return c.JSON(post)
}

// CreatePost handles POST /api/posts.
func (s *Server) CreatePost(c *fiber.Ctx) error {
	var req struct {
		Title   string `json:"title"`
		Content string `json:"content"`
		TagIDs  []uint `json:"tagIds"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	post, err := s.postService.CreatePost(c.Context(), service.CreatePostInput{
		AuthorID: s.currentUserID(c),
		Title:    req.Title,
		Content:  req.Content,
		TagIDs:   req.TagIDs,
	})
	if err != nil {
		return models.RespondWithAppError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(post)
}

// UpdatePost handles PUT /api/posts/:id. Only fields present in the body
// change; a present tagIds replaces the whole tag set.
func (s *Server) UpdatePost(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	var req struct {
		Title   *string `json:"title"`
		Content *string `json:"content"`
		TagIDs  *[]uint `json:"tagIds"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	in := service.UpdatePostInput{
		PostID:   id,
		AuthorID: s.currentUserID(c),
		Title:    req.Title,
		Content:  req.Content,
	}
	if req.TagIDs != nil {
		in.HasTags = true
		in.TagIDs = *req.TagIDs
	}

	post, err := s.postService.UpdatePost(c.Context(), in)
	if err != nil {
		return models.RespondWithAppError(c, err)
	}
	return c.JSON(post)
}

// DeletePost handles DELETE /api/posts/:id.
func (s *Server) DeletePost(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	if err := s.postService.DeletePost(c.Context(), id, s.currentUserID(c)); err != nil {
		return models.RespondWithAppError(c, err)
	}
	return c.JSON(fiber.Map{
		"message": "Post deleted",
	})
}

// GeneratePostDraft handles POST /api/posts/generate.
func (s *Server) GeneratePostDraft(c *fiber.Ctx) error {
	if !s.featureFlags.Enabled(featureflags.FlagGeneratePost, s.currentUserID(c)) {
		return models.RespondWithError(c, fiber.StatusForbidden,
			models.NewForbiddenError("Post generation is disabled"))
	}

	draft, err := s.genService.GeneratePost(c.Context())
	if err != nil {
		return models.RespondWithAppError(c, err)
	}
	return c.JSON(draft)
}
