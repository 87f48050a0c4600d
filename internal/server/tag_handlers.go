package server

import (
	"inkwell/internal/featureflags"
	"inkwell/internal/models"
	"inkwell/internal/service"

	"github.com/gofiber/fiber/v2"
)

// GetTags handles GET /api/tags.
func (s *Server) GetTags(c *fiber.Ctx) error {
	tags, err := s.tagService.ListTags(c.Context())
	if err != nil {
		return models.RespondWithAppError(c, err)
	}
	return c.JSON(tags)
}

// GetTag handles GET /api/tags/:id.
func (s *Server) GetTag(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	tag, err := s.tagService.GetTag(c.Context(), id)
	if err != nil {
		return models.RespondWithAppError(c, err)
	}
	return c.JSON(tag)
}

// CreateTag handles POST /api/tags (admin).
func (s *Server) CreateTag(c *fiber.Ctx) error {
	var req struct {
		Name string `json:"name"`
		Slug string `json:"slug"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	tag, err := s.tagService.CreateTag(c.Context(), req.Name, req.Slug)
	if err != nil {
		return models.RespondWithAppError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(tag)
}

// UpdateTag handles PUT /api/tags/:id (admin).
func (s *Server) UpdateTag(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	var req struct {
		Name *string `json:"name"`
		Slug *string `json:"slug"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	tag, err := s.tagService.UpdateTag(c.Context(), service.UpdateTagInput{
		TagID: id,
		Name:  req.Name,
		Slug:  req.Slug,
	})
	if err != nil {
		return models.RespondWithAppError(c, err)
	}
	return c.JSON(tag)
}

// DeleteTag handles DELETE /api/tags/:id (admin).
func (s *Server) DeleteTag(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	if err := s.tagService.DeleteTag(c.Context(), id); err != nil {
		return models.RespondWithAppError(c, err)
	}
	return c.JSON(fiber.Map{
		"message": "Tag deleted",
	})
}

// GenerateTagDraft handles POST /api/tags/generate (admin).
func (s *Server) GenerateTagDraft(c *fiber.Ctx) error {
	if !s.featureFlags.Enabled(featureflags.FlagGenerateTag, s.currentUserID(c)) {
		return models.RespondWithError(c, fiber.StatusForbidden,
			models.NewForbiddenError("Tag generation is disabled"))
	}

	draft, err := s.genService.GenerateTag(c.Context())
	if err != nil {
		return models.RespondWithAppError(c, err)
	}
	return c.JSON(draft)
}
