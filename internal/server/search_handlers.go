package server

import (
	"inkwell/internal/models"

	"github.com/gofiber/fiber/v2"
)

// Search handles GET /api/search?q=&type=. The scope defaults to all
// collections.
func (s *Server) Search(c *fiber.Ctx) error {
	results, err := s.searchService.Search(c.Context(), c.Query("q"), c.Query("type"))
	if err != nil {
		return models.RespondWithAppError(c, err)
	}
	return c.JSON(results)
}
