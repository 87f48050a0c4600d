package server

import (
	"errors"

	"inkwell/internal/models"

	"github.com/gofiber/fiber/v2"
)

// errResponseWritten is a sentinel indicating the HTTP response was already
// committed by a helper. Handlers must return nil (not this error) to avoid
// Fiber's ErrorHandler overwriting the response.
var errResponseWritten = errors.New("response already written")

// parseID extracts a route parameter by name as a positive uint. On failure
// it writes a 400 JSON response and returns errResponseWritten; callers
// should check: if err != nil { return nil }.
func (s *Server) parseID(c *fiber.Ctx, param string) (uint, error) {
	id, err := c.ParamsInt(param)
	if err != nil || id <= 0 {
		_ = models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid "+paramLabel(param)))
		return 0, errResponseWritten
	}
	return uint(id), nil
}

// paramLabel turns a route param name into the label used in error
// messages.
func paramLabel(param string) string {
	switch param {
	case "id":
		return "ID"
	case "postId":
		return "post ID"
	case "commentId":
		return "comment ID"
	default:
		return param
	}
}

// currentUserID returns the authenticated subject set by AuthRequired.
func (s *Server) currentUserID(c *fiber.Ctx) uint {
	userID, _ := c.Locals("userID").(uint)
	return userID
}
