package server

import (
	"spacedout/internal/models"

	"github.com/gofiber/fiber/v2"
)

// RecordPosition handles POST /api/positions. The sample is always attributed
// to the authenticated user and timestamped server-side.
func (s *Server) RecordPosition(c *fiber.Ctx) error {
	var req struct {
		Latitude  *float64 `json:"latitude"`
		Longitude *float64 `json:"longitude"`
	}
	if err := c.BodyParser(&req); err != nil || req.Latitude == nil || req.Longitude == nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("latitude and longitude are required"))
	}

	position, err := s.positionService.Record(c.UserContext(), currentUserID(c), *req.Latitude, *req.Longitude)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(position.Serialize())
}

// GetMyPositions handles GET /api/positions/me.
func (s *Server) GetMyPositions(c *fiber.Ctx) error {
	positions, err := s.positionService.ListForUser(c.UserContext(), currentUserID(c))
	if err != nil {
		return respondServiceError(c, err)
	}

	payload := make([]map[string]any, 0, len(positions))
	for i := range positions {
		payload = append(payload, positions[i].Serialize())
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"positions": payload})
}
