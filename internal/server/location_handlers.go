package server

import (
	"spacedout/internal/models"

	"github.com/gofiber/fiber/v2"
)

// CreateLocation handles POST /api/locations. The address is geocoded before
// any row is written; an unresolvable address is a 400.
func (s *Server) CreateLocation(c *fiber.Ctx) error {
	var req struct {
		Name    string `json:"name"`
		Address string `json:"address"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	location, err := s.locationService.Create(c.UserContext(), req.Name, req.Address)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(location.Serialize())
}

// GetLocations handles GET /api/locations.
func (s *Server) GetLocations(c *fiber.Ctx) error {
	locations, err := s.locationService.List(c.UserContext())
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"locations": locations})
}

// GetLocation handles GET /api/locations/:id.
func (s *Server) GetLocation(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	payload, err := s.locationService.Get(c.UserContext(), id)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(payload)
}

// DeleteLocation handles DELETE /api/locations/:id.
func (s *Server) DeleteLocation(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	if err := s.locationService.Delete(c.UserContext(), id); err != nil {
		return respondServiceError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
