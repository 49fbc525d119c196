package server

import (
	"github.com/gofiber/fiber/v2"
)

// GetMyProfile handles GET /api/users/me. Full serialization, session state
// included, since the caller proved ownership of the session.
func (s *Server) GetMyProfile(c *fiber.Ctx) error {
	user, err := s.userService.GetUser(c.UserContext(), currentUserID(c))
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(user.Serialize())
}

// GetUserProfile handles GET /api/users/:id. Other users only ever see the
// simple form, never tokens.
func (s *Server) GetUserProfile(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	user, err := s.userService.GetUser(c.UserContext(), id)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(user.SimpleSerialize())
}

// GetAllUsers handles GET /api/users.
func (s *Server) GetAllUsers(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", 20)
	offset := c.QueryInt("offset", 0)

	users, err := s.userService.ListUsers(c.UserContext(), limit, offset)
	if err != nil {
		return respondServiceError(c, err)
	}

	payload := make([]map[string]any, 0, len(users))
	for i := range users {
		payload = append(payload, users[i].SimpleSerialize())
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"users": payload})
}

// DeleteMyAccount handles DELETE /api/users/me.
func (s *Server) DeleteMyAccount(c *fiber.Ctx) error {
	if err := s.userService.DeleteAccount(c.UserContext(), currentUserID(c)); err != nil {
		return respondServiceError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// GetMyFavorites handles GET /api/users/me/favorites.
func (s *Server) GetMyFavorites(c *fiber.Ctx) error {
	favorites, err := s.userService.ListFavorites(c.UserContext(), currentUserID(c))
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"favorites": favorites})
}

// AddFavorite handles POST /api/users/me/favorites/:locationId.
func (s *Server) AddFavorite(c *fiber.Ctx) error {
	locationID, err := s.parseID(c, "locationId")
	if err != nil {
		return nil
	}

	user, err := s.userService.Favorite(c.UserContext(), currentUserID(c), locationID)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(user.Serialize())
}

// RemoveFavorite handles DELETE /api/users/me/favorites/:locationId.
func (s *Server) RemoveFavorite(c *fiber.Ctx) error {
	locationID, err := s.parseID(c, "locationId")
	if err != nil {
		return nil
	}

	user, err := s.userService.Unfavorite(c.UserContext(), currentUserID(c), locationID)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(user.Serialize())
}
