package server

import (
	"context"
	"strings"

	"spacedout/internal/middleware"
	"spacedout/internal/models"

	"github.com/gofiber/fiber/v2"
)

// Register handles POST /api/auth/register.
func (s *Server) Register(c *fiber.Ctx) error {
	var req struct {
		Name     string `json:"name"`
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	user, err := s.authService.Register(c.UserContext(), req.Name, req.Email, req.Password)
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(user.Serialize())
}

// Login handles POST /api/auth/login.
func (s *Server) Login(c *fiber.Ctx) error {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}
	if req.Email == "" || req.Password == "" {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Email and password are required"))
	}

	user, err := s.authService.Login(c.UserContext(), req.Email, req.Password)
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(user.Serialize())
}

// RenewSession handles POST /api/auth/renew. The caller presents the
// long-lived update token and receives a fresh session.
func (s *Server) RenewSession(c *fiber.Ctx) error {
	var req struct {
		UpdateToken string `json:"update_token"`
	}
	if err := c.BodyParser(&req); err != nil || req.UpdateToken == "" {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("update_token is required"))
	}

	user, err := s.authService.RenewWithUpdateToken(c.UserContext(), req.UpdateToken)
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(user.Serialize())
}

// AuthRequired returns middleware that resolves the Bearer session token to a
// user and stores the user ID in locals.
func (s *Server) AuthRequired() fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		token := ""
		if parts := strings.Split(authHeader, " "); len(parts) == 2 && parts[0] == "Bearer" {
			token = parts[1]
		}
		if token == "" {
			return models.RespondWithError(c, fiber.StatusUnauthorized,
				models.NewUnauthorizedError("Authorization required"))
		}

		user, err := s.authService.VerifySession(c.UserContext(), token)
		if err != nil {
			return respondServiceError(c, err)
		}

		c.Locals("userID", user.ID)
		// Sync to UserContext for logging and downstream services.
		ctx := context.WithValue(c.UserContext(), middleware.UserIDKey, user.ID)
		c.SetUserContext(ctx)
		return c.Next()
	}
}
