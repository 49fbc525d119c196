package server

import (
	"time"

	"spacedout/internal/models"

	"github.com/gofiber/fiber/v2"
)

// CreateComment handles POST /api/locations/:id/comments. The comment is
// attributed to the authenticated user and expires 3 minutes after creation.
func (s *Server) CreateComment(c *fiber.Ctx) error {
	locationID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	var req struct {
		Text   string `json:"text"`
		Number *int   `json:"number"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}
	number := -1
	if req.Number != nil {
		number = *req.Number
	}

	comment, err := s.commentService.Create(c.UserContext(), req.Text, number, currentUserID(c), locationID)
	if err != nil {
		return respondServiceError(c, err)
	}

	payload, err := s.commentService.Serialize(c.UserContext(), comment)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(payload)
}

// GetLocationComments handles GET /api/locations/:id/comments. Expired
// comments are returned with their derived flag set; clients decide whether
// to display them.
func (s *Server) GetLocationComments(c *fiber.Ctx) error {
	locationID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	comments, err := s.commentService.ListByLocation(c.UserContext(), locationID)
	if err != nil {
		return respondServiceError(c, err)
	}

	now := time.Now()
	payload := make([]map[string]any, 0, len(comments))
	for i := range comments {
		payload = append(payload, comments[i].Serialize(now))
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"comments": payload})
}

// GetComment handles GET /api/comments/:id.
func (s *Server) GetComment(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	comment, err := s.commentService.Get(c.UserContext(), id)
	if err != nil {
		return respondServiceError(c, err)
	}

	payload, err := s.commentService.Serialize(c.UserContext(), comment)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(payload)
}

// DeleteComment handles DELETE /api/comments/:id. Only the author may delete
// their comment.
func (s *Server) DeleteComment(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	comment, err := s.commentService.Get(c.UserContext(), id)
	if err != nil {
		return respondServiceError(c, err)
	}
	if comment.UserID != currentUserID(c) {
		return models.RespondWithError(c, fiber.StatusForbidden,
			models.NewUnauthorizedError("Cannot delete another user's comment"))
	}

	if err := s.commentService.Delete(c.UserContext(), id); err != nil {
		return respondServiceError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
