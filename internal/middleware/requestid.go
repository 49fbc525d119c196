package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// RequestID assigns each request a unique identifier, honoring an inbound
// X-Request-ID header so upstream proxies can correlate logs.
func RequestID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		rid := c.Get("X-Request-ID")
		if rid == "" {
			rid = uuid.NewString()
		}
		c.Locals("requestid", rid)
		c.Set("X-Request-ID", rid)
		return c.Next()
	}
}
