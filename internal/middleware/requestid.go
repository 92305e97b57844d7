package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// HeaderRequestID is the correlation id header propagated on every response.
const HeaderRequestID = "X-Request-ID"

// RequestID assigns a unique id to each request. An id supplied by the
// caller is kept so upstream correlation survives.
func RequestID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		requestID := c.Get(HeaderRequestID)
		if requestID == "" {
			requestID = uuid.New().String()
		}
		c.Locals("request_id", requestID)
		c.Set(HeaderRequestID, requestID)
		return c.Next()
	}
}
