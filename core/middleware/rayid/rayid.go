package rayid

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

const (
	// HeaderName is the response header carrying the ray ID.
	HeaderName = "X-Ray-ID"
	// LocalsKey is the fiber locals key read by logger.WithRayID.
	LocalsKey = "ray_id"
)

// New creates a middleware that tags every request with a ray ID.
// An incoming X-Ray-ID header is reused so callers can correlate requests.
func New() fiber.Handler {
	return func(c *fiber.Ctx) error {
		rid := c.Get(HeaderName)
		if rid == "" {
			rid = uuid.NewString()
		}
		c.Locals(LocalsKey, rid)
		c.Set(HeaderName, rid)
		return c.Next()
	}
}
