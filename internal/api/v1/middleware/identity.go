// Package middleware provides the Fiber middleware of the job tracker API
package middleware

import (
	"errors"
	"fmt"
	"strconv"

	fiber "github.com/gofiber/fiber/v2"

	"github.com/celestiaorg/jobtracker/internal/constants"
)

// ownerIDKey is the request locals key holding the acting user's ID
const ownerIDKey = "owner_id"

// ErrMissingIdentity is returned when a request carries no usable user ID
var ErrMissingIdentity = errors.New("missing or invalid user identity")

// Identity returns a middleware that reads the acting user's ID from the
// X-User-ID header set by the upstream auth layer.
func Identity() fiber.Handler {
	return func(c *fiber.Ctx) error {
		raw := c.Get(constants.UserIDHeader)
		if raw == "" {
			return ErrMissingIdentity
		}

		id, err := strconv.ParseUint(raw, 10, 32)
		if err != nil || id == 0 {
			return fmt.Errorf("%w: %q", ErrMissingIdentity, raw)
		}

		c.Locals(ownerIDKey, uint(id))
		return c.Next()
	}
}

// OwnerID returns the user ID stored by Identity
func OwnerID(c *fiber.Ctx) (uint, error) {
	id, ok := c.Locals(ownerIDKey).(uint)
	if !ok {
		return 0, ErrMissingIdentity
	}
	return id, nil
}
