package middleware

import (
	"time"

	fiber "github.com/gofiber/fiber/v2"

	log "github.com/celestiaorg/jobtracker/internal/logger"
)

// Logger returns a middleware that logs HTTP requests
func Logger() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()

		// Continue chain
		err := c.Next()

		// After request
		stop := time.Now()
		latency := stop.Sub(start)

		fields := map[string]interface{}{
			"timestamp": stop.Format("2006/01/02 - 15:04:05"),
			"status":    c.Response().StatusCode(),
			"latency":   latency,
			"ip":        c.IP(),
			"method":    c.Method(),
			"path":      c.Path(),
			"handler":   c.Route().Name,
		}
		if ownerID, ok := c.Locals(ownerIDKey).(uint); ok {
			fields["owner_id"] = ownerID
		}
		// The error handler has not run yet, so the status above may still be 200
		if err != nil {
			fields["error"] = err.Error()
		}

		log.InfoWithFields("Request", fields)

		return err
	}
}
