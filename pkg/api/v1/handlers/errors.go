// Package handlers provides HTTP request handling
package handlers

import (
	"errors"

	fiber "github.com/gofiber/fiber/v2"

	"github.com/celestiaorg/jobtracker/internal/api/v1/middleware"
	"github.com/celestiaorg/jobtracker/internal/logger"
	"github.com/celestiaorg/jobtracker/internal/services"
	"github.com/celestiaorg/jobtracker/internal/types"
)

// Common error messages
const (
	ErrMsgJobNotFound     = "No job found with the given id"
	ErrMsgInvalidReqBody  = "Invalid request body"
	ErrMsgUnauthorized    = "Authentication invalid"
	ErrMsgRouteNotFound   = "Route does not exist"
	ErrMsgSomethingWrong  = "Something went wrong, try again later"
	ErrMsgCompanyPosition = "Company or Position fields cannot be empty"
)

// ErrInvalidBody is returned when the request body cannot be decoded
var ErrInvalidBody = errors.New("invalid request body")

// ErrorHandler translates the errors returned by handlers and middleware into
// HTTP responses. It is installed as the Fiber ErrorHandler.
func ErrorHandler(c *fiber.Ctx, err error) error {
	var fiberErr *fiber.Error

	switch {
	case errors.Is(err, services.ErrJobNotFound):
		return c.Status(fiber.StatusNotFound).JSON(types.ErrNotFound(ErrMsgJobNotFound))

	case errors.Is(err, services.ErrEmptyField):
		return c.Status(fiber.StatusBadRequest).JSON(types.ErrInvalidInput(ErrMsgCompanyPosition))

	case errors.Is(err, services.ErrInvalidJob):
		return c.Status(fiber.StatusBadRequest).JSON(types.ErrInvalidInput(err.Error()))

	case errors.Is(err, ErrInvalidBody):
		return c.Status(fiber.StatusBadRequest).JSON(types.ErrInvalidInput(ErrMsgInvalidReqBody))

	case errors.Is(err, middleware.ErrMissingIdentity):
		return c.Status(fiber.StatusUnauthorized).JSON(types.ErrUnauthorized(ErrMsgUnauthorized))

	case errors.As(err, &fiberErr):
		if fiberErr.Code == fiber.StatusNotFound {
			return c.Status(fiberErr.Code).JSON(types.ErrNotFound(ErrMsgRouteNotFound))
		}
		return c.Status(fiberErr.Code).JSON(types.ErrGeneric(fiberErr.Message))
	}

	logger.ErrorWithFields("Unhandled request error", map[string]interface{}{
		"method": c.Method(),
		"path":   c.Path(),
		"error":  err.Error(),
	})
	return c.Status(fiber.StatusInternalServerError).JSON(types.ErrServer(ErrMsgSomethingWrong))
}
