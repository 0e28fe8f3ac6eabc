package handlers

import (
	"errors"

	"github.com/ggorockee/cookiemap/internal/apperr"
	"github.com/ggorockee/cookiemap/internal/logger"
	"github.com/gofiber/fiber/v2"
)

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// ErrorHandler maps the error taxonomy to status codes. Anything that is not
// a validation, not-found or fiber error is a logged 500.
func ErrorHandler(c *fiber.Ctx, err error) error {
	var (
		validation *apperr.ValidationError
		notFound   *apperr.NotFoundError
		fiberErr   *fiber.Error
	)

	switch {
	case errors.As(err, &validation):
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Error:   "Invalid request",
			Details: validation.Error(),
		})
	case errors.As(err, &notFound):
		return c.Status(fiber.StatusNotFound).JSON(ErrorResponse{
			Error: notFound.Error(),
		})
	case errors.As(err, &fiberErr):
		return c.Status(fiberErr.Code).JSON(ErrorResponse{
			Error: fiberErr.Message,
		})
	}

	log := logger.GetLogger("http")
	var connErr *apperr.ConnectorError
	if errors.As(err, &connErr) {
		log.Errorw("connector failure", "method", c.Method(), "path", c.Path(), "platform", connErr.Platform, "error", connErr.Err)
	} else {
		log.Errorw("request failed", "method", c.Method(), "path", c.Path(), "error", err)
	}

	return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{
		Error: "Internal Server Error",
	})
}
