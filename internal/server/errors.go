package server

import (
	"errors"
	"log/slog"

	"bloglist/internal/models"

	"github.com/gofiber/fiber/v2"
)

// ErrorHandler is the single place where failures become HTTP
// responses. Handlers and middleware return typed errors; classified
// kinds map to their status, everything else falls through to a
// generic 500 whose body carries no internal detail.
func (s *Server) ErrorHandler(c *fiber.Ctx, err error) error {
	var appErr *models.AppError
	if errors.As(err, &appErr) {
		if appErr.Kind == models.KindInternal {
			s.logger.ErrorContext(c.UserContext(), "internal error",
				slog.String("path", c.Path()),
				slog.String("error", appErr.Error()),
			)
		}
		return c.Status(appErr.Status()).JSON(models.ErrorResponse{Error: appErr.Message})
	}

	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		return c.Status(fiberErr.Code).JSON(models.ErrorResponse{Error: fiberErr.Message})
	}

	// Unclassified failure: log the detail, return a generic body.
	s.logger.ErrorContext(c.UserContext(), "unclassified error",
		slog.String("path", c.Path()),
		slog.String("error", err.Error()),
	)
	return c.Status(fiber.StatusInternalServerError).
		JSON(models.ErrorResponse{Error: "internal server error"})
}

// parseID extracts a route parameter as a positive uint. A value that
// does not match the id format is a malformed-identifier failure.
func parseID(c *fiber.Ctx, param string) (uint, error) {
	id, err := c.ParamsInt(param)
	if err != nil || id <= 0 {
		return 0, models.NewMalformedIDError()
	}
	return uint(id), nil
}
