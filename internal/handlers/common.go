package handlers

import (
	"log/slog"

	"github.com/gofiber/fiber/v2"
	"github.com/nookofwelshpool/nook-server/internal/dto"
)

// serverError logs the underlying failure and returns the generic
// envelope; internals never leak to the client.
func serverError(c *fiber.Ctx, err error) error {
	slog.Error("request failed",
		"method", c.Method(),
		"path", c.Path(),
		"error", err,
	)
	return c.Status(fiber.StatusInternalServerError).JSON(dto.Envelope{
		ReturnCode: dto.CodeServerError,
		Message:    "Internal server error",
	})
}
