package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/nookofwelshpool/nook-server/internal/database"
	"github.com/nookofwelshpool/nook-server/internal/dto"
)

type HealthHandler struct{}

func NewHealthHandler() *HealthHandler {
	return &HealthHandler{}
}

// Check pings the database so a green health check means the API can
// actually serve orders.
func (h *HealthHandler) Check(c *fiber.Ctx) error {
	dbStatus := "connected"
	status := fiber.StatusOK
	code := dto.CodeSuccess
	message := "Server is healthy"

	if err := database.Ping(); err != nil {
		dbStatus = "disconnected"
		status = fiber.StatusServiceUnavailable
		code = dto.CodeServerError
		message = "Database unavailable"
	}

	return c.Status(status).JSON(fiber.Map{
		"return_code": code,
		"message":     message,
		"database":    dbStatus,
		"timestamp":   time.Now().UTC().Format(time.RFC3339),
	})
}
