package handlers

import (
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/nookofwelshpool/nook-server/internal/config"
	"github.com/nookofwelshpool/nook-server/internal/dto"
	"github.com/stretchr/testify/assert"
)

func newVersionApp(required string) *fiber.App {
	app := fiber.New()
	h := NewVersionHandler(&config.Config{RequiredAppVersion: required})
	app.Post("/api/version-check", h.Check)
	return app
}

func TestVersionCheckMissingVersion(t *testing.T) {
	app := newVersionApp("1.2.0")

	status, body := postJSON(t, app, "/api/version-check", fiber.Map{})
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, dto.CodeMissingAppVersion, body["return_code"])
}

func TestVersionCheckOutdated(t *testing.T) {
	app := newVersionApp("1.2.0")

	status, body := postJSON(t, app, "/api/version-check", fiber.Map{
		"app_version": "1.1.9",
	})
	// Outdated builds still get 200; the client renders the prompt.
	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, dto.CodeAppUpdateRequired, body["return_code"])
	assert.Equal(t, "1.2.0", body["required_version"])
	assert.Equal(t, "1.1.9", body["current_version"])
}

func TestVersionCheckUpToDate(t *testing.T) {
	app := newVersionApp("1.2.0")

	status, body := postJSON(t, app, "/api/version-check", fiber.Map{
		"app_version": "1.2",
	})
	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, dto.CodeSuccess, body["return_code"])
}
