package handlers

import (
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/nookofwelshpool/nook-server/internal/dto"
	"github.com/stretchr/testify/assert"
)

func newCartApp() *fiber.App {
	app := fiber.New()
	h := NewCartHandler(nil, nil)
	app.Post("/api/cart", h.Handle)
	return app
}

func TestCartMissingAction(t *testing.T) {
	app := newCartApp()

	status, body := postJSON(t, app, "/api/cart", fiber.Map{
		"session_id": "s1",
	})
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, dto.CodeMissingAction, body["return_code"])
}

func TestCartMissingUserSession(t *testing.T) {
	app := newCartApp()

	status, body := postJSON(t, app, "/api/cart", fiber.Map{
		"action": "get",
	})
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, dto.CodeMissingUserSess, body["return_code"])
}

func TestCartInvalidAction(t *testing.T) {
	app := newCartApp()

	status, body := postJSON(t, app, "/api/cart", fiber.Map{
		"action":     "purchase",
		"session_id": "s1",
	})
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, dto.CodeInvalidAction, body["return_code"])
}

func TestCartAddMissingFields(t *testing.T) {
	app := newCartApp()

	status, body := postJSON(t, app, "/api/cart", fiber.Map{
		"action":     "add",
		"session_id": "s1",
		"quantity":   10,
	})
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, dto.CodeMissingFields, body["return_code"])
}

func TestCartDeleteMissingLineID(t *testing.T) {
	app := newCartApp()

	status, body := postJSON(t, app, "/api/cart", fiber.Map{
		"action":     "delete",
		"session_id": "s1",
	})
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, dto.CodeMissingFields, body["return_code"])
}
