package handlers

import (
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/nookofwelshpool/nook-server/internal/dto"
	"github.com/stretchr/testify/assert"
)

func newOrderApp() *fiber.App {
	app := fiber.New()
	h := NewOrderHandler(nil)
	app.Post("/api/orders/submit", h.Submit)
	app.Post("/api/orders/history", h.History)
	app.Post("/api/orders/details", h.Details)
	return app
}

func TestSubmitMissingIdentity(t *testing.T) {
	app := newOrderApp()

	status, body := postJSON(t, app, "/api/orders/submit", fiber.Map{
		"delivery_type":  "collection",
		"phone_number":   "01938 123456",
		"email":          "guest@example.com",
		"requested_date": "2026-12-25",
		"requested_time": "18:00",
	})
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, dto.CodeMissingUserSess, body["return_code"])
}

func TestSubmitMissingFields(t *testing.T) {
	app := newOrderApp()

	status, body := postJSON(t, app, "/api/orders/submit", fiber.Map{
		"session_id":    "s1",
		"delivery_type": "collection",
	})
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, dto.CodeMissingFields, body["return_code"])
}

func TestSubmitDeliveryNeedsAddress(t *testing.T) {
	app := newOrderApp()

	status, body := postJSON(t, app, "/api/orders/submit", fiber.Map{
		"session_id":     "s1",
		"delivery_type":  "delivery",
		"phone_number":   "01938 123456",
		"email":          "guest@example.com",
		"requested_date": "2026-12-25",
		"requested_time": "18:00",
	})
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, dto.CodeMissingFields, body["return_code"])
}

func TestHistoryRequiresUserID(t *testing.T) {
	app := newOrderApp()

	status, body := postJSON(t, app, "/api/orders/history", fiber.Map{})
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, dto.CodeMissingUserSess, body["return_code"])
}

func TestDetailsRequiresOrderID(t *testing.T) {
	app := newOrderApp()

	status, body := postJSON(t, app, "/api/orders/details", fiber.Map{
		"user_id": 5,
	})
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, dto.CodeMissingFields, body["return_code"])
}
