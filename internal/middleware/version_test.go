package middleware

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/nookofwelshpool/nook-server/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVersionValid(t *testing.T) {
	tests := []struct {
		current  string
		required string
		want     bool
	}{
		{"1.0.0", "1.0.0", true},
		{"1.2", "1.2.0", true},
		{"1.2.0", "1.2", true},
		{"1.1.9", "1.2.0", false},
		{"2.0.0", "1.9.9", true},
		{"1.10.0", "1.9.0", true},
		{"0.9", "1.0.0", false},
		{"1", "1.0.0", true},
		{"1.0.1", "1.0.0", true},
	}

	for _, tt := range tests {
		got := VersionValid(tt.current, tt.required)
		assert.Equal(t, tt.want, got, "VersionValid(%q, %q)", tt.current, tt.required)
	}
}

func TestVersionGate(t *testing.T) {
	cfg := &config.Config{RequiredAppVersion: "1.2.0"}

	app := fiber.New()
	app.Use(VersionGate(cfg))
	app.Get("/ok", func(c *fiber.Ctx) error {
		return c.SendString("ok")
	})

	t.Run("missing header", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/ok", nil)
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	})

	t.Run("outdated version", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/ok", nil)
		req.Header.Set("App-Version", "1.1.9")
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusUpgradeRequired, resp.StatusCode)
	})

	t.Run("current version passes", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/ok", nil)
		req.Header.Set("App-Version", "1.2.0")
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	})

	t.Run("newer version passes", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/ok", nil)
		req.Header.Set("App-Version", "2.0")
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	})
}
