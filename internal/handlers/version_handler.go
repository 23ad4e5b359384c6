package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/nookofwelshpool/nook-server/internal/config"
	"github.com/nookofwelshpool/nook-server/internal/dto"
	"github.com/nookofwelshpool/nook-server/internal/middleware"
)

type VersionHandler struct {
	cfg *config.Config
}

func NewVersionHandler(cfg *config.Config) *VersionHandler {
	return &VersionHandler{cfg: cfg}
}

type versionCheckRequest struct {
	AppVersion string `json:"app_version"`
}

// Check is called by the app at startup. An outdated build gets
// APP_UPDATE_REQUIRED with 200 so the client can render its own update
// prompt; the gate middleware handles per-request enforcement.
func (h *VersionHandler) Check(c *fiber.Ctx) error {
	var req versionCheckRequest
	if err := c.BodyParser(&req); err != nil || req.AppVersion == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Envelope{
			ReturnCode: dto.CodeMissingAppVersion,
			Message:    "App version is required",
		})
	}

	if !middleware.VersionValid(req.AppVersion, h.cfg.RequiredAppVersion) {
		return c.JSON(fiber.Map{
			"return_code":      dto.CodeAppUpdateRequired,
			"message":          "Please update your app to continue using this service",
			"required_version": h.cfg.RequiredAppVersion,
			"current_version":  req.AppVersion,
		})
	}

	return c.JSON(fiber.Map{
		"return_code":      dto.CodeSuccess,
		"message":          "App version is up to date",
		"current_version":  req.AppVersion,
		"required_version": h.cfg.RequiredAppVersion,
	})
}
