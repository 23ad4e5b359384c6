package middleware

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/nookofwelshpool/nook-server/internal/config"
	"github.com/nookofwelshpool/nook-server/internal/dto"
)

// VersionValid reports whether current >= required, comparing dotted
// version strings component-wise. Missing trailing components count as
// zero, so "1.2" and "1.2.0" are equal. Equal versions pass.
func VersionValid(current, required string) bool {
	cur := versionParts(current)
	req := versionParts(required)
	for len(cur) < len(req) {
		cur = append(cur, 0)
	}
	for len(req) < len(cur) {
		req = append(req, 0)
	}
	for i := range cur {
		if cur[i] > req[i] {
			return true
		}
		if cur[i] < req[i] {
			return false
		}
	}
	return true
}

func versionParts(v string) []int {
	raw := strings.Split(v, ".")
	parts := make([]int, len(raw))
	for i, s := range raw {
		n, _ := strconv.Atoi(s)
		parts[i] = n
	}
	return parts
}

// VersionGate blocks requests from app builds below the minimum
// supported version. The header is required on gated routes; an
// outdated build gets 426 with the version it must update to.
func VersionGate(cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		current := c.Get("App-Version")
		if current == "" {
			return c.Status(fiber.StatusBadRequest).JSON(dto.Envelope{
				ReturnCode: dto.CodeMissingAppVersion,
				Message:    "App version header is required",
			})
		}
		if !VersionValid(current, cfg.RequiredAppVersion) {
			return c.Status(fiber.StatusUpgradeRequired).JSON(fiber.Map{
				"return_code":      dto.CodeAppUpdateRequired,
				"message":          "Please update your app to continue using this service",
				"required_version": cfg.RequiredAppVersion,
				"current_version":  current,
			})
		}
		return c.Next()
	}
}
