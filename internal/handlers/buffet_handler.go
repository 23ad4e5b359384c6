package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/nookofwelshpool/nook-server/internal/dto"
	"github.com/nookofwelshpool/nook-server/internal/services"
)

const ActionGetByBuffetType = "get_by_buffet_type"

type BuffetHandler struct {
	catalogService *services.CatalogService
}

func NewBuffetHandler(catalogService *services.CatalogService) *BuffetHandler {
	return &BuffetHandler{catalogService: catalogService}
}

func (h *BuffetHandler) Handle(c *fiber.Ctx) error {
	var req dto.BuffetItemsRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Envelope{
			ReturnCode: dto.CodeValidationError,
			Message:    "Invalid request body",
		})
	}

	if req.Action == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Envelope{
			ReturnCode: dto.CodeMissingAction,
			Message:    "Action is required",
		})
	}
	if req.Action != ActionGetByBuffetType {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Envelope{
			ReturnCode: dto.CodeInvalidAction,
			Message:    "Invalid action. Supported actions: get_by_buffet_type",
		})
	}

	if req.BuffetType == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Envelope{
			ReturnCode: dto.CodeMissingBuffetType,
			Message:    "Buffet type is required for get_by_buffet_type action",
		})
	}

	items, err := h.catalogService.GetBuffetItems(req.BuffetType)
	if err != nil {
		if errors.Is(err, services.ErrInvalidBuffetType) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.Envelope{
				ReturnCode: dto.CodeInvalidBuffetType,
				Message:    "Invalid buffet type. Supported types: Classic, Enhanced, Deluxe",
			})
		}
		return serverError(c, err)
	}

	return c.JSON(fiber.Map{
		"return_code": dto.CodeSuccess,
		"message":     "Buffet items retrieved successfully",
		"buffet_type": req.BuffetType,
		"items":       items,
	})
}
