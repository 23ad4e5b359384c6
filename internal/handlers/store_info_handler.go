package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/nookofwelshpool/nook-server/internal/dto"
	"github.com/nookofwelshpool/nook-server/internal/services"
)

type StoreInfoHandler struct {
	storeInfoService *services.StoreInfoService
}

func NewStoreInfoHandler(storeInfoService *services.StoreInfoService) *StoreInfoHandler {
	return &StoreInfoHandler{storeInfoService: storeInfoService}
}

func (h *StoreInfoHandler) GetAll(c *fiber.Ctx) error {
	info, err := h.storeInfoService.GetAll()
	if err != nil {
		return serverError(c, err)
	}

	return c.JSON(fiber.Map{
		"return_code": dto.CodeSuccess,
		"message":     "Store information retrieved successfully",
		"store_info":  info,
	})
}

func (h *StoreInfoHandler) GetByKey(c *fiber.Ctx) error {
	key := c.Params("key")

	row, err := h.storeInfoService.GetByKey(key)
	if err != nil {
		if errors.Is(err, services.ErrInfoNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.Envelope{
				ReturnCode: dto.CodeInfoNotFound,
				Message:    "Store information not found for key: " + key,
			})
		}
		return serverError(c, err)
	}

	return c.JSON(fiber.Map{
		"return_code": dto.CodeSuccess,
		"message":     "Store information retrieved successfully",
		"key":         row.InfoKey,
		"value":       row.InfoValue,
		"description": row.Description,
		"updated_at":  row.UpdatedAt,
	})
}
