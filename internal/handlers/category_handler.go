package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/nookofwelshpool/nook-server/internal/dto"
	"github.com/nookofwelshpool/nook-server/internal/services"
)

// Category actions dispatched from the request body.
const (
	ActionGetAllCategories  = "get_all"
	ActionGetCategoryByID   = "get_by_id"
	ActionGetCategoryByType = "get_by_type"
)

type CategoryHandler struct {
	catalogService *services.CatalogService
}

func NewCategoryHandler(catalogService *services.CatalogService) *CategoryHandler {
	return &CategoryHandler{catalogService: catalogService}
}

// Handle dispatches on the action field the way the mobile client
// drives this endpoint: one POST route, several read operations.
func (h *CategoryHandler) Handle(c *fiber.Ctx) error {
	var req dto.CategoriesRequest
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

	switch req.Action {
	case ActionGetAllCategories:
		return h.getAll(c)
	case ActionGetCategoryByID:
		return h.getByID(c, req.CategoryID)
	case ActionGetCategoryByType:
		return h.getByType(c, req.CategoryType)
	default:
		return c.Status(fiber.StatusBadRequest).JSON(dto.Envelope{
			ReturnCode: dto.CodeInvalidAction,
			Message:    "Invalid action. Supported actions: get_all, get_by_id, get_by_type",
		})
	}
}

func (h *CategoryHandler) getAll(c *fiber.Ctx) error {
	categories, err := h.catalogService.GetAllCategories()
	if err != nil {
		return serverError(c, err)
	}
	return c.JSON(fiber.Map{
		"return_code": dto.CodeSuccess,
		"message":     "Categories retrieved successfully",
		"categories":  categories,
	})
}

func (h *CategoryHandler) getByID(c *fiber.Ctx, categoryID *int) error {
	if categoryID == nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Envelope{
			ReturnCode: dto.CodeMissingCategoryID,
			Message:    "Category ID is required for get_by_id action",
		})
	}
	if *categoryID <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Envelope{
			ReturnCode: dto.CodeInvalidCategoryID,
			Message:    "Invalid category ID",
		})
	}

	category, err := h.catalogService.GetCategoryByID(uint(*categoryID))
	if err != nil {
		if errors.Is(err, services.ErrCategoryNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.Envelope{
				ReturnCode: dto.CodeCategoryNotFound,
				Message:    "Category not found",
			})
		}
		return serverError(c, err)
	}

	return c.JSON(fiber.Map{
		"return_code": dto.CodeSuccess,
		"message":     "Category retrieved successfully",
		"category":    category,
	})
}

func (h *CategoryHandler) getByType(c *fiber.Ctx, categoryType string) error {
	if categoryType == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Envelope{
			ReturnCode: dto.CodeMissingCatType,
			Message:    "Category type is required for get_by_type action",
		})
	}

	categories, err := h.catalogService.GetCategoriesByType(categoryType)
	if err != nil {
		return serverError(c, err)
	}

	return c.JSON(fiber.Map{
		"return_code": dto.CodeSuccess,
		"message":     "Categories retrieved successfully",
		"categories":  categories,
	})
}
