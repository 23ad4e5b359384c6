package handlers

import (
	"errors"
	"log/slog"

	"github.com/gofiber/fiber/v2"
	"github.com/nookofwelshpool/nook-server/internal/dto"
	"github.com/nookofwelshpool/nook-server/internal/middleware"
	"github.com/nookofwelshpool/nook-server/internal/services"
)

// Cart actions dispatched from the request body.
const (
	ActionCartAdd        = "add"
	ActionCartGet        = "get"
	ActionCartDelete     = "delete"
	ActionCartClear      = "clear"
	ActionCartValidation = "validation"
)

type CartHandler struct {
	cartService    *services.CartService
	catalogService *services.CatalogService
}

func NewCartHandler(cartService *services.CartService, catalogService *services.CatalogService) *CartHandler {
	return &CartHandler{cartService: cartService, catalogService: catalogService}
}

// owner resolves cart identity from the body. The body's user_id is
// trusted as-is to keep guest checkout working; when a bearer token is
// also present and disagrees, that is logged for review rather than
// rejected.
func owner(c *fiber.Ctx, userID *uint, sessionID string) services.Owner {
	if tokenID, ok := middleware.TokenUserID(c); ok && userID != nil && tokenID != *userID {
		slog.Warn("body user_id does not match session token",
			"body_user_id", *userID,
			"token_user_id", tokenID,
			"path", c.Path(),
		)
	}
	return services.Owner{UserID: userID, SessionID: sessionID}
}

func (h *CartHandler) Handle(c *fiber.Ctx) error {
	var req dto.CartRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Envelope{
			ReturnCode: dto.CodeValidationError,
			Message:    "Invalid request body",
		})
	}

	if req.Action == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Envelope{
			ReturnCode: dto.CodeMissingAction,
			Message:    "Action parameter is required",
		})
	}

	own := owner(c, req.UserID, req.SessionID)
	if !own.Valid() {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Envelope{
			ReturnCode: dto.CodeMissingUserSess,
			Message:    "Either user_id or session_id is required",
		})
	}

	switch req.Action {
	case ActionCartAdd:
		return h.add(c, own, req)
	case ActionCartGet:
		return h.get(c, own)
	case ActionCartDelete:
		return h.delete(c, own, req.OrderCategoryID)
	case ActionCartClear:
		return h.clear(c, own)
	case ActionCartValidation:
		return h.validation(c)
	default:
		return c.Status(fiber.StatusBadRequest).JSON(dto.Envelope{
			ReturnCode: dto.CodeInvalidAction,
			Message:    "Invalid action. Supported actions: add, get, delete, clear, validation",
		})
	}
}

func (h *CartHandler) add(c *fiber.Ctx, own services.Owner, req dto.CartRequest) error {
	if req.CategoryID == nil || req.Quantity <= 0 || req.UnitPrice <= 0 || len(req.IncludedItems) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Envelope{
			ReturnCode: dto.CodeMissingFields,
			Message:    "category_id, quantity, unit_price, and included_items are required",
		})
	}

	items, total, err := h.cartService.AddItem(own, services.AddLineInput{
		CategoryID:      *req.CategoryID,
		Quantity:        req.Quantity,
		UnitPrice:       req.UnitPrice,
		Notes:           req.Notes,
		DepartmentLabel: req.DepartmentLabel,
		DeluxeFormat:    req.DeluxeFormat,
		IncludedItems:   req.IncludedItems,
	})
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
		"return_code":  dto.CodeSuccess,
		"message":      "Item added to cart successfully",
		"cart_items":   items,
		"total_amount": total,
	})
}

func (h *CartHandler) get(c *fiber.Ctx, own services.Owner) error {
	items, total, err := h.cartService.Contents(own)
	if err != nil {
		return serverError(c, err)
	}

	return c.JSON(fiber.Map{
		"return_code":  dto.CodeSuccess,
		"message":      "Cart retrieved successfully",
		"cart_items":   items,
		"total_amount": total,
	})
}

func (h *CartHandler) delete(c *fiber.Ctx, own services.Owner, orderCategoryID *uint) error {
	if orderCategoryID == nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Envelope{
			ReturnCode: dto.CodeMissingFields,
			Message:    "order_category_id is required",
		})
	}

	items, total, err := h.cartService.DeleteItem(own, *orderCategoryID)
	if err != nil {
		if errors.Is(err, services.ErrCartEmpty) {
			return c.Status(fiber.StatusNotFound).JSON(dto.Envelope{
				ReturnCode: dto.CodeCartEmpty,
				Message:    "Cart is empty",
			})
		}
		if errors.Is(err, services.ErrItemNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.Envelope{
				ReturnCode: dto.CodeItemNotFound,
				Message:    "Item not found in cart",
			})
		}
		return serverError(c, err)
	}

	return c.JSON(fiber.Map{
		"return_code":  dto.CodeSuccess,
		"message":      "Item removed from cart successfully",
		"cart_items":   items,
		"total_amount": total,
	})
}

func (h *CartHandler) clear(c *fiber.Ctx, own services.Owner) error {
	if err := h.cartService.Clear(own); err != nil {
		return serverError(c, err)
	}

	return c.JSON(fiber.Map{
		"return_code":  dto.CodeSuccess,
		"message":      "Cart cleared successfully",
		"cart_items":   []dto.CartItem{},
		"total_amount": 0,
	})
}

func (h *CartHandler) validation(c *fiber.Ctx) error {
	info, err := h.catalogService.ValidationInfo()
	if err != nil {
		return serverError(c, err)
	}

	return c.JSON(fiber.Map{
		"return_code": dto.CodeSuccess,
		"message":     "Validation info retrieved successfully",
		"categories":  info,
	})
}
