package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/nookofwelshpool/nook-server/internal/dto"
	"github.com/nookofwelshpool/nook-server/internal/models"
	"github.com/nookofwelshpool/nook-server/internal/services"
)

type OrderHandler struct {
	orderService *services.OrderService
}

func NewOrderHandler(orderService *services.OrderService) *OrderHandler {
	return &OrderHandler{orderService: orderService}
}

func (h *OrderHandler) Submit(c *fiber.Ctx) error {
	var req dto.SubmitOrderRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Envelope{
			ReturnCode: dto.CodeValidationError,
			Message:    "Invalid request body",
		})
	}

	own := owner(c, req.UserID, req.SessionID)
	if !own.Valid() {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Envelope{
			ReturnCode: dto.CodeMissingUserSess,
			Message:    "Either user_id or session_id is required",
		})
	}

	if req.DeliveryType == "" || req.PhoneNumber == "" || req.Email == "" ||
		req.RequestedDate == "" || req.RequestedTime == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Envelope{
			ReturnCode: dto.CodeMissingFields,
			Message:    "delivery_type, phone_number, email, requested_date, and requested_time are required",
		})
	}
	if req.DeliveryType == models.DeliveryTypeDelivery && req.DeliveryAddress == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Envelope{
			ReturnCode: dto.CodeMissingFields,
			Message:    "delivery_address is required for delivery orders",
		})
	}

	result, err := h.orderService.Submit(own, req)
	if err != nil {
		if errors.Is(err, services.ErrCartEmpty) {
			return c.Status(fiber.StatusNotFound).JSON(dto.Envelope{
				ReturnCode: dto.CodeCartEmpty,
				Message:    "Cart is empty",
			})
		}
		if errors.Is(err, services.ErrInvalidSchedule) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.Envelope{
				ReturnCode: dto.CodeValidationError,
				Message:    "requested_date must be YYYY-MM-DD and requested_time must be HH:MM",
			})
		}
		return serverError(c, err)
	}

	return c.JSON(fiber.Map{
		"return_code":    dto.CodeSuccess,
		"message":        "Order submitted successfully",
		"order_id":       result.OrderID,
		"order_number":   result.OrderNumber,
		"total_amount":   result.TotalAmount,
		"estimated_time": result.EstimatedTime,
		"email_sent":     result.EmailSent,
	})
}

func (h *OrderHandler) History(c *fiber.Ctx) error {
	var req dto.OrderHistoryRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Envelope{
			ReturnCode: dto.CodeValidationError,
			Message:    "Invalid request body",
		})
	}

	if req.UserID == nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Envelope{
			ReturnCode: dto.CodeMissingUserSess,
			Message:    "user_id is required",
		})
	}

	orders, err := h.orderService.History(*req.UserID, req.Limit, req.Offset)
	if err != nil {
		return serverError(c, err)
	}

	return c.JSON(fiber.Map{
		"return_code": dto.CodeSuccess,
		"message":     "Order history retrieved successfully",
		"orders":      orders,
	})
}

func (h *OrderHandler) Details(c *fiber.Ctx) error {
	var req dto.OrderDetailsRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Envelope{
			ReturnCode: dto.CodeValidationError,
			Message:    "Invalid request body",
		})
	}

	if req.UserID == nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Envelope{
			ReturnCode: dto.CodeMissingUserSess,
			Message:    "user_id is required",
		})
	}
	if req.OrderID == nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Envelope{
			ReturnCode: dto.CodeMissingFields,
			Message:    "order_id is required",
		})
	}

	order, err := h.orderService.Details(*req.UserID, *req.OrderID)
	if err != nil {
		if errors.Is(err, services.ErrOrderNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.Envelope{
				ReturnCode: dto.CodeOrderNotFound,
				Message:    "Order not found",
			})
		}
		return serverError(c, err)
	}

	return c.JSON(fiber.Map{
		"return_code": dto.CodeSuccess,
		"message":     "Order details retrieved successfully",
		"order":       order,
	})
}
