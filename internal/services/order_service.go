package services

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/nookofwelshpool/nook-server/internal/config"
	"github.com/nookofwelshpool/nook-server/internal/dto"
	"github.com/nookofwelshpool/nook-server/internal/mail"
	"github.com/nookofwelshpool/nook-server/internal/models"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

var (
	ErrOrderNotFound   = errors.New("order not found")
	ErrInvalidSchedule = errors.New("invalid requested date or time")
)

type OrderService struct {
	db     *gorm.DB
	cfg    *config.Config
	mailer mail.Mailer
	carts  *CartService
}

func NewOrderService(db *gorm.DB, cfg *config.Config, mailer mail.Mailer, carts *CartService) *OrderService {
	return &OrderService{db: db, cfg: cfg, mailer: mailer, carts: carts}
}

// SubmitResult is what the client gets back after checkout.
type SubmitResult struct {
	OrderID       uint    `json:"order_id"`
	OrderNumber   string  `json:"order_number"`
	TotalAmount   float64 `json:"total_amount"`
	EstimatedTime string  `json:"estimated_time"`
	EmailSent     bool    `json:"email_sent"`
}

// OrderNumber derives the customer-facing reference from the row id.
func OrderNumber(orderID uint) string {
	return fmt.Sprintf("NK%06d", orderID)
}

// EstimatedTime is 30 minutes base plus 5 per portion, capped at 90.
func EstimatedTime(totalPortions int) string {
	minutes := 30 + 5*totalPortions
	if minutes > 90 {
		minutes = 90
	}
	return fmt.Sprintf("%d minutes", minutes)
}

// Submit promotes the owner's cart to a pending order: contact and
// schedule fields are written, the total is recomputed from the stored
// line totals, and status flips to pending with confirmed_at set. An
// empty or missing cart aborts before any mutation. Confirmation emails
// go out after commit and never fail the submission.
func (s *OrderService) Submit(owner Owner, req dto.SubmitOrderRequest) (*SubmitResult, error) {
	reqDate, err := time.Parse("2006-01-02", req.RequestedDate)
	if err != nil {
		return nil, ErrInvalidSchedule
	}
	reqTime, err := time.Parse("15:04", req.RequestedTime)
	if err != nil {
		return nil, ErrInvalidSchedule
	}
	requestedAt := time.Date(reqDate.Year(), reqDate.Month(), reqDate.Day(),
		reqTime.Hour(), reqTime.Minute(), 0, 0, time.Local)

	var order *models.Order
	var lines []dto.CartItem
	err = s.db.Transaction(func(tx *gorm.DB) error {
		var err error
		order, err = s.carts.findCartOrder(tx, owner)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrCartEmpty
			}
			return err
		}

		lines, err = s.carts.cartItemsForOrder(tx, order.ID)
		if err != nil {
			return err
		}
		if len(lines) == 0 {
			return ErrCartEmpty
		}

		total := CartTotal(lines)
		now := time.Now()
		updates := map[string]interface{}{
			"order_status":   models.OrderStatusPending,
			"total_amount":   total,
			"delivery_type":  req.DeliveryType,
			"guest_phone":    req.PhoneNumber,
			"guest_email":    req.Email,
			"requested_date": datatypes.Date(reqDate),
			"requested_time": datatypes.NewTime(reqTime.Hour(), reqTime.Minute(), 0, 0),
			"requested_at":   requestedAt,
			"confirmed_at":   now,
		}
		if req.DeliveryType == models.DeliveryTypeDelivery {
			updates["delivery_address"] = req.DeliveryAddress
		}
		if req.SpecialInstructions != "" {
			updates["special_instructions"] = req.SpecialInstructions
		}
		if err := tx.Model(order).Updates(updates).Error; err != nil {
			return err
		}
		order.TotalAmount = total
		return nil
	})
	if err != nil {
		return nil, err
	}

	portions := 0
	for _, line := range lines {
		portions += line.Quantity
	}
	estimated := EstimatedTime(portions)

	result := &SubmitResult{
		OrderID:       order.ID,
		OrderNumber:   OrderNumber(order.ID),
		TotalAmount:   order.TotalAmount,
		EstimatedTime: estimated,
		EmailSent:     true,
	}

	go s.sendOrderEmails(req, result, lines)

	return result, nil
}

// sendOrderEmails dispatches customer confirmation and business
// notification off the request path. Failures are logged only.
func (s *OrderService) sendOrderEmails(req dto.SubmitOrderRequest, result *SubmitResult, lines []dto.CartItem) {
	items := make([]mail.OrderEmailItem, len(lines))
	for i, line := range lines {
		items[i] = mail.OrderEmailItem{
			CategoryName: line.CategoryName,
			Quantity:     line.Quantity,
			TotalPrice:   line.TotalPrice,
		}
	}
	data := mail.OrderEmailData{
		OrderNumber:     result.OrderNumber,
		TotalAmount:     result.TotalAmount,
		DeliveryType:    req.DeliveryType,
		DeliveryAddress: req.DeliveryAddress,
		RequestedDate:   req.RequestedDate,
		RequestedTime:   req.RequestedTime,
		EstimatedTime:   result.EstimatedTime,
		PhoneNumber:     req.PhoneNumber,
		CustomerEmail:   req.Email,
		Items:           items,
	}

	if req.Email != "" {
		if err := s.mailer.SendOrderConfirmationEmail(req.Email, data); err != nil {
			slog.Error("failed to send order confirmation", "error", err, "order", result.OrderNumber)
		}
	}
	if s.cfg.BusinessEmail != "" {
		if err := s.mailer.SendBusinessNotificationEmail(s.cfg.BusinessEmail, data); err != nil {
			slog.Error("failed to send business notification", "error", err, "order", result.OrderNumber)
		}
	}
}

type historyRow struct {
	OrderID      uint
	OrderStatus  string
	TotalAmount  float64
	DeliveryType string
	ItemCount    int
	RequestedAt  *time.Time
	CreatedAt    time.Time
	ConfirmedAt  *time.Time
}

// History lists the user's submitted orders, newest first. Cart orders
// are excluded; the default page size is 20.
func (s *OrderService) History(userID uint, limit, offset int) ([]dto.OrderSummary, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	var rows []historyRow
	err := s.db.Table("orders").
		Select("orders.id AS order_id, orders.order_status, orders.total_amount, orders.delivery_type, COUNT(order_categories.id) AS item_count, orders.requested_at, orders.created_at, orders.confirmed_at").
		Joins("LEFT JOIN order_categories ON order_categories.order_id = orders.id").
		Where("orders.app_user_id = ? AND orders.order_status <> ?", userID, models.OrderStatusCart).
		Group("orders.id").
		Order("orders.created_at DESC").
		Limit(limit).Offset(offset).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	out := make([]dto.OrderSummary, len(rows))
	for i, r := range rows {
		out[i] = dto.OrderSummary{
			OrderID:      r.OrderID,
			OrderNumber:  OrderNumber(r.OrderID),
			OrderStatus:  r.OrderStatus,
			TotalAmount:  r.TotalAmount,
			DeliveryType: r.DeliveryType,
			ItemCount:    r.ItemCount,
			RequestedAt:  r.RequestedAt,
			CreatedAt:    r.CreatedAt,
			ConfirmedAt:  r.ConfirmedAt,
		}
	}
	return out, nil
}

// Details loads one submitted order with its full line breakdown,
// scoped to the requesting user.
func (s *OrderService) Details(userID, orderID uint) (*dto.OrderDetail, error) {
	var order models.Order
	err := s.db.Where("id = ? AND app_user_id = ? AND order_status <> ?",
		orderID, userID, models.OrderStatusCart).First(&order).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}

	items, err := s.carts.cartItemsForOrder(s.db, order.ID)
	if err != nil {
		return nil, err
	}

	detail := &dto.OrderDetail{
		OrderSummary: dto.OrderSummary{
			OrderID:      order.ID,
			OrderNumber:  OrderNumber(order.ID),
			OrderStatus:  order.OrderStatus,
			TotalAmount:  order.TotalAmount,
			DeliveryType: order.DeliveryType,
			ItemCount:    len(items),
			RequestedAt:  order.RequestedAt,
			CreatedAt:    order.CreatedAt,
			ConfirmedAt:  order.ConfirmedAt,
		},
		DeliveryAddress:     order.DeliveryAddress,
		GuestPhone:          order.GuestPhone,
		GuestEmail:          order.GuestEmail,
		SpecialInstructions: order.SpecialInstructions,
		Items:               items,
	}
	return detail, nil
}
