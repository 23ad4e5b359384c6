package dto

import "time"

type SubmitOrderRequest struct {
	UserID              *uint  `json:"user_id"`
	SessionID           string `json:"session_id"`
	DeliveryType        string `json:"delivery_type"`
	DeliveryAddress     string `json:"delivery_address"`
	PhoneNumber         string `json:"phone_number"`
	Email               string `json:"email"`
	RequestedDate       string `json:"requested_date"` // 2006-01-02
	RequestedTime       string `json:"requested_time"` // 15:04
	SpecialInstructions string `json:"special_instructions"`
}

type OrderHistoryRequest struct {
	UserID *uint `json:"user_id"`
	Limit  int   `json:"limit"`
	Offset int   `json:"offset"`
}

type OrderDetailsRequest struct {
	UserID  *uint `json:"user_id"`
	OrderID *uint `json:"order_id"`
}

type OrderSummary struct {
	OrderID      uint       `json:"order_id"`
	OrderNumber  string     `json:"order_number"`
	OrderStatus  string     `json:"order_status"`
	TotalAmount  float64    `json:"total_amount"`
	DeliveryType string     `json:"delivery_type"`
	ItemCount    int        `json:"item_count"`
	RequestedAt  *time.Time `json:"requested_at"`
	CreatedAt    time.Time  `json:"created_at"`
	ConfirmedAt  *time.Time `json:"confirmed_at"`
}

type OrderDetail struct {
	OrderSummary
	DeliveryAddress     *string    `json:"delivery_address"`
	GuestPhone          *string    `json:"guest_phone"`
	GuestEmail          *string    `json:"guest_email"`
	SpecialInstructions *string    `json:"special_instructions"`
	Items               []CartItem `json:"items"`
}
