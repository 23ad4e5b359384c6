package models

import (
	"time"

	"gorm.io/datatypes"
)

// Order statuses. A cart order is the single mutable pre-checkout state
// per owner; submission flips it to pending and nothing mutates it after
// that through this API.
const (
	OrderStatusCart    = "cart"
	OrderStatusPending = "pending"
)

const (
	DeliveryTypeDelivery   = "delivery"
	DeliveryTypeCollection = "collection"
)

// Order is owned either by a registered user (AppUserID set) or by a
// guest session, in which case the session identifier is stored in
// GuestEmail. That column reuse matches the mobile client's contract.
type Order struct {
	ID                  uint           `gorm:"primaryKey" json:"id"`
	AppUserID           *uint          `gorm:"index" json:"app_user_id"`
	GuestEmail          *string        `gorm:"size:255;index" json:"guest_email"`
	GuestPhone          *string        `gorm:"size:30" json:"guest_phone"`
	TotalAmount         float64        `gorm:"not null;default:0" json:"total_amount"`
	OrderStatus         string         `gorm:"size:20;not null;index" json:"order_status"`
	DeliveryType        string         `gorm:"size:20;not null" json:"delivery_type"`
	DeliveryAddress     *string        `gorm:"type:text" json:"delivery_address"`
	DeliveryNotes       *string        `gorm:"type:text" json:"delivery_notes"`
	RequestedDate       datatypes.Date `json:"requested_date"`
	RequestedTime       datatypes.Time `json:"requested_time"`
	RequestedAt         *time.Time     `json:"requested_at"`
	SpecialInstructions *string        `gorm:"type:text" json:"special_instructions"`
	CreatedAt           time.Time      `json:"created_at"`
	ConfirmedAt         *time.Time     `json:"confirmed_at"`
	UpdatedAt           time.Time      `json:"updated_at"`
	CompletedAt         *time.Time     `json:"completed_at"`
}

func (Order) TableName() string {
	return "orders"
}

// OrderCategory is one priced line in an order: a chosen buffet tier at a
// quantity. TotalPrice is computed at insert time and never re-derived
// from children. DepartmentLabel and DeluxeFormat are optional and never
// block an add.
type OrderCategory struct {
	ID              uint      `gorm:"primaryKey" json:"id"`
	OrderID         uint      `gorm:"not null;index" json:"order_id"`
	CategoryID      uint      `gorm:"not null" json:"category_id"`
	Quantity        int       `gorm:"not null" json:"quantity"`
	UnitPrice       float64   `gorm:"not null" json:"unit_price"`
	TotalPrice      float64   `gorm:"not null" json:"total_price"`
	Notes           *string   `gorm:"type:text" json:"notes"`
	DepartmentLabel *string   `gorm:"size:100" json:"department_label"`
	DeluxeFormat    *string   `gorm:"size:50" json:"deluxe_format"`
	CreatedAt       time.Time `json:"created_at"`
}

func (OrderCategory) TableName() string {
	return "order_categories"
}

// OrderItem records one menu-item selection within an order line.
type OrderItem struct {
	ID              uint `gorm:"primaryKey" json:"id"`
	OrderID         uint `gorm:"not null;index" json:"order_id"`
	OrderCategoryID uint `gorm:"not null;index" json:"order_category_id"`
	MenuItemID      uint `gorm:"not null" json:"menu_item_id"`
}

func (OrderItem) TableName() string {
	return "order_items"
}
