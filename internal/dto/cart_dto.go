package dto

type CartRequest struct {
	Action          string  `json:"action"`
	UserID          *uint   `json:"user_id"`
	SessionID       string  `json:"session_id"`
	CategoryID      *uint   `json:"category_id"`
	Quantity        int     `json:"quantity"`
	UnitPrice       float64 `json:"unit_price"`
	DepartmentLabel string  `json:"department_label"`
	Notes           string  `json:"notes"`
	DeluxeFormat    string  `json:"deluxe_format"`
	IncludedItems   []uint  `json:"included_items"`
	OrderCategoryID *uint   `json:"order_category_id"`
}

// CartItem is one projected line of the cart with its menu selections.
type CartItem struct {
	OrderCategoryID uint           `json:"order_category_id"`
	CategoryID      uint           `json:"category_id"`
	CategoryName    string         `json:"category_name"`
	Quantity        int            `json:"quantity"`
	UnitPrice       float64        `json:"unit_price"`
	TotalPrice      float64        `json:"total_price"`
	Notes           *string        `json:"notes"`
	DepartmentLabel *string        `json:"department_label"`
	DeluxeFormat    *string        `json:"deluxe_format"`
	IncludedItems   []CartItemLine `json:"included_items"`
}

type CartItemLine struct {
	MenuItemID uint   `json:"menu_item_id"`
	Name       string `json:"name"`
}
