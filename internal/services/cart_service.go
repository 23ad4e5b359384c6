package services

import (
	"errors"
	"time"

	"github.com/nookofwelshpool/nook-server/internal/dto"
	"github.com/nookofwelshpool/nook-server/internal/models"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

var (
	ErrCartEmpty    = errors.New("cart is empty")
	ErrItemNotFound = errors.New("cart item not found")
)

// Owner identifies who a cart belongs to: a numeric user id for
// authenticated users, or an opaque session string for guests. Exactly
// one of the two is used per request; user id wins when both are set.
type Owner struct {
	UserID    *uint
	SessionID string
}

func (o Owner) Valid() bool {
	return o.UserID != nil || o.SessionID != ""
}

type CartService struct {
	db *gorm.DB
}

func NewCartService(db *gorm.DB) *CartService {
	return &CartService{db: db}
}

// AddLineInput is one cart addition: a buffet tier at a quantity plus
// the customer's menu-item selections. The optional fields never block
// the insert.
type AddLineInput struct {
	CategoryID      uint
	Quantity        int
	UnitPrice       float64
	Notes           string
	DepartmentLabel string
	DeluxeFormat    string
	IncludedItems   []uint
}

// AddItem appends one line to the owner's cart, creating the cart order
// first if none exists. Line, item rows, and the cart order itself are
// written in one transaction so a failure leaves no partial state.
func (s *CartService) AddItem(owner Owner, in AddLineInput) ([]dto.CartItem, float64, error) {
	var category models.ProductCategory
	err := s.db.Where("id = ? AND is_active = ?", in.CategoryID, true).First(&category).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, 0, ErrCategoryNotFound
		}
		return nil, 0, err
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		order, err := s.getOrCreateCartOrder(tx, owner)
		if err != nil {
			return err
		}

		line := models.OrderCategory{
			OrderID:    order.ID,
			CategoryID: in.CategoryID,
			Quantity:   in.Quantity,
			UnitPrice:  in.UnitPrice,
			TotalPrice: float64(in.Quantity) * in.UnitPrice,
		}
		if in.Notes != "" {
			line.Notes = &in.Notes
		}
		if in.DepartmentLabel != "" {
			line.DepartmentLabel = &in.DepartmentLabel
		}
		if in.DeluxeFormat != "" {
			line.DeluxeFormat = &in.DeluxeFormat
		}
		if err := tx.Create(&line).Error; err != nil {
			return err
		}

		for _, menuItemID := range in.IncludedItems {
			item := models.OrderItem{
				OrderID:         order.ID,
				OrderCategoryID: line.ID,
				MenuItemID:      menuItemID,
			}
			if err := tx.Create(&item).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, 0, err
	}

	return s.Contents(owner)
}

// Contents projects the owner's cart: all lines with their menu
// selections, plus the running total. No cart is not an error; it reads
// as an empty cart.
func (s *CartService) Contents(owner Owner) ([]dto.CartItem, float64, error) {
	order, err := s.findCartOrder(s.db, owner)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return []dto.CartItem{}, 0, nil
		}
		return nil, 0, err
	}

	items, err := s.cartItemsForOrder(s.db, order.ID)
	if err != nil {
		return nil, 0, err
	}
	return items, CartTotal(items), nil
}

// DeleteItem removes one line from the owner's cart. Ownership is
// checked before anything is deleted so a foreign order_category_id
// cannot touch another cart.
func (s *CartService) DeleteItem(owner Owner, orderCategoryID uint) ([]dto.CartItem, float64, error) {
	err := s.db.Transaction(func(tx *gorm.DB) error {
		order, err := s.findCartOrder(tx, owner)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrCartEmpty
			}
			return err
		}

		var line models.OrderCategory
		err = tx.Where("id = ? AND order_id = ?", orderCategoryID, order.ID).First(&line).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrItemNotFound
			}
			return err
		}

		if err := tx.Where("order_category_id = ?", line.ID).Delete(&models.OrderItem{}).Error; err != nil {
			return err
		}
		return tx.Delete(&line).Error
	})
	if err != nil {
		return nil, 0, err
	}

	return s.Contents(owner)
}

// Clear drops the owner's entire cart order if one exists. Clearing a
// nonexistent cart succeeds.
func (s *CartService) Clear(owner Owner) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		order, err := s.findCartOrder(tx, owner)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil
			}
			return err
		}

		if err := tx.Where("order_id = ?", order.ID).Delete(&models.OrderItem{}).Error; err != nil {
			return err
		}
		if err := tx.Where("order_id = ?", order.ID).Delete(&models.OrderCategory{}).Error; err != nil {
			return err
		}
		return tx.Delete(order).Error
	})
}

// CartTotal sums line totals. The stored total_price is authoritative;
// it is never re-derived from quantity here.
func CartTotal(items []dto.CartItem) float64 {
	total := 0.0
	for _, item := range items {
		total += item.TotalPrice
	}
	return total
}

func (s *CartService) findCartOrder(tx *gorm.DB, owner Owner) (*models.Order, error) {
	var order models.Order
	q := tx.Where("order_status = ?", models.OrderStatusCart)
	if owner.UserID != nil {
		q = q.Where("app_user_id = ?", *owner.UserID)
	} else {
		q = q.Where("guest_email = ?", owner.SessionID)
	}
	if err := q.First(&order).Error; err != nil {
		return nil, err
	}
	return &order, nil
}

// getOrCreateCartOrder enforces the at-most-one-cart-per-owner invariant
// with a lookup before create. Placeholder delivery/date fields are
// overwritten at submission.
func (s *CartService) getOrCreateCartOrder(tx *gorm.DB, owner Owner) (*models.Order, error) {
	order, err := s.findCartOrder(tx, owner)
	if err == nil {
		return order, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	now := time.Now()
	fresh := models.Order{
		AppUserID:     owner.UserID,
		TotalAmount:   0,
		OrderStatus:   models.OrderStatusCart,
		DeliveryType:  "pending",
		RequestedDate: datatypes.Date(now),
		RequestedTime: datatypes.NewTime(now.Hour(), now.Minute(), 0, 0),
	}
	if owner.UserID == nil {
		sessionID := owner.SessionID
		fresh.GuestEmail = &sessionID
	}
	if err := tx.Create(&fresh).Error; err != nil {
		return nil, err
	}
	return &fresh, nil
}

type cartLineRow struct {
	OrderCategoryID uint
	CategoryID      uint
	CategoryName    string
	Quantity        int
	UnitPrice       float64
	TotalPrice      float64
	Notes           *string
	DepartmentLabel *string
	DeluxeFormat    *string
}

type cartItemRow struct {
	OrderCategoryID uint
	MenuItemID      uint
	Name            string
}

func (s *CartService) cartItemsForOrder(tx *gorm.DB, orderID uint) ([]dto.CartItem, error) {
	var lines []cartLineRow
	err := tx.Table("order_categories").
		Select("order_categories.id AS order_category_id, order_categories.category_id, product_categories.name AS category_name, order_categories.quantity, order_categories.unit_price, order_categories.total_price, order_categories.notes, order_categories.department_label, order_categories.deluxe_format").
		Joins("JOIN product_categories ON product_categories.id = order_categories.category_id").
		Where("order_categories.order_id = ?", orderID).
		Order("order_categories.id ASC").
		Scan(&lines).Error
	if err != nil {
		return nil, err
	}

	var itemRows []cartItemRow
	err = tx.Table("order_items").
		Select("order_items.order_category_id, order_items.menu_item_id, menu_items.name").
		Joins("JOIN menu_items ON menu_items.id = order_items.menu_item_id").
		Where("order_items.order_id = ?", orderID).
		Order("order_items.id ASC").
		Scan(&itemRows).Error
	if err != nil {
		return nil, err
	}

	itemsByLine := make(map[uint][]dto.CartItemLine)
	for _, row := range itemRows {
		itemsByLine[row.OrderCategoryID] = append(itemsByLine[row.OrderCategoryID], dto.CartItemLine{
			MenuItemID: row.MenuItemID,
			Name:       row.Name,
		})
	}

	items := make([]dto.CartItem, len(lines))
	for i, line := range lines {
		included := itemsByLine[line.OrderCategoryID]
		if included == nil {
			included = []dto.CartItemLine{}
		}
		items[i] = dto.CartItem{
			OrderCategoryID: line.OrderCategoryID,
			CategoryID:      line.CategoryID,
			CategoryName:    line.CategoryName,
			Quantity:        line.Quantity,
			UnitPrice:       line.UnitPrice,
			TotalPrice:      line.TotalPrice,
			Notes:           line.Notes,
			DepartmentLabel: line.DepartmentLabel,
			DeluxeFormat:    line.DeluxeFormat,
			IncludedItems:   included,
		}
	}
	return items, nil
}
