package models

import "time"

// ProductCategory is a buffet tier (Classic, Enhanced, Deluxe). Static
// reference data, read-only through the API.
type ProductCategory struct {
	ID              uint      `gorm:"primaryKey" json:"id"`
	Name            string    `gorm:"size:100;not null" json:"name"`
	Description     string    `gorm:"type:text" json:"description"`
	CategoryType    string    `gorm:"size:50;index" json:"category_type"`
	IsActive        bool      `gorm:"not null;default:true" json:"is_active"`
	MinimumQuantity int       `gorm:"not null;default:1" json:"minimum_quantity"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

func (ProductCategory) TableName() string {
	return "product_categories"
}

// MenuItem is a selectable food item, shared across categories.
type MenuItem struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Name         string    `gorm:"size:100;not null" json:"name"`
	Description  string    `gorm:"type:text" json:"description"`
	ItemType     string    `gorm:"size:50" json:"item_type"`
	IsVegetarian bool      `gorm:"not null;default:false" json:"is_vegetarian"`
	IsActive     bool      `gorm:"not null;default:true" json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func (MenuItem) TableName() string {
	return "menu_items"
}

// CategoryMenuItem links a menu item to a category and records whether
// the item is pre-selected when a customer picks that category.
type CategoryMenuItem struct {
	ID                uint `gorm:"primaryKey" json:"id"`
	CategoryID        uint `gorm:"not null;uniqueIndex:idx_category_menu_item" json:"category_id"`
	MenuItemID        uint `gorm:"not null;uniqueIndex:idx_category_menu_item" json:"menu_item_id"`
	IsDefaultIncluded bool `gorm:"not null;default:false" json:"is_default_included"`
}

func (CategoryMenuItem) TableName() string {
	return "category_menu_items"
}
