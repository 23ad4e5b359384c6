package services

import (
	"errors"

	"github.com/nookofwelshpool/nook-server/internal/dto"
	"github.com/nookofwelshpool/nook-server/internal/models"
	"gorm.io/gorm"
)

var (
	ErrCategoryNotFound  = errors.New("category not found")
	ErrInvalidBuffetType = errors.New("invalid buffet type")
)

// BuffetTypes are the tiers the mobile client knows about.
var BuffetTypes = []string{"Classic", "Enhanced", "Deluxe"}

type CatalogService struct {
	db *gorm.DB
}

func NewCatalogService(db *gorm.DB) *CatalogService {
	return &CatalogService{db: db}
}

func (s *CatalogService) GetAllCategories() ([]models.ProductCategory, error) {
	var categories []models.ProductCategory
	err := s.db.Where("is_active = ?", true).Order("id ASC").Find(&categories).Error
	return categories, err
}

func (s *CatalogService) GetCategoryByID(id uint) (*models.ProductCategory, error) {
	var category models.ProductCategory
	err := s.db.Where("id = ? AND is_active = ?", id, true).First(&category).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCategoryNotFound
		}
		return nil, err
	}
	return &category, nil
}

// GetCategoriesByType filters on category_type, case-insensitive substring.
func (s *CatalogService) GetCategoriesByType(categoryType string) ([]models.ProductCategory, error) {
	var categories []models.ProductCategory
	err := s.db.Where("is_active = ? AND category_type ILIKE ?", true, "%"+categoryType+"%").
		Order("id ASC").Find(&categories).Error
	return categories, err
}

// GetBuffetItems returns the menu items for a buffet tier with their
// default-inclusion flags. When the catalog join yields nothing (missing
// seed data), the hardcoded fallback list is served instead so the app
// never renders an empty menu.
func (s *CatalogService) GetBuffetItems(buffetType string) ([]dto.BuffetItem, error) {
	if !validBuffetType(buffetType) {
		return nil, ErrInvalidBuffetType
	}

	var category models.ProductCategory
	err := s.db.Where("name = ? AND is_active = ?", buffetType, true).First(&category).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	if err == nil {
		var items []dto.BuffetItem
		err = s.db.Table("menu_items").
			Select("menu_items.id, menu_items.name, menu_items.description, category_menu_items.is_default_included AS is_default").
			Joins("JOIN category_menu_items ON category_menu_items.menu_item_id = menu_items.id").
			Where("category_menu_items.category_id = ? AND menu_items.is_active = ?", category.ID, true).
			Order("menu_items.id ASC").
			Scan(&items).Error
		if err != nil {
			return nil, err
		}
		if len(items) > 0 {
			return items, nil
		}
	}

	return fallbackBuffetItems(buffetType), nil
}

// ValidationInfo lists every category's minimum order quantity, with a
// floor of 1, for client-side enforcement before add.
func (s *CatalogService) ValidationInfo() ([]dto.CategoryValidation, error) {
	categories, err := s.GetAllCategories()
	if err != nil {
		return nil, err
	}
	out := make([]dto.CategoryValidation, len(categories))
	for i, c := range categories {
		min := c.MinimumQuantity
		if min < 1 {
			min = 1
		}
		out[i] = dto.CategoryValidation{ID: c.ID, Name: c.Name, MinimumQuantity: min}
	}
	return out, nil
}

func validBuffetType(t string) bool {
	for _, v := range BuffetTypes {
		if v == t {
			return true
		}
	}
	return false
}

// Fallback catalog. Names and descriptions are part of the app contract;
// do not edit without a client release.
var baseBuffetItems = []dto.BuffetItem{
	{ID: 1, Name: "Sandwiches", Description: "Mixed sandwich selection", IsDefault: true},
	{ID: 2, Name: "Quiche", Description: "Freshly baked quiche", IsDefault: true},
	{ID: 3, Name: "Cocktail Sausages", Description: "Mini cocktail sausages", IsDefault: true},
	{ID: 4, Name: "Sausage Rolls", Description: "Homemade sausage rolls", IsDefault: true},
	{ID: 5, Name: "Pork Pies", Description: "Traditional pork pies", IsDefault: true},
	{ID: 6, Name: "Scotch Eggs", Description: "Fresh scotch eggs", IsDefault: true},
	{ID: 7, Name: "Tortillas/Dips", Description: "Tortilla chips with dips", IsDefault: true},
	{ID: 8, Name: "Cakes", Description: "Assorted cakes and desserts", IsDefault: true},
}

var enhancedBuffetItems = []dto.BuffetItem{
	{ID: 9, Name: "Vegetable Sticks & Dips", Description: "Fresh vegetable sticks with dips", IsDefault: true},
	{ID: 10, Name: "Cheese/Pineapple/Grapes", Description: "Cheese and fruit platter", IsDefault: true},
	{ID: 11, Name: "Bread Sticks", Description: "Crispy bread sticks", IsDefault: true},
	{ID: 12, Name: "Pickles", Description: "Assorted pickles", IsDefault: true},
	{ID: 13, Name: "Coleslaw", Description: "Fresh coleslaw", IsDefault: true},
}

var deluxeBuffetItems = []dto.BuffetItem{
	{ID: 14, Name: "Greek Salad", Description: "Traditional Greek salad", IsDefault: true},
	{ID: 15, Name: "Potato Salad", Description: "Creamy potato salad", IsDefault: true},
	{ID: 16, Name: "Tomato & Mozzarella Skewers", Description: "Caprese skewers", IsDefault: true},
	{ID: 17, Name: "Fresh Vegetables", Description: "Seasonal fresh vegetables", IsDefault: true},
	{ID: 18, Name: "Premium Dips", Description: "Selection of premium dips", IsDefault: true},
}

func fallbackBuffetItems(buffetType string) []dto.BuffetItem {
	items := make([]dto.BuffetItem, 0, 18)
	items = append(items, baseBuffetItems...)
	switch buffetType {
	case "Enhanced":
		items = append(items, enhancedBuffetItems...)
	case "Deluxe":
		items = append(items, enhancedBuffetItems...)
		items = append(items, deluxeBuffetItems...)
	}
	return items
}
