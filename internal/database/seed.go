package database

import (
	"errors"
	"log/slog"

	"github.com/nookofwelshpool/nook-server/internal/models"
	"gorm.io/gorm"
)

type seedItem struct {
	Name        string
	Description string
	ItemType    string
	Vegetarian  bool
	Categories  []string // category names this item belongs to
}

var seedCategories = []models.ProductCategory{
	{Name: "Classic", Description: "Classic buffet with our traditional selection", CategoryType: "buffet", IsActive: true, MinimumQuantity: 5},
	{Name: "Enhanced", Description: "Enhanced buffet with extra sides and platters", CategoryType: "buffet", IsActive: true, MinimumQuantity: 5},
	{Name: "Deluxe", Description: "Deluxe buffet with premium salads and skewers", CategoryType: "buffet", IsActive: true, MinimumQuantity: 5},
}

var seedItems = []seedItem{
	{Name: "Sandwiches", Description: "Mixed sandwich selection", ItemType: "savoury", Categories: []string{"Classic", "Enhanced", "Deluxe"}},
	{Name: "Quiche", Description: "Freshly baked quiche", ItemType: "savoury", Vegetarian: true, Categories: []string{"Classic", "Enhanced", "Deluxe"}},
	{Name: "Cocktail Sausages", Description: "Mini cocktail sausages", ItemType: "savoury", Categories: []string{"Classic", "Enhanced", "Deluxe"}},
	{Name: "Sausage Rolls", Description: "Homemade sausage rolls", ItemType: "savoury", Categories: []string{"Classic", "Enhanced", "Deluxe"}},
	{Name: "Pork Pies", Description: "Traditional pork pies", ItemType: "savoury", Categories: []string{"Classic", "Enhanced", "Deluxe"}},
	{Name: "Scotch Eggs", Description: "Fresh scotch eggs", ItemType: "savoury", Categories: []string{"Classic", "Enhanced", "Deluxe"}},
	{Name: "Tortillas/Dips", Description: "Tortilla chips with dips", ItemType: "side", Vegetarian: true, Categories: []string{"Classic", "Enhanced", "Deluxe"}},
	{Name: "Cakes", Description: "Assorted cakes and desserts", ItemType: "dessert", Vegetarian: true, Categories: []string{"Classic", "Enhanced", "Deluxe"}},
	{Name: "Vegetable Sticks & Dips", Description: "Fresh vegetable sticks with dips", ItemType: "side", Vegetarian: true, Categories: []string{"Enhanced", "Deluxe"}},
	{Name: "Cheese/Pineapple/Grapes", Description: "Cheese and fruit platter", ItemType: "side", Vegetarian: true, Categories: []string{"Enhanced", "Deluxe"}},
	{Name: "Bread Sticks", Description: "Crispy bread sticks", ItemType: "side", Vegetarian: true, Categories: []string{"Enhanced", "Deluxe"}},
	{Name: "Pickles", Description: "Assorted pickles", ItemType: "side", Vegetarian: true, Categories: []string{"Enhanced", "Deluxe"}},
	{Name: "Coleslaw", Description: "Fresh coleslaw", ItemType: "side", Vegetarian: true, Categories: []string{"Enhanced", "Deluxe"}},
	{Name: "Greek Salad", Description: "Traditional Greek salad", ItemType: "salad", Vegetarian: true, Categories: []string{"Deluxe"}},
	{Name: "Potato Salad", Description: "Creamy potato salad", ItemType: "salad", Vegetarian: true, Categories: []string{"Deluxe"}},
	{Name: "Tomato & Mozzarella Skewers", Description: "Caprese skewers", ItemType: "salad", Vegetarian: true, Categories: []string{"Deluxe"}},
	{Name: "Fresh Vegetables", Description: "Seasonal fresh vegetables", ItemType: "salad", Vegetarian: true, Categories: []string{"Deluxe"}},
	{Name: "Premium Dips", Description: "Selection of premium dips", ItemType: "side", Vegetarian: true, Categories: []string{"Deluxe"}},
}

var seedStoreInfo = []models.StoreInfo{
	{InfoKey: "business_name", InfoValue: "The Nook of Welshpool", Description: "Trading name shown in the app"},
	{InfoKey: "business_address", InfoValue: "42 High Street, Welshpool, SY21 7JQ", Description: "Shop address"},
	{InfoKey: "store_phone", InfoValue: "01938 123456", Description: "Customer contact number"},
	{InfoKey: "store_email", InfoValue: "info@nookofwelshpool.co.uk", Description: "Customer contact email"},
	{InfoKey: "opening_hours_mon_fri", InfoValue: "10:00 AM - 5:00 PM", Description: "Weekday opening hours"},
	{InfoKey: "opening_hours_saturday", InfoValue: "10:00 AM - 4:00 PM", Description: "Saturday opening hours"},
	{InfoKey: "opening_hours_sunday", InfoValue: "Closed", Description: "Sunday opening hours"},
	{InfoKey: "collection_instructions", InfoValue: "Please arrive at the stated collection time and ring the bell at the side door.", Description: "Shown on collection orders"},
	{InfoKey: "business_description", InfoValue: "Local food business specializing in buffets and catering.", Description: "About text"},
}

// Seed inserts reference data when absent. Existing rows are left
// untouched so operator edits survive restarts.
func Seed() error {
	for i := range seedCategories {
		var existing models.ProductCategory
		err := DB.Where("name = ?", seedCategories[i].Name).First(&existing).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			if err := DB.Create(&seedCategories[i]).Error; err != nil {
				return err
			}
		} else if err != nil {
			return err
		}
	}

	categoryIDs := make(map[string]uint, len(seedCategories))
	var cats []models.ProductCategory
	if err := DB.Find(&cats).Error; err != nil {
		return err
	}
	for _, c := range cats {
		categoryIDs[c.Name] = c.ID
	}

	for _, item := range seedItems {
		var existing models.MenuItem
		err := DB.Where("name = ?", item.Name).First(&existing).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			existing = models.MenuItem{
				Name:         item.Name,
				Description:  item.Description,
				ItemType:     item.ItemType,
				IsVegetarian: item.Vegetarian,
				IsActive:     true,
			}
			if err := DB.Create(&existing).Error; err != nil {
				return err
			}
		} else if err != nil {
			return err
		}

		for _, catName := range item.Categories {
			catID, ok := categoryIDs[catName]
			if !ok {
				continue
			}
			var link models.CategoryMenuItem
			err := DB.Where("category_id = ? AND menu_item_id = ?", catID, existing.ID).First(&link).Error
			if errors.Is(err, gorm.ErrRecordNotFound) {
				link = models.CategoryMenuItem{
					CategoryID:        catID,
					MenuItemID:        existing.ID,
					IsDefaultIncluded: true,
				}
				if err := DB.Create(&link).Error; err != nil {
					return err
				}
			} else if err != nil {
				return err
			}
		}
	}

	for i := range seedStoreInfo {
		var existing models.StoreInfo
		err := DB.Where("info_key = ?", seedStoreInfo[i].InfoKey).First(&existing).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			if err := DB.Create(&seedStoreInfo[i]).Error; err != nil {
				return err
			}
		} else if err != nil {
			return err
		}
	}

	slog.Info("reference data seeded")
	return nil
}
