package dto

type CategoriesRequest struct {
	Action       string `json:"action"`
	CategoryID   *int   `json:"category_id"`
	CategoryType string `json:"category_type"`
}

type BuffetItemsRequest struct {
	Action     string `json:"action"`
	BuffetType string `json:"buffet_type"`
}

// BuffetItem mirrors the shape the mobile client renders, including the
// hardcoded fallback entries.
type BuffetItem struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	IsDefault   bool   `json:"is_default"`
}

type CategoryValidation struct {
	ID              uint   `json:"id"`
	Name            string `json:"name"`
	MinimumQuantity int    `json:"minimum_quantity"`
}
