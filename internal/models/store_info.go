package models

import "time"

// StoreInfo is key/value business metadata (hours, address, contact)
// served to the app so it carries no hardcoded shop details.
type StoreInfo struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	InfoKey     string    `gorm:"size:100;not null;uniqueIndex" json:"info_key"`
	InfoValue   string    `gorm:"type:text;not null" json:"info_value"`
	Description string    `gorm:"type:text" json:"description"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (StoreInfo) TableName() string {
	return "store_info"
}
