package models

import (
	"time"
)

// AppUser is an identity record. Guest checkouts create rows with
// is_anonymous=true and no password hash; rows are never hard-deleted.
type AppUser struct {
	ID               uint       `gorm:"primaryKey" json:"id"`
	Email            string     `gorm:"size:255;not null;uniqueIndex" json:"email"`
	Phone            *string    `gorm:"size:30" json:"phone"`
	DisplayName      string     `gorm:"size:100;not null" json:"display_name"`
	PasswordHash     *string    `gorm:"size:100" json:"-"`
	IsAnonymous      bool       `gorm:"not null;default:false" json:"is_anonymous"`
	EmailVerified    bool       `gorm:"not null;default:false" json:"email_verified"`
	AuthToken        *string    `gorm:"size:100;index" json:"-"`
	AuthTokenExpires *time.Time `json:"-"`
	CreatedAt        time.Time  `json:"created_at"`
	LastActiveAt     time.Time  `json:"last_active_at"`
}

func (AppUser) TableName() string {
	return "app_users"
}
