package dto

import "time"

type RegisterRequest struct {
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	DisplayName string `json:"display_name"`
	Password    string `json:"password"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type EmailRequest struct {
	Email string `json:"email"`
}

type ResetPasswordRequest struct {
	Token       string `json:"token"`
	NewPassword string `json:"new_password"`
}

type UpdateProfileRequest struct {
	DisplayName string `json:"display_name"`
}

// UserResponse is the sanitized user view: no hash, no auth token.
type UserResponse struct {
	ID            uint      `json:"id"`
	Email         string    `json:"email"`
	Phone         *string   `json:"phone"`
	DisplayName   string    `json:"display_name"`
	IsAnonymous   bool      `json:"is_anonymous"`
	EmailVerified bool      `json:"email_verified"`
	CreatedAt     time.Time `json:"created_at"`
	LastActiveAt  time.Time `json:"last_active_at"`
}
