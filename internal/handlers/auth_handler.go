package handlers

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/nookofwelshpool/nook-server/internal/config"
	"github.com/nookofwelshpool/nook-server/internal/dto"
	"github.com/nookofwelshpool/nook-server/internal/middleware"
	"github.com/nookofwelshpool/nook-server/internal/models"
	"github.com/nookofwelshpool/nook-server/internal/services"
	"github.com/nookofwelshpool/nook-server/internal/webpages"
)

type AuthHandler struct {
	authService *services.AuthService
	cfg         *config.Config
}

func NewAuthHandler(authService *services.AuthService, cfg *config.Config) *AuthHandler {
	return &AuthHandler{authService: authService, cfg: cfg}
}

func userResponse(u *models.AppUser) dto.UserResponse {
	return dto.UserResponse{
		ID:            u.ID,
		Email:         u.Email,
		Phone:         u.Phone,
		DisplayName:   u.DisplayName,
		IsAnonymous:   u.IsAnonymous,
		EmailVerified: u.EmailVerified,
		CreatedAt:     u.CreatedAt,
		LastActiveAt:  u.LastActiveAt,
	}
}

func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Envelope{
			ReturnCode: dto.CodeValidationError,
			Message:    "Invalid request body",
		})
	}

	if req.Email == "" || req.Password == "" || req.DisplayName == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Envelope{
			ReturnCode: dto.CodeValidationError,
			Message:    "Email, password, and display name are required",
		})
	}
	if len(req.Password) < 8 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Envelope{
			ReturnCode: dto.CodeValidationError,
			Message:    "Password must be at least 8 characters long",
		})
	}

	user, emailSent, err := h.authService.Register(req.Email, req.Phone, req.DisplayName, req.Password)
	if err != nil {
		if errors.Is(err, services.ErrUserExists) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.Envelope{
				ReturnCode: dto.CodeUserExists,
				Message:    "User with this email already exists",
			})
		}
		return serverError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"return_code": dto.CodeSuccess,
		"message":     "User registered successfully. Please check your email to verify your account.",
		"user":        userResponse(user),
		"email_sent":  emailSent,
	})
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Envelope{
			ReturnCode: dto.CodeValidationError,
			Message:    "Invalid request body",
		})
	}

	if req.Email == "" || req.Password == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Envelope{
			ReturnCode: dto.CodeValidationError,
			Message:    "Email and password are required",
		})
	}

	user, token, err := h.authService.Login(req.Email, req.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.Envelope{
				ReturnCode: dto.CodeInvalidCreds,
				Message:    "Invalid email or password",
			})
		}
		if errors.Is(err, services.ErrEmailNotVerified) {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"return_code": dto.CodeEmailNotVerified,
				"message":     "Email not verified. Please check your email or continue as guest.",
				"user_id":     user.ID,
				"email":       user.Email,
			})
		}
		return serverError(c, err)
	}

	return c.JSON(fiber.Map{
		"return_code": dto.CodeSuccess,
		"message":     "Login successful",
		"token":       token,
		"user":        userResponse(user),
	})
}

// VerifyEmail handles the link from the verification email. It is
// opened in a browser, so responses are HTML pages, not JSON.
func (h *AuthHandler) VerifyEmail(c *fiber.Ctx) error {
	token := c.Query("token")
	siteName := h.cfg.EmailName

	if token == "" || !services.ValidTokenFormat(token, services.TokenPrefixVerify) {
		return c.Status(fiber.StatusBadRequest).Type("html").
			SendString(webpages.VerifyInvalid(siteName))
	}

	if err := h.authService.VerifyEmail(token); err != nil {
		if errors.Is(err, services.ErrInvalidToken) {
			return c.Status(fiber.StatusBadRequest).Type("html").
				SendString(webpages.VerifyExpired(siteName))
		}
		return c.Status(fiber.StatusInternalServerError).Type("html").
			SendString(webpages.VerifyError(siteName))
	}

	return c.Type("html").SendString(webpages.VerifySuccess(siteName))
}

func (h *AuthHandler) ResendVerification(c *fiber.Ctx) error {
	var req dto.EmailRequest
	if err := c.BodyParser(&req); err != nil || req.Email == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Envelope{
			ReturnCode: dto.CodeValidationError,
			Message:    "Email is required",
		})
	}

	if err := h.authService.ResendVerification(req.Email); err != nil {
		return serverError(c, err)
	}

	// Identical response whether or not the email is registered.
	return c.JSON(dto.Envelope{
		ReturnCode: dto.CodeSuccess,
		Message:    "If this email is registered and unverified, a verification email has been sent.",
	})
}

func (h *AuthHandler) ForgotPassword(c *fiber.Ctx) error {
	var req dto.EmailRequest
	if err := c.BodyParser(&req); err != nil || req.Email == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Envelope{
			ReturnCode: dto.CodeValidationError,
			Message:    "Email is required",
		})
	}

	if err := h.authService.ForgotPassword(req.Email); err != nil {
		return serverError(c, err)
	}

	return c.JSON(dto.Envelope{
		ReturnCode: dto.CodeSuccess,
		Message:    "If this email is registered, a password reset link has been sent.",
	})
}

// ResetPasswordPage serves the browser form linked from the reset
// email. The token is validated but not consumed; consumption happens
// when the form posts.
func (h *AuthHandler) ResetPasswordPage(c *fiber.Ctx) error {
	token := c.Query("token")
	siteName := h.cfg.EmailName

	if token == "" || !services.ValidTokenFormat(token, services.TokenPrefixReset) {
		return c.Status(fiber.StatusBadRequest).Type("html").
			SendString(webpages.ResetInvalid(siteName))
	}

	if err := h.authService.ValidateResetToken(token); err != nil {
		return c.Status(fiber.StatusBadRequest).Type("html").
			SendString(webpages.ResetExpired(siteName))
	}

	return c.Type("html").SendString(webpages.ResetForm(siteName, token))
}

func (h *AuthHandler) ResetPassword(c *fiber.Ctx) error {
	var req dto.ResetPasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Envelope{
			ReturnCode: dto.CodeValidationError,
			Message:    "Invalid request body",
		})
	}

	if req.Token == "" || req.NewPassword == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Envelope{
			ReturnCode: dto.CodeValidationError,
			Message:    "Token and new password are required",
		})
	}
	if len(req.NewPassword) < 8 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Envelope{
			ReturnCode: dto.CodeValidationError,
			Message:    "Password must be at least 8 characters long",
		})
	}

	if err := h.authService.ResetPassword(req.Token, req.NewPassword); err != nil {
		if errors.Is(err, services.ErrInvalidToken) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.Envelope{
				ReturnCode: dto.CodeInvalidToken,
				Message:    "Invalid or expired reset token",
			})
		}
		return serverError(c, err)
	}

	return c.JSON(dto.Envelope{
		ReturnCode: dto.CodeSuccess,
		Message:    "Password reset successfully",
	})
}

func (h *AuthHandler) GetProfile(c *fiber.Ctx) error {
	userID, ok := middleware.SessionUserID(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.Envelope{
			ReturnCode: dto.CodeInvalidToken,
			Message:    "Invalid session token",
		})
	}

	user, err := h.authService.GetUser(userID)
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.Envelope{
				ReturnCode: dto.CodeUserNotFound,
				Message:    "User not found",
			})
		}
		return serverError(c, err)
	}

	return c.JSON(fiber.Map{
		"return_code": dto.CodeSuccess,
		"message":     "Profile retrieved successfully",
		"user":        userResponse(user),
	})
}

func (h *AuthHandler) UpdateProfile(c *fiber.Ctx) error {
	userID, ok := middleware.SessionUserID(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.Envelope{
			ReturnCode: dto.CodeInvalidToken,
			Message:    "Invalid session token",
		})
	}

	var req dto.UpdateProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Envelope{
			ReturnCode: dto.CodeValidationError,
			Message:    "Invalid request body",
		})
	}

	displayName := strings.TrimSpace(req.DisplayName)
	if displayName == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Envelope{
			ReturnCode: dto.CodeValidationError,
			Message:    "Display name is required",
		})
	}

	if err := h.authService.UpdateDisplayName(userID, displayName); err != nil {
		return serverError(c, err)
	}

	user, err := h.authService.GetUser(userID)
	if err != nil {
		return serverError(c, err)
	}

	return c.JSON(fiber.Map{
		"return_code": dto.CodeSuccess,
		"message":     "Profile updated successfully",
		"user":        userResponse(user),
	})
}
