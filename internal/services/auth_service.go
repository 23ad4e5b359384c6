package services

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/nookofwelshpool/nook-server/internal/config"
	"github.com/nookofwelshpool/nook-server/internal/mail"
	"github.com/nookofwelshpool/nook-server/internal/models"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrUserExists         = errors.New("user with this email already exists")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrEmailNotVerified   = errors.New("email not verified")
	ErrInvalidToken       = errors.New("invalid or expired token")
	ErrUserNotFound       = errors.New("user not found")
)

type AuthService struct {
	db     *gorm.DB
	cfg    *config.Config
	mailer mail.Mailer
}

func NewAuthService(db *gorm.DB, cfg *config.Config, mailer mail.Mailer) *AuthService {
	return &AuthService{db: db, cfg: cfg, mailer: mailer}
}

// Register creates a non-anonymous, unverified user and issues a 24h
// verification token. The verification email is best-effort: a send
// failure never fails registration, only flips the reported email_sent.
func (s *AuthService) Register(email, phone, displayName, password string) (*models.AppUser, bool, error) {
	var existing models.AppUser
	if err := s.db.Where("email = ?", email).First(&existing).Error; err == nil {
		return nil, false, ErrUserExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.cfg.BcryptCost)
	if err != nil {
		return nil, false, fmt.Errorf("failed to hash password: %w", err)
	}

	hashStr := string(hash)
	user := models.AppUser{
		Email:        email,
		DisplayName:  displayName,
		PasswordHash: &hashStr,
		IsAnonymous:  false,
		LastActiveAt: time.Now(),
	}
	if phone != "" {
		user.Phone = &phone
	}
	if err := s.db.Create(&user).Error; err != nil {
		return nil, false, fmt.Errorf("failed to create user: %w", err)
	}

	token, err := s.issueToken(user.ID, TokenPrefixVerify, 24)
	if err != nil {
		return nil, false, err
	}

	emailSent := true
	if err := s.mailer.SendVerificationEmail(email, token); err != nil {
		slog.Error("failed to send verification email", "error", err, "user_id", user.ID)
		emailSent = false
	}
	return &user, emailSent, nil
}

// Login returns the user together with a signed session token. On
// ErrEmailNotVerified the user is still returned so the client can offer
// a resend.
func (s *AuthService) Login(email, password string) (*models.AppUser, string, error) {
	var user models.AppUser
	if err := s.db.Where("email = ?", email).First(&user).Error; err != nil {
		return nil, "", ErrInvalidCredentials
	}

	if user.PasswordHash == nil {
		return nil, "", ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(*user.PasswordHash), []byte(password)); err != nil {
		return nil, "", ErrInvalidCredentials
	}

	if !user.IsAnonymous && !user.EmailVerified {
		return &user, "", ErrEmailNotVerified
	}

	now := time.Now()
	if err := s.db.Model(&user).Update("last_active_at", now).Error; err != nil {
		slog.Error("failed to update last_active_at", "error", err, "user_id", user.ID)
	}
	user.LastActiveAt = now

	token, err := s.generateSessionToken(&user)
	if err != nil {
		return nil, "", err
	}
	return &user, token, nil
}

// VerifyEmail consumes a verification token: single use, cleared on success.
func (s *AuthService) VerifyEmail(token string) error {
	user, err := s.findByAuthToken(token)
	if err != nil {
		return err
	}
	return s.db.Model(user).Updates(map[string]interface{}{
		"email_verified":     true,
		"auth_token":         nil,
		"auth_token_expires": nil,
	}).Error
}

// ResendVerification issues a fresh token only for real, unverified
// users. All other cases are silent no-ops so responses stay identical
// regardless of account state.
func (s *AuthService) ResendVerification(email string) error {
	var user models.AppUser
	if err := s.db.Where("email = ?", email).First(&user).Error; err != nil {
		return nil
	}
	if user.EmailVerified {
		return nil
	}

	token, err := s.issueToken(user.ID, TokenPrefixVerify, 24)
	if err != nil {
		return err
	}
	if err := s.mailer.SendVerificationEmail(email, token); err != nil {
		slog.Error("failed to send verification email", "error", err, "user_id", user.ID)
	}
	return nil
}

// ForgotPassword issues a 1h reset token for real, non-anonymous users;
// silent no-op otherwise (enumeration resistance).
func (s *AuthService) ForgotPassword(email string) error {
	var user models.AppUser
	if err := s.db.Where("email = ?", email).First(&user).Error; err != nil {
		return nil
	}
	if user.IsAnonymous {
		return nil
	}

	token, err := s.issueToken(user.ID, TokenPrefixReset, 1)
	if err != nil {
		return err
	}
	if err := s.mailer.SendPasswordResetEmail(email, token); err != nil {
		slog.Error("failed to send password reset email", "error", err, "user_id", user.ID)
	}
	return nil
}

// ValidateResetToken checks a reset token without consuming it (used by
// the HTML form page).
func (s *AuthService) ValidateResetToken(token string) error {
	if !ValidTokenFormat(token, TokenPrefixReset) {
		return ErrInvalidToken
	}
	_, err := s.findByAuthToken(token)
	return err
}

// ResetPassword consumes a reset token and replaces the password hash.
func (s *AuthService) ResetPassword(token, newPassword string) error {
	if !ValidTokenFormat(token, TokenPrefixReset) {
		return ErrInvalidToken
	}
	user, err := s.findByAuthToken(token)
	if err != nil {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), s.cfg.BcryptCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	return s.db.Model(user).Updates(map[string]interface{}{
		"password_hash":      string(hash),
		"auth_token":         nil,
		"auth_token_expires": nil,
	}).Error
}

func (s *AuthService) GetUser(userID uint) (*models.AppUser, error) {
	var user models.AppUser
	if err := s.db.First(&user, "id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (s *AuthService) UpdateDisplayName(userID uint, displayName string) error {
	return s.db.Model(&models.AppUser{}).Where("id = ?", userID).
		Update("display_name", displayName).Error
}

// issueToken writes a fresh prefixed token into the user's single token
// slot, overwriting whatever was there before.
func (s *AuthService) issueToken(userID uint, prefix string, hours int) (string, error) {
	token, err := GenerateToken(prefix)
	if err != nil {
		return "", fmt.Errorf("failed to generate token: %w", err)
	}
	expires := TokenExpiry(hours)
	err = s.db.Model(&models.AppUser{}).Where("id = ?", userID).Updates(map[string]interface{}{
		"auth_token":         token,
		"auth_token_expires": expires,
	}).Error
	if err != nil {
		return "", fmt.Errorf("failed to store token: %w", err)
	}
	return token, nil
}

func (s *AuthService) findByAuthToken(token string) (*models.AppUser, error) {
	var user models.AppUser
	err := s.db.Where("auth_token = ? AND auth_token_expires > ?", token, time.Now()).
		First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidToken
		}
		return nil, err
	}
	return &user, nil
}

func (s *AuthService) generateSessionToken(user *models.AppUser) (string, error) {
	claims := jwt.MapClaims{
		"user_id":        user.ID,
		"email":          user.Email,
		"display_name":   user.DisplayName,
		"is_anonymous":   user.IsAnonymous,
		"email_verified": user.EmailVerified,
		"iat":            time.Now().Unix(),
		"exp":            time.Now().Add(s.cfg.JWTExpiry).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.cfg.JWTSecret))
}
