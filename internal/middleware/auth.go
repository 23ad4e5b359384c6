package middleware

import (
	"errors"
	"strings"

	jwtware "github.com/gofiber/contrib/jwt"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/nookofwelshpool/nook-server/internal/config"
	"github.com/nookofwelshpool/nook-server/internal/dto"
)

const localsSessionUserID = "session_user_id"

// SessionProtected rejects requests without a valid session token,
// distinguishing missing, expired, and otherwise invalid tokens in the
// return code.
func SessionProtected(cfg *config.Config) fiber.Handler {
	return jwtware.New(jwtware.Config{
		SigningKey: jwtware.SigningKey{Key: []byte(cfg.JWTSecret)},
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := dto.CodeInvalidToken
			message := "Invalid session token"
			switch {
			case errors.Is(err, jwtware.ErrJWTMissingOrMalformed):
				code = dto.CodeNoToken
				message = "Authentication token required"
			case errors.Is(err, jwt.ErrTokenExpired):
				code = dto.CodeTokenExpired
				message = "Session token has expired"
			}
			return c.Status(fiber.StatusUnauthorized).JSON(dto.Envelope{
				ReturnCode: code,
				Message:    message,
			})
		},
	})
}

// SessionUserID reads the user id from the token parsed by
// SessionProtected.
func SessionUserID(c *fiber.Ctx) (uint, bool) {
	token, ok := c.Locals("user").(*jwt.Token)
	if !ok {
		return 0, false
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return 0, false
	}
	id, ok := claims["user_id"].(float64)
	if !ok || id <= 0 {
		return 0, false
	}
	return uint(id), true
}

// OptionalSession parses a bearer token when one is present but never
// rejects the request. Cart and order endpoints accept both signed-in
// users and anonymous guest sessions; when a token is present its user
// id is stashed for cross-checking against the body.
func OptionalSession(cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		header := c.Get(fiber.HeaderAuthorization)
		if after, ok := strings.CutPrefix(header, "Bearer "); ok {
			token, err := jwt.Parse(after, func(t *jwt.Token) (interface{}, error) {
				if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
					return nil, jwt.ErrSignatureInvalid
				}
				return []byte(cfg.JWTSecret), nil
			})
			if err == nil && token.Valid {
				if claims, ok := token.Claims.(jwt.MapClaims); ok {
					if id, ok := claims["user_id"].(float64); ok && id > 0 {
						c.Locals(localsSessionUserID, uint(id))
					}
				}
			}
		}
		return c.Next()
	}
}

// TokenUserID reads the user id stashed by OptionalSession.
func TokenUserID(c *fiber.Ctx) (uint, bool) {
	id, ok := c.Locals(localsSessionUserID).(uint)
	return id, ok
}
