package routes

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/nookofwelshpool/nook-server/internal/config"
	"github.com/nookofwelshpool/nook-server/internal/handlers"
	"github.com/nookofwelshpool/nook-server/internal/middleware"
)

func Setup(
	app *fiber.App,
	cfg *config.Config,
	authHandler *handlers.AuthHandler,
	categoryHandler *handlers.CategoryHandler,
	buffetHandler *handlers.BuffetHandler,
	cartHandler *handlers.CartHandler,
	orderHandler *handlers.OrderHandler,
	storeInfoHandler *handlers.StoreInfoHandler,
	healthHandler *handlers.HealthHandler,
	versionHandler *handlers.VersionHandler,
) {
	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message":   "The Nook of Welshpool API Server",
			"status":    "Running",
			"version":   "1.0.0",
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		})
	})

	api := app.Group("/api")

	// General API rate limiter: 60 req/min per IP
	api.Use(limiter.New(limiter.Config{
		Max:               60,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))

	api.Get("/health", healthHandler.Check)
	api.Post("/version-check", versionHandler.Check)

	// Auth routes skip the version gate: verify-email and reset-password
	// are opened from email clients, which send no app version header.
	// Auth-specific rate limit: 10 req/min per IP (stricter)
	auth := api.Group("/auth")
	auth.Use(limiter.New(limiter.Config{
		Max:               10,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))
	auth.Post("/register", authHandler.Register)
	auth.Post("/login", authHandler.Login)
	auth.Get("/verify-email", authHandler.VerifyEmail)
	auth.Post("/resend-verification", authHandler.ResendVerification)
	auth.Post("/forgot-password", authHandler.ForgotPassword)
	auth.Get("/reset-password", authHandler.ResetPasswordPage)
	auth.Post("/reset-password", authHandler.ResetPassword)
	auth.Get("/profile", middleware.SessionProtected(cfg), authHandler.GetProfile)
	auth.Put("/profile", middleware.SessionProtected(cfg), authHandler.UpdateProfile)

	// Mobile data routes: version-gated, with optional session identity
	// for the body user_id cross-check.
	mobile := api.Group("", middleware.VersionGate(cfg), middleware.OptionalSession(cfg))
	mobile.Post("/categories", categoryHandler.Handle)
	mobile.Post("/buffet-items", buffetHandler.Handle)
	mobile.Post("/cart", cartHandler.Handle)
	mobile.Post("/orders/submit", orderHandler.Submit)
	mobile.Post("/orders/history", orderHandler.History)
	mobile.Post("/orders/details", orderHandler.Details)
	mobile.Get("/store-info", storeInfoHandler.GetAll)
	mobile.Get("/store-info/:key", storeInfoHandler.GetByKey)
}
