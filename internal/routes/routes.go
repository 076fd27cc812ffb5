// Package routes defines the API routing configuration.
// It sets up all HTTP routes and their corresponding handlers,
// including middleware and authentication requirements.
package routes

import (
	"kimlik/internal/config"
	"kimlik/internal/crypto"
	"kimlik/internal/handlers"
	"kimlik/internal/middleware"
	"kimlik/internal/repositories"
	"kimlik/internal/services/media"
	"kimlik/internal/services/profile"
	"kimlik/internal/services/signup"
	"kimlik/internal/services/sms"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// SetupRoutes configures all application routes.
// It groups routes by functionality and applies appropriate middleware.
func SetupRoutes(app *fiber.App, db *gorm.DB, keys *config.Keys) error {
	cipher, err := crypto.NewCipher(keys.FieldEncryptionKey)
	if err != nil {
		return err
	}
	codec := crypto.NewFieldCodec(cipher)

	// Repositories
	userRepo := repositories.NewUserRepository(db, repositories.CacheService, codec)
	interestRepo := repositories.NewInterestRepository(db)

	// Services
	dispatcher := sms.NewGateway(config.LoadSMSConfig())
	signupService := signup.NewService(userRepo, dispatcher)

	storage := media.NewS3Storage(config.LoadS3Config())
	profileService := profile.NewService(userRepo, interestRepo, repositories.CacheService, storage)

	// Handlers
	signupHandler := handlers.NewSignupHandler(signupService)
	profileHandler := handlers.NewProfileHandler(profileService)
	authMiddleware := middleware.NewAuthMiddleware(userRepo)

	app.Get("/health", handlers.HealthCheck)

	api := app.Group("/api")

	api.Post("/signup", signupHandler.Signup)
	api.Post("/verify/phone", signupHandler.VerifyPhone)
	api.Post("/resend/code", signupHandler.ResendCode)
	api.Post("/check/username", signupHandler.CheckUsername)
	api.Post("/check/phone", signupHandler.CheckPhone)

	api.Get("/interests", profileHandler.ListInterests)

	authed := api.Group("/profile", authMiddleware.Handler)
	authed.Post("/interests", profileHandler.UpdateInterests)
	authed.Post("/pictures", profileHandler.UpdatePictures)

	return nil
}
