package auth

import (
	"github.com/gofiber/fiber/v2"

	"mealbridge/app/database"
)

func SetupAuthRoutes(app *fiber.App, store database.Store) {
	api := app.Group("/api/auth")

	// Public routes
	api.Post("/login", LoginAPI(store))
	api.Post("/signup", SignupAPI(store))
	api.Post("/logout", LogoutAPI)

	// Protected routes
	api.Use(AuthMiddleware)
	api.Get("/profile", GetProfileAPI(store))
	api.Patch("/profile", UpdateProfileAPI(store))
}
