package dashboard

import (
	"github.com/gofiber/fiber/v2"

	"mealbridge/app/database"
	"mealbridge/app/routes/auth"
)

func SetupDashboardRoutes(app *fiber.App, store database.Store) {
	api := app.Group("/api/dashboard")
	api.Use(auth.AuthMiddleware)

	api.Get("/", GetDashboardAPI(store))
	api.Get("/admin", GetAdminDashboardAPI(store))
}
