package requests

import (
	"github.com/gofiber/fiber/v2"

	"mealbridge/app/database"
	"mealbridge/app/models"
	"mealbridge/app/routes/auth"
)

func SetupRequestsRoutes(app *fiber.App, store database.Store) {
	api := app.Group("/api/requests")
	api.Use(auth.AuthMiddleware)

	api.Get("/active", GetActiveRequestsAPI(store))

	principal := auth.RequireRoles(models.RolePrincipal)
	api.Get("/mine", principal, GetMyRequestsAPI(store))
	api.Post("/", principal, AddRequestAPI(store))
	api.Patch("/:id", principal, UpdateRequestAPI(store))
	api.Post("/:id/cancel", principal, CancelRequestAPI(store))
}
