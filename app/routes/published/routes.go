package published

import (
	"github.com/gofiber/fiber/v2"

	"mealbridge/app/database"
	"mealbridge/app/models"
	"mealbridge/app/routes/auth"
)

func SetupPublishedRoutes(app *fiber.App, store database.Store) {
	api := app.Group("/api/published")
	api.Use(auth.AuthMiddleware)

	api.Post("/", auth.RequireRoles(models.RoleDonor), PublishDonationAPI(store))
	api.Get("/mine", auth.RequireRoles(models.RoleDonor), GetMyPublishedAPI(store))
	api.Post("/:id/claim", auth.RequireRoles(models.RolePrincipal), ClaimPublishedAPI(store))
}
