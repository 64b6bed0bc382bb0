package donations

import (
	"github.com/gofiber/fiber/v2"

	"mealbridge/app/database"
	"mealbridge/app/models"
	"mealbridge/app/routes/auth"
)

func SetupDonationsRoutes(app *fiber.App, store database.Store) {
	api := app.Group("/api/donations")
	api.Use(auth.AuthMiddleware)

	api.Post("/", auth.RequireRoles(models.RoleDonor), AddDonationAPI(store))
	api.Get("/mine", auth.RequireRoles(models.RoleDonor), GetMyDonationsAPI(store))
	api.Get("/", auth.RequireRoles(models.RoleAdmin), GetDonationsAPI(store))
	api.Get("/donors", auth.RequireRoles(models.RolePrincipal), GetDonorListAPI(store))
}
