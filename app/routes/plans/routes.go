package plans

import (
	"github.com/gofiber/fiber/v2"

	"mealbridge/app/database"
	"mealbridge/app/models"
	"mealbridge/app/routes/auth"
)

func SetupPlansRoutes(app *fiber.App, store database.Store) {
	api := app.Group("/api/plans")
	api.Use(auth.AuthMiddleware)
	api.Use(auth.RequireRoles(models.RolePrincipal))

	api.Post("/", AddMealPlanAPI(store))
	api.Get("/mine", GetMyMealPlansAPI(store))
	api.Post("/:id/approve", ApproveMealPlanAPI(store))
}
