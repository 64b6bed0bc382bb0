package meals

import (
	"github.com/gofiber/fiber/v2"

	"mealbridge/app/database"
	"mealbridge/app/models"
	"mealbridge/app/routes/auth"
)

func SetupMealsRoutes(app *fiber.App, store database.Store) {
	api := app.Group("/api/meals")
	api.Use(auth.AuthMiddleware)
	api.Use(auth.RequireRoles(models.RoleTeacher))

	api.Get("/:date", GetMealTrackingAPI(store))
	api.Post("/:date/students/:studentId", RecordMealAPI(store))
	api.Patch("/:date/students/:studentId", UpdateMealAPI(store))
}
