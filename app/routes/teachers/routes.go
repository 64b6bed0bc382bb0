package teachers

import (
	"github.com/gofiber/fiber/v2"

	"mealbridge/app/database"
	"mealbridge/app/models"
	"mealbridge/app/routes/auth"
)

func SetupTeachersRoutes(app *fiber.App, store database.Store) {
	api := app.Group("/api/teachers")
	api.Use(auth.AuthMiddleware)
	api.Use(auth.RequireRoles(models.RoleAdmin, models.RolePrincipal))

	api.Get("/", GetTeachersAPI(store))
	api.Post("/", AddTeacherAPI(store))
	api.Patch("/:id", UpdateTeacherAPI(store))
	api.Post("/:id/activate", ActivateTeacherAPI(store))
	api.Post("/:id/deactivate", DeactivateTeacherAPI(store))
}
