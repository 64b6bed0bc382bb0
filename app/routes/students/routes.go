package students

import (
	"github.com/gofiber/fiber/v2"

	"mealbridge/app/database"
	"mealbridge/app/models"
	"mealbridge/app/routes/auth"
)

func SetupStudentsRoutes(app *fiber.App, store database.Store) {
	api := app.Group("/api/students")
	api.Use(auth.AuthMiddleware)
	api.Use(auth.RequireRoles(models.RoleTeacher))

	api.Get("/", GetStudentsAPI(store))
	api.Post("/", AddStudentAPI(store))
	api.Patch("/:id", UpdateStudentAPI(store))
	api.Delete("/:id", DeleteStudentAPI(store))
}
