package schools

import (
	"github.com/gofiber/fiber/v2"

	"mealbridge/app/database"
	"mealbridge/app/models"
	"mealbridge/app/routes/auth"
)

func SetupSchoolsRoutes(app *fiber.App, store database.Store) {
	api := app.Group("/api/schools")
	api.Use(auth.AuthMiddleware)

	api.Post("/", auth.RequireRoles(models.RolePrincipal), RegisterSchoolAPI(store))
	api.Get("/mine", auth.RequireRoles(models.RolePrincipal), GetMySchoolAPI(store))

	api.Get("/pending", auth.RequireRoles(models.RoleAdmin), GetPendingSchoolsAPI(store))
	api.Post("/:id/approve", auth.RequireRoles(models.RoleAdmin), ApproveSchoolAPI(store))
	api.Post("/:id/reject", auth.RequireRoles(models.RoleAdmin), RejectSchoolAPI(store))
}
