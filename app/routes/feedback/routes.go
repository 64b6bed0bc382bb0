package feedback

import (
	"github.com/gofiber/fiber/v2"

	"mealbridge/app/database"
	"mealbridge/app/models"
	"mealbridge/app/routes/auth"
)

func SetupFeedbackRoutes(app *fiber.App, store database.Store) {
	api := app.Group("/api/feedback")
	api.Use(auth.AuthMiddleware)

	api.Post("/", auth.RequireRoles(models.RoleParent), AddFeedbackAPI(store))
	api.Get("/mine", auth.RequireRoles(models.RoleParent), GetMyFeedbackAPI(store))

	reviewer := auth.RequireRoles(models.RoleAdmin, models.RolePrincipal)
	api.Get("/", reviewer, GetFeedbackAPI(store))
	api.Post("/:id/reviewed", reviewer, MarkReviewedAPI(store))
}
