package plans

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"mealbridge/app/database"
	"mealbridge/app/models"
	"mealbridge/app/routes/auth"
)

var validate = validator.New()

// AddMealPlanAPI drafts a menu for the principal's school.
func AddMealPlanAPI(store database.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var plan models.MealPlan
		if err := c.BodyParser(&plan); err != nil {
			return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
		}
		if err := validate.Struct(plan); err != nil {
			return c.Status(400).JSON(fiber.Map{"error": "A date and at least one menu item are required"})
		}

		principalID := auth.UserID(c)
		schoolID, school, err := database.GetSchoolByPrincipalID(store, principalID)
		if err != nil {
			return c.Status(500).JSON(fiber.Map{"error": "Failed to create meal plan"})
		}
		if school == nil {
			return c.Status(400).JSON(fiber.Map{"error": "Register a school before planning meals"})
		}

		plan.PrincipalID = principalID
		plan.SchoolID = schoolID

		id, err := database.AddMealPlan(store, plan)
		if err != nil {
			return c.Status(500).JSON(fiber.Map{"error": "Failed to create meal plan"})
		}
		return c.Status(201).JSON(fiber.Map{"id": id, "message": "Meal plan drafted"})
	}
}

// GetMyMealPlansAPI lists the principal's school's plans.
func GetMyMealPlansAPI(store database.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		schoolID, school, err := database.GetSchoolByPrincipalID(store, auth.UserID(c))
		if err != nil {
			return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch meal plans"})
		}
		if school == nil {
			return c.Status(404).JSON(fiber.Map{"error": "No school registered"})
		}

		planList, err := database.GetMealPlansBySchoolID(store, schoolID)
		if err != nil {
			return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch meal plans"})
		}
		return c.JSON(fiber.Map{
			"plans": planList,
			"count": len(planList),
		})
	}
}

func ApproveMealPlanAPI(store database.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		err := database.ApproveMealPlan(store, c.Params("id"))
		if err != nil {
			if errors.Is(err, database.ErrNotFound) {
				return c.Status(404).JSON(fiber.Map{"error": "Meal plan not found"})
			}
			return c.Status(500).JSON(fiber.Map{"error": "Failed to approve meal plan"})
		}
		return c.JSON(fiber.Map{"message": "Meal plan approved"})
	}
}
