package schools

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"mealbridge/app/database"
	"mealbridge/app/models"
	"mealbridge/app/routes/auth"
)

var validate = validator.New()

// RegisterSchoolAPI lets a principal register their school; it enters the
// approval queue as pending.
func RegisterSchoolAPI(store database.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var school models.School
		if err := c.BodyParser(&school); err != nil {
			return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
		}
		if err := validate.Struct(school); err != nil {
			return c.Status(400).JSON(fiber.Map{"error": "All school and contact fields are required"})
		}

		principalID := auth.UserID(c)
		if existingID, _, err := database.GetSchoolByPrincipalID(store, principalID); err != nil {
			return c.Status(500).JSON(fiber.Map{"error": "Failed to register school"})
		} else if existingID != "" {
			return c.Status(409).JSON(fiber.Map{"error": "School already registered"})
		}

		school.PrincipalID = principalID
		school.PrincipalName = c.Locals("user_name").(string)

		id, err := database.AddSchool(store, school)
		if err != nil {
			return c.Status(500).JSON(fiber.Map{"error": "Failed to register school"})
		}

		if err := database.UpdateUserProfile(store, principalID, map[string]any{"schoolId": id}); err != nil {
			return c.Status(500).JSON(fiber.Map{"error": "Failed to link school to profile"})
		}

		return c.Status(201).JSON(fiber.Map{"id": id, "message": "School registered, pending approval"})
	}
}

// GetMySchoolAPI returns the calling principal's school.
func GetMySchoolAPI(store database.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, school, err := database.GetSchoolByPrincipalID(store, auth.UserID(c))
		if err != nil {
			return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch school"})
		}
		if school == nil {
			return c.Status(404).JSON(fiber.Map{"error": "No school registered"})
		}
		return c.JSON(fiber.Map{"id": id, "school": school})
	}
}

func GetPendingSchoolsAPI(store database.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		pending, err := database.GetPendingSchools(store)
		if err != nil {
			return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch pending schools"})
		}
		return c.JSON(fiber.Map{
			"schools": pending,
			"count":   len(pending),
		})
	}
}

func ApproveSchoolAPI(store database.Store) fiber.Handler {
	return decideHandler(store, database.ApproveSchool, "School approved")
}

func RejectSchoolAPI(store database.Store) fiber.Handler {
	return decideHandler(store, database.RejectSchool, "School rejected")
}

func decideHandler(store database.Store, decide func(database.Store, string, string) error, message string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		err := decide(store, c.Params("id"), auth.UserID(c))
		if err != nil {
			if errors.Is(err, database.ErrNotFound) {
				return c.Status(404).JSON(fiber.Map{"error": "School not found"})
			}
			return c.Status(500).JSON(fiber.Map{"error": "Failed to update school"})
		}
		return c.JSON(fiber.Map{"message": message})
	}
}
