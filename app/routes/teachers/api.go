package teachers

import (
	"encoding/json"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"mealbridge/app/database"
	"mealbridge/app/models"
	"mealbridge/app/routes/auth"
)

var validate = validator.New()

// GetTeachersAPI lists teachers, optionally filtered by school_id.
func GetTeachersAPI(store database.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var (
			teachers map[string]models.Teacher
			err      error
		)
		if schoolID := c.Query("school_id"); schoolID != "" {
			teachers, err = database.GetTeachersBySchoolID(store, schoolID)
		} else {
			teachers, err = database.GetAllTeachers(store)
		}
		if err != nil {
			return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch teachers"})
		}
		return c.JSON(fiber.Map{
			"teachers": teachers,
			"count":    len(teachers),
		})
	}
}

func AddTeacherAPI(store database.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var teacher models.Teacher
		if err := c.BodyParser(&teacher); err != nil {
			return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
		}
		teacher.AddedBy = auth.UserID(c)
		teacher.IsActive = true
		if err := validate.Struct(teacher); err != nil {
			return c.Status(400).JSON(fiber.Map{"error": "Name, email and school are required"})
		}

		id, err := database.AddTeacher(store, teacher)
		if err != nil {
			return c.Status(500).JSON(fiber.Map{"error": "Failed to add teacher"})
		}
		return c.Status(201).JSON(fiber.Map{"id": id, "message": "Teacher added"})
	}
}

func UpdateTeacherAPI(store database.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		teacherID := c.Params("id")
		var fields map[string]any
		if err := json.Unmarshal(c.Body(), &fields); err != nil {
			return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
		}
		delete(fields, "createdAt")
		delete(fields, "addedBy")

		if err := database.UpdateTeacher(store, teacherID, fields); err != nil {
			return c.Status(500).JSON(fiber.Map{"error": "Failed to update teacher"})
		}
		return c.JSON(fiber.Map{"message": "Teacher updated"})
	}
}

// ActivateTeacherAPI and DeactivateTeacherAPI are the only two callers of
// the status transition; both go through SetTeacherStatus.
func ActivateTeacherAPI(store database.Store) fiber.Handler {
	return setStatusHandler(store, models.TeacherActive, "Teacher activated")
}

func DeactivateTeacherAPI(store database.Store) fiber.Handler {
	return setStatusHandler(store, models.TeacherInactive, "Teacher deactivated")
}

func setStatusHandler(store database.Store, status models.TeacherStatus, message string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		teacherID := c.Params("id")
		teacher, err := database.GetTeacherByID(store, teacherID)
		if err != nil {
			return c.Status(500).JSON(fiber.Map{"error": "Failed to load teacher"})
		}
		if teacher == nil {
			return c.Status(404).JSON(fiber.Map{"error": "Teacher not found"})
		}
		if err := database.SetTeacherStatus(store, teacherID, status); err != nil {
			return c.Status(500).JSON(fiber.Map{"error": "Failed to update teacher status"})
		}
		return c.JSON(fiber.Map{"message": message})
	}
}
