package students

import (
	"encoding/json"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"mealbridge/app/database"
	"mealbridge/app/models"
	"mealbridge/app/routes/auth"
)

var validate = validator.New()

// GetStudentsAPI lists the calling teacher's own students.
func GetStudentsAPI(store database.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		students, err := database.GetStudentsByTeacher(store, auth.UserID(c))
		if err != nil {
			return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch students"})
		}
		return c.JSON(fiber.Map{
			"students": students,
			"count":    len(students),
		})
	}
}

func AddStudentAPI(store database.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var student models.StudentProfile
		if err := c.BodyParser(&student); err != nil {
			return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
		}
		if err := validate.Struct(student); err != nil {
			return c.Status(400).JSON(fiber.Map{"error": "Name, age, grade and parent contact details are required"})
		}

		id, err := database.AddStudent(store, auth.UserID(c), student)
		if err != nil {
			return c.Status(500).JSON(fiber.Map{"error": "Failed to add student"})
		}
		return c.Status(201).JSON(fiber.Map{"id": id, "message": "Student added"})
	}
}

// UpdateStudentAPI merge-patches only the fields present in the body.
func UpdateStudentAPI(store database.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		studentID := c.Params("id")
		var fields map[string]any
		if err := json.Unmarshal(c.Body(), &fields); err != nil {
			return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
		}
		delete(fields, "createdAt")

		if err := database.UpdateStudent(store, auth.UserID(c), studentID, fields); err != nil {
			return c.Status(500).JSON(fiber.Map{"error": "Failed to update student"})
		}
		return c.JSON(fiber.Map{"message": "Student updated"})
	}
}

func DeleteStudentAPI(store database.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := database.DeleteStudent(store, auth.UserID(c), c.Params("id")); err != nil {
			return c.Status(500).JSON(fiber.Map{"error": "Failed to delete student"})
		}
		return c.JSON(fiber.Map{"message": "Student deleted"})
	}
}
