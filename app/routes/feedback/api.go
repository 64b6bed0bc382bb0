package feedback

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"mealbridge/app/database"
	"mealbridge/app/models"
	"mealbridge/app/routes/auth"
)

var validate = validator.New()

// AddFeedbackAPI files a parent's note about a meal day.
func AddFeedbackAPI(store database.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var fb models.Feedback
		if err := c.BodyParser(&fb); err != nil {
			return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
		}
		fb.ParentID = auth.UserID(c)
		if err := validate.Struct(fb); err != nil {
			return c.Status(400).JSON(fiber.Map{"error": "Feedback text and meal date are required"})
		}

		id, err := database.AddFeedback(store, fb)
		if err != nil {
			return c.Status(500).JSON(fiber.Map{"error": "Failed to submit feedback"})
		}
		return c.Status(201).JSON(fiber.Map{"id": id, "message": "Feedback submitted"})
	}
}

// GetFeedbackAPI lists all feedback for reviewers.
func GetFeedbackAPI(store database.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		feedback, err := database.GetAllFeedback(store)
		if err != nil {
			return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch feedback"})
		}
		return c.JSON(fiber.Map{
			"feedback": feedback,
			"count":    len(feedback),
		})
	}
}

// GetMyFeedbackAPI lists the calling parent's own submissions.
func GetMyFeedbackAPI(store database.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		feedback, err := database.GetFeedbackByParentID(store, auth.UserID(c))
		if err != nil {
			return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch feedback"})
		}
		return c.JSON(fiber.Map{
			"feedback": feedback,
			"count":    len(feedback),
		})
	}
}

func MarkReviewedAPI(store database.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		err := database.MarkFeedbackReviewed(store, c.Params("id"))
		if err != nil {
			if errors.Is(err, database.ErrNotFound) {
				return c.Status(404).JSON(fiber.Map{"error": "Feedback not found"})
			}
			return c.Status(500).JSON(fiber.Map{"error": "Failed to update feedback"})
		}
		return c.JSON(fiber.Map{"message": "Feedback marked as reviewed"})
	}
}
