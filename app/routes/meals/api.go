package meals

import (
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"mealbridge/app/database"
	"mealbridge/app/models"
	"mealbridge/app/routes/auth"
)

var validate = validator.New()

func parseDateParam(c *fiber.Ctx) (string, error) {
	dateStr := c.Params("date")
	if _, err := time.Parse(database.DateLayout, dateStr); err != nil {
		return "", err
	}
	return dateStr, nil
}

// GetMealTrackingAPI returns one day's tracking document.
func GetMealTrackingAPI(store database.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		date, err := parseDateParam(c)
		if err != nil {
			return c.Status(400).JSON(fiber.Map{"error": "Invalid date format. Use YYYY-MM-DD"})
		}

		tracking, err := database.GetMealTrackingByDate(store, date)
		if err != nil {
			return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch meal tracking"})
		}
		if tracking == nil {
			tracking = &models.MealTracking{Students: map[string]models.MealEntry{}}
		}
		return c.JSON(fiber.Map{
			"date":     date,
			"tracking": tracking,
			"count":    len(tracking.Students),
		})
	}
}

type mealEntryRequest struct {
	Name              string  `json:"name" validate:"required"`
	MealServed        bool    `json:"mealServed"`
	Time              string  `json:"time"`
	PhotoURL          *string `json:"photoUrl"`
	MealReaction      string  `json:"mealReaction" validate:"omitempty,oneof=happy little none"`
	HealthObservation string  `json:"healthObservation" validate:"omitempty,oneof=tired sick active"`
	Notes             string  `json:"notes"`
}

func (r mealEntryRequest) toEntry() models.MealEntry {
	entry := models.MealEntry{
		Name:              r.Name,
		MealServed:        r.MealServed,
		Time:              r.Time,
		PhotoURL:          r.PhotoURL,
		MealReaction:      models.MealReaction(r.MealReaction),
		HealthObservation: models.HealthObservation(r.HealthObservation),
		Notes:             r.Notes,
	}
	if entry.Time == "" {
		entry.Time = time.Now().Format(time.RFC3339)
	}
	return entry
}

// RecordMealAPI records one student's serving for the day.
func RecordMealAPI(store database.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		date, err := parseDateParam(c)
		if err != nil {
			return c.Status(400).JSON(fiber.Map{"error": "Invalid date format. Use YYYY-MM-DD"})
		}

		var req mealEntryRequest
		if err := c.BodyParser(&req); err != nil {
			return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
		}
		if err := validate.Struct(req); err != nil {
			return c.Status(400).JSON(fiber.Map{"error": "Student name is required"})
		}

		err = database.RecordMealServed(store, date, auth.UserID(c), c.Params("studentId"), req.toEntry())
		if err != nil {
			return c.Status(500).JSON(fiber.Map{"error": "Failed to record meal"})
		}
		return c.Status(201).JSON(fiber.Map{"message": "Meal recorded"})
	}
}

// UpdateMealAPI amends an existing serving entry, typically with reaction
// or health feedback added after the meal.
func UpdateMealAPI(store database.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		date, err := parseDateParam(c)
		if err != nil {
			return c.Status(400).JSON(fiber.Map{"error": "Invalid date format. Use YYYY-MM-DD"})
		}

		var req mealEntryRequest
		if err := c.BodyParser(&req); err != nil {
			return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
		}
		if err := validate.Struct(req); err != nil {
			return c.Status(400).JSON(fiber.Map{"error": "Student name is required"})
		}

		err = database.UpdateMealEntry(store, date, c.Params("studentId"), req.toEntry())
		if err != nil {
			if errors.Is(err, database.ErrNotFound) {
				return c.Status(404).JSON(fiber.Map{"error": "No meal recorded for this student on this date"})
			}
			return c.Status(500).JSON(fiber.Map{"error": "Failed to update meal entry"})
		}
		return c.JSON(fiber.Map{"message": "Meal entry updated"})
	}
}
