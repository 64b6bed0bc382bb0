package published

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"mealbridge/app/database"
	"mealbridge/app/models"
	"mealbridge/app/routes/auth"
)

var validate = validator.New()

// PublishDonationAPI offers an in-kind item.
func PublishDonationAPI(store database.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var item models.PublishedDonation
		if err := c.BodyParser(&item); err != nil {
			return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
		}
		item.DonorID = auth.UserID(c)
		item.DonorName = c.Locals("user_name").(string)
		if err := validate.Struct(item); err != nil {
			return c.Status(400).JSON(fiber.Map{"error": "Item name and a positive quantity are required"})
		}

		id, err := database.AddPublishedDonation(store, item)
		if err != nil {
			return c.Status(500).JSON(fiber.Map{"error": "Failed to publish donation"})
		}
		return c.Status(201).JSON(fiber.Map{"id": id, "message": "Donation published"})
	}
}

// GetMyPublishedAPI lists the calling donor's published items.
func GetMyPublishedAPI(store database.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		items, err := database.GetPublishedDonationsByDonorID(store, auth.UserID(c))
		if err != nil {
			return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch published donations"})
		}
		return c.JSON(fiber.Map{
			"items": items,
			"count": len(items),
		})
	}
}

// ClaimPublishedAPI lets a principal claim an available item for their
// school.
func ClaimPublishedAPI(store database.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		schoolID, school, err := database.GetSchoolByPrincipalID(store, auth.UserID(c))
		if err != nil {
			return c.Status(500).JSON(fiber.Map{"error": "Failed to claim donation"})
		}
		if school == nil {
			return c.Status(400).JSON(fiber.Map{"error": "Register a school before claiming donations"})
		}

		err = database.ClaimPublishedDonation(store, c.Params("id"), schoolID)
		if err != nil {
			if errors.Is(err, database.ErrNotFound) {
				return c.Status(404).JSON(fiber.Map{"error": "Published donation not found"})
			}
			return c.Status(500).JSON(fiber.Map{"error": "Failed to claim donation"})
		}
		return c.JSON(fiber.Map{"message": "Donation claimed"})
	}
}
