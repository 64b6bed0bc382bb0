package donations

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"mealbridge/app/database"
	"mealbridge/app/models"
	"mealbridge/app/routes/auth"
)

var validate = validator.New()

// AddDonationAPI records a monetary donation. Donor identity comes from
// the token, never the body.
func AddDonationAPI(store database.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var donation models.Donation
		if err := c.BodyParser(&donation); err != nil {
			return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
		}
		donation.DonorID = auth.UserID(c)
		donation.DonorName = c.Locals("user_name").(string)
		donation.DonorEmail = c.Locals("user_email").(string)
		if err := validate.Struct(donation); err != nil {
			return c.Status(400).JSON(fiber.Map{"error": "A positive amount is required"})
		}

		id, err := database.AddDonation(store, donation)
		if err != nil {
			return c.Status(500).JSON(fiber.Map{"error": "Failed to record donation"})
		}
		return c.Status(201).JSON(fiber.Map{"id": id, "message": "Donation recorded"})
	}
}

// GetDonationsAPI lists every donation (admin oversight).
func GetDonationsAPI(store database.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		donations, err := database.GetAllDonations(store)
		if err != nil {
			return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch donations"})
		}
		amount, meals := database.SumDonations(donations)
		return c.JSON(fiber.Map{
			"donations":   donations,
			"count":       len(donations),
			"totalAmount": amount,
			"totalMeals":  meals,
		})
	}
}

// GetMyDonationsAPI lists the calling donor's own giving history.
func GetMyDonationsAPI(store database.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		donations, err := database.GetDonationsByDonorID(store, auth.UserID(c))
		if err != nil {
			return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch donations"})
		}
		return c.JSON(fiber.Map{
			"donations": donations,
			"count":     len(donations),
		})
	}
}

// GetDonorListAPI serves the principal's donor list: their school's
// donations grouped by donor.
func GetDonorListAPI(store database.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		schoolID, school, err := database.GetSchoolByPrincipalID(store, auth.UserID(c))
		if err != nil {
			return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch donors"})
		}
		if school == nil {
			return c.Status(404).JSON(fiber.Map{"error": "No school registered"})
		}

		summary, err := database.GetDonorSummary(store, schoolID)
		if err != nil {
			return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch donors"})
		}
		return c.JSON(summary)
	}
}
