package requests

import (
	"encoding/json"
	"errors"
	"sort"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"mealbridge/app/database"
	"mealbridge/app/models"
	"mealbridge/app/routes/auth"
)

var validate = validator.New()

type requestView struct {
	ID              string                 `json:"id"`
	Request         models.DonationRequest `json:"request"`
	DaysUntilTarget int                    `json:"daysUntilTarget"`
	Urgent          bool                   `json:"urgent"`
	Progress        float64                `json:"progress"`
}

// GetActiveRequestsAPI lists open requests decorated with the urgency
// window and sorted by ascending target date.
func GetActiveRequestsAPI(store database.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		active, err := database.GetActiveDonationRequests(store)
		if err != nil {
			return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch requests"})
		}

		now := time.Now()
		views := make([]requestView, 0, len(active))
		for id, request := range active {
			days := database.DaysUntilTarget(request.TargetDate, now)
			views = append(views, requestView{
				ID:              id,
				Request:         request,
				DaysUntilTarget: days,
				Urgent:          database.Urgent(days),
				Progress:        request.Progress(),
			})
		}
		sort.Slice(views, func(i, j int) bool {
			if views[i].Request.TargetDate == views[j].Request.TargetDate {
				return views[i].ID < views[j].ID
			}
			return views[i].Request.TargetDate < views[j].Request.TargetDate
		})

		return c.JSON(fiber.Map{
			"requests": views,
			"count":    len(views),
		})
	}
}

// GetMyRequestsAPI lists the calling principal's own requests, any
// status.
func GetMyRequestsAPI(store database.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		mine, err := database.GetDonationRequestsByPrincipalID(store, auth.UserID(c))
		if err != nil {
			return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch requests"})
		}
		return c.JSON(fiber.Map{
			"requests": mine,
			"count":    len(mine),
		})
	}
}

// AddRequestAPI opens a donation request for the principal's school.
func AddRequestAPI(store database.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var request models.DonationRequest
		if err := c.BodyParser(&request); err != nil {
			return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
		}
		if err := validate.Struct(request); err != nil {
			return c.Status(400).JSON(fiber.Map{"error": "Amount, purpose and target date are required"})
		}

		principalID := auth.UserID(c)
		schoolID, school, err := database.GetSchoolByPrincipalID(store, principalID)
		if err != nil {
			return c.Status(500).JSON(fiber.Map{"error": "Failed to create request"})
		}
		if school == nil {
			return c.Status(400).JSON(fiber.Map{"error": "Register a school before requesting donations"})
		}
		if school.Status != models.SchoolApproved {
			return c.Status(400).JSON(fiber.Map{"error": "School is not approved yet"})
		}

		request.SchoolID = schoolID
		request.SchoolName = school.Name
		request.PrincipalID = principalID
		request.PrincipalName = school.PrincipalName

		id, err := database.AddDonationRequest(store, request)
		if err != nil {
			return c.Status(500).JSON(fiber.Map{"error": "Failed to create request"})
		}
		return c.Status(201).JSON(fiber.Map{"id": id, "message": "Donation request created"})
	}
}

// UpdateRequestAPI edits the describable fields of a request. Status and
// fulfilment stay out of reach of this endpoint.
func UpdateRequestAPI(store database.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var fields map[string]any
		if err := json.Unmarshal(c.Body(), &fields); err != nil {
			return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
		}
		for _, k := range []string{"status", "fulfilledAmount", "createdAt", "schoolId", "principalId"} {
			delete(fields, k)
		}
		if len(fields) == 0 {
			return c.Status(400).JSON(fiber.Map{"error": "No updatable fields provided"})
		}

		if err := database.UpdateDonationRequest(store, c.Params("id"), fields); err != nil {
			return c.Status(500).JSON(fiber.Map{"error": "Failed to update request"})
		}
		return c.JSON(fiber.Map{"message": "Request updated"})
	}
}

func CancelRequestAPI(store database.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		err := database.CancelDonationRequest(store, c.Params("id"))
		if err != nil {
			if errors.Is(err, database.ErrNotFound) {
				return c.Status(404).JSON(fiber.Map{"error": "Request not found"})
			}
			return c.Status(500).JSON(fiber.Map{"error": "Failed to cancel request"})
		}
		return c.JSON(fiber.Map{"message": "Request cancelled"})
	}
}
