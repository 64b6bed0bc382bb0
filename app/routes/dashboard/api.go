package dashboard

import (
	"sort"
	"time"

	"github.com/gofiber/fiber/v2"

	"mealbridge/app/database"
	"mealbridge/app/models"
	"mealbridge/app/routes/auth"
)

// GetDashboardAPI selects the caller's view-model by role. The switch is
// exhaustive over the closed role set; AuthMiddleware already rejected
// anything outside it.
func GetDashboardAPI(store database.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		switch role := auth.UserRole(c); role {
		case models.RoleAdmin:
			return adminDashboard(c, store)
		case models.RoleTeacher:
			return teacherDashboard(c, store)
		case models.RolePrincipal:
			return principalDashboard(c, store)
		case models.RoleDonor:
			return donorDashboard(c, store)
		case models.RoleParent:
			return parentDashboard(c, store)
		default:
			return c.Status(403).JSON(fiber.Map{"error": "Access Denied"})
		}
	}
}

// GetAdminDashboardAPI serves the system overview to admins only.
func GetAdminDashboardAPI(store database.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if auth.UserRole(c) != models.RoleAdmin {
			return c.Status(403).JSON(fiber.Map{"error": "Access Denied: Admin Only"})
		}
		return adminDashboard(c, store)
	}
}

func adminDashboard(c *fiber.Ctx, store database.Store) error {
	stats, err := database.GetAdminStats(store)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to load admin dashboard"})
	}
	return c.JSON(fiber.Map{"role": models.RoleAdmin, "stats": stats})
}

func teacherDashboard(c *fiber.Ctx, store database.Store) error {
	stats, err := database.GetDashboardStats(store)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to load dashboard"})
	}
	students, err := database.GetStudentsByTeacher(store, auth.UserID(c))
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to load dashboard"})
	}
	return c.JSON(fiber.Map{
		"role":         models.RoleTeacher,
		"stats":        stats,
		"studentCount": len(students),
	})
}

func principalDashboard(c *fiber.Ctx, store database.Store) error {
	stats, err := database.GetDashboardStats(store)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to load dashboard"})
	}

	schoolID, school, err := database.GetSchoolByPrincipalID(store, auth.UserID(c))
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to load dashboard"})
	}

	resp := fiber.Map{"role": models.RolePrincipal, "stats": stats}
	if school != nil {
		donors, err := database.GetDonorSummary(store, schoolID)
		if err != nil {
			return c.Status(500).JSON(fiber.Map{"error": "Failed to load dashboard"})
		}
		resp["schoolId"] = schoolID
		resp["school"] = school
		resp["donors"] = donors
	}
	return c.JSON(resp)
}

func donorDashboard(c *fiber.Ctx, store database.Store) error {
	requests, err := database.GetActiveDonationRequests(store)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to load dashboard"})
	}
	items, err := database.GetPublishedDonationsByDonorID(store, auth.UserID(c))
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to load dashboard"})
	}

	available := 0
	for _, item := range items {
		if item.Status == models.PublishedAvailable {
			available++
		}
	}

	return c.JSON(fiber.Map{
		"role":           models.RoleDonor,
		"activeRequests": len(requests),
		"requests":       requestListing(requests),
		"availableItems": available,
	})
}

func parentDashboard(c *fiber.Ctx, store database.Store) error {
	feedback, err := database.GetFeedbackByParentID(store, auth.UserID(c))
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to load dashboard"})
	}
	return c.JSON(fiber.Map{"role": models.RoleParent, "feedback": feedback})
}

type requestView struct {
	ID              string                 `json:"id"`
	Request         models.DonationRequest `json:"request"`
	DaysUntilTarget int                    `json:"daysUntilTarget"`
	Urgent          bool                   `json:"urgent"`
	Progress        float64                `json:"progress"`
}

// requestListing decorates requests with urgency and orders them by
// ascending target date. Urgency styles the card; it never reorders.
func requestListing(requests map[string]models.DonationRequest) []requestView {
	now := time.Now()
	views := make([]requestView, 0, len(requests))
	for id, request := range requests {
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
	return views
}
