package main

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/joho/godotenv"

	"mealbridge/app/config"
	"mealbridge/app/database"
	"mealbridge/app/routes/auth"
	"mealbridge/app/routes/dashboard"
	"mealbridge/app/routes/donations"
	"mealbridge/app/routes/feedback"
	"mealbridge/app/routes/meals"
	"mealbridge/app/routes/plans"
	"mealbridge/app/routes/published"
	"mealbridge/app/routes/requests"
	"mealbridge/app/routes/schools"
	"mealbridge/app/routes/students"
	"mealbridge/app/routes/teachers"
	"mealbridge/app/services"
)

func main() {
	// Optional .env for development; real deployments set the environment
	if err := godotenv.Load(); err == nil {
		log.Println("Loaded configuration from .env")
	}

	// Initialize database
	config.InitDB()
	defer config.GetDB().Close()

	// Run database migrations
	if err := database.RunMigrations(config.GetDB()); err != nil {
		log.Fatal("Failed to run migrations:", err)
	}

	store := database.NewPGStore(config.GetDB())

	// Start background scheduler
	services.StartScheduler(store)

	// Create Fiber app
	app := fiber.New(fiber.Config{
		AppName: "mealbridge",
	})

	// Middleware
	app.Use(logger.New())
	app.Use(cors.New())

	app.Get("/healthz", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	// Routes
	auth.SetupAuthRoutes(app, store)
	dashboard.SetupDashboardRoutes(app, store)
	students.SetupStudentsRoutes(app, store)
	teachers.SetupTeachersRoutes(app, store)
	schools.SetupSchoolsRoutes(app, store)
	donations.SetupDonationsRoutes(app, store)
	requests.SetupRequestsRoutes(app, store)
	meals.SetupMealsRoutes(app, store)
	feedback.SetupFeedbackRoutes(app, store)
	plans.SetupPlansRoutes(app, store)
	published.SetupPublishedRoutes(app, store)

	// Catch-all route for 404 errors (must be last)
	app.Use("*", func(c *fiber.Ctx) error {
		return c.Status(404).JSON(fiber.Map{"error": "Not found"})
	})

	// Start server
	addr := config.Port()
	log.Println("Server starting on", addr)
	log.Fatal(app.Listen(addr))
}
