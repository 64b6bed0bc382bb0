package auth

import (
	"encoding/json"
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"mealbridge/app/database"
)

var validate = validator.New()

func setSessionCookie(c *fiber.Ctx, token string) {
	c.Cookie(&fiber.Cookie{
		Name:     "jwt_token",
		Value:    token,
		Expires:  time.Now().Add(24 * time.Hour),
		HTTPOnly: true,
		SameSite: "Lax",
	})
}

func LoginAPI(store database.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		type LoginRequest struct {
			Email    string `json:"email" validate:"required,email"`
			Password string `json:"password" validate:"required"`
		}

		var req LoginRequest
		if err := c.BodyParser(&req); err != nil {
			return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
		}
		if err := validate.Struct(req); err != nil {
			return c.Status(400).JSON(fiber.Map{"error": "Email and password are required"})
		}

		uid, user, err := database.SignIn(store, req.Email, req.Password)
		if err != nil {
			switch {
			case errors.Is(err, database.ErrInvalidCredentials):
				return c.Status(401).JSON(fiber.Map{"error": "Invalid credentials"})
			case errors.Is(err, database.ErrProfileNotFound):
				return c.Status(404).JSON(fiber.Map{"error": "User data not found"})
			}
			return c.Status(500).JSON(fiber.Map{"error": "Sign in failed"})
		}

		token, err := GenerateJWT(uid, user.Email, user.Name, user.Role)
		if err != nil {
			return c.Status(500).JSON(fiber.Map{"error": "Failed to generate token"})
		}
		setSessionCookie(c, token)

		return c.JSON(fiber.Map{
			"message": "Login successful",
			"uid":     uid,
			"user":    user,
			"token":   token,
		})
	}
}

func SignupAPI(store database.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		type SignupRequest struct {
			Email    string `json:"email" validate:"required,email"`
			Password string `json:"password" validate:"required,min=8"`
			Name     string `json:"name" validate:"required"`
		}

		var req SignupRequest
		if err := c.BodyParser(&req); err != nil {
			return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
		}
		if err := validate.Struct(req); err != nil {
			return c.Status(400).JSON(fiber.Map{"error": "Name, email and a password of at least 8 characters are required"})
		}

		uid, user, err := database.SignUpPrincipal(store, req.Email, req.Password, req.Name)
		if err != nil {
			if errors.Is(err, database.ErrEmailTaken) {
				return c.Status(409).JSON(fiber.Map{"error": "Email already registered"})
			}
			return c.Status(500).JSON(fiber.Map{"error": "Sign up failed"})
		}

		token, err := GenerateJWT(uid, user.Email, user.Name, user.Role)
		if err != nil {
			return c.Status(500).JSON(fiber.Map{"error": "Failed to generate token"})
		}
		setSessionCookie(c, token)

		return c.Status(201).JSON(fiber.Map{
			"message": "Account created",
			"uid":     uid,
			"user":    user,
			"token":   token,
		})
	}
}

func LogoutAPI(c *fiber.Ctx) error {
	c.Cookie(&fiber.Cookie{
		Name:     "jwt_token",
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
	})
	return c.JSON(fiber.Map{"message": "Logged out"})
}

func GetProfileAPI(store database.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		user, err := database.GetUserData(store, UserID(c))
		if err != nil {
			return c.Status(500).JSON(fiber.Map{"error": "Failed to load profile"})
		}
		if user == nil {
			return c.Status(404).JSON(fiber.Map{"error": "User data not found"})
		}
		return c.JSON(fiber.Map{"uid": UserID(c), "user": user})
	}
}

// UpdateProfileAPI merge-patches the caller's own profile. Only the fields
// present in the body are touched; identity fields stay out of reach.
func UpdateProfileAPI(store database.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var fields map[string]any
		if err := json.Unmarshal(c.Body(), &fields); err != nil {
			return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
		}
		delete(fields, "email")
		delete(fields, "role")
		delete(fields, "createdAt")
		if len(fields) == 0 {
			return c.Status(400).JSON(fiber.Map{"error": "No updatable fields provided"})
		}

		if err := database.UpdateUserProfile(store, UserID(c), fields); err != nil {
			return c.Status(500).JSON(fiber.Map{"error": "Failed to update profile"})
		}
		return c.JSON(fiber.Map{"message": "Profile updated"})
	}
}
