package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mealbridge/app/models"
)

func TestGenerateAndValidateJWT(t *testing.T) {
	token, err := GenerateJWT("u1", "head@school.org", "Ms. Okello", models.RolePrincipal)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ValidateJWT(token)
	require.NoError(t, err)
	assert.Equal(t, "u1", claims.UserID)
	assert.Equal(t, "head@school.org", claims.Email)
	assert.Equal(t, "principal", claims.Role)
	assert.Equal(t, "mealbridge", claims.Issuer)
}

func TestValidateJWTGarbage(t *testing.T) {
	_, err := ValidateJWT("not.a.token")
	assert.Error(t, err)
}

func protectedApp(allowed ...models.Role) *fiber.App {
	app := fiber.New()
	group := app.Group("/p", AuthMiddleware)
	if len(allowed) > 0 {
		group.Use(RequireRoles(allowed...))
	}
	group.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"uid": UserID(c), "role": UserRole(c)})
	})
	return app
}

func TestAuthMiddlewareNoToken(t *testing.T) {
	app := protectedApp()

	resp, err := app.Test(httptest.NewRequest("GET", "/p/", nil))
	require.NoError(t, err)
	assert.Equal(t, 401, resp.StatusCode)
}

func TestAuthMiddlewareBearerToken(t *testing.T) {
	app := protectedApp()

	token, err := GenerateJWT("u1", "t@x.com", "T", models.RoleTeacher)
	require.NoError(t, err)

	req := httptest.NewRequest("GET", "/p/", nil)
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)
}

func TestAuthMiddlewareCookieToken(t *testing.T) {
	app := protectedApp()

	token, err := GenerateJWT("u1", "t@x.com", "T", models.RoleTeacher)
	require.NoError(t, err)

	req := httptest.NewRequest("GET", "/p/", nil)
	req.AddCookie(&http.Cookie{Name: "jwt_token", Value: token})

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)
}

func TestAuthMiddlewareRejectsUnknownRole(t *testing.T) {
	app := protectedApp()

	token, err := GenerateJWT("u1", "t@x.com", "T", models.Role("superuser"))
	require.NoError(t, err)

	req := httptest.NewRequest("GET", "/p/", nil)
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 401, resp.StatusCode)
}

func TestRequireRolesAllowsAndDenies(t *testing.T) {
	app := protectedApp(models.RoleAdmin, models.RolePrincipal)

	adminToken, err := GenerateJWT("u1", "a@x.com", "A", models.RoleAdmin)
	require.NoError(t, err)
	teacherToken, err := GenerateJWT("u2", "t@x.com", "T", models.RoleTeacher)
	require.NoError(t, err)

	req := httptest.NewRequest("GET", "/p/", nil)
	req.Header.Set("Authorization", "Bearer "+adminToken)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	req = httptest.NewRequest("GET", "/p/", nil)
	req.Header.Set("Authorization", "Bearer "+teacherToken)
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 403, resp.StatusCode)
}

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("s3cretpass")
	require.NoError(t, err)
	assert.NotEqual(t, "s3cretpass", hash)
	assert.True(t, CheckPasswordHash("s3cretpass", hash))
	assert.False(t, CheckPasswordHash("wrong", hash))
}
