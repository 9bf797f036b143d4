package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"vikasini/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/require"
)

const testJWTKey = "test-secret"

func newProtectedApp(t *testing.T) *fiber.App {
	t.Helper()
	app := fiber.New()
	app.Get("/protected", middleware.JWTMiddleware(testJWTKey), func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"userId": c.Locals("userId")})
	})
	return app
}

func request(t *testing.T, app *fiber.App, authHeader string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func TestJWTMiddlewareAcceptsValidToken(t *testing.T) {
	app := newProtectedApp(t)

	token, err := middleware.GenerateJWT(testJWTKey, 7, "Priya", "user", "priya@example.com")
	require.NoError(t, err)

	resp := request(t, app, "Bearer "+token)
	require.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestJWTMiddlewareRejectsMissingOrMalformedHeader(t *testing.T) {
	app := newProtectedApp(t)

	require.Equal(t, http.StatusUnauthorized, request(t, app, "").StatusCode)
	require.Equal(t, http.StatusUnauthorized, request(t, app, "Token abc").StatusCode)
	require.Equal(t, http.StatusUnauthorized, request(t, app, "Bearer not-a-token").StatusCode)
}

func TestJWTMiddlewareRejectsWrongSignature(t *testing.T) {
	app := newProtectedApp(t)

	token, err := middleware.GenerateJWT("some-other-key", 7, "Priya", "user", "priya@example.com")
	require.NoError(t, err)

	require.Equal(t, http.StatusUnauthorized, request(t, app, "Bearer "+token).StatusCode)
}

func TestJWTMiddlewareRejectsNonNumericUserIDClaim(t *testing.T) {
	app := newProtectedApp(t)

	// Validly signed, but userId is a string; must be a 401, not a panic.
	claims := jwt.MapClaims{
		"userId": "7",
		"iat":    time.Now().Unix(),
		"exp":    time.Now().Add(time.Hour).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testJWTKey))
	require.NoError(t, err)

	resp := request(t, app, "Bearer "+token)
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}
