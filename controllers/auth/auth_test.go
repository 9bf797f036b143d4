package authController_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"vikasini/config"
	authController "vikasini/controllers/auth"
	"vikasini/database"
	"vikasini/models"
	"vikasini/routers/authRoutes"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newAuthApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, database.Migrate(db))

	cfg := &config.Config{JWTKey: "test-secret", SaltRound: bcrypt.MinCost}
	app := fiber.New()
	authRoutes.SetupAuthRoutes(app, authController.New(db, cfg))
	return app, db
}

func login(t *testing.T, app *fiber.App, body string) (*http.Response, map[string]json.RawMessage) {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	fields := map[string]json.RawMessage{}
	require.NoError(t, json.Unmarshal(raw, &fields))
	return resp, fields
}

func seedUser(t *testing.T, db *gorm.DB) models.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("priya123"), bcrypt.MinCost)
	require.NoError(t, err)
	user := models.User{Name: "Priya", Email: "priya@example.com", Password: string(hash)}
	require.NoError(t, db.Create(&user).Error)
	return user
}

func TestLoginIssuesVerifiableToken(t *testing.T) {
	app, db := newAuthApp(t)
	seedUser(t, db)

	resp, fields := login(t, app, `{"email":"priya@example.com","password":"priya123"}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var data struct {
		Token string          `json:"token"`
		User  json.RawMessage `json:"user"`
	}
	require.NoError(t, json.Unmarshal(fields["data"], &data))
	require.NotEmpty(t, data.Token)

	token, err := jwt.Parse(data.Token, func(token *jwt.Token) (interface{}, error) {
		return []byte("test-secret"), nil
	})
	require.NoError(t, err)
	require.True(t, token.Valid)

	// The password hash must not leak into the response
	require.NotContains(t, string(data.User), "password")
}

func TestLoginRejectsWrongPassword(t *testing.T) {
	app, db := newAuthApp(t)
	seedUser(t, db)

	resp, _ := login(t, app, `{"email":"priya@example.com","password":"wrong"}`)
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestLoginRejectsUnknownUser(t *testing.T) {
	app, _ := newAuthApp(t)

	resp, _ := login(t, app, `{"email":"nobody@example.com","password":"x"}`)
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestLoginRequiresFields(t *testing.T) {
	app, _ := newAuthApp(t)

	resp, _ := login(t, app, `{"email":""}`)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
}
