package jobController_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	jobController "vikasini/controllers/job"
	"vikasini/database"
	"vikasini/middleware"
	"vikasini/models"
	"vikasini/routers/jobRoutes"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

const testJWTKey = "test-secret"

func newJobApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, database.Migrate(db))

	app := fiber.New()
	jobRoutes.SetupJobRoutes(app, testJWTKey, jobController.New(db))
	return app, db
}

func apply(t *testing.T, app *fiber.App, user models.User, jobID string) *http.Response {
	t.Helper()
	token, err := middleware.GenerateJWT(testJWTKey, user.ID, user.Name, user.Role, user.Email)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/jobs/"+jobID+"/apply", nil)
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func TestApplyOncePerJob(t *testing.T) {
	app, db := newJobApp(t)

	user := models.User{Name: "Asha", Email: "asha@example.com", Password: "x"}
	require.NoError(t, db.Create(&user).Error)
	job := models.Job{Title: "Data Entry Operator", Company: "Seva Services"}
	require.NoError(t, db.Create(&job).Error)

	require.Equal(t, http.StatusOK, apply(t, app, user, "1").StatusCode)
	require.Equal(t, http.StatusConflict, apply(t, app, user, "1").StatusCode)

	var count int64
	require.NoError(t, db.Model(&models.JobApplication{}).Where("user_id = ? AND job_id = ?", user.ID, job.ID).Count(&count).Error)
	require.EqualValues(t, 1, count)
}

func TestApplyUnknownJob(t *testing.T) {
	app, db := newJobApp(t)

	user := models.User{Name: "Asha", Email: "asha@example.com", Password: "x"}
	require.NoError(t, db.Create(&user).Error)

	require.Equal(t, http.StatusNotFound, apply(t, app, user, "42").StatusCode)
}

func TestApplyRejectsBadJobID(t *testing.T) {
	app, db := newJobApp(t)

	user := models.User{Name: "Asha", Email: "asha@example.com", Password: "x"}
	require.NoError(t, db.Create(&user).Error)

	require.Equal(t, http.StatusBadRequest, apply(t, app, user, "banana").StatusCode)
}
