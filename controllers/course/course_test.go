package courseController_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	courseController "vikasini/controllers/course"
	"vikasini/database"
	"vikasini/middleware"
	"vikasini/models"
	"vikasini/routers/courseRoutes"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

const testJWTKey = "test-secret"

func newCourseApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, database.Migrate(db))

	app := fiber.New()
	courseRoutes.SetupCourseRoutes(app, testJWTKey, courseController.New(db))
	return app, db
}

func authedRequest(t *testing.T, user models.User, method, target, body string) *http.Request {
	t.Helper()
	token, err := middleware.GenerateJWT(testJWTKey, user.ID, user.Name, user.Role, user.Email)
	require.NoError(t, err)

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	req.Header.Set("Authorization", "Bearer "+token)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	return req
}

func TestEnrollOncePerCourse(t *testing.T) {
	app, db := newCourseApp(t)

	user := models.User{Name: "Asha", Email: "asha@example.com", Password: "x"}
	require.NoError(t, db.Create(&user).Error)
	course := models.Course{Title: "Digital Literacy Basics"}
	require.NoError(t, db.Create(&course).Error)

	resp, err := app.Test(authedRequest(t, user, http.MethodPost, "/api/courses/1/enroll", ""), -1)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp, err = app.Test(authedRequest(t, user, http.MethodPost, "/api/courses/1/enroll", ""), -1)
	require.NoError(t, err)
	require.Equal(t, http.StatusConflict, resp.StatusCode)

	var count int64
	require.NoError(t, db.Model(&models.UserCourse{}).Where("user_id = ? AND course_id = ?", user.ID, course.ID).Count(&count).Error)
	require.EqualValues(t, 1, count)
}

func TestEnrollRequiresAuth(t *testing.T) {
	app, _ := newCourseApp(t)

	resp, err := app.Test(httptest.NewRequest(http.MethodPost, "/api/courses/1/enroll", nil), -1)
	require.NoError(t, err)
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestUpdateProgressMarksCompletion(t *testing.T) {
	app, db := newCourseApp(t)

	user := models.User{Name: "Asha", Email: "asha@example.com", Password: "x"}
	require.NoError(t, db.Create(&user).Error)
	course := models.Course{Title: "Spreadsheets for Work"}
	require.NoError(t, db.Create(&course).Error)
	require.NoError(t, db.Create(&models.UserCourse{UserID: user.ID, CourseID: course.ID}).Error)

	resp, err := app.Test(authedRequest(t, user, http.MethodPost, "/api/courses/1/progress", `{"progress":0.5}`), -1)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var enrollment models.UserCourse
	require.NoError(t, db.Where("user_id = ?", user.ID).First(&enrollment).Error)
	require.Equal(t, 0.5, enrollment.Progress)
	require.False(t, enrollment.Completed)

	resp, err = app.Test(authedRequest(t, user, http.MethodPost, "/api/courses/1/progress", `{"progress":1.0}`), -1)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	require.NoError(t, db.Where("user_id = ?", user.ID).First(&enrollment).Error)
	require.True(t, enrollment.Completed)
}

func TestUpdateProgressRejectsOutOfRange(t *testing.T) {
	app, db := newCourseApp(t)

	user := models.User{Name: "Asha", Email: "asha@example.com", Password: "x"}
	require.NoError(t, db.Create(&user).Error)

	resp, err := app.Test(authedRequest(t, user, http.MethodPost, "/api/courses/1/progress", `{"progress":1.5}`), -1)
	require.NoError(t, err)
	require.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
}

func TestUpdateProgressNotEnrolled(t *testing.T) {
	app, db := newCourseApp(t)

	user := models.User{Name: "Asha", Email: "asha@example.com", Password: "x"}
	require.NoError(t, db.Create(&user).Error)

	resp, err := app.Test(authedRequest(t, user, http.MethodPost, "/api/courses/9/progress", `{"progress":0.5}`), -1)
	require.NoError(t, err)
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestListCourses(t *testing.T) {
	app, db := newCourseApp(t)
	require.NoError(t, db.Create(&models.Course{Title: "Freelancing 101"}).Error)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/courses", nil), -1)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var envelope struct {
		Status bool            `json:"status"`
		Data   []models.Course `json:"data"`
	}
	require.NoError(t, json.Unmarshal(raw, &envelope))
	require.True(t, envelope.Status)
	require.Len(t, envelope.Data, 1)
}
