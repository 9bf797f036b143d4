package userRoutes

import (
	courseControllers "vikasini/controllers/course"
	jobControllers "vikasini/controllers/job"
	userControllers "vikasini/controllers/userControllers"
	"vikasini/middleware"

	"github.com/gofiber/fiber/v2"
)

// SetupUserRoutes wires the authenticated user surface. Everything except
// GetMe, course enrollments and job applications is still a stub.
func SetupUserRoutes(app *fiber.App, jwtKey string, userCtl *userControllers.Controller, courseCtl *courseControllers.Controller, jobCtl *jobControllers.Controller) {
	userGroup := app.Group("/api/user", middleware.JWTMiddleware(jwtKey))

	userGroup.Get("/me", userCtl.GetMe)
	userGroup.Get("/courses", courseCtl.ListEnrollments)
	userGroup.Get("/applications", jobCtl.ListApplications)

	// Profile scaffold, pending implementation
	userGroup.Get("/list", userCtl.ListUsers)
	userGroup.Get("/:id", userCtl.GetUser)
	userGroup.Post("/", userCtl.CreateUser)
	userGroup.Put("/:id", userCtl.UpdateUser)
	userGroup.Delete("/:id", userCtl.DeleteUser)
	userGroup.Patch("/language", userCtl.UpdateLanguage)
	userGroup.Post("/xp", userCtl.AddXP)
	userGroup.Get("/skills/list", userCtl.GetSkills)
	userGroup.Post("/skills", userCtl.AddSkill)
}
