package courseRoutes

import (
	controllers "vikasini/controllers/course"
	"vikasini/middleware"
	validators "vikasini/validators/course"

	"github.com/gofiber/fiber/v2"
)

func SetupCourseRoutes(app *fiber.App, jwtKey string, ctl *controllers.Controller) {
	group := app.Group("/api/courses")

	group.Get("/", ctl.ListCourses)
	group.Post("/:id/enroll", middleware.JWTMiddleware(jwtKey), validators.CourseID(), ctl.Enroll)
	group.Post("/:id/progress", middleware.JWTMiddleware(jwtKey), validators.CourseID(), validators.UpdateProgress(), ctl.UpdateProgress)
}
