package jobRoutes

import (
	controllers "vikasini/controllers/job"
	"vikasini/middleware"
	validators "vikasini/validators/job"

	"github.com/gofiber/fiber/v2"
)

func SetupJobRoutes(app *fiber.App, jwtKey string, ctl *controllers.Controller) {
	group := app.Group("/api/jobs")

	group.Get("/", ctl.ListJobs)
	group.Post("/:id/apply", middleware.JWTMiddleware(jwtKey), validators.JobID(), ctl.Apply)
}
