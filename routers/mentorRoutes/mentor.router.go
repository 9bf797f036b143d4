package mentorRoutes

import (
	controllers "vikasini/controllers/mentor"

	"github.com/gofiber/fiber/v2"
)

func SetupMentorRoutes(app *fiber.App, ctl *controllers.Controller) {
	group := app.Group("/api/mentor")

	// Head must be registered first: fiber's Get also binds HEAD.
	group.Head("/status", ctl.StatusHead)
	group.Get("/status", ctl.Status)
	group.Get("/check", ctl.Check)
}
