package learningPathRoutes

import (
	controllers "vikasini/controllers/learningpath"
	validators "vikasini/validators/learningpath"

	"github.com/gofiber/fiber/v2"
)

// SetupLearningPathRoutes wires the path and progress resources.
func SetupLearningPathRoutes(app *fiber.App, ctl *controllers.Controller) {
	group := app.Group("/api/learning-paths")

	group.Get("/progress", validators.RequireUserID(), ctl.GetProgress)
	group.Post("/progress", validators.SaveProgress(), ctl.SaveProgress)
	group.Delete("/progress", validators.RequireUserID(), ctl.DeleteProgress)

	group.Get("/", validators.RequireUserID(), ctl.GetPath)
	group.Post("/", validators.SavePath(), ctl.SavePath)
	group.Delete("/", validators.RequireUserID(), ctl.DeletePath)
}
