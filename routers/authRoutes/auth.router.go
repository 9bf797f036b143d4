package authRoutes

import (
	authControllers "vikasini/controllers/auth"

	"github.com/gofiber/fiber/v2"
)

func SetupAuthRoutes(app *fiber.App, ctl *authControllers.Controller) {
	authGroup := app.Group("/api/auth")

	authGroup.Post("/login", ctl.Login)
}
