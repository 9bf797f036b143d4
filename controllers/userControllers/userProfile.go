package userController

import (
	"vikasini/middleware"
	"vikasini/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// Controller is the user profile surface. Apart from GetMe it is still a
// scaffold: the remaining handlers answer 501 until the profile features
// land.
type Controller struct {
	Db *gorm.DB
}

func New(db *gorm.DB) *Controller {
	return &Controller{Db: db}
}

// GetMe echoes the authenticated user's record.
func (ctl *Controller) GetMe(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var user models.User
	if err := ctl.Db.First(&user, userID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "User fetched successfully!", user)
}

func notImplemented(c *fiber.Ctx) error {
	return middleware.JsonResponse(c, fiber.StatusNotImplemented, false, "Not implemented", nil)
}

func (ctl *Controller) ListUsers(c *fiber.Ctx) error      { return notImplemented(c) }
func (ctl *Controller) GetUser(c *fiber.Ctx) error        { return notImplemented(c) }
func (ctl *Controller) CreateUser(c *fiber.Ctx) error     { return notImplemented(c) }
func (ctl *Controller) UpdateUser(c *fiber.Ctx) error     { return notImplemented(c) }
func (ctl *Controller) DeleteUser(c *fiber.Ctx) error     { return notImplemented(c) }
func (ctl *Controller) UpdateLanguage(c *fiber.Ctx) error { return notImplemented(c) }
func (ctl *Controller) AddXP(c *fiber.Ctx) error          { return notImplemented(c) }
func (ctl *Controller) GetSkills(c *fiber.Ctx) error      { return notImplemented(c) }
func (ctl *Controller) AddSkill(c *fiber.Ctx) error       { return notImplemented(c) }
