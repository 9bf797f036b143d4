package learningPathValidator

import (
	"encoding/json"
	"errors"
	"reflect"
	"strings"

	"vikasini/models"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = newValidator()

// newValidator reports failing fields under their JSON names so error
// messages match the wire format.
func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// RequireUserID validates the userId query parameter shared by every
// learning-path route and stores it in c.Locals("userId").
func RequireUserID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID := strings.TrimSpace(c.Query("userId"))
		if userID == "" {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "userId is required"})
		}
		c.Locals("userId", userID)
		return c.Next()
	}
}

// SavePath validates the POST body for storing a learning path. The path
// object must carry path_title, path_description, milestones and
// career_opportunities; the first missing field is named in the error.
func SavePath() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			UserID string               `json:"userId"`
			Path   *models.LearningPath `json:"path"`
		})

		if err := c.BodyParser(reqData); err != nil {
			var typeErr *json.UnmarshalTypeError
			if errors.As(err, &typeErr) && typeErr.Field != "" {
				return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid type for field: " + typeErr.Field})
			}
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
		}

		if strings.TrimSpace(reqData.UserID) == "" {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "userId is required"})
		}
		if reqData.Path == nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "path object is required"})
		}

		if err := validate.Struct(reqData.Path); err != nil {
			if fieldErrs, ok := err.(validator.ValidationErrors); ok && len(fieldErrs) > 0 {
				return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
					"error": "path is missing required field: " + fieldErrs[0].Field(),
				})
			}
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid path object"})
		}

		c.Locals("userId", strings.TrimSpace(reqData.UserID))
		c.Locals("path", reqData.Path)
		return c.Next()
	}
}
