package learningPathValidator

import (
	"math"
	"strings"

	"github.com/gofiber/fiber/v2"
)

// SaveProgress validates the POST body for storing learning progress.
// currentMilestone must be present and a non-negative integer; -1 and 1.5
// are both rejected.
func SaveProgress() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			UserID           string   `json:"userId"`
			CurrentMilestone *float64 `json:"currentMilestone"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
		}

		if strings.TrimSpace(reqData.UserID) == "" {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "userId is required"})
		}

		// Upper bound keeps the float-to-int conversion exact; beyond it the
		// conversion is implementation-defined and can wrap negative.
		cm := reqData.CurrentMilestone
		if cm == nil || *cm < 0 || *cm > math.MaxInt32 || *cm != math.Trunc(*cm) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "currentMilestone must be a non-negative integer",
			})
		}

		c.Locals("userId", strings.TrimSpace(reqData.UserID))
		c.Locals("currentMilestone", int(*cm))
		return c.Next()
	}
}
