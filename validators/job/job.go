package jobValidator

import (
	"strconv"
	"strings"

	"vikasini/middleware"

	"github.com/gofiber/fiber/v2"
)

func JobID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		jobIDStr := strings.TrimSpace(c.Params("id"))
		if jobIDStr == "" {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Job ID is required!", nil)
		}

		jobID, err := strconv.Atoi(jobIDStr)
		if err != nil || jobID <= 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Job ID!", nil)
		}

		c.Locals("jobID", jobID)
		return c.Next()
	}
}
