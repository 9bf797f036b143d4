package learningPathController

import (
	"encoding/json"
	"errors"
	"log"
	"time"

	"vikasini/models"
	"vikasini/recordstore"

	"github.com/gofiber/fiber/v2"
)

// GetProgress returns the stored progress for a user, or a zero-milestone
// default when nothing has been stored yet. The default is served, not
// persisted.
func (ctl *Controller) GetProgress(c *fiber.Ctx) error {
	userID := c.Locals("userId").(string)

	data, err := ctl.Store.Read(recordstore.KindLearningProgress, userID)
	if errors.Is(err, recordstore.ErrNotFound) {
		progress := models.LearningProgress{
			CurrentMilestone: 0,
			LastUpdated:      time.Now().UTC().Format(time.RFC3339),
		}
		return c.JSON(fiber.Map{"progress": progress})
	}
	if err != nil {
		log.Printf("Error reading learning progress for %s: %v", userID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to read learning progress"})
	}

	var progress models.LearningProgress
	if err := json.Unmarshal(data, &progress); err != nil {
		log.Printf("Error decoding learning progress for %s: %v", userID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Stored learning progress is corrupt"})
	}

	return c.JSON(fiber.Map{"progress": progress})
}

// SaveProgress overwrites the user's progress record, stamping lastUpdated
// server-side.
func (ctl *Controller) SaveProgress(c *fiber.Ctx) error {
	userID := c.Locals("userId").(string)
	currentMilestone := c.Locals("currentMilestone").(int)

	progress := models.LearningProgress{
		CurrentMilestone: currentMilestone,
		LastUpdated:      time.Now().UTC().Format(time.RFC3339),
	}

	if err := ctl.Store.Write(recordstore.KindLearningProgress, userID, progress); err != nil {
		log.Printf("Error saving learning progress for %s: %v", userID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to save learning progress"})
	}

	return c.JSON(fiber.Map{"progress": progress})
}

// DeleteProgress resets the user's progress. Idempotent.
func (ctl *Controller) DeleteProgress(c *fiber.Ctx) error {
	userID := c.Locals("userId").(string)

	err := ctl.Store.Delete(recordstore.KindLearningProgress, userID)
	if err != nil && !errors.Is(err, recordstore.ErrNotFound) {
		log.Printf("Error deleting learning progress for %s: %v", userID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to delete learning progress"})
	}

	return c.JSON(fiber.Map{"message": "Learning progress reset"})
}
