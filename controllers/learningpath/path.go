package learningPathController

import (
	"encoding/json"
	"errors"
	"log"
	"strings"

	"vikasini/models"
	"vikasini/recordstore"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// Controller serves the learning-path and progress resources backed by the
// record store. Constructed once in main and shared across requests.
type Controller struct {
	Store *recordstore.Store
}

func New(store *recordstore.Store) *Controller {
	return &Controller{Store: store}
}

// GetPath returns the stored learning path for a user. Simulated users
// (user_ prefix) with nothing stored get the canned default path; anyone
// else gets a 404.
func (ctl *Controller) GetPath(c *fiber.Ctx) error {
	userID := c.Locals("userId").(string)

	data, err := ctl.Store.Read(recordstore.KindLearningPath, userID)
	if errors.Is(err, recordstore.ErrNotFound) {
		if strings.HasPrefix(userID, models.SimulatedUserPrefix) {
			return c.JSON(fiber.Map{"path": models.DefaultLearningPath()})
		}
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "No learning path found for this user"})
	}
	if err != nil {
		log.Printf("Error reading learning path for %s: %v", userID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to read learning path"})
	}

	var path models.LearningPath
	if err := json.Unmarshal(data, &path); err != nil {
		log.Printf("Error decoding learning path for %s: %v", userID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Stored learning path is corrupt"})
	}

	return c.JSON(fiber.Map{"path": path})
}

// SavePath overwrites the user's learning path wholesale. The server assigns
// a document ID when the client did not send one.
func (ctl *Controller) SavePath(c *fiber.Ctx) error {
	userID := c.Locals("userId").(string)
	path := c.Locals("path").(*models.LearningPath)

	if path.ID == "" {
		path.ID = uuid.NewString()
	}

	if err := ctl.Store.Write(recordstore.KindLearningPath, userID, path); err != nil {
		log.Printf("Error saving learning path for %s: %v", userID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to save learning path"})
	}

	return c.JSON(fiber.Map{"path": path})
}

// DeletePath removes the user's learning path. Deleting a path that does not
// exist is a success.
func (ctl *Controller) DeletePath(c *fiber.Ctx) error {
	userID := c.Locals("userId").(string)

	err := ctl.Store.Delete(recordstore.KindLearningPath, userID)
	if err != nil && !errors.Is(err, recordstore.ErrNotFound) {
		log.Printf("Error deleting learning path for %s: %v", userID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to delete learning path"})
	}

	return c.JSON(fiber.Map{"message": "Learning path deleted"})
}
