package jobController

import (
	"time"

	"vikasini/middleware"
	"vikasini/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type Controller struct {
	Db *gorm.DB
}

func New(db *gorm.DB) *Controller {
	return &Controller{Db: db}
}

// ListJobs returns the job board.
func (ctl *Controller) ListJobs(c *fiber.Ctx) error {
	var jobs []models.Job
	if err := ctl.Db.Order("created_at desc").Find(&jobs).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch jobs!", nil)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Jobs fetched successfully!", jobs)
}

// Apply records the user's application. A user can apply to a job at most
// once.
func (ctl *Controller) Apply(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}
	jobID := c.Locals("jobID").(int)

	var job models.Job
	if err := ctl.Db.First(&job, jobID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Job not found!", nil)
	}

	var existing models.JobApplication
	if err := ctl.Db.Where("user_id = ? AND job_id = ?", userID, jobID).First(&existing).Error; err == nil {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Already applied to this job!", nil)
	}

	application := models.JobApplication{
		UserID:    userID,
		JobID:     uint(jobID),
		Status:    "applied",
		AppliedAt: time.Now(),
	}
	if err := ctl.Db.Create(&application).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to apply to job!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Applied to job successfully!", application)
}

// ListApplications returns the authenticated user's job applications.
func (ctl *Controller) ListApplications(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var applications []models.JobApplication
	if err := ctl.Db.Where("user_id = ?", userID).Preload("Job").Order("applied_at desc").Find(&applications).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch applications!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Applications fetched successfully!", applications)
}
