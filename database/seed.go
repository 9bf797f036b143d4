package database

import (
	"log"

	"vikasini/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Seed inserts the demo accounts and the starter course/job catalog. Every
// insert is guarded by a lookup first, so running the seed again is a no-op.
// All statements run synchronously; when Seed returns, everything is flushed.
func Seed(db *gorm.DB, saltRound int) error {
	if err := seedAdmin(db, saltRound); err != nil {
		return err
	}
	if err := seedDemoUser(db, saltRound); err != nil {
		return err
	}
	if err := seedCourses(db); err != nil {
		return err
	}
	return seedJobs(db)
}

func seedAdmin(db *gorm.DB, saltRound int) error {
	var existing models.User
	if err := db.Where("email = ?", "admin@vikasini.org").First(&existing).Error; err == nil {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte("admin123"), saltRound)
	if err != nil {
		return err
	}

	admin := models.User{
		Name:              "Vikasini Admin",
		Email:             "admin@vikasini.org",
		Password:          string(hash),
		Role:              models.RoleAdmin,
		PreferredLanguage: "english",
	}
	if err := db.Create(&admin).Error; err != nil {
		return err
	}
	log.Println("Seeded admin account:", admin.Email)
	return nil
}

func seedDemoUser(db *gorm.DB, saltRound int) error {
	var existing models.User
	if err := db.Where("email = ?", "priya@example.com").First(&existing).Error; err == nil {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte("priya123"), saltRound)
	if err != nil {
		return err
	}

	demo := models.User{
		Name:              "Priya Sharma",
		Email:             "priya@example.com",
		Password:          string(hash),
		Role:              models.RoleUser,
		PreferredLanguage: "hindi",
		XPPoints:          120,
	}
	if err := db.Create(&demo).Error; err != nil {
		return err
	}

	interests := []string{"data entry", "digital marketing", "tailoring business"}
	for _, interest := range interests {
		if err := db.Create(&models.UserInterest{UserID: demo.ID, Interest: interest}).Error; err != nil {
			return err
		}
	}

	skills := []models.Skill{
		{UserID: demo.ID, Name: "typing", Level: "intermediate"},
		{UserID: demo.ID, Name: "spreadsheets", Level: "beginner"},
	}
	for _, skill := range skills {
		if err := db.Create(&skill).Error; err != nil {
			return err
		}
	}

	log.Println("Seeded demo account:", demo.Email)
	return nil
}

func seedCourses(db *gorm.DB) error {
	courses := []models.Course{
		{
			Title:       "Digital Literacy Basics",
			Description: "Files, email, browsing and staying safe online.",
			Category:    "digital skills",
			Duration:    "2 weeks",
			Difficulty:  "beginner",
			Skills:      datatypes.JSON([]byte(`["typing","email","internet safety"]`)),
		},
		{
			Title:       "Spreadsheets for Work",
			Description: "From first formulas to clean, shareable reports.",
			Category:    "office tools",
			Duration:    "4 weeks",
			Difficulty:  "beginner",
			Skills:      datatypes.JSON([]byte(`["spreadsheets","data formatting"]`)),
		},
		{
			Title:       "Freelancing 101",
			Description: "Set up a profile, win a first client and deliver on time.",
			Category:    "earning online",
			Duration:    "3 weeks",
			Difficulty:  "intermediate",
			Skills:      datatypes.JSON([]byte(`["profile writing","client communication"]`)),
		},
	}

	for _, course := range courses {
		var existing models.Course
		if err := db.Where("title = ?", course.Title).First(&existing).Error; err == nil {
			continue
		}
		if err := db.Create(&course).Error; err != nil {
			return err
		}
	}
	return nil
}

func seedJobs(db *gorm.DB) error {
	jobs := []models.Job{
		{
			Title:        "Data Entry Operator",
			Company:      "Seva Services",
			Location:     "Remote",
			Description:  "Enter and verify records for a document digitization project.",
			Type:         "part-time",
			Requirements: datatypes.JSON([]byte(`["typing 30 wpm","attention to detail"]`)),
		},
		{
			Title:        "Virtual Assistant",
			Company:      "Kirana Konnect",
			Location:     "Remote",
			Description:  "Manage schedules, email and simple spreadsheets for small businesses.",
			Type:         "full-time",
			Requirements: datatypes.JSON([]byte(`["email","spreadsheets","hindi and english"]`)),
		},
		{
			Title:        "Customer Support Executive",
			Company:      "Sahaya Care",
			Location:     "Bengaluru",
			Description:  "Answer customer calls and chats for a healthcare helpline.",
			Type:         "full-time",
			Requirements: datatypes.JSON([]byte(`["clear communication","basic computer skills"]`)),
		},
	}

	for _, job := range jobs {
		var existing models.Job
		if err := db.Where("title = ? AND company = ?", job.Title, job.Company).First(&existing).Error; err == nil {
			continue
		}
		if err := db.Create(&job).Error; err != nil {
			return err
		}
	}
	return nil
}
