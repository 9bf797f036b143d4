package main

import (
	"log"

	"vikasini/config"
	authController "vikasini/controllers/auth"
	courseController "vikasini/controllers/course"
	jobController "vikasini/controllers/job"
	learningPathController "vikasini/controllers/learningpath"
	mentorController "vikasini/controllers/mentor"
	userController "vikasini/controllers/userControllers"
	"vikasini/database"
	"vikasini/recordstore"
	"vikasini/routers/authRoutes"
	"vikasini/routers/courseRoutes"
	"vikasini/routers/jobRoutes"
	"vikasini/routers/learningPathRoutes"
	"vikasini/routers/mentorRoutes"
	"vikasini/routers/userRoutes"
	"vikasini/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

func main() {
	cfg := config.Load()

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	store, err := recordstore.Open(cfg.DataDir)
	if err != nil {
		log.Fatalf("Failed to open record store: %v", err)
	}

	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,PATCH,DELETE,HEAD",
		AllowHeaders: "Content-Type,Authorization",
	}))

	// Enable the built-in logger middleware to log all requests
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${ip} ${method} ${path} ${status} ${latency}\n",
	}))

	app.Use(recover.New())

	authRoutes.SetupAuthRoutes(app, authController.New(db, cfg))
	learningPathRoutes.SetupLearningPathRoutes(app, learningPathController.New(store))
	mentorRoutes.SetupMentorRoutes(app, mentorController.New(cfg))
	courseRoutes.SetupCourseRoutes(app, cfg.JWTKey, courseController.New(db))
	jobRoutes.SetupJobRoutes(app, cfg.JWTKey, jobController.New(db))
	userRoutes.SetupUserRoutes(app, cfg.JWTKey, userController.New(db), courseController.New(db), jobController.New(db))

	sweeper := utils.StartTempFileSweeper(store)
	defer sweeper.Stop()

	log.Printf("Server is running on port %s", cfg.Port)
	log.Fatal(app.Listen(":" + cfg.Port))
}
