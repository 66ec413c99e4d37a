package main

import (
	"log"

	"coursecraft/config"
	courseControllers "coursecraft/controllers/course"
	uploadController "coursecraft/controllers/upload"
	userController "coursecraft/controllers/userControllers"
	"coursecraft/database"
	"coursecraft/routers/courseRoutes"
	"coursecraft/routers/uploadRoutes"
	"coursecraft/routers/userRoutes"
	"coursecraft/services"
	"coursecraft/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func main() {
	cfg := config.Load()

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Database setup failed: %v", err)
	}

	credentialService := services.NewCredentialService(cfg)
	userService := services.NewUserService(db, credentialService)
	courseService := services.NewCourseService(db)
	stepService := services.NewStepService(db)

	app := fiber.New(fiber.Config{
		BodyLimit: 10 * 1024 * 1024, // uploads are rejected above 5MB, parsing needs headroom
	})

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,PATCH,DELETE",
		AllowHeaders: "Content-Type,Authorization",
	}))

	// Enable the built-in logger middleware to log all requests
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${ip} ${method} ${path} ${status} ${latency}\n",
	}))

	// Serve locally stored uploads
	app.Static("/uploads", cfg.UploadDir)

	userRoutes.SetupUserRoutes(app, userController.NewUserController(userService, cfg), credentialService)
	courseRoutes.SetupCourseRoutes(app,
		courseControllers.NewCourseController(courseService),
		courseControllers.NewStepController(stepService),
		credentialService)
	uploadRoutes.SetupUploadRoutes(app, uploadController.NewUploadController(cfg), credentialService)

	if cfg.ReconcileCron != "" {
		if _, err := utils.StartReconcileScheduler(db, cfg.ReconcileCron); err != nil {
			log.Printf("Failed to start reconcile scheduler: %v", err)
		}
	}

	log.Printf("Server is running on port %s", cfg.Port)
	log.Fatal(app.Listen(":" + cfg.Port))
}
