package main

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"

	"github.com/AliEmadEldin/SpaceCourseSystem/config"
	"github.com/AliEmadEldin/SpaceCourseSystem/database"
	"github.com/AliEmadEldin/SpaceCourseSystem/middleware"
	"github.com/AliEmadEldin/SpaceCourseSystem/routers/authRoutes"
	"github.com/AliEmadEldin/SpaceCourseSystem/routers/courseRoutes"
	"github.com/AliEmadEldin/SpaceCourseSystem/routers/enrollmentRoutes"
	"github.com/AliEmadEldin/SpaceCourseSystem/routers/sessionRoutes"
	"github.com/AliEmadEldin/SpaceCourseSystem/routers/userRoutes"
	"github.com/AliEmadEldin/SpaceCourseSystem/services"
	"github.com/AliEmadEldin/SpaceCourseSystem/store"
	"github.com/AliEmadEldin/SpaceCourseSystem/utils"
)

func main() {
	config.LoadConfig()

	db := database.ConnectDb()
	s := store.NewGormStore(db)

	if err := services.SeedAdminUser(s); err != nil {
		log.Fatalf("Failed to seed admin user: %v", err)
	}

	app := fiber.New(fiber.Config{
		// Headroom above the 100MB upload cap so the multipart envelope fits.
		BodyLimit:    services.MaxUploadSize + 1024*1024,
		ErrorHandler: middleware.ErrorHandler,
	})

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE",
		AllowHeaders: "Content-Type,Authorization",
	}))

	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${ip} ${method} ${path} ${status} ${latency}\n",
	}))

	uploader := services.NewObjectStorage()
	if config.AppConfig.StorageDriver != "s3" {
		app.Static("/uploads", config.AppConfig.UploadDir)
	}

	authRoutes.SetupAuthRoutes(app, s)
	userRoutes.SetupUserRoutes(app, s)
	courseRoutes.SetupCourseRoutes(app, s, uploader)
	enrollmentRoutes.SetupEnrollmentRoutes(app, s)
	sessionRoutes.SetupSessionRoutes(app, s)

	utils.StartSessionReminderScheduler(s)

	log.Printf("Server is running on port %s", config.AppConfig.Port)
	log.Fatal(app.Listen(":" + config.AppConfig.Port))
}
