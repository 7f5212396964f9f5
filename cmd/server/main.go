package main

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/example/lavash/internal/apperrors"
	"github.com/example/lavash/internal/config"
	"github.com/example/lavash/internal/database"
	"github.com/example/lavash/internal/routes"
)

func main() {
	cfg := config.Load()
	db := database.Connect(cfg.DatabaseURL)

	if cfg.SeedDB {
		if err := database.Seed(db); err != nil {
			log.Printf("seeding failed: %v", err)
		}
	}

	app := fiber.New(fiber.Config{
		AppName:      "Lavash Backend",
		ErrorHandler: apperrors.ErrorHandler,
	})

	app.Use(recover.New())
	app.Use(logger.New())

	routes.Register(app, db, cfg)

	log.Printf("Starting server on :%s", cfg.AppPort)
	if err := app.Listen(":" + cfg.AppPort); err != nil {
		log.Fatalf("fiber.Listen error: %v", err)
	}
}
