package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/example/lavash/internal/authz"
	"github.com/example/lavash/internal/config"
	"github.com/example/lavash/internal/handlers"
	"github.com/example/lavash/internal/middleware"
	"github.com/example/lavash/internal/services"
)

// Register wires up all HTTP routes.
func Register(app *fiber.App, db *gorm.DB, cfg *config.Config) {
	catalogService := services.NewCatalogService(db)
	orderService := services.NewOrderService(db, catalogService)

	authHandler := handlers.NewAuthHandler(db, cfg)
	userHandler := handlers.NewUserHandler(db)
	menuHandler := handlers.NewMenuHandler(catalogService)
	orderHandler := handlers.NewOrderHandler(orderService)
	guestHandler := handlers.NewGuestHandler(orderService)

	auth := middleware.Auth(cfg)
	optionalAuth := middleware.OptionalAuth(cfg)

	app.Post("/users/", userHandler.Create)
	app.Post("/auth/login", authHandler.Login)

	menu := app.Group("/menu")
	menu.Get("/", menuHandler.List)
	menu.Get("/:id", menuHandler.Get)

	orders := app.Group("/orders")
	orders.Post("/", optionalAuth, orderHandler.Create)
	orders.Get("/", auth, orderHandler.List)
	orders.Get("/:id", orderHandler.Get)
	orders.Put("/:id/status", auth, middleware.RequireOperation(authz.OpUpdateStatus), orderHandler.UpdateStatus)
	orders.Put("/:id/assign", auth, middleware.RequireOperation(authz.OpAssignDriver), orderHandler.Assign)

	app.Get("/guest/track/:input", guestHandler.Track)
}
