package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/example/lavash/internal/apperrors"
	"github.com/example/lavash/internal/services"
)

// MenuHandler exposes the read-only catalog surface.
type MenuHandler struct {
	catalog *services.CatalogService
}

// NewMenuHandler constructs a MenuHandler.
func NewMenuHandler(catalog *services.CatalogService) *MenuHandler {
	return &MenuHandler{catalog: catalog}
}

// List returns all currently orderable menu items.
func (h *MenuHandler) List(c *fiber.Ctx) error {
	items, err := h.catalog.ListAvailable()
	if err != nil {
		return err
	}
	return c.JSON(items)
}

// Get returns one menu item by id.
func (h *MenuHandler) Get(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return apperrors.NewValidation("invalid menu item id")
	}

	item, err := h.catalog.GetItem(nil, uint(id))
	if err != nil {
		return err
	}
	return c.JSON(item)
}
