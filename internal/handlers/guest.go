package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/example/lavash/internal/services"
)

// GuestHandler serves unauthenticated order tracking.
type GuestHandler struct {
	orders *services.OrderService
}

// NewGuestHandler constructs a GuestHandler.
func NewGuestHandler(orders *services.OrderService) *GuestHandler {
	return &GuestHandler{orders: orders}
}

// Track resolves a tracking input (numeric tracking id or legacy code) to its
// order. Callable by anyone holding the handle.
func (h *GuestHandler) Track(c *fiber.Ctx) error {
	order, err := h.orders.ResolveByTrackingInput(c.Params("input"))
	if err != nil {
		return err
	}

	return c.JSON(newOrderResponse(order))
}
