package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/example/lavash/internal/apperrors"
	"github.com/example/lavash/internal/authz"
	"github.com/example/lavash/internal/middleware"
	"github.com/example/lavash/internal/models"
	"github.com/example/lavash/internal/services"
	"github.com/example/lavash/internal/utils"
)

// OrderHandler manages order endpoints.
type OrderHandler struct {
	orders *services.OrderService
}

// NewOrderHandler constructs an OrderHandler.
func NewOrderHandler(orders *services.OrderService) *OrderHandler {
	return &OrderHandler{orders: orders}
}

// orderResponse decorates an order with its public tracking handle.
type orderResponse struct {
	*models.Order
	TrackingID string `json:"tracking_id,omitempty"`
}

func newOrderResponse(order *models.Order) orderResponse {
	return orderResponse{Order: order, TrackingID: services.TrackingHandle(order)}
}

// Create places an order for an authenticated user or an identified guest.
func (h *OrderHandler) Create(c *fiber.Ctx) error {
	var req services.CreateOrderInput
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidation("invalid request body")
	}

	var principal *authz.Principal
	if p, ok := middleware.GetPrincipal(c); ok {
		principal = &p
	}

	order, err := h.orders.CreateOrder(principal, req)
	if err != nil {
		return err
	}

	return c.JSON(newOrderResponse(order))
}

// List returns the orders visible to the authenticated principal.
func (h *OrderHandler) List(c *fiber.Ctx) error {
	principal, ok := middleware.GetPrincipal(c)
	if !ok {
		return apperrors.NewAuthentication("authentication required")
	}

	pg := utils.ParsePagination(c)
	orders, total, err := h.orders.ListOrders(principal, pg.Limit, pg.Offset)
	if err != nil {
		return err
	}

	responses := make([]orderResponse, 0, len(orders))
	for i := range orders {
		responses = append(responses, newOrderResponse(&orders[i]))
	}

	return c.JSON(fiber.Map{
		"data": responses,
		"pagination": fiber.Map{
			"current_page":   pg.Page,
			"items_per_page": pg.Limit,
			"total_items":    total,
		},
	})
}

// Get returns a single order by internal id. No authentication required.
func (h *OrderHandler) Get(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return apperrors.NewValidation("invalid order id")
	}

	order, err := h.orders.GetOrder(uint(id))
	if err != nil {
		return err
	}

	return c.JSON(newOrderResponse(order))
}

type updateStatusRequest struct {
	Status string `json:"status"`
}

// UpdateStatus transitions an order's status. Role gating happens in the
// route middleware against the central policy table.
func (h *OrderHandler) UpdateStatus(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return apperrors.NewValidation("invalid order id")
	}

	var req updateStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidation("invalid request body")
	}

	order, err := h.orders.UpdateStatus(uint(id), req.Status)
	if err != nil {
		return err
	}

	return c.JSON(newOrderResponse(order))
}

type assignDriverRequest struct {
	DriverID uint `json:"driver_id"`
}

// Assign binds a driver to an order.
func (h *OrderHandler) Assign(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return apperrors.NewValidation("invalid order id")
	}

	var req assignDriverRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidation("invalid request body")
	}

	order, err := h.orders.AssignDriver(uint(id), req.DriverID)
	if err != nil {
		return err
	}

	return c.JSON(newOrderResponse(order))
}
