package services

import (
	"errors"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/example/lavash/internal/apperrors"
	"github.com/example/lavash/internal/authz"
	"github.com/example/lavash/internal/models"
)

// OrderService implements the order lifecycle: creation with price derivation,
// status transitions, driver assignment, role-scoped listing and guest
// resolution. Every multi-record write runs inside one transaction.
type OrderService struct {
	db      *gorm.DB
	catalog *CatalogService
}

// NewOrderService constructs an OrderService.
func NewOrderService(db *gorm.DB, catalog *CatalogService) *OrderService {
	return &OrderService{db: db, catalog: catalog}
}

// OrderLineInput is one requested (catalog item, quantity) pair.
type OrderLineInput struct {
	MenuItemID uint `json:"menu_item_id"`
	Quantity   int  `json:"quantity"`
}

// CreateOrderInput carries a validated-on-entry order request.
type CreateOrderInput struct {
	Items           []OrderLineInput `json:"items"`
	DeliveryAddress string           `json:"delivery_address"`
	Notes           string           `json:"notes"`
	GuestName       string           `json:"guest_name"`
	GuestEmail      string           `json:"guest_email"`
	GuestPhone      string           `json:"guest_phone"`
}

// CreateOrder validates the request, freezes unit prices from the catalog,
// and persists the order, its items and its tracking record atomically.
// principal is nil for anonymous guests.
func (s *OrderService) CreateOrder(principal *authz.Principal, in CreateOrderInput) (*models.Order, error) {
	var customerID *uint
	if principal != nil {
		id := principal.UserID
		customerID = &id
	}

	if customerID == nil && (in.GuestName == "" || in.GuestPhone == "") {
		return nil, apperrors.NewValidation("guest identification required")
	}
	if in.DeliveryAddress == "" {
		return nil, apperrors.NewValidation("delivery address is required")
	}
	if len(in.Items) == 0 {
		return nil, apperrors.NewValidation("order must contain at least one item")
	}
	for _, line := range in.Items {
		if line.Quantity <= 0 {
			return nil, apperrors.NewValidation("quantity must be positive for menu item %d", line.MenuItemID)
		}
	}

	var order models.Order
	err := s.db.Transaction(func(tx *gorm.DB) error {
		total := decimal.Zero
		items := make([]models.OrderItem, 0, len(in.Items))

		for _, line := range in.Items {
			menuItem, err := s.catalog.GetItem(tx, line.MenuItemID)
			if err != nil {
				return err
			}
			if !menuItem.IsAvailable {
				return apperrors.NewValidation("menu item %d is not available", menuItem.ID)
			}

			lineTotal := menuItem.Price.Mul(decimal.NewFromInt(int64(line.Quantity)))
			total = total.Add(lineTotal)

			items = append(items, models.OrderItem{
				MenuItemID: menuItem.ID,
				MenuItem:   menuItem,
				Quantity:   line.Quantity,
				ItemPrice:  menuItem.Price,
			})
		}

		order = models.Order{
			Status:          models.StatusPending.String(),
			DeliveryAddress: in.DeliveryAddress,
			Notes:           in.Notes,
			TotalAmount:     total,
			CustomerID:      customerID,
			GuestName:       in.GuestName,
			GuestEmail:      in.GuestEmail,
			GuestPhone:      in.GuestPhone,
			TrackingCode:    uuid.NewString(),
			Items:           items,
		}

		// MenuItem is attached for the response only; the catalog is read-only
		// from this core's perspective.
		if err := tx.Omit("Items.MenuItem").Create(&order).Error; err != nil {
			return err
		}

		tracking := models.Tracking{
			OrderID: order.ID,
			Status:  order.Status,
		}
		if err := tx.Create(&tracking).Error; err != nil {
			return err
		}

		order.Tracking = &tracking
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &order, nil
}

// UpdateStatus applies a validated status transition and keeps the tracking
// record in sync within the same transaction.
func (s *OrderService) UpdateStatus(orderID uint, newStatus string) (*models.Order, error) {
	next, err := models.ParseStatus(newStatus)
	if err != nil {
		return nil, apperrors.NewValidation("%v", err)
	}

	var order models.Order
	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Preload("Items").First(&order, orderID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.NewNotFound("order %d not found", orderID)
			}
			return err
		}

		current := models.Status(order.Status)
		if !current.CanTransitionTo(next) {
			return apperrors.NewConflict("cannot transition order %d from %s to %s", orderID, order.Status, next)
		}

		order.Status = next.String()
		if err := tx.Model(&models.Order{}).Where("id = ?", order.ID).
			Update("status", order.Status).Error; err != nil {
			return err
		}

		return syncTracking(tx, order.ID, order.Status)
	})
	if err != nil {
		return nil, err
	}

	return &order, nil
}

// AssignDriver binds a driver to an order, force-sets the status to
// "assigned" and appends an audit row. The driver must hold the driver role.
func (s *OrderService) AssignDriver(orderID, driverID uint) (*models.Order, error) {
	var order models.Order
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Preload("Items").First(&order, orderID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.NewNotFound("order %d not found", orderID)
			}
			return err
		}

		var driver models.User
		if err := tx.First(&driver, "id = ? AND role = ?", driverID, authz.RoleDriver).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.NewNotFound("driver %d not found", driverID)
			}
			return err
		}

		// Assignment deterministically forces the status so routing progress
		// is always reflected, regardless of the prior value.
		order.DriverID = &driver.ID
		order.Driver = &driver
		order.Status = models.StatusAssigned.String()
		updates := map[string]any{
			"driver_id": driver.ID,
			"status":    order.Status,
		}
		if err := tx.Model(&models.Order{}).Where("id = ?", order.ID).Updates(updates).Error; err != nil {
			return err
		}

		assignment := models.DriverAssignment{
			OrderID:    order.ID,
			DriverID:   driver.ID,
			Status:     order.Status,
			AssignedAt: time.Now(),
		}
		if err := tx.Create(&assignment).Error; err != nil {
			return err
		}

		return syncTracking(tx, order.ID, order.Status)
	})
	if err != nil {
		return nil, err
	}

	return &order, nil
}

// ListOrders returns the orders the principal is authorized to see, newest
// first. Staff roles see everything, drivers their assignments, everyone else
// their own orders.
func (s *OrderService) ListOrders(principal authz.Principal, limit, offset int) ([]models.Order, int64, error) {
	query := s.db.Model(&models.Order{})

	switch {
	case authz.Can(principal.Role, authz.OpListAllOrders):
	case principal.Role == authz.RoleDriver:
		query = query.Where("driver_id = ?", principal.UserID)
	default:
		query = query.Where("customer_id = ?", principal.UserID)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var orders []models.Order
	err := query.Preload("Items").Preload("Tracking").
		Order("created_at desc, id desc").
		Limit(limit).Offset(offset).
		Find(&orders).Error
	if err != nil {
		return nil, 0, err
	}

	return orders, total, nil
}

// GetOrder fetches a single order with its items and tracking record.
func (s *OrderService) GetOrder(orderID uint) (*models.Order, error) {
	var order models.Order
	err := s.db.Preload("Items.MenuItem").Preload("Tracking").First(&order, orderID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFound("order %d not found", orderID)
		}
		return nil, err
	}

	return &order, nil
}

// ResolveByTrackingInput resolves a public tracking input to its order
// without authentication. Numeric inputs are tried against the tracking
// table first; anything else (or a numeric miss) falls back to the legacy
// tracking code stored on the order.
func (s *OrderService) ResolveByTrackingInput(input string) (*models.Order, error) {
	if id, err := strconv.ParseUint(input, 10, 64); err == nil {
		var tracking models.Tracking
		err := s.db.First(&tracking, uint(id)).Error
		if err == nil {
			return s.GetOrder(tracking.OrderID)
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
	}

	var order models.Order
	err := s.db.Preload("Items.MenuItem").Preload("Tracking").
		First(&order, "tracking_code = ?", input).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFound("order not found")
		}
		return nil, err
	}

	return &order, nil
}

// TrackingHandle returns the public tracking id for an order, preferring the
// canonical tracking record and falling back to the legacy code.
func TrackingHandle(order *models.Order) string {
	if order.Tracking != nil && order.Tracking.ID != 0 {
		return strconv.FormatUint(uint64(order.Tracking.ID), 10)
	}
	return order.TrackingCode
}

func syncTracking(tx *gorm.DB, orderID uint, status string) error {
	return tx.Model(&models.Tracking{}).
		Where("order_id = ?", orderID).
		Updates(map[string]any{"status": status, "updated_at": time.Now()}).Error
}
