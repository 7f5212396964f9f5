package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Order is one delivery request. Exactly one identification mode must hold at
// creation time: either CustomerID is set, or GuestName and GuestPhone are.
type Order struct {
	BaseModel
	Status          string          `gorm:"size:50;not null" json:"status"`
	DeliveryAddress string          `gorm:"size:255;not null" json:"delivery_address"`
	Notes           string          `gorm:"type:text" json:"notes,omitempty"`
	TotalAmount     decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"total_amount"`

	CustomerID *uint  `gorm:"index" json:"customer_id,omitempty"`
	Customer   *User  `gorm:"foreignKey:CustomerID" json:"customer,omitempty"`
	GuestName  string `gorm:"size:255" json:"guest_name,omitempty"`
	GuestEmail string `gorm:"size:255" json:"guest_email,omitempty"`
	GuestPhone string `gorm:"size:50" json:"guest_phone,omitempty"`

	DriverID *uint `gorm:"index" json:"driver_id,omitempty"`
	Driver   *User `gorm:"foreignKey:DriverID" json:"driver,omitempty"`

	// TrackingCode is the legacy shareable string handle. New orders still
	// receive one so pre-Tracking clients keep working; the numeric Tracking
	// id is the canonical handle.
	TrackingCode string `gorm:"size:64;index" json:"tracking_code,omitempty"`

	Items    []OrderItem `gorm:"constraint:OnDelete:CASCADE" json:"items,omitempty"`
	Tracking *Tracking   `json:"tracking,omitempty"`
}

// OrderItem is one catalog item within an order. ItemPrice is the unit price
// frozen at order creation and is never recomputed.
type OrderItem struct {
	BaseModel
	OrderID    uint            `gorm:"index;not null" json:"order_id"`
	MenuItemID uint            `gorm:"index;not null" json:"menu_item_id"`
	MenuItem   *MenuItem       `json:"menu_item,omitempty"`
	Quantity   int             `gorm:"not null" json:"quantity"`
	ItemPrice  decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"item_price"`
}

// DriverAssignment is an append-only audit row recorded on every successful
// driver binding. Order.DriverID stays authoritative for the current driver.
type DriverAssignment struct {
	BaseModel
	OrderID    uint      `gorm:"index;not null" json:"order_id"`
	DriverID   uint      `gorm:"index;not null" json:"driver_id"`
	Status     string    `gorm:"size:50;not null" json:"status"`
	AssignedAt time.Time `json:"assigned_at"`
}
