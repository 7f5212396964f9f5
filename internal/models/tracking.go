package models

// Tracking is the public correlation record for guest visibility. Its id is
// the tracking handle handed to callers at order creation; exactly one row
// exists per order and it is never deleted.
type Tracking struct {
	BaseModel
	OrderID uint   `gorm:"uniqueIndex;not null" json:"order_id"`
	Status  string `gorm:"size:50" json:"status"`
}
