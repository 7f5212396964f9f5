package models

import "github.com/shopspring/decimal"

// MenuItem is a purchasable catalog entry. The order core only reads this table;
// prices are snapshotted onto order items at creation time.
type MenuItem struct {
	BaseModel
	Name        string          `json:"name"`
	Description string          `gorm:"type:text" json:"description"`
	Price       decimal.Decimal `gorm:"type:decimal(10,2)" json:"price"`
	ImageURL    string          `json:"image_url"`
	Category    string          `gorm:"size:50" json:"category"`
	IsAvailable bool            `gorm:"default:true" json:"is_available"`
	IsDeleted   bool            `gorm:"default:false" json:"-"`
}
