package models

// User represents an account with a role: customer, driver, kitchen, admin or manager.
type User struct {
	BaseModel
	Name         string `json:"name"`
	Email        string `gorm:"uniqueIndex" json:"email"`
	PasswordHash string `json:"-"`
	Role         string `gorm:"size:50" json:"role"`
}
