package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/example/lavash/internal/apperrors"
	"github.com/example/lavash/internal/authz"
	"github.com/example/lavash/internal/models"
	"github.com/example/lavash/internal/utils"
)

// UserHandler manages account creation.
type UserHandler struct {
	db *gorm.DB
}

// NewUserHandler constructs a UserHandler.
func NewUserHandler(db *gorm.DB) *UserHandler {
	return &UserHandler{db: db}
}

type createUserRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

// Create registers a new user. The role is checked against the central
// allow-list and defaults to customer.
func (h *UserHandler) Create(c *fiber.Ctx) error {
	var req createUserRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidation("invalid request body")
	}

	if req.Email == "" || req.Password == "" || req.Name == "" {
		return apperrors.NewValidation("name, email and password are required")
	}

	if req.Role == "" {
		req.Role = authz.RoleCustomer
	}
	if !authz.ValidRole(req.Role) {
		return apperrors.NewValidation("invalid role %q", req.Role)
	}

	var existing models.User
	err := h.db.Where("email = ?", req.Email).First(&existing).Error
	if err == nil {
		return apperrors.NewConflict("user with email %s already exists", req.Email)
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	passwordHash, err := utils.HashPassword(req.Password)
	if err != nil {
		return err
	}

	user := models.User{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: passwordHash,
		Role:         req.Role,
	}

	if err := h.db.Create(&user).Error; err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"id":    user.ID,
		"name":  user.Name,
		"email": user.Email,
		"role":  user.Role,
	})
}
