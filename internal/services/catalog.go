package services

import (
	"errors"

	"gorm.io/gorm"

	"github.com/example/lavash/internal/apperrors"
	"github.com/example/lavash/internal/models"
)

// CatalogService is the read-only menu lookup the order core prices against.
type CatalogService struct {
	db *gorm.DB
}

// NewCatalogService constructs a CatalogService.
func NewCatalogService(db *gorm.DB) *CatalogService {
	return &CatalogService{db: db}
}

// GetItem returns the catalog item by id, excluding soft-deleted entries.
func (s *CatalogService) GetItem(conn *gorm.DB, id uint) (*models.MenuItem, error) {
	if conn == nil {
		conn = s.db
	}

	var item models.MenuItem
	err := conn.First(&item, "id = ? AND is_deleted = ?", id, false).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFound("menu item %d not found", id)
		}
		return nil, err
	}

	return &item, nil
}

// ListAvailable returns menu items that can currently be ordered.
func (s *CatalogService) ListAvailable() ([]models.MenuItem, error) {
	var items []models.MenuItem
	err := s.db.Where("is_deleted = ? AND is_available = ?", false, true).
		Order("category, name").
		Find(&items).Error
	return items, err
}
