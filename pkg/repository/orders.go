package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/codewithdark-git/khanana/pkg/models"
	"gorm.io/gorm"
)

// GormOrderStore is the MySQL-backed order store.
type GormOrderStore struct {
	db *gorm.DB
}

func NewGormOrderStore(db *gorm.DB) *GormOrderStore {
	return &GormOrderStore{db: db}
}

func (s *GormOrderStore) List(ctx context.Context) ([]models.Order, error) {
	var orders []models.Order
	if err := s.db.WithContext(ctx).Order("created_at DESC").Find(&orders).Error; err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}
	return orders, nil
}

func (s *GormOrderStore) Get(ctx context.Context, id string) (*models.Order, error) {
	var order models.Order
	if err := s.db.WithContext(ctx).Where("id = ?", id).First(&order).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get order: %w", err)
	}
	return &order, nil
}

func (s *GormOrderStore) Create(ctx context.Context, o *models.Order) error {
	if err := s.db.WithContext(ctx).Create(o).Error; err != nil {
		return fmt.Errorf("failed to create order: %w", err)
	}
	return nil
}

// UpdateStatus sets the order's status and, when non-empty, its notes.
// Any known status is accepted from any other status; the dashboard
// relies on being able to move orders freely.
func (s *GormOrderStore) UpdateStatus(ctx context.Context, id, status, notes string) (*models.Order, error) {
	var order models.Order
	if err := s.db.WithContext(ctx).Where("id = ?", id).First(&order).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get order: %w", err)
	}

	updates := map[string]interface{}{"status": status}
	if notes != "" {
		updates["notes"] = notes
	}
	if err := s.db.WithContext(ctx).Model(&order).Updates(updates).Error; err != nil {
		return nil, fmt.Errorf("failed to update order: %w", err)
	}

	order.Status = status
	if notes != "" {
		order.Notes = notes
	}
	return &order, nil
}

func (s *GormOrderStore) Delete(ctx context.Context, id string) error {
	result := s.db.WithContext(ctx).Where("id = ?", id).Delete(&models.Order{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete order: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// NewCount counts orders still in the "new" status with a fresh
// aggregate query, so the dashboard badge is always consistent with
// the table under concurrent checkouts.
func (s *GormOrderStore) NewCount(ctx context.Context) (int64, error) {
	var count int64
	if err := s.db.WithContext(ctx).Model(&models.Order{}).Where("status = ?", models.StatusNew).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count new orders: %w", err)
	}
	return count, nil
}
