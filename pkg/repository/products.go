package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/codewithdark-git/khanana/pkg/models"
	"gorm.io/gorm"
)

// GormProductStore is the MySQL-backed catalog store.
type GormProductStore struct {
	db *gorm.DB
}

func NewGormProductStore(db *gorm.DB) *GormProductStore {
	return &GormProductStore{db: db}
}

func (s *GormProductStore) List(ctx context.Context, featuredOnly bool) ([]models.Product, error) {
	var products []models.Product
	query := s.db.WithContext(ctx)
	if featuredOnly {
		query = query.Where("featured = ?", true)
	}
	if err := query.Find(&products).Error; err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	return products, nil
}

func (s *GormProductStore) Get(ctx context.Context, id string) (*models.Product, error) {
	var product models.Product
	if err := s.db.WithContext(ctx).Where("id = ?", id).First(&product).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get product: %w", err)
	}
	return &product, nil
}

func (s *GormProductStore) Create(ctx context.Context, p *models.Product) error {
	if err := s.db.WithContext(ctx).Create(p).Error; err != nil {
		return fmt.Errorf("failed to create product: %w", err)
	}
	return nil
}

// Update rewrites every editable column of an existing product. A
// save with unchanged values must succeed, and MySQL reports zero
// affected rows for identical-value updates, so existence is checked
// with First rather than inferred from RowsAffected.
func (s *GormProductStore) Update(ctx context.Context, p *models.Product) error {
	var existing models.Product
	if err := s.db.WithContext(ctx).Where("id = ?", p.ID).First(&existing).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to get product: %w", err)
	}

	err := s.db.WithContext(ctx).Model(&existing).Updates(map[string]interface{}{
		"name":                p.Name,
		"description":         p.Description,
		"original_price":      p.OriginalPrice,
		"discounted_price":    p.DiscountedPrice,
		"discount_percentage": p.DiscountPercentage,
		"image":               p.Image,
		"image_alt":           p.ImageAlt,
		"style":               p.Style,
		"tik_tok_url":         p.TikTokURL,
		"featured":            p.Featured,
	}).Error
	if err != nil {
		return fmt.Errorf("failed to update product: %w", err)
	}
	return nil
}

func (s *GormProductStore) Delete(ctx context.Context, id string) error {
	result := s.db.WithContext(ctx).Where("id = ?", id).Delete(&models.Product{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete product: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
