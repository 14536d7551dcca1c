package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/codewithdark-git/khanana/pkg/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormReviewStore is the MySQL-backed review store.
type GormReviewStore struct {
	db *gorm.DB
}

func NewGormReviewStore(db *gorm.DB) *GormReviewStore {
	return &GormReviewStore{db: db}
}

func (s *GormReviewStore) List(ctx context.Context) ([]models.Review, error) {
	var reviews []models.Review
	if err := s.db.WithContext(ctx).Order("date DESC").Find(&reviews).Error; err != nil {
		return nil, fmt.Errorf("failed to list reviews: %w", err)
	}
	return reviews, nil
}

func (s *GormReviewStore) Create(ctx context.Context, r *models.Review) error {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	if err := s.db.WithContext(ctx).Create(r).Error; err != nil {
		return fmt.Errorf("failed to create review: %w", err)
	}
	return nil
}

func (s *GormReviewStore) SetVerified(ctx context.Context, id string, verified bool) (*models.Review, error) {
	var review models.Review
	if err := s.db.WithContext(ctx).Where("id = ?", id).First(&review).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get review: %w", err)
	}

	if err := s.db.WithContext(ctx).Model(&review).Update("verified", verified).Error; err != nil {
		return nil, fmt.Errorf("failed to update review: %w", err)
	}

	review.Verified = verified
	return &review, nil
}

func (s *GormReviewStore) Delete(ctx context.Context, id string) error {
	result := s.db.WithContext(ctx).Where("id = ?", id).Delete(&models.Review{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete review: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
