package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/codewithdark-git/khanana/pkg/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormMediaStore is the MySQL-backed media-reference store.
type GormMediaStore struct {
	db *gorm.DB
}

func NewGormMediaStore(db *gorm.DB) *GormMediaStore {
	return &GormMediaStore{db: db}
}

func (s *GormMediaStore) List(ctx context.Context) ([]models.Media, error) {
	var media []models.Media
	if err := s.db.WithContext(ctx).Order("created_at DESC").Find(&media).Error; err != nil {
		return nil, fmt.Errorf("failed to list media: %w", err)
	}
	return media, nil
}

func (s *GormMediaStore) Add(ctx context.Context, m *models.Media) error {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	if m.Type == "" {
		m.Type = "image"
	}
	if err := s.db.WithContext(ctx).Create(m).Error; err != nil {
		return fmt.Errorf("failed to save media: %w", err)
	}
	return nil
}

func (s *GormMediaStore) Delete(ctx context.Context, id string) error {
	result := s.db.WithContext(ctx).Where("id = ?", id).Delete(&models.Media{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete media: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// GormSettingsStore holds the site-settings singleton row.
type GormSettingsStore struct {
	db *gorm.DB
}

func NewGormSettingsStore(db *gorm.DB) *GormSettingsStore {
	return &GormSettingsStore{db: db}
}

// Get returns the settings row, creating the default one on first read.
func (s *GormSettingsStore) Get(ctx context.Context) (*models.SiteSettings, error) {
	var settings models.SiteSettings
	err := s.db.WithContext(ctx).Where("id = ?", models.SettingsID).First(&settings).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		settings = models.SiteSettings{ID: models.SettingsID}
		if err := s.db.WithContext(ctx).Create(&settings).Error; err != nil {
			return nil, fmt.Errorf("failed to create default settings: %w", err)
		}
		return &settings, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get settings: %w", err)
	}
	return &settings, nil
}

// Update upserts the settings row with the given image references.
func (s *GormSettingsStore) Update(ctx context.Context, heroImage, aboutImage string) (*models.SiteSettings, error) {
	settings := models.SiteSettings{
		ID:         models.SettingsID,
		HeroImage:  heroImage,
		AboutImage: aboutImage,
	}
	if err := s.db.WithContext(ctx).Save(&settings).Error; err != nil {
		return nil, fmt.Errorf("failed to update settings: %w", err)
	}
	return &settings, nil
}
