package repository

import (
	"context"
	"errors"

	"github.com/codewithdark-git/khanana/pkg/models"
)

// ErrNotFound is returned by every store when the requested id does
// not exist. The HTTP layer maps it to a 404 envelope.
var ErrNotFound = errors.New("repository: record not found")

// ProductStore holds the catalog.
type ProductStore interface {
	List(ctx context.Context, featuredOnly bool) ([]models.Product, error)
	Get(ctx context.Context, id string) (*models.Product, error)
	Create(ctx context.Context, p *models.Product) error
	Update(ctx context.Context, p *models.Product) error
	Delete(ctx context.Context, id string) error
}

// OrderStore holds customer orders. NewCount is a live aggregate over
// rows with status "new", never a stored counter.
type OrderStore interface {
	List(ctx context.Context) ([]models.Order, error)
	Get(ctx context.Context, id string) (*models.Order, error)
	Create(ctx context.Context, o *models.Order) error
	UpdateStatus(ctx context.Context, id, status, notes string) (*models.Order, error)
	Delete(ctx context.Context, id string) error
	NewCount(ctx context.Context) (int64, error)
}

// ReviewStore holds customer reviews.
type ReviewStore interface {
	List(ctx context.Context) ([]models.Review, error)
	Create(ctx context.Context, r *models.Review) error
	SetVerified(ctx context.Context, id string, verified bool) (*models.Review, error)
	Delete(ctx context.Context, id string) error
}

// MediaStore holds references to hosted media assets.
type MediaStore interface {
	List(ctx context.Context) ([]models.Media, error)
	Add(ctx context.Context, m *models.Media) error
	Delete(ctx context.Context, id string) error
}

// SettingsStore holds the site-settings singleton. Get creates the
// default row on first read.
type SettingsStore interface {
	Get(ctx context.Context) (*models.SiteSettings, error)
	Update(ctx context.Context, heroImage, aboutImage string) (*models.SiteSettings, error)
}
