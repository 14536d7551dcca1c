package server

import (
	"context"
	"sync"

	"github.com/codewithdark-git/khanana/pkg/models"
	"github.com/codewithdark-git/khanana/pkg/repository"
	"github.com/google/uuid"
)

// In-memory stores backing the handler tests. They honor the same
// contracts as the GORM stores, including ErrNotFound.

type memProductStore struct {
	mu       sync.Mutex
	products []models.Product
	failWith error
}

func (m *memProductStore) List(_ context.Context, featuredOnly bool) ([]models.Product, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failWith != nil {
		return nil, m.failWith
	}
	var out []models.Product
	for _, p := range m.products {
		if featuredOnly && !p.Featured {
			continue
		}
		out = append(out, p)
	}
	return out, nil
}

func (m *memProductStore) Get(_ context.Context, id string) (*models.Product, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.products {
		if m.products[i].ID == id {
			p := m.products[i]
			return &p, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (m *memProductStore) Create(_ context.Context, p *models.Product) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.products = append(m.products, *p)
	return nil
}

func (m *memProductStore) Update(_ context.Context, p *models.Product) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.products {
		if m.products[i].ID == p.ID {
			m.products[i] = *p
			return nil
		}
	}
	return repository.ErrNotFound
}

func (m *memProductStore) Delete(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.products {
		if m.products[i].ID == id {
			m.products = append(m.products[:i], m.products[i+1:]...)
			return nil
		}
	}
	return repository.ErrNotFound
}

type memOrderStore struct {
	mu       sync.Mutex
	orders   []models.Order
	failWith error
}

func (m *memOrderStore) List(_ context.Context) ([]models.Order, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]models.Order, len(m.orders))
	copy(out, m.orders)
	return out, nil
}

func (m *memOrderStore) Get(_ context.Context, id string) (*models.Order, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.orders {
		if m.orders[i].ID == id {
			o := m.orders[i]
			return &o, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (m *memOrderStore) Create(_ context.Context, o *models.Order) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failWith != nil {
		return m.failWith
	}
	m.orders = append(m.orders, *o)
	return nil
}

func (m *memOrderStore) UpdateStatus(_ context.Context, id, status, notes string) (*models.Order, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.orders {
		if m.orders[i].ID == id {
			m.orders[i].Status = status
			if notes != "" {
				m.orders[i].Notes = notes
			}
			o := m.orders[i]
			return &o, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (m *memOrderStore) Delete(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.orders {
		if m.orders[i].ID == id {
			m.orders = append(m.orders[:i], m.orders[i+1:]...)
			return nil
		}
	}
	return repository.ErrNotFound
}

func (m *memOrderStore) NewCount(_ context.Context) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var count int64
	for _, o := range m.orders {
		if o.Status == models.StatusNew {
			count++
		}
	}
	return count, nil
}

type memReviewStore struct {
	mu      sync.Mutex
	reviews []models.Review
}

func (m *memReviewStore) List(_ context.Context) ([]models.Review, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]models.Review, len(m.reviews))
	copy(out, m.reviews)
	return out, nil
}

func (m *memReviewStore) Create(_ context.Context, r *models.Review) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	m.reviews = append(m.reviews, *r)
	return nil
}

func (m *memReviewStore) SetVerified(_ context.Context, id string, verified bool) (*models.Review, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.reviews {
		if m.reviews[i].ID == id {
			m.reviews[i].Verified = verified
			r := m.reviews[i]
			return &r, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (m *memReviewStore) Delete(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.reviews {
		if m.reviews[i].ID == id {
			m.reviews = append(m.reviews[:i], m.reviews[i+1:]...)
			return nil
		}
	}
	return repository.ErrNotFound
}

type memMediaStore struct {
	mu    sync.Mutex
	media []models.Media
}

func (m *memMediaStore) List(_ context.Context) ([]models.Media, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]models.Media, len(m.media))
	copy(out, m.media)
	return out, nil
}

func (m *memMediaStore) Add(_ context.Context, media *models.Media) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if media.ID == "" {
		media.ID = uuid.NewString()
	}
	if media.Type == "" {
		media.Type = "image"
	}
	m.media = append(m.media, *media)
	return nil
}

func (m *memMediaStore) Delete(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.media {
		if m.media[i].ID == id {
			m.media = append(m.media[:i], m.media[i+1:]...)
			return nil
		}
	}
	return repository.ErrNotFound
}

type memSettingsStore struct {
	mu       sync.Mutex
	settings *models.SiteSettings
}

func (m *memSettingsStore) Get(_ context.Context) (*models.SiteSettings, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.settings == nil {
		m.settings = &models.SiteSettings{ID: models.SettingsID}
	}
	s := *m.settings
	return &s, nil
}

func (m *memSettingsStore) Update(_ context.Context, heroImage, aboutImage string) (*models.SiteSettings, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.settings = &models.SiteSettings{ID: models.SettingsID, HeroImage: heroImage, AboutImage: aboutImage}
	s := *m.settings
	return &s, nil
}

// memJournal stands in for the Mongo-backed admin journal.
type memJournal struct {
	mu            sync.Mutex
	audits        []*repository.AuditLog
	notifications []*repository.NotificationRecord
}

func (j *memJournal) CreateAuditLog(_ context.Context, log *repository.AuditLog) error {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.audits = append(j.audits, log)
	return nil
}

func (j *memJournal) GetNotifications(_ context.Context, orderID string, limit int64) ([]*repository.NotificationRecord, error) {
	j.mu.Lock()
	defer j.mu.Unlock()
	var out []*repository.NotificationRecord
	for i := len(j.notifications) - 1; i >= 0; i-- {
		rec := j.notifications[i]
		if orderID != "" && rec.OrderID != orderID {
			continue
		}
		out = append(out, rec)
		if int64(len(out)) == limit {
			break
		}
	}
	return out, nil
}

// recordingNotifier captures dispatched orders; Deliver failures are
// simulated elsewhere and must never surface here.
type recordingNotifier struct {
	mu     sync.Mutex
	orders []*models.Order
}

func (n *recordingNotifier) OrderCreated(order *models.Order) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.orders = append(n.orders, order)
}

func (n *recordingNotifier) count() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return len(n.orders)
}
