package cart

import (
	"context"
	"sync"

	"goflare.io/storefront/models"
)

var _ Storage = (*MemoryStorage)(nil)

// MemoryStorage keeps the last saved cart in process memory.
type MemoryStorage struct {
	mu   sync.Mutex
	cart *models.Cart
}

func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{}
}

func (m *MemoryStorage) Load(_ context.Context) (*models.Cart, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.cart == nil {
		return nil, ErrNotFound
	}
	return m.cart.Clone(), nil
}

func (m *MemoryStorage) Save(_ context.Context, cart *models.Cart) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.cart = cart.Clone()
	return nil
}
