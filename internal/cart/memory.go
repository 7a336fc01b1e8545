package cart

import (
	"context"
	"sync"
)

// MemoryStore keeps carts in-process. Used in tests and single-node runs.
type MemoryStore struct {
	mu    sync.RWMutex
	carts map[string]*Cart
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{carts: make(map[string]*Cart)}
}

func (m *MemoryStore) Get(_ context.Context, userID string) (*Cart, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	c, ok := m.carts[userID]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *c
	cp.Items = append([]Item(nil), c.Items...)
	return &cp, nil
}

func (m *MemoryStore) Set(_ context.Context, userID string, c *Cart) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := *c
	cp.Items = append([]Item(nil), c.Items...)
	m.carts[userID] = &cp
	return nil
}

func (m *MemoryStore) Clear(_ context.Context, userID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.carts, userID)
	return nil
}
