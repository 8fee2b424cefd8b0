package store

import (
	"context"
	"strconv"
	"sync"
	"time"

	"github.com/mkraev/digistore/internal/errors"
)

// inMemory implements ProductStore with an ordered slice plus an id index.
// The slice preserves insertion order; the map makes lookups O(1).
type inMemory struct {
	mu       sync.RWMutex
	products []Product
	index    map[string]int
	nextID   int64
	now      func() time.Time
}

// NewInMemoryStore creates a new instance of ProductStore.
func NewInMemoryStore() ProductStore {
	return &inMemory{
		index:  make(map[string]int),
		nextID: 1,
		now:    func() time.Time { return time.Now().UTC() },
	}
}

// FindByID retrieves a product by its ID.
func (s *inMemory) FindByID(_ context.Context, id string) (*Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i, ok := s.index[id]
	if !ok {
		return nil, errors.ErrProductNotFound
	}
	p := s.products[i]
	return &p, nil
}

// FindAll retrieves all products in insertion order.
func (s *inMemory) FindAll(_ context.Context) ([]Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	list := make([]Product, len(s.products))
	copy(list, s.products)
	return list, nil
}

// Create assigns a fresh ID and creation timestamp and stores the product.
// The ID counter is monotonic, so ids are never reused after deletion.
func (s *inMemory) Create(_ context.Context, product Product) (*Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	product.ID = strconv.FormatInt(s.nextID, 10)
	product.CreatedAt = s.now()
	product.UpdatedAt = time.Time{}
	s.nextID++

	s.index[product.ID] = len(s.products)
	s.products = append(s.products, product)

	return &product, nil
}

// Update merges non-nil fields of upd onto the stored product.
// An update with no fields set still refreshes the update timestamp.
func (s *inMemory) Update(_ context.Context, id string, upd ProductUpdate) (*Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i, ok := s.index[id]
	if !ok {
		return nil, errors.ErrProductNotFound
	}

	p := s.products[i]
	if upd.Name != nil {
		p.Name = *upd.Name
	}
	if upd.Category != nil {
		p.Category = *upd.Category
	}
	if upd.Description != nil {
		p.Description = *upd.Description
	}
	if upd.Price != nil {
		p.Price = *upd.Price
	}
	if upd.Stock != nil {
		p.Stock = *upd.Stock
	}
	if upd.FileSize != nil {
		p.FileSize = *upd.FileSize
	}
	if upd.LicenseType != nil {
		p.LicenseType = *upd.LicenseType
	}
	p.UpdatedAt = s.now()

	s.products[i] = p
	return &p, nil
}

// DeleteByID removes a product and returns the removed record.
func (s *inMemory) DeleteByID(_ context.Context, id string) (*Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i, ok := s.index[id]
	if !ok {
		return nil, errors.ErrProductNotFound
	}

	removed := s.products[i]
	s.products = append(s.products[:i], s.products[i+1:]...)
	delete(s.index, id)
	for j := i; j < len(s.products); j++ {
		s.index[s.products[j].ID] = j
	}

	return &removed, nil
}
