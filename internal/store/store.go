// Package store provides the product entity and an interface for product
// storage operations.
package store

import (
	"context"
	"time"
)

// Product represents a catalog entry.
type Product struct {
	ID          string
	Name        string
	Category    string
	Description string
	Price       float64
	Stock       int64
	FileSize    string
	LicenseType string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// ProductUpdate carries a partial update. Only non-nil fields are applied.
type ProductUpdate struct {
	Name        *string
	Category    *string
	Description *string
	Price       *float64
	Stock       *int64
	FileSize    *string
	LicenseType *string
}

// ProductStore is an interface for product storage operations.
// It abstracts the underlying data store, allowing for different implementations.
type ProductStore interface {
	// FindByID retrieves a single product by its unique identifier.
	// Returns ErrProductNotFound if no product exists with the given ID.
	FindByID(ctx context.Context, id string) (*Product, error)

	// FindAll returns all products in insertion order.
	// Returns an empty slice if no products exist.
	FindAll(ctx context.Context) ([]Product, error)

	// Create adds a new product, assigning its ID and creation timestamp.
	Create(ctx context.Context, product Product) (*Product, error)

	// Update merges the non-nil fields of upd onto an existing product and
	// refreshes its update timestamp.
	// Returns ErrProductNotFound if no product exists with the given ID.
	Update(ctx context.Context, id string, upd ProductUpdate) (*Product, error)

	// DeleteByID removes a product and returns the removed record.
	// Returns ErrProductNotFound if no product exists with the given ID.
	DeleteByID(ctx context.Context, id string) (*Product, error)
}
