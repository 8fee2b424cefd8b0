// Package service provides the implementation of catalog business logic:
// product CRUD on top of the store plus the filter, search, popularity and
// category transforms.
package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/mkraev/digistore/internal/store"
)

// ProductService defines the methods for managing products.
// It abstracts the underlying business logic and data access.
type ProductService interface {
	// FindByID retrieves a single product by its unique identifier.
	// Returns ErrProductNotFound if no product exists with the given ID.
	FindByID(ctx context.Context, id string) (*ProductDto, error)

	// FindAll returns products matching the filter, in insertion order.
	// Returns an empty slice if nothing matches.
	FindAll(ctx context.Context, filter Filter) ([]ProductDto, error)

	// Categories returns the distinct category values in first-seen order.
	Categories(ctx context.Context) ([]string, error)

	// Popular returns up to limit products ordered by stock descending,
	// ties broken by insertion order.
	Popular(ctx context.Context, limit int) ([]ProductDto, error)

	// Create adds a new product to the catalog.
	// String fields are trimmed; blank optional fields get defaults.
	Create(ctx context.Context, product ProductCreateDto) (*ProductDto, error)

	// Update merges the supplied fields onto an existing product.
	// Returns ErrProductNotFound if no product exists with the given ID.
	Update(ctx context.Context, id string, product ProductUpdateDto) (*ProductDto, error)

	// DeleteByID removes a product and returns the removed record.
	// Returns ErrProductNotFound if no product exists with the given ID.
	DeleteByID(ctx context.Context, id string) (*ProductDto, error)
}

// Service implements ProductService and provides methods to manage products.
type Service struct {
	repository store.ProductStore
}

// NewService creates a new instance of ProductService with the provided repository.
func NewService(repo store.ProductStore) *Service {
	return &Service{
		repository: repo,
	}
}

// FindByID retrieves a product by its ID and returns it as a ProductDto.
func (s *Service) FindByID(ctx context.Context, id string) (*ProductDto, error) {
	product, err := s.repository.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch product by ID %s: %w", id, err)
	}

	return toDto(product), nil
}

// FindAll retrieves products matching the filter as ProductDTOs.
func (s *Service) FindAll(ctx context.Context, filter Filter) ([]ProductDto, error) {
	products, err := s.repository.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch products: %w", err)
	}

	productDTOs := make([]ProductDto, 0, len(products))
	for i := range products {
		if filter.matches(&products[i]) {
			productDTOs = append(productDTOs, *toDto(&products[i]))
		}
	}
	return productDTOs, nil
}

// Categories returns the distinct category values in first-seen order.
// Values are not case-folded: two differently-cased categories stay distinct.
func (s *Service) Categories(ctx context.Context) ([]string, error) {
	products, err := s.repository.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch products: %w", err)
	}

	seen := make(map[string]struct{}, len(products))
	categories := make([]string, 0, len(products))
	for i := range products {
		if _, ok := seen[products[i].Category]; ok {
			continue
		}
		seen[products[i].Category] = struct{}{}
		categories = append(categories, products[i].Category)
	}
	return categories, nil
}

// Popular returns up to limit products ordered by stock descending.
// A limit beyond the collection size is silently clamped.
func (s *Service) Popular(ctx context.Context, limit int) ([]ProductDto, error) {
	products, err := s.repository.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch products: %w", err)
	}

	topByStock(products)
	if limit > len(products) {
		limit = len(products)
	}

	productDTOs := make([]ProductDto, limit)
	for i := 0; i < limit; i++ {
		productDTOs[i] = *toDto(&products[i])
	}
	return productDTOs, nil
}

// Create creates a new product and returns it as a ProductDto.
func (s *Service) Create(ctx context.Context, product ProductCreateDto) (*ProductDto, error) {
	p := store.Product{
		Name:        strings.TrimSpace(product.Name),
		Category:    strings.TrimSpace(product.Category),
		Description: strings.TrimSpace(product.Description),
		Price:       float64(*product.Price),
		Stock:       int64(*product.Stock),
		FileSize:    defaultIfBlank(product.FileSize, DefaultFileSize),
		LicenseType: defaultIfBlank(product.LicenseType, DefaultLicenseType),
	}

	created, err := s.repository.Create(ctx, p)
	if err != nil {
		return nil, fmt.Errorf("failed to create product: %w", err)
	}
	return toDto(created), nil
}

// Update merges the supplied fields onto an existing product and returns the
// updated record as a ProductDto.
func (s *Service) Update(ctx context.Context, id string, product ProductUpdateDto) (*ProductDto, error) {
	upd := store.ProductUpdate{
		Name:        trimmed(product.Name),
		Category:    trimmed(product.Category),
		Description: trimmed(product.Description),
		FileSize:    trimmed(product.FileSize),
		LicenseType: trimmed(product.LicenseType),
	}
	if product.Price != nil {
		price := float64(*product.Price)
		upd.Price = &price
	}
	if product.Stock != nil {
		stock := int64(*product.Stock)
		upd.Stock = &stock
	}

	updated, err := s.repository.Update(ctx, id, upd)
	if err != nil {
		return nil, fmt.Errorf("failed to update product with ID %s: %w", id, err)
	}
	return toDto(updated), nil
}

// DeleteByID deletes a product by its ID and returns the removed record.
func (s *Service) DeleteByID(ctx context.Context, id string) (*ProductDto, error) {
	removed, err := s.repository.DeleteByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to delete product with ID %s: %w", id, err)
	}
	return toDto(removed), nil
}

// toDto converts a store.Product to a ProductDto.
func toDto(product *store.Product) *ProductDto {
	dto := &ProductDto{
		ID:          product.ID,
		Name:        product.Name,
		Category:    product.Category,
		Description: product.Description,
		Price:       product.Price,
		Stock:       product.Stock,
		FileSize:    product.FileSize,
		LicenseType: product.LicenseType,
		CreatedAt:   product.CreatedAt.Format(time.RFC3339),
	}
	if !product.UpdatedAt.IsZero() {
		dto.UpdatedAt = product.UpdatedAt.Format(time.RFC3339)
	}
	return dto
}

// defaultIfBlank returns fallback when value is empty after trimming.
func defaultIfBlank(value, fallback string) string {
	value = strings.TrimSpace(value)
	if value == "" {
		return fallback
	}
	return value
}

// trimmed converts an optional string field to a trimmed store update value.
func trimmed(value *string) *string {
	if value == nil {
		return nil
	}
	t := strings.TrimSpace(*value)
	return &t
}
