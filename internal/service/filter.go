package service

import (
	"sort"
	"strings"

	"github.com/mkraev/digistore/internal/store"
)

// Filter describes the selection criteria for product listings.
// Zero-valued criteria are skipped; set criteria compose by logical AND.
type Filter struct {
	// Category matches the product category exactly, ignoring case.
	Category string
	// MinPrice and MaxPrice are inclusive bounds; either may be nil.
	MinPrice *float64
	MaxPrice *float64
	// Query is a case-insensitive substring matched against name or description.
	Query string
}

// matches reports whether the product satisfies every set criterion.
func (f *Filter) matches(p *store.Product) bool {
	if f.Category != "" && !strings.EqualFold(p.Category, f.Category) {
		return false
	}
	if f.MinPrice != nil && p.Price < *f.MinPrice {
		return false
	}
	if f.MaxPrice != nil && p.Price > *f.MaxPrice {
		return false
	}
	if f.Query != "" {
		q := strings.ToLower(f.Query)
		if !strings.Contains(strings.ToLower(p.Name), q) &&
			!strings.Contains(strings.ToLower(p.Description), q) {
			return false
		}
	}
	return true
}

// topByStock orders products by stock descending. The sort is stable, so
// ties keep their insertion order.
func topByStock(products []store.Product) {
	sort.SliceStable(products, func(i, j int) bool {
		return products[i].Stock > products[j].Stock
	})
}
