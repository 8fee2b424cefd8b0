package store

import (
	"context"
	"testing"

	"github.com/mkraev/digistore/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newProduct(name, category string, price float64, stock int64) Product {
	return Product{
		Name:        name,
		Category:    category,
		Description: "description of " + name,
		Price:       price,
		Stock:       stock,
		FileSize:    "1 GB",
		LicenseType: "Standard",
	}
}

func Test_InMemory_CreateAssignsIdentity(t *testing.T) {
	// given
	s := NewInMemoryStore()
	ctx := context.Background()

	// when
	created, err := s.Create(ctx, newProduct("Keyboard", "Accessories", 49.90, 15))

	// then
	require.NoError(t, err)
	assert.Equal(t, "1", created.ID)
	assert.False(t, created.CreatedAt.IsZero())
	assert.True(t, created.UpdatedAt.IsZero())

	found, err := s.FindByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, found)
}

func Test_InMemory_IdsAreUniqueAndNeverReused(t *testing.T) {
	// given
	s := NewInMemoryStore()
	ctx := context.Background()

	first, err := s.Create(ctx, newProduct("A", "X", 1, 1))
	require.NoError(t, err)
	second, err := s.Create(ctx, newProduct("B", "X", 2, 2))
	require.NoError(t, err)
	assert.NotEqual(t, first.ID, second.ID)

	// when: delete the latest record and create another
	_, err = s.DeleteByID(ctx, second.ID)
	require.NoError(t, err)
	third, err := s.Create(ctx, newProduct("C", "X", 3, 3))
	require.NoError(t, err)

	// then: the deleted id is not handed out again
	assert.NotEqual(t, second.ID, third.ID)
	assert.NotEqual(t, first.ID, third.ID)
}

func Test_InMemory_FindAllPreservesInsertionOrder(t *testing.T) {
	// given
	s := NewInMemoryStore()
	ctx := context.Background()
	names := []string{"First", "Second", "Third", "Fourth"}
	for _, name := range names {
		_, err := s.Create(ctx, newProduct(name, "X", 1, 1))
		require.NoError(t, err)
	}
	_, err := s.DeleteByID(ctx, "2")
	require.NoError(t, err)

	// when
	list, err := s.FindAll(ctx)

	// then
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, "First", list[0].Name)
	assert.Equal(t, "Third", list[1].Name)
	assert.Equal(t, "Fourth", list[2].Name)
}

func Test_InMemory_Update(t *testing.T) {
	newName := "Mechanical keyboard"
	newStock := int64(3)
	testCases := []struct {
		name        string
		id          string
		upd         ProductUpdate
		expectError error
		verify      func(t *testing.T, updated *Product)
	}{
		{
			name: "Success - partial update changes only supplied fields",
			id:   "1",
			upd:  ProductUpdate{Name: &newName, Stock: &newStock},
			verify: func(t *testing.T, updated *Product) {
				assert.Equal(t, newName, updated.Name)
				assert.Equal(t, newStock, updated.Stock)
				assert.Equal(t, "Accessories", updated.Category)
				assert.Equal(t, 49.90, updated.Price)
				assert.False(t, updated.UpdatedAt.IsZero())
			},
		},
		{
			name: "Success - empty update refreshes only the timestamp",
			id:   "1",
			upd:  ProductUpdate{},
			verify: func(t *testing.T, updated *Product) {
				assert.Equal(t, "Keyboard", updated.Name)
				assert.Equal(t, int64(15), updated.Stock)
				assert.False(t, updated.UpdatedAt.IsZero())
			},
		},
		{
			name:        "Error - unknown id",
			id:          "42",
			upd:         ProductUpdate{Name: &newName},
			expectError: errors.ErrProductNotFound,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// given
			s := NewInMemoryStore()
			ctx := context.Background()
			_, err := s.Create(ctx, newProduct("Keyboard", "Accessories", 49.90, 15))
			require.NoError(t, err)

			// when
			updated, err := s.Update(ctx, tc.id, tc.upd)

			// then
			if tc.expectError != nil {
				assert.ErrorIs(t, err, tc.expectError)
				assert.Nil(t, updated)
				return
			}
			require.NoError(t, err)
			tc.verify(t, updated)
		})
	}
}

func Test_InMemory_DeleteByID(t *testing.T) {
	// given
	s := NewInMemoryStore()
	ctx := context.Background()
	created, err := s.Create(ctx, newProduct("Mouse", "Accessories", 19.90, 7))
	require.NoError(t, err)

	// when
	removed, err := s.DeleteByID(ctx, created.ID)

	// then
	require.NoError(t, err)
	assert.Equal(t, created, removed)

	_, err = s.FindByID(ctx, created.ID)
	assert.ErrorIs(t, err, errors.ErrProductNotFound)

	_, err = s.DeleteByID(ctx, created.ID)
	assert.ErrorIs(t, err, errors.ErrProductNotFound)
}

func Test_InMemory_Seed(t *testing.T) {
	// given
	s := NewInMemoryStore()
	ctx := context.Background()

	// when
	err := Seed(ctx, s)

	// then
	require.NoError(t, err)
	list, err := s.FindAll(ctx)
	require.NoError(t, err)
	assert.Len(t, list, len(sampleCatalog))
	for _, p := range list {
		assert.NotEmpty(t, p.ID)
		assert.False(t, p.CreatedAt.IsZero())
	}
}
