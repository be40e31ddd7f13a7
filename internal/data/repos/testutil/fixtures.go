package testutil

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	types "github.com/yungbote/storefront-backend/internal/domain"
)

func SeedProduct(tb testing.TB, ctx context.Context, tx *gorm.DB, name string, price float64) *types.Product {
	tb.Helper()
	p := &types.Product{
		ID:          uuid.New(),
		Name:        name,
		Description: name + " description",
		Price:       price,
		Attributes:  datatypes.JSON([]byte(`{"seeded":true}`)),
	}
	if err := tx.WithContext(ctx).Create(p).Error; err != nil {
		tb.Fatalf("seed product: %v", err)
	}
	return p
}

// SeedCart creates a cart referencing products in the given order.
func SeedCart(tb testing.TB, ctx context.Context, tx *gorm.DB, products ...*types.Product) *types.Cart {
	tb.Helper()
	c := &types.Cart{ID: uuid.New()}
	if err := tx.WithContext(ctx).Create(c).Error; err != nil {
		tb.Fatalf("seed cart: %v", err)
	}
	for i, p := range products {
		ref := &types.CartProduct{CartID: c.ID, ProductID: p.ID, Position: i}
		if err := tx.WithContext(ctx).Create(ref).Error; err != nil {
			tb.Fatalf("seed cart product: %v", err)
		}
	}
	c.Products = append([]*types.Product{}, products...)
	return c
}
