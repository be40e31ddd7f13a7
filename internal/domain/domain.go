package domain

import (
	"github.com/yungbote/storefront-backend/internal/domain/cart"
	"github.com/yungbote/storefront-backend/internal/domain/catalog"
)

type Product = catalog.Product

type Cart = cart.Cart
type CartProduct = cart.CartProduct

// Models lists every persisted type in migration order.
func Models() []interface{} {
	return []interface{}{
		&catalog.Product{},
		&cart.Cart{},
		&cart.CartProduct{},
	}
}
