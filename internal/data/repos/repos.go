package repos

import (
	"gorm.io/gorm"

	"github.com/yungbote/storefront-backend/internal/data/repos/cart"
	"github.com/yungbote/storefront-backend/internal/data/repos/catalog"
	"github.com/yungbote/storefront-backend/internal/data/repos/memstore"
	"github.com/yungbote/storefront-backend/internal/platform/logger"
)

type ProductRepo = catalog.ProductRepo
type CartRepo = cart.CartRepo

func NewProductRepo(db *gorm.DB, baseLog *logger.Logger) ProductRepo {
	return catalog.NewProductRepo(db, baseLog)
}
func NewCartRepo(db *gorm.DB, baseLog *logger.Logger) CartRepo {
	return cart.NewCartRepo(db, baseLog)
}

// NewMemoryRepos returns map-backed repos sharing one product catalog.
func NewMemoryRepos() (ProductRepo, CartRepo) {
	products := memstore.NewProductRepo()
	return products, memstore.NewCartRepo(products)
}
