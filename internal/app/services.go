package app

import (
	"github.com/yungbote/storefront-backend/internal/platform/logger"
	"github.com/yungbote/storefront-backend/internal/services"
)

type Services struct {
	Product services.ProductService
	Cart    services.CartService
}

func wireServices(log *logger.Logger, repos Repos) Services {
	log.Info("Wiring services...")
	return Services{
		Product: services.NewProductService(log, repos.Product),
		Cart:    services.NewCartService(log, repos.Cart, repos.Product),
	}
}
