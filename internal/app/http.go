package app

import (
	"github.com/gin-gonic/gin"

	"github.com/yungbote/storefront-backend/internal/http"
	httpH "github.com/yungbote/storefront-backend/internal/http/handlers"
	"github.com/yungbote/storefront-backend/internal/platform/logger"
)

type Handlers struct {
	Health  *httpH.HealthHandler
	Cart    *httpH.CartHandler
	Product *httpH.ProductHandler
}

func wireHandlers(log *logger.Logger, services Services, pinger httpH.Pinger) Handlers {
	log.Info("Wiring handlers...")
	return Handlers{
		Health:  httpH.NewHealthHandler(pinger),
		Cart:    httpH.NewCartHandler(log, services.Cart),
		Product: httpH.NewProductHandler(services.Product),
	}
}

func wireRouter(log *logger.Logger, cfg Config, handlers Handlers) *gin.Engine {
	return http.NewRouter(http.RouterConfig{
		Log:            log,
		ServiceName:    cfg.Otel.ServiceName,
		AllowOrigins:   cfg.AllowOrigins,
		HealthHandler:  handlers.Health,
		CartHandler:    handlers.Cart,
		ProductHandler: handlers.Product,
	})
}
