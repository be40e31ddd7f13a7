package app

import (
	"context"
	"fmt"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/storefront-backend/internal/data/db"
	"github.com/yungbote/storefront-backend/internal/http"
	"github.com/yungbote/storefront-backend/internal/observability"
	"github.com/yungbote/storefront-backend/internal/platform/logger"
)

type App struct {
	Log      *logger.Logger
	DB       *db.Service
	Router   *gin.Engine
	Cfg      Config
	Repos    Repos
	Services Services

	otelShutdown func(context.Context) error
}

func New(ctx context.Context, log *logger.Logger, cfg Config) (*App, error) {
	otelShutdown := observability.InitOTel(ctx, log, cfg.Otel)

	dbs, err := db.NewService(log, cfg.DB)
	if err != nil {
		_ = otelShutdown(ctx)
		return nil, fmt.Errorf("init database: %w", err)
	}
	if cfg.AutoMigrate {
		if err := dbs.AutoMigrateAll(); err != nil {
			_ = dbs.Close()
			_ = otelShutdown(ctx)
			return nil, fmt.Errorf("automigrate: %w", err)
		}
	}

	reposet := wireRepos(dbs.DB(), log)
	serviceset := wireServices(log, reposet)
	handlerset := wireHandlers(log, serviceset, dbs)
	router := wireRouter(log, cfg, handlerset)

	return &App{
		Log:          log,
		DB:           dbs,
		Router:       router,
		Cfg:          cfg,
		Repos:        reposet,
		Services:     serviceset,
		otelShutdown: otelShutdown,
	}, nil
}

// Run serves HTTP until ctx is cancelled, then drains within Cfg.ShutdownTimeout.
func (a *App) Run(ctx context.Context) error {
	if a == nil || a.Router == nil {
		return fmt.Errorf("app not initialized")
	}
	srv := http.NewServer(a.Cfg.Addr(), a.Router)
	a.Log.Info("HTTP server listening", "addr", srv.Addr())
	if err := srv.Run(ctx, a.Cfg.ShutdownTimeout); err != nil {
		return fmt.Errorf("http server: %w", err)
	}
	a.Log.Info("HTTP server stopped")
	return nil
}

func (a *App) Close() {
	if a == nil {
		return
	}
	timeout := a.Cfg.ShutdownTimeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	if a.otelShutdown != nil {
		if err := a.otelShutdown(ctx); err != nil {
			a.Log.Warn("otel shutdown failed", "error", err)
		}
	}
	if a.DB != nil {
		if err := a.DB.Close(); err != nil {
			a.Log.Warn("database close failed", "error", err)
		}
	}
	a.Log.Sync()
}

// Migrate connects and applies the schema without starting the server.
func Migrate(log *logger.Logger, cfg Config) error {
	dbs, err := db.NewService(log, cfg.DB)
	if err != nil {
		return fmt.Errorf("init database: %w", err)
	}
	defer dbs.Close()
	if err := dbs.AutoMigrateAll(); err != nil {
		return fmt.Errorf("automigrate: %w", err)
	}
	log.Info("Migrations applied", "driver", dbs.Driver())
	return nil
}
