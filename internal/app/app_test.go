package app

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/storefront-backend/internal/data/db"
	types "github.com/yungbote/storefront-backend/internal/domain"
	"github.com/yungbote/storefront-backend/internal/platform/logger"
)

func testConfig() Config {
	return Config{
		Env:             "test",
		Version:         "test",
		Port:            "0",
		DB:              db.Config{Driver: db.DriverSQLite, SQLitePath: ":memory:"},
		AutoMigrate:     true,
		ShutdownTimeout: time.Second,
	}
}

func TestNewServesCatalogOverSQLite(t *testing.T) {
	gin.SetMode(gin.TestMode)
	a, err := New(context.Background(), logger.Nop(), testConfig())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	t.Cleanup(a.Close)

	req := httptest.NewRequest(http.MethodPost, "/api/products", strings.NewReader(`{"name":"Mug","price":9.5}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	a.Router.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("create: %d %s", rec.Code, rec.Body.String())
	}
	var created types.Product
	if err := json.Unmarshal(rec.Body.Bytes(), &created); err != nil {
		t.Fatalf("decode: %v", err)
	}

	rec = httptest.NewRecorder()
	a.Router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/products/"+created.ID.String(), nil))
	var got types.Product
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got.ID != created.ID || got.Name != "Mug" {
		t.Fatalf("unexpected product: %+v", got)
	}

	rec = httptest.NewRecorder()
	a.Router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/readyz", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("readyz: %d", rec.Code)
	}
}

func TestNewRejectsUnknownDriver(t *testing.T) {
	cfg := testConfig()
	cfg.DB.Driver = "oracle"
	if _, err := New(context.Background(), logger.Nop(), cfg); err == nil {
		t.Fatal("expected error")
	}
}

func TestLoadConfig(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("DB_DRIVER", "sqlite")
	t.Setenv("CORS_ALLOW_ORIGINS", "https://shop.example.com")
	t.Setenv("SHUTDOWN_TIMEOUT_SECONDS", "3")
	t.Setenv("OTEL_EXPORTER_OTLP_HEADERS", "api-key=abc")

	cfg := LoadConfig(logger.Nop())
	if cfg.Addr() != ":9090" {
		t.Fatalf("addr %q", cfg.Addr())
	}
	if cfg.DB.Driver != db.DriverSQLite {
		t.Fatalf("driver %q", cfg.DB.Driver)
	}
	if len(cfg.AllowOrigins) != 1 || cfg.AllowOrigins[0] != "https://shop.example.com" {
		t.Fatalf("origins %v", cfg.AllowOrigins)
	}
	if cfg.ShutdownTimeout != 3*time.Second {
		t.Fatalf("timeout %v", cfg.ShutdownTimeout)
	}
	if cfg.Otel.Headers["api-key"] != "abc" || cfg.Otel.Enabled {
		t.Fatalf("otel %+v", cfg.Otel)
	}
	if !cfg.AutoMigrate {
		t.Fatal("expected auto-migrate by default")
	}
}

func TestMigrate(t *testing.T) {
	cfg := testConfig()
	if err := Migrate(logger.Nop(), cfg); err != nil {
		t.Fatalf("Migrate: %v", err)
	}
}
