package services

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/yungbote/storefront-backend/internal/data/repos"
	types "github.com/yungbote/storefront-backend/internal/domain"
	"github.com/yungbote/storefront-backend/internal/platform/dbctx"
	"github.com/yungbote/storefront-backend/internal/platform/logger"
)

type ProductService interface {
	ListAll(dbc dbctx.Context) ([]*types.Product, error)
	GetByID(dbc dbctx.Context, productID uuid.UUID) (*types.Product, bool, error)
	Add(dbc dbctx.Context, product *types.Product) (*types.Product, error)
}

type productService struct {
	log         *logger.Logger
	productRepo repos.ProductRepo
}

func NewProductService(log *logger.Logger, productRepo repos.ProductRepo) ProductService {
	return &productService{
		log:         log.With("service", "ProductService"),
		productRepo: productRepo,
	}
}

func (s *productService) ListAll(dbc dbctx.Context) ([]*types.Product, error) {
	products, err := s.productRepo.FindAll(dbc)
	if err != nil {
		s.log.Warn("ListAll: load products failed", "error", err)
		return nil, fmt.Errorf("list products: %w", err)
	}
	return products, nil
}

func (s *productService) GetByID(dbc dbctx.Context, productID uuid.UUID) (*types.Product, bool, error) {
	product, found, err := s.productRepo.FindByID(dbc, productID)
	if err != nil {
		s.log.Warn("GetByID: load product failed", "error", err, "product_id", productID)
		return nil, false, fmt.Errorf("load product: %w", err)
	}
	return product, found, nil
}

// Add always creates: any client supplied id or timestamps are discarded.
func (s *productService) Add(dbc dbctx.Context, product *types.Product) (*types.Product, error) {
	if product == nil {
		product = &types.Product{}
	}
	toSave := product.Clone()
	toSave.ID = uuid.Nil
	toSave.CreatedAt, toSave.UpdatedAt = time.Time{}, time.Time{}

	saved, err := s.productRepo.Save(dbc, toSave)
	if err != nil {
		s.log.Warn("Add: save product failed", "error", err, "name", product.Name)
		return nil, fmt.Errorf("save product: %w", err)
	}
	s.log.Debug("Add: product created", "product_id", saved.ID)
	return saved, nil
}
