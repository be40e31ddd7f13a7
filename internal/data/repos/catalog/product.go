package catalog

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	types "github.com/yungbote/storefront-backend/internal/domain"
	"github.com/yungbote/storefront-backend/internal/platform/dbctx"
	"github.com/yungbote/storefront-backend/internal/platform/logger"
)

type ProductRepo interface {
	FindByID(dbc dbctx.Context, id uuid.UUID) (*types.Product, bool, error)
	FindAll(dbc dbctx.Context) ([]*types.Product, error)
	Save(dbc dbctx.Context, product *types.Product) (*types.Product, error)
}

type productRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewProductRepo(db *gorm.DB, baseLog *logger.Logger) ProductRepo {
	repoLog := baseLog.With("repo", "ProductRepo")
	return &productRepo{db: db, log: repoLog}
}

func (r *productRepo) FindByID(dbc dbctx.Context, id uuid.UUID) (*types.Product, bool, error) {
	if id == uuid.Nil {
		return nil, false, nil
	}
	var results []*types.Product
	if err := dbc.DB(r.db).
		Where("id = ?", id).
		Limit(1).
		Find(&results).Error; err != nil {
		return nil, false, err
	}
	if len(results) == 0 {
		return nil, false, nil
	}
	return results[0], true, nil
}

func (r *productRepo) FindAll(dbc dbctx.Context) ([]*types.Product, error) {
	results := []*types.Product{}
	if err := dbc.DB(r.db).
		Order("created_at ASC").
		Order("id ASC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

// Save inserts a product with a zero id and upserts one that already has an id.
func (r *productRepo) Save(dbc dbctx.Context, product *types.Product) (*types.Product, error) {
	if product == nil {
		return nil, nil
	}
	if err := dbc.DB(r.db).Save(product).Error; err != nil {
		return nil, err
	}
	return product, nil
}
