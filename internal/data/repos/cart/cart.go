package cart

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	types "github.com/yungbote/storefront-backend/internal/domain"
	"github.com/yungbote/storefront-backend/internal/platform/dbctx"
	"github.com/yungbote/storefront-backend/internal/platform/logger"
)

type CartRepo interface {
	FindByID(dbc dbctx.Context, id uuid.UUID) (*types.Cart, bool, error)
	// Save writes the cart row and replaces its product references. A cart
	// with a zero id is created under a fresh id.
	Save(dbc dbctx.Context, cart *types.Cart) (*types.Cart, error)
}

type cartRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewCartRepo(db *gorm.DB, baseLog *logger.Logger) CartRepo {
	repoLog := baseLog.With("repo", "CartRepo")
	return &cartRepo{db: db, log: repoLog}
}

func (r *cartRepo) FindByID(dbc dbctx.Context, id uuid.UUID) (*types.Cart, bool, error) {
	if id == uuid.Nil {
		return nil, false, nil
	}
	transaction := dbc.DB(r.db)

	var rows []*types.Cart
	if err := transaction.
		Where("id = ?", id).
		Limit(1).
		Find(&rows).Error; err != nil {
		return nil, false, err
	}
	if len(rows) == 0 {
		return nil, false, nil
	}
	cart := rows[0]

	products := []*types.Product{}
	if err := transaction.
		Model(&types.Product{}).
		Select("product.*").
		Joins("JOIN cart_product ON cart_product.product_id = product.id").
		Where("cart_product.cart_id = ?", id).
		Order("cart_product.position ASC").
		Find(&products).Error; err != nil {
		return nil, false, err
	}
	cart.Products = products
	return cart, true, nil
}

func (r *cartRepo) Save(dbc dbctx.Context, cart *types.Cart) (*types.Cart, error) {
	if cart == nil {
		return nil, nil
	}
	cartID := cart.ID
	productIDs := uniqueIDs(cart.ProductIDs())

	err := dbc.DB(r.db).Transaction(func(tx *gorm.DB) error {
		row := &types.Cart{ID: cartID}
		if cartID == uuid.Nil {
			if err := tx.Create(row).Error; err != nil {
				return err
			}
			cartID = row.ID
		} else {
			res := tx.Model(&types.Cart{}).
				Where("id = ?", cartID).
				Update("updated_at", time.Now().UTC())
			if res.Error != nil {
				return res.Error
			}
			if res.RowsAffected == 0 {
				if err := tx.Create(row).Error; err != nil {
					return err
				}
			}
		}

		if err := tx.Where("cart_id = ?", cartID).Delete(&types.CartProduct{}).Error; err != nil {
			return err
		}
		if len(productIDs) == 0 {
			return nil
		}
		refs := make([]*types.CartProduct, 0, len(productIDs))
		for i, pid := range productIDs {
			refs = append(refs, &types.CartProduct{CartID: cartID, ProductID: pid, Position: i})
		}
		return tx.Create(&refs).Error
	})
	if err != nil {
		return nil, err
	}

	saved, ok, err := r.FindByID(dbc, cartID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("cart %s vanished after save", cartID)
	}
	return saved, nil
}

func uniqueIDs(ids []uuid.UUID) []uuid.UUID {
	seen := make(map[uuid.UUID]struct{}, len(ids))
	out := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if id == uuid.Nil {
			continue
		}
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
