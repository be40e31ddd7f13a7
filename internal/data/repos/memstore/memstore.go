// Package memstore holds map-backed repos with the same contracts as the gorm
// repos. Stored values are copied on every read and write.
package memstore

import (
	"sync"
	"time"

	"github.com/google/uuid"

	types "github.com/yungbote/storefront-backend/internal/domain"
	"github.com/yungbote/storefront-backend/internal/platform/dbctx"
)

type ProductRepo struct {
	mu       sync.RWMutex
	products map[uuid.UUID]*types.Product
	order    []uuid.UUID
	now      func() time.Time
}

func NewProductRepo() *ProductRepo {
	return &ProductRepo{
		products: make(map[uuid.UUID]*types.Product),
		now:      func() time.Time { return time.Now().UTC() },
	}
}

func (r *ProductRepo) FindByID(_ dbctx.Context, id uuid.UUID) (*types.Product, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.products[id]
	if !ok {
		return nil, false, nil
	}
	return p.Clone(), true, nil
}

func (r *ProductRepo) FindAll(_ dbctx.Context) ([]*types.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*types.Product, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.products[id].Clone())
	}
	return out, nil
}

func (r *ProductRepo) Save(_ dbctx.Context, product *types.Product) (*types.Product, error) {
	if product == nil {
		return nil, nil
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	stored := product.Clone()
	if stored.ID == uuid.Nil {
		stored.ID = uuid.New()
	}
	now := r.now()
	if prev, ok := r.products[stored.ID]; ok {
		stored.CreatedAt = prev.CreatedAt
	} else {
		if stored.CreatedAt.IsZero() {
			stored.CreatedAt = now
		}
		r.order = append(r.order, stored.ID)
	}
	stored.UpdatedAt = now
	r.products[stored.ID] = stored
	return stored.Clone(), nil
}

type cartRecord struct {
	id         uuid.UUID
	productIDs []uuid.UUID
	createdAt  time.Time
	updatedAt  time.Time
}

// CartRepo keeps product ids only and resolves them through products on read,
// so references to unknown products disappear the same way a join drops them.
type CartRepo struct {
	mu       sync.RWMutex
	carts    map[uuid.UUID]*cartRecord
	products *ProductRepo
	now      func() time.Time
}

func NewCartRepo(products *ProductRepo) *CartRepo {
	return &CartRepo{
		carts:    make(map[uuid.UUID]*cartRecord),
		products: products,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

func (r *CartRepo) FindByID(dbc dbctx.Context, id uuid.UUID) (*types.Cart, bool, error) {
	r.mu.RLock()
	rec, ok := r.carts[id]
	if !ok {
		r.mu.RUnlock()
		return nil, false, nil
	}
	ids := append([]uuid.UUID(nil), rec.productIDs...)
	cart := &types.Cart{ID: rec.id, CreatedAt: rec.createdAt, UpdatedAt: rec.updatedAt}
	r.mu.RUnlock()

	cart.Products = make([]*types.Product, 0, len(ids))
	for _, pid := range ids {
		p, found, err := r.products.FindByID(dbc, pid)
		if err != nil {
			return nil, false, err
		}
		if found {
			cart.Products = append(cart.Products, p)
		}
	}
	return cart, true, nil
}

func (r *CartRepo) Save(dbc dbctx.Context, cart *types.Cart) (*types.Cart, error) {
	if cart == nil {
		return nil, nil
	}
	r.mu.Lock()
	id := cart.ID
	if id == uuid.Nil {
		id = uuid.New()
	}
	now := r.now()
	rec, ok := r.carts[id]
	if !ok {
		rec = &cartRecord{id: id, createdAt: now}
		r.carts[id] = rec
	}
	rec.updatedAt = now
	rec.productIDs = rec.productIDs[:0]
	seen := make(map[uuid.UUID]struct{}, len(cart.Products))
	for _, pid := range cart.ProductIDs() {
		if _, dup := seen[pid]; dup {
			continue
		}
		seen[pid] = struct{}{}
		rec.productIDs = append(rec.productIDs, pid)
	}
	r.mu.Unlock()

	saved, _, err := r.FindByID(dbc, id)
	return saved, err
}

// Len reports how many carts exist.
func (r *CartRepo) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.carts)
}
