package cart

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/yungbote/storefront-backend/internal/domain/catalog"
)

// Cart holds an ordered list of product references without duplicates.
// A nil Products slice means the list was never initialized; carts loaded
// from a repo always carry a non-nil slice.
type Cart struct {
	ID        uuid.UUID          `gorm:"type:uuid;primaryKey" json:"id"`
	Products  []*catalog.Product `gorm:"-" json:"products"`
	CreatedAt time.Time          `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time          `gorm:"not null" json:"updated_at"`
}

func (Cart) TableName() string { return "cart" }

func (c *Cart) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}

// EnsureProducts replaces an uninitialized product list with an empty one.
func (c *Cart) EnsureProducts() {
	if c.Products == nil {
		c.Products = []*catalog.Product{}
	}
}

func (c *Cart) HasProduct(productID uuid.UUID) bool {
	for _, p := range c.Products {
		if p != nil && p.ID == productID {
			return true
		}
	}
	return false
}

// AddProduct appends p unless a product with the same id is already present.
func (c *Cart) AddProduct(p *catalog.Product) bool {
	if p == nil || c.HasProduct(p.ID) {
		return false
	}
	c.EnsureProducts()
	c.Products = append(c.Products, p)
	return true
}

// RemoveProduct drops every entry with the given id and reports how many went.
func (c *Cart) RemoveProduct(productID uuid.UUID) int {
	if c.Products == nil {
		return 0
	}
	kept := c.Products[:0]
	removed := 0
	for _, p := range c.Products {
		if p != nil && p.ID == productID {
			removed++
			continue
		}
		kept = append(kept, p)
	}
	for i := len(kept); i < len(c.Products); i++ {
		c.Products[i] = nil
	}
	c.Products = kept
	return removed
}

// Dedupe drops nil entries and repeated product ids, keeping first occurrences.
func (c *Cart) Dedupe() {
	if c.Products == nil {
		return
	}
	seen := make(map[uuid.UUID]struct{}, len(c.Products))
	out := make([]*catalog.Product, 0, len(c.Products))
	for _, p := range c.Products {
		if p == nil {
			continue
		}
		if _, dup := seen[p.ID]; dup {
			continue
		}
		seen[p.ID] = struct{}{}
		out = append(out, p)
	}
	c.Products = out
}

func (c *Cart) ProductIDs() []uuid.UUID {
	ids := make([]uuid.UUID, 0, len(c.Products))
	for _, p := range c.Products {
		if p != nil {
			ids = append(ids, p.ID)
		}
	}
	return ids
}

func (c *Cart) Clone() *Cart {
	if c == nil {
		return nil
	}
	cp := *c
	if c.Products != nil {
		cp.Products = make([]*catalog.Product, len(c.Products))
		for i, p := range c.Products {
			cp.Products[i] = p.Clone()
		}
	}
	return &cp
}

// CartProduct is one reference from a cart to a product. Position keeps the
// order products were added in.
type CartProduct struct {
	CartID    uuid.UUID `gorm:"type:uuid;primaryKey;column:cart_id"`
	ProductID uuid.UUID `gorm:"type:uuid;primaryKey;index;column:product_id"`
	Position  int       `gorm:"not null;column:position"`
}

func (CartProduct) TableName() string { return "cart_product" }
