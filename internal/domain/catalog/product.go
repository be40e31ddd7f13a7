package catalog

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Product is a catalog item. Carts reference products but never own them.
type Product struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name        string    `gorm:"not null;column:name" json:"name"`
	Description string    `gorm:"column:description" json:"description"`
	Price       float64   `gorm:"not null;default:0;column:price" json:"price"`

	// Free-form descriptive fields, stored as a JSON object.
	Attributes datatypes.JSON `gorm:"column:attributes" json:"attributes,omitempty"`

	CreatedAt time.Time `gorm:"not null;index" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null" json:"updated_at"`
}

func (Product) TableName() string { return "product" }

func (p *Product) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

func (p *Product) Clone() *Product {
	if p == nil {
		return nil
	}
	cp := *p
	if p.Attributes != nil {
		cp.Attributes = append(datatypes.JSON(nil), p.Attributes...)
	}
	return &cp
}
