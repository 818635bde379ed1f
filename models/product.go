package models

import (
	"github.com/shopspring/decimal"
)

// Product is a purchasable item. Category holds the owning category's name;
// CategoryRef only exists to declare the name-keyed foreign key so the
// database cascades renames and rejects orphaned category values even if a
// repository check is ever bypassed.
type Product struct {
	ID          uint            `gorm:"primaryKey"`
	Name        string          `gorm:"not null"`
	Description string
	Price       decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	Image       string
	Category    string          `gorm:"not null;index"`
	Stock       uint            `gorm:"not null;default:0"`
	CategoryRef Category        `gorm:"foreignKey:Category;references:Name;constraint:OnUpdate:CASCADE"`
}

func (p *Product) TableName() string {
	return "products"
}
