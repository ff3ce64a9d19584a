package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product entity. Price is fixed-point decimal(18,2); never a float.
type Product struct {
	ID          uint            `gorm:"primaryKey" json:"id"`
	Name        string          `gorm:"size:200;not null" json:"name"`
	Description string          `gorm:"size:1000" json:"description"`
	Category    string          `gorm:"size:100" json:"category"`
	Price       decimal.Decimal `gorm:"type:decimal(18,2)" json:"price"`
	CompanyID   uint            `gorm:"not null;index" json:"-"`
	Company     Company         `gorm:"foreignKey:CompanyID" json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
