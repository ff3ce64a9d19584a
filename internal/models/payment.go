package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Payment recorded against a company, cascade-deleted with it.
type Payment struct {
	ID        uint            `gorm:"primaryKey" json:"id"`
	Amount    decimal.Decimal `gorm:"type:decimal(18,2)" json:"amount"`
	CompanyID uint            `gorm:"not null;index" json:"-"`
	Company   Company         `gorm:"foreignKey:CompanyID" json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
