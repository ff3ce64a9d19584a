package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Offer is a quote sent to a customer. Customer fields are a denormalized
// snapshot taken at creation time, not a live reference to a Customer row.
type Offer struct {
	ID              uint            `gorm:"primaryKey" json:"id"`
	OfferNumber     string          `gorm:"size:50;not null;index" json:"offer_number"`
	CustomerName    string          `gorm:"size:200;not null" json:"customer_name"`
	CustomerEmail   string          `gorm:"size:100;not null" json:"customer_email"`
	CustomerPhone   string          `gorm:"size:20" json:"customer_phone"`
	CustomerAddress string          `gorm:"size:500;not null" json:"customer_address"`
	OfferDate       time.Time       `json:"offer_date"`
	DueDate         time.Time       `json:"due_date"`
	TotalAmount     decimal.Decimal `gorm:"type:decimal(18,2)" json:"total_amount"`
	Notes           string          `gorm:"size:2000" json:"notes"`

	UserID    uint    `gorm:"not null;index" json:"-"`
	User      User    `gorm:"foreignKey:UserID" json:"-"`
	CompanyID uint    `gorm:"not null;index" json:"-"`
	Company   Company `gorm:"foreignKey:CompanyID" json:"-"`

	Items []OfferItem `gorm:"foreignKey:OfferID;constraint:OnDelete:CASCADE" json:"items"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// OfferItem is one line of an offer. TotalPrice is always recomputed as
// Quantity × UnitPrice when the item is written.
type OfferItem struct {
	ID          uint            `gorm:"primaryKey" json:"id"`
	OfferID     uint            `gorm:"not null;index" json:"-"`
	Description string          `gorm:"size:500;not null" json:"description"`
	Quantity    int             `gorm:"not null" json:"quantity"`
	UnitPrice   decimal.Decimal `gorm:"type:decimal(18,2)" json:"unit_price"`
	TotalPrice  decimal.Decimal `gorm:"type:decimal(18,2)" json:"total_price"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
