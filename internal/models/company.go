package models

import "time"

// Company is the tenant root: every business row belongs to exactly one company.
// OffersUsed counts offers created under this company since registration.
type Company struct {
	ID         uint   `gorm:"primaryKey" json:"id"`
	Name       string `gorm:"size:200;not null" json:"name"`
	Address    string `gorm:"size:500;not null" json:"address"`
	Phone      string `gorm:"size:20;not null" json:"phone"`
	Email      string `gorm:"size:100;not null" json:"email"`
	TaxNumber  string `gorm:"size:50" json:"tax_number"`
	IBAN       string `gorm:"size:50" json:"iban"`
	Website    string `gorm:"size:200" json:"website"`
	Logo       string `gorm:"size:500" json:"logo"` // path to the uploaded logo file
	OffersUsed int    `gorm:"not null;default:0" json:"offers_used"`

	Users     []User     `gorm:"foreignKey:CompanyID;constraint:OnDelete:SET NULL" json:"-"`
	Offers    []Offer    `gorm:"foreignKey:CompanyID;constraint:OnDelete:CASCADE" json:"-"`
	Products  []Product  `gorm:"foreignKey:CompanyID;constraint:OnDelete:CASCADE" json:"-"`
	Customers []Customer `gorm:"foreignKey:CompanyID;constraint:OnDelete:CASCADE" json:"-"`
	Payments  []Payment  `gorm:"foreignKey:CompanyID;constraint:OnDelete:CASCADE" json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
