package models

import "time"

// Customer entity, cascade-deleted with its company.
type Customer struct {
	ID        uint    `gorm:"primaryKey" json:"id"`
	Name      string  `gorm:"size:200;not null" json:"name"`
	Email     string  `gorm:"size:100;not null" json:"email"`
	Phone     string  `gorm:"size:20" json:"phone"`
	Address   string  `gorm:"size:500" json:"address"`
	CompanyID uint    `gorm:"not null;index" json:"-"`
	Company   Company `gorm:"foreignKey:CompanyID" json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
