package models

import "time"

// User is the identity principal. CompanyID is nullable: deleting the company
// detaches its users (SET NULL) instead of removing them, while offers a user
// authored cascade with the user.
type User struct {
	ID           uint     `gorm:"primaryKey" json:"id"`
	Email        string   `gorm:"size:100;unique;not null;index" json:"email"`
	PasswordHash string   `gorm:"not null" json:"-"`
	Name         string   `gorm:"size:200" json:"name"`
	CompanyID    *uint    `gorm:"index" json:"company_id"`
	Company      *Company `gorm:"foreignKey:CompanyID" json:"-"`
	Offers       []Offer  `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
