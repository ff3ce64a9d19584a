package services

import (
	"github.com/teklifhq/offerd/internal/models"
	"errors"

	"gorm.io/gorm"
)

type CompanyInput struct {
	Name      string `json:"name"`
	Address   string `json:"address"`
	Phone     string `json:"phone"`
	Email     string `json:"email"`
	TaxNumber string `json:"tax_number"`
	IBAN      string `json:"iban"`
	Website   string `json:"website"`
	Logo      string `json:"logo"`
}

type CompanyView struct {
	ID         uint   `json:"id"`
	Name       string `json:"name"`
	Address    string `json:"address"`
	Phone      string `json:"phone"`
	Email      string `json:"email"`
	TaxNumber  string `json:"tax_number"`
	IBAN       string `json:"iban"`
	Website    string `json:"website"`
	Logo       string `json:"logo"`
	OffersUsed int    `json:"offers_used"`
}

// CompanyService manages the tenant itself. Deletion performs the cascade
// explicitly: dependents are removed and users detached inside a single
// transaction, so no orphaned rows can survive a partial failure.
type CompanyService struct{ DB *gorm.DB }

func NewCompanyService(db *gorm.DB) *CompanyService { return &CompanyService{DB: db} }

func (s *CompanyService) GetByID(id uint) (*CompanyView, error) {
	var c models.Company
	err := s.DB.First(&c, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	v := companyView(c)
	return &v, nil
}

// Create registers a new company and attaches the creating user to it.
func (s *CompanyService) Create(in CompanyInput, ownerUserID uint) (*CompanyView, error) {
	c := models.Company{
		Name:      in.Name,
		Address:   in.Address,
		Phone:     in.Phone,
		Email:     in.Email,
		TaxNumber: in.TaxNumber,
		IBAN:      in.IBAN,
		Website:   in.Website,
		Logo:      in.Logo,
	}
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&c).Error; err != nil {
			return err
		}
		return tx.Model(&models.User{}).Where("id = ?", ownerUserID).
			Update("company_id", c.ID).Error
	})
	if err != nil {
		return nil, err
	}
	v := companyView(c)
	return &v, nil
}

func (s *CompanyService) Update(id uint, in CompanyInput) (*CompanyView, error) {
	var c models.Company
	err := s.DB.First(&c, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	c.Name = in.Name
	c.Address = in.Address
	c.Phone = in.Phone
	c.Email = in.Email
	c.TaxNumber = in.TaxNumber
	c.IBAN = in.IBAN
	c.Website = in.Website
	c.Logo = in.Logo
	if err := s.DB.Save(&c).Error; err != nil {
		return nil, err
	}
	v := companyView(c)
	return &v, nil
}

// Delete removes the company and everything scoped to it. Order matters:
// users are detached first (SET NULL edge), then offer items of the
// company's offers, then offers, products, customers, payments, and finally
// the company row itself.
func (s *CompanyService) Delete(id uint) (bool, error) {
	var c models.Company
	err := s.DB.First(&c, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	err = s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.User{}).Where("company_id = ?", id).
			Update("company_id", nil).Error; err != nil {
			return err
		}
		offerIDs := tx.Model(&models.Offer{}).Select("id").Where("company_id = ?", id)
		if err := tx.Where("offer_id IN (?)", offerIDs).Delete(&models.OfferItem{}).Error; err != nil {
			return err
		}
		if err := tx.Where("company_id = ?", id).Delete(&models.Offer{}).Error; err != nil {
			return err
		}
		if err := tx.Where("company_id = ?", id).Delete(&models.Product{}).Error; err != nil {
			return err
		}
		if err := tx.Where("company_id = ?", id).Delete(&models.Customer{}).Error; err != nil {
			return err
		}
		if err := tx.Where("company_id = ?", id).Delete(&models.Payment{}).Error; err != nil {
			return err
		}
		return tx.Delete(&c).Error
	})
	if err != nil {
		return false, err
	}
	return true, nil
}

func companyView(c models.Company) CompanyView {
	return CompanyView{
		ID:         c.ID,
		Name:       c.Name,
		Address:    c.Address,
		Phone:      c.Phone,
		Email:      c.Email,
		TaxNumber:  c.TaxNumber,
		IBAN:       c.IBAN,
		Website:    c.Website,
		Logo:       c.Logo,
		OffersUsed: c.OffersUsed,
	}
}
