package services

import (
	"github.com/teklifhq/offerd/internal/models"
	"errors"

	"gorm.io/gorm"
)

type CustomerInput struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

type CustomerView struct {
	ID      uint   `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

// CustomerService provides tenant-scoped customer CRUD.
type CustomerService struct{ DB *gorm.DB }

func NewCustomerService(db *gorm.DB) *CustomerService { return &CustomerService{DB: db} }

func (s *CustomerService) List(companyID uint) ([]CustomerView, error) {
	var customers []models.Customer
	if err := s.DB.Where("company_id = ?", companyID).Find(&customers).Error; err != nil {
		return nil, err
	}
	views := make([]CustomerView, 0, len(customers))
	for _, c := range customers {
		views = append(views, customerView(c))
	}
	return views, nil
}

func (s *CustomerService) GetByID(id, companyID uint) (*CustomerView, error) {
	var c models.Customer
	err := s.DB.Where("id = ? AND company_id = ?", id, companyID).First(&c).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	v := customerView(c)
	return &v, nil
}

func (s *CustomerService) Create(in CustomerInput, companyID uint) (*CustomerView, error) {
	c := models.Customer{
		Name:      in.Name,
		Email:     in.Email,
		Phone:     in.Phone,
		Address:   in.Address,
		CompanyID: companyID,
	}
	if err := s.DB.Create(&c).Error; err != nil {
		return nil, err
	}
	v := customerView(c)
	return &v, nil
}

func (s *CustomerService) Update(id uint, in CustomerInput, companyID uint) (*CustomerView, error) {
	var c models.Customer
	err := s.DB.Where("id = ? AND company_id = ?", id, companyID).First(&c).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	c.Name = in.Name
	c.Email = in.Email
	c.Phone = in.Phone
	c.Address = in.Address
	if err := s.DB.Save(&c).Error; err != nil {
		return nil, err
	}
	v := customerView(c)
	return &v, nil
}

func (s *CustomerService) Delete(id, companyID uint) (bool, error) {
	var c models.Customer
	err := s.DB.Where("id = ? AND company_id = ?", id, companyID).First(&c).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if err := s.DB.Delete(&c).Error; err != nil {
		return false, err
	}
	return true, nil
}

func customerView(c models.Customer) CustomerView {
	return CustomerView{ID: c.ID, Name: c.Name, Email: c.Email, Phone: c.Phone, Address: c.Address}
}
