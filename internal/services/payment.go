package services

import (
	"github.com/teklifhq/offerd/internal/models"
	"errors"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type PaymentInput struct {
	Amount decimal.Decimal `json:"amount"`
}

type PaymentView struct {
	ID     uint            `json:"id"`
	Amount decimal.Decimal `json:"amount"`
}

// PaymentService provides tenant-scoped payment CRUD.
type PaymentService struct{ DB *gorm.DB }

func NewPaymentService(db *gorm.DB) *PaymentService { return &PaymentService{DB: db} }

func (s *PaymentService) List(companyID uint) ([]PaymentView, error) {
	var payments []models.Payment
	if err := s.DB.Where("company_id = ?", companyID).Find(&payments).Error; err != nil {
		return nil, err
	}
	views := make([]PaymentView, 0, len(payments))
	for _, p := range payments {
		views = append(views, PaymentView{ID: p.ID, Amount: p.Amount})
	}
	return views, nil
}

func (s *PaymentService) GetByID(id, companyID uint) (*PaymentView, error) {
	var p models.Payment
	err := s.DB.Where("id = ? AND company_id = ?", id, companyID).First(&p).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &PaymentView{ID: p.ID, Amount: p.Amount}, nil
}

func (s *PaymentService) Create(in PaymentInput, companyID uint) (*PaymentView, error) {
	p := models.Payment{Amount: in.Amount.Round(2), CompanyID: companyID}
	if err := s.DB.Create(&p).Error; err != nil {
		return nil, err
	}
	return &PaymentView{ID: p.ID, Amount: p.Amount}, nil
}

func (s *PaymentService) Update(id uint, in PaymentInput, companyID uint) (*PaymentView, error) {
	var p models.Payment
	err := s.DB.Where("id = ? AND company_id = ?", id, companyID).First(&p).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	p.Amount = in.Amount.Round(2)
	if err := s.DB.Save(&p).Error; err != nil {
		return nil, err
	}
	return &PaymentView{ID: p.ID, Amount: p.Amount}, nil
}

func (s *PaymentService) Delete(id, companyID uint) (bool, error) {
	var p models.Payment
	err := s.DB.Where("id = ? AND company_id = ?", id, companyID).First(&p).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if err := s.DB.Delete(&p).Error; err != nil {
		return false, err
	}
	return true, nil
}
