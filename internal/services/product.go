package services

import (
	"github.com/teklifhq/offerd/internal/models"
	"errors"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ProductInput carries the mutable product fields. Updates are full replace,
// never a partial patch.
type ProductInput struct {
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Category    string          `json:"category"`
	Price       decimal.Decimal `json:"price"`
}

type ProductView struct {
	ID          uint            `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Category    string          `json:"category"`
	Price       decimal.Decimal `json:"price"`
}

// ProductService provides product CRUD scoped to a single company. Every
// lookup filters by company id so one tenant can never see another's rows.
type ProductService struct{ DB *gorm.DB }

func NewProductService(db *gorm.DB) *ProductService { return &ProductService{DB: db} }

func (s *ProductService) List(companyID uint) ([]ProductView, error) {
	var products []models.Product
	if err := s.DB.Where("company_id = ?", companyID).Find(&products).Error; err != nil {
		return nil, err
	}
	views := make([]ProductView, 0, len(products))
	for _, p := range products {
		views = append(views, productView(p))
	}
	return views, nil
}

// GetByID returns (nil, nil) when the row does not exist or belongs to
// another company.
func (s *ProductService) GetByID(id, companyID uint) (*ProductView, error) {
	var p models.Product
	err := s.DB.Where("id = ? AND company_id = ?", id, companyID).First(&p).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	v := productView(p)
	return &v, nil
}

func (s *ProductService) Create(in ProductInput, companyID uint) (*ProductView, error) {
	p := models.Product{
		Name:        in.Name,
		Description: in.Description,
		Category:    in.Category,
		Price:       in.Price.Round(2),
		CompanyID:   companyID,
	}
	if err := s.DB.Create(&p).Error; err != nil {
		return nil, err
	}
	v := productView(p)
	return &v, nil
}

func (s *ProductService) Update(id uint, in ProductInput, companyID uint) (*ProductView, error) {
	var p models.Product
	err := s.DB.Where("id = ? AND company_id = ?", id, companyID).First(&p).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	p.Name = in.Name
	p.Description = in.Description
	p.Category = in.Category
	p.Price = in.Price.Round(2)
	if err := s.DB.Save(&p).Error; err != nil {
		return nil, err
	}
	v := productView(p)
	return &v, nil
}

func (s *ProductService) Delete(id, companyID uint) (bool, error) {
	var p models.Product
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

func productView(p models.Product) ProductView {
	return ProductView{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Category:    p.Category,
		Price:       p.Price,
	}
}
