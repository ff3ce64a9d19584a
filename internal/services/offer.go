package services

import (
	"github.com/teklifhq/offerd/internal/mail"
	"github.com/teklifhq/offerd/internal/models"
	"github.com/teklifhq/offerd/internal/pdf"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var ErrOfferNotFound = errors.New("offer_not_found")

type OfferItemInput struct {
	Description string          `json:"description"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
}

// OfferInput carries the full mutable state of an offer. Updates replace
// every field and the whole item list.
type OfferInput struct {
	OfferNumber     string           `json:"offer_number"`
	CustomerName    string           `json:"customer_name"`
	CustomerEmail   string           `json:"customer_email"`
	CustomerPhone   string           `json:"customer_phone"`
	CustomerAddress string           `json:"customer_address"`
	OfferDate       time.Time        `json:"offer_date"`
	DueDate         time.Time        `json:"due_date"`
	Notes           string           `json:"notes"`
	Items           []OfferItemInput `json:"items"`
}

type OfferItemView struct {
	ID          uint            `json:"id"`
	Description string          `json:"description"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	TotalPrice  decimal.Decimal `json:"total_price"`
}

type OfferView struct {
	ID              uint            `json:"id"`
	OfferNumber     string          `json:"offer_number"`
	CustomerName    string          `json:"customer_name"`
	CustomerEmail   string          `json:"customer_email"`
	CustomerPhone   string          `json:"customer_phone"`
	CustomerAddress string          `json:"customer_address"`
	OfferDate       time.Time       `json:"offer_date"`
	DueDate         time.Time       `json:"due_date"`
	TotalAmount     decimal.Decimal `json:"total_amount"`
	Notes           string          `json:"notes"`
	Items           []OfferItemView `json:"items"`
}

// OfferService handles the offer aggregate: tenant-scoped CRUD where item
// totals and the offer total are always recomputed together with the item
// writes, plus rendering and delivery of the offer document.
type OfferService struct {
	DB     *gorm.DB
	Mailer mail.Sender
}

func NewOfferService(db *gorm.DB, mailer mail.Sender) *OfferService {
	return &OfferService{DB: db, Mailer: mailer}
}

func (s *OfferService) List(companyID uint) ([]OfferView, error) {
	var offers []models.Offer
	if err := s.DB.Preload("Items").Where("company_id = ?", companyID).Find(&offers).Error; err != nil {
		return nil, err
	}
	views := make([]OfferView, 0, len(offers))
	for i := range offers {
		views = append(views, offerView(&offers[i]))
	}
	return views, nil
}

func (s *OfferService) GetByID(id, companyID uint) (*OfferView, error) {
	o, err := s.load(id, companyID)
	if err != nil || o == nil {
		return nil, err
	}
	v := offerView(o)
	return &v, nil
}

// Create persists the offer, its recomputed items, and the company usage
// counter bump in a single transaction.
func (s *OfferService) Create(in OfferInput, companyID, userID uint) (*OfferView, error) {
	items, total := buildItems(in.Items)
	o := models.Offer{
		OfferNumber:     in.OfferNumber,
		CustomerName:    in.CustomerName,
		CustomerEmail:   in.CustomerEmail,
		CustomerPhone:   in.CustomerPhone,
		CustomerAddress: in.CustomerAddress,
		OfferDate:       in.OfferDate,
		DueDate:         in.DueDate,
		TotalAmount:     total,
		Notes:           in.Notes,
		CompanyID:       companyID,
		UserID:          userID,
	}
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&o).Error; err != nil {
			return err
		}
		for i := range items {
			items[i].OfferID = o.ID
		}
		if len(items) > 0 {
			if err := tx.Create(&items).Error; err != nil {
				return err
			}
		}
		return tx.Model(&models.Company{}).Where("id = ?", companyID).
			UpdateColumn("offers_used", gorm.Expr("offers_used + 1")).Error
	})
	if err != nil {
		return nil, err
	}
	o.Items = items
	v := offerView(&o)
	return &v, nil
}

// Update is a full replace: all offer fields are overwritten and the item
// list is deleted and recreated from the input, totals recomputed, in one
// transaction.
func (s *OfferService) Update(id uint, in OfferInput, companyID uint) (*OfferView, error) {
	var o models.Offer
	err := s.DB.Where("id = ? AND company_id = ?", id, companyID).First(&o).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	items, total := buildItems(in.Items)
	o.OfferNumber = in.OfferNumber
	o.CustomerName = in.CustomerName
	o.CustomerEmail = in.CustomerEmail
	o.CustomerPhone = in.CustomerPhone
	o.CustomerAddress = in.CustomerAddress
	o.OfferDate = in.OfferDate
	o.DueDate = in.DueDate
	o.Notes = in.Notes
	o.TotalAmount = total
	err = s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("offer_id = ?", o.ID).Delete(&models.OfferItem{}).Error; err != nil {
			return err
		}
		for i := range items {
			items[i].OfferID = o.ID
		}
		if len(items) > 0 {
			if err := tx.Create(&items).Error; err != nil {
				return err
			}
		}
		return tx.Save(&o).Error
	})
	if err != nil {
		return nil, err
	}
	o.Items = items
	v := offerView(&o)
	return &v, nil
}

func (s *OfferService) Delete(id, companyID uint) (bool, error) {
	var o models.Offer
	err := s.DB.Where("id = ? AND company_id = ?", id, companyID).First(&o).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	err = s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("offer_id = ?", o.ID).Delete(&models.OfferItem{}).Error; err != nil {
			return err
		}
		return tx.Delete(&o).Error
	})
	if err != nil {
		return false, err
	}
	return true, nil
}

// Send renders the email body and the PDF before any SMTP dial, then hands
// both to the mailer. A delivery failure surfaces as the mailer's typed
// error and never mutates the offer.
func (s *OfferService) Send(id, companyID uint) error {
	o, err := s.load(id, companyID)
	if err != nil {
		return err
	}
	if o == nil {
		return ErrOfferNotFound
	}
	body, err := mail.OfferBody(o)
	if err != nil {
		return fmt.Errorf("render email body: %w", err)
	}
	doc, err := pdf.Offer(o)
	if err != nil {
		return fmt.Errorf("render pdf: %w", err)
	}
	return s.Mailer.Send(mail.Message{
		To:             o.CustomerEmail,
		Subject:        "Teklif - " + o.OfferNumber,
		HTMLBody:       body,
		Attachment:     doc,
		AttachmentName: o.OfferNumber + ".pdf",
	})
}

// load fetches the full aggregate (company + ordered items) tenant-scoped,
// returning (nil, nil) when absent.
func (s *OfferService) load(id, companyID uint) (*models.Offer, error) {
	var o models.Offer
	err := s.DB.
		Preload("Company").
		Preload("Items", func(db *gorm.DB) *gorm.DB { return db.Order("offer_items.id") }).
		Where("id = ? AND company_id = ?", id, companyID).
		First(&o).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &o, nil
}

// buildItems recomputes each line's TotalPrice as quantity × unit price and
// returns the items together with the offer grand total.
func buildItems(inputs []OfferItemInput) ([]models.OfferItem, decimal.Decimal) {
	items := make([]models.OfferItem, 0, len(inputs))
	total := decimal.Zero
	for _, in := range inputs {
		unit := in.UnitPrice.Round(2)
		line := unit.Mul(decimal.NewFromInt(int64(in.Quantity))).Round(2)
		items = append(items, models.OfferItem{
			Description: in.Description,
			Quantity:    in.Quantity,
			UnitPrice:   unit,
			TotalPrice:  line,
		})
		total = total.Add(line)
	}
	return items, total.Round(2)
}

func offerView(o *models.Offer) OfferView {
	items := make([]OfferItemView, 0, len(o.Items))
	for _, it := range o.Items {
		items = append(items, OfferItemView{
			ID:          it.ID,
			Description: it.Description,
			Quantity:    it.Quantity,
			UnitPrice:   it.UnitPrice,
			TotalPrice:  it.TotalPrice,
		})
	}
	return OfferView{
		ID:              o.ID,
		OfferNumber:     o.OfferNumber,
		CustomerName:    o.CustomerName,
		CustomerEmail:   o.CustomerEmail,
		CustomerPhone:   o.CustomerPhone,
		CustomerAddress: o.CustomerAddress,
		OfferDate:       o.OfferDate,
		DueDate:         o.DueDate,
		TotalAmount:     o.TotalAmount,
		Notes:           o.Notes,
		Items:           items,
	}
}
