package services

import (
	"github.com/teklifhq/offerd/internal/mail"
	"github.com/teklifhq/offerd/internal/models"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type fakeSender struct {
	msgs []mail.Message
	err  error
}

func (f *fakeSender) Send(msg mail.Message) error {
	if f.err != nil {
		return f.err
	}
	f.msgs = append(f.msgs, msg)
	return nil
}

func seedUser(t *testing.T, db *gorm.DB, companyID uint) models.User {
	t.Helper()
	u := models.User{Email: "sales@test.local", PasswordHash: "x", Name: "Satis", CompanyID: &companyID}
	if err := db.Create(&u).Error; err != nil {
		t.Fatalf("seed user: %v", err)
	}
	return u
}

func offerInput() OfferInput {
	return OfferInput{
		OfferNumber:     "TKF-2026-001",
		CustomerName:    "Ali Veli",
		CustomerEmail:   "ali@musteri.local",
		CustomerPhone:   "05550001122",
		CustomerAddress: "Istanbul",
		OfferDate:       time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC),
		DueDate:         time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC),
		Notes:           "30 gun gecerlidir",
		Items: []OfferItemInput{
			{Description: "Kurulum", Quantity: 2, UnitPrice: decimal.RequireFromString("10.00")},
			{Description: "Destek", Quantity: 1, UnitPrice: decimal.RequireFromString("5.00")},
		},
	}
}

func TestOfferCreateComputesTotals(t *testing.T) {
	db := setupTestDB(t)
	c := seedCompany(t, db, "acme")
	u := seedUser(t, db, c.ID)
	svc := NewOfferService(db, &fakeSender{})

	view, err := svc.Create(offerInput(), c.ID, u.ID)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if len(view.Items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(view.Items))
	}
	if view.Items[0].TotalPrice.StringFixed(2) != "20.00" {
		t.Fatalf("unexpected first line total: %s", view.Items[0].TotalPrice)
	}
	if view.Items[1].TotalPrice.StringFixed(2) != "5.00" {
		t.Fatalf("unexpected second line total: %s", view.Items[1].TotalPrice)
	}
	if view.TotalAmount.StringFixed(2) != "25.00" {
		t.Fatalf("unexpected grand total: %s", view.TotalAmount)
	}
}

func TestOfferCreateIncrementsUsage(t *testing.T) {
	db := setupTestDB(t)
	c := seedCompany(t, db, "acme")
	u := seedUser(t, db, c.ID)
	svc := NewOfferService(db, &fakeSender{})

	if _, err := svc.Create(offerInput(), c.ID, u.ID); err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := svc.Create(offerInput(), c.ID, u.ID); err != nil {
		t.Fatalf("create: %v", err)
	}
	var reloaded models.Company
	if err := db.First(&reloaded, c.ID).Error; err != nil {
		t.Fatalf("reload company: %v", err)
	}
	if reloaded.OffersUsed != 2 {
		t.Fatalf("expected offers_used=2, got %d", reloaded.OffersUsed)
	}
}

func TestOfferUpdateReplacesItems(t *testing.T) {
	db := setupTestDB(t)
	c := seedCompany(t, db, "acme")
	u := seedUser(t, db, c.ID)
	svc := NewOfferService(db, &fakeSender{})

	created, err := svc.Create(offerInput(), c.ID, u.ID)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	in := offerInput()
	in.Items = []OfferItemInput{{Description: "Bakim", Quantity: 3, UnitPrice: decimal.RequireFromString("7.25")}}
	updated, err := svc.Update(created.ID, in, c.ID)
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if len(updated.Items) != 1 || updated.Items[0].Description != "Bakim" {
		t.Fatalf("expected replaced item list, got %+v", updated.Items)
	}
	if updated.TotalAmount.StringFixed(2) != "21.75" {
		t.Fatalf("unexpected total after update: %s", updated.TotalAmount)
	}
	// The old rows must be gone, not orphaned.
	var count int64
	if err := db.Model(&models.OfferItem{}).Where("offer_id = ?", created.ID).Count(&count).Error; err != nil {
		t.Fatalf("count items: %v", err)
	}
	if count != 1 {
		t.Fatalf("expected 1 item row, got %d", count)
	}
}

func TestOfferDeleteRemovesItems(t *testing.T) {
	db := setupTestDB(t)
	c := seedCompany(t, db, "acme")
	u := seedUser(t, db, c.ID)
	svc := NewOfferService(db, &fakeSender{})

	created, err := svc.Create(offerInput(), c.ID, u.ID)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	deleted, err := svc.Delete(created.ID, c.ID)
	if err != nil || !deleted {
		t.Fatalf("delete: (%v, %v)", deleted, err)
	}
	var count int64
	if err := db.Model(&models.OfferItem{}).Where("offer_id = ?", created.ID).Count(&count).Error; err != nil {
		t.Fatalf("count items: %v", err)
	}
	if count != 0 {
		t.Fatalf("expected 0 item rows after delete, got %d", count)
	}
}

func TestOfferSend(t *testing.T) {
	db := setupTestDB(t)
	c := seedCompany(t, db, "acme")
	u := seedUser(t, db, c.ID)
	sender := &fakeSender{}
	svc := NewOfferService(db, sender)

	created, err := svc.Create(offerInput(), c.ID, u.ID)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := svc.Send(created.ID, c.ID); err != nil {
		t.Fatalf("send: %v", err)
	}
	if len(sender.msgs) != 1 {
		t.Fatalf("expected 1 message, got %d", len(sender.msgs))
	}
	msg := sender.msgs[0]
	if msg.To != "ali@musteri.local" {
		t.Fatalf("unexpected recipient: %s", msg.To)
	}
	if msg.Subject != "Teklif - TKF-2026-001" {
		t.Fatalf("unexpected subject: %s", msg.Subject)
	}
	if msg.AttachmentName != "TKF-2026-001.pdf" {
		t.Fatalf("unexpected attachment name: %s", msg.AttachmentName)
	}
	if len(msg.Attachment) == 0 {
		t.Fatal("expected a PDF attachment")
	}
	if !strings.Contains(msg.HTMLBody, "Sayın Ali Veli") {
		t.Fatalf("expected greeting in body, got: %s", msg.HTMLBody)
	}
	if !strings.Contains(msg.HTMLBody, "₺25.00") {
		t.Fatalf("expected grand total in body, got: %s", msg.HTMLBody)
	}
}

func TestOfferSendNotFound(t *testing.T) {
	db := setupTestDB(t)
	c := seedCompany(t, db, "acme")
	svc := NewOfferService(db, &fakeSender{})

	if err := svc.Send(999, c.ID); !errors.Is(err, ErrOfferNotFound) {
		t.Fatalf("expected ErrOfferNotFound, got %v", err)
	}
}

func TestOfferSendFailureLeavesOfferIntact(t *testing.T) {
	db := setupTestDB(t)
	c := seedCompany(t, db, "acme")
	u := seedUser(t, db, c.ID)
	sender := &fakeSender{err: &mail.SendError{Reason: mail.ReasonInvalidRecipient, Err: errors.New("550 no such user")}}
	svc := NewOfferService(db, sender)

	created, err := svc.Create(offerInput(), c.ID, u.ID)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	err = svc.Send(created.ID, c.ID)
	var sendErr *mail.SendError
	if !errors.As(err, &sendErr) {
		t.Fatalf("expected *mail.SendError, got %v", err)
	}
	if sendErr.Reason != mail.ReasonInvalidRecipient {
		t.Fatalf("unexpected reason: %s", sendErr.Reason)
	}
	reloaded, err := svc.GetByID(created.ID, c.ID)
	if err != nil || reloaded == nil {
		t.Fatalf("reload: (%v, %v)", reloaded, err)
	}
	if reloaded.TotalAmount.StringFixed(2) != "25.00" {
		t.Fatalf("offer mutated by failed send: %s", reloaded.TotalAmount)
	}
}
