package services

import (
	"github.com/teklifhq/offerd/internal/models"
	"testing"

	"github.com/shopspring/decimal"
)

func TestCompanyCreateAttachesOwner(t *testing.T) {
	db := setupTestDB(t)
	u := models.User{Email: "owner@test.local", PasswordHash: "x"}
	if err := db.Create(&u).Error; err != nil {
		t.Fatalf("seed user: %v", err)
	}
	svc := NewCompanyService(db)

	view, err := svc.Create(CompanyInput{Name: "acme", Address: "Adres 1", Phone: "0555", Email: "acme@test.local"}, u.ID)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	var reloaded models.User
	if err := db.First(&reloaded, u.ID).Error; err != nil {
		t.Fatalf("reload user: %v", err)
	}
	if reloaded.CompanyID == nil || *reloaded.CompanyID != view.ID {
		t.Fatalf("expected user attached to company %d, got %v", view.ID, reloaded.CompanyID)
	}
}

func TestCompanyDeleteCascades(t *testing.T) {
	db := setupTestDB(t)
	c := seedCompany(t, db, "acme")
	u := seedUser(t, db, c.ID)

	if err := db.Create(&models.Customer{Name: "Ali", Email: "ali@m.local", CompanyID: c.ID}).Error; err != nil {
		t.Fatalf("seed customer: %v", err)
	}
	if err := db.Create(&models.Product{Name: "Widget", Price: decimal.RequireFromString("9.99"), CompanyID: c.ID}).Error; err != nil {
		t.Fatalf("seed product: %v", err)
	}
	if err := db.Create(&models.Payment{Amount: decimal.RequireFromString("100.00"), CompanyID: c.ID}).Error; err != nil {
		t.Fatalf("seed payment: %v", err)
	}
	offers := NewOfferService(db, &fakeSender{})
	if _, err := offers.Create(offerInput(), c.ID, u.ID); err != nil {
		t.Fatalf("seed offer: %v", err)
	}

	svc := NewCompanyService(db)
	deleted, err := svc.Delete(c.ID)
	if err != nil || !deleted {
		t.Fatalf("delete: (%v, %v)", deleted, err)
	}

	for _, m := range []interface{}{&models.Customer{}, &models.Product{}, &models.Payment{}, &models.Offer{}, &models.OfferItem{}} {
		var count int64
		if err := db.Model(m).Count(&count).Error; err != nil {
			t.Fatalf("count %T: %v", m, err)
		}
		if count != 0 {
			t.Fatalf("expected %T rows gone, got %d", m, count)
		}
	}

	// The user survives, detached from the deleted tenant.
	var reloaded models.User
	if err := db.First(&reloaded, u.ID).Error; err != nil {
		t.Fatalf("reload user: %v", err)
	}
	if reloaded.CompanyID != nil {
		t.Fatalf("expected company_id cleared, got %v", *reloaded.CompanyID)
	}
}

func TestCompanyDeleteMissing(t *testing.T) {
	db := setupTestDB(t)
	svc := NewCompanyService(db)
	deleted, err := svc.Delete(42)
	if err != nil {
		t.Fatalf("delete: %v", err)
	}
	if deleted {
		t.Fatal("expected false for missing company")
	}
}
