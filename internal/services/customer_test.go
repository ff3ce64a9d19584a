package services

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestCustomerCRUDScopedToCompany(t *testing.T) {
	db := setupTestDB(t)
	svc := NewCustomerService(db)
	c1 := seedCompany(t, db, "one")
	c2 := seedCompany(t, db, "two")

	created, err := svc.Create(CustomerInput{Name: "Ali Veli", Email: "ali@m.local", Phone: "0555", Address: "Istanbul"}, c1.ID)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if got, err := svc.GetByID(created.ID, c2.ID); err != nil || got != nil {
		t.Fatalf("expected cross-tenant get to be (nil, nil), got (%v, %v)", got, err)
	}

	updated, err := svc.Update(created.ID, CustomerInput{Name: "Ali V.", Email: "ali@m.local"}, c1.ID)
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Name != "Ali V." || updated.Phone != "" {
		t.Fatalf("expected full replace, got %+v", updated)
	}

	deleted, err := svc.Delete(created.ID, c1.ID)
	if err != nil || !deleted {
		t.Fatalf("delete: (%v, %v)", deleted, err)
	}
	rows, err := svc.List(c1.ID)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(rows) != 0 {
		t.Fatalf("expected empty list after delete, got %d", len(rows))
	}
}

func TestPaymentAmountRounded(t *testing.T) {
	db := setupTestDB(t)
	svc := NewPaymentService(db)
	c := seedCompany(t, db, "acme")

	created, err := svc.Create(PaymentInput{Amount: decimal.RequireFromString("10.005")}, c.ID)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.Amount.StringFixed(2) != "10.01" {
		t.Fatalf("expected rounded amount 10.01, got %s", created.Amount)
	}
	if got, err := svc.GetByID(created.ID, c.ID+1); err != nil || got != nil {
		t.Fatalf("expected cross-tenant get to be (nil, nil), got (%v, %v)", got, err)
	}
}
