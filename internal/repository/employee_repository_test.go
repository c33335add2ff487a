package repository

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/syedsmuzakkir/Gym-Portal/internal/domain"
)

func TestEmployeeCreate_AllocatesNextCode(t *testing.T) {
	repo := EmployeeRepository{DB: newTestStore(t)}

	created, err := repo.Create(context.Background(), CreateEmployeeParams{
		Name:       "New Hire",
		Email:      "new.hire@gov.portal",
		Department: "IT",
		Position:   "Developer",
		JoinDate:   "2024-12-20",
		Salary:     decimal.NewFromInt(60000),
	})
	if err != nil {
		t.Fatalf("Create() error: %v", err)
	}
	// Seed holds EMP001-EMP004.
	if created.EmployeeID != "EMP005" {
		t.Fatalf("expected EMP005, got %s", created.EmployeeID)
	}
	if created.Status != domain.StatusActive {
		t.Fatalf("expected default active status, got %s", created.Status)
	}
}

func TestEmployeeUpdate_ReplacesEmergencyContactWholesale(t *testing.T) {
	repo := EmployeeRepository{DB: newTestStore(t)}
	ctx := context.Background()

	before, err := repo.Get(ctx, 1)
	if err != nil {
		t.Fatalf("Get() error: %v", err)
	}

	contact := domain.EmergencyContact{Name: "New Contact", Phone: "+1-555-1111"}
	updated, err := repo.Update(ctx, 1, UpdateEmployeeParams{EmergencyContact: &contact})
	if err != nil {
		t.Fatalf("Update() error: %v", err)
	}
	if updated.EmergencyContact.Name != "New Contact" {
		t.Fatalf("contact not replaced: %+v", updated.EmergencyContact)
	}
	// The omitted Relationship field is gone: the object is replaced, not
	// merged field by field.
	if updated.EmergencyContact.Relationship != "" {
		t.Fatalf("expected wholesale replacement, got %+v", updated.EmergencyContact)
	}
	if updated.Name != before.Name || updated.Department != before.Department {
		t.Fatalf("unrelated fields changed: %+v", updated)
	}
}
