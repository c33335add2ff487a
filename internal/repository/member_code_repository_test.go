package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/syedsmuzakkir/Gym-Portal/internal/domain"
)

func TestFindByCode_MatchesQRAndBarcode(t *testing.T) {
	repo := MemberCodeRepository{DB: newTestStore(t)}
	ctx := context.Background()

	byQR, err := repo.FindByCode(ctx, "QR-EMP001-2024")
	if err != nil {
		t.Fatalf("FindByCode(qr) error: %v", err)
	}
	byBarcode, err := repo.FindByCode(ctx, "123456789012")
	if err != nil {
		t.Fatalf("FindByCode(barcode) error: %v", err)
	}
	if byQR.MemberID != "EMP001" || byBarcode.MemberID != "EMP001" {
		t.Fatalf("both code forms must resolve EMP001: %s, %s", byQR.MemberID, byBarcode.MemberID)
	}

	if _, err := repo.FindByCode(ctx, "QR-NOBODY-2024"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for unknown code, got %v", err)
	}
}

func TestFindByCode_InactiveStillResolves(t *testing.T) {
	repo := MemberCodeRepository{DB: newTestStore(t)}
	ctx := context.Background()

	if _, err := repo.Toggle(ctx, 1); err != nil {
		t.Fatalf("Toggle() error: %v", err)
	}
	code, err := repo.FindByCode(ctx, "QR-EMP001-2024")
	if err != nil {
		t.Fatalf("FindByCode() error: %v", err)
	}
	if code.IsActive {
		t.Fatal("code should be inactive after toggle")
	}
}

func TestFindByCode_PrefersActiveOnDuplicateQR(t *testing.T) {
	repo := MemberCodeRepository{DB: newTestStore(t)}
	ctx := context.Background()

	// Two regenerations in the same year produce identical QR strings; only
	// the newest row stays active.
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	if _, err := repo.Generate(ctx, "EMP001", "John Smith", domain.MemberEmployee, now); err != nil {
		t.Fatalf("Generate() error: %v", err)
	}
	second, err := repo.Generate(ctx, "EMP001", "John Smith", domain.MemberEmployee, now.Add(time.Hour))
	if err != nil {
		t.Fatalf("Generate() error: %v", err)
	}

	found, err := repo.FindByCode(ctx, "QR-EMP001-2025")
	if err != nil {
		t.Fatalf("FindByCode() error: %v", err)
	}
	if !found.IsActive {
		t.Fatal("lookup must resolve the active row, not the retired duplicate")
	}
	if found.ID != second.ID {
		t.Fatalf("expected newest code %d, got %d", second.ID, found.ID)
	}
}

func TestGenerate_DeactivatesPriorCode(t *testing.T) {
	repo := MemberCodeRepository{DB: newTestStore(t)}
	ctx := context.Background()

	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	created, err := repo.Generate(ctx, "EMP001", "John Smith", domain.MemberEmployee, now)
	if err != nil {
		t.Fatalf("Generate() error: %v", err)
	}
	if created.QRCode != "QR-EMP001-2025" {
		t.Fatalf("unexpected QR code %s", created.QRCode)
	}
	if len(created.Barcode) != 12 {
		t.Fatalf("barcode must be 12 digits, got %q", created.Barcode)
	}
	if !created.IsActive {
		t.Fatal("new code must be active")
	}

	items, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("List() error: %v", err)
	}
	active := 0
	for _, c := range items {
		if c.MemberID == "EMP001" && c.IsActive {
			active++
		}
	}
	if active != 1 {
		t.Fatalf("expected exactly one active code for EMP001, got %d", active)
	}
}
