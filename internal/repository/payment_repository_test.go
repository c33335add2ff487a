package repository

import (
	"context"
	"testing"
	"time"
)

func TestPaymentStats_CompletedOnlySums(t *testing.T) {
	repo := PaymentRepository{DB: newTestStore(t)}

	// 2024-01-15 holds the three completed seed payments; the pending one
	// lands on the 16th.
	now := time.Date(2024, 1, 15, 18, 0, 0, 0, time.UTC)
	s, err := repo.Stats(context.Background(), now)
	if err != nil {
		t.Fatalf("Stats() error: %v", err)
	}
	if s.Total != 4 || s.Completed != 3 || s.Pending != 1 || s.Failed != 0 {
		t.Fatalf("status counts mismatch: %+v", s)
	}
	if s.TodayCount != 3 || s.TodayAmount != "298" {
		t.Fatalf("today aggregates mismatch: count=%d amount=%s", s.TodayCount, s.TodayAmount)
	}
	if s.MonthAmount != "298" || s.TotalAmount != "298" {
		t.Fatalf("month/total mismatch: %s / %s", s.MonthAmount, s.TotalAmount)
	}
	if s.TotalFees != "4.69" {
		t.Fatalf("fees = %s, want 4.69", s.TotalFees)
	}
	if s.NetAmount != "293.31" {
		t.Fatalf("net = %s, want 293.31", s.NetAmount)
	}
}

func TestPaymentStats_OutsideWindow(t *testing.T) {
	repo := PaymentRepository{DB: newTestStore(t)}

	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	s, err := repo.Stats(context.Background(), now)
	if err != nil {
		t.Fatalf("Stats() error: %v", err)
	}
	if s.TodayCount != 0 || s.TodayAmount != "0" || s.MonthAmount != "0" {
		t.Fatalf("windowed aggregates should be zero: %+v", s)
	}
	// Lifetime sums are unaffected by the window.
	if s.TotalAmount != "298" {
		t.Fatalf("total = %s, want 298", s.TotalAmount)
	}
}

func TestPaymentUpdateStatus_KeepsGatewayIDWhenNil(t *testing.T) {
	repo := PaymentRepository{DB: newTestStore(t)}
	ctx := context.Background()

	updated, err := repo.UpdateStatus(ctx, 4, "completed", nil)
	if err != nil {
		t.Fatalf("UpdateStatus() error: %v", err)
	}
	if updated.GatewayTransactionID == nil || *updated.GatewayTransactionID != "rzp_2024_004" {
		t.Fatalf("nil id must keep the recorded one: %v", updated.GatewayTransactionID)
	}

	newID := "rzp_2024_004_retry"
	updated, err = repo.UpdateStatus(ctx, 4, "completed", &newID)
	if err != nil {
		t.Fatalf("UpdateStatus() error: %v", err)
	}
	if *updated.GatewayTransactionID != newID {
		t.Fatalf("id not replaced: %v", *updated.GatewayTransactionID)
	}
}
