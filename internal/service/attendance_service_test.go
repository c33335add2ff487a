package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/syedsmuzakkir/Gym-Portal/internal/domain"
	"github.com/syedsmuzakkir/Gym-Portal/internal/repository"
)

func newAttendanceService(t *testing.T, now time.Time) AttendanceService {
	t.Helper()
	store := newTestStore(t)
	return AttendanceService{
		Attendance: repository.AttendanceRepository{DB: store},
		Codes:      repository.MemberCodeRepository{DB: store},
		Employees:  repository.EmployeeRepository{DB: store},
		Location:   time.UTC,
		Logger:     testLogger(),
		Now:        func() time.Time { return now },
	}
}

func TestScan_CheckInThenOutThenRejected(t *testing.T) {
	now := time.Date(2024, 12, 20, 9, 0, 0, 0, time.UTC)
	svc := newAttendanceService(t, now)
	ctx := context.Background()

	rec, event, err := svc.Scan(ctx, "QR-EMP001-2024", "Reception", "")
	if err != nil {
		t.Fatalf("first scan error: %v", err)
	}
	if event != domain.ScanCheckIn {
		t.Fatalf("first scan must check in, got %s", event)
	}
	if rec.CheckIn == nil || !rec.CheckIn.Equal(now) {
		t.Fatalf("check-in time not recorded: %v", rec.CheckIn)
	}
	if rec.Location != "Main Office" {
		t.Fatalf("empty location must fall back to default, got %q", rec.Location)
	}
	if rec.Status != domain.AttendancePresent {
		t.Fatalf("checked-in member must be present, got %s", rec.Status)
	}

	later := now.Add(8 * time.Hour)
	svc.Now = func() time.Time { return later }
	rec, event, err = svc.Scan(ctx, "QR-EMP001-2024", "Reception", "")
	if err != nil {
		t.Fatalf("second scan error: %v", err)
	}
	if event != domain.ScanCheckOut {
		t.Fatalf("second scan must check out, got %s", event)
	}
	if rec.CheckOut == nil || !rec.CheckOut.Equal(later) {
		t.Fatalf("check-out time not recorded: %v", rec.CheckOut)
	}

	if _, _, err := svc.Scan(ctx, "QR-EMP001-2024", "Reception", ""); !errors.Is(err, ErrAlreadyCompleted) {
		t.Fatalf("third scan must be rejected, got %v", err)
	}
}

func TestScan_BarcodeResolvesSameMember(t *testing.T) {
	svc := newAttendanceService(t, time.Date(2024, 12, 20, 9, 0, 0, 0, time.UTC))

	rec, event, err := svc.Scan(context.Background(), "123456789014", "Reception", "Front Desk")
	if err != nil {
		t.Fatalf("Scan() error: %v", err)
	}
	if event != domain.ScanCheckIn || rec.MemberID != "CUST001" {
		t.Fatalf("barcode scan mismatch: %s %s", event, rec.MemberID)
	}
	if rec.Location != "Front Desk" {
		t.Fatalf("location not recorded: %q", rec.Location)
	}
}

func TestScan_UnknownAndInactiveCodes(t *testing.T) {
	svc := newAttendanceService(t, time.Date(2024, 12, 20, 9, 0, 0, 0, time.UTC))
	ctx := context.Background()

	if _, _, err := svc.Scan(ctx, "QR-NOBODY-2024", "Reception", ""); !errors.Is(err, ErrInvalidCode) {
		t.Fatalf("unknown code: expected ErrInvalidCode, got %v", err)
	}

	if _, err := svc.Codes.Toggle(ctx, 1); err != nil {
		t.Fatalf("Toggle() error: %v", err)
	}
	if _, _, err := svc.Scan(ctx, "QR-EMP001-2024", "Reception", ""); !errors.Is(err, ErrInvalidCode) {
		t.Fatalf("inactive code: expected ErrInvalidCode, got %v", err)
	}
}

func TestScan_RegeneratedCodeStillChecksIn(t *testing.T) {
	now := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	svc := newAttendanceService(t, now)
	ctx := context.Background()

	// Regenerating twice in one year retires a row carrying the same QR
	// string as the active one; scanning must still check the member in.
	for i := 0; i < 2; i++ {
		if _, err := svc.Codes.Generate(ctx, "EMP001", "John Smith", domain.MemberEmployee, now); err != nil {
			t.Fatalf("Generate() error: %v", err)
		}
	}

	rec, event, err := svc.Scan(ctx, "QR-EMP001-2025", "Reception", "")
	if err != nil {
		t.Fatalf("Scan() error: %v", err)
	}
	if event != domain.ScanCheckIn || rec.MemberID != "EMP001" {
		t.Fatalf("regenerated code must check in EMP001: %s %s", event, rec.MemberID)
	}
}

func TestScan_NewDayReArmsTheMachine(t *testing.T) {
	day1 := time.Date(2024, 12, 20, 9, 0, 0, 0, time.UTC)
	svc := newAttendanceService(t, day1)
	ctx := context.Background()

	mustScan := func(want domain.ScanEvent) {
		t.Helper()
		_, event, err := svc.Scan(ctx, "QR-EMP002-2024", "Reception", "")
		if err != nil {
			t.Fatalf("Scan() error: %v", err)
		}
		if event != want {
			t.Fatalf("event = %s, want %s", event, want)
		}
	}

	mustScan(domain.ScanCheckIn)
	svc.Now = func() time.Time { return day1.Add(8 * time.Hour) }
	mustScan(domain.ScanCheckOut)

	// Next day, same code checks in again.
	svc.Now = func() time.Time { return day1.AddDate(0, 0, 1) }
	mustScan(domain.ScanCheckIn)
}

func TestStats_CountsByTypeAndStatus(t *testing.T) {
	svc := newAttendanceService(t, time.Date(2024, 1, 15, 12, 0, 0, 0, time.UTC))

	// Seed day: 3 employees (2 present, 1 absent) and 2 customers present.
	st, err := svc.Stats(context.Background(), "2024-01-15")
	if err != nil {
		t.Fatalf("Stats() error: %v", err)
	}
	if st.Total != 5 || st.Present != 4 || st.Absent != 1 {
		t.Fatalf("totals mismatch: %+v", st)
	}
	if st.Employees.Total != 3 || st.Employees.Present != 2 || st.Employees.Absent != 1 {
		t.Fatalf("employee split mismatch: %+v", st.Employees)
	}
	if st.Customers.Total != 2 || st.Customers.Present != 2 {
		t.Fatalf("customer split mismatch: %+v", st.Customers)
	}
}

func TestCloseDay_AutoCheckoutAndAbsences(t *testing.T) {
	now := time.Date(2024, 12, 20, 9, 0, 0, 0, time.UTC)
	svc := newAttendanceService(t, now)
	ctx := context.Background()

	// EMP001 checks in and never checks out.
	if _, _, err := svc.Scan(ctx, "QR-EMP001-2024", "Reception", ""); err != nil {
		t.Fatalf("Scan() error: %v", err)
	}

	res, err := svc.CloseDay(ctx, "2024-12-20", 4*time.Hour)
	if err != nil {
		t.Fatalf("CloseDay() error: %v", err)
	}
	if res.AutoCheckouts != 1 {
		t.Fatalf("expected 1 auto checkout, got %d", res.AutoCheckouts)
	}
	// EMP002 and EMP004 are active with no record; EMP003 is inactive.
	if res.MarkedAbsent != 2 {
		t.Fatalf("expected 2 marked absent, got %d", res.MarkedAbsent)
	}

	rec, err := svc.Attendance.GetByMemberAndDate(ctx, "EMP001", "2024-12-20")
	if err != nil {
		t.Fatalf("GetByMemberAndDate() error: %v", err)
	}
	if rec.CheckOut == nil || !rec.CheckOut.Equal(now.Add(4*time.Hour)) {
		t.Fatalf("auto checkout at checkIn+maxSession, got %v", rec.CheckOut)
	}
	if rec.ScannedBy != "System" {
		t.Fatalf("auto checkout must be attributed to System, got %q", rec.ScannedBy)
	}

	// Re-running the sweep is a no-op.
	res, err = svc.CloseDay(ctx, "2024-12-20", 4*time.Hour)
	if err != nil {
		t.Fatalf("CloseDay() rerun error: %v", err)
	}
	if res.AutoCheckouts != 0 || res.MarkedAbsent != 0 {
		t.Fatalf("rerun must be a no-op: %+v", res)
	}
}
