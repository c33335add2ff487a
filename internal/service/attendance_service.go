package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/syedsmuzakkir/Gym-Portal/internal/domain"
	"github.com/syedsmuzakkir/Gym-Portal/internal/repository"
)

var (
	// ErrInvalidCode rejects a scan that matches no active member code.
	ErrInvalidCode = errors.New("invalid or inactive member code")
	// ErrAlreadyCompleted rejects a scan after both check-in and check-out
	// were recorded for the day.
	ErrAlreadyCompleted = errors.New("attendance already marked for today")
)

const defaultScanLocation = "Main Office"

// AttendanceService turns scanned codes into check-in/check-out events.
// Per member and day the record moves NONE -> checked-in -> checked-out and
// then stops; the date partition re-arms the machine at midnight in the
// configured timezone.
type AttendanceService struct {
	Attendance repository.AttendanceRepository
	Codes      repository.MemberCodeRepository
	Employees  repository.EmployeeRepository
	Location   *time.Location
	Logger     *slog.Logger

	// Now is the clock; nil means time.Now. Tests pin it.
	Now func() time.Time
}

func (s AttendanceService) now() time.Time {
	if s.Now != nil {
		return s.Now().In(s.Location)
	}
	return time.Now().In(s.Location)
}

// Today returns the current attendance day in the service timezone.
func (s AttendanceService) Today() string {
	return s.now().Format(domain.DateLayout)
}

// Scan resolves a scanned code and applies the day's next transition.
func (s AttendanceService) Scan(ctx context.Context, code, scannedBy, location string) (*domain.Attendance, domain.ScanEvent, error) {
	member, err := s.Codes.FindByCode(ctx, code)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, "", ErrInvalidCode
		}
		return nil, "", err
	}
	if !member.IsActive {
		return nil, "", ErrInvalidCode
	}

	now := s.now()
	today := now.Format(domain.DateLayout)

	existing, err := s.Attendance.GetByMemberAndDate(ctx, member.MemberID, today)
	switch {
	case err == nil:
		if existing.CheckIn != nil && existing.CheckOut == nil {
			updated, err := s.Attendance.SetCheckOut(ctx, existing.ID, now, scannedBy)
			if err != nil {
				return nil, "", err
			}
			s.Logger.Info("member checked out", "memberId", member.MemberID, "date", today)
			return updated, domain.ScanCheckOut, nil
		}
		return nil, "", ErrAlreadyCompleted
	case errors.Is(err, repository.ErrNotFound):
		if location == "" {
			location = defaultScanLocation
		}
		created, err := s.Attendance.CreateCheckIn(ctx, domain.Attendance{
			MemberID:   member.MemberID,
			MemberName: member.MemberName,
			MemberType: member.MemberType,
			CheckIn:    &now,
			Date:       today,
			Status:     domain.AttendancePresent,
			ScannedBy:  scannedBy,
			Location:   location,
		})
		if err != nil {
			return nil, "", err
		}
		s.Logger.Info("member checked in", "memberId", member.MemberID, "date", today)
		return created, domain.ScanCheckIn, nil
	default:
		return nil, "", err
	}
}

// AttendanceStats is the per-day projection of record counts.
type AttendanceStats struct {
	Total     int `json:"total"`
	Present   int `json:"present"`
	Absent    int `json:"absent"`
	Employees struct {
		Total   int `json:"total"`
		Present int `json:"present"`
		Absent  int `json:"absent"`
	} `json:"employees"`
	Customers struct {
		Total   int `json:"total"`
		Present int `json:"present"`
	} `json:"customers"`
}

// Stats counts the day's records by status, split by member type. An empty
// date means today.
func (s AttendanceService) Stats(ctx context.Context, date string) (*AttendanceStats, error) {
	if date == "" {
		date = s.Today()
	}
	items, err := s.Attendance.ListByDate(ctx, date)
	if err != nil {
		return nil, err
	}
	var st AttendanceStats
	st.Total = len(items)
	for _, a := range items {
		present := a.Status == domain.AttendancePresent
		if present {
			st.Present++
		} else {
			st.Absent++
		}
		switch a.MemberType {
		case domain.MemberEmployee:
			st.Employees.Total++
			if present {
				st.Employees.Present++
			} else {
				st.Employees.Absent++
			}
		case domain.MemberCustomer:
			st.Customers.Total++
			if present {
				st.Customers.Present++
			}
		}
	}
	return &st, nil
}

// CloseDayResult summarizes a day-close sweep.
type CloseDayResult struct {
	Date          string `json:"date"`
	AutoCheckouts int    `json:"autoCheckouts"`
	MarkedAbsent  int    `json:"markedAbsent"`
}

// CloseDay force-closes sessions left open past maxSession and records
// absences for active employees with no attendance that day.
func (s AttendanceService) CloseDay(ctx context.Context, date string, maxSession time.Duration) (*CloseDayResult, error) {
	res := &CloseDayResult{Date: date}

	open, err := s.Attendance.ListOpen(ctx, date)
	if err != nil {
		return nil, err
	}
	for _, a := range open {
		out := a.CheckIn.Add(maxSession)
		if _, err := s.Attendance.SetCheckOut(ctx, a.ID, out, "System"); err != nil {
			return nil, fmt.Errorf("auto checkout %s: %w", a.MemberID, err)
		}
		res.AutoCheckouts++
	}

	employees, err := s.Employees.List(ctx)
	if err != nil {
		return nil, err
	}
	for _, e := range employees {
		if e.Status != domain.StatusActive {
			continue
		}
		_, err := s.Attendance.GetByMemberAndDate(ctx, e.EmployeeID, date)
		if err == nil {
			continue
		}
		if !errors.Is(err, repository.ErrNotFound) {
			return nil, err
		}
		if _, err := s.Attendance.CreateAbsent(ctx, e.EmployeeID, e.Name, domain.MemberEmployee, date); err != nil {
			return nil, fmt.Errorf("mark absent %s: %w", e.EmployeeID, err)
		}
		res.MarkedAbsent++
	}

	s.Logger.Info("attendance day closed",
		"date", date, "autoCheckouts", res.AutoCheckouts, "markedAbsent", res.MarkedAbsent)
	return res, nil
}
