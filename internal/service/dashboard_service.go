package service

import (
	"context"

	"github.com/syedsmuzakkir/Gym-Portal/internal/domain"
	"github.com/syedsmuzakkir/Gym-Portal/internal/repository"
)

// DashboardService assembles the portal overview from the other modules'
// real records instead of synthesizing numbers.
type DashboardService struct {
	Employees  repository.EmployeeRepository
	Customers  repository.CustomerRepository
	Invoices   repository.InvoiceRepository
	Attendance *AttendanceService
	Payments   *PaymentService
}

type DashboardSummary struct {
	Employees struct {
		Total  int `json:"total"`
		Active int `json:"active"`
	} `json:"employees"`
	Customers struct {
		Total  int `json:"total"`
		Active int `json:"active"`
	} `json:"customers"`
	Invoices struct {
		Total   int `json:"total"`
		Pending int `json:"pending"`
		Paid    int `json:"paid"`
	} `json:"invoices"`
	Revenue    *repository.PaymentStats `json:"revenue"`
	Attendance *AttendanceStats         `json:"attendance"`
}

func (s DashboardService) Summary(ctx context.Context) (*DashboardSummary, error) {
	var out DashboardSummary

	employees, err := s.Employees.List(ctx)
	if err != nil {
		return nil, err
	}
	out.Employees.Total = len(employees)
	for _, e := range employees {
		if e.Status == domain.StatusActive {
			out.Employees.Active++
		}
	}

	customers, err := s.Customers.List(ctx)
	if err != nil {
		return nil, err
	}
	out.Customers.Total = len(customers)
	for _, c := range customers {
		if c.Status == domain.StatusActive {
			out.Customers.Active++
		}
	}

	invoices, err := s.Invoices.List(ctx)
	if err != nil {
		return nil, err
	}
	out.Invoices.Total = len(invoices)
	for _, inv := range invoices {
		switch inv.Status {
		case domain.InvoicePending:
			out.Invoices.Pending++
		case domain.InvoicePaid:
			out.Invoices.Paid++
		}
	}

	out.Revenue, err = s.Payments.Payments.Stats(ctx, s.Payments.now())
	if err != nil {
		return nil, err
	}
	out.Attendance, err = s.Attendance.Stats(ctx, s.Attendance.Today())
	if err != nil {
		return nil, err
	}
	return &out, nil
}
