package repository

import (
	"github.com/shopspring/decimal"
	"github.com/syedsmuzakkir/Gym-Portal/internal/domain"
)

func seedInvoices() []domain.Invoice {
	return []domain.Invoice{
		{
			ID: 1, InvoiceNumber: "INV-2023-001", CustomerID: 1, CustomerName: "Alice Johnson",
			Amount: decimal.NewFromInt(99), Status: domain.InvoicePaid,
			IssueDate: "2023-12-15", DueDate: "2023-12-30", PaidDate: strptr("2023-12-16"),
			Items: []domain.InvoiceItem{
				{Description: "Premium Monthly Subscription", Quantity: 1, Price: decimal.NewFromInt(99)},
			},
		},
		{
			ID: 2, InvoiceNumber: "INV-2023-002", CustomerID: 2, CustomerName: "Robert Smith",
			Amount: decimal.NewFromInt(49), Status: domain.InvoicePaid,
			IssueDate: "2023-12-20", DueDate: "2024-01-05", PaidDate: strptr("2023-12-21"),
			Items: []domain.InvoiceItem{
				{Description: "Basic Monthly Subscription", Quantity: 1, Price: decimal.NewFromInt(49)},
			},
		},
		{
			ID: 3, InvoiceNumber: "INV-2023-003", CustomerID: 4, CustomerName: "David Wilson",
			Amount: decimal.NewFromInt(99), Status: domain.InvoicePending,
			IssueDate: "2024-01-01", DueDate: "2024-01-15", PaidDate: nil,
			Items: []domain.InvoiceItem{
				{Description: "Premium Monthly Subscription", Quantity: 1, Price: decimal.NewFromInt(99)},
			},
		},
	}
}
