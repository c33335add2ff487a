package repository

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/syedsmuzakkir/Gym-Portal/internal/domain"
)

func i64ptr(n int64) *int64 { return &n }

func seedPayments() []domain.Payment {
	return []domain.Payment{
		{
			ID: 1, TransactionID: "TXN-2024-001", CustomerID: 1, CustomerName: "Alice Johnson",
			Amount: decimal.NewFromInt(99), Method: domain.MethodRazorpay, Status: domain.PaymentCompleted,
			Date:        time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC),
			Description: "Premium Monthly Subscription", InvoiceID: i64ptr(1),
			GatewayTransactionID: strptr("rzp_2024_001"),
			Fees:                 decimal.RequireFromString("2.97"),
			NetAmount:            decimal.RequireFromString("96.03"),
		},
		{
			ID: 2, TransactionID: "TXN-2024-002", CustomerID: 2, CustomerName: "Robert Smith",
			Amount: decimal.NewFromInt(49), Method: domain.MethodStripe, Status: domain.PaymentCompleted,
			Date:        time.Date(2024, 1, 15, 14, 20, 0, 0, time.UTC),
			Description: "Basic Monthly Subscription", InvoiceID: i64ptr(2),
			GatewayTransactionID: strptr("pi_2024_002"),
			Fees:                 decimal.RequireFromString("1.72"),
			NetAmount:            decimal.RequireFromString("47.28"),
		},
		{
			ID: 3, TransactionID: "TXN-2024-003", CustomerID: 3, CustomerName: "Maria Garcia",
			Amount: decimal.NewFromInt(150), Method: domain.MethodCash, Status: domain.PaymentCompleted,
			Date:        time.Date(2024, 1, 15, 16, 45, 0, 0, time.UTC),
			Description: "Service Fee Payment",
			Fees:        decimal.Zero,
			NetAmount:   decimal.NewFromInt(150),
		},
		{
			ID: 4, TransactionID: "TXN-2024-004", CustomerID: 4, CustomerName: "David Wilson",
			Amount: decimal.NewFromInt(99), Method: domain.MethodRazorpay, Status: domain.PaymentPending,
			Date:        time.Date(2024, 1, 16, 9, 15, 0, 0, time.UTC),
			Description: "Premium Monthly Subscription", InvoiceID: i64ptr(3),
			GatewayTransactionID: strptr("rzp_2024_004"),
			Fees:                 decimal.RequireFromString("2.97"),
			NetAmount:            decimal.RequireFromString("96.03"),
		},
	}
}

func seedPaymentLinks() []domain.PaymentLink {
	return []domain.PaymentLink{
		{
			ID: 1, LinkID: "PL-2024-001", CustomerID: 1, CustomerName: "Alice Johnson",
			Amount: decimal.NewFromInt(99), Description: "Premium Subscription Renewal",
			Status: domain.LinkActive, ExpiryDate: "2024-02-15", CreatedDate: "2024-01-15",
			URL: "https://pay.gov-portal.com/link/PL-2024-001", Clicks: 3, Paid: false,
		},
		{
			ID: 2, LinkID: "PL-2024-002", CustomerID: 2, CustomerName: "Robert Smith",
			Amount: decimal.NewFromInt(49), Description: "Basic Subscription Payment",
			Status: domain.LinkExpired, ExpiryDate: "2024-01-20", CreatedDate: "2024-01-10",
			URL: "https://pay.gov-portal.com/link/PL-2024-002", Clicks: 1, Paid: true,
		},
	}
}
