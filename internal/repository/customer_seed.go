package repository

import (
	"github.com/shopspring/decimal"
	"github.com/syedsmuzakkir/Gym-Portal/internal/domain"
)

func strptr(s string) *string { return &s }

func seedCustomers() []domain.Customer {
	return []domain.Customer{
		{
			ID: 1, CustomerID: "CUST001", Name: "Alice Johnson",
			Email: "alice.johnson@email.com", Phone: "+1234567890",
			Address: "123 Oak Street, City, State 12345",
			Status:  domain.StatusActive, JoinDate: "2023-01-15",
			Subscription: &domain.Subscription{
				Type: "monthly", Plan: "Premium", Price: decimal.NewFromInt(99),
				StartDate: "2023-01-15", EndDate: "2024-01-15", Status: domain.StatusActive,
			},
			TotalPaid: decimal.NewFromInt(1188), LastPayment: strptr("2023-12-15"),
		},
		{
			ID: 2, CustomerID: "CUST002", Name: "Robert Smith",
			Email: "robert.smith@email.com", Phone: "+1234567891",
			Address: "456 Pine Avenue, City, State 12345",
			Status:  domain.StatusActive, JoinDate: "2023-03-20",
			Subscription: &domain.Subscription{
				Type: "monthly", Plan: "Basic", Price: decimal.NewFromInt(49),
				StartDate: "2023-03-20", EndDate: "2024-03-20", Status: domain.StatusActive,
			},
			TotalPaid: decimal.NewFromInt(490), LastPayment: strptr("2023-12-20"),
		},
		{
			ID: 3, CustomerID: "CUST003", Name: "Maria Garcia",
			Email: "maria.garcia@email.com", Phone: "+1234567892",
			Address: "789 Elm Street, City, State 12345",
			Status:  domain.StatusInactive, JoinDate: "2022-08-10",
			Subscription: &domain.Subscription{
				Type: "custom", Plan: "Enterprise", Price: decimal.NewFromInt(199),
				StartDate: "2022-08-10", EndDate: "2023-08-10", Status: "expired",
			},
			TotalPaid: decimal.NewFromInt(2388), LastPayment: strptr("2023-07-10"),
		},
		{
			ID: 4, CustomerID: "CUST004", Name: "David Wilson",
			Email: "david.wilson@email.com", Phone: "+1234567893",
			Address: "321 Maple Drive, City, State 12345",
			Status:  domain.StatusActive, JoinDate: "2023-06-01",
			Subscription: &domain.Subscription{
				Type: "monthly", Plan: "Premium", Price: decimal.NewFromInt(99),
				StartDate: "2023-06-01", EndDate: "2024-06-01", Status: domain.StatusActive,
			},
			TotalPaid: decimal.NewFromInt(693), LastPayment: strptr("2023-12-01"),
		},
	}
}

func subscriptionPlans() []domain.Plan {
	return []domain.Plan{
		{
			ID: 1, Name: "Basic", Price: decimal.NewFromInt(49), Duration: "monthly",
			Features: []string{"Basic Support", "Standard Features", "Email Support"},
		},
		{
			ID: 2, Name: "Premium", Price: decimal.NewFromInt(99), Duration: "monthly",
			Features: []string{"Priority Support", "Advanced Features", "Phone Support", "Analytics"},
		},
		{
			ID: 3, Name: "Enterprise", Price: decimal.NewFromInt(199), Duration: "monthly",
			Features: []string{"24/7 Support", "All Features", "Dedicated Manager", "Custom Integration"},
		},
	}
}
