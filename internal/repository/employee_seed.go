package repository

import (
	"github.com/shopspring/decimal"
	"github.com/syedsmuzakkir/Gym-Portal/internal/domain"
)

// Departments offered in the employee form.
var Departments = []string{"Administration", "Human Resources", "IT", "Finance", "Operations", "Legal", "Security"}

func seedEmployees() []domain.Employee {
	return []domain.Employee{
		{
			ID: 1, EmployeeID: "EMP001", Name: "John Smith",
			Email: "john.smith@gov.portal", Phone: "+1234567890",
			Department: "Administration", Position: "Senior Administrator",
			Status: domain.StatusActive, JoinDate: "2022-01-15",
			Salary:  decimal.NewFromInt(65000),
			Address: "123 Main St, City, State 12345",
			EmergencyContact: domain.EmergencyContact{
				Name: "Jane Smith", Phone: "+1234567891", Relationship: "Spouse",
			},
		},
		{
			ID: 2, EmployeeID: "EMP002", Name: "Sarah Johnson",
			Email: "sarah.johnson@gov.portal", Phone: "+1234567892",
			Department: "Human Resources", Position: "HR Manager",
			Status: domain.StatusActive, JoinDate: "2021-08-20",
			Salary:  decimal.NewFromInt(58000),
			Address: "456 Oak Ave, City, State 12345",
			EmergencyContact: domain.EmergencyContact{
				Name: "Mike Johnson", Phone: "+1234567893", Relationship: "Brother",
			},
		},
		{
			ID: 3, EmployeeID: "EMP003", Name: "Michael Brown",
			Email: "michael.brown@gov.portal", Phone: "+1234567894",
			Department: "IT", Position: "System Administrator",
			Status: domain.StatusInactive, JoinDate: "2020-03-10",
			Salary:  decimal.NewFromInt(72000),
			Address: "789 Pine St, City, State 12345",
			EmergencyContact: domain.EmergencyContact{
				Name: "Lisa Brown", Phone: "+1234567895", Relationship: "Wife",
			},
		},
		{
			ID: 4, EmployeeID: "EMP004", Name: "Emily Davis",
			Email: "emily.davis@gov.portal", Phone: "+1234567896",
			Department: "Finance", Position: "Financial Analyst",
			Status: domain.StatusActive, JoinDate: "2023-02-01",
			Salary:  decimal.NewFromInt(55000),
			Address: "321 Elm St, City, State 12345",
			EmergencyContact: domain.EmergencyContact{
				Name: "Robert Davis", Phone: "+1234567897", Relationship: "Father",
			},
		},
	}
}
