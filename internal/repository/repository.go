package repository

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned when an id does not resolve to a record.
// Updates and deletes against a missing id fail with it rather than
// silently doing nothing.
var ErrNotFound = errors.New("record not found")

// Collection names double as persisted blob keys.
const (
	colEmployees    = "employees"
	colCustomers    = "customers"
	colInvoices     = "invoices"
	colPayments     = "payments"
	colPaymentLinks = "paymentLinks"
	colAttendance   = "attendance"
	colMemberCodes  = "memberCodes"
	colUsers        = "users"
	colMeetings     = "meetings"
	colMessages     = "messages"
	colSettings     = "settings"
)

// displayCode renders zero-padded member codes such as EMP004 or CUST012.
func displayCode(prefix string, n int64) string {
	return fmt.Sprintf("%s%03d", prefix, n)
}

// documentNumber renders year-scoped document numbers such as INV-2024-003.
func documentNumber(prefix string, year int, n int64) string {
	return fmt.Sprintf("%s-%d-%03d", prefix, year, n)
}
