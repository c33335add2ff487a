package repository

import (
	"time"

	"github.com/syedsmuzakkir/Gym-Portal/internal/domain"
)

func tptr(t time.Time) *time.Time { return &t }

func seedAttendance() []domain.Attendance {
	return []domain.Attendance{
		{
			ID: 1, MemberID: "EMP001", MemberName: "John Smith", MemberType: domain.MemberEmployee,
			CheckIn:  tptr(time.Date(2024, 1, 15, 9, 0, 0, 0, time.UTC)),
			CheckOut: tptr(time.Date(2024, 1, 15, 17, 30, 0, 0, time.UTC)),
			Date:     "2024-01-15", Status: domain.AttendancePresent,
			ScannedBy: "System", Location: "Main Office",
		},
		{
			ID: 2, MemberID: "CUST001", MemberName: "Alice Johnson", MemberType: domain.MemberCustomer,
			CheckIn:  tptr(time.Date(2024, 1, 15, 10, 15, 0, 0, time.UTC)),
			CheckOut: tptr(time.Date(2024, 1, 15, 11, 45, 0, 0, time.UTC)),
			Date:     "2024-01-15", Status: domain.AttendancePresent,
			ScannedBy: "John Smith", Location: "Service Counter",
		},
		{
			ID: 3, MemberID: "EMP002", MemberName: "Sarah Johnson", MemberType: domain.MemberEmployee,
			CheckIn:  tptr(time.Date(2024, 1, 15, 8, 45, 0, 0, time.UTC)),
			CheckOut: tptr(time.Date(2024, 1, 15, 17, 15, 0, 0, time.UTC)),
			Date:     "2024-01-15", Status: domain.AttendancePresent,
			ScannedBy: "System", Location: "Main Office",
		},
		{
			ID: 4, MemberID: "EMP003", MemberName: "Michael Brown", MemberType: domain.MemberEmployee,
			Date: "2024-01-15", Status: domain.AttendanceAbsent,
		},
		{
			ID: 5, MemberID: "CUST002", MemberName: "Robert Smith", MemberType: domain.MemberCustomer,
			CheckIn:  tptr(time.Date(2024, 1, 15, 14, 30, 0, 0, time.UTC)),
			CheckOut: tptr(time.Date(2024, 1, 15, 15, 20, 0, 0, time.UTC)),
			Date:     "2024-01-15", Status: domain.AttendancePresent,
			ScannedBy: "Sarah Johnson", Location: "Meeting Room A",
		},
	}
}

func seedMemberCodes() []domain.MemberCode {
	return []domain.MemberCode{
		{
			ID: 1, MemberID: "EMP001", MemberName: "John Smith", MemberType: domain.MemberEmployee,
			QRCode: "QR-EMP001-2024", Barcode: "123456789012", IsActive: true, GeneratedDate: "2024-01-01",
		},
		{
			ID: 2, MemberID: "EMP002", MemberName: "Sarah Johnson", MemberType: domain.MemberEmployee,
			QRCode: "QR-EMP002-2024", Barcode: "123456789013", IsActive: true, GeneratedDate: "2024-01-01",
		},
		{
			ID: 3, MemberID: "CUST001", MemberName: "Alice Johnson", MemberType: domain.MemberCustomer,
			QRCode: "QR-CUST001-2024", Barcode: "123456789014", IsActive: true, GeneratedDate: "2024-01-01",
		},
		{
			ID: 4, MemberID: "CUST002", MemberName: "Robert Smith", MemberType: domain.MemberCustomer,
			QRCode: "QR-CUST002-2024", Barcode: "123456789015", IsActive: true, GeneratedDate: "2024-01-01",
		},
	}
}
