package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Enumerations
const (
	RoleAdmin    UserRole = "admin"
	RoleManager  UserRole = "manager"
	RoleEmployee UserRole = "employee"

	MemberEmployee MemberType = "employee"
	MemberCustomer MemberType = "customer"

	StatusActive   RecordStatus = "active"
	StatusInactive RecordStatus = "inactive"

	AttendancePresent AttendanceStatus = "present"
	AttendanceAbsent  AttendanceStatus = "absent"

	ScanCheckIn  ScanEvent = "checkin"
	ScanCheckOut ScanEvent = "checkout"

	MethodCash         PaymentMethod = "cash"
	MethodRazorpay     PaymentMethod = "razorpay"
	MethodStripe       PaymentMethod = "stripe"
	MethodBankTransfer PaymentMethod = "bank_transfer"

	PaymentPending    PaymentStatus = "pending"
	PaymentProcessing PaymentStatus = "processing"
	PaymentCompleted  PaymentStatus = "completed"
	PaymentFailed     PaymentStatus = "failed"
	PaymentCancelled  PaymentStatus = "cancelled"
	PaymentRefunded   PaymentStatus = "refunded"

	InvoicePending InvoiceStatus = "pending"
	InvoicePaid    InvoiceStatus = "paid"

	LinkActive    LinkStatus = "active"
	LinkExpired   LinkStatus = "expired"
	LinkCancelled LinkStatus = "cancelled"
	LinkPaid      LinkStatus = "paid"

	MeetingScheduled MeetingStatus = "scheduled"
	MeetingCompleted MeetingStatus = "completed"
	MeetingCancelled MeetingStatus = "cancelled"
)

type UserRole string
type MemberType string
type RecordStatus string
type AttendanceStatus string
type ScanEvent string
type PaymentMethod string
type PaymentStatus string
type InvoiceStatus string
type LinkStatus string
type MeetingStatus string

// DateLayout is the day-partition format used across collections.
const DateLayout = "2006-01-02"

type User struct {
	ID           int64    `json:"id"`
	Name         string   `json:"name"`
	Email        string   `json:"email"`
	Phone        string   `json:"phone"`
	Role         UserRole `json:"role"`
	PasswordHash string   `json:"passwordHash"`
}

type EmergencyContact struct {
	Name         string `json:"name"`
	Phone        string `json:"phone"`
	Relationship string `json:"relationship"`
}

type Employee struct {
	ID               int64            `json:"id"`
	EmployeeID       string           `json:"employeeId"`
	Name             string           `json:"name"`
	Email            string           `json:"email"`
	Phone            string           `json:"phone"`
	Department       string           `json:"department"`
	Position         string           `json:"position"`
	Status           RecordStatus     `json:"status"`
	JoinDate         string           `json:"joinDate"`
	Salary           decimal.Decimal  `json:"salary"`
	Address          string           `json:"address"`
	EmergencyContact EmergencyContact `json:"emergencyContact"`
}

type Subscription struct {
	Type      string          `json:"type"`
	Plan      string          `json:"plan"`
	Price     decimal.Decimal `json:"price"`
	StartDate string          `json:"startDate"`
	EndDate   string          `json:"endDate"`
	Status    RecordStatus    `json:"status"`
}

type Customer struct {
	ID           int64           `json:"id"`
	CustomerID   string          `json:"customerId"`
	Name         string          `json:"name"`
	Email        string          `json:"email"`
	Phone        string          `json:"phone"`
	Address      string          `json:"address"`
	Status       RecordStatus    `json:"status"`
	JoinDate     string          `json:"joinDate"`
	Subscription *Subscription   `json:"subscription"`
	TotalPaid    decimal.Decimal `json:"totalPaid"`
	LastPayment  *string         `json:"lastPayment"`
}

type Plan struct {
	ID       int64           `json:"id"`
	Name     string          `json:"name"`
	Price    decimal.Decimal `json:"price"`
	Duration string          `json:"duration"`
	Features []string        `json:"features"`
}

type InvoiceItem struct {
	Description string          `json:"description"`
	Quantity    int             `json:"quantity"`
	Price       decimal.Decimal `json:"price"`
}

type Invoice struct {
	ID            int64           `json:"id"`
	InvoiceNumber string          `json:"invoiceNumber"`
	CustomerID    int64           `json:"customerId"`
	CustomerName  string          `json:"customerName"`
	Amount        decimal.Decimal `json:"amount"`
	Status        InvoiceStatus   `json:"status"`
	IssueDate     string          `json:"issueDate"`
	DueDate       string          `json:"dueDate"`
	PaidDate      *string         `json:"paidDate"`
	Items         []InvoiceItem   `json:"items"`
}

type Payment struct {
	ID                   int64           `json:"id"`
	TransactionID        string          `json:"transactionId"`
	CustomerID           int64           `json:"customerId"`
	CustomerName         string          `json:"customerName"`
	Amount               decimal.Decimal `json:"amount"`
	Method               PaymentMethod   `json:"method"`
	Status               PaymentStatus   `json:"status"`
	Date                 time.Time       `json:"date"`
	Description          string          `json:"description"`
	InvoiceID            *int64          `json:"invoiceId"`
	GatewayTransactionID *string         `json:"gatewayTransactionId"`
	Fees                 decimal.Decimal `json:"fees"`
	NetAmount            decimal.Decimal `json:"netAmount"`
}

type PaymentLink struct {
	ID           int64           `json:"id"`
	LinkID       string          `json:"linkId"`
	CustomerID   int64           `json:"customerId"`
	CustomerName string          `json:"customerName"`
	Amount       decimal.Decimal `json:"amount"`
	Description  string          `json:"description"`
	Status       LinkStatus      `json:"status"`
	ExpiryDate   string          `json:"expiryDate"`
	CreatedDate  string          `json:"createdDate"`
	URL          string          `json:"url"`
	Clicks       int             `json:"clicks"`
	Paid         bool            `json:"paid"`
}

type MemberCode struct {
	ID            int64      `json:"id"`
	MemberID      string     `json:"memberId"`
	MemberName    string     `json:"memberName"`
	MemberType    MemberType `json:"memberType"`
	QRCode        string     `json:"qrCode"`
	Barcode       string     `json:"barcode"`
	IsActive      bool       `json:"isActive"`
	GeneratedDate string     `json:"generatedDate"`
}

type Attendance struct {
	ID         int64            `json:"id"`
	MemberID   string           `json:"memberId"`
	MemberName string           `json:"memberName"`
	MemberType MemberType       `json:"memberType"`
	CheckIn    *time.Time       `json:"checkIn"`
	CheckOut   *time.Time       `json:"checkOut"`
	Date       string           `json:"date"`
	Status     AttendanceStatus `json:"status"`
	ScannedBy  string           `json:"scannedBy"`
	Location   string           `json:"location"`
}

type Meeting struct {
	ID        int64         `json:"id"`
	Title     string        `json:"title"`
	Type      string        `json:"type"`
	Date      time.Time     `json:"date"`
	Duration  int           `json:"duration"`
	Location  string        `json:"location"`
	Organizer string        `json:"organizer"`
	Attendees []string      `json:"attendees"`
	Agenda    string        `json:"agenda"`
	Status    MeetingStatus `json:"status"`
	Reminders []int         `json:"reminders"`
}

type Reaction struct {
	Emoji string `json:"emoji"`
	Count int    `json:"count"`
}

type Message struct {
	ID        int64      `json:"id"`
	Channel   string     `json:"channel"`
	Author    string     `json:"author"`
	Role      string     `json:"role"`
	Content   string     `json:"content"`
	Timestamp time.Time  `json:"timestamp"`
	Edited    bool       `json:"edited"`
	Reactions []Reaction `json:"reactions"`
}

type Channel struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

type Settings struct {
	PortalName        string   `json:"portalName"`
	ContactEmail      string   `json:"contactEmail"`
	ContactPhone      string   `json:"contactPhone"`
	Address           string   `json:"address"`
	Currency          string   `json:"currency"`
	EnabledGateways   []string `json:"enabledGateways"`
	DefaultGateway    string   `json:"defaultGateway"`
	RequireMemberCode bool     `json:"requireMemberCode"`
	AutoCheckout      bool     `json:"autoCheckout"`
	MaxSessionMinutes int      `json:"maxSessionMinutes"`
	UpdatedAt         time.Time `json:"updatedAt"`
}
