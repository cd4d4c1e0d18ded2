package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// PayableType classifies how a payable recurs and is funded.
type PayableType string

const (
	PayableOneTime   PayableType = "one_time"
	PayableRecurring PayableType = "recurring"
	PayablePettyCash PayableType = "petty_cash"
)

// PettyCashDefaultName is used when a petty-cash payable is created without
// an explicit name.
const PettyCashDefaultName = "Petty Cash Expense"

// Payable is money the company owes. VendorID is nil for petty-cash
// payables.
type Payable struct {
	PayableID string          `json:"payableID"` // Primary Key (UUID)
	VendorID  *string         `json:"vendorID"`  // Nullable FK -> vendors.vendor_id
	Name      string          `json:"name"`
	Type      PayableType     `json:"type"`
	Amount    decimal.Decimal `json:"amount"`
	Frequency *string         `json:"frequency"`
	StartDate *time.Time      `json:"startDate"`
	EndDate   *time.Time      `json:"endDate"`
	ProjectID *string         `json:"projectID"` // Nullable FK -> projects.project_id
	IsActive  bool            `json:"isActive"`
	CreatedAt time.Time       `json:"createdAt"`

	// Populated by list queries joining vendor and project.
	VendorName  string `json:"vendorName,omitempty"`
	ProjectName string `json:"projectName,omitempty"`
}

// PettyCashAccount is the singleton operating cash account drawn down by
// petty-cash payables.
type PettyCashAccount struct {
	AccountID string          `json:"accountID"` // Primary Key (UUID)
	Name      string          `json:"name"`
	Balance   decimal.Decimal `json:"balance"`
	CreatedAt time.Time       `json:"createdAt"`
}

// PettyCashTransaction is an expense drawn against the petty-cash account,
// linked to the payable that caused it.
type PettyCashTransaction struct {
	TransactionID string          `json:"transactionID"` // Primary Key (UUID)
	AccountID     string          `json:"accountID"`     // FK -> petty_cash_accounts.account_id
	PayableID     string          `json:"payableID"`     // FK -> payables.payable_id
	Amount        decimal.Decimal `json:"amount"`
	CreatedAt     time.Time       `json:"createdAt"`
}

// PaymentStatus is the settlement state of a payment record.
type PaymentStatus string

const (
	PaymentPaid    PaymentStatus = "Paid"
	PaymentPending PaymentStatus = "Pending"
)

// PaymentRecord captures payment details supplied alongside a payable. The
// status is Paid when a reference number was given and Pending otherwise.
type PaymentRecord struct {
	PaymentID   string        `json:"paymentID"` // Primary Key (UUID)
	PayableID   string        `json:"payableID"` // FK -> payables.payable_id
	Method      string        `json:"method"`
	ReferenceNo *string       `json:"referenceNo"`
	Status      PaymentStatus `json:"status"`
	PaidDate    *time.Time    `json:"paidDate"`
	CreatedAt   time.Time     `json:"createdAt"`
}
