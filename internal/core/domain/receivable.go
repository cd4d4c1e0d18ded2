package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ReceivableType classifies how a receivable recurs.
type ReceivableType string

const (
	ReceivableOneTime   ReceivableType = "one_time"
	ReceivableRecurring ReceivableType = "recurring"
)

// Receivable is money owed to the company. The payer is a free-form name,
// not a tracked entity.
type Receivable struct {
	ReceivableID string          `json:"receivableID"` // Primary Key (UUID)
	PayerName    string          `json:"payerName"`
	Name         string          `json:"name"`
	Type         ReceivableType  `json:"type"`
	Amount       decimal.Decimal `json:"amount"`
	Frequency    *string         `json:"frequency"`
	StartDate    *time.Time      `json:"startDate"`
	EndDate      *time.Time      `json:"endDate"`
	ProjectID    *string         `json:"projectID"` // Nullable FK -> projects.project_id
	AccountID    *string         `json:"accountID"` // Nullable FK -> bank_accounts.account_id
	CreatedAt    time.Time       `json:"createdAt"`

	// Populated by list queries joining project and account.
	ProjectName   string `json:"projectName,omitempty"`
	AccountNumber string `json:"accountNumber,omitempty"`
}
