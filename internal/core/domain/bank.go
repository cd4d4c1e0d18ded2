package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Bank is a financial institution, unique per (name, branch). A missing
// branch is treated as the empty string for uniqueness purposes.
type Bank struct {
	BankID    string    `json:"bankID"` // Primary Key (UUID)
	Name      string    `json:"name"`
	Branch    string    `json:"branch"`
	CreatedAt time.Time `json:"createdAt"`
}

// BankAccount is a company account held at a Bank.
type BankAccount struct {
	AccountID      string          `json:"accountID"` // Primary Key (UUID)
	BankID         string          `json:"bankID"`    // FK -> banks.bank_id
	AccountNumber  string          `json:"accountNumber"`
	AccountName    string          `json:"accountName"`
	OpeningBalance decimal.Decimal `json:"openingBalance"`
	CurrentBalance decimal.Decimal `json:"currentBalance"`
	CreatedAt      time.Time       `json:"createdAt"`

	// Populated by list queries joining the parent bank.
	BankName   string `json:"bankName,omitempty"`
	BankBranch string `json:"bankBranch,omitempty"`
}
