package dto

import "github.com/shopspring/decimal"

// CreateAccountRequest creates a company bank account, creating the bank row
// on the fly when the (name, branch) pair is unseen. OpeningBalance is a
// pointer so a missing field is distinguishable from an explicit zero.
type CreateAccountRequest struct {
	BankName       string           `json:"bankName" binding:"required"`
	BankBranch     string           `json:"bankBranch"`
	AccountNumber  string           `json:"accountNumber" binding:"required"`
	AccountName    string           `json:"accountName" binding:"required"`
	OpeningBalance *decimal.Decimal `json:"openingBalance" binding:"required"`
}
