package domain

import "time"

// DebitCard is a card issued against a company bank account. ExpiryDate is
// always stored as the first day of the expiry month when only a month was
// supplied.
type DebitCard struct {
	CardID     string    `json:"cardID"`    // Primary Key (UUID)
	AccountID  string    `json:"accountID"` // FK -> bank_accounts.account_id
	LastFour   string    `json:"lastFour"`
	HolderName string    `json:"holderName"`
	ExpiryDate time.Time `json:"expiryDate"`
	IsActive   bool      `json:"isActive"`
	CreatedAt  time.Time `json:"createdAt"`

	// Populated by list queries joining the parent account.
	AccountNumber string `json:"accountNumber,omitempty"`
}
