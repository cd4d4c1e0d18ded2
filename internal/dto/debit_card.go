package dto

// CreateDebitCardRequest creates a debit card against a bank account.
// Expiry accepts YYYY-MM-DD or YYYY-MM; a bare month is stored as the first
// day of that month.
type CreateDebitCardRequest struct {
	AccountID  string `json:"accountID" binding:"required"`
	LastFour   string `json:"lastFour" binding:"required,len=4,numeric"`
	HolderName string `json:"holderName" binding:"required"`
	Expiry     string `json:"expiry" binding:"required"`
}
