package dto

import "github.com/shopspring/decimal"

// CreatePayableRequest creates a payable. Vendor and name are required
// unless the type is petty_cash; amount and type always are. Supplying any
// of the payment fields additionally records a payment, whose status is Paid
// when a reference number was given and Pending otherwise.
type CreatePayableRequest struct {
	VendorID  string           `json:"vendorID"`
	Name      string           `json:"name"`
	Type      string           `json:"type" binding:"required"`
	Amount    *decimal.Decimal `json:"amount" binding:"required"`
	Frequency string           `json:"frequency"`
	StartDate string           `json:"startDate"`
	EndDate   string           `json:"endDate"`
	ProjectID string           `json:"projectID"`

	PaymentMethod      string `json:"paymentMethod"`
	PaymentReferenceNo string `json:"paymentReferenceNo"`
	PaymentDate        string `json:"paymentDate"`
}

// CreateReceivableRequest creates a receivable.
type CreateReceivableRequest struct {
	PayerName string           `json:"payerName" binding:"required"`
	Name      string           `json:"name" binding:"required"`
	Type      string           `json:"type" binding:"required"`
	Amount    *decimal.Decimal `json:"amount" binding:"required"`
	Frequency string           `json:"frequency"`
	StartDate string           `json:"startDate"`
	EndDate   string           `json:"endDate"`
	ProjectID string           `json:"projectID"`
	AccountID string           `json:"accountID"`
}
