package domain

import "time"

// Vendor is a supplier that payables reference.
type Vendor struct {
	VendorID  string    `json:"vendorID"` // Primary Key (UUID)
	Name      string    `json:"name"`
	Contact   string    `json:"contact"`
	CreatedAt time.Time `json:"createdAt"`
}
