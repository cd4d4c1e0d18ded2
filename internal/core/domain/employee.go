package domain

import "time"

// Employee is a member of staff. EmployeeNumber is the human-facing unique
// identifier, distinct from the primary key.
type Employee struct {
	EmployeeID     string    `json:"employeeID"` // Primary Key (UUID)
	EmployeeNumber string    `json:"employeeNumber"`
	FirstName      string    `json:"firstName"`
	LastName       string    `json:"lastName"`
	Email          string    `json:"email"`
	Phone          string    `json:"phone"`
	Role           string    `json:"role"`
	Designation    string    `json:"designation"`
	TaxID          string    `json:"taxID"`
	CreatedAt      time.Time `json:"createdAt"`
}
