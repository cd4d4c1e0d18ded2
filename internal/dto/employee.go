package dto

// CreateEmployeeRequest creates an employee record.
type CreateEmployeeRequest struct {
	EmployeeNumber string `json:"employeeNumber" binding:"required"`
	FirstName      string `json:"firstName" binding:"required"`
	LastName       string `json:"lastName" binding:"required"`
	Email          string `json:"email" binding:"omitempty,email"`
	Phone          string `json:"phone"`
	Role           string `json:"role" binding:"required"`
	Designation    string `json:"designation"`
	TaxID          string `json:"taxID"`
}

// CreateVendorRequest creates a vendor, the FK target of payables.
type CreateVendorRequest struct {
	Name    string `json:"name" binding:"required"`
	Contact string `json:"contact"`
}
