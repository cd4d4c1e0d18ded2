package services

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/opslane/erp_backend/internal/core/domain"
	portsrepo "github.com/opslane/erp_backend/internal/core/ports/repositories"
	portssvc "github.com/opslane/erp_backend/internal/core/ports/services"
	"github.com/opslane/erp_backend/internal/dto"
)

type employeeService struct {
	employeeRepo portsrepo.EmployeeRepository
}

// NewEmployeeService creates a new employee service.
func NewEmployeeService(employeeRepo portsrepo.EmployeeRepository) portssvc.EmployeeSvcFacade {
	return &employeeService{employeeRepo: employeeRepo}
}

var _ portssvc.EmployeeSvcFacade = (*employeeService)(nil)

func (s *employeeService) ListEmployees(ctx context.Context) ([]domain.Employee, error) {
	return s.employeeRepo.ListEmployees(ctx)
}

func (s *employeeService) CreateEmployee(ctx context.Context, req dto.CreateEmployeeRequest) (*domain.Employee, error) {
	employee := domain.Employee{
		EmployeeID:     uuid.NewString(),
		EmployeeNumber: req.EmployeeNumber,
		FirstName:      req.FirstName,
		LastName:       req.LastName,
		Email:          req.Email,
		Phone:          req.Phone,
		Role:           req.Role,
		Designation:    req.Designation,
		TaxID:          req.TaxID,
		CreatedAt:      time.Now().UTC(),
	}
	if err := s.employeeRepo.SaveEmployee(ctx, employee); err != nil {
		return nil, err
	}
	return &employee, nil
}
