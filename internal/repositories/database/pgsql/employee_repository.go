package pgsql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/opslane/erp_backend/internal/apperrors"
	"github.com/opslane/erp_backend/internal/core/domain"
	portsrepo "github.com/opslane/erp_backend/internal/core/ports/repositories"
)

type PgxEmployeeRepository struct {
	BaseRepository
}

func newPgxEmployeeRepository(pool *pgxpool.Pool) portsrepo.EmployeeRepository {
	return &PgxEmployeeRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.EmployeeRepository = (*PgxEmployeeRepository)(nil)

func (r *PgxEmployeeRepository) SaveEmployee(ctx context.Context, employee domain.Employee) error {
	query := `
		INSERT INTO employees (employee_id, employee_number, first_name, last_name, email, phone, role, designation, tax_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
	`
	_, err := r.Pool.Exec(ctx, query,
		employee.EmployeeID,
		employee.EmployeeNumber,
		employee.FirstName,
		employee.LastName,
		employee.Email,
		employee.Phone,
		employee.Role,
		employee.Designation,
		employee.TaxID,
		employee.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err, "") {
			return apperrors.Wrap(apperrors.ErrConflict, "employee_number_exists", "an employee with this number already exists", err)
		}
		return fmt.Errorf("failed to save employee: %w", err)
	}
	return nil
}

func (r *PgxEmployeeRepository) ListEmployees(ctx context.Context) ([]domain.Employee, error) {
	query := `
		SELECT employee_id, employee_number, first_name, last_name, email, phone, role, designation, tax_id, created_at
		FROM employees
		ORDER BY created_at DESC;
	`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query employees: %w", err)
	}
	defer rows.Close()

	employees := []domain.Employee{}
	for rows.Next() {
		var e domain.Employee
		err := rows.Scan(
			&e.EmployeeID,
			&e.EmployeeNumber,
			&e.FirstName,
			&e.LastName,
			&e.Email,
			&e.Phone,
			&e.Role,
			&e.Designation,
			&e.TaxID,
			&e.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan employee row: %w", err)
		}
		employees = append(employees, e)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating employee rows: %w", rows.Err())
	}
	return employees, nil
}
