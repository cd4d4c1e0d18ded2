package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/opslane/erp_backend/internal/apperrors"
	"github.com/opslane/erp_backend/internal/core/domain"
	portsrepo "github.com/opslane/erp_backend/internal/core/ports/repositories"
)

type PgxProjectRepository struct {
	BaseRepository
}

func newPgxProjectRepository(pool *pgxpool.Pool) portsrepo.ProjectRepository {
	return &PgxProjectRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.ProjectRepository = (*PgxProjectRepository)(nil)

func (r *PgxProjectRepository) SaveProject(ctx context.Context, project domain.Project) error {
	query := `
		INSERT INTO projects (project_id, name, extra_budget_allocation, created_at)
		VALUES ($1, $2, $3, $4);
	`
	_, err := r.Pool.Exec(ctx, query, project.ProjectID, project.Name, project.ExtraBudgetAllocation, project.CreatedAt)
	if err != nil {
		if isUniqueViolation(err, "") {
			return apperrors.Wrap(apperrors.ErrConflict, "project_exists", "a project with this name already exists", err)
		}
		return fmt.Errorf("failed to save project: %w", err)
	}
	return nil
}

func (r *PgxProjectRepository) ListProjects(ctx context.Context) ([]domain.Project, error) {
	query := `SELECT project_id, name, extra_budget_allocation, created_at FROM projects ORDER BY created_at DESC;`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query projects: %w", err)
	}
	defer rows.Close()

	projects := []domain.Project{}
	for rows.Next() {
		var p domain.Project
		if err := rows.Scan(&p.ProjectID, &p.Name, &p.ExtraBudgetAllocation, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan project row: %w", err)
		}
		projects = append(projects, p)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating project rows: %w", rows.Err())
	}
	return projects, nil
}

func (r *PgxProjectRepository) FindProjectByID(ctx context.Context, projectID string) (*domain.Project, error) {
	query := `SELECT project_id, name, extra_budget_allocation, created_at FROM projects WHERE project_id = $1;`
	var p domain.Project
	err := r.Pool.QueryRow(ctx, query, projectID).Scan(&p.ProjectID, &p.Name, &p.ExtraBudgetAllocation, &p.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find project by ID %s: %w", projectID, err)
	}
	return &p, nil
}

func (r *PgxProjectRepository) ListItems(ctx context.Context, projectID string) ([]domain.ProjectItem, error) {
	// The project must exist even when it has no items.
	if _, err := r.FindProjectByID(ctx, projectID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.New(apperrors.ErrNotFound, "project_not_found", "project does not exist")
		}
		return nil, err
	}

	query := `
		SELECT project_id, requirement_name, service_category, unit_cost, requirement_type, created_at
		FROM project_items
		WHERE project_id = $1
		ORDER BY created_at DESC;
	`
	rows, err := r.Pool.Query(ctx, query, projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to query project items: %w", err)
	}
	defer rows.Close()

	items := []domain.ProjectItem{}
	for rows.Next() {
		var it domain.ProjectItem
		err := rows.Scan(&it.ProjectID, &it.RequirementName, &it.ServiceCategory, &it.UnitCost, &it.RequirementType, &it.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan project item row: %w", err)
		}
		items = append(items, it)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating project item rows: %w", rows.Err())
	}
	return items, nil
}

// lockProject takes a row lock on the project inside tx so concurrent item
// mutations on the same project cannot lose allocation updates. A missing
// project surfaces as not found.
func (r *PgxProjectRepository) lockProject(ctx context.Context, tx pgx.Tx, projectID string) error {
	var id string
	err := tx.QueryRow(ctx, `SELECT project_id FROM projects WHERE project_id = $1 FOR UPDATE;`, projectID).Scan(&id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.Wrap(apperrors.ErrNotFound, "project_not_found", "project does not exist", err)
		}
		return fmt.Errorf("failed to lock project %s: %w", projectID, err)
	}
	return nil
}

func (r *PgxProjectRepository) adjustAllocation(ctx context.Context, tx pgx.Tx, projectID string, delta decimal.Decimal) error {
	if delta.IsZero() {
		return nil
	}
	_, err := tx.Exec(ctx, `
		UPDATE projects SET extra_budget_allocation = extra_budget_allocation + $2 WHERE project_id = $1;
	`, projectID, delta)
	if err != nil {
		return fmt.Errorf("failed to adjust extra budget allocation: %w", err)
	}
	return nil
}

// CreateItem inserts the item and applies its contribution to the project's
// extra budget allocation in the same transaction.
func (r *PgxProjectRepository) CreateItem(ctx context.Context, item domain.ProjectItem) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	if err := r.lockProject(ctx, tx, item.ProjectID); err != nil {
		return err
	}

	_, err = tx.Exec(ctx, `
		INSERT INTO project_items (project_id, requirement_name, service_category, unit_cost, requirement_type, created_at)
		VALUES ($1, $2, $3, $4, $5, $6);
	`, item.ProjectID, item.RequirementName, item.ServiceCategory, item.UnitCost, item.RequirementType, item.CreatedAt)
	if err != nil {
		if isUniqueViolation(err, "") {
			return apperrors.Wrap(apperrors.ErrConflict, "requirement_exists", "this project already has an item with this requirement name", err)
		}
		return fmt.Errorf("failed to insert project item: %w", err)
	}

	if err := r.adjustAllocation(ctx, tx, item.ProjectID, domain.AllocationDelta(nil, &item)); err != nil {
		return err
	}

	return r.Commit(ctx, tx)
}

// UpdateItem reads the prior row inside the transaction, overwrites the
// item and applies the contribution delta; a zero delta skips the project
// write entirely.
func (r *PgxProjectRepository) UpdateItem(ctx context.Context, item domain.ProjectItem) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	if err := r.lockProject(ctx, tx, item.ProjectID); err != nil {
		return err
	}

	var old domain.ProjectItem
	err = tx.QueryRow(ctx, `
		SELECT project_id, requirement_name, service_category, unit_cost, requirement_type
		FROM project_items
		WHERE project_id = $1 AND requirement_name = $2;
	`, item.ProjectID, item.RequirementName).Scan(&old.ProjectID, &old.RequirementName, &old.ServiceCategory, &old.UnitCost, &old.RequirementType)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.Wrap(apperrors.ErrNotFound, "item_not_found", "project item does not exist", err)
		}
		return fmt.Errorf("failed to read prior project item: %w", err)
	}

	_, err = tx.Exec(ctx, `
		UPDATE project_items
		SET service_category = $3, unit_cost = $4, requirement_type = $5
		WHERE project_id = $1 AND requirement_name = $2;
	`, item.ProjectID, item.RequirementName, item.ServiceCategory, item.UnitCost, item.RequirementType)
	if err != nil {
		return fmt.Errorf("failed to update project item: %w", err)
	}

	if err := r.adjustAllocation(ctx, tx, item.ProjectID, domain.AllocationDelta(&old, &item)); err != nil {
		return err
	}

	return r.Commit(ctx, tx)
}

// DeleteItem deletes the item and removes its contribution from the
// project's allocation in the same transaction.
func (r *PgxProjectRepository) DeleteItem(ctx context.Context, projectID, requirementName string) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	if err := r.lockProject(ctx, tx, projectID); err != nil {
		return err
	}

	var old domain.ProjectItem
	err = tx.QueryRow(ctx, `
		DELETE FROM project_items
		WHERE project_id = $1 AND requirement_name = $2
		RETURNING project_id, requirement_name, unit_cost, requirement_type;
	`, projectID, requirementName).Scan(&old.ProjectID, &old.RequirementName, &old.UnitCost, &old.RequirementType)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.Wrap(apperrors.ErrNotFound, "item_not_found", "project item does not exist", err)
		}
		return fmt.Errorf("failed to delete project item: %w", err)
	}

	if err := r.adjustAllocation(ctx, tx, projectID, domain.AllocationDelta(&old, nil)); err != nil {
		return err
	}

	return r.Commit(ctx, tx)
}
