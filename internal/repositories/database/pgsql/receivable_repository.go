package pgsql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/opslane/erp_backend/internal/apperrors"
	"github.com/opslane/erp_backend/internal/core/domain"
	portsrepo "github.com/opslane/erp_backend/internal/core/ports/repositories"
)

type PgxReceivableRepository struct {
	BaseRepository
}

func newPgxReceivableRepository(pool *pgxpool.Pool) portsrepo.ReceivableRepository {
	return &PgxReceivableRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.ReceivableRepository = (*PgxReceivableRepository)(nil)

func (r *PgxReceivableRepository) SaveReceivable(ctx context.Context, receivable domain.Receivable) error {
	query := `
		INSERT INTO receivables (receivable_id, payer_name, name, type, amount, frequency, start_date, end_date, project_id, account_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);
	`
	_, err := r.Pool.Exec(ctx, query,
		receivable.ReceivableID,
		receivable.PayerName,
		receivable.Name,
		receivable.Type,
		receivable.Amount,
		receivable.Frequency,
		receivable.StartDate,
		receivable.EndDate,
		receivable.ProjectID,
		receivable.AccountID,
		receivable.CreatedAt,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return apperrors.Wrap(apperrors.ErrNotFound, "reference_not_found", "referenced project or bank account does not exist", err)
		}
		return fmt.Errorf("failed to save receivable: %w", err)
	}
	return nil
}

func (r *PgxReceivableRepository) ListReceivables(ctx context.Context) ([]domain.Receivable, error) {
	query := `
		SELECT rc.receivable_id, rc.payer_name, rc.name, rc.type, rc.amount, rc.frequency,
		       rc.start_date, rc.end_date, rc.project_id, rc.account_id, rc.created_at,
		       COALESCE(pr.name, ''), COALESCE(a.account_number, '')
		FROM receivables rc
		LEFT JOIN projects pr ON pr.project_id = rc.project_id
		LEFT JOIN bank_accounts a ON a.account_id = rc.account_id
		ORDER BY rc.created_at DESC;
	`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query receivables: %w", err)
	}
	defer rows.Close()

	receivables := []domain.Receivable{}
	for rows.Next() {
		var rc domain.Receivable
		err := rows.Scan(
			&rc.ReceivableID,
			&rc.PayerName,
			&rc.Name,
			&rc.Type,
			&rc.Amount,
			&rc.Frequency,
			&rc.StartDate,
			&rc.EndDate,
			&rc.ProjectID,
			&rc.AccountID,
			&rc.CreatedAt,
			&rc.ProjectName,
			&rc.AccountNumber,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan receivable row: %w", err)
		}
		receivables = append(receivables, rc)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating receivable rows: %w", rows.Err())
	}
	return receivables, nil
}
