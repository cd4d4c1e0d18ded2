package pgsql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/opslane/erp_backend/internal/apperrors"
	"github.com/opslane/erp_backend/internal/core/domain"
	portsrepo "github.com/opslane/erp_backend/internal/core/ports/repositories"
)

// pettyCashAccountName identifies the singleton operating cash account.
const pettyCashAccountName = "Petty Cash"

type PgxPayableRepository struct {
	BaseRepository
}

func newPgxPayableRepository(pool *pgxpool.Pool) portsrepo.PayableRepository {
	return &PgxPayableRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.PayableRepository = (*PgxPayableRepository)(nil)

// SavePayable inserts the payable and its optional side-effect rows in one
// transaction. For a petty-cash payable the singleton account row is
// upserted (which also takes its row lock), the expense transaction is
// linked to the payable and the balance is decremented — never as a
// detached step. Any failure rolls back all writes.
func (r *PgxPayableRepository) SavePayable(ctx context.Context, payable domain.Payable, pettyTxn *domain.PettyCashTransaction, payment *domain.PaymentRecord) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	_, err = tx.Exec(ctx, `
		INSERT INTO payables (payable_id, vendor_id, name, type, amount, frequency, start_date, end_date, project_id, is_active, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);
	`,
		payable.PayableID,
		payable.VendorID,
		payable.Name,
		payable.Type,
		payable.Amount,
		payable.Frequency,
		payable.StartDate,
		payable.EndDate,
		payable.ProjectID,
		payable.IsActive,
		payable.CreatedAt,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return apperrors.Wrap(apperrors.ErrNotFound, "reference_not_found", "referenced vendor or project does not exist", err)
		}
		return fmt.Errorf("failed to insert payable: %w", err)
	}

	if pettyTxn != nil {
		// Upsert keeps a single account row and locks it for the balance
		// adjustment below. An existing row keeps its original account ID,
		// so the transaction insert uses the returned account, not the
		// candidate ID from the caller.
		var account domain.PettyCashAccount
		err = tx.QueryRow(ctx, `
			INSERT INTO petty_cash_accounts (account_id, name, balance, created_at)
			VALUES ($1, $2, 0, $3)
			ON CONFLICT (name) DO UPDATE SET name = EXCLUDED.name
			RETURNING account_id, name, balance, created_at;
		`, pettyTxn.AccountID, pettyCashAccountName, pettyTxn.CreatedAt).Scan(
			&account.AccountID, &account.Name, &account.Balance, &account.CreatedAt,
		)
		if err != nil {
			return fmt.Errorf("failed to resolve petty cash account: %w", err)
		}

		_, err = tx.Exec(ctx, `
			INSERT INTO petty_cash_transactions (transaction_id, account_id, payable_id, amount, created_at)
			VALUES ($1, $2, $3, $4, $5);
		`, pettyTxn.TransactionID, account.AccountID, payable.PayableID, pettyTxn.Amount, pettyTxn.CreatedAt)
		if err != nil {
			return fmt.Errorf("failed to insert petty cash transaction: %w", err)
		}

		_, err = tx.Exec(ctx, `
			UPDATE petty_cash_accounts SET balance = balance - $2 WHERE account_id = $1;
		`, account.AccountID, pettyTxn.Amount)
		if err != nil {
			return fmt.Errorf("failed to decrement petty cash balance: %w", err)
		}
	}

	if payment != nil {
		_, err = tx.Exec(ctx, `
			INSERT INTO payable_payments (payment_id, payable_id, method, reference_no, status, paid_date, created_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7);
		`,
			payment.PaymentID,
			payable.PayableID,
			payment.Method,
			payment.ReferenceNo,
			payment.Status,
			payment.PaidDate,
			payment.CreatedAt,
		)
		if err != nil {
			return fmt.Errorf("failed to insert payment record: %w", err)
		}
	}

	return r.Commit(ctx, tx)
}

func (r *PgxPayableRepository) ListPayables(ctx context.Context) ([]domain.Payable, error) {
	query := `
		SELECT p.payable_id, p.vendor_id, p.name, p.type, p.amount, p.frequency,
		       p.start_date, p.end_date, p.project_id, p.is_active, p.created_at,
		       COALESCE(v.name, ''), COALESCE(pr.name, '')
		FROM payables p
		LEFT JOIN vendors v ON v.vendor_id = p.vendor_id
		LEFT JOIN projects pr ON pr.project_id = p.project_id
		ORDER BY p.created_at DESC;
	`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query payables: %w", err)
	}
	defer rows.Close()

	payables := []domain.Payable{}
	for rows.Next() {
		var p domain.Payable
		err := rows.Scan(
			&p.PayableID,
			&p.VendorID,
			&p.Name,
			&p.Type,
			&p.Amount,
			&p.Frequency,
			&p.StartDate,
			&p.EndDate,
			&p.ProjectID,
			&p.IsActive,
			&p.CreatedAt,
			&p.VendorName,
			&p.ProjectName,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan payable row: %w", err)
		}
		payables = append(payables, p)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating payable rows: %w", rows.Err())
	}
	return payables, nil
}
