package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/opslane/erp_backend/internal/apperrors"
	"github.com/opslane/erp_backend/internal/core/domain"
	portsrepo "github.com/opslane/erp_backend/internal/core/ports/repositories"
)

type PgxAccountRepository struct {
	BaseRepository
}

func newPgxAccountRepository(pool *pgxpool.Pool) portsrepo.AccountRepository {
	return &PgxAccountRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.AccountRepository = (*PgxAccountRepository)(nil)

// CreateAccountWithBank resolves the bank row (lookup by exact name and
// branch, treating a missing branch as the empty string, inserting when
// absent) and inserts the account, all inside one transaction. A duplicate
// account number rolls back everything including a freshly inserted bank
// row.
func (r *PgxAccountRepository) CreateAccountWithBank(ctx context.Context, bank domain.Bank, account domain.BankAccount) (*domain.BankAccount, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer r.Rollback(ctx, tx)

	var bankID string
	err = tx.QueryRow(ctx, `
		SELECT bank_id FROM banks
		WHERE name = $1 AND COALESCE(branch, '') = $2;
	`, bank.Name, bank.Branch).Scan(&bankID)
	if errors.Is(err, pgx.ErrNoRows) {
		insertErr := tx.QueryRow(ctx, `
			INSERT INTO banks (bank_id, name, branch, created_at)
			VALUES ($1, $2, $3, $4)
			RETURNING bank_id;
		`, bank.BankID, bank.Name, bank.Branch, bank.CreatedAt).Scan(&bankID)
		if insertErr != nil {
			// A concurrent creator may have won the (name, branch) race.
			if isUniqueViolation(insertErr, "") {
				return nil, apperrors.Wrap(apperrors.ErrConflict, "bank_exists", "bank was created concurrently", insertErr)
			}
			return nil, fmt.Errorf("failed to insert bank: %w", insertErr)
		}
	} else if err != nil {
		return nil, fmt.Errorf("failed to look up bank: %w", err)
	}

	account.BankID = bankID
	_, err = tx.Exec(ctx, `
		INSERT INTO bank_accounts (account_id, bank_id, account_number, account_name, opening_balance, current_balance, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7);
	`,
		account.AccountID,
		account.BankID,
		account.AccountNumber,
		account.AccountName,
		account.OpeningBalance,
		account.CurrentBalance,
		account.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err, "bank_accounts_account_number_key") {
			return nil, apperrors.Wrap(apperrors.ErrConflict, "account_number_exists", "an account with this number already exists", err)
		}
		return nil, fmt.Errorf("failed to insert bank account: %w", err)
	}

	if err := r.Commit(ctx, tx); err != nil {
		return nil, err
	}

	account.BankName = bank.Name
	account.BankBranch = bank.Branch
	return &account, nil
}

func (r *PgxAccountRepository) ListAccounts(ctx context.Context) ([]domain.BankAccount, error) {
	query := `
		SELECT a.account_id, a.bank_id, a.account_number, a.account_name,
		       a.opening_balance, a.current_balance, a.created_at,
		       b.name, COALESCE(b.branch, '')
		FROM bank_accounts a
		JOIN banks b ON b.bank_id = a.bank_id
		ORDER BY a.created_at DESC;
	`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query bank accounts: %w", err)
	}
	defer rows.Close()

	accounts := []domain.BankAccount{}
	for rows.Next() {
		var a domain.BankAccount
		err := rows.Scan(
			&a.AccountID,
			&a.BankID,
			&a.AccountNumber,
			&a.AccountName,
			&a.OpeningBalance,
			&a.CurrentBalance,
			&a.CreatedAt,
			&a.BankName,
			&a.BankBranch,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan bank account row: %w", err)
		}
		accounts = append(accounts, a)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating bank account rows: %w", rows.Err())
	}
	return accounts, nil
}

func (r *PgxAccountRepository) FindAccountByID(ctx context.Context, accountID string) (*domain.BankAccount, error) {
	query := `
		SELECT account_id, bank_id, account_number, account_name, opening_balance, current_balance, created_at
		FROM bank_accounts
		WHERE account_id = $1;
	`
	var a domain.BankAccount
	err := r.Pool.QueryRow(ctx, query, accountID).Scan(
		&a.AccountID,
		&a.BankID,
		&a.AccountNumber,
		&a.AccountName,
		&a.OpeningBalance,
		&a.CurrentBalance,
		&a.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find bank account by ID %s: %w", accountID, err)
	}
	return &a, nil
}
