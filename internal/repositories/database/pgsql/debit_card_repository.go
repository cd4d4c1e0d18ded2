package pgsql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/opslane/erp_backend/internal/apperrors"
	"github.com/opslane/erp_backend/internal/core/domain"
	portsrepo "github.com/opslane/erp_backend/internal/core/ports/repositories"
)

type PgxDebitCardRepository struct {
	BaseRepository
}

func newPgxDebitCardRepository(pool *pgxpool.Pool) portsrepo.DebitCardRepository {
	return &PgxDebitCardRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.DebitCardRepository = (*PgxDebitCardRepository)(nil)

func (r *PgxDebitCardRepository) SaveCard(ctx context.Context, card domain.DebitCard) error {
	query := `
		INSERT INTO debit_cards (card_id, account_id, last_four, holder_name, expiry_date, is_active, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7);
	`
	_, err := r.Pool.Exec(ctx, query,
		card.CardID,
		card.AccountID,
		card.LastFour,
		card.HolderName,
		card.ExpiryDate,
		card.IsActive,
		card.CreatedAt,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return apperrors.Wrap(apperrors.ErrNotFound, "account_not_found", "referenced bank account does not exist", err)
		}
		return fmt.Errorf("failed to save debit card: %w", err)
	}
	return nil
}

func (r *PgxDebitCardRepository) ListCards(ctx context.Context) ([]domain.DebitCard, error) {
	query := `
		SELECT c.card_id, c.account_id, c.last_four, c.holder_name, c.expiry_date, c.is_active, c.created_at,
		       a.account_number
		FROM debit_cards c
		JOIN bank_accounts a ON a.account_id = c.account_id
		ORDER BY c.created_at DESC;
	`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query debit cards: %w", err)
	}
	defer rows.Close()

	cards := []domain.DebitCard{}
	for rows.Next() {
		var c domain.DebitCard
		err := rows.Scan(
			&c.CardID,
			&c.AccountID,
			&c.LastFour,
			&c.HolderName,
			&c.ExpiryDate,
			&c.IsActive,
			&c.CreatedAt,
			&c.AccountNumber,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan debit card row: %w", err)
		}
		cards = append(cards, c)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating debit card rows: %w", rows.Err())
	}
	return cards, nil
}

func (r *PgxDebitCardRepository) DeactivateCard(ctx context.Context, cardID string) error {
	tag, err := r.Pool.Exec(ctx, `UPDATE debit_cards SET is_active = FALSE WHERE card_id = $1;`, cardID)
	if err != nil {
		return fmt.Errorf("failed to deactivate debit card %s: %w", cardID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
