package services

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/opslane/erp_backend/internal/apperrors"
	"github.com/opslane/erp_backend/internal/core/domain"
	portsrepo "github.com/opslane/erp_backend/internal/core/ports/repositories"
	portssvc "github.com/opslane/erp_backend/internal/core/ports/services"
	"github.com/opslane/erp_backend/internal/dto"
	"github.com/opslane/erp_backend/internal/middleware"
)

type accountService struct {
	accountRepo portsrepo.AccountRepository
}

// NewAccountService creates a new account service.
func NewAccountService(accountRepo portsrepo.AccountRepository) portssvc.AccountSvcFacade {
	return &accountService{accountRepo: accountRepo}
}

var _ portssvc.AccountSvcFacade = (*accountService)(nil)

func (s *accountService) ListAccounts(ctx context.Context) ([]domain.BankAccount, error) {
	return s.accountRepo.ListAccounts(ctx)
}

func (s *accountService) GetAccount(ctx context.Context, accountID string) (*domain.BankAccount, error) {
	account, err := s.accountRepo.FindAccountByID(ctx, accountID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.New(apperrors.ErrNotFound, "account_not_found", "bank account does not exist")
		}
		return nil, err
	}
	return account, nil
}

// CreateAccount resolves the bank by (name, branch) — creating it when
// unseen, a missing branch being equivalent to the empty string — and
// inserts the account atomically with it.
func (s *accountService) CreateAccount(ctx context.Context, req dto.CreateAccountRequest) (*domain.BankAccount, error) {
	logger := middleware.GetLoggerFromCtx(ctx)
	now := time.Now().UTC()

	bank := domain.Bank{
		BankID:    uuid.NewString(),
		Name:      req.BankName,
		Branch:    req.BankBranch,
		CreatedAt: now,
	}
	account := domain.BankAccount{
		AccountID:      uuid.NewString(),
		AccountNumber:  req.AccountNumber,
		AccountName:    req.AccountName,
		OpeningBalance: *req.OpeningBalance,
		CurrentBalance: *req.OpeningBalance,
		CreatedAt:      now,
	}

	created, err := s.accountRepo.CreateAccountWithBank(ctx, bank, account)
	if err != nil {
		return nil, err
	}

	logger.Info("Bank account created", slog.String("account_id", created.AccountID), slog.String("bank", bank.Name))
	return created, nil
}
