package services

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/opslane/erp_backend/internal/apperrors"
	"github.com/opslane/erp_backend/internal/core/domain"
	portsrepo "github.com/opslane/erp_backend/internal/core/ports/repositories"
	portssvc "github.com/opslane/erp_backend/internal/core/ports/services"
	"github.com/opslane/erp_backend/internal/dto"
	"github.com/opslane/erp_backend/internal/utils"
)

type debitCardService struct {
	cardRepo portsrepo.DebitCardRepository
}

// NewDebitCardService creates a new debit card service.
func NewDebitCardService(cardRepo portsrepo.DebitCardRepository) portssvc.DebitCardSvcFacade {
	return &debitCardService{cardRepo: cardRepo}
}

var _ portssvc.DebitCardSvcFacade = (*debitCardService)(nil)

func (s *debitCardService) ListCards(ctx context.Context) ([]domain.DebitCard, error) {
	return s.cardRepo.ListCards(ctx)
}

func (s *debitCardService) CreateCard(ctx context.Context, req dto.CreateDebitCardRequest) (*domain.DebitCard, error) {
	expiry, err := utils.ParseMonthOrDate(req.Expiry)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrValidation, "invalid_expiry_date", "expiry must be YYYY-MM-DD or YYYY-MM", err)
	}

	card := domain.DebitCard{
		CardID:     uuid.NewString(),
		AccountID:  req.AccountID,
		LastFour:   req.LastFour,
		HolderName: req.HolderName,
		ExpiryDate: expiry,
		IsActive:   true,
		CreatedAt:  time.Now().UTC(),
	}
	if err := s.cardRepo.SaveCard(ctx, card); err != nil {
		return nil, err
	}
	return &card, nil
}

func (s *debitCardService) DeactivateCard(ctx context.Context, cardID string) error {
	return s.cardRepo.DeactivateCard(ctx, cardID)
}
