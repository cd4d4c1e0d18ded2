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
)

type receivableService struct {
	receivableRepo portsrepo.ReceivableRepository
}

// NewReceivableService creates a new receivable service.
func NewReceivableService(receivableRepo portsrepo.ReceivableRepository) portssvc.ReceivableSvcFacade {
	return &receivableService{receivableRepo: receivableRepo}
}

var _ portssvc.ReceivableSvcFacade = (*receivableService)(nil)

func (s *receivableService) ListReceivables(ctx context.Context) ([]domain.Receivable, error) {
	return s.receivableRepo.ListReceivables(ctx)
}

func (s *receivableService) CreateReceivable(ctx context.Context, req dto.CreateReceivableRequest) (*domain.Receivable, error) {
	receivableType := domain.ReceivableType(req.Type)
	switch receivableType {
	case domain.ReceivableOneTime, domain.ReceivableRecurring:
	default:
		return nil, apperrors.New(apperrors.ErrValidation, "invalid_receivable_type", "type must be one_time or recurring")
	}

	if req.Amount.Sign() <= 0 {
		return nil, apperrors.New(apperrors.ErrValidation, "invalid_amount", "amount must be positive")
	}

	if receivableType == domain.ReceivableRecurring && req.Frequency == "" {
		return nil, apperrors.New(apperrors.ErrValidation, "frequency_required", "frequency is required for recurring receivables")
	}

	startDate, err := optionalDate(req.StartDate)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrValidation, "invalid_start_date", "startDate must be YYYY-MM-DD", err)
	}
	endDate, err := optionalDate(req.EndDate)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrValidation, "invalid_end_date", "endDate must be YYYY-MM-DD", err)
	}

	receivable := domain.Receivable{
		ReceivableID: uuid.NewString(),
		PayerName:    req.PayerName,
		Name:         req.Name,
		Type:         receivableType,
		Amount:       *req.Amount,
		Frequency:    optionalString(req.Frequency),
		StartDate:    startDate,
		EndDate:      endDate,
		ProjectID:    optionalString(req.ProjectID),
		AccountID:    optionalString(req.AccountID),
		CreatedAt:    time.Now().UTC(),
	}
	if err := s.receivableRepo.SaveReceivable(ctx, receivable); err != nil {
		return nil, err
	}
	return &receivable, nil
}
