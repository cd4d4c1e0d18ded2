package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/opslane/erp_backend/internal/apperrors"
	"github.com/opslane/erp_backend/internal/core/domain"
	portsrepo "github.com/opslane/erp_backend/internal/core/ports/repositories"
	portssvc "github.com/opslane/erp_backend/internal/core/ports/services"
	"github.com/opslane/erp_backend/internal/dto"
	"github.com/opslane/erp_backend/internal/middleware"
	"github.com/opslane/erp_backend/internal/utils"
)

type payableService struct {
	payableRepo portsrepo.PayableRepository
}

// NewPayableService creates a new payable service.
func NewPayableService(payableRepo portsrepo.PayableRepository) portssvc.PayableSvcFacade {
	return &payableService{payableRepo: payableRepo}
}

var _ portssvc.PayableSvcFacade = (*payableService)(nil)

func (s *payableService) ListPayables(ctx context.Context) ([]domain.Payable, error) {
	return s.payableRepo.ListPayables(ctx)
}

// CreatePayable validates the request, builds the payable plus its optional
// petty-cash transaction and payment record, and persists them in one shot.
func (s *payableService) CreatePayable(ctx context.Context, req dto.CreatePayableRequest) (*domain.Payable, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	payableType := domain.PayableType(req.Type)
	switch payableType {
	case domain.PayableOneTime, domain.PayableRecurring, domain.PayablePettyCash:
	default:
		return nil, apperrors.New(apperrors.ErrValidation, "invalid_payable_type", "type must be one_time, recurring or petty_cash")
	}

	if req.Amount.Sign() <= 0 {
		return nil, apperrors.New(apperrors.ErrValidation, "invalid_amount", "amount must be positive")
	}

	name := req.Name
	var vendorID *string
	if payableType == domain.PayablePettyCash {
		if name == "" {
			name = domain.PettyCashDefaultName
		}
	} else {
		if req.VendorID == "" {
			return nil, apperrors.New(apperrors.ErrValidation, "vendor_required", "vendorID is required for non petty-cash payables")
		}
		if name == "" {
			return nil, apperrors.New(apperrors.ErrValidation, "name_required", "name is required for non petty-cash payables")
		}
		vendorID = &req.VendorID
	}

	if payableType == domain.PayableRecurring && req.Frequency == "" {
		return nil, apperrors.New(apperrors.ErrValidation, "frequency_required", "frequency is required for recurring payables")
	}

	startDate, err := optionalDate(req.StartDate)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrValidation, "invalid_start_date", "startDate must be YYYY-MM-DD", err)
	}
	endDate, err := optionalDate(req.EndDate)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrValidation, "invalid_end_date", "endDate must be YYYY-MM-DD", err)
	}

	now := time.Now().UTC()
	payable := domain.Payable{
		PayableID: uuid.NewString(),
		VendorID:  vendorID,
		Name:      name,
		Type:      payableType,
		Amount:    *req.Amount,
		Frequency: optionalString(req.Frequency),
		StartDate: startDate,
		EndDate:   endDate,
		ProjectID: optionalString(req.ProjectID),
		IsActive:  true,
		CreatedAt: now,
	}

	var pettyTxn *domain.PettyCashTransaction
	if payableType == domain.PayablePettyCash {
		// The account ID only takes effect when the upsert creates the
		// singleton account; an existing row keeps its ID.
		pettyTxn = &domain.PettyCashTransaction{
			TransactionID: uuid.NewString(),
			AccountID:     uuid.NewString(),
			PayableID:     payable.PayableID,
			Amount:        *req.Amount,
			CreatedAt:     now,
		}
	}

	var payment *domain.PaymentRecord
	if req.PaymentMethod != "" || req.PaymentReferenceNo != "" || req.PaymentDate != "" {
		paidDate, err := optionalDate(req.PaymentDate)
		if err != nil {
			return nil, apperrors.Wrap(apperrors.ErrValidation, "invalid_payment_date", "paymentDate must be YYYY-MM-DD", err)
		}
		status := domain.PaymentPending
		if req.PaymentReferenceNo != "" {
			status = domain.PaymentPaid
		}
		payment = &domain.PaymentRecord{
			PaymentID:   uuid.NewString(),
			PayableID:   payable.PayableID,
			Method:      req.PaymentMethod,
			ReferenceNo: optionalString(req.PaymentReferenceNo),
			Status:      status,
			PaidDate:    paidDate,
			CreatedAt:   now,
		}
	}

	if err := s.payableRepo.SavePayable(ctx, payable, pettyTxn, payment); err != nil {
		return nil, err
	}

	logger.Info("Payable created",
		slog.String("payable_id", payable.PayableID),
		slog.String("type", string(payable.Type)),
		slog.Bool("petty_cash", pettyTxn != nil),
		slog.Bool("payment_recorded", payment != nil))
	return &payable, nil
}

func optionalString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func optionalDate(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	t, err := utils.ParseDate(s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
