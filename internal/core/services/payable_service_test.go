package services_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/opslane/erp_backend/internal/apperrors"
	"github.com/opslane/erp_backend/internal/core/domain"
	portssvc "github.com/opslane/erp_backend/internal/core/ports/services"
	"github.com/opslane/erp_backend/internal/core/services"
	"github.com/opslane/erp_backend/internal/dto"
)

// MockPayableRepository is a mock type for the PayableRepository interface
type MockPayableRepository struct {
	mock.Mock
}

func (m *MockPayableRepository) SavePayable(ctx context.Context, payable domain.Payable, pettyTxn *domain.PettyCashTransaction, payment *domain.PaymentRecord) error {
	args := m.Called(ctx, payable, pettyTxn, payment)
	return args.Error(0)
}

func (m *MockPayableRepository) ListPayables(ctx context.Context) ([]domain.Payable, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Payable), args.Error(1)
}

// --- Test Suite Setup ---

type PayableServiceTestSuite struct {
	suite.Suite
	mockRepo *MockPayableRepository
	service  portssvc.PayableSvcFacade
}

func (suite *PayableServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockPayableRepository)
	suite.service = services.NewPayableService(suite.mockRepo)
}

// --- Test Cases ---

func (suite *PayableServiceTestSuite) TestCreatePayable_OneTime_Success() {
	ctx := context.Background()
	amount := decimal.NewFromInt(1500)
	req := dto.CreatePayableRequest{
		VendorID: "vendor-1",
		Name:     "Office rent",
		Type:     "one_time",
		Amount:   &amount,
	}

	var gotPetty *domain.PettyCashTransaction
	var gotPayment *domain.PaymentRecord
	suite.mockRepo.On("SavePayable", ctx, mock.AnythingOfType("domain.Payable"), mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			gotPetty, _ = args.Get(2).(*domain.PettyCashTransaction)
			gotPayment, _ = args.Get(3).(*domain.PaymentRecord)
		}).Return(nil).Once()

	payable, err := suite.service.CreatePayable(ctx, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(payable)
	suite.NotEmpty(payable.PayableID)
	suite.Equal("Office rent", payable.Name)
	suite.Equal(domain.PayableOneTime, payable.Type)
	suite.Require().NotNil(payable.VendorID)
	suite.Equal("vendor-1", *payable.VendorID)
	suite.True(payable.IsActive)
	// One-time payables touch neither petty cash nor payments.
	suite.Nil(gotPetty)
	suite.Nil(gotPayment)

	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *PayableServiceTestSuite) TestCreatePayable_PettyCash_DefaultsNameAndRecordsTransaction() {
	ctx := context.Background()
	amount := decimal.NewFromInt(200)
	req := dto.CreatePayableRequest{
		Type:   "petty_cash",
		Amount: &amount,
	}

	var gotPetty *domain.PettyCashTransaction
	suite.mockRepo.On("SavePayable", ctx, mock.AnythingOfType("domain.Payable"), mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			gotPetty, _ = args.Get(2).(*domain.PettyCashTransaction)
		}).Return(nil).Once()

	payable, err := suite.service.CreatePayable(ctx, req)

	suite.Require().NoError(err)
	suite.Equal(domain.PettyCashDefaultName, payable.Name)
	suite.Nil(payable.VendorID)
	suite.Require().NotNil(gotPetty)
	suite.Equal(payable.PayableID, gotPetty.PayableID)
	suite.True(gotPetty.Amount.Equal(amount))
	// The transaction carries a fresh account ID for the account upsert;
	// an empty ID would become the singleton account's primary key.
	suite.NotEmpty(gotPetty.TransactionID)
	suite.NotEmpty(gotPetty.AccountID)

	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *PayableServiceTestSuite) TestCreatePayable_PaymentStatusFromReferenceNo() {
	ctx := context.Background()
	amount := decimal.NewFromInt(500)

	// With a reference number the payment is Paid.
	reqPaid := dto.CreatePayableRequest{
		VendorID:           "vendor-1",
		Name:               "Hosting",
		Type:               "one_time",
		Amount:             &amount,
		PaymentMethod:      "bank_transfer",
		PaymentReferenceNo: "TXN-42",
		PaymentDate:        "2025-06-15",
	}

	var gotPayment *domain.PaymentRecord
	suite.mockRepo.On("SavePayable", ctx, mock.AnythingOfType("domain.Payable"), mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			gotPayment, _ = args.Get(3).(*domain.PaymentRecord)
		}).Return(nil).Once()

	_, err := suite.service.CreatePayable(ctx, reqPaid)
	suite.Require().NoError(err)
	suite.Require().NotNil(gotPayment)
	suite.Equal(domain.PaymentPaid, gotPayment.Status)
	suite.Require().NotNil(gotPayment.PaidDate)
	suite.Equal("2025-06-15", gotPayment.PaidDate.Format("2006-01-02"))

	// Without a reference number it stays Pending.
	reqPending := reqPaid
	reqPending.PaymentReferenceNo = ""
	suite.mockRepo.On("SavePayable", ctx, mock.AnythingOfType("domain.Payable"), mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			gotPayment, _ = args.Get(3).(*domain.PaymentRecord)
		}).Return(nil).Once()

	_, err = suite.service.CreatePayable(ctx, reqPending)
	suite.Require().NoError(err)
	suite.Require().NotNil(gotPayment)
	suite.Equal(domain.PaymentPending, gotPayment.Status)
	suite.Nil(gotPayment.ReferenceNo)

	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *PayableServiceTestSuite) TestCreatePayable_InvalidType() {
	ctx := context.Background()
	amount := decimal.NewFromInt(10)
	req := dto.CreatePayableRequest{
		VendorID: "vendor-1",
		Name:     "Bad",
		Type:     "quarterly",
		Amount:   &amount,
	}

	payable, err := suite.service.CreatePayable(ctx, req)

	suite.Require().Error(err)
	suite.Nil(payable)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Equal("invalid_payable_type", apperrors.CodeOf(err))
	suite.mockRepo.AssertNotCalled(suite.T(), "SavePayable")
}

func (suite *PayableServiceTestSuite) TestCreatePayable_MissingVendorForNonPettyCash() {
	ctx := context.Background()
	amount := decimal.NewFromInt(10)
	req := dto.CreatePayableRequest{
		Name:   "No vendor",
		Type:   "one_time",
		Amount: &amount,
	}

	_, err := suite.service.CreatePayable(ctx, req)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Equal("vendor_required", apperrors.CodeOf(err))
	suite.mockRepo.AssertNotCalled(suite.T(), "SavePayable")
}

func (suite *PayableServiceTestSuite) TestCreatePayable_NonPositiveAmount() {
	ctx := context.Background()
	amount := decimal.Zero
	req := dto.CreatePayableRequest{
		VendorID: "vendor-1",
		Name:     "Free",
		Type:     "one_time",
		Amount:   &amount,
	}

	_, err := suite.service.CreatePayable(ctx, req)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Equal("invalid_amount", apperrors.CodeOf(err))
	suite.mockRepo.AssertNotCalled(suite.T(), "SavePayable")
}

func (suite *PayableServiceTestSuite) TestCreatePayable_RecurringRequiresFrequency() {
	ctx := context.Background()
	amount := decimal.NewFromInt(99)
	req := dto.CreatePayableRequest{
		VendorID: "vendor-1",
		Name:     "Subscription",
		Type:     "recurring",
		Amount:   &amount,
	}

	_, err := suite.service.CreatePayable(ctx, req)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Equal("frequency_required", apperrors.CodeOf(err))
	suite.mockRepo.AssertNotCalled(suite.T(), "SavePayable")
}

func TestPayableServiceTestSuite(t *testing.T) {
	suite.Run(t, new(PayableServiceTestSuite))
}
