package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/opslane/erp_backend/internal/apperrors"
	"github.com/opslane/erp_backend/internal/core/domain"
	portssvc "github.com/opslane/erp_backend/internal/core/ports/services"
	"github.com/opslane/erp_backend/internal/core/services"
	"github.com/opslane/erp_backend/internal/dto"
)

// MockDebitCardRepository is a mock type for the DebitCardRepository interface
type MockDebitCardRepository struct {
	mock.Mock
}

func (m *MockDebitCardRepository) SaveCard(ctx context.Context, card domain.DebitCard) error {
	args := m.Called(ctx, card)
	return args.Error(0)
}

func (m *MockDebitCardRepository) ListCards(ctx context.Context) ([]domain.DebitCard, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.DebitCard), args.Error(1)
}

func (m *MockDebitCardRepository) DeactivateCard(ctx context.Context, cardID string) error {
	args := m.Called(ctx, cardID)
	return args.Error(0)
}

// --- Test Suite Setup ---

type DebitCardServiceTestSuite struct {
	suite.Suite
	mockRepo *MockDebitCardRepository
	service  portssvc.DebitCardSvcFacade
}

func (suite *DebitCardServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockDebitCardRepository)
	suite.service = services.NewDebitCardService(suite.mockRepo)
}

// --- Test Cases ---

func (suite *DebitCardServiceTestSuite) TestCreateCard_FullDate() {
	ctx := context.Background()
	req := dto.CreateDebitCardRequest{
		AccountID:  uuid.NewString(),
		LastFour:   "4242",
		HolderName: "Jordan Oak",
		Expiry:     "2027-09-30",
	}

	suite.mockRepo.On("SaveCard", ctx, mock.AnythingOfType("domain.DebitCard")).Return(nil).Once()

	card, err := suite.service.CreateCard(ctx, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(card)
	suite.NotEmpty(card.CardID)
	suite.Equal("4242", card.LastFour)
	suite.True(card.IsActive)
	suite.Equal(time.Date(2027, 9, 30, 0, 0, 0, 0, time.UTC), card.ExpiryDate)

	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *DebitCardServiceTestSuite) TestCreateCard_MonthOnlyNormalizesToFirstDay() {
	ctx := context.Background()
	req := dto.CreateDebitCardRequest{
		AccountID:  uuid.NewString(),
		LastFour:   "1111",
		HolderName: "Jordan Oak",
		Expiry:     "2027-09",
	}

	suite.mockRepo.On("SaveCard", ctx, mock.AnythingOfType("domain.DebitCard")).Return(nil).Once()

	card, err := suite.service.CreateCard(ctx, req)

	suite.Require().NoError(err)
	suite.Equal(time.Date(2027, 9, 1, 0, 0, 0, 0, time.UTC), card.ExpiryDate)

	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *DebitCardServiceTestSuite) TestCreateCard_InvalidExpiry() {
	ctx := context.Background()
	req := dto.CreateDebitCardRequest{
		AccountID:  uuid.NewString(),
		LastFour:   "1111",
		HolderName: "Jordan Oak",
		Expiry:     "09/27",
	}

	card, err := suite.service.CreateCard(ctx, req)

	suite.Require().Error(err)
	suite.Nil(card)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Equal("invalid_expiry_date", apperrors.CodeOf(err))
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveCard")
}

func (suite *DebitCardServiceTestSuite) TestDeactivateCard_NotFound() {
	ctx := context.Background()
	cardID := uuid.NewString()

	suite.mockRepo.On("DeactivateCard", ctx, cardID).Return(apperrors.ErrNotFound).Once()

	err := suite.service.DeactivateCard(ctx, cardID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockRepo.AssertExpectations(suite.T())
}

func TestDebitCardServiceTestSuite(t *testing.T) {
	suite.Run(t, new(DebitCardServiceTestSuite))
}
