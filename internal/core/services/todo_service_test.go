package services_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/opslane/erp_backend/internal/apperrors"
	"github.com/opslane/erp_backend/internal/core/domain"
	portssvc "github.com/opslane/erp_backend/internal/core/ports/services"
	"github.com/opslane/erp_backend/internal/core/services"
	"github.com/opslane/erp_backend/internal/dto"
)

// MockTodoRepository is a mock type for the TodoRepository interface
type MockTodoRepository struct {
	mock.Mock
}

func (m *MockTodoRepository) SaveTodo(ctx context.Context, todo domain.Todo) error {
	args := m.Called(ctx, todo)
	return args.Error(0)
}

func (m *MockTodoRepository) ListTodosForViewer(ctx context.Context, viewerID string) ([]domain.Todo, error) {
	args := m.Called(ctx, viewerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Todo), args.Error(1)
}

func (m *MockTodoRepository) FindTodoByID(ctx context.Context, todoID string) (*domain.Todo, error) {
	args := m.Called(ctx, todoID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Todo), args.Error(1)
}

func (m *MockTodoRepository) FindShare(ctx context.Context, todoID, userID string) (*domain.Share, error) {
	args := m.Called(ctx, todoID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Share), args.Error(1)
}

func (m *MockTodoRepository) UpdateTodo(ctx context.Context, todo domain.Todo) error {
	args := m.Called(ctx, todo)
	return args.Error(0)
}

func (m *MockTodoRepository) DeleteTodoOwned(ctx context.Context, todoID, ownerID string) error {
	args := m.Called(ctx, todoID, ownerID)
	return args.Error(0)
}

func (m *MockTodoRepository) UpsertShare(ctx context.Context, share domain.Share) (*domain.Share, error) {
	args := m.Called(ctx, share)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Share), args.Error(1)
}

func (m *MockTodoRepository) DeleteShare(ctx context.Context, todoID, shareID string) error {
	args := m.Called(ctx, todoID, shareID)
	return args.Error(0)
}

// --- Test Suite Setup ---

type TodoServiceTestSuite struct {
	suite.Suite
	mockRepo *MockTodoRepository
	service  portssvc.TodoSvcFacade

	ownerID string
}

func (suite *TodoServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockTodoRepository)
	suite.service = services.NewTodoService(suite.mockRepo)
	suite.ownerID = uuid.NewString()
}

// --- Test Cases ---

func (suite *TodoServiceTestSuite) TestCreateTodo_DefaultsStatusAndPriority() {
	ctx := context.Background()
	req := dto.CreateTodoRequest{Title: "File VAT return"}

	suite.mockRepo.On("SaveTodo", ctx, mock.AnythingOfType("domain.Todo")).Return(nil).Once()

	todo, err := suite.service.CreateTodo(ctx, suite.ownerID, req)

	suite.Require().NoError(err)
	suite.Equal(domain.TodoPending, todo.Status)
	suite.Equal(domain.PriorityMedium, todo.Priority)
	suite.Nil(todo.DueDate)
	suite.Equal(suite.ownerID, todo.OwnerID)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *TodoServiceTestSuite) TestCreateTodo_ParsesDueDate() {
	ctx := context.Background()
	req := dto.CreateTodoRequest{Title: "Renew insurance", Status: "in_progress", Priority: "high", DueDate: "2025-12-01"}

	suite.mockRepo.On("SaveTodo", ctx, mock.AnythingOfType("domain.Todo")).Return(nil).Once()

	todo, err := suite.service.CreateTodo(ctx, suite.ownerID, req)

	suite.Require().NoError(err)
	suite.Equal(domain.TodoInProgress, todo.Status)
	suite.Equal(domain.PriorityHigh, todo.Priority)
	suite.Require().NotNil(todo.DueDate)
	suite.Equal("2025-12-01", todo.DueDate.Format("2006-01-02"))
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *TodoServiceTestSuite) TestCreateTodo_InvalidStatus() {
	ctx := context.Background()
	req := dto.CreateTodoRequest{Title: "Bad", Status: "done"}

	todo, err := suite.service.CreateTodo(ctx, suite.ownerID, req)

	suite.Require().Error(err)
	suite.Nil(todo)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Equal("invalid_status", apperrors.CodeOf(err))
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveTodo")
}

func (suite *TodoServiceTestSuite) TestUpdateTodo_WriteShare_Success() {
	ctx := context.Background()
	viewerID := uuid.NewString()
	todo := &domain.Todo{TodoID: uuid.NewString(), OwnerID: suite.ownerID, Title: "Old", Status: domain.TodoPending, Priority: domain.PriorityLow}
	share := &domain.Share{ResourceID: todo.TodoID, UserID: viewerID, Permission: domain.PermissionWrite}
	req := dto.UpdateTodoRequest{Title: "New", Status: "completed", Priority: "low"}

	suite.mockRepo.On("FindTodoByID", ctx, todo.TodoID).Return(todo, nil).Once()
	suite.mockRepo.On("FindShare", ctx, todo.TodoID, viewerID).Return(share, nil).Once()
	suite.mockRepo.On("UpdateTodo", ctx, mock.AnythingOfType("domain.Todo")).Return(nil).Once()

	updated, err := suite.service.UpdateTodo(ctx, viewerID, todo.TodoID, req)

	suite.Require().NoError(err)
	suite.Equal("New", updated.Title)
	suite.Equal(domain.TodoCompleted, updated.Status)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *TodoServiceTestSuite) TestUpdateTodo_NoShare_LooksLikeMissing() {
	ctx := context.Background()
	viewerID := uuid.NewString()
	todo := &domain.Todo{TodoID: uuid.NewString(), OwnerID: suite.ownerID, Status: domain.TodoPending, Priority: domain.PriorityLow}
	req := dto.UpdateTodoRequest{Title: "New", Status: "completed", Priority: "low"}

	suite.mockRepo.On("FindTodoByID", ctx, todo.TodoID).Return(todo, nil).Once()
	suite.mockRepo.On("FindShare", ctx, todo.TodoID, viewerID).Return(nil, apperrors.ErrNotFound).Once()

	updated, err := suite.service.UpdateTodo(ctx, viewerID, todo.TodoID, req)

	suite.Require().Error(err)
	suite.Nil(updated)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.NotErrorIs(err, apperrors.ErrForbidden)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *TodoServiceTestSuite) TestShareTodo_Idempotent() {
	ctx := context.Background()
	todo := &domain.Todo{TodoID: uuid.NewString(), OwnerID: suite.ownerID}
	targetID := uuid.NewString()
	req := dto.ShareRequest{UserID: targetID, Permission: "read"}
	stored := &domain.Share{ShareID: uuid.NewString(), ResourceID: todo.TodoID, UserID: targetID, Permission: domain.PermissionRead}

	// Re-sharing the same pair reuses the stored row; both calls succeed.
	suite.mockRepo.On("FindTodoByID", ctx, todo.TodoID).Return(todo, nil).Twice()
	suite.mockRepo.On("UpsertShare", ctx, mock.AnythingOfType("domain.Share")).Return(stored, nil).Twice()

	first, err := suite.service.ShareTodo(ctx, suite.ownerID, todo.TodoID, req)
	suite.Require().NoError(err)
	second, err := suite.service.ShareTodo(ctx, suite.ownerID, todo.TodoID, req)
	suite.Require().NoError(err)
	suite.Equal(first.ShareID, second.ShareID)

	suite.mockRepo.AssertExpectations(suite.T())
}

func TestTodoServiceTestSuite(t *testing.T) {
	suite.Run(t, new(TodoServiceTestSuite))
}
