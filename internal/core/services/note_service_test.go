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

// MockNoteRepository is a mock type for the NoteRepository interface
type MockNoteRepository struct {
	mock.Mock
}

func (m *MockNoteRepository) SaveNote(ctx context.Context, note domain.Note) error {
	args := m.Called(ctx, note)
	return args.Error(0)
}

func (m *MockNoteRepository) ListNotesForViewer(ctx context.Context, viewerID string) ([]domain.Note, error) {
	args := m.Called(ctx, viewerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Note), args.Error(1)
}

func (m *MockNoteRepository) FindNoteByID(ctx context.Context, noteID string) (*domain.Note, error) {
	args := m.Called(ctx, noteID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Note), args.Error(1)
}

func (m *MockNoteRepository) FindShare(ctx context.Context, noteID, userID string) (*domain.Share, error) {
	args := m.Called(ctx, noteID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Share), args.Error(1)
}

func (m *MockNoteRepository) UpdateNote(ctx context.Context, note domain.Note) error {
	args := m.Called(ctx, note)
	return args.Error(0)
}

func (m *MockNoteRepository) DeleteNoteOwned(ctx context.Context, noteID, ownerID string) error {
	args := m.Called(ctx, noteID, ownerID)
	return args.Error(0)
}

func (m *MockNoteRepository) UpsertShare(ctx context.Context, share domain.Share) (*domain.Share, error) {
	args := m.Called(ctx, share)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Share), args.Error(1)
}

func (m *MockNoteRepository) DeleteShare(ctx context.Context, noteID, shareID string) error {
	args := m.Called(ctx, noteID, shareID)
	return args.Error(0)
}

// --- Test Suite Setup ---

type NoteServiceTestSuite struct {
	suite.Suite
	mockRepo *MockNoteRepository
	service  portssvc.NoteSvcFacade

	ownerID  string
	viewerID string
	note     *domain.Note
}

func (suite *NoteServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockNoteRepository)
	suite.service = services.NewNoteService(suite.mockRepo)
	suite.ownerID = uuid.NewString()
	suite.viewerID = uuid.NewString()
	suite.note = &domain.Note{
		NoteID:  uuid.NewString(),
		OwnerID: suite.ownerID,
		Title:   "Quarterly planning",
		Content: "draft",
	}
}

// --- Test Cases ---

func (suite *NoteServiceTestSuite) TestUpdateNote_Owner_Success() {
	ctx := context.Background()
	req := dto.UpdateNoteRequest{Title: "Quarterly planning v2", Content: "final", IsPinned: true}

	suite.mockRepo.On("FindNoteByID", ctx, suite.note.NoteID).Return(suite.note, nil).Once()
	suite.mockRepo.On("UpdateNote", ctx, mock.AnythingOfType("domain.Note")).Return(nil).Once()

	updated, err := suite.service.UpdateNote(ctx, suite.ownerID, suite.note.NoteID, req)

	suite.Require().NoError(err)
	suite.Equal("Quarterly planning v2", updated.Title)
	suite.True(updated.IsPinned)
	// Owner path never consults the share table.
	suite.mockRepo.AssertNotCalled(suite.T(), "FindShare")
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *NoteServiceTestSuite) TestUpdateNote_WriteShare_Success() {
	ctx := context.Background()
	req := dto.UpdateNoteRequest{Title: "Edited by collaborator"}
	share := &domain.Share{ResourceID: suite.note.NoteID, UserID: suite.viewerID, Permission: domain.PermissionWrite}

	suite.mockRepo.On("FindNoteByID", ctx, suite.note.NoteID).Return(suite.note, nil).Once()
	suite.mockRepo.On("FindShare", ctx, suite.note.NoteID, suite.viewerID).Return(share, nil).Once()
	suite.mockRepo.On("UpdateNote", ctx, mock.AnythingOfType("domain.Note")).Return(nil).Once()

	updated, err := suite.service.UpdateNote(ctx, suite.viewerID, suite.note.NoteID, req)

	suite.Require().NoError(err)
	suite.Equal("Edited by collaborator", updated.Title)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *NoteServiceTestSuite) TestUpdateNote_ReadShare_Forbidden() {
	ctx := context.Background()
	req := dto.UpdateNoteRequest{Title: "Nope"}
	share := &domain.Share{ResourceID: suite.note.NoteID, UserID: suite.viewerID, Permission: domain.PermissionRead}

	suite.mockRepo.On("FindNoteByID", ctx, suite.note.NoteID).Return(suite.note, nil).Once()
	suite.mockRepo.On("FindShare", ctx, suite.note.NoteID, suite.viewerID).Return(share, nil).Once()

	updated, err := suite.service.UpdateNote(ctx, suite.viewerID, suite.note.NoteID, req)

	suite.Require().Error(err)
	suite.Nil(updated)
	suite.ErrorIs(err, apperrors.ErrForbidden)
	suite.mockRepo.AssertNotCalled(suite.T(), "UpdateNote")
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *NoteServiceTestSuite) TestUpdateNote_NoShare_LooksLikeMissing() {
	ctx := context.Background()
	req := dto.UpdateNoteRequest{Title: "Nope"}

	suite.mockRepo.On("FindNoteByID", ctx, suite.note.NoteID).Return(suite.note, nil).Once()
	suite.mockRepo.On("FindShare", ctx, suite.note.NoteID, suite.viewerID).Return(nil, apperrors.ErrNotFound).Once()

	updated, err := suite.service.UpdateNote(ctx, suite.viewerID, suite.note.NoteID, req)

	// A viewer with no grant gets the same answer as for a missing note.
	suite.Require().Error(err)
	suite.Nil(updated)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.NotErrorIs(err, apperrors.ErrForbidden)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *NoteServiceTestSuite) TestShareNote_NonOwner_Forbidden() {
	ctx := context.Background()
	req := dto.ShareRequest{UserID: uuid.NewString(), Permission: "read"}

	suite.mockRepo.On("FindNoteByID", ctx, suite.note.NoteID).Return(suite.note, nil).Once()

	share, err := suite.service.ShareNote(ctx, suite.viewerID, suite.note.NoteID, req)

	suite.Require().Error(err)
	suite.Nil(share)
	suite.ErrorIs(err, apperrors.ErrForbidden)
	suite.mockRepo.AssertNotCalled(suite.T(), "UpsertShare")
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *NoteServiceTestSuite) TestShareNote_Owner_Upserts() {
	ctx := context.Background()
	targetID := uuid.NewString()
	req := dto.ShareRequest{UserID: targetID, Permission: "write"}
	stored := &domain.Share{ShareID: uuid.NewString(), ResourceID: suite.note.NoteID, UserID: targetID, Permission: domain.PermissionWrite}

	suite.mockRepo.On("FindNoteByID", ctx, suite.note.NoteID).Return(suite.note, nil).Once()
	suite.mockRepo.On("UpsertShare", ctx, mock.AnythingOfType("domain.Share")).Return(stored, nil).Once()

	share, err := suite.service.ShareNote(ctx, suite.ownerID, suite.note.NoteID, req)

	suite.Require().NoError(err)
	suite.Equal(stored, share)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *NoteServiceTestSuite) TestDeleteNote_DelegatesOwnership() {
	ctx := context.Background()

	// Non-owner deletes collapse to not-found inside the repository.
	suite.mockRepo.On("DeleteNoteOwned", ctx, suite.note.NoteID, suite.viewerID).Return(apperrors.ErrNotFound).Once()

	err := suite.service.DeleteNote(ctx, suite.viewerID, suite.note.NoteID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *NoteServiceTestSuite) TestUnshareNote_MissingShare_NotFound() {
	ctx := context.Background()
	shareID := uuid.NewString()

	suite.mockRepo.On("FindNoteByID", ctx, suite.note.NoteID).Return(suite.note, nil).Once()
	suite.mockRepo.On("DeleteShare", ctx, suite.note.NoteID, shareID).Return(apperrors.ErrNotFound).Once()

	err := suite.service.UnshareNote(ctx, suite.ownerID, suite.note.NoteID, shareID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockRepo.AssertExpectations(suite.T())
}

func TestNoteServiceTestSuite(t *testing.T) {
	suite.Run(t, new(NoteServiceTestSuite))
}
