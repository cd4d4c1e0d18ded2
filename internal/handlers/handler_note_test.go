package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/opslane/erp_backend/internal/apperrors"
	"github.com/opslane/erp_backend/internal/core/domain"
	portssvc "github.com/opslane/erp_backend/internal/core/ports/services"
	"github.com/opslane/erp_backend/internal/dto"
	"github.com/opslane/erp_backend/internal/handlers"
	"github.com/opslane/erp_backend/internal/platform/config"
)

// --- Mock NoteService ---
type MockNoteService struct {
	mock.Mock
}

func (m *MockNoteService) ListNotes(ctx context.Context, viewerID string) ([]domain.Note, error) {
	args := m.Called(ctx, viewerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Note), args.Error(1)
}
func (m *MockNoteService) CreateNote(ctx context.Context, ownerID string, req dto.CreateNoteRequest) (*domain.Note, error) {
	args := m.Called(ctx, ownerID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Note), args.Error(1)
}
func (m *MockNoteService) UpdateNote(ctx context.Context, viewerID, noteID string, req dto.UpdateNoteRequest) (*domain.Note, error) {
	args := m.Called(ctx, viewerID, noteID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Note), args.Error(1)
}
func (m *MockNoteService) DeleteNote(ctx context.Context, callerID, noteID string) error {
	args := m.Called(ctx, callerID, noteID)
	return args.Error(0)
}
func (m *MockNoteService) ShareNote(ctx context.Context, callerID, noteID string, req dto.ShareRequest) (*domain.Share, error) {
	args := m.Called(ctx, callerID, noteID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Share), args.Error(1)
}
func (m *MockNoteService) UnshareNote(ctx context.Context, callerID, noteID, shareID string) error {
	args := m.Called(ctx, callerID, noteID, shareID)
	return args.Error(0)
}

var _ portssvc.NoteSvcFacade = (*MockNoteService)(nil)

// --- Test Suite Setup ---

type NoteHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockService *MockNoteService
	userID      string
}

func (suite *NoteHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()
	suite.mockService = new(MockNoteService)
	suite.userID = uuid.NewString()

	cfg := &config.Config{JWTSecret: testJWTSecret, IsProduction: true}
	services := &portssvc.ServiceContainer{
		User:        new(MockUserService),
		Token:       new(MockTokenService),
		GoogleOAuth: new(MockGoogleOAuthService),
		Note:        suite.mockService,
	}
	handlers.RegisterRoutes(suite.router, cfg, services)
}

func (suite *NoteHandlerTestSuite) doRequest(method, path string, body any) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		suite.Require().NoError(err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+generateTestToken(suite.T(), suite.userID))
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

// --- Test Cases ---

func (suite *NoteHandlerTestSuite) TestListNotes_PassesCallerID() {
	notes := []domain.Note{{NoteID: uuid.NewString(), OwnerID: suite.userID, Title: "Pinned", IsPinned: true, Access: domain.AccessOwner}}
	suite.mockService.On("ListNotes", mock.Anything, suite.userID).Return(notes, nil).Once()

	w := suite.doRequest(http.MethodGet, "/api/v1/notes", nil)

	suite.Equal(http.StatusOK, w.Code)
	var resp []domain.Note
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Len(resp, 1)
	suite.Equal(domain.AccessOwner, resp[0].Access)
	suite.mockService.AssertExpectations(suite.T())
}

func (suite *NoteHandlerTestSuite) TestUpdateNote_ReadShareIs403() {
	noteID := uuid.NewString()
	req := dto.UpdateNoteRequest{Title: "Edited"}

	suite.mockService.On("UpdateNote", mock.Anything, suite.userID, noteID, req).
		Return(nil, apperrors.New(apperrors.ErrForbidden, "read_only_share", "share does not permit updates")).Once()

	w := suite.doRequest(http.MethodPut, "/api/v1/notes/"+noteID, req)

	suite.Equal(http.StatusForbidden, w.Code)
	var resp handlers.ErrorResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("read_only_share", resp.Error)
	suite.mockService.AssertExpectations(suite.T())
}

func (suite *NoteHandlerTestSuite) TestUpdateNote_NoShareIs404() {
	noteID := uuid.NewString()
	req := dto.UpdateNoteRequest{Title: "Edited"}

	suite.mockService.On("UpdateNote", mock.Anything, suite.userID, noteID, req).
		Return(nil, apperrors.New(apperrors.ErrNotFound, "note_not_found", "note not found")).Once()

	w := suite.doRequest(http.MethodPut, "/api/v1/notes/"+noteID, req)

	suite.Equal(http.StatusNotFound, w.Code)
	var resp handlers.ErrorResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("note_not_found", resp.Error)
	suite.mockService.AssertExpectations(suite.T())
}

func (suite *NoteHandlerTestSuite) TestDeleteNote_NonOwnerIs404() {
	noteID := uuid.NewString()

	suite.mockService.On("DeleteNote", mock.Anything, suite.userID, noteID).
		Return(apperrors.New(apperrors.ErrNotFound, "note_not_found", "note not found or no permission")).Once()

	w := suite.doRequest(http.MethodDelete, "/api/v1/notes/"+noteID, nil)

	suite.Equal(http.StatusNotFound, w.Code)
	suite.mockService.AssertExpectations(suite.T())
}

func (suite *NoteHandlerTestSuite) TestShareNote_InvalidPermissionRejected() {
	noteID := uuid.NewString()

	w := suite.doRequest(http.MethodPost, "/api/v1/notes/"+noteID+"/share", map[string]string{
		"userID":     uuid.NewString(),
		"permission": "admin",
	})

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockService.AssertNotCalled(suite.T(), "ShareNote")
}

func (suite *NoteHandlerTestSuite) TestShareNote_OwnerGetsShareBack() {
	noteID := uuid.NewString()
	targetID := uuid.NewString()
	req := dto.ShareRequest{UserID: targetID, Permission: "write"}
	stored := &domain.Share{ShareID: uuid.NewString(), ResourceID: noteID, UserID: targetID, Permission: domain.PermissionWrite}

	suite.mockService.On("ShareNote", mock.Anything, suite.userID, noteID, req).Return(stored, nil).Once()

	w := suite.doRequest(http.MethodPost, "/api/v1/notes/"+noteID+"/share", req)

	suite.Equal(http.StatusOK, w.Code)
	var resp domain.Share
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(stored.ShareID, resp.ShareID)
	suite.Equal(domain.PermissionWrite, resp.Permission)
	suite.mockService.AssertExpectations(suite.T())
}

func (suite *NoteHandlerTestSuite) TestUnshareNote_NonOwnerIs403() {
	noteID := uuid.NewString()
	shareID := uuid.NewString()

	suite.mockService.On("UnshareNote", mock.Anything, suite.userID, noteID, shareID).
		Return(apperrors.New(apperrors.ErrForbidden, "not_owner", "only the owner may revoke a share")).Once()

	w := suite.doRequest(http.MethodDelete, "/api/v1/notes/"+noteID+"/share/"+shareID, nil)

	suite.Equal(http.StatusForbidden, w.Code)
	suite.mockService.AssertExpectations(suite.T())
}

func TestNoteHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(NoteHandlerTestSuite))
}
