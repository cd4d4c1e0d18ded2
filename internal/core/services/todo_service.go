package services

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/opslane/erp_backend/internal/apperrors"
	"github.com/opslane/erp_backend/internal/core/domain"
	portsrepo "github.com/opslane/erp_backend/internal/core/ports/repositories"
	portssvc "github.com/opslane/erp_backend/internal/core/ports/services"
	"github.com/opslane/erp_backend/internal/dto"
	"github.com/opslane/erp_backend/internal/utils"
)

type todoService struct {
	todoRepo portsrepo.TodoRepository
}

// NewTodoService creates a new todo service.
func NewTodoService(todoRepo portsrepo.TodoRepository) portssvc.TodoSvcFacade {
	return &todoService{todoRepo: todoRepo}
}

var _ portssvc.TodoSvcFacade = (*todoService)(nil)

func (s *todoService) ListTodos(ctx context.Context, viewerID string) ([]domain.Todo, error) {
	return s.todoRepo.ListTodosForViewer(ctx, viewerID)
}

func (s *todoService) CreateTodo(ctx context.Context, ownerID string, req dto.CreateTodoRequest) (*domain.Todo, error) {
	status := domain.TodoStatus(req.Status)
	if req.Status == "" {
		status = domain.TodoPending
	}
	if !status.Valid() {
		return nil, apperrors.New(apperrors.ErrValidation, "invalid_status", "status must be pending, in_progress or completed")
	}

	priority := domain.TodoPriority(req.Priority)
	if req.Priority == "" {
		priority = domain.PriorityMedium
	}
	if !priority.Valid() {
		return nil, apperrors.New(apperrors.ErrValidation, "invalid_priority", "priority must be high, medium or low")
	}

	var dueDate *time.Time
	if req.DueDate != "" {
		t, err := utils.ParseDate(req.DueDate)
		if err != nil {
			return nil, apperrors.Wrap(apperrors.ErrValidation, "invalid_due_date", "dueDate must be YYYY-MM-DD", err)
		}
		dueDate = &t
	}

	now := time.Now().UTC()
	todo := domain.Todo{
		TodoID:        uuid.NewString(),
		OwnerID:       ownerID,
		Title:         req.Title,
		Description:   req.Description,
		Status:        status,
		Priority:      priority,
		DueDate:       dueDate,
		CreatedAt:     now,
		LastUpdatedAt: now,
		Access:        domain.AccessOwner,
	}
	if err := s.todoRepo.SaveTodo(ctx, todo); err != nil {
		return nil, err
	}
	return &todo, nil
}

// UpdateTodo requires write access. A viewer with no share at all cannot
// distinguish the todo from a missing one; a read-only share gets 403.
func (s *todoService) UpdateTodo(ctx context.Context, viewerID, todoID string, req dto.UpdateTodoRequest) (*domain.Todo, error) {
	status := domain.TodoStatus(req.Status)
	if !status.Valid() {
		return nil, apperrors.New(apperrors.ErrValidation, "invalid_status", "status must be pending, in_progress or completed")
	}
	priority := domain.TodoPriority(req.Priority)
	if !priority.Valid() {
		return nil, apperrors.New(apperrors.ErrValidation, "invalid_priority", "priority must be high, medium or low")
	}

	var dueDate *time.Time
	if req.DueDate != "" {
		t, err := utils.ParseDate(req.DueDate)
		if err != nil {
			return nil, apperrors.Wrap(apperrors.ErrValidation, "invalid_due_date", "dueDate must be YYYY-MM-DD", err)
		}
		dueDate = &t
	}

	todo, err := s.todoRepo.FindTodoByID(ctx, todoID)
	if err != nil {
		return nil, err
	}

	if todo.OwnerID != viewerID {
		share, err := s.todoRepo.FindShare(ctx, todoID, viewerID)
		if err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				return nil, apperrors.New(apperrors.ErrNotFound, "todo_not_found", "todo not found")
			}
			return nil, err
		}
		if share.Permission != domain.PermissionWrite {
			return nil, apperrors.New(apperrors.ErrForbidden, "read_only_share", "share does not permit updates")
		}
	}

	todo.Title = req.Title
	todo.Description = req.Description
	todo.Status = status
	todo.Priority = priority
	todo.DueDate = dueDate
	todo.LastUpdatedAt = time.Now().UTC()
	if err := s.todoRepo.UpdateTodo(ctx, *todo); err != nil {
		return nil, err
	}
	return todo, nil
}

func (s *todoService) DeleteTodo(ctx context.Context, callerID, todoID string) error {
	return s.todoRepo.DeleteTodoOwned(ctx, todoID, callerID)
}

func (s *todoService) ShareTodo(ctx context.Context, callerID, todoID string, req dto.ShareRequest) (*domain.Share, error) {
	todo, err := s.todoRepo.FindTodoByID(ctx, todoID)
	if err != nil {
		return nil, err
	}
	if todo.OwnerID != callerID {
		return nil, apperrors.New(apperrors.ErrForbidden, "not_owner", "only the owner may share a todo")
	}

	share := domain.Share{
		ShareID:    uuid.NewString(),
		ResourceID: todoID,
		UserID:     req.UserID,
		Permission: domain.SharePermission(req.Permission),
		CreatedAt:  time.Now().UTC(),
	}
	return s.todoRepo.UpsertShare(ctx, share)
}

func (s *todoService) UnshareTodo(ctx context.Context, callerID, todoID, shareID string) error {
	todo, err := s.todoRepo.FindTodoByID(ctx, todoID)
	if err != nil {
		return err
	}
	if todo.OwnerID != callerID {
		return apperrors.New(apperrors.ErrForbidden, "not_owner", "only the owner may revoke a share")
	}
	return s.todoRepo.DeleteShare(ctx, todoID, shareID)
}
