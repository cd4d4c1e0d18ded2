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
)

type noteService struct {
	noteRepo portsrepo.NoteRepository
}

// NewNoteService creates a new note service.
func NewNoteService(noteRepo portsrepo.NoteRepository) portssvc.NoteSvcFacade {
	return &noteService{noteRepo: noteRepo}
}

var _ portssvc.NoteSvcFacade = (*noteService)(nil)

func (s *noteService) ListNotes(ctx context.Context, viewerID string) ([]domain.Note, error) {
	return s.noteRepo.ListNotesForViewer(ctx, viewerID)
}

func (s *noteService) CreateNote(ctx context.Context, ownerID string, req dto.CreateNoteRequest) (*domain.Note, error) {
	now := time.Now().UTC()
	note := domain.Note{
		NoteID:        uuid.NewString(),
		OwnerID:       ownerID,
		Title:         req.Title,
		Content:       req.Content,
		IsPinned:      req.IsPinned,
		CreatedAt:     now,
		LastUpdatedAt: now,
		Access:        domain.AccessOwner,
	}
	if err := s.noteRepo.SaveNote(ctx, note); err != nil {
		return nil, err
	}
	return &note, nil
}

// UpdateNote requires write access. A viewer with no share at all cannot
// distinguish the note from a missing one; a read-only share gets 403.
func (s *noteService) UpdateNote(ctx context.Context, viewerID, noteID string, req dto.UpdateNoteRequest) (*domain.Note, error) {
	note, err := s.noteRepo.FindNoteByID(ctx, noteID)
	if err != nil {
		return nil, err
	}

	if note.OwnerID != viewerID {
		share, err := s.noteRepo.FindShare(ctx, noteID, viewerID)
		if err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				return nil, apperrors.New(apperrors.ErrNotFound, "note_not_found", "note not found")
			}
			return nil, err
		}
		if share.Permission != domain.PermissionWrite {
			return nil, apperrors.New(apperrors.ErrForbidden, "read_only_share", "share does not permit updates")
		}
	}

	note.Title = req.Title
	note.Content = req.Content
	note.IsPinned = req.IsPinned
	note.LastUpdatedAt = time.Now().UTC()
	if err := s.noteRepo.UpdateNote(ctx, *note); err != nil {
		return nil, err
	}
	return note, nil
}

func (s *noteService) DeleteNote(ctx context.Context, callerID, noteID string) error {
	return s.noteRepo.DeleteNoteOwned(ctx, noteID, callerID)
}

func (s *noteService) ShareNote(ctx context.Context, callerID, noteID string, req dto.ShareRequest) (*domain.Share, error) {
	note, err := s.noteRepo.FindNoteByID(ctx, noteID)
	if err != nil {
		return nil, err
	}
	if note.OwnerID != callerID {
		return nil, apperrors.New(apperrors.ErrForbidden, "not_owner", "only the owner may share a note")
	}

	share := domain.Share{
		ShareID:    uuid.NewString(),
		ResourceID: noteID,
		UserID:     req.UserID,
		Permission: domain.SharePermission(req.Permission),
		CreatedAt:  time.Now().UTC(),
	}
	return s.noteRepo.UpsertShare(ctx, share)
}

func (s *noteService) UnshareNote(ctx context.Context, callerID, noteID, shareID string) error {
	note, err := s.noteRepo.FindNoteByID(ctx, noteID)
	if err != nil {
		return err
	}
	if note.OwnerID != callerID {
		return apperrors.New(apperrors.ErrForbidden, "not_owner", "only the owner may revoke a share")
	}
	return s.noteRepo.DeleteShare(ctx, noteID, shareID)
}
