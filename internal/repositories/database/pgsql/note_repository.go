package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/opslane/erp_backend/internal/apperrors"
	"github.com/opslane/erp_backend/internal/core/domain"
	portsrepo "github.com/opslane/erp_backend/internal/core/ports/repositories"
)

type PgxNoteRepository struct {
	BaseRepository
}

func newPgxNoteRepository(pool *pgxpool.Pool) portsrepo.NoteRepository {
	return &PgxNoteRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.NoteRepository = (*PgxNoteRepository)(nil)

func (r *PgxNoteRepository) SaveNote(ctx context.Context, note domain.Note) error {
	query := `
		INSERT INTO notes (note_id, owner_id, title, content, is_pinned, created_at, last_updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7);
	`
	_, err := r.Pool.Exec(ctx, query,
		note.NoteID,
		note.OwnerID,
		note.Title,
		note.Content,
		note.IsPinned,
		note.CreatedAt,
		note.LastUpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save note: %w", err)
	}
	return nil
}

// ListNotesForViewer returns owned and shared notes annotated with the
// viewer's access level, pinned-first then last-updated descending.
func (r *PgxNoteRepository) ListNotesForViewer(ctx context.Context, viewerID string) ([]domain.Note, error) {
	query := `
		SELECT n.note_id, n.owner_id, n.title, n.content, n.is_pinned, n.created_at, n.last_updated_at,
		       CASE WHEN n.owner_id = $1 THEN 'owner' ELSE s.permission END AS access
		FROM notes n
		LEFT JOIN note_shares s ON s.note_id = n.note_id AND s.user_id = $1
		WHERE n.owner_id = $1 OR s.user_id IS NOT NULL
		ORDER BY n.is_pinned DESC, n.last_updated_at DESC;
	`
	rows, err := r.Pool.Query(ctx, query, viewerID)
	if err != nil {
		return nil, fmt.Errorf("failed to query notes: %w", err)
	}
	defer rows.Close()

	notes := []domain.Note{}
	for rows.Next() {
		var n domain.Note
		err := rows.Scan(
			&n.NoteID,
			&n.OwnerID,
			&n.Title,
			&n.Content,
			&n.IsPinned,
			&n.CreatedAt,
			&n.LastUpdatedAt,
			&n.Access,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan note row: %w", err)
		}
		notes = append(notes, n)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating note rows: %w", rows.Err())
	}
	return notes, nil
}

func (r *PgxNoteRepository) FindNoteByID(ctx context.Context, noteID string) (*domain.Note, error) {
	query := `
		SELECT note_id, owner_id, title, content, is_pinned, created_at, last_updated_at
		FROM notes
		WHERE note_id = $1;
	`
	var n domain.Note
	err := r.Pool.QueryRow(ctx, query, noteID).Scan(
		&n.NoteID,
		&n.OwnerID,
		&n.Title,
		&n.Content,
		&n.IsPinned,
		&n.CreatedAt,
		&n.LastUpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find note by ID %s: %w", noteID, err)
	}
	return &n, nil
}

func (r *PgxNoteRepository) FindShare(ctx context.Context, noteID, userID string) (*domain.Share, error) {
	query := `
		SELECT share_id, note_id, user_id, permission, created_at
		FROM note_shares
		WHERE note_id = $1 AND user_id = $2;
	`
	var s domain.Share
	err := r.Pool.QueryRow(ctx, query, noteID, userID).Scan(&s.ShareID, &s.ResourceID, &s.UserID, &s.Permission, &s.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find note share: %w", err)
	}
	return &s, nil
}

func (r *PgxNoteRepository) UpdateNote(ctx context.Context, note domain.Note) error {
	query := `
		UPDATE notes
		SET title = $2, content = $3, is_pinned = $4, last_updated_at = $5
		WHERE note_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query, note.NoteID, note.Title, note.Content, note.IsPinned, note.LastUpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to update note %s: %w", note.NoteID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeleteNoteOwned deletes only when the caller owns the note; a non-owner
// gets the same not-found result as a missing id so existence is not
// leaked. Share rows cascade.
func (r *PgxNoteRepository) DeleteNoteOwned(ctx context.Context, noteID, ownerID string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM notes WHERE note_id = $1 AND owner_id = $2;`, noteID, ownerID)
	if err != nil {
		return fmt.Errorf("failed to delete note %s: %w", noteID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.New(apperrors.ErrNotFound, "note_not_found", "note not found or no permission")
	}
	return nil
}

// UpsertShare inserts the grant or overwrites the permission of an existing
// (note, user) grant, so repeated shares stay a single row.
func (r *PgxNoteRepository) UpsertShare(ctx context.Context, share domain.Share) (*domain.Share, error) {
	query := `
		INSERT INTO note_shares (share_id, note_id, user_id, permission, created_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (note_id, user_id) DO UPDATE SET permission = EXCLUDED.permission
		RETURNING share_id, note_id, user_id, permission, created_at;
	`
	var s domain.Share
	err := r.Pool.QueryRow(ctx, query,
		share.ShareID,
		share.ResourceID,
		share.UserID,
		share.Permission,
		share.CreatedAt,
	).Scan(&s.ShareID, &s.ResourceID, &s.UserID, &s.Permission, &s.CreatedAt)
	if err != nil {
		if isForeignKeyViolation(err) {
			return nil, apperrors.Wrap(apperrors.ErrNotFound, "user_not_found", "shared-with user does not exist", err)
		}
		return nil, fmt.Errorf("failed to upsert note share: %w", err)
	}
	return &s, nil
}

func (r *PgxNoteRepository) DeleteShare(ctx context.Context, noteID, shareID string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM note_shares WHERE share_id = $1 AND note_id = $2;`, shareID, noteID)
	if err != nil {
		return fmt.Errorf("failed to delete note share %s: %w", shareID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.New(apperrors.ErrNotFound, "share_not_found", "share does not exist")
	}
	return nil
}
