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

type PgxTodoRepository struct {
	BaseRepository
}

func newPgxTodoRepository(pool *pgxpool.Pool) portsrepo.TodoRepository {
	return &PgxTodoRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.TodoRepository = (*PgxTodoRepository)(nil)

func (r *PgxTodoRepository) SaveTodo(ctx context.Context, todo domain.Todo) error {
	query := `
		INSERT INTO todos (todo_id, owner_id, title, description, status, priority, due_date, created_at, last_updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
	`
	_, err := r.Pool.Exec(ctx, query,
		todo.TodoID,
		todo.OwnerID,
		todo.Title,
		todo.Description,
		todo.Status,
		todo.Priority,
		todo.DueDate,
		todo.CreatedAt,
		todo.LastUpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save todo: %w", err)
	}
	return nil
}

// ListTodosForViewer returns owned and shared todos annotated with the
// viewer's access level, ordered by status rank (pending < in_progress <
// completed), priority rank (high < medium < low), due date ascending with
// nulls last, then creation time descending.
func (r *PgxTodoRepository) ListTodosForViewer(ctx context.Context, viewerID string) ([]domain.Todo, error) {
	query := `
		SELECT t.todo_id, t.owner_id, t.title, t.description, t.status, t.priority, t.due_date,
		       t.created_at, t.last_updated_at,
		       CASE WHEN t.owner_id = $1 THEN 'owner' ELSE s.permission END AS access
		FROM todos t
		LEFT JOIN todo_shares s ON s.todo_id = t.todo_id AND s.user_id = $1
		WHERE t.owner_id = $1 OR s.user_id IS NOT NULL
		ORDER BY
			CASE t.status WHEN 'pending' THEN 0 WHEN 'in_progress' THEN 1 ELSE 2 END,
			CASE t.priority WHEN 'high' THEN 0 WHEN 'medium' THEN 1 ELSE 2 END,
			t.due_date ASC NULLS LAST,
			t.created_at DESC;
	`
	rows, err := r.Pool.Query(ctx, query, viewerID)
	if err != nil {
		return nil, fmt.Errorf("failed to query todos: %w", err)
	}
	defer rows.Close()

	todos := []domain.Todo{}
	for rows.Next() {
		var t domain.Todo
		err := rows.Scan(
			&t.TodoID,
			&t.OwnerID,
			&t.Title,
			&t.Description,
			&t.Status,
			&t.Priority,
			&t.DueDate,
			&t.CreatedAt,
			&t.LastUpdatedAt,
			&t.Access,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan todo row: %w", err)
		}
		todos = append(todos, t)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating todo rows: %w", rows.Err())
	}
	return todos, nil
}

func (r *PgxTodoRepository) FindTodoByID(ctx context.Context, todoID string) (*domain.Todo, error) {
	query := `
		SELECT todo_id, owner_id, title, description, status, priority, due_date, created_at, last_updated_at
		FROM todos
		WHERE todo_id = $1;
	`
	var t domain.Todo
	err := r.Pool.QueryRow(ctx, query, todoID).Scan(
		&t.TodoID,
		&t.OwnerID,
		&t.Title,
		&t.Description,
		&t.Status,
		&t.Priority,
		&t.DueDate,
		&t.CreatedAt,
		&t.LastUpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find todo by ID %s: %w", todoID, err)
	}
	return &t, nil
}

func (r *PgxTodoRepository) FindShare(ctx context.Context, todoID, userID string) (*domain.Share, error) {
	query := `
		SELECT share_id, todo_id, user_id, permission, created_at
		FROM todo_shares
		WHERE todo_id = $1 AND user_id = $2;
	`
	var s domain.Share
	err := r.Pool.QueryRow(ctx, query, todoID, userID).Scan(&s.ShareID, &s.ResourceID, &s.UserID, &s.Permission, &s.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find todo share: %w", err)
	}
	return &s, nil
}

func (r *PgxTodoRepository) UpdateTodo(ctx context.Context, todo domain.Todo) error {
	query := `
		UPDATE todos
		SET title = $2, description = $3, status = $4, priority = $5, due_date = $6, last_updated_at = $7
		WHERE todo_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query,
		todo.TodoID,
		todo.Title,
		todo.Description,
		todo.Status,
		todo.Priority,
		todo.DueDate,
		todo.LastUpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to update todo %s: %w", todo.TodoID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeleteTodoOwned deletes only when the caller owns the todo; a non-owner
// gets the same not-found result as a missing id so existence is not
// leaked. Share rows cascade.
func (r *PgxTodoRepository) DeleteTodoOwned(ctx context.Context, todoID, ownerID string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM todos WHERE todo_id = $1 AND owner_id = $2;`, todoID, ownerID)
	if err != nil {
		return fmt.Errorf("failed to delete todo %s: %w", todoID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.New(apperrors.ErrNotFound, "todo_not_found", "todo not found or no permission")
	}
	return nil
}

// UpsertShare inserts the grant or overwrites the permission of an existing
// (todo, user) grant, so repeated shares stay a single row.
func (r *PgxTodoRepository) UpsertShare(ctx context.Context, share domain.Share) (*domain.Share, error) {
	query := `
		INSERT INTO todo_shares (share_id, todo_id, user_id, permission, created_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (todo_id, user_id) DO UPDATE SET permission = EXCLUDED.permission
		RETURNING share_id, todo_id, user_id, permission, created_at;
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
		return nil, fmt.Errorf("failed to upsert todo share: %w", err)
	}
	return &s, nil
}

func (r *PgxTodoRepository) DeleteShare(ctx context.Context, todoID, shareID string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM todo_shares WHERE share_id = $1 AND todo_id = $2;`, shareID, todoID)
	if err != nil {
		return fmt.Errorf("failed to delete todo share %s: %w", shareID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.New(apperrors.ErrNotFound, "share_not_found", "share does not exist")
	}
	return nil
}
