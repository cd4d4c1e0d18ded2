package dto

// CreateNoteRequest creates a note owned by the caller.
type CreateNoteRequest struct {
	Title    string `json:"title" binding:"required"`
	Content  string `json:"content"`
	IsPinned bool   `json:"isPinned"`
}

// UpdateNoteRequest overwrites a note's mutable fields.
type UpdateNoteRequest struct {
	Title    string `json:"title" binding:"required"`
	Content  string `json:"content"`
	IsPinned bool   `json:"isPinned"`
}

// CreateTodoRequest creates a todo owned by the caller. DueDate is
// YYYY-MM-DD when present.
type CreateTodoRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	Status      string `json:"status"`
	Priority    string `json:"priority"`
	DueDate     string `json:"dueDate"`
}

// UpdateTodoRequest overwrites a todo's mutable fields.
type UpdateTodoRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	Status      string `json:"status" binding:"required"`
	Priority    string `json:"priority" binding:"required"`
	DueDate     string `json:"dueDate"`
}

// ShareRequest grants or updates a share on a note or todo.
type ShareRequest struct {
	UserID     string `json:"userID" binding:"required"`
	Permission string `json:"permission" binding:"required,oneof=read write"`
}
