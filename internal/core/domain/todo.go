package domain

import "time"

// TodoStatus is the progress state of a todo. List ordering ranks
// pending < in_progress < completed.
type TodoStatus string

const (
	TodoPending    TodoStatus = "pending"
	TodoInProgress TodoStatus = "in_progress"
	TodoCompleted  TodoStatus = "completed"
)

// Valid reports whether s is a known status.
func (s TodoStatus) Valid() bool {
	return s == TodoPending || s == TodoInProgress || s == TodoCompleted
}

// TodoPriority ranks high < medium < low for list ordering.
type TodoPriority string

const (
	PriorityHigh   TodoPriority = "high"
	PriorityMedium TodoPriority = "medium"
	PriorityLow    TodoPriority = "low"
)

// Valid reports whether p is a known priority.
func (p TodoPriority) Valid() bool {
	return p == PriorityHigh || p == PriorityMedium || p == PriorityLow
}

// Todo is a task owned by a user and optionally shared with others.
type Todo struct {
	TodoID        string       `json:"todoID"`  // Primary Key (UUID)
	OwnerID       string       `json:"ownerID"` // FK -> users.user_id
	Title         string       `json:"title"`
	Description   string       `json:"description"`
	Status        TodoStatus   `json:"status"`
	Priority      TodoPriority `json:"priority"`
	DueDate       *time.Time   `json:"dueDate"`
	CreatedAt     time.Time    `json:"createdAt"`
	LastUpdatedAt time.Time    `json:"lastUpdatedAt"`

	// Access is the viewer's computed access level, set by list/get queries.
	Access AccessLevel `json:"access,omitempty"`
	Shares []Share     `json:"shares,omitempty"`
}
