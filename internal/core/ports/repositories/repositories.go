package repositories

import (
	"context"

	"github.com/opslane/erp_backend/internal/core/domain"
)

// UserRepository persists application users.
type UserRepository interface {
	SaveUser(ctx context.Context, user domain.User) error
	UpsertUserByEmail(ctx context.Context, user domain.User) (*domain.User, error)
	FindUserByID(ctx context.Context, userID string) (*domain.User, error)
	// FindUserByIdentifier matches on email first, then on name.
	FindUserByIdentifier(ctx context.Context, identifier string) (*domain.User, error)
	ListUsers(ctx context.Context) ([]domain.User, error)
}

// AccountRepository persists banks and company bank accounts.
type AccountRepository interface {
	// CreateAccountWithBank looks up or creates the bank row and inserts the
	// account within a single transaction. The returned account carries the
	// resolved bank id.
	CreateAccountWithBank(ctx context.Context, bank domain.Bank, account domain.BankAccount) (*domain.BankAccount, error)
	ListAccounts(ctx context.Context) ([]domain.BankAccount, error)
	FindAccountByID(ctx context.Context, accountID string) (*domain.BankAccount, error)
}

// DebitCardRepository persists debit cards.
type DebitCardRepository interface {
	SaveCard(ctx context.Context, card domain.DebitCard) error
	ListCards(ctx context.Context) ([]domain.DebitCard, error)
	DeactivateCard(ctx context.Context, cardID string) error
}

// EmployeeRepository persists employees.
type EmployeeRepository interface {
	SaveEmployee(ctx context.Context, employee domain.Employee) error
	ListEmployees(ctx context.Context) ([]domain.Employee, error)
}

// VendorRepository persists vendors.
type VendorRepository interface {
	SaveVendor(ctx context.Context, vendor domain.Vendor) error
	ListVendors(ctx context.Context) ([]domain.Vendor, error)
}

// PayableRepository persists payables together with their side-effect rows.
type PayableRepository interface {
	// SavePayable inserts the payable and, atomically in the same
	// transaction, the optional petty-cash transaction (looking up or
	// creating the singleton petty-cash account and decrementing its
	// balance) and the optional payment record. Any failure rolls back all
	// writes.
	SavePayable(ctx context.Context, payable domain.Payable, pettyTxn *domain.PettyCashTransaction, payment *domain.PaymentRecord) error
	ListPayables(ctx context.Context) ([]domain.Payable, error)
}

// ReceivableRepository persists receivables.
type ReceivableRepository interface {
	SaveReceivable(ctx context.Context, receivable domain.Receivable) error
	ListReceivables(ctx context.Context) ([]domain.Receivable, error)
}

// ProjectRepository persists projects and their line items, maintaining the
// extra-budget-allocation invariant transactionally.
type ProjectRepository interface {
	SaveProject(ctx context.Context, project domain.Project) error
	ListProjects(ctx context.Context) ([]domain.Project, error)
	FindProjectByID(ctx context.Context, projectID string) (*domain.Project, error)
	ListItems(ctx context.Context, projectID string) ([]domain.ProjectItem, error)
	CreateItem(ctx context.Context, item domain.ProjectItem) error
	UpdateItem(ctx context.Context, item domain.ProjectItem) error
	DeleteItem(ctx context.Context, projectID, requirementName string) error
}

// AssetRepository persists fixed assets.
type AssetRepository interface {
	SaveAsset(ctx context.Context, asset domain.Asset) error
	ListAssets(ctx context.Context) ([]domain.Asset, error)
}

// NoteRepository persists notes and their share grants.
type NoteRepository interface {
	SaveNote(ctx context.Context, note domain.Note) error
	// ListNotesForViewer returns the union of notes the viewer owns or has a
	// share on, annotated with the viewer's access level, pinned-first then
	// last-updated descending.
	ListNotesForViewer(ctx context.Context, viewerID string) ([]domain.Note, error)
	FindNoteByID(ctx context.Context, noteID string) (*domain.Note, error)
	FindShare(ctx context.Context, noteID, userID string) (*domain.Share, error)
	UpdateNote(ctx context.Context, note domain.Note) error
	// DeleteNoteOwned deletes only when ownerID matches; a non-owner caller
	// is indistinguishable from a missing note.
	DeleteNoteOwned(ctx context.Context, noteID, ownerID string) error
	UpsertShare(ctx context.Context, share domain.Share) (*domain.Share, error)
	DeleteShare(ctx context.Context, noteID, shareID string) error
}

// TodoRepository persists todos and their share grants.
type TodoRepository interface {
	SaveTodo(ctx context.Context, todo domain.Todo) error
	// ListTodosForViewer returns the union of todos the viewer owns or has a
	// share on, annotated with the viewer's access level, ordered by status
	// rank, priority rank, due date (nulls last), then creation time
	// descending.
	ListTodosForViewer(ctx context.Context, viewerID string) ([]domain.Todo, error)
	FindTodoByID(ctx context.Context, todoID string) (*domain.Todo, error)
	FindShare(ctx context.Context, todoID, userID string) (*domain.Share, error)
	UpdateTodo(ctx context.Context, todo domain.Todo) error
	DeleteTodoOwned(ctx context.Context, todoID, ownerID string) error
	UpsertShare(ctx context.Context, share domain.Share) (*domain.Share, error)
	DeleteShare(ctx context.Context, todoID, shareID string) error
}

// RepositoryProvider bundles all repositories for service construction.
type RepositoryProvider struct {
	UserRepo       UserRepository
	AccountRepo    AccountRepository
	DebitCardRepo  DebitCardRepository
	EmployeeRepo   EmployeeRepository
	VendorRepo     VendorRepository
	PayableRepo    PayableRepository
	ReceivableRepo ReceivableRepository
	ProjectRepo    ProjectRepository
	AssetRepo      AssetRepository
	NoteRepo       NoteRepository
	TodoRepo       TodoRepository
}
