package services

import (
	"context"

	"github.com/opslane/erp_backend/internal/core/domain"
	"github.com/opslane/erp_backend/internal/dto"
)

// AccountSvcFacade manages banks and company bank accounts.
type AccountSvcFacade interface {
	ListAccounts(ctx context.Context) ([]domain.BankAccount, error)
	GetAccount(ctx context.Context, accountID string) (*domain.BankAccount, error)
	CreateAccount(ctx context.Context, req dto.CreateAccountRequest) (*domain.BankAccount, error)
}

// DebitCardSvcFacade manages debit cards.
type DebitCardSvcFacade interface {
	ListCards(ctx context.Context) ([]domain.DebitCard, error)
	CreateCard(ctx context.Context, req dto.CreateDebitCardRequest) (*domain.DebitCard, error)
	DeactivateCard(ctx context.Context, cardID string) error
}

// EmployeeSvcFacade manages employees.
type EmployeeSvcFacade interface {
	ListEmployees(ctx context.Context) ([]domain.Employee, error)
	CreateEmployee(ctx context.Context, req dto.CreateEmployeeRequest) (*domain.Employee, error)
}

// VendorSvcFacade manages vendors.
type VendorSvcFacade interface {
	ListVendors(ctx context.Context) ([]domain.Vendor, error)
	CreateVendor(ctx context.Context, req dto.CreateVendorRequest) (*domain.Vendor, error)
}

// PayableSvcFacade manages payables and their side effects.
type PayableSvcFacade interface {
	ListPayables(ctx context.Context) ([]domain.Payable, error)
	CreatePayable(ctx context.Context, req dto.CreatePayableRequest) (*domain.Payable, error)
}

// ReceivableSvcFacade manages receivables.
type ReceivableSvcFacade interface {
	ListReceivables(ctx context.Context) ([]domain.Receivable, error)
	CreateReceivable(ctx context.Context, req dto.CreateReceivableRequest) (*domain.Receivable, error)
}

// ProjectSvcFacade manages projects and their line items.
type ProjectSvcFacade interface {
	ListProjects(ctx context.Context) ([]domain.Project, error)
	CreateProject(ctx context.Context, req dto.CreateProjectRequest) (*domain.Project, error)
	ListItems(ctx context.Context, projectID string) ([]domain.ProjectItem, error)
	CreateItem(ctx context.Context, projectID string, req dto.CreateProjectItemRequest) (*domain.ProjectItem, error)
	UpdateItem(ctx context.Context, projectID, requirementName string, req dto.UpdateProjectItemRequest) (*domain.ProjectItem, error)
	DeleteItem(ctx context.Context, projectID, requirementName string) error
}

// AssetSvcFacade manages fixed assets.
type AssetSvcFacade interface {
	ListAssets(ctx context.Context) ([]domain.Asset, error)
	CreateAsset(ctx context.Context, req dto.CreateAssetRequest) (*domain.Asset, error)
}

// NoteSvcFacade manages notes and their shares on behalf of a viewer.
type NoteSvcFacade interface {
	ListNotes(ctx context.Context, viewerID string) ([]domain.Note, error)
	CreateNote(ctx context.Context, ownerID string, req dto.CreateNoteRequest) (*domain.Note, error)
	UpdateNote(ctx context.Context, viewerID, noteID string, req dto.UpdateNoteRequest) (*domain.Note, error)
	DeleteNote(ctx context.Context, callerID, noteID string) error
	ShareNote(ctx context.Context, callerID, noteID string, req dto.ShareRequest) (*domain.Share, error)
	UnshareNote(ctx context.Context, callerID, noteID, shareID string) error
}

// TodoSvcFacade manages todos and their shares on behalf of a viewer.
type TodoSvcFacade interface {
	ListTodos(ctx context.Context, viewerID string) ([]domain.Todo, error)
	CreateTodo(ctx context.Context, ownerID string, req dto.CreateTodoRequest) (*domain.Todo, error)
	UpdateTodo(ctx context.Context, viewerID, todoID string, req dto.UpdateTodoRequest) (*domain.Todo, error)
	DeleteTodo(ctx context.Context, callerID, todoID string) error
	ShareTodo(ctx context.Context, callerID, todoID string, req dto.ShareRequest) (*domain.Share, error)
	UnshareTodo(ctx context.Context, callerID, todoID, shareID string) error
}
