package services

import (
	portsrepo "github.com/opslane/erp_backend/internal/core/ports/repositories"
	portssvc "github.com/opslane/erp_backend/internal/core/ports/services"
	"github.com/opslane/erp_backend/internal/platform/config"
)

// NewServiceContainer wires every service to its repository.
func NewServiceContainer(repos *portsrepo.RepositoryProvider, cfg *config.Config) *portssvc.ServiceContainer {
	return &portssvc.ServiceContainer{
		User:        NewUserService(repos.UserRepo),
		Token:       NewTokenService(cfg),
		GoogleOAuth: NewGoogleOAuthService(cfg),
		Account:     NewAccountService(repos.AccountRepo),
		DebitCard:   NewDebitCardService(repos.DebitCardRepo),
		Employee:    NewEmployeeService(repos.EmployeeRepo),
		Vendor:      NewVendorService(repos.VendorRepo),
		Payable:     NewPayableService(repos.PayableRepo),
		Receivable:  NewReceivableService(repos.ReceivableRepo),
		Project:     NewProjectService(repos.ProjectRepo),
		Asset:       NewAssetService(repos.AssetRepo),
		Note:        NewNoteService(repos.NoteRepo),
		Todo:        NewTodoService(repos.TodoRepo),
	}
}
