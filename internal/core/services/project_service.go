package services

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/opslane/erp_backend/internal/core/domain"
	portsrepo "github.com/opslane/erp_backend/internal/core/ports/repositories"
	portssvc "github.com/opslane/erp_backend/internal/core/ports/services"
	"github.com/opslane/erp_backend/internal/dto"
)

type projectService struct {
	projectRepo portsrepo.ProjectRepository
}

// NewProjectService creates a new project service.
func NewProjectService(projectRepo portsrepo.ProjectRepository) portssvc.ProjectSvcFacade {
	return &projectService{projectRepo: projectRepo}
}

var _ portssvc.ProjectSvcFacade = (*projectService)(nil)

func (s *projectService) ListProjects(ctx context.Context) ([]domain.Project, error) {
	return s.projectRepo.ListProjects(ctx)
}

func (s *projectService) CreateProject(ctx context.Context, req dto.CreateProjectRequest) (*domain.Project, error) {
	project := domain.Project{
		ProjectID:             uuid.NewString(),
		Name:                  req.Name,
		ExtraBudgetAllocation: decimal.Zero,
		CreatedAt:             time.Now().UTC(),
	}
	if err := s.projectRepo.SaveProject(ctx, project); err != nil {
		return nil, err
	}
	return &project, nil
}

func (s *projectService) ListItems(ctx context.Context, projectID string) ([]domain.ProjectItem, error) {
	// The repository surfaces a 404 for an unknown project rather than an
	// empty list.
	return s.projectRepo.ListItems(ctx, projectID)
}

func (s *projectService) CreateItem(ctx context.Context, projectID string, req dto.CreateProjectItemRequest) (*domain.ProjectItem, error) {
	item := domain.ProjectItem{
		ProjectID:       projectID,
		RequirementName: req.RequirementName,
		ServiceCategory: req.ServiceCategory,
		UnitCost:        *req.UnitCost,
		RequirementType: req.RequirementType,
		CreatedAt:       time.Now().UTC(),
	}
	if err := s.projectRepo.CreateItem(ctx, item); err != nil {
		return nil, err
	}
	return &item, nil
}

func (s *projectService) UpdateItem(ctx context.Context, projectID, requirementName string, req dto.UpdateProjectItemRequest) (*domain.ProjectItem, error) {
	item := domain.ProjectItem{
		ProjectID:       projectID,
		RequirementName: requirementName,
		ServiceCategory: req.ServiceCategory,
		UnitCost:        *req.UnitCost,
		RequirementType: req.RequirementType,
	}
	if err := s.projectRepo.UpdateItem(ctx, item); err != nil {
		return nil, err
	}
	return &item, nil
}

func (s *projectService) DeleteItem(ctx context.Context, projectID, requirementName string) error {
	return s.projectRepo.DeleteItem(ctx, projectID, requirementName)
}
