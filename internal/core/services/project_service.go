package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/SscSPs/cashclaim/internal/apperrors"
	"github.com/SscSPs/cashclaim/internal/core/domain"
	portsrepo "github.com/SscSPs/cashclaim/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/cashclaim/internal/core/ports/services"
	"github.com/SscSPs/cashclaim/internal/dto"
)

type projectService struct {
	BaseService
	projectRepo portsrepo.ProjectRepositoryFacade
	ledgerRepo  portsrepo.LedgerReader
}

// NewProjectService creates a new project service.
func NewProjectService(projectRepo portsrepo.ProjectRepositoryFacade, ledgerRepo portsrepo.LedgerReader) portssvc.ProjectSvcFacade {
	return &projectService{
		projectRepo: projectRepo,
		ledgerRepo:  ledgerRepo,
	}
}

var _ portssvc.ProjectSvcFacade = (*projectService)(nil)

func (s *projectService) EnsureDefaultProject(ctx context.Context, userName string) (*domain.Project, error) {
	userName = strings.TrimSpace(userName)
	if userName == "" {
		return nil, fmt.Errorf("%w: user is required", apperrors.ErrValidation)
	}
	project, err := s.projectRepo.EnsureProject(ctx, userName, domain.DefaultProjectName, domain.DefaultProjectDescription)
	if err != nil {
		s.LogError(ctx, err, "Failed to ensure default project", slog.String("user", userName))
		return nil, fmt.Errorf("failed to ensure default project: %w", err)
	}
	return project, nil
}

func (s *projectService) CreateProject(ctx context.Context, principal domain.Principal, req dto.CreateProjectRequest) (*domain.Project, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: project name is required", apperrors.ErrValidation)
	}

	project, err := s.projectRepo.SaveProject(ctx, domain.Project{
		UserName:    principal.UserName,
		Name:        name,
		Description: strings.TrimSpace(req.Description),
	})
	if err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			return nil, fmt.Errorf("%w: project %q already exists", apperrors.ErrDuplicate, name)
		}
		s.LogError(ctx, err, "Failed to create project", slog.String("name", name))
		return nil, fmt.Errorf("failed to create project: %w", err)
	}

	s.LogInfo(ctx, "Project created", slog.Int64("project_id", project.ProjectID), slog.String("name", name))
	return project, nil
}

func (s *projectService) ListProjects(ctx context.Context, principal domain.Principal, userName string) ([]domain.ProjectBalance, error) {
	userName = strings.TrimSpace(userName)
	if userName == "" {
		userName = principal.UserName
	}
	if err := s.RequireAccess(ctx, principal, userName); err != nil {
		return nil, err
	}

	projects, err := s.projectRepo.ListProjectsByUser(ctx, userName)
	if err != nil {
		s.LogError(ctx, err, "Failed to list projects", slog.String("user", userName))
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}

	result := make([]domain.ProjectBalance, 0, len(projects))
	for _, p := range projects {
		projectID := p.ProjectID
		totals, err := s.ledgerRepo.SumTotals(ctx, domain.LedgerFilter{UserName: &userName, ProjectID: &projectID})
		if err != nil {
			return nil, fmt.Errorf("failed to compute balance of project %q: %w", p.Name, err)
		}
		result = append(result, domain.ProjectBalance{Project: p, Balance: totals.Net()})
	}
	return result, nil
}
