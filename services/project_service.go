package services

import (
	"github.com/pkg/errors"
	"github.com/vulndesk-api/dto"
	"github.com/vulndesk-api/models"
	"github.com/vulndesk-api/repositories"
	"github.com/vulndesk-api/utils"
	"gorm.io/gorm"
)

// ProjectService handles business logic for projects and their teams
type ProjectService struct {
	projectRepo *repositories.ProjectRepository
	clientRepo  *repositories.ClientRepository
	userRepo    *repositories.UserAccountRepository
}

// NewProjectService creates a new project service instance
func NewProjectService() *ProjectService {
	return &ProjectService{
		projectRepo: repositories.NewProjectRepository(),
		clientRepo:  repositories.NewClientRepository(),
		userRepo:    repositories.NewUserAccountRepository(),
	}
}

// ListProjects retrieves projects with pagination and filtering
func (s *ProjectService) ListProjects(filter dto.ProjectFilter) (dto.ProjectListResponse, error) {
	filter.Normalize()

	projects, totalCount, err := s.projectRepo.FindWithPagination(
		filter.Page, filter.PageSize, filter.ClientID, filter.Status, filter.Search,
	)
	if err != nil {
		return dto.ProjectListResponse{}, err
	}

	return dto.ProjectListResponse{
		Projects: projects,
		ListMeta: dto.NewListMeta(totalCount, filter.Page, filter.PageSize),
	}, nil
}

// GetProject retrieves a project with its team and schedule
func (s *ProjectService) GetProject(id string) (models.Project, error) {
	project, err := s.projectRepo.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Project{}, errors.Wrap(ErrNotFound, "project")
	}
	return project, err
}

// CreateProject validates the client, dates and team, then inserts the project
func (s *ProjectService) CreateProject(req dto.CreateProjectRequest) (models.Project, error) {
	if _, err := s.clientRepo.FindByID(req.ClientID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Project{}, errors.Wrap(ErrNotFound, "client")
		}
		return models.Project{}, err
	}

	startDate, err := utils.ParseDate(req.StartDate)
	if err != nil {
		return models.Project{}, err
	}
	endDate, err := utils.ParseDate(req.EndDate)
	if err != nil {
		return models.Project{}, err
	}
	if endDate.Before(startDate) {
		return models.Project{}, validationErrorf("project end date must not precede its start date")
	}

	if err := s.validateWorkers(req.TeamMemberIDs); err != nil {
		return models.Project{}, err
	}

	project := models.Project{
		ClientID:    req.ClientID,
		Name:        req.Name,
		Description: req.Description,
		Type:        models.ProjectType(req.Type),
		Status:      models.ProjectActive,
		Priority:    models.PriorityHigh,
		StartDate:   startDate,
		EndDate:     endDate,
		Budget:      req.Budget,
	}
	if req.Status != "" {
		project.Status = models.ProjectStatus(req.Status)
	}
	if req.Priority != "" {
		project.Priority = models.PriorityType(req.Priority)
	}
	if req.Progress != nil {
		project.Progress = *req.Progress
	}

	created, err := s.projectRepo.Create(project)
	if err != nil {
		return models.Project{}, err
	}

	if len(req.TeamMemberIDs) > 0 {
		if err := s.projectRepo.ReplaceTeamMembers(created.ID, req.TeamMemberIDs); err != nil {
			return models.Project{}, err
		}
	}

	return s.projectRepo.FindByID(created.ID)
}

// UpdateProject applies a partial update; a provided team member list
// replaces the existing team wholesale
func (s *ProjectService) UpdateProject(id string, req dto.UpdateProjectRequest) (models.Project, error) {
	project, err := s.projectRepo.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Project{}, errors.Wrap(ErrNotFound, "project")
	}
	if err != nil {
		return models.Project{}, err
	}

	if req.Name != nil {
		project.Name = *req.Name
	}
	if req.Description != nil {
		project.Description = *req.Description
	}
	if req.Type != nil {
		project.Type = models.ProjectType(*req.Type)
	}
	if req.Status != nil {
		project.Status = models.ProjectStatus(*req.Status)
	}
	if req.Priority != nil {
		project.Priority = models.PriorityType(*req.Priority)
	}
	if req.StartDate != nil {
		startDate, err := utils.ParseDate(*req.StartDate)
		if err != nil {
			return models.Project{}, err
		}
		project.StartDate = startDate
	}
	if req.EndDate != nil {
		endDate, err := utils.ParseDate(*req.EndDate)
		if err != nil {
			return models.Project{}, err
		}
		project.EndDate = endDate
	}
	if project.EndDate.Before(project.StartDate) {
		return models.Project{}, validationErrorf("project end date must not precede its start date")
	}
	if req.Budget != nil {
		project.Budget = req.Budget
	}
	if req.Progress != nil {
		project.Progress = *req.Progress
	}

	// Preloaded associations must not be saved back
	project.Client = models.Client{}
	project.TeamMembers = nil
	project.GanttTasks = nil

	if err := s.projectRepo.Update(project); err != nil {
		return models.Project{}, err
	}

	if req.TeamMemberIDs != nil {
		if err := s.validateWorkers(*req.TeamMemberIDs); err != nil {
			return models.Project{}, err
		}
		if err := s.projectRepo.ReplaceTeamMembers(id, *req.TeamMemberIDs); err != nil {
			return models.Project{}, err
		}
	}

	return s.projectRepo.FindByID(id)
}

// DeleteProject removes a project together with its team assignments
// and schedule tasks
func (s *ProjectService) DeleteProject(id string) error {
	if _, err := s.projectRepo.FindByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errors.Wrap(ErrNotFound, "project")
		}
		return err
	}
	return s.projectRepo.Delete(id)
}

// validateWorkers checks each team member reference resolves to a
// worker account
func (s *ProjectService) validateWorkers(workerIDs []string) error {
	for _, workerID := range workerIDs {
		account, err := s.userRepo.FindByID(workerID)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errors.Wrapf(ErrNotFound, "worker %s", workerID)
		}
		if err != nil {
			return err
		}
		if account.UserType != models.UserTypeWorker {
			return validationErrorf("account %s is not a worker", workerID)
		}
	}
	return nil
}
