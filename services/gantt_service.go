package services

import (
	"time"

	"github.com/pkg/errors"
	"github.com/vulndesk-api/dto"
	"github.com/vulndesk-api/models"
	"github.com/vulndesk-api/repositories"
	"github.com/vulndesk-api/utils"
	"gorm.io/gorm"
)

// GanttService handles business logic for project schedule tasks
type GanttService struct {
	taskRepo    *repositories.GanttTaskRepository
	projectRepo *repositories.ProjectRepository
}

// NewGanttService creates a new gantt service instance
func NewGanttService() *GanttService {
	return &GanttService{
		taskRepo:    repositories.NewGanttTaskRepository(),
		projectRepo: repositories.NewProjectRepository(),
	}
}

// ListTasks retrieves the schedule tasks of a project, ordered by start date
func (s *GanttService) ListTasks(projectID string) ([]models.GanttTask, error) {
	if _, err := s.projectRepo.FindByID(projectID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.Wrap(ErrNotFound, "project")
		}
		return nil, err
	}
	return s.taskRepo.FindByProject(projectID)
}

// CreateTask validates the dates against the project window and inserts the task
func (s *GanttService) CreateTask(req dto.CreateGanttTaskRequest) (models.GanttTask, error) {
	project, err := s.projectRepo.FindByID(req.ProjectID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.GanttTask{}, errors.Wrap(ErrNotFound, "project")
	}
	if err != nil {
		return models.GanttTask{}, err
	}

	startDate, err := utils.ParseDate(req.StartDate)
	if err != nil {
		return models.GanttTask{}, err
	}
	endDate, err := utils.ParseDate(req.EndDate)
	if err != nil {
		return models.GanttTask{}, err
	}
	if err := validateTaskWindow(project, startDate, endDate); err != nil {
		return models.GanttTask{}, err
	}

	return s.taskRepo.Create(models.GanttTask{
		ProjectID: req.ProjectID,
		Name:      req.Name,
		StartDate: startDate,
		EndDate:   endDate,
	})
}

// GetTask retrieves a single schedule task
func (s *GanttService) GetTask(id string) (models.GanttTask, error) {
	task, err := s.taskRepo.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.GanttTask{}, errors.Wrap(ErrNotFound, "task")
	}
	return task, err
}

// UpdateTask applies a partial update to a schedule task
func (s *GanttService) UpdateTask(id string, req dto.UpdateGanttTaskRequest) (models.GanttTask, error) {
	task, err := s.taskRepo.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.GanttTask{}, errors.Wrap(ErrNotFound, "task")
	}
	if err != nil {
		return models.GanttTask{}, err
	}

	if req.Name != nil {
		task.Name = *req.Name
	}
	if req.StartDate != nil {
		startDate, err := utils.ParseDate(*req.StartDate)
		if err != nil {
			return models.GanttTask{}, err
		}
		task.StartDate = startDate
	}
	if req.EndDate != nil {
		endDate, err := utils.ParseDate(*req.EndDate)
		if err != nil {
			return models.GanttTask{}, err
		}
		task.EndDate = endDate
	}

	project, err := s.projectRepo.FindByID(task.ProjectID)
	if err != nil {
		return models.GanttTask{}, err
	}
	if err := validateTaskWindow(project, task.StartDate, task.EndDate); err != nil {
		return models.GanttTask{}, err
	}

	if err := s.taskRepo.Update(task); err != nil {
		return models.GanttTask{}, err
	}
	return task, nil
}

// DeleteTask removes a schedule task
func (s *GanttService) DeleteTask(id string) error {
	if _, err := s.taskRepo.FindByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errors.Wrap(ErrNotFound, "task")
		}
		return err
	}
	return s.taskRepo.Delete(id)
}

// DeleteProjectTasks removes every schedule task of a project
func (s *GanttService) DeleteProjectTasks(projectID string) error {
	if _, err := s.projectRepo.FindByID(projectID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errors.Wrap(ErrNotFound, "project")
		}
		return err
	}
	return s.taskRepo.DeleteByProject(projectID)
}

// validateTaskWindow checks a task lies inside its project's date range
func validateTaskWindow(project models.Project, startDate, endDate time.Time) error {
	if endDate.Before(startDate) {
		return validationErrorf("task end date must not precede its start date")
	}
	if startDate.Before(project.StartDate) || endDate.After(project.EndDate) {
		return validationErrorf(
			"task dates must lie within the project window %s to %s",
			project.StartDate.Format("2006-01-02"), project.EndDate.Format("2006-01-02"),
		)
	}
	return nil
}
