package repositories

import (
	"github.com/vulndesk-api/database"
	"github.com/vulndesk-api/models"
)

// GanttTaskRepository handles database operations for project schedule tasks
type GanttTaskRepository struct{}

// NewGanttTaskRepository creates a new gantt task repository instance
func NewGanttTaskRepository() *GanttTaskRepository {
	return &GanttTaskRepository{}
}

// FindByProject retrieves all tasks of a project ordered by start date
func (r *GanttTaskRepository) FindByProject(projectID string) ([]models.GanttTask, error) {
	var tasks []models.GanttTask
	err := database.DB.Where("project_id = ?", projectID).Order("start_date asc").Find(&tasks).Error
	return tasks, err
}

// FindByID retrieves a task by its ID
func (r *GanttTaskRepository) FindByID(id string) (models.GanttTask, error) {
	var task models.GanttTask
	result := database.DB.First(&task, "id = ?", id)
	return task, result.Error
}

// Create inserts a new task into the database
func (r *GanttTaskRepository) Create(task models.GanttTask) (models.GanttTask, error) {
	result := database.DB.Create(&task)
	return task, result.Error
}

// Update modifies an existing task
func (r *GanttTaskRepository) Update(task models.GanttTask) error {
	return database.DB.Save(&task).Error
}

// Delete removes a task
func (r *GanttTaskRepository) Delete(id string) error {
	return database.DB.Delete(&models.GanttTask{}, "id = ?", id).Error
}

// DeleteByProject removes all tasks of a project
func (r *GanttTaskRepository) DeleteByProject(projectID string) error {
	return database.DB.Delete(&models.GanttTask{}, "project_id = ?", projectID).Error
}
