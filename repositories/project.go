package repositories

import (
	"github.com/vulndesk-api/database"
	"github.com/vulndesk-api/models"
	"gorm.io/gorm"
)

// ProjectRepository handles database operations for projects
type ProjectRepository struct{}

// NewProjectRepository creates a new project repository instance
func NewProjectRepository() *ProjectRepository {
	return &ProjectRepository{}
}

// FindWithPagination retrieves projects with pagination, filtering and search
func (r *ProjectRepository) FindWithPagination(page, pageSize int, clientID, status, search string) ([]models.Project, int64, error) {
	var projects []models.Project
	var totalCount int64

	db := database.DB.Model(&models.Project{})

	if clientID != "" {
		db = db.Where("client_id = ?", clientID)
	}
	if status != "" {
		db = db.Where("status = ?", status)
	}
	if search != "" {
		searchPattern := "%" + search + "%"
		db = db.Where("(name ILIKE ? OR description ILIKE ?)", searchPattern, searchPattern)
	}

	if err := db.Count(&totalCount).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * pageSize
	err := db.Preload("TeamMembers").Preload("TeamMembers.Worker").
		Order("created_at desc").Limit(pageSize).Offset(offset).Find(&projects).Error
	return projects, totalCount, err
}

// FindByID retrieves a project with its team members
func (r *ProjectRepository) FindByID(id string) (models.Project, error) {
	var project models.Project
	result := database.DB.Preload("TeamMembers").Preload("TeamMembers.Worker").First(&project, "id = ?", id)
	return project, result.Error
}

// Create inserts a new project (with team members) into the database
func (r *ProjectRepository) Create(project models.Project) (models.Project, error) {
	result := database.DB.Create(&project)
	return project, result.Error
}

// Update modifies an existing project
func (r *ProjectRepository) Update(project models.Project) error {
	return database.DB.Save(&project).Error
}

// Delete soft-deletes a project and removes its schedule tasks
func (r *ProjectRepository) Delete(id string) error {
	return database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("project_id = ?", id).Delete(&models.GanttTask{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Project{}, "id = ?", id).Error
	})
}

// ReplaceTeamMembers swaps out all team members of a project in one transaction
func (r *ProjectRepository) ReplaceTeamMembers(projectID string, workerIDs []string) error {
	return database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("project_id = ?", projectID).Delete(&models.ProjectTeamMember{}).Error; err != nil {
			return err
		}
		if len(workerIDs) == 0 {
			return nil
		}
		members := make([]models.ProjectTeamMember, 0, len(workerIDs))
		for _, workerID := range workerIDs {
			members = append(members, models.ProjectTeamMember{ProjectID: projectID, WorkerID: workerID})
		}
		return tx.Create(&members).Error
	})
}
