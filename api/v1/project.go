package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/vulndesk-api/dto"
	"github.com/vulndesk-api/services"
)

var projectService = services.NewProjectService()
var ganttService = services.NewGanttService()

// ListProjects godoc
// @Summary List projects with pagination and filtering
// @Tags projects
// @Accept json
// @Produce json
// @Param page query int false "Page number"
// @Param pageSize query int false "Page size"
// @Param clientId query string false "Filter by client"
// @Param status query string false "Filter by status"
// @Param search query string false "Search term for project name or description"
// @Success 200 {object} dto.ProjectListResponse
// @Router /projects [get]
func ListProjects(c *gin.Context) {
	filter := dto.ProjectFilter{
		Pagination: parsePagination(c),
		ClientID:   c.Query("clientId"),
		Status:     c.Query("status"),
		Search:     c.Query("search"),
	}

	response, err := projectService.ListProjects(filter)
	if err != nil {
		respondError(c, "Failed to retrieve projects", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   response,
	})
}

// GetProject godoc
// @Summary Get a project with its team and schedule
// @Tags projects
// @Produce json
// @Param id path string true "Project ID"
// @Success 200 {object} models.Project
// @Router /projects/{id} [get]
func GetProject(c *gin.Context) {
	id, ok := requireUUIDParam(c, "id")
	if !ok {
		return
	}

	project, err := projectService.GetProject(id)
	if err != nil {
		respondError(c, "Failed to retrieve project", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   project,
	})
}

// CreateProject godoc
// @Summary Create a project
// @Tags projects
// @Accept json
// @Produce json
// @Param project body dto.CreateProjectRequest true "Project payload"
// @Success 201 {object} models.Project
// @Router /projects [post]
func CreateProject(c *gin.Context) {
	var req dto.CreateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request body", err)
		return
	}

	project, err := projectService.CreateProject(req)
	if err != nil {
		respondError(c, "Failed to create project", err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"status": "success",
		"data":   project,
	})
}

// UpdateProject godoc
// @Summary Update a project
// @Tags projects
// @Accept json
// @Produce json
// @Param id path string true "Project ID"
// @Param project body dto.UpdateProjectRequest true "Project payload"
// @Success 200 {object} models.Project
// @Router /projects/{id} [put]
func UpdateProject(c *gin.Context) {
	id, ok := requireUUIDParam(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request body", err)
		return
	}

	project, err := projectService.UpdateProject(id, req)
	if err != nil {
		respondError(c, "Failed to update project", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   project,
	})
}

// DeleteProject godoc
// @Summary Delete a project with its team and schedule
// @Tags projects
// @Produce json
// @Param id path string true "Project ID"
// @Success 200 {object} map[string]string
// @Router /projects/{id} [delete]
func DeleteProject(c *gin.Context) {
	id, ok := requireUUIDParam(c, "id")
	if !ok {
		return
	}

	if err := projectService.DeleteProject(id); err != nil {
		respondError(c, "Failed to delete project", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Project deleted successfully",
	})
}

// ListGanttTasks godoc
// @Summary List the schedule tasks of a project
// @Tags projects
// @Produce json
// @Param id path string true "Project ID"
// @Success 200 {array} models.GanttTask
// @Router /projects/{id}/gantt [get]
func ListGanttTasks(c *gin.Context) {
	id, ok := requireUUIDParam(c, "id")
	if !ok {
		return
	}

	tasks, err := ganttService.ListTasks(id)
	if err != nil {
		respondError(c, "Failed to retrieve schedule tasks", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   tasks,
	})
}

// DeleteProjectGanttTasks godoc
// @Summary Delete all schedule tasks of a project
// @Tags projects
// @Produce json
// @Param id path string true "Project ID"
// @Success 200 {object} map[string]string
// @Router /projects/{id}/gantt [delete]
func DeleteProjectGanttTasks(c *gin.Context) {
	id, ok := requireUUIDParam(c, "id")
	if !ok {
		return
	}

	if err := ganttService.DeleteProjectTasks(id); err != nil {
		respondError(c, "Failed to delete schedule tasks", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Schedule tasks deleted successfully",
	})
}

// GetGanttTask godoc
// @Summary Get a schedule task by ID
// @Tags projects
// @Produce json
// @Param id path string true "Task ID"
// @Success 200 {object} models.GanttTask
// @Router /gantt/{id} [get]
func GetGanttTask(c *gin.Context) {
	id, ok := requireUUIDParam(c, "id")
	if !ok {
		return
	}

	task, err := ganttService.GetTask(id)
	if err != nil {
		respondError(c, "Failed to retrieve schedule task", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   task,
	})
}

// CreateGanttTask godoc
// @Summary Create a schedule task inside a project's date window
// @Tags projects
// @Accept json
// @Produce json
// @Param task body dto.CreateGanttTaskRequest true "Task payload"
// @Success 201 {object} models.GanttTask
// @Router /gantt [post]
func CreateGanttTask(c *gin.Context) {
	var req dto.CreateGanttTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request body", err)
		return
	}

	task, err := ganttService.CreateTask(req)
	if err != nil {
		respondError(c, "Failed to create schedule task", err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"status": "success",
		"data":   task,
	})
}

// UpdateGanttTask godoc
// @Summary Update a schedule task
// @Tags projects
// @Accept json
// @Produce json
// @Param id path string true "Task ID"
// @Param task body dto.UpdateGanttTaskRequest true "Task payload"
// @Success 200 {object} models.GanttTask
// @Router /gantt/{id} [put]
func UpdateGanttTask(c *gin.Context) {
	id, ok := requireUUIDParam(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateGanttTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request body", err)
		return
	}

	task, err := ganttService.UpdateTask(id, req)
	if err != nil {
		respondError(c, "Failed to update schedule task", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   task,
	})
}

// DeleteGanttTask godoc
// @Summary Delete a schedule task
// @Tags projects
// @Produce json
// @Param id path string true "Task ID"
// @Success 200 {object} map[string]string
// @Router /gantt/{id} [delete]
func DeleteGanttTask(c *gin.Context) {
	id, ok := requireUUIDParam(c, "id")
	if !ok {
		return
	}

	if err := ganttService.DeleteTask(id); err != nil {
		respondError(c, "Failed to delete schedule task", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Schedule task deleted successfully",
	})
}
