package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/taskforge-dev/taskforge/internal/models"
	"github.com/taskforge-dev/taskforge/internal/types"
	"github.com/taskforge-dev/taskforge/internal/utils"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const dateLayout = "2006-01-02"

type CreateProjectRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	StartDate   string `json:"start_date"`
	EndDate     string `json:"end_date"`
	Priority    string `json:"priority"`
	Status      string `json:"status"`
}

// EditProjectRequest carries a partial update: empty fields are left alone.
type EditProjectRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	StartDate   string `json:"start_date"`
	EndDate     string `json:"end_date"`
	Priority    string `json:"priority"`
	Status      string `json:"status"`
}

type ProjectHandler struct {
	db               *gorm.DB
	enforceOwnership bool
}

func NewProjectHandler(database *gorm.DB, enforceOwnership bool) *ProjectHandler {
	return &ProjectHandler{db: database, enforceOwnership: enforceOwnership}
}

func (h *ProjectHandler) Create(ctx *gin.Context) {
	var req CreateProjectRequest

	if err := ctx.BindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request"})
		return
	}

	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"message": "User not authenticated"})
		return
	}

	startDate, err := parseDate(req.StartDate)

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"message": "Invalid start_date, expected YYYY-MM-DD"})
		return
	}

	endDate, err := parseDate(req.EndDate)

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"message": "Invalid end_date, expected YYYY-MM-DD"})
		return
	}

	project := models.Project{
		Name:        req.Name,
		Description: req.Description,
		StartDate:   startDate,
		EndDate:     endDate,
		Priority:    req.Priority,
		Status:      req.Status,
		AdminID:     userID,
	}

	if err := h.db.Create(&project).Error; err != nil {
		serverError(ctx, "Error creating project", err)
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{
		"message": "Project created successfully",
		"project": projectResponse(project),
	})
}

func (h *ProjectHandler) ListMine(ctx *gin.Context) {
	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"message": "User not authenticated"})
		return
	}

	var projects []models.Project

	if err := h.db.Where("admin_id = ?", userID).Find(&projects).Error; err != nil {
		serverError(ctx, "Error fetching projects", err)
		return
	}

	response := make([]types.ProjectResponse, 0, len(projects))

	for _, project := range projects {
		response = append(response, projectResponse(project))
	}

	ctx.JSON(http.StatusOK, response)
}

func (h *ProjectHandler) View(ctx *gin.Context) {
	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"message": "User not authenticated"})
		return
	}

	var project models.Project
	projectID := ctx.Param("id")

	if err := h.db.Preload("Admin").Where("id = ?", projectID).First(&project).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"message": "Project not found"})
		} else {
			serverError(ctx, "Error retrieving project details", err)
		}
		return
	}

	if project.AdminID != userID {
		ctx.JSON(http.StatusForbidden, gin.H{"message": "You don't have permission to view this project"})
		return
	}

	response := projectResponse(project)
	response.Admin = &types.ProjectAdmin{
		ID:       project.Admin.ID,
		Username: project.Admin.Username,
		Email:    project.Admin.Email,
	}

	ctx.JSON(http.StatusOK, gin.H{
		"message": "Project details retrieved successfully",
		"project": response,
	})
}

func (h *ProjectHandler) Edit(ctx *gin.Context) {
	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"message": "User not authenticated"})
		return
	}

	var req EditProjectRequest

	if err := ctx.BindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request"})
		return
	}

	var project models.Project
	projectID := ctx.Param("id")

	if err := h.db.Where("id = ?", projectID).First(&project).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"message": "Project not found"})
		} else {
			serverError(ctx, "Error updating project", err)
		}
		return
	}

	if h.enforceOwnership && project.AdminID != userID {
		ctx.JSON(http.StatusForbidden, gin.H{"message": "You don't have permission to edit this project"})
		return
	}

	updates := make(map[string]interface{})

	if req.Name != "" {
		updates["name"] = req.Name
	}

	if req.Description != "" {
		updates["description"] = req.Description
	}

	if req.StartDate != "" {
		startDate, err := parseDate(req.StartDate)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, gin.H{"message": "Invalid start_date, expected YYYY-MM-DD"})
			return
		}
		updates["start_date"] = startDate
	}

	if req.EndDate != "" {
		endDate, err := parseDate(req.EndDate)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, gin.H{"message": "Invalid end_date, expected YYYY-MM-DD"})
			return
		}
		updates["end_date"] = endDate
	}

	if req.Priority != "" {
		updates["priority"] = req.Priority
	}

	if req.Status != "" {
		updates["status"] = req.Status
	}

	// An empty body is a valid no-op edit; skip the write entirely.
	if len(updates) > 0 {
		if err := h.db.Model(&project).Updates(updates).Error; err != nil {
			serverError(ctx, "Error updating project", err)
			return
		}

		if err := h.db.Where("id = ?", projectID).First(&project).Error; err != nil {
			serverError(ctx, "Error updating project", err)
			return
		}
	}

	ctx.JSON(http.StatusOK, gin.H{
		"message": "Project updated successfully",
		"project": projectResponse(project),
	})
}

func (h *ProjectHandler) Delete(ctx *gin.Context) {
	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"message": "User not authenticated"})
		return
	}

	var project models.Project
	projectID := ctx.Param("id")

	if err := h.db.Where("id = ?", projectID).First(&project).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"message": "Project not found"})
		} else {
			serverError(ctx, "Error deleting project", err)
		}
		return
	}

	if h.enforceOwnership && project.AdminID != userID {
		ctx.JSON(http.StatusForbidden, gin.H{"message": "You don't have permission to delete this project"})
		return
	}

	deleted := projectResponse(project)

	if err := h.db.Delete(&project).Error; err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"message": "Project deleted successfully",
		"project": deleted,
	})
}

func projectResponse(project models.Project) types.ProjectResponse {
	return types.ProjectResponse{
		ID:          project.ID,
		Name:        project.Name,
		Description: project.Description,
		StartDate:   formatDate(project.StartDate),
		EndDate:     formatDate(project.EndDate),
		Priority:    project.Priority,
		Status:      project.Status,
		AdminID:     project.AdminID,
	}
}

func parseDate(value string) (datatypes.Date, error) {
	if value == "" {
		return datatypes.Date{}, nil
	}

	parsed, err := time.Parse(dateLayout, value)

	if err != nil {
		return datatypes.Date{}, err
	}

	return datatypes.Date(parsed), nil
}

func formatDate(value datatypes.Date) string {
	t := time.Time(value)

	if t.IsZero() {
		return ""
	}

	return t.Format(dateLayout)
}
