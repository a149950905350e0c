package handlers

import (
	"bytes"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/alimgiray/showcase/internal/models"
	"github.com/alimgiray/showcase/internal/services"
	"github.com/alimgiray/showcase/pkg/logger"
	"github.com/gin-gonic/gin"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type ProjectHandler struct {
	projectService *services.ProjectService
	exportService  *services.ExportService
}

func NewProjectHandler(projectService *services.ProjectService, exportService *services.ExportService) *ProjectHandler {
	return &ProjectHandler{
		projectService: projectService,
		exportService:  exportService,
	}
}

// ListProjects returns every project with its users, pending users and images
func (h *ProjectHandler) ListProjects(c *gin.Context) {
	projects, err := h.projectService.ListProjects(c.Request.Context())
	if err != nil {
		logger.WithError(err).Error("Error fetching projects")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal Server Error"})
		return
	}

	if projects == nil {
		projects = []*models.Project{}
	}
	c.JSON(http.StatusOK, projects)
}

// CreateProject stores the project described by the request body
func (h *ProjectHandler) CreateProject(c *gin.Context) {
	var request models.CreateProjectRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	project, err := h.projectService.CreateProject(c.Request.Context(), &request)
	if err != nil {
		var validationErr *models.ValidationError
		switch {
		case errors.Is(err, services.ErrDuplicateGitHubURL):
			c.JSON(http.StatusConflict, gin.H{"error": models.DuplicateGitHubURLMessage})
		case errors.As(err, &validationErr):
			c.JSON(http.StatusBadRequest, gin.H{"error": validationErr.Message})
		default:
			logger.WithError(err).WithField("github_url", request.GithubURL).Error("Error creating project")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal Server Error"})
		}
		return
	}

	logger.WithField("project_id", project.ID).Info("Project created")
	c.JSON(http.StatusCreated, project)
}

// ExportProjects downloads the listing as an Excel workbook
func (h *ProjectHandler) ExportProjects(c *gin.Context) {
	var buf bytes.Buffer
	if err := h.exportService.WriteProjects(c.Request.Context(), &buf); err != nil {
		logger.WithError(err).Error("Error exporting projects")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal Server Error"})
		return
	}

	filename := fmt.Sprintf("projects-%s.xlsx", time.Now().Format("2006-01-02"))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, xlsxContentType, buf.Bytes())
}
