package services

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/alimgiray/showcase/internal/models"
	"github.com/xuri/excelize/v2"
)

const projectsSheet = "Projects"

var exportHeaders = []string{
	"Name", "Type", "Status", "GitHub URL", "Demo URL", "Tech Stack",
	"Key Features", "Contributors", "Pending Contributors", "Images", "Created At",
}

type ExportService struct {
	projectService *ProjectService
}

func NewExportService(projectService *ProjectService) *ExportService {
	return &ExportService{projectService: projectService}
}

// WriteProjects writes every project as one row of an xlsx workbook
func (s *ExportService) WriteProjects(ctx context.Context, w io.Writer) error {
	projects, err := s.projectService.ListProjects(ctx)
	if err != nil {
		return err
	}
	return WriteProjectsWorkbook(projects, w)
}

// WriteProjectsWorkbook renders projects into an xlsx workbook
func WriteProjectsWorkbook(projects []*models.Project, w io.Writer) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", projectsSheet); err != nil {
		return err
	}

	if err := f.SetSheetRow(projectsSheet, "A1", &exportHeaders); err != nil {
		return err
	}

	headerStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return err
	}
	lastHeader, err := excelize.CoordinatesToCellName(len(exportHeaders), 1)
	if err != nil {
		return err
	}
	if err := f.SetCellStyle(projectsSheet, "A1", lastHeader, headerStyle); err != nil {
		return err
	}

	for i, project := range projects {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		row := projectRow(project)
		if err := f.SetSheetRow(projectsSheet, cell, &row); err != nil {
			return fmt.Errorf("failed to write project %s: %w", project.ID, err)
		}
	}

	return f.Write(w)
}

func projectRow(project *models.Project) []interface{} {
	contributors := make([]string, 0, len(project.Users))
	for _, projectUser := range project.Users {
		contributors = append(contributors, fmt.Sprintf("%s (%s)", projectUser.User.GithubUsername, projectUser.Role))
	}
	pending := make([]string, 0, len(project.PendingUsers))
	for _, pendingUser := range project.PendingUsers {
		pending = append(pending, fmt.Sprintf("%s (%s)", pendingUser.GithubUsername, pendingUser.Role))
	}
	images := make([]string, 0, len(project.ProjectImages))
	for _, image := range project.ProjectImages {
		images = append(images, image.URL)
	}

	return []interface{}{
		project.Name,
		string(project.ProjectType),
		string(project.Status),
		project.GithubURL,
		project.DemoURL,
		strings.Join(project.TechStack, ", "),
		strings.Join(project.KeyFeatures, "; "),
		strings.Join(contributors, ", "),
		strings.Join(pending, ", "),
		strings.Join(images, "\n"),
		project.CreatedAt.Format("2006-01-02 15:04:05"),
	}
}
