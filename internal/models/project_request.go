package models

import (
	"strings"

	"github.com/google/uuid"
)

// DuplicateGitHubURLMessage is the error body returned when a project with the same GitHub URL exists
const DuplicateGitHubURLMessage = "Project with this GitHub URL already exists"

// ProjectUserInput names a contributor by GitHub username
type ProjectUserInput struct {
	GithubUsername string `json:"githubUsername"`
	Role           Role   `json:"role"`
}

// ProjectImageInput is an image attached to a project at creation time
type ProjectImageInput struct {
	URL         string `json:"url"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

// CreateProjectRequest is the payload of POST /api/projects/post-project
type CreateProjectRequest struct {
	Name               string              `json:"name"`
	Description        string              `json:"description"`
	GithubURL          string              `json:"githubUrl"`
	DemoURL            string              `json:"demoUrl"`
	TechStack          []string            `json:"techStack"`
	ImageURL           string              `json:"imageUrl"`
	ProblemStatement   string              `json:"problemStatement"`
	Status             ProjectStatus       `json:"status"`
	ProjectType        ProjectType         `json:"projectType"`
	KeyFeatures        []string            `json:"keyFeatures"`
	AcademicHighlights []AcademicHighlight `json:"academicHighlights"`
	ProjectImages      []ProjectImageInput `json:"projectImages"`
	Users              []ProjectUserInput  `json:"users"`
	OwnerID            string              `json:"ownerId"`
}

// Validate validates the creation request
func (r *CreateProjectRequest) Validate() error {
	if len(r.Users) == 0 {
		return ErrUsersRequired
	}
	for _, user := range r.Users {
		if strings.TrimSpace(user.GithubUsername) == "" {
			return &ValidationError{Field: "users", Message: "GitHub username is required for every user"}
		}
		if !user.Role.Valid() {
			return &ValidationError{Field: "users", Message: "Invalid user role"}
		}
	}
	for _, image := range r.ProjectImages {
		if image.URL == "" || image.Title == "" {
			return &ValidationError{Field: "projectImages", Message: "Image URL and title are required"}
		}
	}
	if _, err := uuid.Parse(r.OwnerID); err != nil {
		return ErrOwnerRequired
	}

	project := r.ToProject()
	return project.Validate()
}

// ToProject builds the Project row without its associations
func (r *CreateProjectRequest) ToProject() *Project {
	ownerID, _ := uuid.Parse(r.OwnerID)

	project := &Project{
		Name:               strings.TrimSpace(r.Name),
		Description:        strings.TrimSpace(r.Description),
		GithubURL:          strings.TrimSpace(r.GithubURL),
		DemoURL:            strings.TrimSpace(r.DemoURL),
		TechStack:          nonBlank(r.TechStack),
		ImageURL:           strings.TrimSpace(r.ImageURL),
		ProblemStatement:   strings.TrimSpace(r.ProblemStatement),
		Status:             r.Status,
		ProjectType:        r.ProjectType,
		KeyFeatures:        nonBlank(r.KeyFeatures),
		AcademicHighlights: r.AcademicHighlights,
		OwnerID:            ownerID,
	}
	if project.AcademicHighlights == nil {
		project.AcademicHighlights = []AcademicHighlight{}
	}

	for _, image := range r.ProjectImages {
		project.ProjectImages = append(project.ProjectImages, ProjectImage{
			URL:         image.URL,
			Title:       image.Title,
			Description: image.Description,
		})
	}

	return project
}

func nonBlank(values []string) []string {
	result := make([]string, 0, len(values))
	for _, value := range values {
		if trimmed := strings.TrimSpace(value); trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}
