// Package form holds the in-memory draft of a project being composed by a
// logged-in user: its mutations, validation, serialization into a creation
// request and the submission state machine.
//
// A Draft is not safe for concurrent use; callers own the locking.
package form

import (
	"errors"
	"fmt"
	"strings"

	"github.com/alimgiray/showcase/internal/models"
)

// Field names a validated or directly editable part of the draft.
type Field string

const (
	FieldName             Field = "name"
	FieldDescription      Field = "description"
	FieldGithubURL        Field = "githubUrl"
	FieldDemoURL          Field = "demoUrl"
	FieldTechStack        Field = "techStack"
	FieldImageURL         Field = "imageUrl"
	FieldProblemStatement Field = "problemStatement"
	FieldStatus           Field = "status"
	FieldProjectType      Field = "projectType"
	FieldKeyFeatures      Field = "keyFeatures"
	FieldContributors     Field = "projectUsers"
)

var (
	ErrUnknownField       = errors.New("unknown field")
	ErrInvalidOption      = errors.New("invalid option")
	ErrIndexOutOfRange    = errors.New("index out of range")
	ErrContributorMissing = errors.New("contributor not found")
	ErrOwnerRemoval       = errors.New("the project owner cannot be removed")
)

// Identity is the logged-in user the draft belongs to.
type Identity struct {
	ID             string `json:"id"`
	GithubUsername string `json:"githubUsername"`
}

// Contributor is a team member on the draft. ID is local to the draft.
type Contributor struct {
	ID             string      `json:"id"`
	GithubUsername string      `json:"githubUsername"`
	Role           models.Role `json:"role"`
}

type Image struct {
	URL         string `json:"url"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

// Project is the editable content of the draft.
type Project struct {
	Name               string                     `json:"name"`
	Description        string                     `json:"description"`
	GithubURL          string                     `json:"githubUrl"`
	DemoURL            string                     `json:"demoUrl"`
	TechStack          []string                   `json:"techStack"`
	ImageURL           string                     `json:"imageUrl"`
	ProblemStatement   string                     `json:"problemStatement"`
	Status             models.ProjectStatus       `json:"status"`
	ProjectType        models.ProjectType         `json:"projectType"`
	KeyFeatures        []string                   `json:"keyFeatures"`
	AcademicHighlights []models.AcademicHighlight `json:"academicHighlights"`
	ProjectImages      []Image                    `json:"projectImages"`
}

// Errors maps a field to its validation message.
type Errors map[Field]string

type Draft struct {
	Project      Project
	Contributors []Contributor
	// StagedImage is the image candidate being typed in before it is added.
	StagedImage Image
	// PrivateRepository makes githubUrl required.
	PrivateRepository  bool
	Errors             Errors
	Repositories       []models.Repository
	SelectedRepository *models.Repository

	owner *Identity
}

// NewDraft returns an empty draft, seeded with owner as OWNER when owner is set.
func NewDraft(owner *Identity) *Draft {
	d := &Draft{}
	d.SetOwner(owner)
	d.Reset()
	return d
}

func emptyProject() Project {
	return Project{
		TechStack:          []string{},
		Status:             models.StatusInDevelopment,
		KeyFeatures:        []string{""},
		AcademicHighlights: []models.AcademicHighlight{},
		ProjectImages:      []Image{},
	}
}

// Reset restores the initial configuration. Loaded repositories and the
// private repository toggle survive, like the rest of the page around the form.
func (d *Draft) Reset() {
	d.Project = emptyProject()
	d.StagedImage = Image{}
	d.Errors = Errors{}
	d.seedOwner()
}

// Owner returns the identity the draft is seeded from, or nil.
func (d *Draft) Owner() *Identity {
	return d.owner
}

// SetOwner replaces the contributor list with the new owner when the identity changes.
func (d *Draft) SetOwner(owner *Identity) bool {
	if sameIdentity(d.owner, owner) {
		return false
	}
	if owner != nil {
		copied := *owner
		owner = &copied
	}
	d.owner = owner
	d.seedOwner()
	return true
}

func (d *Draft) seedOwner() {
	d.Contributors = []Contributor{}
	if d.owner != nil && d.owner.GithubUsername != "" {
		d.Contributors = append(d.Contributors, Contributor{
			ID:             d.owner.ID,
			GithubUsername: d.owner.GithubUsername,
			Role:           models.RoleOwner,
		})
	}
}

func sameIdentity(a, b *Identity) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

// UpdateField sets one scalar field and clears its error.
func (d *Draft) UpdateField(field Field, value string) error {
	switch field {
	case FieldName:
		d.Project.Name = value
	case FieldDescription:
		d.Project.Description = value
	case FieldGithubURL:
		d.Project.GithubURL = value
	case FieldDemoURL:
		d.Project.DemoURL = value
	case FieldImageURL:
		d.Project.ImageURL = value
	case FieldProblemStatement:
		d.Project.ProblemStatement = value
	case FieldTechStack:
		d.Project.TechStack = ParseTechStack(value)
	case FieldStatus:
		status := models.ProjectStatus(value)
		if value != "" && !status.Valid() {
			return fmt.Errorf("%w for %s: %q", ErrInvalidOption, field, value)
		}
		d.Project.Status = status
	case FieldProjectType:
		projectType := models.ProjectType(value)
		if value != "" && !projectType.Valid() {
			return fmt.Errorf("%w for %s: %q", ErrInvalidOption, field, value)
		}
		d.Project.ProjectType = projectType
	default:
		return fmt.Errorf("%w: %q", ErrUnknownField, field)
	}

	delete(d.Errors, field)
	return nil
}

// SetPrivateRepository toggles whether a GitHub URL is required.
func (d *Draft) SetPrivateRepository(enabled bool) {
	d.PrivateRepository = enabled
}

// SetRepositories replaces the repository list offered for selection.
func (d *Draft) SetRepositories(repos []models.Repository) {
	d.Repositories = append([]models.Repository(nil), repos...)
}

// SelectRepository prefills githubUrl from the repository with the given full name.
func (d *Draft) SelectRepository(fullName string) bool {
	for i := range d.Repositories {
		if d.Repositories[i].FullName == fullName {
			selected := d.Repositories[i]
			d.SelectedRepository = &selected
			d.Project.GithubURL = selected.HTMLURL
			delete(d.Errors, FieldGithubURL)
			return true
		}
	}
	return false
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
