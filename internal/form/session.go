package form

import (
	"context"
	"errors"
	"fmt"

	"github.com/alimgiray/showcase/internal/models"
)

// State is the submission state of a draft.
type State string

const (
	StateIdle       State = "idle"
	StateSubmitting State = "submitting"
	StateSuccess    State = "success"
	StateError      State = "error"
)

var (
	ErrSubmitInProgress = errors.New("a submission is already in progress")
	ErrNotIdle          = errors.New("the previous submission has not been acknowledged")
	ErrNoIdentity       = errors.New("a logged-in user is required to submit")
	ErrInvalidDraft     = errors.New("draft has validation errors")
	ErrNotTerminal      = errors.New("nothing to acknowledge")
)

const duplicateGitHubURLText = "A project with this GitHub URL already exists. Please check the URL or use a different one."

// Creator sends a creation request to the project creation endpoint.
type Creator interface {
	CreateProject(ctx context.Context, request *models.CreateProjectRequest) (*models.Project, error)
}

// ResponseError is a non-2xx answer from the creation endpoint.
type ResponseError struct {
	StatusCode int
	// Reason is the "error" member of the response body, if any.
	Reason string
}

func (e *ResponseError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("status %d: %s", e.StatusCode, e.Reason)
	}
	return fmt.Sprintf("status %d", e.StatusCode)
}

// Alert is the dialog shown once a submission reaches a terminal state.
type Alert struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// Session couples a draft with its submission state.
type Session struct {
	Draft        *Draft
	State        State
	ErrorMessage string
	Created      *models.Project
}

func NewSession(identity *Identity) *Session {
	return &Session{
		Draft: NewDraft(identity),
		State: StateIdle,
	}
}

// SetIdentity re-seeds the owner when the logged-in user changes.
func (s *Session) SetIdentity(identity *Identity) bool {
	return s.Draft.SetOwner(identity)
}

// Begin moves an idle session to submitting and returns the request to send.
// A finished session must be acknowledged first. Validation errors are
// published on the draft.
func (s *Session) Begin() (*models.CreateProjectRequest, error) {
	switch s.State {
	case StateIdle:
	case StateSubmitting:
		return nil, ErrSubmitInProgress
	default:
		return nil, ErrNotIdle
	}
	if !s.Draft.Check() {
		return nil, ErrInvalidDraft
	}
	if s.Draft.Owner() == nil {
		return nil, ErrNoIdentity
	}

	s.State = StateSubmitting
	s.ErrorMessage = ""
	s.Created = nil
	return s.Draft.Serialize(), nil
}

// Finish records the outcome of the request started by Begin.
func (s *Session) Finish(created *models.Project, err error) {
	if err == nil {
		s.State = StateSuccess
		s.Created = created
		return
	}

	s.State = StateError
	var responseErr *ResponseError
	switch {
	case errors.As(err, &responseErr) && responseErr.Reason == models.DuplicateGitHubURLMessage:
		s.ErrorMessage = duplicateGitHubURLText
	case errors.As(err, &responseErr):
		s.ErrorMessage = fmt.Sprintf("HTTP error! status: %d", responseErr.StatusCode)
	default:
		s.ErrorMessage = err.Error()
	}
}

// Submit runs a whole submission against creator.
func (s *Session) Submit(ctx context.Context, creator Creator) error {
	request, err := s.Begin()
	if err != nil {
		return err
	}
	created, err := creator.CreateProject(ctx, request)
	s.Finish(created, err)
	return nil
}

// Acknowledge closes the result dialog and resets the draft.
func (s *Session) Acknowledge() error {
	if s.State != StateSuccess && s.State != StateError {
		return ErrNotTerminal
	}
	s.Draft.Reset()
	s.State = StateIdle
	s.ErrorMessage = ""
	s.Created = nil
	return nil
}

// Alert returns the dialog for a terminal state, or nil.
func (s *Session) Alert() *Alert {
	switch s.State {
	case StateSuccess:
		return &Alert{Title: "Success!", Description: "Your project has been successfully created!"}
	case StateError:
		return &Alert{Title: "Error", Description: fmt.Sprintf("An error occurred: %s. Please try again.", s.ErrorMessage)}
	default:
		return nil
	}
}

// Snapshot is the JSON view of a session.
type Snapshot struct {
	Project            Project             `json:"project"`
	TechStackText      string              `json:"techStackText"`
	Contributors       []Contributor       `json:"projectUsers"`
	StagedImage        Image               `json:"stagedImage"`
	PrivateRepository  bool                `json:"privateRepository"`
	Errors             Errors              `json:"errors"`
	Repositories       []models.Repository `json:"repositories"`
	SelectedRepository *models.Repository  `json:"selectedRepository,omitempty"`
	Submittable        bool                `json:"submittable"`
	State              State               `json:"state"`
	ErrorMessage       string              `json:"errorMessage,omitempty"`
	Alert              *Alert              `json:"alert,omitempty"`
	Created            *models.Project     `json:"created,omitempty"`
}

// Snapshot copies the session so it can be encoded outside the caller's lock.
func (s *Session) Snapshot() Snapshot {
	d := s.Draft

	project := d.Project
	project.TechStack = append([]string{}, project.TechStack...)
	project.KeyFeatures = append([]string{}, project.KeyFeatures...)
	project.AcademicHighlights = append([]models.AcademicHighlight{}, project.AcademicHighlights...)
	project.ProjectImages = append([]Image{}, project.ProjectImages...)

	errs := make(Errors, len(d.Errors))
	for field, message := range d.Errors {
		errs[field] = message
	}

	return Snapshot{
		Project:            project,
		TechStackText:      d.TechStackText(),
		Contributors:       append([]Contributor{}, d.Contributors...),
		StagedImage:        d.StagedImage,
		PrivateRepository:  d.PrivateRepository,
		Errors:             errs,
		Repositories:       append([]models.Repository{}, d.Repositories...),
		SelectedRepository: d.SelectedRepository,
		Submittable:        d.IsSubmittable() && d.Owner() != nil && s.State == StateIdle,
		State:              s.State,
		ErrorMessage:       s.ErrorMessage,
		Alert:              s.Alert(),
		Created:            s.Created,
	}
}
