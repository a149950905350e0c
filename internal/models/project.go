package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type ProjectStatus string

const (
	StatusInDevelopment ProjectStatus = "In Development"
	StatusCompleted     ProjectStatus = "Completed"
	StatusOnHold        ProjectStatus = "On Hold"
)

// ProjectStatuses lists the selectable statuses in display order
var ProjectStatuses = []ProjectStatus{StatusInDevelopment, StatusCompleted, StatusOnHold}

// Valid reports whether s is one of the selectable statuses
func (s ProjectStatus) Valid() bool {
	for _, status := range ProjectStatuses {
		if s == status {
			return true
		}
	}
	return false
}

type ProjectType string

const (
	TypeFinalYear ProjectType = "Final Year Project"
	TypePersonal  ProjectType = "Personal Project"
	TypeResearch  ProjectType = "Research Project"
	TypeHackathon ProjectType = "Hackathon Project"
)

// ProjectTypes lists the selectable project types in display order
var ProjectTypes = []ProjectType{TypeFinalYear, TypePersonal, TypeResearch, TypeHackathon}

// Valid reports whether t is one of the selectable project types
func (t ProjectType) Valid() bool {
	for _, projectType := range ProjectTypes {
		if t == projectType {
			return true
		}
	}
	return false
}

// AcademicHighlight is a publication, award or competition entry attached to a project
type AcademicHighlight struct {
	Title       string `json:"title"`
	Status      string `json:"status"`
	Conference  string `json:"conference,omitempty"`
	Date        string `json:"date,omitempty"`
	Competition string `json:"competition,omitempty"`
}

type Project struct {
	ID                 uuid.UUID                              `json:"id" gorm:"type:uuid;primaryKey"`
	Name               string                                 `json:"name" gorm:"type:text;not null"`
	Description        string                                 `json:"description" gorm:"type:text;not null"`
	GithubURL          string                                 `json:"githubUrl" gorm:"type:text;uniqueIndex:idx_projects_github_url_unique,where:github_url <> ''"`
	DemoURL            string                                 `json:"demoUrl" gorm:"type:text"`
	TechStack          datatypes.JSONSlice[string]            `json:"techStack"`
	ImageURL           string                                 `json:"imageUrl" gorm:"type:text"`
	ProblemStatement   string                                 `json:"problemStatement" gorm:"type:text;not null"`
	Status             ProjectStatus                          `json:"status" gorm:"type:varchar(32);not null"`
	ProjectType        ProjectType                            `json:"projectType" gorm:"type:varchar(32);not null"`
	KeyFeatures        datatypes.JSONSlice[string]            `json:"keyFeatures"`
	AcademicHighlights datatypes.JSONSlice[AcademicHighlight] `json:"academicHighlights"`
	OwnerID            uuid.UUID                              `json:"ownerId" gorm:"type:uuid;index;not null"`
	CreatedAt          time.Time                              `json:"createdAt"`
	UpdatedAt          time.Time                              `json:"updatedAt"`

	Users         []ProjectUser  `json:"users" gorm:"foreignKey:ProjectID;references:ID;constraint:OnDelete:CASCADE"`
	PendingUsers  []PendingUser  `json:"pendingUsers" gorm:"foreignKey:ProjectID;references:ID;constraint:OnDelete:CASCADE"`
	ProjectImages []ProjectImage `json:"projectImages" gorm:"foreignKey:ProjectID;references:ID;constraint:OnDelete:CASCADE"`
}

// BeforeCreate assigns a UUID when the caller did not
func (p *Project) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

func (p *Project) Validate() error {
	if strings.TrimSpace(p.Name) == "" {
		return ErrProjectNameRequired
	}
	if strings.TrimSpace(p.Description) == "" {
		return ErrDescriptionRequired
	}
	if strings.TrimSpace(p.ProblemStatement) == "" {
		return ErrProblemStatementRequired
	}
	if !p.ProjectType.Valid() {
		return ErrProjectTypeInvalid
	}
	if !p.Status.Valid() {
		return ErrProjectStatusInvalid
	}
	if p.OwnerID == uuid.Nil {
		return ErrOwnerRequired
	}
	return nil
}

// Common errors
var (
	ErrProjectNameRequired      = &ValidationError{Field: "name", Message: "Project name is required"}
	ErrDescriptionRequired      = &ValidationError{Field: "description", Message: "Description is required"}
	ErrProblemStatementRequired = &ValidationError{Field: "problemStatement", Message: "Problem statement is required"}
	ErrProjectTypeInvalid       = &ValidationError{Field: "projectType", Message: "Project type is required"}
	ErrProjectStatusInvalid     = &ValidationError{Field: "status", Message: "Project status is required"}
	ErrOwnerRequired            = &ValidationError{Field: "ownerId", Message: "Owner ID is required"}
	ErrUsersRequired            = &ValidationError{Field: "users", Message: "At least one user is required"}
)

type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}
