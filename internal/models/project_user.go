package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Role string

const (
	RoleOwner       Role = "OWNER"
	RoleContributor Role = "CONTRIBUTOR"
)

// Valid reports whether r is a known role
func (r Role) Valid() bool {
	return r == RoleOwner || r == RoleContributor
}

// ProjectUser links a registered user to a project
type ProjectUser struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	ProjectID uuid.UUID `json:"projectId" gorm:"type:uuid;not null;uniqueIndex:idx_project_user_unique"`
	UserID    uuid.UUID `json:"userId" gorm:"type:uuid;not null;uniqueIndex:idx_project_user_unique"`
	Role      Role      `json:"role" gorm:"type:varchar(16);not null"`

	User User `json:"user" gorm:"foreignKey:UserID;references:ID"`
}

// NewProjectUser creates a new ProjectUser with a generated UUID
func NewProjectUser(projectID, userID uuid.UUID, role Role) *ProjectUser {
	return &ProjectUser{
		ID:        uuid.New(),
		ProjectID: projectID,
		UserID:    userID,
		Role:      role,
	}
}

func (pu *ProjectUser) BeforeCreate(tx *gorm.DB) error {
	if pu.ID == uuid.Nil {
		pu.ID = uuid.New()
	}
	return nil
}

// PendingUser is a contributor whose GitHub username has no account yet
type PendingUser struct {
	ID             uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	ProjectID      uuid.UUID `json:"projectId" gorm:"type:uuid;not null;index"`
	GithubUsername string    `json:"githubUsername" gorm:"not null"`
	Role           Role      `json:"role" gorm:"type:varchar(16);not null"`
}

func (pu *PendingUser) BeforeCreate(tx *gorm.DB) error {
	if pu.ID == uuid.Nil {
		pu.ID = uuid.New()
	}
	return nil
}
