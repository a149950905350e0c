package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type User struct {
	ID                uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	Name              string    `json:"name"`
	GithubUsername    string    `json:"githubUsername" gorm:"uniqueIndex;not null"`
	Email             string    `json:"email"`
	ProfilePicture    string    `json:"profilePicture"`
	GitHubAccessToken string    `json:"-" gorm:"column:github_access_token"`
	CreatedAt         time.Time `json:"createdAt"`
	UpdatedAt         time.Time `json:"updatedAt"`
}

// BeforeCreate assigns a UUID when the caller did not
func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}
