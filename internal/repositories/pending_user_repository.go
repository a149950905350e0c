package repositories

import (
	"context"

	"github.com/alimgiray/showcase/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ClaimedPendingUser is a pending user whose GitHub username now has an account
type ClaimedPendingUser struct {
	models.PendingUser
	UserID uuid.UUID
}

type PendingUserRepository struct {
	db *gorm.DB
}

func NewPendingUserRepository(db *gorm.DB) *PendingUserRepository {
	return &PendingUserRepository{
		db: db,
	}
}

// FindClaimed returns up to limit pending users that match a registered user
func (r *PendingUserRepository) FindClaimed(ctx context.Context, limit int) ([]ClaimedPendingUser, error) {
	var claimed []ClaimedPendingUser
	err := r.db.WithContext(ctx).
		Table("pending_users").
		Select("pending_users.id, pending_users.project_id, pending_users.github_username, pending_users.role, users.id AS user_id").
		Joins("JOIN users ON users.github_username = pending_users.github_username").
		Order("pending_users.id").
		Limit(limit).
		Scan(&claimed).Error
	return claimed, err
}

// Promote turns a pending user into a project user for userID. An existing
// membership of the same user is kept as it is.
func (r *PendingUserRepository) Promote(ctx context.Context, pending *models.PendingUser, userID uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		projectUser := models.NewProjectUser(pending.ProjectID, userID, pending.Role)
		if err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(projectUser).Error; err != nil {
			return err
		}
		return tx.Delete(&models.PendingUser{}, "id = ?", pending.ID).Error
	})
}
