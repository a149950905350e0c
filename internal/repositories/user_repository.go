package repositories

import (
	"context"

	"github.com/alimgiray/showcase/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{
		db: db,
	}
}

// Upsert inserts the user or refreshes the profile of the user with the same GitHub username
func (r *UserRepository) Upsert(ctx context.Context, user *models.User) error {
	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "github_username"}},
		DoUpdates: clause.AssignmentColumns([]string{"name", "email", "profile_picture", "github_access_token", "updated_at"}),
	}).Create(user).Error
	if err != nil {
		return err
	}

	// On conflict the generated ID was not stored; read back the real one.
	stored, err := r.GetByGithubUsername(ctx, user.GithubUsername)
	if err != nil {
		return err
	}
	*user = *stored
	return nil
}

// GetByID retrieves a user by ID
func (r *UserRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	var user models.User
	if err := r.db.WithContext(ctx).First(&user, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// GetByGithubUsername retrieves a user by GitHub username
func (r *UserRepository) GetByGithubUsername(ctx context.Context, username string) (*models.User, error) {
	var user models.User
	if err := r.db.WithContext(ctx).Where("github_username = ?", username).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// FindByGithubUsernames returns the registered users among usernames, keyed by username
func (r *UserRepository) FindByGithubUsernames(ctx context.Context, usernames []string) (map[string]*models.User, error) {
	result := make(map[string]*models.User, len(usernames))
	if len(usernames) == 0 {
		return result, nil
	}

	var users []*models.User
	if err := r.db.WithContext(ctx).Where("github_username IN ?", usernames).Find(&users).Error; err != nil {
		return nil, err
	}
	for _, user := range users {
		result[user.GithubUsername] = user
	}
	return result, nil
}
