package repositories

import (
	"context"
	"errors"

	"github.com/alimgiray/showcase/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ProjectRepository struct {
	db *gorm.DB
}

func NewProjectRepository(db *gorm.DB) *ProjectRepository {
	return &ProjectRepository{
		db: db,
	}
}

func withRelations(db *gorm.DB) *gorm.DB {
	return db.
		Preload("Users.User").
		Preload("PendingUsers").
		Preload("ProjectImages")
}

// FindAllWithRelations loads every project with its users, pending users and
// images on a single pooled connection that is released before returning.
func (r *ProjectRepository) FindAllWithRelations(ctx context.Context) ([]*models.Project, error) {
	projects := []*models.Project{}
	err := r.db.WithContext(ctx).Connection(func(conn *gorm.DB) error {
		return withRelations(conn).Order("created_at ASC").Find(&projects).Error
	})
	if err != nil {
		return nil, err
	}
	return projects, nil
}

// GetByID retrieves a project with its relations
func (r *ProjectRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Project, error) {
	var project models.Project
	err := withRelations(r.db.WithContext(ctx)).First(&project, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &project, nil
}

// ExistsByGithubURL reports whether a project already uses githubURL
func (r *ProjectRepository) ExistsByGithubURL(ctx context.Context, githubURL string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Project{}).
		Where("github_url = ?", githubURL).
		Count(&count).Error
	return count > 0, err
}

// Create inserts the project together with its users, pending users and images
func (r *ProjectRepository) Create(ctx context.Context, project *models.Project) error {
	return r.db.WithContext(ctx).Create(project).Error
}

// Transaction runs fn with repositories bound to one transaction
func (r *ProjectRepository) Transaction(ctx context.Context, fn func(projects *ProjectRepository, users *UserRepository) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(NewProjectRepository(tx), NewUserRepository(tx))
	})
}

// IsDuplicate reports whether err is a unique constraint violation
func IsDuplicate(err error) bool {
	return errors.Is(err, gorm.ErrDuplicatedKey)
}

// IsNotFound reports whether err means the record does not exist
func IsNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}
