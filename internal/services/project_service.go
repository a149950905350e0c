package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/alimgiray/showcase/internal/models"
	"github.com/alimgiray/showcase/internal/repositories"
	"github.com/google/uuid"
)

// ErrDuplicateGitHubURL is returned when another project already uses the GitHub URL
var ErrDuplicateGitHubURL = errors.New(models.DuplicateGitHubURLMessage)

type ProjectService struct {
	projectRepo *repositories.ProjectRepository
}

func NewProjectService(projectRepo *repositories.ProjectRepository) *ProjectService {
	return &ProjectService{
		projectRepo: projectRepo,
	}
}

// ListProjects returns every project with its users, pending users and images
func (s *ProjectService) ListProjects(ctx context.Context) ([]*models.Project, error) {
	return s.projectRepo.FindAllWithRelations(ctx)
}

// CreateProject stores a new project. Listed usernames with an account become
// project users, the others pending users. The owner is always an OWNER.
func (s *ProjectService) CreateProject(ctx context.Context, request *models.CreateProjectRequest) (*models.Project, error) {
	if err := request.Validate(); err != nil {
		return nil, err
	}

	project := request.ToProject()

	err := s.projectRepo.Transaction(ctx, func(projects *repositories.ProjectRepository, users *repositories.UserRepository) error {
		if project.GithubURL != "" {
			exists, err := projects.ExistsByGithubURL(ctx, project.GithubURL)
			if err != nil {
				return fmt.Errorf("failed to check GitHub URL: %w", err)
			}
			if exists {
				return ErrDuplicateGitHubURL
			}
		}

		if err := s.attachUsers(ctx, users, project, request.Users); err != nil {
			return err
		}

		return projects.Create(ctx, project)
	})
	if err != nil {
		// A concurrent create can pass the check above; the unique index decides.
		if project.GithubURL != "" && repositories.IsDuplicate(err) {
			return nil, ErrDuplicateGitHubURL
		}
		return nil, err
	}

	return s.projectRepo.GetByID(ctx, project.ID)
}

func (s *ProjectService) attachUsers(ctx context.Context, users *repositories.UserRepository, project *models.Project, inputs []models.ProjectUserInput) error {
	usernames := make([]string, 0, len(inputs))
	for _, input := range inputs {
		usernames = append(usernames, strings.TrimSpace(input.GithubUsername))
	}

	registered, err := users.FindByGithubUsernames(ctx, usernames)
	if err != nil {
		return fmt.Errorf("failed to look up users: %w", err)
	}

	seen := make(map[uuid.UUID]bool)
	pending := make(map[string]bool)
	for i, input := range inputs {
		username := usernames[i]
		user, ok := registered[username]
		if !ok {
			if pending[username] {
				continue
			}
			pending[username] = true
			project.PendingUsers = append(project.PendingUsers, models.PendingUser{
				GithubUsername: username,
				Role:           input.Role,
			})
			continue
		}

		role := input.Role
		if user.ID == project.OwnerID {
			role = models.RoleOwner
		}
		if seen[user.ID] {
			continue
		}
		seen[user.ID] = true
		project.Users = append(project.Users, models.ProjectUser{
			UserID: user.ID,
			Role:   role,
		})
	}

	if !seen[project.OwnerID] {
		owner, err := users.GetByID(ctx, project.OwnerID)
		switch {
		case repositories.IsNotFound(err):
			return &models.ValidationError{Field: "ownerId", Message: "Owner does not exist"}
		case err != nil:
			return fmt.Errorf("failed to look up owner: %w", err)
		}
		project.Users = append([]models.ProjectUser{{UserID: owner.ID, Role: models.RoleOwner}}, project.Users...)
	}

	return nil
}
