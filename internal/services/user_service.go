package services

import (
	"context"
	"errors"

	"github.com/alimgiray/showcase/internal/models"
	"github.com/alimgiray/showcase/internal/repositories"
	"github.com/google/uuid"
)

type UserService struct {
	userRepo *repositories.UserRepository
}

func NewUserService(userRepo *repositories.UserRepository) *UserService {
	return &UserService{
		userRepo: userRepo,
	}
}

// SaveGitHubUser creates the user on first login and refreshes the profile afterwards
func (s *UserService) SaveGitHubUser(ctx context.Context, githubUser *GitHubUser, accessToken string) (*models.User, error) {
	if githubUser == nil || githubUser.Login == "" {
		return nil, errors.New("GitHub login is required")
	}

	user := &models.User{
		Name:              githubUser.Name,
		GithubUsername:    githubUser.Login,
		Email:             githubUser.Email,
		ProfilePicture:    githubUser.AvatarURL,
		GitHubAccessToken: accessToken,
	}
	if err := s.userRepo.Upsert(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// GetUserByID retrieves a user by ID
func (s *UserService) GetUserByID(ctx context.Context, id string) (*models.User, error) {
	userID, err := uuid.Parse(id)
	if err != nil {
		return nil, errors.New("invalid user ID format")
	}
	return s.userRepo.GetByID(ctx, userID)
}
