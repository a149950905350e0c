package services

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/alimgiray/showcase/internal/models"
	"github.com/google/go-github/v57/github"
	"golang.org/x/oauth2"
)

type GitHubRepositoryService struct {
	client *github.Client
}

// NewGitHubRepositoryService creates a service listing repositories through the GitHub API.
// token may be empty. apiURL overrides the API base URL (GitHub Enterprise, tests).
func NewGitHubRepositoryService(token, apiURL string) (*GitHubRepositoryService, error) {
	client := createGitHubClient(token)

	if apiURL != "" {
		if !strings.HasSuffix(apiURL, "/") {
			apiURL += "/"
		}
		baseURL, err := url.Parse(apiURL)
		if err != nil {
			return nil, fmt.Errorf("invalid GitHub API URL: %w", err)
		}
		client.BaseURL = baseURL
	}

	return &GitHubRepositoryService{client: client}, nil
}

// createGitHubClient creates a GitHub client, authenticated when a token is given
func createGitHubClient(token string) *github.Client {
	if token == "" {
		return github.NewClient(nil)
	}
	ts := oauth2.StaticTokenSource(
		&oauth2.Token{AccessToken: token},
	)
	tc := oauth2.NewClient(context.Background(), ts)
	return github.NewClient(tc)
}

// ListUserRepositories lists the public repositories of username
func (s *GitHubRepositoryService) ListUserRepositories(ctx context.Context, username string) ([]models.Repository, error) {
	if username == "" {
		return nil, fmt.Errorf("GitHub username is required")
	}

	opt := &github.RepositoryListOptions{
		Sort:        "updated",
		Direction:   "desc",
		ListOptions: github.ListOptions{PerPage: 100},
	}

	var allRepos []*github.Repository
	for {
		repos, resp, err := s.client.Repositories.List(ctx, username, opt)
		if err != nil {
			return nil, fmt.Errorf("failed to list repositories: %w", err)
		}
		allRepos = append(allRepos, repos...)
		if resp.NextPage == 0 {
			break
		}
		opt.Page = resp.NextPage
	}

	repositories := make([]models.Repository, 0, len(allRepos))
	for _, repo := range allRepos {
		repositories = append(repositories, models.Repository{
			Name:        repo.GetName(),
			FullName:    repo.GetFullName(),
			Description: repo.GetDescription(),
			HTMLURL:     repo.GetHTMLURL(),
		})
	}

	return repositories, nil
}
