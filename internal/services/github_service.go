package services

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"fmt"

	"github.com/alimgiray/showcase/pkg/config"
	"github.com/google/go-github/v57/github"
	"golang.org/x/oauth2"
	githubendpoint "golang.org/x/oauth2/github"
)

// GitHubService runs the OAuth login flow against GitHub
type GitHubService struct {
	oauthConfig *oauth2.Config
}

type GitHubUser struct {
	Login     string
	Name      string
	Email     string
	AvatarURL string
}

func NewGitHubService(cfg config.GitHubConfig) *GitHubService {
	oauthConfig := &oauth2.Config{
		ClientID:     cfg.ClientID,
		ClientSecret: cfg.ClientSecret,
		RedirectURL:  cfg.CallbackURL,
		Scopes: []string{
			"user:email", // Access to user's email addresses
			"read:user",  // Read access to user profile data
		},
		Endpoint: githubendpoint.Endpoint,
	}

	return &GitHubService{
		oauthConfig: oauthConfig,
	}
}

// NewOAuthState returns a random value for the OAuth state parameter
func NewOAuthState() (string, error) {
	buf := make([]byte, 16)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(buf), nil
}

// GetAuthURL returns the GitHub OAuth authorization URL
func (s *GitHubService) GetAuthURL(state string) string {
	return s.oauthConfig.AuthCodeURL(state, oauth2.AccessTypeOnline)
}

// ExchangeCodeForToken exchanges authorization code for access token
func (s *GitHubService) ExchangeCodeForToken(ctx context.Context, code string) (*oauth2.Token, error) {
	token, err := s.oauthConfig.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("failed to exchange code for token: %w", err)
	}
	return token, nil
}

// GetUserInfo retrieves the authenticated user's profile from GitHub
func (s *GitHubService) GetUserInfo(ctx context.Context, token *oauth2.Token) (*GitHubUser, error) {
	client := github.NewClient(s.oauthConfig.Client(ctx, token))

	user, _, err := client.Users.Get(ctx, "")
	if err != nil {
		return nil, fmt.Errorf("failed to get user info: %w", err)
	}

	return &GitHubUser{
		Login:     user.GetLogin(),
		Name:      user.GetName(),
		Email:     user.GetEmail(),
		AvatarURL: user.GetAvatarURL(),
	}, nil
}
