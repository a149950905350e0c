package handlers

import (
	"net/http"

	"github.com/alimgiray/showcase/internal/middleware"
	"github.com/alimgiray/showcase/internal/repositories"
	"github.com/alimgiray/showcase/internal/services"
	"github.com/alimgiray/showcase/pkg/logger"
	"github.com/gin-gonic/gin"
)

const oauthStateCookie = "oauth_state"

type AuthHandler struct {
	userService   *services.UserService
	githubService *services.GitHubService
}

func NewAuthHandler(userService *services.UserService, githubService *services.GitHubService) *AuthHandler {
	return &AuthHandler{
		userService:   userService,
		githubService: githubService,
	}
}

// Logout handles user logout
func (h *AuthHandler) Logout(c *gin.Context) {
	middleware.ClearSession(c)
	c.Redirect(http.StatusFound, "/")
}

// GitHubLogin initiates GitHub OAuth flow
func (h *AuthHandler) GitHubLogin(c *gin.Context) {
	state, err := services.NewOAuthState()
	if err != nil {
		logger.WithError(err).Error("Error creating OAuth state")
		c.Redirect(http.StatusFound, "/?error=login_failed")
		return
	}

	c.SetCookie(oauthStateCookie, state, 600, "/", "", false, true)
	c.Redirect(http.StatusTemporaryRedirect, h.githubService.GetAuthURL(state))
}

// GitHubCallback handles GitHub OAuth callback
func (h *AuthHandler) GitHubCallback(c *gin.Context) {
	state, err := c.Cookie(oauthStateCookie)
	c.SetCookie(oauthStateCookie, "", -1, "/", "", false, true)
	if err != nil || state == "" || c.Query("state") != state {
		c.Redirect(http.StatusFound, "/?error=invalid_state")
		return
	}

	code := c.Query("code")
	if code == "" {
		c.Redirect(http.StatusFound, "/?error=no_code")
		return
	}

	ctx := c.Request.Context()

	token, err := h.githubService.ExchangeCodeForToken(ctx, code)
	if err != nil {
		logger.WithError(err).Warn("GitHub token exchange failed")
		c.Redirect(http.StatusFound, "/?error=token_exchange_failed")
		return
	}

	githubUser, err := h.githubService.GetUserInfo(ctx, token)
	if err != nil {
		logger.WithError(err).Warn("GitHub user lookup failed")
		c.Redirect(http.StatusFound, "/?error=user_info_failed")
		return
	}

	user, err := h.userService.SaveGitHubUser(ctx, githubUser, token.AccessToken)
	if err != nil {
		logger.WithError(err).WithField("username", githubUser.Login).Error("Error saving user")
		c.Redirect(http.StatusFound, "/?error=user_creation_failed")
		return
	}

	if err := middleware.SetSession(c, user.ID.String(), user.GithubUsername, user.Name); err != nil {
		c.Redirect(http.StatusFound, "/?error=session_creation_failed")
		return
	}

	logger.WithField("username", user.GithubUsername).Info("User logged in")
	c.Redirect(http.StatusFound, "/")
}

// Me returns the logged-in user
func (h *AuthHandler) Me(c *gin.Context) {
	session := middleware.GetSession(c)

	user, err := h.userService.GetUserByID(c.Request.Context(), session.UserID)
	switch {
	case repositories.IsNotFound(err):
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
	case err != nil:
		logger.WithError(err).Error("Error loading user")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal Server Error"})
	default:
		c.JSON(http.StatusOK, user)
	}
}
