package handlers

import (
	"github.com/alimgiray/showcase/internal/middleware"
	"github.com/gin-gonic/gin"
)

type Handlers struct {
	Home     *HomeHandler
	Auth     *AuthHandler
	Project  *ProjectHandler
	Draft    *DraftHandler
	Health   *HealthHandler
	NotFound *NotFoundHandler
}

// SetupRoutes registers every route on router
func SetupRoutes(router *gin.Engine, h *Handlers) {
	router.GET("/", h.Home.Index)

	// Auth routes
	router.GET("/logout", h.Auth.Logout)
	router.GET("/auth/github", h.Auth.GitHubLogin)
	router.GET("/auth/github/callback", h.Auth.GitHubCallback)

	api := router.Group("/api")
	{
		api.GET("/projects", h.Project.ListProjects)
		api.POST("/projects/post-project", h.Project.CreateProject)
		api.GET("/projects/export", h.Project.ExportProjects)
	}

	protected := api.Group("")
	protected.Use(middleware.AuthRequired())
	{
		protected.GET("/me", h.Auth.Me)
	}

	draft := api.Group("/draft")
	draft.Use(middleware.AuthRequired())
	{
		draft.GET("", h.Draft.GetDraft)
		draft.PATCH("/fields", h.Draft.UpdateField)
		draft.PUT("/private-repository", h.Draft.SetPrivateRepository)
		draft.POST("/repository", h.Draft.SelectRepository)
		draft.POST("/technologies", h.Draft.AddTechnology)
		draft.DELETE("/technologies", h.Draft.RemoveTechnology)
		draft.POST("/contributors", h.Draft.AddContributor)
		draft.DELETE("/contributors/:id", h.Draft.RemoveContributor)
		draft.POST("/features", h.Draft.AddFeature)
		draft.PUT("/features/:index", h.Draft.UpdateFeature)
		draft.DELETE("/features/:index", h.Draft.RemoveFeature)
		draft.POST("/highlights", h.Draft.AddHighlight)
		draft.DELETE("/highlights/:index", h.Draft.RemoveHighlight)
		draft.PUT("/staged-image", h.Draft.StageImage)
		draft.POST("/images", h.Draft.AddImage)
		draft.DELETE("/images/:index", h.Draft.RemoveImage)
		draft.POST("/validate", h.Draft.Validate)
		draft.POST("/submit", h.Draft.Submit)
		draft.POST("/acknowledge", h.Draft.Acknowledge)
	}

	router.GET("/health", h.Health.HealthCheck)
	router.NoRoute(h.NotFound.NotFound)
}
