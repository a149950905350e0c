package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/alimgiray/showcase/internal/client"
	"github.com/alimgiray/showcase/internal/handlers"
	"github.com/alimgiray/showcase/internal/middleware"
	"github.com/alimgiray/showcase/internal/models"
	"github.com/alimgiray/showcase/internal/repositories"
	"github.com/alimgiray/showcase/internal/services"
	"github.com/alimgiray/showcase/internal/workers"
	"github.com/alimgiray/showcase/pkg/config"
	"github.com/alimgiray/showcase/pkg/database"
	"github.com/alimgiray/showcase/pkg/logger"
	"github.com/gin-gonic/gin"
)

func main() {
	// Load configuration
	if err := config.Load(); err != nil {
		logger.Fatalf("Failed to load config: %v", err)
	}
	cfg := config.AppConfig

	logger.Init(cfg.Log.Level)
	gin.SetMode(cfg.Server.Mode)

	// Initialize database
	if err := database.Init(models.All()...); err != nil {
		logger.Fatalf("Failed to initialize database: %v", err)
	}
	defer database.Close()

	// Initialize dependencies
	userRepo := repositories.NewUserRepository(database.DB)
	projectRepo := repositories.NewProjectRepository(database.DB)
	userService := services.NewUserService(userRepo)
	projectService := services.NewProjectService(projectRepo)
	exportService := services.NewExportService(projectService)
	githubService := services.NewGitHubService(cfg.GitHub)

	githubRepoService, err := services.NewGitHubRepositoryService(cfg.GitHub.Token, cfg.GitHub.APIURL)
	if err != nil {
		logger.Fatalf("Failed to create GitHub client: %v", err)
	}
	if cfg.GitHub.Token == "" {
		logger.GetLogger().Warn("GITHUB_TOKEN is not set, repository listing is rate limited")
	}

	projectClient := client.NewProjectClient(cfg.API.BaseURL, nil)
	draftService := services.NewDraftService(githubRepoService, projectClient)

	pendingUserRepo := repositories.NewPendingUserRepository(database.DB)
	membershipService := services.NewMembershipService(pendingUserRepo)
	workerManager := workers.NewWorkerManager(membershipService, cfg.Worker)

	// Initialize router
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(logger.Middleware())
	router.Use(middleware.SessionMiddleware())

	handlers.SetupRoutes(router, &handlers.Handlers{
		Home:     handlers.NewHomeHandler(),
		Auth:     handlers.NewAuthHandler(userService, githubService),
		Project:  handlers.NewProjectHandler(projectService, exportService),
		Draft:    handlers.NewDraftHandler(draftService),
		Health:   handlers.NewHealthHandler(database.DB, workerManager),
		NotFound: handlers.NewNotFoundHandler(),
	})

	// Start workers
	if err := workerManager.StartAll(); err != nil {
		logger.Fatalf("Failed to start workers: %v", err)
	}
	defer workerManager.StopAll()

	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
	}

	// Graceful shutdown
	go func() {
		logger.Infof("Server starting on :%s", cfg.Server.Port)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatalf("Server failed to start: %v", err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Infof("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		logger.WithError(err).Error("Server forced to shut down")
	}
	draftService.Wait()
	logger.Infof("Server stopped")
}
