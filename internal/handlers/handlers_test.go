package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/alimgiray/showcase/internal/client"
	"github.com/alimgiray/showcase/internal/middleware"
	"github.com/alimgiray/showcase/internal/models"
	"github.com/alimgiray/showcase/internal/repositories"
	"github.com/alimgiray/showcase/internal/services"
	"github.com/alimgiray/showcase/pkg/config"
	"github.com/alimgiray/showcase/pkg/database"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type testEnv struct {
	t      *testing.T
	router *gin.Engine
	db     *gorm.DB
	users  *repositories.UserRepository
	owner  *models.User
	cookie *http.Cookie
	drafts *services.DraftService
}

type staticWorkerStatus map[string]bool

func (s staticWorkerStatus) GetWorkerStatus() map[string]bool {
	return s
}

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	db, err := database.Open(config.DatabaseConfig{
		Driver: "sqlite3",
		Path:   "file:handlers_" + name + "?mode=memory&cache=shared",
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db, models.All()...))

	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})
	return db
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	require.NoError(t, config.Load())
	gin.SetMode(gin.TestMode)

	env := &testEnv{t: t, db: newTestDB(t)}

	// The draft submitter posts back into the same router.
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		env.router.ServeHTTP(w, r)
	}))
	t.Cleanup(server.Close)

	env.users = repositories.NewUserRepository(env.db)
	userService := services.NewUserService(env.users)
	projectService := services.NewProjectService(repositories.NewProjectRepository(env.db))
	env.drafts = services.NewDraftService(nil, client.NewProjectClient(server.URL, server.Client()))

	env.router = gin.New()
	env.router.Use(middleware.SessionMiddleware())
	SetupRoutes(env.router, &Handlers{
		Home:     NewHomeHandler(),
		Auth:     NewAuthHandler(userService, services.NewGitHubService(config.GitHubConfig{ClientID: "client-id", CallbackURL: "http://localhost/auth/github/callback"})),
		Project:  NewProjectHandler(projectService, services.NewExportService(projectService)),
		Draft:    NewDraftHandler(env.drafts),
		Health:   NewHealthHandler(env.db, staticWorkerStatus{"promotion-1": true}),
		NotFound: NewNotFoundHandler(),
	})

	env.owner = &models.User{Name: "The Octocat", GithubUsername: "octocat"}
	require.NoError(t, env.users.Upsert(context.Background(), env.owner))

	env.router.GET("/test-login", func(c *gin.Context) {
		require.NoError(t, middleware.SetSession(c, env.owner.ID.String(), env.owner.GithubUsername, env.owner.Name))
		c.Status(http.StatusNoContent)
	})
	w := env.do(http.MethodGet, "/test-login", nil)
	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	env.cookie = cookies[0]

	return env
}

func (e *testEnv) do(method, path string, body interface{}) *httptest.ResponseRecorder {
	e.t.Helper()

	var reader *bytes.Reader
	switch b := body.(type) {
	case nil:
		reader = bytes.NewReader(nil)
	case string:
		reader = bytes.NewReader([]byte(b))
	default:
		raw, err := json.Marshal(b)
		require.NoError(e.t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if e.cookie != nil {
		req.AddCookie(e.cookie)
	}
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

// anonymous runs a request without the session cookie
func (e *testEnv) anonymous(method, path string, body interface{}) *httptest.ResponseRecorder {
	cookie := e.cookie
	e.cookie = nil
	defer func() { e.cookie = cookie }()
	return e.do(method, path, body)
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v))
	return v
}
