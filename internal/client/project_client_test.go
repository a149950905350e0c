package client

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/alimgiray/showcase/internal/form"
	"github.com/alimgiray/showcase/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func request() *models.CreateProjectRequest {
	return &models.CreateProjectRequest{
		Name:        "Showcase",
		GithubURL:   "https://github.com/octocat/showcase",
		TechStack:   []string{"Go"},
		KeyFeatures: []string{"Listing"},
		Users:       []models.ProjectUserInput{{GithubUsername: "octocat", Role: models.RoleOwner}},
	}
}

func TestCreateProjectPostsJSON(t *testing.T) {
	var received models.CreateProjectRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/projects/post-project", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"name":"Showcase","githubUrl":"https://github.com/octocat/showcase"}`))
	}))
	defer server.Close()

	c := NewProjectClient(server.URL+"/", nil)
	project, err := c.CreateProject(context.Background(), request())

	require.NoError(t, err)
	assert.Equal(t, "Showcase", project.Name)
	assert.Equal(t, "Showcase", received.Name)
	assert.Equal(t, []string{"Go"}, received.TechStack)
	require.Len(t, received.Users, 1)
	assert.Equal(t, models.RoleOwner, received.Users[0].Role)
}

func TestCreateProjectErrorResponses(t *testing.T) {
	testCases := []struct {
		name   string
		status int
		body   string
		reason string
	}{
		{name: "duplicate", status: http.StatusConflict, body: `{"error":"Project with this GitHub URL already exists"}`, reason: models.DuplicateGitHubURLMessage},
		{name: "server error", status: http.StatusInternalServerError, body: `{"error":"Internal Server Error"}`, reason: "Internal Server Error"},
		{name: "non json body", status: http.StatusBadGateway, body: `bad gateway`},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tc.status)
				w.Write([]byte(tc.body))
			}))
			defer server.Close()

			_, err := NewProjectClient(server.URL, nil).CreateProject(context.Background(), request())

			var responseErr *form.ResponseError
			require.True(t, errors.As(err, &responseErr))
			assert.Equal(t, tc.status, responseErr.StatusCode)
			assert.Equal(t, tc.reason, responseErr.Reason)
		})
	}
}

func TestCreateProjectUndecodableSuccess(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`not json`))
	}))
	defer server.Close()

	_, err := NewProjectClient(server.URL, nil).CreateProject(context.Background(), request())

	require.Error(t, err)
	var responseErr *form.ResponseError
	assert.False(t, errors.As(err, &responseErr))
}

func TestCreateProjectUnreachable(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	url := server.URL
	server.Close()

	_, err := NewProjectClient(url, nil).CreateProject(context.Background(), request())
	assert.Error(t, err)
}
