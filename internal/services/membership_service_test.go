package services

import (
	"context"
	"testing"

	"github.com/alimgiray/showcase/internal/repositories"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPromotePendingUsers(t *testing.T) {
	db := newTestDB(t)
	projectService := NewProjectService(repositories.NewProjectRepository(db))
	users := repositories.NewUserRepository(db)
	membership := NewMembershipService(repositories.NewPendingUserRepository(db))
	ctx := context.Background()

	owner := createUser(t, users, "octocat")
	project, err := projectService.CreateProject(ctx, creationRequest(owner))
	require.NoError(t, err)
	require.Len(t, project.PendingUsers, 2)

	promoted, err := membership.PromotePendingUsers(ctx, 10)
	require.NoError(t, err)
	assert.Equal(t, 0, promoted)

	createUser(t, users, "newcomer")

	promoted, err = membership.PromotePendingUsers(ctx, 10)
	require.NoError(t, err)
	assert.Equal(t, 1, promoted)

	projects, err := projectService.ListProjects(ctx)
	require.NoError(t, err)
	require.Len(t, projects, 1)
	assert.Len(t, projects[0].Users, 2)
	require.Len(t, projects[0].PendingUsers, 1)
	assert.Equal(t, "monalisa", projects[0].PendingUsers[0].GithubUsername)
}
