package repositories

import (
	"context"
	"testing"

	"github.com/alimgiray/showcase/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindClaimedOnlyMatchesRegisteredUsers(t *testing.T) {
	db := newTestDB(t)
	seedProject(t, db)
	repo := NewPendingUserRepository(db)
	ctx := context.Background()

	claimed, err := repo.FindClaimed(ctx, 10)
	require.NoError(t, err)
	assert.Empty(t, claimed)

	hubot := &models.User{GithubUsername: "hubot"}
	require.NoError(t, NewUserRepository(db).Upsert(ctx, hubot))

	claimed, err = repo.FindClaimed(ctx, 10)
	require.NoError(t, err)
	require.Len(t, claimed, 1)
	assert.Equal(t, "hubot", claimed[0].GithubUsername)
	assert.Equal(t, hubot.ID, claimed[0].UserID)
	assert.Equal(t, models.RoleContributor, claimed[0].Role)
}

func TestPromoteMovesPendingUser(t *testing.T) {
	db := newTestDB(t)
	project, _ := seedProject(t, db)
	repo := NewPendingUserRepository(db)
	ctx := context.Background()

	hubot := &models.User{GithubUsername: "hubot"}
	require.NoError(t, NewUserRepository(db).Upsert(ctx, hubot))
	claimed, err := repo.FindClaimed(ctx, 10)
	require.NoError(t, err)
	require.Len(t, claimed, 1)

	require.NoError(t, repo.Promote(ctx, &claimed[0].PendingUser, claimed[0].UserID))

	loaded, err := NewProjectRepository(db).GetByID(ctx, project.ID)
	require.NoError(t, err)
	assert.Empty(t, loaded.PendingUsers)
	require.Len(t, loaded.Users, 2)

	roles := map[string]models.Role{}
	for _, pu := range loaded.Users {
		roles[pu.User.GithubUsername] = pu.Role
	}
	assert.Equal(t, map[string]models.Role{"octocat": models.RoleOwner, "hubot": models.RoleContributor}, roles)
}

func TestPromoteKeepsExistingMembership(t *testing.T) {
	db := newTestDB(t)
	project, owner := seedProject(t, db)
	repo := NewPendingUserRepository(db)
	ctx := context.Background()

	duplicate := &models.PendingUser{ProjectID: project.ID, GithubUsername: owner.GithubUsername, Role: models.RoleContributor}
	require.NoError(t, db.Create(duplicate).Error)

	require.NoError(t, repo.Promote(ctx, duplicate, owner.ID))

	loaded, err := NewProjectRepository(db).GetByID(ctx, project.ID)
	require.NoError(t, err)
	require.Len(t, loaded.Users, 1)
	assert.Equal(t, models.RoleOwner, loaded.Users[0].Role)
	require.Len(t, loaded.PendingUsers, 1)
	assert.Equal(t, "hubot", loaded.PendingUsers[0].GithubUsername)
}
