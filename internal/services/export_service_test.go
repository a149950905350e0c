package services

import (
	"bytes"
	"testing"
	"time"

	"github.com/alimgiray/showcase/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestWriteProjectsWorkbook(t *testing.T) {
	projects := []*models.Project{
		{
			Name:        "Showcase",
			ProjectType: models.TypePersonal,
			Status:      models.StatusCompleted,
			GithubURL:   "https://github.com/octocat/showcase",
			TechStack:   []string{"Go", "React"},
			KeyFeatures: []string{"Listing", "Export"},
			Users: []models.ProjectUser{
				{Role: models.RoleOwner, User: models.User{GithubUsername: "octocat"}},
			},
			PendingUsers: []models.PendingUser{
				{GithubUsername: "newcomer", Role: models.RoleContributor},
			},
			CreatedAt: time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC),
		},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteProjectsWorkbook(projects, &buf))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(projectsSheet)
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, exportHeaders, rows[0])
	assert.Equal(t, "Showcase", rows[1][0])
	assert.Equal(t, "Personal Project", rows[1][1])
	assert.Equal(t, "Go, React", rows[1][5])
	assert.Equal(t, "octocat (OWNER)", rows[1][7])
	assert.Equal(t, "newcomer (CONTRIBUTOR)", rows[1][8])
	assert.Equal(t, "2024-05-01 10:00:00", rows[1][10])
}

func TestWriteProjectsWorkbookEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteProjectsWorkbook(nil, &buf))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(projectsSheet)
	require.NoError(t, err)
	assert.Len(t, rows, 1)
}
