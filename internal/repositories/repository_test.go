package repositories

import (
	"context"
	"strings"
	"testing"

	"github.com/alimgiray/showcase/internal/models"
	"github.com/alimgiray/showcase/pkg/config"
	"github.com/alimgiray/showcase/pkg/database"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	db, err := database.Open(config.DatabaseConfig{
		Driver: "sqlite3",
		Path:   "file:" + name + "?mode=memory&cache=shared",
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db, models.All()...))

	t.Cleanup(func() {
		sqlDB, err := db.DB()
		if err == nil {
			sqlDB.Close()
		}
	})
	return db
}

func seedProject(t *testing.T, db *gorm.DB) (*models.Project, *models.User) {
	t.Helper()
	ctx := context.Background()

	users := NewUserRepository(db)
	owner := &models.User{GithubUsername: "octocat", Name: "The Octocat"}
	require.NoError(t, users.Upsert(ctx, owner))

	project := &models.Project{
		Name:             "Showcase",
		Description:      "A place to post projects",
		GithubURL:        "https://github.com/octocat/showcase",
		ProblemStatement: "Projects get lost",
		Status:           models.StatusCompleted,
		ProjectType:      models.TypePersonal,
		TechStack:        []string{"Go", "React"},
		KeyFeatures:      []string{"Listing"},
		AcademicHighlights: []models.AcademicHighlight{
			{Title: "Winner", Status: "Won", Competition: "HackMIT"},
		},
		OwnerID: owner.ID,
		Users: []models.ProjectUser{
			{UserID: owner.ID, Role: models.RoleOwner},
		},
		PendingUsers: []models.PendingUser{
			{GithubUsername: "hubot", Role: models.RoleContributor},
		},
		ProjectImages: []models.ProjectImage{
			{URL: "https://example.com/a.png", Title: "Home"},
		},
	}
	require.NoError(t, NewProjectRepository(db).Create(ctx, project))
	return project, owner
}

func TestFindAllWithRelations(t *testing.T) {
	db := newTestDB(t)
	repo := NewProjectRepository(db)
	ctx := context.Background()

	projects, err := repo.FindAllWithRelations(ctx)
	require.NoError(t, err)
	assert.NotNil(t, projects)
	assert.Empty(t, projects)

	created, owner := seedProject(t, db)

	projects, err = repo.FindAllWithRelations(ctx)
	require.NoError(t, err)
	require.Len(t, projects, 1)

	project := projects[0]
	assert.Equal(t, created.ID, project.ID)
	assert.Equal(t, []string{"Go", "React"}, []string(project.TechStack))
	assert.Equal(t, "HackMIT", project.AcademicHighlights[0].Competition)
	require.Len(t, project.Users, 1)
	assert.Equal(t, owner.ID, project.Users[0].User.ID)
	assert.Equal(t, "octocat", project.Users[0].User.GithubUsername)
	require.Len(t, project.PendingUsers, 1)
	assert.Equal(t, "hubot", project.PendingUsers[0].GithubUsername)
	require.Len(t, project.ProjectImages, 1)
	assert.Equal(t, "Home", project.ProjectImages[0].Title)
}

func TestFindAllWithRelationsReleasesConnection(t *testing.T) {
	db := newTestDB(t)
	seedProject(t, db)

	_, err := NewProjectRepository(db).FindAllWithRelations(context.Background())
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	assert.Equal(t, 0, sqlDB.Stats().InUse)
}

func TestFindAllWithRelationsFailsWithoutTables(t *testing.T) {
	db := newTestDB(t)
	seedProject(t, db)
	require.NoError(t, db.Migrator().DropTable(&models.ProjectImage{}))

	_, err := NewProjectRepository(db).FindAllWithRelations(context.Background())
	assert.Error(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	assert.Equal(t, 0, sqlDB.Stats().InUse)
}

func TestExistsByGithubURL(t *testing.T) {
	db := newTestDB(t)
	seedProject(t, db)
	repo := NewProjectRepository(db)
	ctx := context.Background()

	exists, err := repo.ExistsByGithubURL(ctx, "https://github.com/octocat/showcase")
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = repo.ExistsByGithubURL(ctx, "https://github.com/octocat/other")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestGithubURLIsUniqueWhenSet(t *testing.T) {
	db := newTestDB(t)
	seeded, owner := seedProject(t, db)
	repo := NewProjectRepository(db)
	ctx := context.Background()

	newProject := func(githubURL string) *models.Project {
		return &models.Project{
			Name:             "Another",
			Description:      "Another project",
			GithubURL:        githubURL,
			ProblemStatement: "Same problem",
			Status:           models.StatusOnHold,
			ProjectType:      models.TypeHackathon,
			OwnerID:          owner.ID,
		}
	}

	err := repo.Create(ctx, newProject(seeded.GithubURL))
	assert.True(t, IsDuplicate(err), "expected duplicate key, got %v", err)

	require.NoError(t, repo.Create(ctx, newProject("")))
	require.NoError(t, repo.Create(ctx, newProject("")))
}

func TestGetByID(t *testing.T) {
	db := newTestDB(t)
	created, _ := seedProject(t, db)
	repo := NewProjectRepository(db)

	project, err := repo.GetByID(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Len(t, project.Users, 1)

	_, err = repo.GetByID(context.Background(), uuid.New())
	assert.True(t, IsNotFound(err))
}

func TestUserUpsert(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	first := &models.User{GithubUsername: "octocat", Name: "Octo"}
	require.NoError(t, repo.Upsert(ctx, first))
	require.NotEqual(t, uuid.Nil, first.ID)

	second := &models.User{GithubUsername: "octocat", Name: "The Octocat", GitHubAccessToken: "token"}
	require.NoError(t, repo.Upsert(ctx, second))

	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, "The Octocat", second.Name)
	assert.Equal(t, "token", second.GitHubAccessToken)

	found, err := repo.FindByGithubUsernames(ctx, []string{"octocat", "hubot"})
	require.NoError(t, err)
	assert.Len(t, found, 1)
	assert.Contains(t, found, "octocat")

	byID, err := repo.GetByID(ctx, first.ID)
	require.NoError(t, err)
	assert.Equal(t, "octocat", byID.GithubUsername)
}

func TestTransactionRollsBack(t *testing.T) {
	db := newTestDB(t)
	repo := NewProjectRepository(db)
	ctx := context.Background()

	err := repo.Transaction(ctx, func(projects *ProjectRepository, users *UserRepository) error {
		require.NoError(t, users.Upsert(ctx, &models.User{GithubUsername: "ghost"}))
		return assert.AnError
	})
	assert.ErrorIs(t, err, assert.AnError)

	_, err = NewUserRepository(db).GetByGithubUsername(ctx, "ghost")
	assert.True(t, IsNotFound(err))
}
