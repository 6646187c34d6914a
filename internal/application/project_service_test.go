package application_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/quadro-app/quadro/internal/application"
	"github.com/quadro-app/quadro/internal/domain/entity"
	"github.com/quadro-app/quadro/internal/infrastructure/kvstore"
)

func TestProjectService_AddProject(t *testing.T) {
	e := newEnv(t)
	e.signIn(t, "a@example.com")

	p, err := e.projects.AddProject("Alpha", "first project")
	require.NoError(t, err)
	require.Equal(t, "Alpha", p.Name)
	require.Equal(t, e.auth.CurrentUser().ID, p.UserID)
	require.NotEmpty(t, p.CreatedAt)

	listed := e.projects.UserProjects()
	require.Len(t, listed, 1)
	require.Equal(t, *p, listed[0])
}

func TestProjectService_AddProjectRequiresUser(t *testing.T) {
	e := newEnv(t)

	_, err := e.projects.AddProject("Alpha", "")
	require.ErrorIs(t, err, application.ErrNotAuthenticated)
}

func TestProjectService_CapOfFour(t *testing.T) {
	e := newEnv(t)
	e.signIn(t, "a@example.com")

	for i := 1; i <= application.MaxProjectsPerUser; i++ {
		_, err := e.projects.AddProject(fmt.Sprintf("P%d", i), "")
		require.NoError(t, err)
	}

	_, err := e.projects.AddProject("P5", "")
	require.ErrorIs(t, err, application.ErrProjectLimitExceeded)

	// the failing call changes nothing, in memory or on disk
	require.Len(t, e.projects.UserProjects(), 4)
	persisted, err := kvstore.NewProjectRepository(e.store).List()
	require.NoError(t, err)
	require.Len(t, persisted, 4)
}

func TestProjectService_CapChecksPersistedCollection(t *testing.T) {
	e := newEnv(t)
	e.signIn(t, "a@example.com")
	userID := e.auth.CurrentUser().ID

	// four projects written behind the service's back
	repo := kvstore.NewProjectRepository(e.store)
	for i := 1; i <= 4; i++ {
		require.NoError(t, repo.Create(&entity.Project{
			ID: fmt.Sprintf("ext-%d", i), UserID: userID, Name: fmt.Sprintf("P%d", i),
		}))
	}

	_, err := e.projects.AddProject("P5", "")
	require.ErrorIs(t, err, application.ErrProjectLimitExceeded, "a stale cache must not loosen the cap")
}

func TestProjectService_IsolationBetweenUsers(t *testing.T) {
	e := newEnv(t)

	e.signIn(t, "a@example.com")
	for i := 1; i <= 4; i++ {
		_, err := e.projects.AddProject(fmt.Sprintf("P%d", i), "")
		require.NoError(t, err)
	}
	require.NoError(t, e.auth.Logout())

	e.signIn(t, "b@example.com")
	require.Empty(t, e.projects.UserProjects(), "user B must not see user A's projects")

	// B still gets their own four
	p, err := e.projects.AddProject("B1", "")
	require.NoError(t, err)
	require.Equal(t, e.auth.CurrentUser().ID, p.UserID)

	persisted, err := kvstore.NewProjectRepository(e.store).List()
	require.NoError(t, err)
	require.Len(t, persisted, 5)
}

func TestProjectService_GetProjectCacheOnly(t *testing.T) {
	e := newEnv(t)
	e.signIn(t, "a@example.com")
	p, err := e.projects.AddProject("Alpha", "")
	require.NoError(t, err)

	got, err := e.projects.GetProject(p.ID)
	require.NoError(t, err)
	require.Equal(t, p, got)

	// someone else's project exists in the store but not in the cache
	repo := kvstore.NewProjectRepository(e.store)
	require.NoError(t, repo.Create(&entity.Project{ID: "other", UserID: "someone-else", Name: "X"}))

	_, err = e.projects.GetProject("other")
	require.ErrorIs(t, err, entity.ErrNotFound)
}

func TestProjectService_AnonymousListIsEmpty(t *testing.T) {
	e := newEnv(t)
	e.signIn(t, "a@example.com")
	_, err := e.projects.AddProject("Alpha", "")
	require.NoError(t, err)

	require.NoError(t, e.projects.SetActiveUser(nil))
	require.Empty(t, e.projects.UserProjects())
}
