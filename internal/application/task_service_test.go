package application_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/quadro-app/quadro/internal/application"
	"github.com/quadro-app/quadro/internal/domain/entity"
	"github.com/quadro-app/quadro/internal/domain/repository"
	"github.com/quadro-app/quadro/internal/infrastructure/kvstore"
)

func TestTaskService_AddTaskStartsTodo(t *testing.T) {
	e := newEnv(t)
	e.signIn(t, "a@example.com")

	task, err := e.tasks.AddTask("p1", "Write docs", "the readme")
	require.NoError(t, err)
	require.Equal(t, entity.TaskStatusTodo, task.Status)
	require.NotEmpty(t, task.CreatedAt)
	require.Empty(t, task.CompletedAt)
}

func TestTaskService_AddTaskRequiresUser(t *testing.T) {
	e := newEnv(t)

	_, err := e.tasks.AddTask("p1", "Write docs", "")
	require.ErrorIs(t, err, application.ErrNotAuthenticated)
}

func TestTaskService_CompleteDerivesTimestamp(t *testing.T) {
	e := newEnv(t)
	e.signIn(t, "a@example.com")

	task, err := e.tasks.AddTask("p1", "Write docs", "")
	require.NoError(t, err)

	status := entity.TaskStatusCompleted
	updated, err := e.tasks.UpdateTask(task.ID, repository.TaskPatch{Status: &status})
	require.NoError(t, err)
	require.Equal(t, entity.TaskStatusCompleted, updated.Status)
	require.NotEmpty(t, updated.CompletedAt)
	require.GreaterOrEqual(t, updated.CompletedAt, updated.CreatedAt)

	// cache and store agree
	cached, err := e.tasks.GetTask(task.ID)
	require.NoError(t, err)
	require.Equal(t, updated, cached)
	persisted, err := kvstore.NewTaskRepository(e.store).GetByID(task.ID)
	require.NoError(t, err)
	require.Equal(t, updated, persisted)
}

func TestTaskService_RecompleteRefreshesTimestamp(t *testing.T) {
	e := newEnv(t)
	e.signIn(t, "a@example.com")

	task, err := e.tasks.AddTask("p1", "Write docs", "")
	require.NoError(t, err)

	status := entity.TaskStatusCompleted
	first, err := e.tasks.UpdateTask(task.ID, repository.TaskPatch{Status: &status})
	require.NoError(t, err)

	second, err := e.tasks.UpdateTask(task.ID, repository.TaskPatch{Status: &status})
	require.NoError(t, err)
	require.Greater(t, second.CompletedAt, first.CompletedAt)
}

func TestTaskService_UpdateTitleKeepsCompletion(t *testing.T) {
	e := newEnv(t)
	e.signIn(t, "a@example.com")

	task, err := e.tasks.AddTask("p1", "Write docs", "")
	require.NoError(t, err)

	status := entity.TaskStatusCompleted
	completed, err := e.tasks.UpdateTask(task.ID, repository.TaskPatch{Status: &status})
	require.NoError(t, err)

	title := "Write better docs"
	renamed, err := e.tasks.UpdateTask(task.ID, repository.TaskPatch{Title: &title})
	require.NoError(t, err)
	require.Equal(t, "Write better docs", renamed.Title)
	require.Equal(t, completed.CompletedAt, renamed.CompletedAt)
}

func TestTaskService_MutationsRequireUser(t *testing.T) {
	e := newEnv(t)
	e.signIn(t, "a@example.com")

	task, err := e.tasks.AddTask("p1", "one", "")
	require.NoError(t, err)
	require.NoError(t, e.tasks.SetActiveUser(nil))

	status := entity.TaskStatusCompleted
	_, err = e.tasks.UpdateTask(task.ID, repository.TaskPatch{Status: &status})
	require.ErrorIs(t, err, application.ErrNotAuthenticated)

	require.ErrorIs(t, e.tasks.DeleteTask(task.ID), application.ErrNotAuthenticated)

	// the persisted record is untouched by either rejected call
	persisted, err := kvstore.NewTaskRepository(e.store).GetByID(task.ID)
	require.NoError(t, err)
	require.Equal(t, entity.TaskStatusTodo, persisted.Status)
	require.Empty(t, persisted.CompletedAt)
}

func TestTaskService_UpdateRejectsUnknownStatus(t *testing.T) {
	e := newEnv(t)
	e.signIn(t, "a@example.com")

	task, err := e.tasks.AddTask("p1", "one", "")
	require.NoError(t, err)

	status := entity.TaskStatus("paused")
	_, err = e.tasks.UpdateTask(task.ID, repository.TaskPatch{Status: &status})
	require.ErrorIs(t, err, application.ErrInvalidStatus)

	persisted, err := kvstore.NewTaskRepository(e.store).GetByID(task.ID)
	require.NoError(t, err)
	require.Equal(t, entity.TaskStatusTodo, persisted.Status)
}

func TestTaskService_UpdateMissing(t *testing.T) {
	e := newEnv(t)
	e.signIn(t, "a@example.com")

	title := "x"
	_, err := e.tasks.UpdateTask("ghost", repository.TaskPatch{Title: &title})
	require.ErrorIs(t, err, entity.ErrNotFound)
}

func TestTaskService_Delete(t *testing.T) {
	e := newEnv(t)
	e.signIn(t, "a@example.com")

	keep, err := e.tasks.AddTask("p1", "keep", "")
	require.NoError(t, err)
	drop, err := e.tasks.AddTask("p1", "drop", "")
	require.NoError(t, err)

	require.NoError(t, e.tasks.DeleteTask(drop.ID))

	_, err = e.tasks.GetTask(drop.ID)
	require.ErrorIs(t, err, entity.ErrNotFound)
	remaining := e.tasks.ProjectTasks("p1")
	require.Len(t, remaining, 1)
	require.Equal(t, keep.ID, remaining[0].ID)

	persisted, err := kvstore.NewTaskRepository(e.store).List()
	require.NoError(t, err)
	require.Len(t, persisted, 1)
}

func TestTaskService_ProjectTasksFilters(t *testing.T) {
	e := newEnv(t)
	e.signIn(t, "a@example.com")

	_, err := e.tasks.AddTask("p1", "one", "")
	require.NoError(t, err)
	_, err = e.tasks.AddTask("p2", "two", "")
	require.NoError(t, err)
	_, err = e.tasks.AddTask("p1", "three", "")
	require.NoError(t, err)

	p1 := e.tasks.ProjectTasks("p1")
	require.Len(t, p1, 2)
	for _, task := range p1 {
		require.Equal(t, "p1", task.ProjectID)
	}
	require.Empty(t, e.tasks.ProjectTasks("p9"))
}

func TestTaskService_AnonymousCacheIsEmpty(t *testing.T) {
	e := newEnv(t)
	e.signIn(t, "a@example.com")
	_, err := e.tasks.AddTask("p1", "one", "")
	require.NoError(t, err)

	require.NoError(t, e.tasks.SetActiveUser(nil))
	require.Empty(t, e.tasks.ProjectTasks("p1"))

	// signing back in reloads every task from the store
	require.NoError(t, e.tasks.SetActiveUser(e.auth.CurrentUser()))
	require.Len(t, e.tasks.ProjectTasks("p1"), 1)
}
