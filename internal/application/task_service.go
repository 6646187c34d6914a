package application

import (
	"errors"

	"github.com/sirupsen/logrus"

	"github.com/quadro-app/quadro/internal/domain/entity"
	repo "github.com/quadro-app/quadro/internal/domain/repository"
	"github.com/quadro-app/quadro/pkg/helpers"
)

var ErrInvalidStatus = errors.New("invalid task status")

// TaskService owns the task cache. While a user is signed in the cache
// mirrors the whole persisted tasks collection (tasks are scoped per
// view by project id, not per user); it is empty when anonymous.
type TaskService struct {
	Tasks  repo.TaskRepository
	IDs    helpers.IDGenerator
	Clock  helpers.Clock
	Logger *logrus.Logger

	active *entity.User
	cache  []entity.Task
}

func NewTaskService(tasks repo.TaskRepository, ids helpers.IDGenerator, clock helpers.Clock, logger *logrus.Logger) *TaskService {
	return &TaskService{
		Tasks:  tasks,
		IDs:    ids,
		Clock:  clock,
		Logger: logger,
	}
}

// SetActiveUser loads all tasks when u is signed in, or empties the
// cache when u is nil.
func (s *TaskService) SetActiveUser(u *entity.User) error {
	s.active = u
	if u == nil {
		s.cache = nil
		return nil
	}
	all, err := s.Tasks.List()
	if err != nil {
		return err
	}
	s.cache = all
	return nil
}

// AddTask creates a todo task with no completion timestamp.
func (s *TaskService) AddTask(projectID, title, description string) (*entity.Task, error) {
	if s.active == nil {
		return nil, ErrNotAuthenticated
	}

	t := &entity.Task{
		ID:          s.IDs.NewID(),
		ProjectID:   projectID,
		Title:       title,
		Description: description,
		Status:      entity.TaskStatusTodo,
		CreatedAt:   s.Clock.Now(),
	}
	if err := s.Tasks.Create(t); err != nil {
		return nil, err
	}
	s.cache = append(s.cache, *t)
	s.Logger.WithFields(logrus.Fields{"task_id": t.ID, "project_id": t.ProjectID}).Info("task created")
	return t, nil
}

// UpdateTask applies a partial update. Whenever the patch sets status
// to completed the completion timestamp is derived here, even if the
// task was already completed (re-completing refreshes it). The same
// merged patch feeds the store and the cache.
func (s *TaskService) UpdateTask(id string, patch repo.TaskPatch) (*entity.Task, error) {
	if s.active == nil {
		return nil, ErrNotAuthenticated
	}
	if patch.Status != nil && !patch.Status.Valid() {
		return nil, ErrInvalidStatus
	}
	if patch.Status != nil && *patch.Status == entity.TaskStatusCompleted {
		now := s.Clock.Now()
		patch.CompletedAt = &now
	}

	updated, err := s.Tasks.Update(id, patch)
	if err != nil {
		return nil, err
	}
	for i := range s.cache {
		if s.cache[i].ID == id {
			patch.Apply(&s.cache[i])
			break
		}
	}
	s.Logger.WithField("task_id", id).Debug("task updated")
	return updated, nil
}

// DeleteTask removes the task from the store and the cache.
func (s *TaskService) DeleteTask(id string) error {
	if s.active == nil {
		return ErrNotAuthenticated
	}
	if err := s.Tasks.Delete(id); err != nil {
		return err
	}
	kept := s.cache[:0]
	for _, t := range s.cache {
		if t.ID != id {
			kept = append(kept, t)
		}
	}
	s.cache = kept
	s.Logger.WithField("task_id", id).Info("task deleted")
	return nil
}

// ProjectTasks filters the cache by project id.
func (s *TaskService) ProjectTasks(projectID string) []entity.Task {
	out := make([]entity.Task, 0, len(s.cache))
	for _, t := range s.cache {
		if t.ProjectID == projectID {
			out = append(out, t)
		}
	}
	return out
}

// GetTask looks up the cache by id.
func (s *TaskService) GetTask(id string) (*entity.Task, error) {
	for i := range s.cache {
		if s.cache[i].ID == id {
			t := s.cache[i]
			return &t, nil
		}
	}
	return nil, entity.ErrNotFound
}
