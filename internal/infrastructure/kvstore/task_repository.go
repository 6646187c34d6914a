package kvstore

import (
	"github.com/quadro-app/quadro/internal/domain/entity"
	"github.com/quadro-app/quadro/internal/domain/repository"
)

// TaskRepository persists tasks under KeyTasks.
type TaskRepository struct {
	store Store
}

func NewTaskRepository(store Store) *TaskRepository {
	return &TaskRepository{store: store}
}

func (r *TaskRepository) Create(t *entity.Task) error {
	tasks, err := readAll[entity.Task](r.store, KeyTasks)
	if err != nil {
		return err
	}
	tasks = append(tasks, *t)
	return writeAll(r.store, KeyTasks, tasks)
}

func (r *TaskRepository) GetByID(id string) (*entity.Task, error) {
	tasks, err := readAll[entity.Task](r.store, KeyTasks)
	if err != nil {
		return nil, err
	}
	for i := range tasks {
		if tasks[i].ID == id {
			t := tasks[i]
			return &t, nil
		}
	}
	return nil, entity.ErrNotFound
}

func (r *TaskRepository) ListByProject(projectID string) ([]entity.Task, error) {
	tasks, err := readAll[entity.Task](r.store, KeyTasks)
	if err != nil {
		return nil, err
	}
	scoped := make([]entity.Task, 0, len(tasks))
	for _, t := range tasks {
		if t.ProjectID == projectID {
			scoped = append(scoped, t)
		}
	}
	return scoped, nil
}

func (r *TaskRepository) List() ([]entity.Task, error) {
	return readAll[entity.Task](r.store, KeyTasks)
}

func (r *TaskRepository) Update(id string, patch repository.TaskPatch) (*entity.Task, error) {
	tasks, err := readAll[entity.Task](r.store, KeyTasks)
	if err != nil {
		return nil, err
	}
	for i := range tasks {
		if tasks[i].ID != id {
			continue
		}
		patch.Apply(&tasks[i])
		if err := writeAll(r.store, KeyTasks, tasks); err != nil {
			return nil, err
		}
		t := tasks[i]
		return &t, nil
	}
	return nil, entity.ErrNotFound
}

func (r *TaskRepository) Delete(id string) error {
	tasks, err := readAll[entity.Task](r.store, KeyTasks)
	if err != nil {
		return err
	}
	kept := tasks[:0]
	for _, t := range tasks {
		if t.ID != id {
			kept = append(kept, t)
		}
	}
	if len(kept) == len(tasks) {
		return entity.ErrNotFound
	}
	return writeAll(r.store, KeyTasks, kept)
}

var _ repository.TaskRepository = (*TaskRepository)(nil)
