package repository

import "github.com/quadro-app/quadro/internal/domain/entity"

// TaskPatch is a partial task update. Nil fields are left untouched.
// ID, ProjectID and CreatedAt are immutable and have no patch field.
type TaskPatch struct {
	Title       *string
	Description *string
	Status      *entity.TaskStatus
	CompletedAt *string
}

// Apply merges the patch into t in place. Both the persisted record
// and any cached copy go through this same merge, so they cannot
// drift apart.
func (p TaskPatch) Apply(t *entity.Task) {
	if p.Title != nil {
		t.Title = *p.Title
	}
	if p.Description != nil {
		t.Description = *p.Description
	}
	if p.Status != nil {
		t.Status = *p.Status
	}
	if p.CompletedAt != nil {
		t.CompletedAt = *p.CompletedAt
	}
}

// TaskRepository defines the interface for task persistence.
type TaskRepository interface {
	Create(t *entity.Task) error
	GetByID(id string) (*entity.Task, error)
	ListByProject(projectID string) ([]entity.Task, error)
	List() ([]entity.Task, error)
	Update(id string, patch TaskPatch) (*entity.Task, error)
	Delete(id string) error
}
