package repository

import "github.com/quadro-app/quadro/internal/domain/entity"

// ProjectRepository defines the interface for project persistence.
type ProjectRepository interface {
	Create(p *entity.Project) error
	GetByID(id string) (*entity.Project, error)
	ListByUser(userID string) ([]entity.Project, error)
	List() ([]entity.Project, error)
}
