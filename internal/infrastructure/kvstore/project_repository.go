package kvstore

import (
	"github.com/quadro-app/quadro/internal/domain/entity"
	"github.com/quadro-app/quadro/internal/domain/repository"
)

// ProjectRepository persists projects under KeyProjects. The four-per-
// user cap is not enforced here; a direct Create bypassing the project
// service can exceed it.
type ProjectRepository struct {
	store Store
}

func NewProjectRepository(store Store) *ProjectRepository {
	return &ProjectRepository{store: store}
}

func (r *ProjectRepository) Create(p *entity.Project) error {
	projects, err := readAll[entity.Project](r.store, KeyProjects)
	if err != nil {
		return err
	}
	projects = append(projects, *p)
	return writeAll(r.store, KeyProjects, projects)
}

func (r *ProjectRepository) GetByID(id string) (*entity.Project, error) {
	projects, err := readAll[entity.Project](r.store, KeyProjects)
	if err != nil {
		return nil, err
	}
	for i := range projects {
		if projects[i].ID == id {
			p := projects[i]
			return &p, nil
		}
	}
	return nil, entity.ErrNotFound
}

func (r *ProjectRepository) ListByUser(userID string) ([]entity.Project, error) {
	projects, err := readAll[entity.Project](r.store, KeyProjects)
	if err != nil {
		return nil, err
	}
	owned := make([]entity.Project, 0, len(projects))
	for _, p := range projects {
		if p.UserID == userID {
			owned = append(owned, p)
		}
	}
	return owned, nil
}

func (r *ProjectRepository) List() ([]entity.Project, error) {
	return readAll[entity.Project](r.store, KeyProjects)
}

var _ repository.ProjectRepository = (*ProjectRepository)(nil)
