package application

import (
	"errors"

	"github.com/sirupsen/logrus"

	"github.com/quadro-app/quadro/internal/domain/entity"
	repo "github.com/quadro-app/quadro/internal/domain/repository"
	"github.com/quadro-app/quadro/pkg/helpers"
)

// MaxProjectsPerUser caps how many projects one user may own.
const MaxProjectsPerUser = 4

var ErrProjectLimitExceeded = errors.New("project limit exceeded")

// ProjectService owns the project list of the active user. The cache
// mirrors the persisted collection filtered by owner and is rebuilt by
// SetActiveUser; lookups hit the cache, the cap check re-reads the
// persisted collection so a stale cache cannot loosen it.
type ProjectService struct {
	Projects repo.ProjectRepository
	IDs      helpers.IDGenerator
	Clock    helpers.Clock
	Logger   *logrus.Logger

	active *entity.User
	cache  []entity.Project
}

func NewProjectService(projects repo.ProjectRepository, ids helpers.IDGenerator, clock helpers.Clock, logger *logrus.Logger) *ProjectService {
	return &ProjectService{
		Projects: projects,
		IDs:      ids,
		Clock:    clock,
		Logger:   logger,
	}
}

// SetActiveUser rebuilds the cache for u, or empties it when u is nil.
// Called by the session layer after signup, login, logout and restore.
func (s *ProjectService) SetActiveUser(u *entity.User) error {
	s.active = u
	if u == nil {
		s.cache = nil
		return nil
	}
	owned, err := s.Projects.ListByUser(u.ID)
	if err != nil {
		return err
	}
	s.cache = owned
	return nil
}

// AddProject creates a project for the active user, enforcing the
// four-project cap against the persisted collection.
func (s *ProjectService) AddProject(name, description string) (*entity.Project, error) {
	if s.active == nil {
		return nil, ErrNotAuthenticated
	}

	owned, err := s.Projects.ListByUser(s.active.ID)
	if err != nil {
		return nil, err
	}
	if len(owned) >= MaxProjectsPerUser {
		return nil, ErrProjectLimitExceeded
	}

	p := &entity.Project{
		ID:          s.IDs.NewID(),
		UserID:      s.active.ID,
		Name:        name,
		Description: description,
		CreatedAt:   s.Clock.Now(),
	}
	if err := s.Projects.Create(p); err != nil {
		return nil, err
	}
	s.cache = append(s.cache, *p)
	s.Logger.WithFields(logrus.Fields{"project_id": p.ID, "user_id": p.UserID}).Info("project created")
	return p, nil
}

// GetProject looks up the cache only. A project owned by another user
// is ErrNotFound here even though it exists in the store.
func (s *ProjectService) GetProject(id string) (*entity.Project, error) {
	for i := range s.cache {
		if s.cache[i].ID == id {
			p := s.cache[i]
			return &p, nil
		}
	}
	return nil, entity.ErrNotFound
}

// UserProjects returns the active user's projects; empty when
// anonymous.
func (s *ProjectService) UserProjects() []entity.Project {
	if s.active == nil {
		return []entity.Project{}
	}
	out := make([]entity.Project, len(s.cache))
	copy(out, s.cache)
	return out
}
