package kvstore

import (
	"encoding/json"
	"fmt"

	"github.com/quadro-app/quadro/internal/domain/entity"
	"github.com/quadro-app/quadro/internal/domain/repository"
)

// SessionRepository stores the signed-in user snapshot under
// KeyCurrentUser.
type SessionRepository struct {
	store Store
}

func NewSessionRepository(store Store) *SessionRepository {
	return &SessionRepository{store: store}
}

func (r *SessionRepository) Get() (*entity.User, error) {
	raw, ok, err := r.store.Get(KeyCurrentUser)
	if err != nil {
		return nil, err
	}
	if !ok || len(raw) == 0 {
		return nil, entity.ErrNotFound
	}
	var u entity.User
	if err := json.Unmarshal(raw, &u); err != nil {
		return nil, fmt.Errorf("%w: key %q: %v", entity.ErrCorruptState, KeyCurrentUser, err)
	}
	return &u, nil
}

func (r *SessionRepository) Put(u *entity.User) error {
	raw, err := json.Marshal(u)
	if err != nil {
		return err
	}
	return r.store.Set(KeyCurrentUser, raw)
}

func (r *SessionRepository) Clear() error {
	return r.store.Delete(KeyCurrentUser)
}

var _ repository.SessionRepository = (*SessionRepository)(nil)
