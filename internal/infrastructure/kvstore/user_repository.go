package kvstore

import (
	"github.com/quadro-app/quadro/internal/domain/entity"
	"github.com/quadro-app/quadro/internal/domain/repository"
)

// UserRepository persists users as one JSON sequence under KeyUsers.
// Every write replaces the whole sequence; lookups are linear scans.
type UserRepository struct {
	store Store
}

func NewUserRepository(store Store) *UserRepository {
	return &UserRepository{store: store}
}

func (r *UserRepository) Create(u *entity.User) error {
	users, err := readAll[entity.User](r.store, KeyUsers)
	if err != nil {
		return err
	}
	users = append(users, *u)
	return writeAll(r.store, KeyUsers, users)
}

func (r *UserRepository) GetByID(id string) (*entity.User, error) {
	users, err := readAll[entity.User](r.store, KeyUsers)
	if err != nil {
		return nil, err
	}
	for i := range users {
		if users[i].ID == id {
			u := users[i]
			return &u, nil
		}
	}
	return nil, entity.ErrNotFound
}

func (r *UserRepository) GetByEmail(email string) (*entity.User, error) {
	users, err := readAll[entity.User](r.store, KeyUsers)
	if err != nil {
		return nil, err
	}
	for i := range users {
		if users[i].Email == email {
			u := users[i]
			return &u, nil
		}
	}
	return nil, entity.ErrNotFound
}

func (r *UserRepository) List() ([]entity.User, error) {
	return readAll[entity.User](r.store, KeyUsers)
}

var _ repository.UserRepository = (*UserRepository)(nil)
