package repository

import "github.com/quadro-app/quadro/internal/domain/entity"

// UserRepository defines the interface for user persistence.
// Users are created at signup and never mutated or deleted afterwards.
type UserRepository interface {
	Create(u *entity.User) error
	GetByID(id string) (*entity.User, error)
	GetByEmail(email string) (*entity.User, error)
	List() ([]entity.User, error)
}
