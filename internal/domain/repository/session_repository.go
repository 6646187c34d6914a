package repository

import "github.com/quadro-app/quadro/internal/domain/entity"

// SessionRepository holds the snapshot of the signed-in user that
// survives restarts. Get returns entity.ErrNotFound when no snapshot
// is stored.
type SessionRepository interface {
	Get() (*entity.User, error)
	Put(u *entity.User) error
	Clear() error
}
