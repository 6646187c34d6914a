package application

import (
	"errors"

	"github.com/sirupsen/logrus"

	"github.com/quadro-app/quadro/internal/domain/entity"
	repo "github.com/quadro-app/quadro/internal/domain/repository"
	"github.com/quadro-app/quadro/pkg/helpers"
)

var (
	ErrDuplicateEmail     = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrNotAuthenticated   = errors.New("not authenticated")
)

// AuthService owns the current session. It starts anonymous; Restore
// promotes a persisted snapshot, Signup and Login authenticate, Logout
// returns to anonymous and clears the snapshot.
type AuthService struct {
	Users    repo.UserRepository
	Sessions repo.SessionRepository
	IDs      helpers.IDGenerator
	Logger   *logrus.Logger

	current *entity.User
}

func NewAuthService(users repo.UserRepository, sessions repo.SessionRepository, ids helpers.IDGenerator, logger *logrus.Logger) *AuthService {
	return &AuthService{
		Users:    users,
		Sessions: sessions,
		IDs:      ids,
		Logger:   logger,
	}
}

// Restore loads a persisted session snapshot, if any. The snapshot is
// trusted as-is and is not re-checked against the users collection; a
// user removed out-of-band still restores. Returns nil with no error
// when no snapshot exists.
func (s *AuthService) Restore() (*entity.User, error) {
	u, err := s.Sessions.Get()
	if errors.Is(err, entity.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	s.current = u
	s.Logger.WithField("user_id", u.ID).Debug("session restored")
	return u, nil
}

// Signup registers a new user and signs them in. Email uniqueness is
// checked here and nowhere else.
func (s *AuthService) Signup(email, password, name, country string) (*entity.User, error) {
	if _, err := s.Users.GetByEmail(email); err == nil {
		return nil, ErrDuplicateEmail
	} else if !errors.Is(err, entity.ErrNotFound) {
		return nil, err
	}

	u := &entity.User{
		ID:       s.IDs.NewID(),
		Email:    email,
		Password: password,
		Name:     name,
		Country:  country,
	}
	if err := s.Users.Create(u); err != nil {
		return nil, err
	}

	// Only authenticate once the snapshot is durable; a failed write
	// must leave the service anonymous.
	if err := s.Sessions.Put(u); err != nil {
		return nil, err
	}
	s.current = u
	s.Logger.WithFields(logrus.Fields{"user_id": u.ID, "email": u.Email}).Info("user signed up")
	return u, nil
}

// Login matches the exact email/password pair against the users
// collection. Any miss, including a wrong password for a known email,
// is ErrInvalidCredentials.
func (s *AuthService) Login(email, password string) (*entity.User, error) {
	users, err := s.Users.List()
	if err != nil {
		return nil, err
	}
	for i := range users {
		if users[i].Email == email && users[i].Password == password {
			u := users[i]
			if err := s.Sessions.Put(&u); err != nil {
				return nil, err
			}
			s.current = &u
			s.Logger.WithField("user_id", u.ID).Info("user logged in")
			return &u, nil
		}
	}
	return nil, ErrInvalidCredentials
}

// Logout returns to anonymous and clears the snapshot. Safe to call
// when already anonymous.
func (s *AuthService) Logout() error {
	if s.current != nil {
		s.Logger.WithField("user_id", s.current.ID).Info("user logged out")
	}
	s.current = nil
	return s.Sessions.Clear()
}

// CurrentUser returns the signed-in user, or nil when anonymous.
func (s *AuthService) CurrentUser() *entity.User {
	return s.current
}

func (s *AuthService) IsAuthenticated() bool {
	return s.current != nil
}
