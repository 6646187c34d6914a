package application_test

import (
	"fmt"
	"io"
	"testing"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/quadro-app/quadro/internal/application"
	"github.com/quadro-app/quadro/internal/infrastructure/kvstore"
)

// fakeClock hands out strictly increasing RFC 3339 timestamps.
type fakeClock struct {
	now  time.Time
	step time.Duration
}

func newFakeClock() *fakeClock {
	return &fakeClock{
		now:  time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
		step: time.Minute,
	}
}

func (c *fakeClock) Now() string {
	s := c.now.UTC().Format(time.RFC3339)
	c.now = c.now.Add(c.step)
	return s
}

// seqIDs hands out id-1, id-2, ...
type seqIDs struct {
	n int
}

func (g *seqIDs) NewID() string {
	g.n++
	return fmt.Sprintf("id-%d", g.n)
}

func testLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

type env struct {
	store    *kvstore.MemoryStore
	clock    *fakeClock
	auth     *application.AuthService
	projects *application.ProjectService
	tasks    *application.TaskService
}

// newEnv wires the three services over one shared in-memory store,
// mirroring how main composes them.
func newEnv(t *testing.T) *env {
	t.Helper()

	store := kvstore.NewMemoryStore()
	clock := newFakeClock()
	ids := &seqIDs{}
	logger := logrus.New()
	logger.SetOutput(io.Discard)

	return &env{
		store:    store,
		clock:    clock,
		auth:     application.NewAuthService(kvstore.NewUserRepository(store), kvstore.NewSessionRepository(store), ids, logger),
		projects: application.NewProjectService(kvstore.NewProjectRepository(store), ids, clock, logger),
		tasks:    application.NewTaskService(kvstore.NewTaskRepository(store), ids, clock, logger),
	}
}

// signIn signs up a user and propagates the session to the other
// services, the way the CLI layer does.
func (e *env) signIn(t *testing.T, email string) {
	t.Helper()
	u, err := e.auth.Signup(email, "password123", "Test User", "NL")
	if err != nil {
		t.Fatalf("signup failed: %v", err)
	}
	if err := e.projects.SetActiveUser(u); err != nil {
		t.Fatalf("set active user on projects failed: %v", err)
	}
	if err := e.tasks.SetActiveUser(u); err != nil {
		t.Fatalf("set active user on tasks failed: %v", err)
	}
}
