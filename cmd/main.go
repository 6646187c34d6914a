package main

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/quadro-app/quadro/config"
	"github.com/quadro-app/quadro/internal/application"
	"github.com/quadro-app/quadro/internal/container"
	"github.com/quadro-app/quadro/internal/infrastructure/kvstore"
	"github.com/quadro-app/quadro/internal/interface/cli"
	"github.com/quadro-app/quadro/pkg/helpers"
)

var version = "dev"

func main() {
	_ = godotenv.Load() // load .env if present

	cfg := config.Load()
	logger := helpers.NewLogger(cfg.AppName, cfg.Env, cfg.LogLevel)

	store, closeStore, err := openStore(cfg)
	if err != nil {
		log.Fatalf("failed to open store: %v", err)
	}
	defer closeStore()

	ids := helpers.UUIDGenerator()
	clock := helpers.SystemClock()

	users := kvstore.NewUserRepository(store)
	projects := kvstore.NewProjectRepository(store)
	tasks := kvstore.NewTaskRepository(store)
	sessions := kvstore.NewSessionRepository(store)

	auth := application.NewAuthService(users, sessions, ids, logger)
	projectSvc := application.NewProjectService(projects, ids, clock, logger)
	taskSvc := application.NewTaskService(tasks, ids, clock, logger)

	container.SetLogger(logger)
	container.SetAuth(auth)
	container.SetProjects(projectSvc)
	container.SetTasks(taskSvc)

	// Restore a stored session before dispatching any command.
	u, err := auth.Restore()
	if err != nil {
		logger.WithError(err).Warn("session restore failed")
	} else if u != nil {
		if err := projectSvc.SetActiveUser(u); err != nil {
			log.Fatalf("failed to load projects: %v", err)
		}
		if err := taskSvc.SetActiveUser(u); err != nil {
			log.Fatalf("failed to load tasks: %v", err)
		}
	}

	if err := cli.Execute(version); err != nil {
		os.Exit(1)
	}
}

func openStore(cfg *config.Config) (kvstore.Store, func(), error) {
	noop := func() {}
	switch cfg.StoreBackend {
	case "file":
		s, err := kvstore.NewFileStore(cfg.DataDir)
		return s, noop, err
	case "memory":
		return kvstore.NewMemoryStore(), noop, nil
	case "sqlite":
		s, err := kvstore.NewSQLiteStore(cfg.SQLitePath)
		if err != nil {
			return nil, nil, err
		}
		return s, func() { _ = s.Close() }, nil
	case "redis":
		rdb, err := helpers.NewRedisClient(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		if err != nil {
			return nil, nil, err
		}
		return kvstore.NewRedisStore(rdb), func() { _ = rdb.Close() }, nil
	default:
		return nil, nil, fmt.Errorf("unknown store backend %q", cfg.StoreBackend)
	}
}
