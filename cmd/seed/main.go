package main

import (
	"fmt"
	"log"

	"github.com/joho/godotenv"

	"github.com/quadro-app/quadro/config"
	"github.com/quadro-app/quadro/internal/application"
	"github.com/quadro-app/quadro/internal/infrastructure/kvstore"
	"github.com/quadro-app/quadro/pkg/helpers"
)

// Seeds the local store with a demo account, a project and a few tasks.
func main() {
	_ = godotenv.Load()
	cfg := config.Load()
	logger := helpers.NewLogger(cfg.AppName, cfg.Env, cfg.LogLevel)

	store, err := kvstore.NewFileStore(cfg.DataDir)
	if err != nil {
		log.Fatalf("failed to open store: %v", err)
	}

	ids := helpers.UUIDGenerator()
	clock := helpers.SystemClock()

	users := kvstore.NewUserRepository(store)
	projects := kvstore.NewProjectRepository(store)
	tasks := kvstore.NewTaskRepository(store)
	sessions := kvstore.NewSessionRepository(store)

	auth := application.NewAuthService(users, sessions, ids, logger)
	projectSvc := application.NewProjectService(projects, ids, clock, logger)
	taskSvc := application.NewTaskService(tasks, ids, clock, logger)

	email := "demo@quadro.local"
	password := "password123"

	u, err := auth.Signup(email, password, "Demo User", "Indonesia")
	if err != nil {
		// Re-running the seeder should not fail; reuse the account.
		u, err = auth.Login(email, password)
		if err != nil {
			log.Fatalf("failed to seed user: %v", err)
		}
	}
	fmt.Printf("seeded user: id=%s email=%s password=%s\n", u.ID, email, password)

	if err := projectSvc.SetActiveUser(u); err != nil {
		log.Fatalf("failed to load projects: %v", err)
	}
	if err := taskSvc.SetActiveUser(u); err != nil {
		log.Fatalf("failed to load tasks: %v", err)
	}

	if len(projectSvc.UserProjects()) > 0 {
		fmt.Println("demo user already has projects, nothing to do")
		return
	}

	p, err := projectSvc.AddProject("Getting started", "A tour of Quadro")
	if err != nil {
		log.Fatalf("failed to seed project: %v", err)
	}
	fmt.Printf("seeded project: id=%s name=%q\n", p.ID, p.Name)

	titles := []string{"Create your first project", "Add a task", "Complete a task"}
	for _, title := range titles {
		t, err := taskSvc.AddTask(p.ID, title, "")
		if err != nil {
			log.Fatalf("failed to seed task: %v", err)
		}
		fmt.Printf("seeded task: id=%s title=%q\n", t.ID, t.Title)
	}

	seeded, err := tasks.ListByProject(p.ID)
	if err != nil {
		log.Fatalf("failed to list seeded tasks: %v", err)
	}
	fmt.Printf("project %q now has %d tasks\n", p.Name, len(seeded))
}
