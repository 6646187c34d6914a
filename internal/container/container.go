package container

import (
	"github.com/sirupsen/logrus"

	"github.com/quadro-app/quadro/internal/application"
)

// app-level container to share constructed components across packages.
// The CLI commands pull services from these singletons.

var (
	logger *logrus.Logger

	authService    *application.AuthService
	projectService *application.ProjectService
	taskService    *application.TaskService
)

func SetLogger(l *logrus.Logger) { logger = l }
func GetLogger() *logrus.Logger  { return logger }

func SetAuth(s *application.AuthService) { authService = s }
func GetAuth() *application.AuthService  { return authService }

func SetProjects(s *application.ProjectService) { projectService = s }
func GetProjects() *application.ProjectService  { return projectService }

func SetTasks(s *application.TaskService) { taskService = s }
func GetTasks() *application.TaskService  { return taskService }
