package cli

import (
	"github.com/quadro-app/quadro/internal/container"
	"github.com/quadro-app/quadro/internal/domain/entity"
)

// setActiveUser pushes the session change into the project and task
// services. They take the user explicitly instead of watching the auth
// service.
func setActiveUser(u *entity.User) error {
	if err := container.GetProjects().SetActiveUser(u); err != nil {
		return err
	}
	return container.GetTasks().SetActiveUser(u)
}
