package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/quadro-app/quadro/internal/container"
	"github.com/quadro-app/quadro/internal/domain/entity"
	"github.com/quadro-app/quadro/pkg/render"
	"github.com/quadro-app/quadro/pkg/validation"
)

type projectInput struct {
	Name        string `json:"name" validate:"required,max=100"`
	Description string `json:"description" validate:"max=500"`
}

var (
	projectName        string
	projectDescription string
)

var projectCmd = &cobra.Command{
	Use:   "project",
	Short: "Manage projects",
}

var projectAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Create a project (each user can have up to four)",
	RunE: func(cmd *cobra.Command, args []string) error {
		in := projectInput{Name: projectName, Description: projectDescription}
		if err := validation.Struct(in); err != nil {
			return err
		}
		p, err := container.GetProjects().AddProject(in.Name, in.Description)
		if err != nil {
			return err
		}
		if jsonOut {
			return render.JSON(os.Stdout, p)
		}
		render.Projects(os.Stdout, []entity.Project{*p})
		return nil
	},
}

var projectListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the signed-in user's projects",
	RunE: func(cmd *cobra.Command, args []string) error {
		projects := container.GetProjects().UserProjects()
		if jsonOut {
			return render.JSON(os.Stdout, projects)
		}
		render.Projects(os.Stdout, projects)
		return nil
	},
}

var projectShowCmd = &cobra.Command{
	Use:   "show <project-id>",
	Short: "Show one project and its tasks",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := container.GetProjects().GetProject(args[0])
		if err != nil {
			return err
		}
		tasks := container.GetTasks().ProjectTasks(p.ID)
		if jsonOut {
			return render.JSON(os.Stdout, map[string]any{"project": p, "tasks": tasks})
		}
		render.Projects(os.Stdout, []entity.Project{*p})
		render.Tasks(os.Stdout, tasks)
		return nil
	},
}

func init() {
	projectAddCmd.Flags().StringVar(&projectName, "name", "", "Project name")
	projectAddCmd.Flags().StringVar(&projectDescription, "description", "", "Project description")
	_ = projectAddCmd.MarkFlagRequired("name")

	projectCmd.AddCommand(projectAddCmd)
	projectCmd.AddCommand(projectListCmd)
	projectCmd.AddCommand(projectShowCmd)
}
