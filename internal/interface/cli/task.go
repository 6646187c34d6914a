package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/quadro-app/quadro/internal/container"
	"github.com/quadro-app/quadro/internal/domain/entity"
	"github.com/quadro-app/quadro/internal/domain/repository"
	"github.com/quadro-app/quadro/pkg/render"
	"github.com/quadro-app/quadro/pkg/validation"
)

type taskInput struct {
	Title       string `json:"title" validate:"required,max=200"`
	Description string `json:"description" validate:"max=1000"`
}

type taskUpdateInput struct {
	Status string `json:"status" validate:"omitempty,oneof=todo in-progress completed"`
}

var (
	taskTitle       string
	taskDescription string
	taskStatus      string
)

var taskCmd = &cobra.Command{
	Use:   "task",
	Short: "Manage tasks",
}

var taskAddCmd = &cobra.Command{
	Use:   "add <project-id>",
	Short: "Create a task in a project",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		in := taskInput{Title: taskTitle, Description: taskDescription}
		if err := validation.Struct(in); err != nil {
			return err
		}
		// Resolve the project through the cache so tasks can only be
		// added to the signed-in user's projects.
		p, err := container.GetProjects().GetProject(args[0])
		if err != nil {
			return err
		}
		t, err := container.GetTasks().AddTask(p.ID, in.Title, in.Description)
		if err != nil {
			return err
		}
		if jsonOut {
			return render.JSON(os.Stdout, t)
		}
		render.Tasks(os.Stdout, []entity.Task{*t})
		return nil
	},
}

var taskListCmd = &cobra.Command{
	Use:   "list <project-id>",
	Short: "List a project's tasks",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		tasks := container.GetTasks().ProjectTasks(args[0])
		if jsonOut {
			return render.JSON(os.Stdout, tasks)
		}
		render.Tasks(os.Stdout, tasks)
		return nil
	},
}

var taskShowCmd = &cobra.Command{
	Use:   "show <task-id>",
	Short: "Show one task",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		t, err := container.GetTasks().GetTask(args[0])
		if err != nil {
			return err
		}
		if jsonOut {
			return render.JSON(os.Stdout, t)
		}
		render.Tasks(os.Stdout, []entity.Task{*t})
		return nil
	},
}

var taskUpdateCmd = &cobra.Command{
	Use:   "update <task-id>",
	Short: "Update a task's title, description or status",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		in := taskUpdateInput{Status: taskStatus}
		if err := validation.Struct(in); err != nil {
			return err
		}

		var patch repository.TaskPatch
		if cmd.Flags().Changed("title") {
			patch.Title = &taskTitle
		}
		if cmd.Flags().Changed("description") {
			patch.Description = &taskDescription
		}
		if cmd.Flags().Changed("status") {
			status := entity.TaskStatus(taskStatus)
			patch.Status = &status
		}

		t, err := container.GetTasks().UpdateTask(args[0], patch)
		if err != nil {
			return err
		}
		if jsonOut {
			return render.JSON(os.Stdout, t)
		}
		render.Tasks(os.Stdout, []entity.Task{*t})
		return nil
	},
}

var taskDoneCmd = &cobra.Command{
	Use:   "done <task-id>",
	Short: "Mark a task completed",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		status := entity.TaskStatusCompleted
		t, err := container.GetTasks().UpdateTask(args[0], repository.TaskPatch{Status: &status})
		if err != nil {
			return err
		}
		if jsonOut {
			return render.JSON(os.Stdout, t)
		}
		render.Tasks(os.Stdout, []entity.Task{*t})
		return nil
	},
}

var taskDeleteCmd = &cobra.Command{
	Use:   "delete <task-id>",
	Short: "Delete a task",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return container.GetTasks().DeleteTask(args[0])
	},
}

func init() {
	taskAddCmd.Flags().StringVar(&taskTitle, "title", "", "Task title")
	taskAddCmd.Flags().StringVar(&taskDescription, "description", "", "Task description")
	_ = taskAddCmd.MarkFlagRequired("title")

	taskUpdateCmd.Flags().StringVar(&taskTitle, "title", "", "New title")
	taskUpdateCmd.Flags().StringVar(&taskDescription, "description", "", "New description")
	taskUpdateCmd.Flags().StringVar(&taskStatus, "status", "", "New status (todo, in-progress, completed)")

	taskCmd.AddCommand(taskAddCmd)
	taskCmd.AddCommand(taskListCmd)
	taskCmd.AddCommand(taskShowCmd)
	taskCmd.AddCommand(taskUpdateCmd)
	taskCmd.AddCommand(taskDoneCmd)
	taskCmd.AddCommand(taskDeleteCmd)
}
