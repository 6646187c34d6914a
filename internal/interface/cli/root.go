package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/quadro-app/quadro/internal/container"
	"github.com/quadro-app/quadro/pkg/render"
)

var (
	jsonOut bool
	rootCmd *cobra.Command
)

func init() {
	rootCmd = &cobra.Command{
		Use:   "quadro",
		Short: "Quadro - local task manager",
		Long: `Quadro is a local-first task manager: sign up, create up to four
projects, and move tasks from todo through in-progress to completed.
Everything is stored on this machine.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags
	rootCmd.PersistentFlags().BoolVar(&jsonOut, "json", false, "Emit JSON instead of tables")
}

// Execute runs the root command
func Execute(version string) error {
	rootCmd.AddCommand(signupCmd)
	rootCmd.AddCommand(loginCmd)
	rootCmd.AddCommand(logoutCmd)
	rootCmd.AddCommand(whoamiCmd)
	rootCmd.AddCommand(projectCmd)
	rootCmd.AddCommand(taskCmd)

	rootCmd.Version = version
	if err := rootCmd.Execute(); err != nil {
		if logger := container.GetLogger(); logger != nil {
			logger.WithError(err).Debug("command failed")
		}
		if jsonOut {
			_ = render.JSONError(os.Stdout, err)
		} else {
			fmt.Fprintln(os.Stderr, "Error:", err)
		}
		return err
	}
	return nil
}
