package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/aalvaropc/launchenv/internal/infra/logger"
	"github.com/aalvaropc/launchenv/internal/infra/workspacefinder"
)

var closeLog func() error

// exitCodeError carries a launched program's exit status back to Execute.
type exitCodeError struct {
	code int
}

func (e *exitCodeError) Error() string {
	return fmt.Sprintf("program exited with status %d", e.code)
}

func Execute() {
	cmd := newRootCmd()
	err := cmd.Execute()
	if closeLog != nil {
		_ = closeLog()
	}

	var ec *exitCodeError
	if errors.As(err, &ec) {
		os.Exit(ec.code)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var debug bool
	var workspace string

	cmd := &cobra.Command{
		Use:           "launchenv",
		Short:         "launchenv: load an env file into a debug target's launch configuration",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(c *cobra.Command, _ []string) error {
			root := workspace
			if root == "" {
				wd, err := os.Getwd()
				if err != nil {
					wd = "."
				}
				wd, _ = filepath.Abs(wd)
				root = workspacefinder.NewFinder().RootOr(wd, wd)
			}

			// Logging is best effort; a read-only workspace must not block a launch.
			cleanup, _ := logger.Setup(logger.Config{Root: root, Debug: debug})
			closeLog = cleanup
			if debug && logger.IsReady() == nil {
				fmt.Fprintf(c.ErrOrStderr(), "debug log: %s\n", logger.Path())
			}
			return nil
		},
	}

	cmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable verbose logging to .launchenv/logs/launchenv.log")
	cmd.PersistentFlags().StringVarP(&workspace, "workspace", "w", "", "Workspace root (optional; autodetected if omitted)")

	cmd.AddCommand(
		checkCmd(),
		printCmd(),
		applyCmd(),
		runCmd(),
		initCmd(),
		versionCmd(),
	)
	return cmd
}
