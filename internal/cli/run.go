package cli

import (
	"github.com/spf13/cobra"

	"github.com/aalvaropc/launchenv/internal/infra/launcher"
	"github.com/aalvaropc/launchenv/internal/infra/logger"
)

func runCmd() *cobra.Command {
	var file string

	c := &cobra.Command{
		Use:   "run [-- program [args...]]",
		Short: "Start a program with exactly the environment from the env file",
		RunE: func(cmd *cobra.Command, args []string) error {
			ws, err := loadWorkspace(cmd)
			if err != nil {
				return err
			}

			program, progArgs := launchTarget(ws.cfg.Launch.Program, ws.cfg.Launch.Args, args)

			proc := launcher.NewProcess(
				launcher.WithDir(ws.launchDir(len(args) > 0)),
				launcher.WithStdio(cmd.InOrStdin(), cmd.OutOrStdout(), cmd.ErrOrStderr()),
				launcher.WithLogger(logger.L()),
			)

			if _, err := ws.apply.Execute(cmd.Context(), ws.source(file), proc); err != nil {
				return err
			}

			code, err := proc.Run(cmd.Context(), program, progArgs)
			if err != nil {
				return err
			}
			if code != 0 {
				return &exitCodeError{code: code}
			}
			return nil
		},
	}

	addFileFlag(c, &file)
	return c
}

// launchTarget picks the command line: positional args win over launchenv.yaml.
func launchTarget(program string, args []string, positional []string) (string, []string) {
	if len(positional) > 0 {
		return positional[0], positional[1:]
	}
	return program, args
}
