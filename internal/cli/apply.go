package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aalvaropc/launchenv/internal/domain"
	"github.com/aalvaropc/launchenv/internal/infra/launchprofile"
)

func applyCmd() *cobra.Command {
	var file string
	var profile string

	c := &cobra.Command{
		Use:   "apply",
		Short: "Write the env file into the YAML launch profile",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ws, err := loadWorkspace(cmd)
			if err != nil {
				return err
			}

			path := profile
			if path == "" {
				path = ws.cfg.Launch.Profile
			}
			target := launchprofile.NewFile(ws.inRoot(path), baseProfile(ws.cfg.Launch))

			env, err := ws.apply.Execute(cmd.Context(), ws.source(file), target)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %d entries from %s to %s\n", len(env.Entries), env.Source, target.Path())
			return nil
		},
	}

	addFileFlag(c, &file)
	c.Flags().StringVarP(&profile, "profile", "p", "", "Launch profile path (default from launchenv.yaml)")
	return c
}

func baseProfile(l domain.LaunchConfig) domain.LaunchProfile {
	return domain.LaunchProfile{
		Name:    l.Name,
		Program: l.Program,
		Args:    l.Args,
		Cwd:     l.Cwd,
	}
}
