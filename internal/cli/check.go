package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/aalvaropc/launchenv/internal/usecase"
)

func checkCmd() *cobra.Command {
	var file string

	c := &cobra.Command{
		Use:   "check",
		Short: "Parse the env file and report portability warnings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ws, err := loadWorkspace(cmd)
			if err != nil {
				return err
			}

			report, err := usecase.NewCheckEnvFile(ws.apply).Execute(cmd.Context(), ws.source(file))
			if err != nil {
				return err
			}

			printCheck(cmd.OutOrStdout(), report)
			return nil
		},
	}

	addFileFlag(c, &file)
	return c
}

func printCheck(w io.Writer, report usecase.CheckReport) {
	th := defaultTheme()

	fmt.Fprintf(w, "%s %d entries from %s\n",
		th.OK.Render("OK"), len(report.Environment.Entries), report.Environment.Source)

	for _, key := range report.Duplicates {
		v, _ := report.Environment.Entries.Lookup(key)
		fmt.Fprintf(w, "  %s %s is assigned more than once; the launch target sees %q\n", th.Warn.Render("warning:"), key, v)
	}
	for _, issue := range report.Issues {
		fmt.Fprintf(w, "  %s %s\n", th.Warn.Render("warning:"), issue.String())
	}
}
