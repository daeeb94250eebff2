package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/aalvaropc/launchenv/internal/domain"
)

func printCmd() *cobra.Command {
	var file string
	var format string

	c := &cobra.Command{
		Use:   "print",
		Short: "Print the entries that would be handed to the launch target",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ws, err := loadWorkspace(cmd)
			if err != nil {
				return err
			}

			env, err := ws.apply.Load(cmd.Context(), ws.source(file))
			if err != nil {
				return err
			}

			if format == "" {
				format = defaultFormat(cmd.OutOrStdout())
			}
			return printEntries(cmd.OutOrStdout(), env, format)
		},
	}

	addFileFlag(c, &file)
	c.Flags().StringVar(&format, "format", "", "Output format: pretty|env|json (default: pretty on a terminal, env otherwise)")
	return c
}

// defaultFormat is pretty only when w is a terminal.
func defaultFormat(w io.Writer) string {
	if f, ok := w.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		return "pretty"
	}
	return "env"
}

type jsonEntry struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

func printEntries(w io.Writer, env domain.Environment, format string) error {
	switch format {
	case "env":
		for _, s := range env.Entries.Strings() {
			fmt.Fprintln(w, s)
		}
		return nil
	case "json":
		entries := make([]jsonEntry, 0, len(env.Entries))
		for _, a := range env.Entries {
			entries = append(entries, jsonEntry{Key: a.Key, Value: a.Value})
		}
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(map[string]any{
			"source":  env.Source,
			"entries": entries,
		})
	case "pretty":
		printPrettyEntries(w, env)
		return nil
	default:
		return fmt.Errorf("unsupported format %q (expected pretty|env|json)", format)
	}
}

func printPrettyEntries(w io.Writer, env domain.Environment) {
	th := defaultTheme()

	fmt.Fprintf(w, "%s %s\n", th.Title.Render("Source:"), env.Source)
	fmt.Fprintf(w, "%s %d\n\n", th.Title.Render("Entries:"), len(env.Entries))

	if len(env.Entries) == 0 {
		fmt.Fprintln(w, th.Faint.Render("(no entries)"))
		return
	}
	for _, a := range env.Entries {
		fmt.Fprintf(w, "  %s=%q\n", th.Key.Render(a.Key), a.Value)
	}
}
