package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aalvaropc/launchenv/internal/domain"
	"github.com/aalvaropc/launchenv/internal/infra/config"
	"github.com/aalvaropc/launchenv/internal/infra/envfile"
	"github.com/aalvaropc/launchenv/internal/infra/logger"
	"github.com/aalvaropc/launchenv/internal/infra/pathsource"
	"github.com/aalvaropc/launchenv/internal/infra/workspacefinder"
	"github.com/aalvaropc/launchenv/internal/usecase"
)

type workspaceCtx struct {
	root string
	cfg  domain.Config

	apply *usecase.ApplyEnvironment
}

func loadWorkspace(cmd *cobra.Command) (*workspaceCtx, error) {
	flag, _ := cmd.Flags().GetString("workspace")
	root, err := resolveWorkspaceRoot(flag)
	if err != nil {
		return nil, err
	}

	cfg, err := config.Load(root)
	if err != nil && !domain.IsKind(err, domain.KindNotFound) {
		return nil, err
	}

	apply := usecase.NewApplyEnvironment(
		pathsource.NewEnv(),
		envfile.NewLoader(),
		usecase.WithLogger(logger.L()),
	)

	return &workspaceCtx{root: root, cfg: cfg, apply: apply}, nil
}

// resolveWorkspaceRoot prefers the flag, then the nearest launchenv.yaml, then the working directory.
func resolveWorkspaceRoot(workspaceFlag string) (string, error) {
	if w := strings.TrimSpace(workspaceFlag); w != "" {
		abs, err := filepath.Abs(w)
		if err != nil {
			return "", fmt.Errorf("invalid workspace path: %w", err)
		}
		return abs, nil
	}

	wd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("get working directory: %w", err)
	}
	return workspacefinder.NewFinder().RootOr(wd, wd), nil
}

func (ws *workspaceCtx) source(file string) usecase.Source {
	return usecase.Source{File: strings.TrimSpace(file), Var: ws.cfg.Env.Var}
}

// inRoot anchors a relative path at the workspace root.
func (ws *workspaceCtx) inRoot(p string) string {
	if p == "" || filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(ws.root, p)
}

// launchDir is the configured launch.cwd under the root. Without one, a
// program taken from launchenv.yaml starts in the workspace root and a
// positional program in the caller's directory.
func (ws *workspaceCtx) launchDir(positional bool) string {
	if ws.cfg.Launch.Cwd != "" {
		return ws.inRoot(ws.cfg.Launch.Cwd)
	}
	if positional {
		return ""
	}
	return ws.root
}

func addFileFlag(c *cobra.Command, file *string) {
	c.Flags().StringVarP(file, "file", "f", "", "Env file path (overrides the configured environment variable)")
}
