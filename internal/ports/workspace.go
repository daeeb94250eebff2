package ports

import "github.com/aalvaropc/launchenv/internal/domain"

type WorkspaceInitializer interface {
	Init(spec domain.WorkspaceSpec, force bool) error
}
