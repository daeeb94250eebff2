package usecase

import (
	"context"
	"io"
	"log/slog"

	"github.com/aalvaropc/launchenv/internal/domain"
	"github.com/aalvaropc/launchenv/internal/ports"
)

// ApplyEnvironment loads the env file and hands its entries to a launch configurator.
type ApplyEnvironment struct {
	paths  ports.PathSource
	loader ports.EnvFileLoader
	logger *slog.Logger
}

type ApplyOption func(*ApplyEnvironment)

func WithLogger(l *slog.Logger) ApplyOption {
	return func(uc *ApplyEnvironment) {
		if l != nil {
			uc.logger = l
		}
	}
}

func NewApplyEnvironment(paths ports.PathSource, loader ports.EnvFileLoader, opts ...ApplyOption) *ApplyEnvironment {
	uc := &ApplyEnvironment{
		paths:  paths,
		loader: loader,
		logger: slog.New(slog.NewJSONHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}

// Source selects the env file: File wins, otherwise Var is resolved through the PathSource.
type Source struct {
	File string
	Var  string
}

// Load resolves and parses the env file without touching any launch configuration.
func (uc *ApplyEnvironment) Load(ctx context.Context, src Source) (domain.Environment, error) {
	if err := ctx.Err(); err != nil {
		return domain.Environment{}, err
	}

	path := src.File
	if path == "" {
		p, err := uc.paths.Resolve(src.Var)
		if err != nil {
			return domain.Environment{}, err
		}
		path = p
	}

	entries, err := uc.loader.Load(path)
	if err != nil {
		if domain.IsKind(err, domain.KindInvalidFormat) {
			uc.logger.Warn("envfile.invalid", "path", path, "error", err.Error())
		}
		return domain.Environment{}, err
	}

	uc.logger.Info("envfile.loaded", "path", path, "entries", len(entries))
	return domain.Environment{Source: path, Entries: entries}, nil
}

// Execute loads the env file and replaces the target's environment with it.
func (uc *ApplyEnvironment) Execute(ctx context.Context, src Source, target ports.LaunchConfigurator) (domain.Environment, error) {
	env, err := uc.Load(ctx, src)
	if err != nil {
		return domain.Environment{}, err
	}

	if err := target.SetEnvironment(env.Entries.Strings(), true); err != nil {
		return domain.Environment{}, err
	}

	uc.logger.Info("launch.applied", "path", env.Source, "entries", len(env.Entries))
	return env, nil
}
