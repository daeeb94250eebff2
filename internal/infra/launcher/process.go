// Package launcher starts a debug target with a prepared environment.
package launcher

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
	"os/exec"

	"github.com/aalvaropc/launchenv/internal/domain"
	"github.com/aalvaropc/launchenv/internal/ports"
)

// Process is a LaunchConfigurator that runs the target itself.
type Process struct {
	env     []string
	environ func() []string

	dir    string
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
	logger *slog.Logger
}

type Option func(*Process)

func WithDir(dir string) Option {
	return func(p *Process) { p.dir = dir }
}

func WithStdio(in io.Reader, out, errOut io.Writer) Option {
	return func(p *Process) {
		p.stdin = in
		p.stdout = out
		p.stderr = errOut
	}
}

func WithLogger(l *slog.Logger) Option {
	return func(p *Process) {
		if l != nil {
			p.logger = l
		}
	}
}

// WithEnviron replaces os.Environ as the ambient environment merged into
// non-replacing SetEnvironment calls.
func WithEnviron(fn func() []string) Option {
	return func(p *Process) {
		if fn != nil {
			p.environ = fn
		}
	}
}

func NewProcess(opts ...Option) *Process {
	p := &Process{
		environ: os.Environ,
		stdin:   os.Stdin,
		stdout:  os.Stdout,
		stderr:  os.Stderr,
		logger:  slog.New(slog.NewJSONHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

var _ ports.LaunchConfigurator = (*Process)(nil)

// SetEnvironment sets the child environment. Without replaceExisting the
// entries are layered on the ambient environment; later keys win in os/exec.
func (p *Process) SetEnvironment(entries []string, replaceExisting bool) error {
	env := make([]string, 0, len(entries))
	if !replaceExisting {
		env = append(env, p.environ()...)
	}
	p.env = append(env, entries...)
	return nil
}

// Env returns the environment the next Run will use.
func (p *Process) Env() []string {
	return append([]string(nil), p.env...)
}

// Run starts program and waits for it. A non-zero exit is reported through
// the returned code, not as an error.
func (p *Process) Run(ctx context.Context, program string, args []string) (int, error) {
	if program == "" {
		return -1, &domain.OpError{
			Op:   "launcher.run",
			Kind: domain.KindInvalidConfig,
			Err:  errors.New("no program to launch"),
		}
	}

	cmd := exec.CommandContext(ctx, program, args...)
	cmd.Env = p.Env()
	if cmd.Env == nil {
		cmd.Env = []string{}
	}
	cmd.Dir = p.dir
	cmd.Stdin = p.stdin
	cmd.Stdout = p.stdout
	cmd.Stderr = p.stderr

	p.logger.Info("launch.started", "program", program, "args", len(args), "env", len(cmd.Env))

	err := cmd.Run()
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		code := exitErr.ExitCode()
		p.logger.Info("launch.exited", "program", program, "code", code)
		return code, nil
	}
	if err != nil {
		return -1, &domain.OpError{
			Op:   "launcher.run",
			Kind: domain.KindExecution,
			Path: program,
			Err:  err,
		}
	}

	p.logger.Info("launch.exited", "program", program, "code", 0)
	return 0, nil
}
