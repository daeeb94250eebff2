// Package pathsource resolves the env file path from a named lookup.
package pathsource

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/aalvaropc/launchenv/internal/domain"
	"github.com/aalvaropc/launchenv/internal/ports"
)

// LookupFunc has the signature of os.LookupEnv.
type LookupFunc func(name string) (string, bool)

// Env resolves names against an environment lookup, os.LookupEnv by default.
type Env struct {
	lookup LookupFunc
}

type Option func(*Env)

func WithLookup(fn LookupFunc) Option {
	return func(e *Env) {
		if fn != nil {
			e.lookup = fn
		}
	}
}

func NewEnv(opts ...Option) *Env {
	e := &Env{lookup: os.LookupEnv}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

var _ ports.PathSource = (*Env)(nil)

func (e *Env) Resolve(name string) (string, error) {
	if strings.TrimSpace(name) == "" {
		return "", &domain.OpError{
			Op:   "pathsource.resolve",
			Kind: domain.KindInvalidConfig,
			Err:  errors.New("lookup name is empty"),
		}
	}

	v, ok := e.lookup(name)
	if !ok || strings.TrimSpace(v) == "" {
		return "", &domain.OpError{
			Op:   "pathsource.resolve",
			Kind: domain.KindNotFound,
			Err:  fmt.Errorf("%s: %w", name, domain.ErrPathUnset),
		}
	}
	return v, nil
}
