// Package config loads launchenv.yaml.
package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/aalvaropc/launchenv/internal/domain"
	"gopkg.in/yaml.v3"
)

// FileName is the workspace configuration file.
const FileName = "launchenv.yaml"

// Load reads launchenv.yaml from root and applies defaults.
// A missing file yields the defaults together with a not_found error.
func Load(root string) (domain.Config, error) {
	return LoadFile(filepath.Join(root, FileName))
}

func LoadFile(path string) (domain.Config, error) {
	cfg := domain.DefaultConfig()

	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, &domain.OpError{
			Op:   "config.load",
			Kind: domain.KindNotFound,
			Path: path,
			Err:  err,
		}
	}

	var doc any
	if err := yaml.Unmarshal(b, &doc); err != nil {
		return cfg, invalid(path, err)
	}
	if doc == nil {
		return cfg, nil
	}

	violations, err := Validate(doc)
	if err != nil {
		return cfg, invalid(path, err)
	}
	if len(violations) > 0 {
		return cfg, invalid(path, errors.New(strings.Join(violations, "; ")))
	}

	var y yamlConfig
	if err := yaml.Unmarshal(b, &y); err != nil {
		return cfg, invalid(path, err)
	}

	return apply(cfg, y), nil
}

func apply(cfg domain.Config, y yamlConfig) domain.Config {
	if y.Launchenv.Env.Var != "" {
		cfg.Env.Var = y.Launchenv.Env.Var
	}

	l := y.Launchenv.Launch
	if l.Name != "" {
		cfg.Launch.Name = l.Name
	}
	if l.Program != "" {
		cfg.Launch.Program = l.Program
	}
	if len(l.Args) > 0 {
		cfg.Launch.Args = append([]string(nil), l.Args...)
	}
	if l.Cwd != "" {
		cfg.Launch.Cwd = l.Cwd
	}
	if l.Profile != "" {
		cfg.Launch.Profile = l.Profile
	}
	return cfg
}

func invalid(path string, err error) error {
	return &domain.OpError{
		Op:   "config.load",
		Kind: domain.KindInvalidConfig,
		Path: path,
		Err:  errors.Join(err, domain.ErrInvalidConfig),
	}
}
