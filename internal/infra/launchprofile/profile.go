// Package launchprofile persists a debug target's launch configuration as YAML.
package launchprofile

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/aalvaropc/launchenv/internal/domain"
	"github.com/aalvaropc/launchenv/internal/ports"
	"gopkg.in/yaml.v3"
)

type yamlProfile struct {
	Name    string   `yaml:"name"`
	Program string   `yaml:"program,omitempty"`
	Args    []string `yaml:"args,omitempty"`
	Cwd     string   `yaml:"cwd,omitempty"`
	Env     []string `yaml:"env"`
}

// File is a LaunchConfigurator backed by a YAML launch profile on disk.
// Fields other than env come from the base profile when the file does not exist yet.
type File struct {
	path string
	base domain.LaunchProfile
}

func NewFile(path string, base domain.LaunchProfile) *File {
	return &File{path: path, base: base}
}

var _ ports.LaunchConfigurator = (*File)(nil)

func (f *File) Path() string { return f.path }

// SetEnvironment writes entries into the profile's env list, replacing or
// appending to whatever the file held.
func (f *File) SetEnvironment(entries []string, replaceExisting bool) error {
	p, err := f.Read()
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	if err != nil {
		p = f.base
		p.Env = nil
	} else {
		// Program details follow the current config; env is what this call manages.
		p = merge(p, f.base)
	}

	if replaceExisting {
		p.Env = append([]string{}, entries...)
	} else {
		p.Env = append(p.Env, entries...)
	}
	return f.write(p)
}

// Read loads the profile from disk.
func (f *File) Read() (domain.LaunchProfile, error) {
	b, err := os.ReadFile(f.path)
	if err != nil {
		return domain.LaunchProfile{}, err
	}

	var y yamlProfile
	if err := yaml.Unmarshal(b, &y); err != nil {
		return domain.LaunchProfile{}, &domain.OpError{
			Op:   "launchprofile.read",
			Kind: domain.KindInvalidConfig,
			Path: f.path,
			Err:  err,
		}
	}

	return domain.LaunchProfile{
		Name:    y.Name,
		Program: y.Program,
		Args:    y.Args,
		Cwd:     y.Cwd,
		Env:     y.Env,
	}, nil
}

func (f *File) write(p domain.LaunchProfile) error {
	if p.Env == nil {
		p.Env = []string{}
	}
	b, err := yaml.Marshal(yamlProfile{
		Name:    p.Name,
		Program: p.Program,
		Args:    p.Args,
		Cwd:     p.Cwd,
		Env:     p.Env,
	})
	if err != nil {
		return &domain.OpError{Op: "launchprofile.write", Kind: domain.KindExecution, Path: f.path, Err: err}
	}

	if err := os.MkdirAll(filepath.Dir(f.path), 0o755); err != nil {
		return &domain.OpError{Op: "launchprofile.write", Kind: domain.KindExecution, Path: f.path, Err: err}
	}

	// Env values may hold secrets.
	tmp := f.path + ".tmp"
	if err := os.WriteFile(tmp, b, 0o600); err != nil {
		return &domain.OpError{Op: "launchprofile.write", Kind: domain.KindExecution, Path: f.path, Err: err}
	}
	if err := os.Rename(tmp, f.path); err != nil {
		_ = os.Remove(tmp)
		return &domain.OpError{Op: "launchprofile.write", Kind: domain.KindExecution, Path: f.path, Err: err}
	}
	return nil
}

func merge(cur, base domain.LaunchProfile) domain.LaunchProfile {
	if base.Name != "" {
		cur.Name = base.Name
	}
	if base.Program != "" {
		cur.Program = base.Program
	}
	if len(base.Args) > 0 {
		cur.Args = base.Args
	}
	if base.Cwd != "" {
		cur.Cwd = base.Cwd
	}
	return cur
}
