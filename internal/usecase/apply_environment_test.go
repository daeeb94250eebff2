package usecase

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/aalvaropc/launchenv/internal/domain"
	"github.com/aalvaropc/launchenv/internal/infra/envfile"
	"github.com/aalvaropc/launchenv/internal/infra/pathsource"
)

type fakePathSource struct {
	paths map[string]string
	asked []string
}

func (f *fakePathSource) Resolve(name string) (string, error) {
	f.asked = append(f.asked, name)
	p, ok := f.paths[name]
	if !ok {
		return "", &domain.OpError{Op: "fake.resolve", Kind: domain.KindNotFound, Err: domain.ErrPathUnset}
	}
	return p, nil
}

type fakeLoader struct {
	list domain.EnvAssignmentList
	err  error
	got  string
}

func (f *fakeLoader) Load(path string) (domain.EnvAssignmentList, error) {
	f.got = path
	return f.list, f.err
}

type recordingConfigurator struct {
	calls   int
	entries []string
	replace bool
	err     error
}

func (r *recordingConfigurator) SetEnvironment(entries []string, replaceExisting bool) error {
	r.calls++
	r.entries = entries
	r.replace = replaceExisting
	return r.err
}

func TestApplyEnvironment_HandsOffWithReplace(t *testing.T) {
	paths := &fakePathSource{paths: map[string]string{"LAUNCHENV_FILE": "/ws/debug.env"}}
	loader := &fakeLoader{list: domain.EnvAssignmentList{
		{Key: "FOO", Value: "bar"},
		{Key: "BAZ", Value: " qux"},
	}}
	target := &recordingConfigurator{}

	env, err := NewApplyEnvironment(paths, loader).Execute(context.Background(), Source{Var: "LAUNCHENV_FILE"}, target)
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}

	if loader.got != "/ws/debug.env" {
		t.Fatalf("expected resolved path, got %q", loader.got)
	}
	if env.Source != "/ws/debug.env" || len(env.Entries) != 2 {
		t.Fatalf("unexpected environment %+v", env)
	}
	if target.calls != 1 || !target.replace {
		t.Fatalf("expected one replacing call, got calls=%d replace=%v", target.calls, target.replace)
	}
	if !reflect.DeepEqual(target.entries, []string{"FOO=bar", "BAZ= qux"}) {
		t.Fatalf("unexpected entries %q", target.entries)
	}
}

func TestApplyEnvironment_ExplicitFileSkipsPathSource(t *testing.T) {
	paths := &fakePathSource{}
	loader := &fakeLoader{list: domain.EnvAssignmentList{}}
	target := &recordingConfigurator{}

	if _, err := NewApplyEnvironment(paths, loader).Execute(context.Background(), Source{File: "local.env", Var: "X"}, target); err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if len(paths.asked) != 0 {
		t.Fatalf("path source must not be consulted, asked %v", paths.asked)
	}
	if loader.got != "local.env" {
		t.Fatalf("expected local.env, got %q", loader.got)
	}
	if target.entries == nil || len(target.entries) != 0 {
		t.Fatalf("expected empty non-nil entries, got %#v", target.entries)
	}
}

func TestApplyEnvironment_PathUnset(t *testing.T) {
	target := &recordingConfigurator{}
	_, err := NewApplyEnvironment(&fakePathSource{}, &fakeLoader{}).Execute(context.Background(), Source{Var: "MISSING"}, target)
	if !errors.Is(err, domain.ErrPathUnset) {
		t.Fatalf("expected ErrPathUnset, got %v", err)
	}
	if target.calls != 0 {
		t.Fatalf("target must not be touched")
	}
}

func TestApplyEnvironment_FormatErrorBlocksHandoff(t *testing.T) {
	fe := &domain.FormatError{LineNo: 1, Line: "this is not valid"}
	target := &recordingConfigurator{}

	_, err := NewApplyEnvironment(&fakePathSource{}, &fakeLoader{err: fe}).Execute(context.Background(), Source{File: "bad.env"}, target)
	if !errors.Is(err, fe) {
		t.Fatalf("expected format error unchanged, got %v", err)
	}
	if target.calls != 0 {
		t.Fatalf("target must not be touched on format error")
	}
}

func TestApplyEnvironment_TargetError(t *testing.T) {
	boom := errors.New("boom")
	target := &recordingConfigurator{err: boom}

	_, err := NewApplyEnvironment(&fakePathSource{}, &fakeLoader{}).Execute(context.Background(), Source{File: "x.env"}, target)
	if !errors.Is(err, boom) {
		t.Fatalf("expected boom, got %v", err)
	}
}

func TestApplyEnvironment_ContextCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	loader := &fakeLoader{}
	_, err := NewApplyEnvironment(&fakePathSource{}, loader).Execute(ctx, Source{File: "x.env"}, &recordingConfigurator{})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if loader.got != "" {
		t.Fatalf("loader must not run after cancellation")
	}
}

func TestApplyEnvironment_RealAdapters(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "debug.env")
	if err := os.WriteFile(path, []byte("# comment\n\nBAZ = qux\nPATH=/usr/bin:/bin"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	paths := pathsource.NewEnv(pathsource.WithLookup(func(name string) (string, bool) {
		return path, name == "DEBUG_ENV"
	}))
	target := &recordingConfigurator{}

	if _, err := NewApplyEnvironment(paths, envfile.NewLoader()).Execute(context.Background(), Source{Var: "DEBUG_ENV"}, target); err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if !reflect.DeepEqual(target.entries, []string{"BAZ= qux", "PATH=/usr/bin:/bin"}) {
		t.Fatalf("unexpected entries %q", target.entries)
	}
}

func TestCheckEnvFile_ReportsIssues(t *testing.T) {
	loader := &fakeLoader{list: domain.EnvAssignmentList{
		{Key: "PLAIN", Value: "ok"},
		{Key: "QUOTED", Value: `"x"`},
	}}
	apply := NewApplyEnvironment(&fakePathSource{}, loader)

	report, err := NewCheckEnvFile(apply).Execute(context.Background(), Source{File: "dev.env"})
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if report.Environment.Source != "dev.env" || len(report.Environment.Entries) != 2 {
		t.Fatalf("unexpected environment %+v", report.Environment)
	}
	if len(report.Issues) != 1 || report.Issues[0].Key != "QUOTED" {
		t.Fatalf("expected one issue for QUOTED, got %v", report.Issues)
	}
}

func TestCheckEnvFile_ReportsDuplicateKeysOnce(t *testing.T) {
	loader := &fakeLoader{list: domain.EnvAssignmentList{
		{Key: "A", Value: "1"},
		{Key: "B", Value: "2"},
		{Key: "A", Value: "3"},
		{Key: "A", Value: "4"},
		{Key: "B", Value: "5"},
	}}
	apply := NewApplyEnvironment(&fakePathSource{}, loader)

	report, err := NewCheckEnvFile(apply).Execute(context.Background(), Source{File: "dev.env"})
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if !reflect.DeepEqual(report.Duplicates, []string{"A", "B"}) {
		t.Fatalf("expected duplicates [A B], got %v", report.Duplicates)
	}
}

func TestCheckEnvFile_FormatError(t *testing.T) {
	loader := &fakeLoader{err: &domain.FormatError{LineNo: 2, Line: "nope"}}
	_, err := NewCheckEnvFile(NewApplyEnvironment(&fakePathSource{}, loader)).Execute(context.Background(), Source{File: "dev.env"})
	if !domain.IsKind(err, domain.KindInvalidFormat) {
		t.Fatalf("expected KindInvalidFormat, got %v", err)
	}
}
