package source

import (
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
)

// fakeEnv is an injectable process environment that records writes, so
// containment tests never touch the real environment.
type fakeEnv struct {
	values map[string]string
	writes int
}

func newFakeEnv(values map[string]string) *fakeEnv {
	if values == nil {
		values = map[string]string{}
	}
	return &fakeEnv{values: values}
}

func (f *fakeEnv) lookup(key string) (string, bool) {
	v, ok := f.values[key]
	return v, ok
}

func (f *fakeEnv) set(key, value string) error {
	f.values[key] = value
	f.writes++
	return nil
}

func writeEnvFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), ".env")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write env file: %v", err)
	}
	return path
}

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestContained_OverlayTakesPrecedence(t *testing.T) {
	path := writeEnvFile(t, "FOO=from_overlay\n")
	env := newFakeEnv(map[string]string{"FOO": "from_env", "BAR": "env_only"})

	s, err := New(Config{Path: path, Environ: env.lookup, Setenv: env.set, Logger: quietLogger()})
	if err != nil {
		t.Fatalf("failed to build source: %v", err)
	}

	if v, ok := s.Lookup("FOO"); !ok || v != "from_overlay" {
		t.Errorf("expected overlay value, got %q (ok=%v)", v, ok)
	}

	// Per-key fallback to the process environment.
	if v, ok := s.Lookup("BAR"); !ok || v != "env_only" {
		t.Errorf("expected env fallback, got %q (ok=%v)", v, ok)
	}

	if _, ok := s.Lookup("ABSENT"); ok {
		t.Error("expected miss for undeclared key")
	}
}

// Containment law: a contained source never mutates the process
// environment.
func TestContained_NeverMutatesEnvironment(t *testing.T) {
	path := writeEnvFile(t, "FOO=BAR\nAPP=demo\n")
	env := newFakeEnv(nil)

	_, err := New(Config{Path: path, Environ: env.lookup, Setenv: env.set, Logger: quietLogger()})
	if err != nil {
		t.Fatalf("failed to build source: %v", err)
	}

	if env.writes != 0 {
		t.Errorf("expected no environment writes, got %d", env.writes)
	}
	if _, ok := env.values["FOO"]; ok {
		t.Error("contained overlay leaked into the process environment")
	}
}

// Containment law, propagating side: every overlay key absent from the
// process environment is written exactly once; external values win.
func TestPropagate_MergesIntoEnvironment(t *testing.T) {
	path := writeEnvFile(t, "NEW_KEY=from_overlay\nEXISTING=from_overlay\n")
	env := newFakeEnv(map[string]string{"EXISTING": "external"})

	s, err := New(Config{Path: path, Propagate: true, Environ: env.lookup, Setenv: env.set, Logger: quietLogger()})
	if err != nil {
		t.Fatalf("failed to build source: %v", err)
	}

	if env.values["NEW_KEY"] != "from_overlay" {
		t.Errorf("expected NEW_KEY propagated, got %q", env.values["NEW_KEY"])
	}
	if env.values["EXISTING"] != "external" {
		t.Errorf("expected external value kept, got %q", env.values["EXISTING"])
	}
	if env.writes != 1 {
		t.Errorf("expected exactly one write, got %d", env.writes)
	}

	// Lookups read the merged process environment.
	if v, ok := s.Lookup("NEW_KEY"); !ok || v != "from_overlay" {
		t.Errorf("expected propagated value via lookup, got %q (ok=%v)", v, ok)
	}
	if v, _ := s.Lookup("EXISTING"); v != "external" {
		t.Errorf("expected external value via lookup, got %q", v)
	}
}

func TestMissingOverlay_ContainedWarnsAndFallsBack(t *testing.T) {
	env := newFakeEnv(map[string]string{"HOME_PORT": "9000"})
	path := filepath.Join(t.TempDir(), ".env.absent")

	s, err := New(Config{Path: path, Environ: env.lookup, Setenv: env.set, Logger: quietLogger()})
	if err != nil {
		t.Fatalf("expected missing overlay to be non-fatal, got %v", err)
	}

	warnings := s.Warnings()
	if len(warnings) != 1 {
		t.Fatalf("expected 1 warning, got %d", len(warnings))
	}
	w := warnings[0]
	if w.Path != path {
		t.Errorf("expected warning path %q, got %q", path, w.Path)
	}
	if w.ID.String() == "00000000-0000-0000-0000-000000000000" {
		t.Error("expected warning to carry an ID")
	}

	// Fallback to the process environment still works.
	if v, ok := s.Lookup("HOME_PORT"); !ok || v != "9000" {
		t.Errorf("expected env fallback, got %q (ok=%v)", v, ok)
	}
}

func TestMissingOverlay_PropagatingIsSilent(t *testing.T) {
	env := newFakeEnv(nil)
	path := filepath.Join(t.TempDir(), ".env.absent")

	s, err := New(Config{Path: path, Propagate: true, Environ: env.lookup, Setenv: env.set, Logger: quietLogger()})
	if err != nil {
		t.Fatalf("expected missing overlay to be non-fatal, got %v", err)
	}
	if len(s.Warnings()) != 0 {
		t.Errorf("expected no warnings, got %d", len(s.Warnings()))
	}
	if len(s.Overlay()) != 0 {
		t.Errorf("expected empty overlay, got %v", s.Overlay())
	}
}

func TestMalformedOverlay_IsFatal(t *testing.T) {
	path := writeEnvFile(t, "this is not a key value line\n")

	_, err := New(Config{Path: path, Logger: quietLogger()})
	if err == nil {
		t.Fatal("expected load error for malformed overlay")
	}

	var le *LoadError
	if !errors.As(err, &le) {
		t.Fatalf("expected *LoadError, got %T", err)
	}
	if le.Path != path {
		t.Errorf("expected path %q in error, got %q", path, le.Path)
	}
}

func TestNoOverlayPath(t *testing.T) {
	env := newFakeEnv(map[string]string{"ONLY": "env"})

	s, err := New(Config{Environ: env.lookup, Setenv: env.set, Logger: quietLogger()})
	if err != nil {
		t.Fatalf("failed to build source: %v", err)
	}
	if v, ok := s.Lookup("ONLY"); !ok || v != "env" {
		t.Errorf("expected env lookup, got %q (ok=%v)", v, ok)
	}
	if len(s.Warnings()) != 0 {
		t.Errorf("expected no warnings without a path, got %d", len(s.Warnings()))
	}
}

func TestReload_PicksUpChanges(t *testing.T) {
	path := writeEnvFile(t, "KEY=old\n")
	env := newFakeEnv(nil)

	s, err := New(Config{Path: path, Environ: env.lookup, Setenv: env.set, Logger: quietLogger()})
	if err != nil {
		t.Fatalf("failed to build source: %v", err)
	}

	if err := os.WriteFile(path, []byte("KEY=new\n"), 0644); err != nil {
		t.Fatalf("failed to rewrite env file: %v", err)
	}
	if err := s.Reload(); err != nil {
		t.Fatalf("reload failed: %v", err)
	}

	if v, _ := s.Lookup("KEY"); v != "new" {
		t.Errorf("expected reloaded value, got %q", v)
	}
}

func TestReload_KeepsLastGoodOverlayOnFailure(t *testing.T) {
	path := writeEnvFile(t, "KEY=good\n")
	env := newFakeEnv(nil)

	s, err := New(Config{Path: path, Environ: env.lookup, Setenv: env.set, Logger: quietLogger()})
	if err != nil {
		t.Fatalf("failed to build source: %v", err)
	}

	// A half-written rewrite, the case a file watcher feeds straight into
	// Reload.
	if err := os.WriteFile(path, []byte("this is not a key value line\n"), 0644); err != nil {
		t.Fatalf("failed to rewrite env file: %v", err)
	}

	err = s.Reload()
	var le *LoadError
	if !errors.As(err, &le) {
		t.Fatalf("expected *LoadError from reload, got %v", err)
	}

	// The last-good overlay still serves lookups.
	if v, ok := s.Lookup("KEY"); !ok || v != "good" {
		t.Errorf("expected last-good value after failed reload, got %q (ok=%v)", v, ok)
	}

	// A later successful reload replaces it.
	if err := os.WriteFile(path, []byte("KEY=fixed\n"), 0644); err != nil {
		t.Fatalf("failed to rewrite env file: %v", err)
	}
	if err := s.Reload(); err != nil {
		t.Fatalf("reload failed: %v", err)
	}
	if v, _ := s.Lookup("KEY"); v != "fixed" {
		t.Errorf("expected reloaded value, got %q", v)
	}
}

func TestOverlay_ReturnsCopy(t *testing.T) {
	path := writeEnvFile(t, "KEY=value\n")

	s, err := New(Config{Path: path, Logger: quietLogger()})
	if err != nil {
		t.Fatalf("failed to build source: %v", err)
	}

	m := s.Overlay()
	m["KEY"] = "mutated"

	if v, _ := s.Lookup("KEY"); v != "value" {
		t.Errorf("overlay copy mutation leaked into source: %q", v)
	}
}

func TestLookup_RealEnvironmentDefaults(t *testing.T) {
	t.Setenv("LAZYENV_SOURCE_TEST", "real")

	s, err := New(Config{Logger: quietLogger()})
	if err != nil {
		t.Fatalf("failed to build source: %v", err)
	}
	if v, ok := s.Lookup("LAZYENV_SOURCE_TEST"); !ok || v != "real" {
		t.Errorf("expected real environment lookup, got %q (ok=%v)", v, ok)
	}
}
