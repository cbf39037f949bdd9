// SPDX-License-Identifier: MPL-2.0

package config

import (
	"errors"
	"os"
	"path/filepath"
	"slices"
	"testing"

	"procman/internal/testutil"
	"procman/pkg/programname"
)

var examplePrograms = map[string][]string{
	"web":    {"nginx", "-g", "daemon off;"},
	"worker": {"bin/worker", "--queue", "default"},
	"idle":   {},
}

var samplePrograms = map[string][]string{
	"web":    {"nginx", "-g", "daemon off;"},
	"worker": {"bin/worker", "--queue", "default"},
}

// assertPrograms compares cfg against want, treating nil and empty commands alike.
func assertPrograms(t *testing.T, cfg *Config, want map[string][]string) {
	t.Helper()

	if cfg == nil {
		t.Fatal("config is nil")
	}
	if len(cfg.Programs) != len(want) {
		t.Errorf("got %d programs, want %d: %v", len(cfg.Programs), len(want), cfg.Programs)
	}
	for name, cmd := range want {
		p, ok := cfg.Program(programname.MustParse(name))
		if !ok {
			t.Errorf("program %q missing", name)
			continue
		}
		if !slices.Equal(p.Command, cmd) {
			t.Errorf("program %q command = %q, want %q", name, p.Command, cmd)
		}
	}
}

func TestLoad_Examples(t *testing.T) {
	entries, err := os.ReadDir(filepath.Join("testdata", "examples"))
	if err != nil {
		t.Fatalf("failed to read examples: %v", err)
	}

	for _, entry := range entries {
		if entry.Name() == "README.md" {
			continue
		}
		t.Run(entry.Name(), func(t *testing.T) {
			cfg, err := Load(filepath.Join("testdata", "examples", entry.Name()))
			if err != nil {
				t.Fatalf("Load() returned error: %v", err)
			}
			assertPrograms(t, cfg, examplePrograms)
		})
	}
}

func TestLoad_SearchModeEndToEnd(t *testing.T) {
	home := t.TempDir()
	testutil.IsolateUserDirs(t, home)
	SetConfigDirOverride(filepath.Join(home, "procman"))
	t.Cleanup(func() { SetConfigDirOverride("") })

	project := t.TempDir()
	testutil.MustWriteFile(t, project, "procman.toml", "[programs.web]\ncommand = [\"nginx\", \"-g\", \"daemon off;\"]\n")
	t.Cleanup(testutil.MustChdir(t, project))

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load(\"\") returned error: %v", err)
	}

	assertPrograms(t, cfg, map[string][]string{"web": {"nginx", "-g", "daemon off;"}})
}

func TestLoad_SearchModeFallsBackToConfigDir(t *testing.T) {
	home := t.TempDir()
	testutil.IsolateUserDirs(t, home)
	cfgDir := filepath.Join(home, "procman")
	SetConfigDirOverride(cfgDir)
	t.Cleanup(func() { SetConfigDirOverride("") })

	testutil.MustWriteFile(t, cfgDir, "procman.yml", testutil.SampleYAML)
	t.Cleanup(testutil.MustChdir(t, t.TempDir()))

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load(\"\") returned error: %v", err)
	}

	assertPrograms(t, cfg, samplePrograms)
}

func TestLoad_ErrorStages(t *testing.T) {
	dir := t.TempDir()

	_, err := Load(filepath.Join(dir, "missing.toml"))
	var loadErr *LoadError
	if !errors.As(err, &loadErr) {
		t.Fatalf("Load() error = %v, want *LoadError", err)
	}
	if loadErr.Stage != StageParse {
		t.Errorf("Stage = %v, want %v", loadErr.Stage, StageParse)
	}
	if !errors.Is(err, ErrReadFile) {
		t.Errorf("errors.Is(err, ErrReadFile) = false for %v", err)
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("errors.Is(err, os.ErrNotExist) = false for %v", err)
	}

	_, err = Load(string(filepath.Separator))
	if !errors.As(err, &loadErr) {
		t.Fatalf("Load() error = %v, want *LoadError", err)
	}
	if loadErr.Stage != StageFind {
		t.Errorf("Stage = %v, want %v", loadErr.Stage, StageFind)
	}
	if !errors.Is(err, ErrInvalidPath) {
		t.Errorf("errors.Is(err, ErrInvalidPath) = false for %v", err)
	}
}

func TestLoadError_Message(t *testing.T) {
	err := &LoadError{Stage: StageFind, Err: &NotFoundError{Dirs: []string{"/a", "/b"}}}
	want := "failed to find config file: could not find config file in search paths: /a, /b"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}

func TestConfig_Names(t *testing.T) {
	cfg := &Config{Programs: map[programname.Name]Program{
		programname.MustParse("worker"): {},
		programname.MustParse("api"):    {},
		programname.MustParse("web"):    {},
	}}

	var got []string
	for _, n := range cfg.Names() {
		got = append(got, n.String())
	}

	want := []string{"api", "web", "worker"}
	if !slices.Equal(got, want) {
		t.Errorf("Names() = %v, want %v", got, want)
	}
}

func TestStage_Operation(t *testing.T) {
	tests := []struct {
		stage Stage
		want  string
	}{
		{StageFind, "find config file"},
		{StageParse, "parse config file"},
		{Stage(0), "load config file"},
	}

	for _, tt := range tests {
		if got := tt.stage.Operation(); got != tt.want {
			t.Errorf("Stage(%d).Operation() = %q, want %q", tt.stage, got, tt.want)
		}
	}
}
