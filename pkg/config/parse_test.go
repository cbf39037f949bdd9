// SPDX-License-Identifier: MPL-2.0

package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"procman/internal/testutil"
)

func TestParse_HintedFormat(t *testing.T) {
	for _, f := range Formats() {
		t.Run(f.String(), func(t *testing.T) {
			path := testutil.MustWriteFile(t, t.TempDir(), "procman."+f.String(), testutil.SampleConfig(f.String()))

			cfg, err := Parse(File{Path: path, Format: f})
			if err != nil {
				t.Fatalf("Parse() returned error: %v", err)
			}
			assertPrograms(t, cfg, samplePrograms)
		})
	}
}

func TestParse_HintDoesNotFallBack(t *testing.T) {
	// Valid JSON (and therefore valid YAML) behind a .toml name must fail.
	path := testutil.MustWriteFile(t, t.TempDir(), "procman.toml", testutil.SampleJSON)

	_, err := Load(path)
	if err == nil {
		t.Fatal("Load() expected error, got nil")
	}

	var parseErr *ParseError
	if !errors.As(err, &parseErr) {
		t.Fatalf("Load() error = %v, want *ParseError", err)
	}
	if parseErr.Path != path {
		t.Errorf("ParseError.Path = %q, want %q", parseErr.Path, path)
	}
	if !errors.Is(err, ErrInvalidTOML) {
		t.Errorf("Load() error = %v, want ErrInvalidTOML", err)
	}
	if errors.Is(err, ErrUndeterminedFormat) {
		t.Error("hinted load reported ErrUndeterminedFormat")
	}
}

func TestParse_YAMLHintRejectsTOML(t *testing.T) {
	path := testutil.MustWriteFile(t, t.TempDir(), "procman.yml", testutil.SampleTOML)

	_, err := Load(path)
	if !errors.Is(err, ErrInvalidYAML) {
		t.Errorf("Load() error = %v, want ErrInvalidYAML", err)
	}
}

func TestParse_FallbackTrial(t *testing.T) {
	for _, f := range Formats() {
		t.Run(f.String(), func(t *testing.T) {
			path := testutil.MustWriteFile(t, t.TempDir(), "procman", testutil.SampleConfig(f.String()))

			cfg, err := Load(path)
			if err != nil {
				t.Fatalf("Load() returned error: %v", err)
			}
			assertPrograms(t, cfg, samplePrograms)
		})
	}
}

func TestParse_FallbackWithUnknownExtension(t *testing.T) {
	path := testutil.MustWriteFile(t, t.TempDir(), "procman.conf", testutil.SampleYAML)

	file, err := FileFromPath(path)
	if err != nil {
		t.Fatalf("FileFromPath() returned error: %v", err)
	}
	if file.Hinted() {
		t.Fatalf("FileFromPath(%q) unexpectedly hinted %v", path, file.Format)
	}

	cfg, err := Parse(file)
	if err != nil {
		t.Fatalf("Parse() returned error: %v", err)
	}
	assertPrograms(t, cfg, samplePrograms)
}

func TestParse_UndeterminedFormat(t *testing.T) {
	// Invalid as TOML and JSON; valid YAML but not a mapping with programs.
	path := testutil.MustWriteFile(t, t.TempDir(), "procman", "- just\n- a list\n")

	_, err := Load(path)

	var undetermined *UndeterminedFormatError
	if !errors.As(err, &undetermined) {
		t.Fatalf("Load() error = %v, want *UndeterminedFormatError", err)
	}

	want := "could not parse config file as any supported format (toml, json, yaml)"
	if undetermined.Error() != want {
		t.Errorf("Error() = %q, want %q", undetermined.Error(), want)
	}

	// Per-format failures are discarded.
	for _, sentinel := range []error{ErrInvalidTOML, ErrInvalidJSON, ErrInvalidYAML, ErrInvalidUTF8} {
		if errors.Is(err, sentinel) {
			t.Errorf("undetermined format error unexpectedly matches %v", sentinel)
		}
	}

	wantFull := "failed to parse config file: could not parse config file at " + path + ": " + want
	if err.Error() != wantFull {
		t.Errorf("Load() error = %q, want %q", err.Error(), wantFull)
	}
}

func TestParse_UndeterminedFormatForBinary(t *testing.T) {
	path := testutil.MustWriteFile(t, t.TempDir(), "procman", "\x00\x01\x02\x03")

	_, err := Parse(File{Path: path})
	if !errors.Is(err, ErrUndeterminedFormat) {
		t.Errorf("Parse() error = %v, want ErrUndeterminedFormat", err)
	}
}

func TestParse_HintedInvalidUTF8(t *testing.T) {
	path := testutil.MustWriteFile(t, t.TempDir(), "procman.toml", "[programs.web]\ncommand = [\"\xc3\x28\"]\n")

	_, err := Parse(File{Path: path, Format: FormatTOML})
	if !errors.Is(err, ErrInvalidUTF8) {
		t.Errorf("Parse() error = %v, want ErrInvalidUTF8", err)
	}
}

func TestParse_InvalidUTF8InJSON(t *testing.T) {
	const contents = "{\"programs\": {\"a\": {\"command\": [\"\xff\"]}}}"

	t.Run("hinted", func(t *testing.T) {
		path := testutil.MustWriteFile(t, t.TempDir(), "procman.json", contents)

		cfg, err := Load(path)
		if err == nil {
			t.Fatalf("Load() = %+v, want an error instead of a rewritten argument", cfg.Programs)
		}
		if !errors.Is(err, ErrInvalidUTF8) {
			t.Errorf("Load() error = %v, want ErrInvalidUTF8", err)
		}
	})

	t.Run("unhinted", func(t *testing.T) {
		path := testutil.MustWriteFile(t, t.TempDir(), "procman", contents)

		cfg, err := Load(path)
		if err == nil {
			t.Fatalf("Load() = %+v, want an error instead of a rewritten argument", cfg.Programs)
		}
		if !errors.Is(err, ErrUndeterminedFormat) {
			t.Errorf("Load() error = %v, want ErrUndeterminedFormat", err)
		}
	})
}

func TestParse_ReadFailure(t *testing.T) {
	path := filepath.Join(t.TempDir(), "procman.toml")

	_, err := Parse(File{Path: path, Format: FormatTOML})

	var parseErr *ParseError
	if !errors.As(err, &parseErr) {
		t.Fatalf("Parse() error = %v, want *ParseError", err)
	}
	if parseErr.Path != path {
		t.Errorf("ParseError.Path = %q, want %q", parseErr.Path, path)
	}

	var readErr *ReadFileError
	if !errors.As(err, &readErr) {
		t.Fatalf("Parse() error = %v, want *ReadFileError in chain", err)
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Parse() error = %v, want os.ErrNotExist in chain", err)
	}
}

func TestParse_ReadDirectoryAsFile(t *testing.T) {
	dir := t.TempDir()

	_, err := Parse(File{Path: dir})
	if !errors.Is(err, ErrReadFile) {
		t.Errorf("Parse() error = %v, want ErrReadFile", err)
	}
}
