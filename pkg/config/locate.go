// SPDX-License-Identifier: MPL-2.0

package config

import (
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/log"
)

// ambiguousNames are candidate file names that carry no format hint.
var ambiguousNames = []string{BaseName, BaseName + ".conf"}

// File is a config file chosen for loading. A zero Format means the format
// must be determined by trial parsing.
type File struct {
	Path   string
	Format Format
}

// Hinted reports whether the file name determined the format.
func (f File) Hinted() bool {
	return f.Format.IsValid()
}

// FileFromPath resolves an explicitly given config path. The format hint is
// taken from the file name's last dot-suffix; a missing or unknown suffix
// leaves the format undetermined. The path itself is kept as given.
func FileFromPath(path string) (File, error) {
	base, ok := baseName(path)
	if !ok {
		return File{}, &InvalidPathError{Path: path, Reason: ErrNoBasename}
	}

	file := File{Path: path}
	if i := strings.LastIndexByte(base, '.'); i >= 0 {
		if f, ok := FormatFromExtension(base[i+1:]); ok {
			file.Format = f
		}
	}

	return file, nil
}

func baseName(path string) (string, bool) {
	if path == "" {
		return "", false
	}

	base := filepath.Base(filepath.Clean(path))
	switch {
	case base == ".", base == "..":
		return "", false
	case os.IsPathSeparator(base[0]):
		return "", false
	}

	return base, true
}

// Find searches dirs in order and returns the only candidate config file of
// the first directory that has any. A directory that cannot be read, or that
// holds several candidates, ends the search with an error.
func Find(dirs []string) (File, error) {
	return find(dirs, discardLogger())
}

func find(dirs []string, logger *log.Logger) (File, error) {
	for _, dir := range dirs {
		logger.Debug("searching for config", "dir", dir)

		candidates, err := candidatesIn(dir)
		if err != nil {
			return File{}, err
		}

		switch len(candidates) {
		case 0:
			continue
		case 1:
			logger.Debug("found config", "path", candidates[0].Path, "format", candidates[0].Format)
			return candidates[0], nil
		default:
			paths := make([]string, len(candidates))
			for i, c := range candidates {
				paths[i] = c.Path
			}
			return File{}, &MultipleCandidatesError{Dir: dir, Paths: paths}
		}
	}

	return File{}, &NotFoundError{Dirs: append([]string(nil), dirs...)}
}

func candidatesIn(dir string) ([]File, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, &ReadDirectoryError{Dir: dir, Err: err}
	}

	var candidates []File
	for _, entry := range entries {
		if f, ok := candidate(dir, entry.Name()); ok {
			candidates = append(candidates, f)
		}
	}

	return candidates, nil
}

// candidate reports whether name is a procman config file name.
func candidate(dir, name string) (File, bool) {
	if !utf8.ValidString(name) {
		return File{}, false
	}

	for _, ambiguous := range ambiguousNames {
		if name == ambiguous {
			return File{Path: filepath.Join(dir, name)}, true
		}
	}

	i := strings.LastIndexByte(name, '.')
	if i < 0 || name[:i] != BaseName {
		return File{}, false
	}

	f, ok := FormatFromExtension(name[i+1:])
	if !ok {
		return File{}, false
	}

	return File{Path: filepath.Join(dir, name), Format: f}, true
}
