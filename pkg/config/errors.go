// SPDX-License-Identifier: MPL-2.0

package config

import (
	"errors"
	"fmt"
	"strings"
)

// Discovery errors.
var (
	// ErrWorkingDir is the sentinel error wrapped by WorkingDirError.
	ErrWorkingDir = errors.New("failed to determine current working directory")
	// ErrConfigDir is the sentinel error wrapped by ConfigDirError.
	ErrConfigDir = errors.New("could not determine config directory: this could be due to the current " +
		"user not having a home directory - please consider specifying the path manually if this is the case")
	// ErrReadDirectory is the sentinel error wrapped by ReadDirectoryError.
	ErrReadDirectory = errors.New("could not read directory")
	// ErrMultipleCandidates is the sentinel error wrapped by MultipleCandidatesError.
	ErrMultipleCandidates = errors.New("multiple candidate configs")
	// ErrNotFound is the sentinel error wrapped by NotFoundError.
	ErrNotFound = errors.New("could not find config file in search paths")
	// ErrInvalidPath is the sentinel error wrapped by InvalidPathError.
	ErrInvalidPath = errors.New("invalid path")
	// ErrNoBasename is the InvalidPathError reason for paths without a file name.
	ErrNoBasename = errors.New("could not determine basename")
)

// Read and parse errors.
var (
	// ErrReadFile is the sentinel error wrapped by ReadFileError.
	ErrReadFile = errors.New("could not read contents of file")
	// ErrInvalidUTF8 is returned by every format for input that is not UTF-8 text.
	ErrInvalidUTF8 = errors.New("file contained invalid utf-8")
	// ErrInvalidTOML is matched by DecodeError for FormatTOML.
	ErrInvalidTOML = errors.New("file contained invalid toml")
	// ErrInvalidJSON is matched by DecodeError for FormatJSON.
	ErrInvalidJSON = errors.New("file contained invalid json")
	// ErrInvalidYAML is matched by DecodeError for FormatYAML.
	ErrInvalidYAML = errors.New("file contained invalid yaml")
	// ErrUndeterminedFormat is the sentinel error wrapped by UndeterminedFormatError.
	ErrUndeterminedFormat = errors.New("could not parse config file as any supported format")
)

type (
	// WorkingDirError is returned when the current working directory cannot
	// be resolved during search mode.
	WorkingDirError struct {
		Err error
	}

	// ConfigDirError is returned when the per-user configuration directory
	// cannot be resolved, typically because there is no home directory.
	ConfigDirError struct {
		Err error
	}

	// ReadDirectoryError is returned when a search directory cannot be listed.
	ReadDirectoryError struct {
		Dir string
		Err error
	}

	// MultipleCandidatesError is returned when one directory holds more than
	// one candidate config file. Paths lists every competing file.
	MultipleCandidatesError struct {
		Dir   string
		Paths []string
	}

	// NotFoundError is returned when no searched directory holds a candidate.
	// Dirs lists the searched directories in search order.
	NotFoundError struct {
		Dirs []string
	}

	// InvalidPathError is returned for an explicit path that cannot name a
	// config file.
	InvalidPathError struct {
		Path   string
		Reason error
	}

	// ReadFileError wraps the I/O failure from reading a config file.
	ReadFileError struct {
		Err error
	}

	// DecodeError is a structural failure reported by one format's decoder.
	// Validation failures travel inside it too: an invalid program name key
	// is a DecodeError whose chain holds a *programname.Error, reachable with
	// errors.As.
	DecodeError struct {
		Format Format
		Err    error
	}

	// UndeterminedFormatError is returned when a file without a format hint
	// could not be decoded by any registered format. The individual decoder
	// failures are not retained.
	UndeterminedFormatError struct {
		Tried []Format
	}

	// ParseError attaches the config file path to a read or parse failure.
	ParseError struct {
		Path string
		Err  error
	}
)

// Error implements the error interface.
func (e *WorkingDirError) Error() string {
	return fmt.Sprintf("%s: %v", ErrWorkingDir, e.Err)
}

// Unwrap returns the underlying cause.
func (e *WorkingDirError) Unwrap() error { return e.Err }

// Is reports whether target is ErrWorkingDir.
func (e *WorkingDirError) Is(target error) bool { return target == ErrWorkingDir }

// Error implements the error interface.
func (e *ConfigDirError) Error() string {
	if e.Err == nil {
		return ErrConfigDir.Error()
	}
	return fmt.Sprintf("%s: %v", ErrConfigDir, e.Err)
}

// Unwrap returns the underlying cause.
func (e *ConfigDirError) Unwrap() error { return e.Err }

// Is reports whether target is ErrConfigDir.
func (e *ConfigDirError) Is(target error) bool { return target == ErrConfigDir }

// Error implements the error interface.
func (e *ReadDirectoryError) Error() string {
	return fmt.Sprintf("%s at %s: %v", ErrReadDirectory, e.Dir, e.Err)
}

// Unwrap returns the underlying cause.
func (e *ReadDirectoryError) Unwrap() error { return e.Err }

// Is reports whether target is ErrReadDirectory.
func (e *ReadDirectoryError) Is(target error) bool { return target == ErrReadDirectory }

// Error implements the error interface.
func (e *MultipleCandidatesError) Error() string {
	return fmt.Sprintf("%s in directory %s: %s", ErrMultipleCandidates, e.Dir, strings.Join(e.Paths, ", "))
}

// Unwrap returns ErrMultipleCandidates for errors.Is() compatibility.
func (e *MultipleCandidatesError) Unwrap() error { return ErrMultipleCandidates }

// Error implements the error interface.
func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s: %s", ErrNotFound, strings.Join(e.Dirs, ", "))
}

// Unwrap returns ErrNotFound for errors.Is() compatibility.
func (e *NotFoundError) Unwrap() error { return ErrNotFound }

// Error implements the error interface.
func (e *InvalidPathError) Error() string {
	return fmt.Sprintf("%s at %q: %v", ErrInvalidPath, e.Path, e.Reason)
}

// Unwrap returns the reason the path was rejected.
func (e *InvalidPathError) Unwrap() error { return e.Reason }

// Is reports whether target is ErrInvalidPath.
func (e *InvalidPathError) Is(target error) bool { return target == ErrInvalidPath }

// Error implements the error interface.
func (e *ReadFileError) Error() string {
	return fmt.Sprintf("%s: %v", ErrReadFile, e.Err)
}

// Unwrap returns the underlying I/O error.
func (e *ReadFileError) Unwrap() error { return e.Err }

// Is reports whether target is ErrReadFile.
func (e *ReadFileError) Is(target error) bool { return target == ErrReadFile }

// Error implements the error interface.
func (e *DecodeError) Error() string {
	return fmt.Sprintf("%s: %v", e.sentinel(), e.Err)
}

// Unwrap returns the decoder's error.
func (e *DecodeError) Unwrap() error { return e.Err }

// Is reports whether target is the sentinel for the failing format.
func (e *DecodeError) Is(target error) bool { return target == e.sentinel() }

func (e *DecodeError) sentinel() error {
	switch e.Format {
	case FormatJSON:
		return ErrInvalidJSON
	case FormatYAML:
		return ErrInvalidYAML
	default:
		return ErrInvalidTOML
	}
}

// Error implements the error interface.
func (e *UndeterminedFormatError) Error() string {
	names := make([]string, len(e.Tried))
	for i, f := range e.Tried {
		names[i] = f.String()
	}
	return fmt.Sprintf("%s (%s)", ErrUndeterminedFormat, strings.Join(names, ", "))
}

// Unwrap returns ErrUndeterminedFormat for errors.Is() compatibility.
func (e *UndeterminedFormatError) Unwrap() error { return ErrUndeterminedFormat }

// Error implements the error interface.
func (e *ParseError) Error() string {
	return fmt.Sprintf("could not parse config file at %s: %v", e.Path, e.Err)
}

// Unwrap returns the underlying read or parse failure.
func (e *ParseError) Unwrap() error { return e.Err }
