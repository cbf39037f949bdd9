// SPDX-License-Identifier: MPL-2.0

package config

import (
	"context"
	"fmt"
	"io"

	"github.com/charmbracelet/log"
)

type (
	// LoadOptions defines explicit configuration loading inputs.
	LoadOptions struct {
		// ConfigFilePath forces loading from a specific config file when set.
		ConfigFilePath string
		// SearchDirs replaces the default search directories (working
		// directory, then ConfigDir) when ConfigFilePath is empty.
		SearchDirs []string
		// Logger receives debug traces of discovery and format detection.
		// Errors are returned, never logged.
		Logger *log.Logger
	}

	// Result is a loaded configuration together with the file it came from.
	// Format is the format that decoded the file; for an unhinted File it is
	// the one found by trial parsing.
	Result struct {
		Config *Config
		File   File
		Format Format
	}

	// Provider loads configuration from explicit options.
	Provider interface {
		Load(ctx context.Context, opts LoadOptions) (*Result, error)
		// Resolve runs discovery only and reports the file Load would read.
		Resolve(ctx context.Context, opts LoadOptions) (File, error)
	}

	fileProvider struct{}
)

// NewProvider creates a configuration provider backed by the filesystem.
func NewProvider() Provider {
	return &fileProvider{}
}

// Load finds and parses the configuration described by opts.
func (p *fileProvider) Load(ctx context.Context, opts LoadOptions) (*Result, error) {
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("load config canceled: %w", ctx.Err())
	default:
	}

	return load(opts)
}

// Resolve locates the configuration file described by opts without reading it.
// Failures are wrapped in a *LoadError for StageFind.
func (p *fileProvider) Resolve(ctx context.Context, opts LoadOptions) (File, error) {
	select {
	case <-ctx.Done():
		return File{}, fmt.Errorf("resolve config canceled: %w", ctx.Err())
	default:
	}

	file, err := resolve(opts, loggerOrDiscard(opts.Logger))
	if err != nil {
		return File{}, &LoadError{Stage: StageFind, Err: err}
	}
	return file, nil
}

func load(opts LoadOptions) (*Result, error) {
	logger := loggerOrDiscard(opts.Logger)

	file, err := resolve(opts, logger)
	if err != nil {
		return nil, &LoadError{Stage: StageFind, Err: err}
	}

	cfg, format, err := parse(file, logger)
	if err != nil {
		return nil, &LoadError{Stage: StageParse, Err: err}
	}

	return &Result{Config: cfg, File: file, Format: format}, nil
}

func resolve(opts LoadOptions, logger *log.Logger) (File, error) {
	if opts.ConfigFilePath != "" {
		return FileFromPath(opts.ConfigFilePath)
	}

	dirs := opts.SearchDirs
	if len(dirs) == 0 {
		var err error
		if dirs, err = SearchDirs(); err != nil {
			return File{}, err
		}
	}

	return find(dirs, logger)
}

func loggerOrDiscard(logger *log.Logger) *log.Logger {
	if logger == nil {
		return discardLogger()
	}
	return logger
}

func discardLogger() *log.Logger {
	return log.New(io.Discard)
}
