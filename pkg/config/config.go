// SPDX-License-Identifier: MPL-2.0

package config

import (
	"errors"
	"fmt"
	"maps"
	"slices"

	"procman/pkg/programname"
)

const (
	// AppName is the application identity used for the per-user config directory.
	AppName = "procman"
	// BaseName is the file name (without extension) searched for in each directory.
	BaseName = "procman"
)

const (
	// StageFind is the discovery stage of Load.
	StageFind Stage = iota + 1
	// StageParse is the read-and-decode stage of Load.
	StageParse
)

var (
	errMissingPrograms = errors.New("missing field `programs`")
	errMissingCommand  = errors.New("missing field `command`")
)

type (
	// Config is the validated procman configuration: every configured
	// program keyed by its name.
	Config struct {
		Programs map[programname.Name]Program
	}

	// Program is a single program definition. Command holds the executable
	// and its arguments; it is not validated here.
	Program struct {
		Command []string `toml:"command" json:"command" yaml:"command"`
	}

	// Stage identifies which half of Load failed.
	Stage int

	// LoadError is the top-level error returned by Load.
	LoadError struct {
		Stage Stage
		Err   error
	}

	// document mirrors the on-disk schema. Pointers distinguish a missing
	// field from an empty one.
	document struct {
		Programs *map[programname.Name]programDocument `toml:"programs" json:"programs" yaml:"programs"`
	}

	programDocument struct {
		Command *[]string `toml:"command" json:"command" yaml:"command"`
	}

	encodedDocument struct {
		Programs map[string]Program `toml:"programs" json:"programs" yaml:"programs"`
	}
)

// Load finds, reads and decodes the procman configuration.
//
// With an empty path the working directory and then the per-user config
// directory are searched for a single procman config file. Otherwise exactly
// the given file is loaded. Errors are returned as *LoadError.
func Load(path string) (*Config, error) {
	res, err := load(LoadOptions{ConfigFilePath: path})
	if err != nil {
		return nil, err
	}
	return res.Config, nil
}

// Names returns the configured program names in lexical order.
func (c *Config) Names() []programname.Name {
	return slices.SortedFunc(maps.Keys(c.Programs), programname.Name.Compare)
}

// Program returns the definition for name.
func (c *Config) Program(name programname.Name) (Program, bool) {
	p, ok := c.Programs[name]
	return p, ok
}

func (d *document) config() (*Config, error) {
	if d.Programs == nil {
		return nil, errMissingPrograms
	}

	cfg := &Config{Programs: make(map[programname.Name]Program, len(*d.Programs))}
	for name, p := range *d.Programs {
		if p.Command == nil {
			return nil, fmt.Errorf("programs.%s: %w", name, errMissingCommand)
		}
		cfg.Programs[name] = Program{Command: slices.Clone(*p.Command)}
	}

	return cfg, nil
}

func newEncodedDocument(cfg *Config) encodedDocument {
	doc := encodedDocument{Programs: make(map[string]Program, len(cfg.Programs))}
	for name, p := range cfg.Programs {
		cmd := p.Command
		if cmd == nil {
			cmd = []string{}
		}
		doc.Programs[name.String()] = Program{Command: cmd}
	}
	return doc
}

// Operation returns the verb phrase describing the stage.
func (s Stage) Operation() string {
	switch s {
	case StageFind:
		return "find config file"
	case StageParse:
		return "parse config file"
	default:
		return "load config file"
	}
}

// String implements fmt.Stringer.
func (s Stage) String() string {
	switch s {
	case StageFind:
		return "find"
	case StageParse:
		return "parse"
	default:
		return "unknown"
	}
}

// Error implements the error interface.
func (e *LoadError) Error() string {
	return fmt.Sprintf("failed to %s: %v", e.Stage.Operation(), e.Err)
}

// Unwrap returns the underlying discovery or parse error.
func (e *LoadError) Unwrap() error {
	return e.Err
}
