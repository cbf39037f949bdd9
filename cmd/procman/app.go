// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"io"
	"os"

	"procman/pkg/config"

	"github.com/charmbracelet/log"
)

type (
	// App wires CLI services and shared dependencies. It is the composition root for
	// the CLI layer: all Cobra command handlers receive an App reference and load
	// configuration through its Config provider.
	App struct {
		Config   config.Provider
		stdout   io.Writer
		stderr   io.Writer
		logger   *log.Logger
		settings *globalSettings
	}

	// Dependencies defines the injection points for building an App. Nil fields are
	// replaced with production defaults by NewApp.
	Dependencies struct {
		Config config.Provider
		Stdout io.Writer
		Stderr io.Writer
	}
)

// NewApp creates an App, filling unset dependencies with production defaults.
func NewApp(deps Dependencies) *App {
	if deps.Config == nil {
		deps.Config = config.NewProvider()
	}
	if deps.Stdout == nil {
		deps.Stdout = os.Stdout
	}
	if deps.Stderr == nil {
		deps.Stderr = os.Stderr
	}

	return &App{
		Config: deps.Config,
		stdout: deps.Stdout,
		stderr: deps.Stderr,
		logger: log.NewWithOptions(deps.Stderr, log.Options{
			Prefix: "procman",
			Level:  log.WarnLevel,
		}),
	}
}

// loadOptions builds provider options from the resolved global flags.
func (a *App) loadOptions() config.LoadOptions {
	opts := config.LoadOptions{Logger: a.logger}
	if a.settings != nil {
		opts.ConfigFilePath = a.settings.ConfigPath()
		opts.SearchDirs = a.settings.SearchDirs()
	}
	return opts
}

// load loads the configuration selected by the global flags. Failures are
// returned as *issue.ActionableError.
func (a *App) load(ctx context.Context) (*config.Result, error) {
	res, err := a.Config.Load(ctx, a.loadOptions())
	if err != nil {
		return nil, classifyLoadError(err)
	}
	a.logger.Debug("loaded config", "path", res.File.Path, "programs", len(res.Config.Programs))
	return res, nil
}

// resolve runs discovery only. Failures are returned as *issue.ActionableError.
func (a *App) resolve(ctx context.Context) (config.File, error) {
	file, err := a.Config.Resolve(ctx, a.loadOptions())
	if err != nil {
		return config.File{}, classifyLoadError(err)
	}
	return file, nil
}

func (a *App) verbose() bool {
	return a.settings != nil && a.settings.Verbose()
}
