// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"

	"procman/internal/issue"
	"procman/pkg/config"

	"github.com/spf13/cobra"
)

// newConfigCommand creates the `procman config` command tree.
func newConfigCommand(app *App) *cobra.Command {
	cfgCmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect procman configuration",
		Long: `Inspect procman configuration.

The config file is searched for in the current directory, then in:
  - Linux: $XDG_CONFIG_HOME/procman (default ~/.config/procman)
  - macOS: ~/Library/Application Support/procman
  - Windows: %APPDATA%\procman\config`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	cfgCmd.AddCommand(newConfigPathCommand(app))
	cfgCmd.AddCommand(newConfigShowCommand(app))
	cfgCmd.AddCommand(newConfigValidateCommand(app))

	return cfgCmd
}

func newConfigPathCommand(app *App) *cobra.Command {
	var dirOnly bool

	cmd := &cobra.Command{
		Use:   "path",
		Short: "Show which config file would be loaded",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			if dirOnly {
				dir, err := config.ConfigDir()
				if err != nil {
					return issue.NewErrorContext().
						WithOperation("determine config directory").
						WithIssue(issue.ConfigDirUnavailableId).
						WithSuggestion("Set HOME (or APPDATA on Windows) for the current user").
						Wrap(err).
						BuildError()
				}
				fmt.Fprintln(out, dir)
				return nil
			}

			file, err := app.resolve(cmd.Context())
			if err != nil {
				return err
			}

			format := "format detected from contents"
			if file.Hinted() {
				format = file.Format.String()
			}
			fmt.Fprintf(out, "%s %s\n", file.Path, SubtitleStyle.Render("("+format+")"))
			return nil
		},
	}

	cmd.Flags().BoolVar(&dirOnly, "dir", false, "print the per-user config directory instead")

	return cmd
}

func newConfigShowCommand(app *App) *cobra.Command {
	var output config.Format

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print the loaded configuration",
		Long: `Print the loaded configuration.

By default the configuration is printed in the format it was written in.
Use --output to convert it to another format.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := app.load(cmd.Context())
			if err != nil {
				return err
			}

			format := output
			if !format.IsValid() {
				format = res.Format
			}

			data, err := format.Encode(res.Config)
			if err != nil {
				return issue.WrapWithOperation(err, "encode config")
			}

			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}

	cmd.Flags().Var(&output, "output", "output format: toml, json, yaml or yml (default: the file's own format)")

	return cmd
}

func newConfigValidateCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Check that the config file loads",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := app.load(cmd.Context())
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s %s: %d program(s) OK\n",
				SuccessStyle.Render("✓"), res.File.Path, len(res.Config.Programs))
			return nil
		},
	}
}
