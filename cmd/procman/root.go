// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"procman/internal/issue"

	"github.com/charmbracelet/fang"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	// Version is the semantic version (set via -ldflags).
	Version = "dev"
	// Commit is the git commit hash (set via -ldflags).
	Commit = "unknown"
	// BuildDate is the build timestamp (set via -ldflags).
	BuildDate = "unknown"
)

// NewRootCommand builds the procman command tree around app.
func NewRootCommand(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "procman",
		Short: "A process manager driven by a single config file",
		Long: TitleStyle.Render("procman") + SubtitleStyle.Render(" - A process manager driven by a single config file") + `

procman reads a set of named programs from procman.toml, procman.json,
procman.yaml (or procman.yml) in the current directory or in the per-user
config directory. Files named procman or procman.conf are accepted too; their
format is detected from the contents.

` + SubtitleStyle.Render("Examples:") + `
  procman programs                   List configured programs
  procman config path                Show which config file is used
  procman config show --output yaml  Print the config converted to YAML
  procman -c ./deploy.toml programs  Use an explicit config file`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if app.verbose() {
				app.logger.SetLevel(log.DebugLevel)
			}
		},
	}

	root.SetOut(app.stdout)
	root.SetErr(app.stderr)

	flags := root.PersistentFlags()
	flags.StringP(flagConfig, "c", "", "config file (env PROCMAN_CONFIG; default: search the working directory, then the config directory)")
	flags.StringSlice(flagSearchDir, nil, "directory to search for a config file, replacing the default search path (repeatable)")
	flags.BoolP(flagVerbose, "v", false, "enable verbose output (env PROCMAN_VERBOSE)")
	app.settings = newGlobalSettings(root)

	root.AddCommand(newConfigCommand(app))
	root.AddCommand(newProgramsCommand(app))
	root.AddCommand(newIssuesCommand())

	return root
}

// getVersionString returns a formatted version string for display.
func getVersionString() string {
	if Version == "dev" {
		return "dev (built from source)"
	}
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, BuildDate)
}

// Run executes procman with the process arguments and returns the exit code.
func Run() int {
	app := NewApp(Dependencies{})
	return execute(context.Background(), app, NewRootCommand(app))
}

// Execute runs procman and exits the process. It is called by main.main().
func Execute() {
	os.Exit(Run())
}

func execute(ctx context.Context, app *App, root *cobra.Command) int {
	// fang overrides root.Version, so the version is passed explicitly.
	if err := fang.Execute(
		ctx,
		root,
		fang.WithVersion(getVersionString()),
		fang.WithNotifySignal(os.Interrupt),
		fang.WithErrorHandler(app.renderError),
	); err != nil {
		return 1
	}
	return 0
}

// renderError prints actionable errors with their suggestions and, in verbose
// mode, the troubleshooting page of the linked issue. Anything else goes
// through fang's default handler.
func (a *App) renderError(w io.Writer, styles fang.Styles, err error) {
	var ae *issue.ActionableError
	if !errors.As(err, &ae) {
		fang.DefaultErrorHandler(w, styles, err)
		return
	}

	verbose := a.verbose()
	fmt.Fprintln(w, ErrorStyle.Render("Error:")+" "+ae.Format(verbose))

	if !verbose || ae.IssueID == 0 {
		return
	}
	page := issue.Get(ae.IssueID)
	if page == nil {
		return
	}
	rendered, rerr := page.Render("auto")
	if rerr != nil {
		a.logger.Debug("could not render issue page", "issue", int(ae.IssueID), "err", rerr)
		return
	}
	fmt.Fprint(w, rendered)
}
