// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"
	"strings"

	"procman/internal/issue"

	"github.com/spf13/cobra"
	"mvdan.cc/sh/v3/syntax"
)

func newProgramsCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:     "programs",
		Aliases: []string{"ls"},
		Short:   "List configured programs",
		Long: `List configured programs in name order.

Each command is shown as a single shell-quoted line. Programs with an empty
command are listed as "(no command)".`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := app.load(cmd.Context())
			if err != nil {
				return err
			}

			names := res.Config.Names()
			width := 0
			for _, name := range names {
				width = max(width, len(name.String()))
			}

			out := cmd.OutOrStdout()
			for _, name := range names {
				prog, _ := res.Config.Program(name)
				line, err := commandLine(prog.Command)
				if err != nil {
					return issue.WrapWithOperation(fmt.Errorf("program %s: %w", name, err), "render command")
				}
				fmt.Fprintf(out, "%s  %s\n", NameStyle.Width(width).Render(name.String()), line)
			}
			return nil
		},
	}
}

// commandLine renders argv as one line that bash would split back into the
// same words.
func commandLine(argv []string) (string, error) {
	if len(argv) == 0 {
		return SubtitleStyle.Render("(no command)"), nil
	}

	words := make([]string, len(argv))
	for i, arg := range argv {
		quoted, err := syntax.Quote(arg, syntax.LangBash)
		if err != nil {
			return "", err
		}
		words[i] = quoted
	}
	return CmdStyle.Render(strings.Join(words, " ")), nil
}
