// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"
	"strconv"

	"procman/internal/issue"

	"github.com/spf13/cobra"
)

// newIssuesCommand creates the hidden `procman issues` command that browses
// the troubleshooting pages shown by --verbose errors.
func newIssuesCommand() *cobra.Command {
	return &cobra.Command{
		Use:    "issues [id]",
		Short:  "List troubleshooting pages or show one",
		Hidden: true,
		Args:   cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			if len(args) == 0 {
				for _, page := range issue.Values() {
					fmt.Fprintf(out, "%2d  %s\n", page.Id(), page.Title())
				}
				return nil
			}

			id, err := strconv.Atoi(args[0])
			page := issue.Get(issue.Id(id))
			if err != nil || page == nil {
				return fmt.Errorf("unknown issue %q (run 'procman issues' for the list)", args[0])
			}

			rendered, err := page.Render("auto")
			if err != nil {
				return fmt.Errorf("render issue %d: %w", id, err)
			}
			_, err = fmt.Fprint(out, rendered)
			return err
		},
	}
}
