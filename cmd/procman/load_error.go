// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"errors"
	"fmt"

	"procman/internal/issue"
	"procman/pkg/config"
	"procman/pkg/programname"
)

const suggestExplicitPath = "Pass the config file explicitly with --config <path> (or PROCMAN_CONFIG)"

// classifyLoadError converts a provider failure into an *issue.ActionableError
// whose suggestions and issue page match the failure kind. Cancellation is
// returned unchanged.
func classifyLoadError(err error) error {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return err
	}

	operation := "load config file"
	cause := err
	var loadErr *config.LoadError
	if errors.As(err, &loadErr) {
		operation = loadErr.Stage.Operation()
		cause = loadErr.Err
	}

	ctx := issue.NewErrorContext().WithOperation(operation).Wrap(cause)

	var (
		nameErr    *programname.Error
		dirErr     *config.ReadDirectoryError
		multiErr   *config.MultipleCandidatesError
		decodeErr  *config.DecodeError
		invalidErr *config.InvalidPathError
	)

	switch {
	case errors.As(err, &nameErr):
		ctx.WithIssue(issue.InvalidProgramNameId).
			WithSuggestion(fmt.Sprintf("Rename program %q using only ASCII letters, digits, '_' and '-'", nameErr.Name))
	case errors.As(err, &multiErr):
		ctx.WithIssue(issue.MultipleConfigsId).
			WithSuggestion("Keep a single procman config in " + multiErr.Dir).
			WithSuggestion(suggestExplicitPath)
	case errors.Is(err, config.ErrNotFound):
		ctx.WithIssue(issue.ConfigNotFoundId).
			WithSuggestions(
				"Create procman.toml (or .json, .yaml) in the current directory",
				suggestExplicitPath,
			)
	case errors.Is(err, config.ErrConfigDir):
		ctx.WithIssue(issue.ConfigDirUnavailableId).
			WithSuggestions(
				"Set HOME (or APPDATA on Windows) for the current user",
				suggestExplicitPath,
			)
	case errors.Is(err, config.ErrWorkingDir):
		ctx.WithSuggestions(
			"Change to an existing directory and retry",
			suggestExplicitPath,
		)
	case errors.As(err, &dirErr):
		ctx.WithIssue(issue.ConfigDirUnreadableId).
			WithSuggestions(
				"Create the directory or fix its permissions: "+dirErr.Dir,
				suggestExplicitPath,
			)
	case errors.As(err, &invalidErr):
		ctx.WithIssue(issue.InvalidConfigPathId).
			WithSuggestion("Pass the path of the config file itself, not a directory")
	case errors.Is(err, config.ErrReadFile):
		ctx.WithIssue(issue.ConfigReadFailedId).
			WithSuggestion("Check that the file exists, is a regular file and is readable")
	case errors.Is(err, config.ErrUndeterminedFormat):
		ctx.WithIssue(issue.ConfigFormatUndeterminedId).
			WithSuggestion("Give the file a .toml, .json, .yaml or .yml extension to see the exact syntax error")
	case errors.As(err, &decodeErr):
		ctx.WithIssue(issue.ConfigSyntaxErrorId).
			WithSuggestions(
				fmt.Sprintf("Fix the %s syntax error above", decodeErr.Format),
				"Run 'procman config validate' after editing",
			)
	case errors.Is(err, config.ErrInvalidUTF8):
		ctx.WithIssue(issue.ConfigSyntaxErrorId).
			WithSuggestion("Save the file as UTF-8 text")
	}

	return ctx.BuildError()
}
