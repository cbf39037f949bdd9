// SPDX-License-Identifier: MPL-2.0

// Package cmd contains the procman command line.
//
// Every command is built from an App, the composition root that carries the
// configuration provider, the logger and the output streams. Load failures
// are classified into issue.ActionableError values so the error handler can
// print suggestions and, with --verbose, the matching troubleshooting page.
package cmd
