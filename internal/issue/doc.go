// SPDX-License-Identifier: MPL-2.0

// Package issue provides actionable error handling with user-friendly messages.
//
// ActionableError wraps a failure with the operation that was attempted and
// suggestions for fixing it. Issue is a catalog entry of Markdown guidance for a
// class of failures, rendered for the terminal with glamour.
package issue
