// SPDX-License-Identifier: MPL-2.0

// Package testutil provides helper functions for tests that handle errors
// appropriately, reducing boilerplate and ensuring consistent error handling.
//
// Common helpers include environment variable management (MustSetenv, MustUnsetenv),
// directory operations (MustChdir, MustMkdirAll, MustWriteFile), home and config
// directory isolation (SetHomeDir, IsolateUserDirs) and sample procman
// configuration documents (SampleConfig).
package testutil
