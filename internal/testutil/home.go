// SPDX-License-Identifier: MPL-2.0

package testutil

import (
	"runtime"
	"testing"
)

// SetHomeDir sets the appropriate HOME environment variable based on platform
// and returns a cleanup function to restore the original value.
//
// Platform handling:
//   - Windows: Sets USERPROFILE
//   - Linux/macOS: Sets HOME
func SetHomeDir(t testing.TB, dir string) func() {
	t.Helper()

	switch runtime.GOOS {
	case "windows":
		return MustSetenv(t, "USERPROFILE", dir)
	default:
		return MustSetenv(t, "HOME", dir)
	}
}

// IsolateUserDirs points HOME, XDG_CONFIG_HOME and APPDATA at dir for the
// rest of the test so that per-user config lookups never see the real
// user's files.
func IsolateUserDirs(t testing.TB, dir string) {
	t.Helper()
	t.Cleanup(SetHomeDir(t, dir))
	t.Cleanup(MustSetenv(t, "XDG_CONFIG_HOME", dir))
	t.Cleanup(MustSetenv(t, "APPDATA", dir))
}
