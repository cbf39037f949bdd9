// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	envPrefix = "procman"

	flagConfig    = "config"
	flagSearchDir = "search-dir"
	flagVerbose   = "verbose"
)

// globalSettings resolves the persistent flags. A flag set on the command line
// wins over its PROCMAN_* environment variable, which wins over the default.
type globalSettings struct {
	v *viper.Viper
}

func newGlobalSettings(root *cobra.Command) *globalSettings {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	flags := root.PersistentFlags()
	for _, name := range []string{flagConfig, flagSearchDir, flagVerbose} {
		// BindPFlag only fails for a nil flag.
		_ = v.BindPFlag(name, flags.Lookup(name))
	}

	return &globalSettings{v: v}
}

// ConfigPath returns the explicit config file, or "" to search.
func (s *globalSettings) ConfigPath() string {
	return s.v.GetString(flagConfig)
}

// SearchDirs returns the directories that replace the default search path.
func (s *globalSettings) SearchDirs() []string {
	return s.v.GetStringSlice(flagSearchDir)
}

func (s *globalSettings) Verbose() bool {
	return s.v.GetBool(flagVerbose)
}
