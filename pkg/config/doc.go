// SPDX-License-Identifier: MPL-2.0

// Package config finds, reads and decodes the procman configuration file.
//
// A configuration maps program names to the command line used to start each
// program. It can be written as TOML, JSON (comments and trailing commas are
// allowed) or YAML:
//
//	[programs.web]
//	command = ["nginx", "-g", "daemon off;"]
//
// Load is the entry point. Given a path it loads exactly that file, using the
// file extension as a format hint. Without a path it searches the current
// working directory and then the per-user config directory (see ConfigDir)
// for a file named procman, procman.conf or procman.<ext>, where <ext> is one
// of toml, json, yaml or yml. The first directory holding a candidate decides
// the outcome: one candidate is loaded, several are an error.
//
// Files without a format hint are decoded by trying every format in
// Formats() order.
package config
