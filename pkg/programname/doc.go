// SPDX-License-Identifier: MPL-2.0

// Package programname defines the identifier used as a key for programs in a
// procman configuration.
//
// A Name may only contain ASCII letters, digits, '_' and '-'. The check runs
// when a Name is constructed (Parse, MustParse or UnmarshalText), so every
// Name value in circulation is valid. Because Name implements
// encoding.TextUnmarshaler, decoders for TOML, JSON and YAML validate map keys
// as they decode them and a single bad key fails the whole document.
package programname
