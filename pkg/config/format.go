// SPDX-License-Identifier: MPL-2.0

package config

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/pelletier/go-toml/v2"
	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"
)

const (
	// FormatTOML is the TOML serialization.
	FormatTOML Format = iota + 1
	// FormatJSON is the JSON serialization. Comments and trailing commas
	// (JSONC) are tolerated.
	FormatJSON
	// FormatYAML is the YAML serialization.
	FormatYAML
)

type (
	// Format identifies one of the supported config serializations.
	// The zero value means "no format known".
	Format int

	formatSpec struct {
		name    string
		aliases []string
		decode  func(data []byte, doc *document) error
		encode  func(v any) ([]byte, error)
	}
)

// formatOrder is the fallback trial order for files without a format hint.
var formatOrder = []Format{FormatTOML, FormatJSON, FormatYAML}

var formats = map[Format]formatSpec{
	FormatTOML: {
		name:    "toml",
		aliases: []string{"toml"},
		decode: func(data []byte, doc *document) error {
			if err := requireUTF8(data); err != nil {
				return err
			}
			return toml.Unmarshal(data, doc)
		},
		encode: toml.Marshal,
	},
	FormatJSON: {
		name:    "json",
		aliases: []string{"json"},
		decode: func(data []byte, doc *document) error {
			// encoding/json would replace invalid bytes with U+FFFD.
			if err := requireUTF8(data); err != nil {
				return err
			}
			return json.Unmarshal(jsonc.ToJSON(data), doc)
		},
		encode: func(v any) ([]byte, error) {
			out, err := json.MarshalIndent(v, "", "  ")
			if err != nil {
				return nil, err
			}
			return append(out, '\n'), nil
		},
	},
	FormatYAML: {
		name:    "yaml",
		aliases: []string{"yaml", "yml"},
		decode: func(data []byte, doc *document) error {
			if err := requireUTF8(data); err != nil {
				return err
			}
			return yaml.Unmarshal(data, doc)
		},
		encode: func(v any) ([]byte, error) {
			var buf bytes.Buffer
			enc := yaml.NewEncoder(&buf)
			enc.SetIndent(2)
			if err := enc.Encode(v); err != nil {
				return nil, err
			}
			if err := enc.Close(); err != nil {
				return nil, err
			}
			return buf.Bytes(), nil
		},
	},
}

func requireUTF8(data []byte) error {
	if !utf8.Valid(data) {
		return ErrInvalidUTF8
	}
	return nil
}

// Formats returns every supported format in fallback trial order.
func Formats() []Format {
	return slices.Clone(formatOrder)
}

// FormatFromExtension returns the format registered for a filename extension
// (without the leading dot). Matching is case-sensitive.
func FormatFromExtension(ext string) (Format, bool) {
	for _, f := range formatOrder {
		if slices.Contains(formats[f].aliases, ext) {
			return f, true
		}
	}
	return 0, false
}

// String returns the canonical lowercase format name.
func (f Format) String() string {
	spec, ok := formats[f]
	if !ok {
		return "unknown"
	}
	return spec.name
}

// Aliases returns the filename extensions recognized for the format.
func (f Format) Aliases() []string {
	return slices.Clone(formats[f].aliases)
}

// IsValid reports whether f is a registered format.
func (f Format) IsValid() bool {
	_, ok := formats[f]
	return ok
}

// Decode parses data as this format into a Config. Input that is not valid
// UTF-8 fails with ErrInvalidUTF8 in every format. Decoder failures are
// returned as *DecodeError, including program name validation: a bad key
// surfaces as a *DecodeError wrapping a *programname.Error.
func (f Format) Decode(data []byte) (*Config, error) {
	spec, ok := formats[f]
	if !ok {
		return nil, fmt.Errorf("decode: unsupported format %d", int(f))
	}

	var doc document
	if err := spec.decode(data, &doc); err != nil {
		if errors.Is(err, ErrInvalidUTF8) {
			return nil, err
		}
		return nil, &DecodeError{Format: f, Err: err}
	}

	cfg, err := doc.config()
	if err != nil {
		return nil, &DecodeError{Format: f, Err: err}
	}

	return cfg, nil
}

// Encode serializes cfg in this format.
func (f Format) Encode(cfg *Config) ([]byte, error) {
	spec, ok := formats[f]
	if !ok {
		return nil, fmt.Errorf("encode: unsupported format %d", int(f))
	}

	out, err := spec.encode(newEncodedDocument(cfg))
	if err != nil {
		return nil, fmt.Errorf("encode %s: %w", f, err)
	}

	return out, nil
}

// Set implements pflag.Value. It accepts any registered alias.
func (f *Format) Set(s string) error {
	parsed, ok := FormatFromExtension(strings.ToLower(s))
	if !ok {
		return fmt.Errorf("unknown format %q (expected one of: %s)", s, strings.Join(allAliases(), ", "))
	}
	*f = parsed
	return nil
}

// Type implements pflag.Value.
func (f *Format) Type() string {
	return "format"
}

func allAliases() []string {
	var out []string
	for _, f := range formatOrder {
		out = append(out, formats[f].aliases...)
	}
	return out
}
