// SPDX-License-Identifier: MPL-2.0

package config

import (
	"os"

	"github.com/charmbracelet/log"
)

// Parse reads file and decodes it into a Config.
//
// A hinted file is decoded with its format only. Otherwise every format is
// tried in Formats() order and the first success wins; when all of them fail
// the result is an *UndeterminedFormatError that does not carry the
// individual failures. Every error is returned as *ParseError.
func Parse(file File) (*Config, error) {
	cfg, _, err := parse(file, discardLogger())
	return cfg, err
}

// parse also reports the format that decoded the file.
func parse(file File, logger *log.Logger) (*Config, Format, error) {
	contents, err := os.ReadFile(file.Path)
	if err != nil {
		return nil, 0, &ParseError{Path: file.Path, Err: &ReadFileError{Err: err}}
	}

	if file.Hinted() {
		cfg, err := file.Format.Decode(contents)
		if err != nil {
			return nil, 0, &ParseError{Path: file.Path, Err: err}
		}
		return cfg, file.Format, nil
	}

	tried := Formats()
	for _, f := range tried {
		cfg, err := f.Decode(contents)
		if err == nil {
			logger.Debug("determined config format", "path", file.Path, "format", f)
			return cfg, f, nil
		}
		logger.Debug("config is not valid", "path", file.Path, "format", f)
	}

	return nil, 0, &ParseError{Path: file.Path, Err: &UndeterminedFormatError{Tried: tried}}
}
