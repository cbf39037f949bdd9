// SPDX-License-Identifier: MPL-2.0

package programname

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalidName is the sentinel error wrapped by Error.
var ErrInvalidName = errors.New("invalid program name")

type (
	// Name is a validated program identifier.
	// The zero value is the empty name, which contains no invalid characters.
	Name struct {
		value string
	}

	// Error is returned when a program name contains characters outside the
	// allowed set. Invalid lists every offending character in input order,
	// repeated once per occurrence.
	Error struct {
		Name    string
		Invalid []rune
	}
)

// Parse validates s and returns it as a Name.
func Parse(s string) (Name, error) {
	var invalid []rune
	for _, r := range s {
		if !isValidRune(r) {
			invalid = append(invalid, r)
		}
	}

	if len(invalid) > 0 {
		return Name{}, &Error{Name: s, Invalid: invalid}
	}

	return Name{value: s}, nil
}

// MustParse is like Parse but panics on invalid input.
func MustParse(s string) Name {
	n, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return n
}

func isValidRune(r rune) bool {
	switch {
	case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		return true
	case r == '_', r == '-':
		return true
	default:
		return false
	}
}

// String returns the name as written in the configuration.
func (n Name) String() string {
	return n.value
}

// MarshalText implements encoding.TextMarshaler.
func (n Name) MarshalText() ([]byte, error) {
	return []byte(n.value), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (n *Name) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*n = parsed
	return nil
}

// Compare orders names lexically. It returns -1, 0 or +1.
func (n Name) Compare(other Name) int {
	return strings.Compare(n.value, other.value)
}

// Error implements the error interface.
func (e *Error) Error() string {
	quoted := make([]string, len(e.Invalid))
	for i, r := range e.Invalid {
		quoted[i] = strconv.QuoteRune(r)
	}
	return fmt.Sprintf("%s: %q: invalid characters: %s", ErrInvalidName, e.Name, strings.Join(quoted, ", "))
}

// Unwrap returns ErrInvalidName for errors.Is() compatibility.
func (e *Error) Unwrap() error {
	return ErrInvalidName
}
