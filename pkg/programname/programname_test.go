// SPDX-License-Identifier: MPL-2.0

package programname

import (
	"encoding/json"
	"errors"
	"slices"
	"testing"
)

func TestParse_Valid(t *testing.T) {
	tests := []string{
		"web",
		"worker-1",
		"db_primary",
		"ABC-def_123",
		"",
	}

	for _, in := range tests {
		t.Run(in, func(t *testing.T) {
			n, err := Parse(in)
			if err != nil {
				t.Fatalf("Parse(%q) returned error: %v", in, err)
			}
			if n.String() != in {
				t.Errorf("Parse(%q).String() = %q", in, n.String())
			}
		})
	}
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		invalid []rune
	}{
		{"space and bang", "my prog!", []rune{' ', '!'}},
		{"repeated character", "a.b.c.d", []rune{'.', '.', '.'}},
		{"non-ascii letter", "café", []rune{'é'}},
		{"slash", "svc/web", []rune{'/'}},
		{"only invalid", "!!", []rune{'!', '!'}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.input)
			if err == nil {
				t.Fatalf("Parse(%q) expected error, got nil", tt.input)
			}

			var nameErr *Error
			if !errors.As(err, &nameErr) {
				t.Fatalf("Parse(%q) error type = %T, want *Error", tt.input, err)
			}
			if nameErr.Name != tt.input {
				t.Errorf("Error.Name = %q, want %q", nameErr.Name, tt.input)
			}
			if !slices.Equal(nameErr.Invalid, tt.invalid) {
				t.Errorf("Error.Invalid = %q, want %q", nameErr.Invalid, tt.invalid)
			}
			if !errors.Is(err, ErrInvalidName) {
				t.Error("errors.Is(err, ErrInvalidName) = false, want true")
			}
		})
	}
}

func TestError_Message(t *testing.T) {
	_, err := Parse("my prog!")
	if err == nil {
		t.Fatal("expected error")
	}

	want := `invalid program name: "my prog!": invalid characters: ' ', '!'`
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}

func TestMustParse_Panics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("MustParse did not panic on invalid input")
		}
	}()
	MustParse("bad name")
}

func TestName_TextRoundTrip(t *testing.T) {
	var n Name
	if err := n.UnmarshalText([]byte("api")); err != nil {
		t.Fatalf("UnmarshalText() returned error: %v", err)
	}
	if n != MustParse("api") {
		t.Errorf("UnmarshalText() = %q, want %q", n, "api")
	}

	text, err := n.MarshalText()
	if err != nil {
		t.Fatalf("MarshalText() returned error: %v", err)
	}
	if string(text) != "api" {
		t.Errorf("MarshalText() = %q, want %q", text, "api")
	}
}

func TestName_UnmarshalTextLeavesValueOnError(t *testing.T) {
	n := MustParse("keep")
	if err := n.UnmarshalText([]byte("no way")); err == nil {
		t.Fatal("UnmarshalText() expected error, got nil")
	}
	if n.String() != "keep" {
		t.Errorf("name changed to %q after failed UnmarshalText", n)
	}
}

func TestName_AsJSONMapKey(t *testing.T) {
	var m map[Name]int
	if err := json.Unmarshal([]byte(`{"web": 1, "worker": 2}`), &m); err != nil {
		t.Fatalf("json.Unmarshal() returned error: %v", err)
	}
	if m[MustParse("web")] != 1 || m[MustParse("worker")] != 2 {
		t.Errorf("unexpected map contents: %v", m)
	}

	err := json.Unmarshal([]byte(`{"bad key": 1}`), &m)
	var nameErr *Error
	if !errors.As(err, &nameErr) {
		t.Fatalf("json.Unmarshal() error = %v, want *Error", err)
	}
}

func TestName_Compare(t *testing.T) {
	a, b := MustParse("alpha"), MustParse("beta")
	if a.Compare(b) >= 0 {
		t.Errorf("alpha.Compare(beta) = %d, want < 0", a.Compare(b))
	}
	if b.Compare(a) <= 0 {
		t.Errorf("beta.Compare(alpha) = %d, want > 0", b.Compare(a))
	}
	if a.Compare(MustParse("alpha")) != 0 {
		t.Error("alpha.Compare(alpha) != 0")
	}
}
