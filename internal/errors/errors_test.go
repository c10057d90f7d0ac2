package errors

import (
	stderrors "errors"
	"fmt"
	"io/fs"
	"strings"
	"testing"
)

func TestNew(t *testing.T) {
	tests := []struct {
		code     string
		category Category
		message  string
	}{
		{"E100", CategoryConfig, "Configuration file not found"},
		{"E102", CategoryConfig, "Invalid server port"},
		{"E200", CategoryProtocol, "Malformed frame"},
		{"E999", "", "Unknown error"},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			err := New(tt.code)
			if err.Code != tt.code {
				t.Errorf("Code = %q, want %q", err.Code, tt.code)
			}
			if err.Category != tt.category {
				t.Errorf("Category = %q, want %q", err.Category, tt.category)
			}
			if err.Message != tt.message {
				t.Errorf("Message = %q, want %q", err.Message, tt.message)
			}
		})
	}
}

func TestError_ErrorString(t *testing.T) {
	err := New("E101").Wrap(fmt.Errorf("unexpected EOF"))
	want := "E101: Invalid configuration file: unexpected EOF"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}

func TestError_WrapAndIs(t *testing.T) {
	err := New("E100").Wrap(fs.ErrNotExist)

	if !stderrors.Is(err, fs.ErrNotExist) {
		t.Error("errors.Is should see the wrapped error")
	}
	if !stderrors.Is(err, New("E100")) {
		t.Error("errors.Is should match on code")
	}
	if stderrors.Is(err, New("E101")) {
		t.Error("errors.Is should not match a different code")
	}

	outer := fmt.Errorf("loading: %w", err)
	if Code(outer) != "E100" {
		t.Errorf("Code() = %q, want E100", Code(outer))
	}
	if Code(fmt.Errorf("plain")) != "" {
		t.Error("Code() of a plain error should be empty")
	}
}

func TestFormat(t *testing.T) {
	DisableColors()
	defer EnableColors()

	err := New("E102").
		WithDetail("port 70000 is out of range").
		WithSuggestion("Use a port between 0 and 65535")

	out := err.Format()
	for _, want := range []string{
		"ERROR E102: Invalid server port",
		"port 70000 is out of range",
		"Hint: Use a port between 0 and 65535",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("Format() missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "\033[") {
		t.Error("Format() should not contain ANSI codes when colors are disabled")
	}
}

func TestFormatCompact(t *testing.T) {
	err := New("E104").WithSuggestion("use random")
	want := "E104: Unknown token source (hint: use random)"
	if got := err.FormatCompact(); got != want {
		t.Errorf("FormatCompact() = %q, want %q", got, want)
	}
}

func TestWrapText(t *testing.T) {
	lines := wrapText("aaa bbb ccc ddd", 7)
	if len(lines) != 2 || lines[0] != "aaa bbb" || lines[1] != "ccc ddd" {
		t.Errorf("wrapText() = %q", lines)
	}
	if wrapText("   ", 10) != nil {
		t.Error("wrapText of blank text should be nil")
	}
}

func TestFprint(t *testing.T) {
	DisableColors()
	defer EnableColors()

	var buf strings.Builder
	coded := New("E100").WithSuggestion("Create statebind.json").Wrap(fs.ErrNotExist)
	Fprint(&buf, fmt.Errorf("serve: %w", coded))
	for _, want := range []string{"ERROR E100: Configuration file not found", "Hint: Create statebind.json"} {
		if !strings.Contains(buf.String(), want) {
			t.Errorf("Fprint() missing %q:\n%s", want, buf.String())
		}
	}

	buf.Reset()
	Fprint(&buf, fmt.Errorf("plain failure"))
	if buf.String() != "ERROR: plain failure\n" {
		t.Errorf("Fprint() = %q", buf.String())
	}
}
