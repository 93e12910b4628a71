package app

import (
	"errors"
	"testing"
)

func TestOperationError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *OperationError
		expected string
	}{
		{
			name:     "nil error",
			err:      nil,
			expected: "",
		},
		{
			name:     "op only",
			err:      &OperationError{Op: "copy"},
			expected: "copy",
		},
		{
			name:     "op and target",
			err:      &OperationError{Op: "copy", Target: "braille"},
			expected: "copy braille",
		},
		{
			name:     "full error chain",
			err:      &OperationError{Op: "save preference", Target: "brailleEditorLayout", Err: errors.New("disk full")},
			expected: "save preference brailleEditorLayout: disk full",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.err.Error()
			if result != tt.expected {
				t.Errorf("Error() = '%s', expected '%s'", result, tt.expected)
			}
		})
	}
}

func TestOperationError_Unwrap(t *testing.T) {
	err := NewOperationError("copy", "text", ErrClipboardUnsupported)

	if !errors.Is(err, ErrClipboardUnsupported) {
		t.Error("errors.Is did not find the wrapped error")
	}
}

func TestOperationError_Unwrap_Nil(t *testing.T) {
	var err *OperationError
	if err.Unwrap() != nil {
		t.Error("expected nil from Unwrap() on nil receiver")
	}
}

func TestInitError(t *testing.T) {
	err := &InitError{Component: "modes", Err: ErrNoModes}

	if got, want := err.Error(), "initialize modes: no braille modes available"; got != want {
		t.Errorf("Error() = %q, expected %q", got, want)
	}
	if !errors.Is(err, ErrNoModes) {
		t.Error("errors.Is(err, ErrNoModes) = false")
	}
}
