package errors

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

// TestSentinelErrors_Are verifies that sentinel errors are properly defined
// and can be checked with errors.Is()
func TestSentinelErrors_Are(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		sentinel error
	}{
		{"ErrKingNotFound", ErrKingNotFound, ErrKingNotFound},
		{"ErrInvalidLayout", ErrInvalidLayout, ErrInvalidLayout},
		{"ErrInvalidConfig", ErrInvalidConfig, ErrInvalidConfig},
		{"ErrUnknownCommand", ErrUnknownCommand, ErrUnknownCommand},
		{"ErrBadArgument", ErrBadArgument, ErrBadArgument},
		{"ErrMoveRejected", ErrMoveRejected, ErrMoveRejected},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !errors.Is(tt.err, tt.sentinel) {
				t.Errorf("errors.Is(%v, %v) = false, want true", tt.err, tt.sentinel)
			}
		})
	}
}

func TestSentinelErrors_Distinct(t *testing.T) {
	if errors.Is(ErrInvalidLayout, ErrInvalidConfig) {
		t.Error("errors.Is(ErrInvalidLayout, ErrInvalidConfig) = true, want false")
	}
	if errors.Is(ErrKingNotFound, ErrInvalidLayout) {
		t.Error("errors.Is(ErrKingNotFound, ErrInvalidLayout) = true, want false")
	}
}

// TestLayoutError_Error verifies the error message format
func TestLayoutError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *LayoutError
		contains []string
	}{
		{
			name:     "full context",
			err:      &LayoutError{Err: ErrInvalidLayout, Row: 3, Col: 5, Got: "xQ"},
			contains: []string{"row 3", "col 5", `"xQ"`, "invalid layout"},
		},
		{
			name:     "no got",
			err:      &LayoutError{Err: ErrInvalidLayout, Row: 8},
			contains: []string{"row 8", "invalid layout"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := tt.err.Error()
			for _, s := range tt.contains {
				if !strings.Contains(msg, s) {
					t.Errorf("LayoutError.Error() = %q, should contain %q", msg, s)
				}
			}
		})
	}
}

func TestLayoutError_NilErr(t *testing.T) {
	err := &LayoutError{Row: 1, Col: 2}
	if got, want := err.Error(), "row 1, col 2"; got != want {
		t.Errorf("LayoutError.Error() = %q, want %q", got, want)
	}
}

// TestLayoutError_As verifies that errors.As works through further wrapping
func TestLayoutError_As(t *testing.T) {
	layoutErr := &LayoutError{Err: ErrInvalidLayout, Row: 2, Col: 7, Got: "wZ"}
	wrapped := fmt.Errorf("loading position: %w", layoutErr)

	var extracted *LayoutError
	if !errors.As(wrapped, &extracted) {
		t.Fatal("errors.As(wrapped, *LayoutError) = false, want true")
	}
	if extracted.Row != 2 || extracted.Col != 7 {
		t.Errorf("extracted square = (%d,%d), want (7,2)", extracted.Col, extracted.Row)
	}
	if !errors.Is(wrapped, ErrInvalidLayout) {
		t.Error("errors.Is(wrapped, ErrInvalidLayout) = false, want true")
	}
}

func TestWrap(t *testing.T) {
	if got := Wrap(nil, "context"); got != nil {
		t.Errorf("Wrap(nil) = %v, want nil", got)
	}

	err := Wrap(ErrInvalidConfig, "square size")
	if !errors.Is(err, ErrInvalidConfig) {
		t.Error("errors.Is(Wrap(ErrInvalidConfig), ErrInvalidConfig) = false, want true")
	}
	if got, want := err.Error(), "square size: invalid configuration"; got != want {
		t.Errorf("Wrap().Error() = %q, want %q", got, want)
	}
}

func TestWrapf(t *testing.T) {
	if got := Wrapf(nil, "%s king", "White"); got != nil {
		t.Errorf("Wrapf(nil) = %v, want nil", got)
	}

	err := Wrapf(ErrKingNotFound, "%s king", "Black")
	if !errors.Is(err, ErrKingNotFound) {
		t.Error("errors.Is(Wrapf(ErrKingNotFound), ErrKingNotFound) = false, want true")
	}
	if got, want := err.Error(), "Black king: king not found"; got != want {
		t.Errorf("Wrapf().Error() = %q, want %q", got, want)
	}
}
