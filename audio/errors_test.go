// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"errors"
	"io"
	"testing"
)

func TestSentinelErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		err  error
		want string
	}{
		{ErrDecode, "unable to decode audio"},
		{ErrUnsupportedFormat, "unsupported sample format"},
		{ErrUnknownContainer, "unknown audio container"},
		{ErrInvalidFormat, "invalid audio format"},
		{ErrNilBuffer, "nil audio buffer"},
	}

	for _, tt := range tests {
		if tt.err == nil {
			t.Fatalf("sentinel for %q is nil", tt.want)
		}
		if tt.err.Error() != tt.want {
			t.Errorf("Error() = %q, want %q", tt.err.Error(), tt.want)
		}
	}
}

func TestDecodeError(t *testing.T) {
	t.Parallel()

	err := error(&DecodeError{Format: "wav", Err: io.ErrUnexpectedEOF})

	if !errors.Is(err, ErrDecode) {
		t.Error("errors.Is(DecodeError, ErrDecode) = false, want true")
	}

	if !errors.Is(err, io.ErrUnexpectedEOF) {
		t.Error("errors.Is() failed to unwrap the cause")
	}

	if errors.Is(err, ErrUnsupportedFormat) {
		t.Error("DecodeError should not match ErrUnsupportedFormat")
	}

	want := "unable to decode audio as wav: unexpected EOF"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}

	bare := &DecodeError{Err: ErrUnknownContainer}
	if got := bare.Error(); got != "unable to decode audio: unknown audio container" {
		t.Errorf("Error() = %q", got)
	}
}

func TestUnsupportedFormatError(t *testing.T) {
	t.Parallel()

	err := error(&UnsupportedFormatError{Name: "int8"})

	if !errors.Is(err, ErrUnsupportedFormat) {
		t.Error("errors.Is(UnsupportedFormatError, ErrUnsupportedFormat) = false, want true")
	}

	if errors.Is(err, ErrDecode) {
		t.Error("UnsupportedFormatError should not match ErrDecode")
	}

	if err.Error() != "unsupported sample format: int8" {
		t.Errorf("Error() = %q", err.Error())
	}

	// Test that wrapped error can be unwrapped
	wrapped := errors.Join(err, errors.New("additional context"))
	var target *UnsupportedFormatError
	if !errors.As(wrapped, &target) || target.Name != "int8" {
		t.Error("errors.As() failed for joined UnsupportedFormatError")
	}
}
