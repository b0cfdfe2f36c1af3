// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"errors"
	"fmt"
)

var (
	ErrDecode            = errors.New("unable to decode audio")
	ErrUnsupportedFormat = errors.New("unsupported sample format")
	ErrUnknownContainer  = errors.New("unknown audio container")
	ErrInvalidFormat     = errors.New("invalid audio format")
	ErrNilBuffer         = errors.New("nil audio buffer")
)

// DecodeError is returned when the input is not a parseable audio container.
// It matches ErrDecode with errors.Is.
type DecodeError struct {
	Format string // container key, empty when unknown
	Err    error
}

func (e *DecodeError) Error() string {
	if e.Format == "" {
		return fmt.Sprintf("%v: %v", ErrDecode, e.Err)
	}
	return fmt.Sprintf("%v as %s: %v", ErrDecode, e.Format, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

func (e *DecodeError) Is(target error) bool { return target == ErrDecode }

// UnsupportedFormatError names a sample format that cannot be converted to
// Linear16. It matches ErrUnsupportedFormat with errors.Is.
type UnsupportedFormatError struct {
	Name string
}

func (e *UnsupportedFormatError) Error() string {
	return fmt.Sprintf("%v: %s", ErrUnsupportedFormat, e.Name)
}

func (e *UnsupportedFormatError) Is(target error) bool { return target == ErrUnsupportedFormat }
