// Package sink holds the pixel destinations an image is rendered into.
package sink

import (
	"errors"
	"fmt"
)

var (
	// ErrOutOfBounds is returned for writes outside the sink's dimensions.
	ErrOutOfBounds = errors.New("pixel out of bounds")
	// ErrChannelRange is returned for color channels outside [0, 255].
	ErrChannelRange = errors.New("color channel out of range")
	// ErrFinalized is returned for any use of a sink after Finalize.
	ErrFinalized = errors.New("sink already finalized")
)

// RGB is one pixel's color triple. Each channel must lie in [0, 255].
type RGB struct {
	R, G, B int
}

func (c RGB) valid() bool {
	return inByte(c.R) && inByte(c.G) && inByte(c.B)
}

func inByte(v int) bool { return v >= 0 && v <= 255 }

// Sink is an addressable RGB pixel buffer that is written once per
// pixel and then finalized. Set must be safe for concurrent calls
// that address distinct pixels.
type Sink interface {
	Set(i, j int, c RGB) error
	Finalize() error
}

// WriteError reports a rejected pixel write or a failed finalize.
type WriteError struct {
	Op   string // set, finalize, create, encode, write or close
	Path string
	X, Y int
	Err  error
}

func (e *WriteError) Error() string {
	if e.Op == "set" {
		return fmt.Sprintf("sink: set (%d, %d) in %s: %v", e.X, e.Y, e.Path, e.Err)
	}
	return fmt.Sprintf("sink: %s %s: %v", e.Op, e.Path, e.Err)
}

func (e *WriteError) Unwrap() error { return e.Err }
