// Package interval maps values between linear ranges and quantizes
// expression outputs to 8-bit color intensities.
package interval

import (
	"errors"
	"fmt"
)

// ErrInvalidInterval is returned when the input interval has zero length.
var ErrInvalidInterval = errors.New("zero-length input interval")

// Remap maps val from [inStart, inEnd] onto [outStart, outEnd].
// Either interval may be reversed, which inverts the mapping. Values
// outside the input interval extrapolate linearly.
func Remap(val, inStart, inEnd, outStart, outEnd float64) (float64, error) {
	if inEnd == inStart {
		return 0, fmt.Errorf("interval: remap %v from [%v, %v]: %w", val, inStart, inEnd, ErrInvalidInterval)
	}
	return lerp(val, inStart, inEnd, outStart, outEnd), nil
}

// lerp assumes inEnd != inStart.
func lerp(val, inStart, inEnd, outStart, outEnd float64) float64 {
	t := (val - inStart) / (inEnd - inStart)
	return outStart + t*(outEnd-outStart)
}
