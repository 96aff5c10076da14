package interval

// Bounds of the quantizer's input and output ranges.
const (
	ValueMin = -1.0
	ValueMax = 1.0
	ColorMax = 255
)

// ColorMap maps a value in [-1, 1] to an intensity in [0, 255].
// The result is truncated toward zero, so ColorMap(0) is 127, not 128.
// Inputs outside [-1, 1] extrapolate past the 8-bit range.
func ColorMap(val float64) int {
	return int(lerp(val, ValueMin, ValueMax, 0, ColorMax))
}
