package progress

import "math"

// Percent returns value/max clamped to [0,1] and scaled to a whole percentage.
// A non-positive max yields 0.
func Percent(value, max int) int {
	if max <= 0 {
		return 0
	}
	ratio := float64(value) / float64(max)
	ratio = math.Min(math.Max(ratio, 0), 1)
	return int(math.Round(ratio * 100))
}
