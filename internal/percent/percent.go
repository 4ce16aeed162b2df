package percent

import "math"

// weightPlaces is the number of decimal places kept on adjusted weights.
const weightPlaces = 4

// ApplyRelativePercentage adjusts value by a signed relative percentage.
// Example: 50 = 50% increase (0.5 changed to 0.75)
//
//	-50 = 50% decrease (0.5 changed to 0.25)
//
// The result is rounded to 4 decimal places and never drops below 0.
func ApplyRelativePercentage(percentage, value float64) float64 {
	increase := percentage >= 0
	diffPct := percentage
	if !increase {
		diffPct = -percentage
	}
	diff := (diffPct / 100) * value
	if increase {
		value += diff
	} else {
		value -= diff
	}

	value = Round(value, weightPlaces)
	if value > 0 {
		return value
	}
	return 0
}

// Round rounds v to the given number of decimal places, halves away from zero.
func Round(v float64, places int) float64 {
	if places <= 0 {
		return math.Round(v)
	}
	scale := math.Pow(10, float64(places))
	return math.Round(v*scale) / scale
}
