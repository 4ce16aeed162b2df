package percent

// ProportionalRescale moves oldValue from an old anchor to a new one while
// keeping its relative distance to the anchor.
//
//	ratio  = (oldValue - oldAnchor) / oldAnchor
//	result = round(newAnchor * (ratio + 1))
//
// Thresholds are whole kilograms, so the result carries no decimals.
// A zero oldAnchor returns ErrZeroAnchor instead of a NaN.
func ProportionalRescale(oldAnchor, oldValue, newAnchor float64) (float64, error) {
	for _, v := range [...]float64{oldAnchor, oldValue, newAnchor} {
		if err := validateFinite(v); err != nil {
			return 0, err
		}
	}
	if oldAnchor == 0 {
		return 0, ErrZeroAnchor
	}
	ratio := (oldValue - oldAnchor) / oldAnchor
	return Round(newAnchor*(ratio+1), 0), nil
}
