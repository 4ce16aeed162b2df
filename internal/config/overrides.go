package config

import "fmt"

// Overrides carries single-value overrides given on the command line.
// Nil fields leave the file value untouched.
type Overrides struct {
	Enabled    *bool
	Debug      *bool
	Adjustment *int
}

// IsZero reports whether no override is set.
func (o Overrides) IsZero() bool {
	return o.Enabled == nil && o.Debug == nil && o.Adjustment == nil
}

// Apply returns a copy of cfg with the overrides applied. cfg itself is not
// modified, so cached configs stay intact.
func (o Overrides) Apply(cfg *Config) (*Config, error) {
	out := *cfg
	if o.Enabled != nil {
		out.Enabled = *o.Enabled
	}
	if o.Debug != nil {
		out.Debug = *o.Debug
	}
	if o.Adjustment != nil {
		if !percentInRange(*o.Adjustment) {
			return nil, fmt.Errorf("%w: adjustment override must be in [%d,%d]", ErrInvalid, MinPercent, MaxPercent)
		}
		out.Item.Adjustment = *o.Adjustment
	}
	return &out, nil
}
