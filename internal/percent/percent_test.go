package percent

import (
	"errors"
	"math"
	"testing"
)

func TestApplyRelativePercentageExamples(t *testing.T) {
	cases := []struct {
		pct, value, want float64
	}{
		{50, 0.5, 0.75},
		{-50, 0.5, 0.25},
		{0, 1.2345, 1.2345},
		{10, 1.0, 1.1},
		{20, 1.1, 1.32},
		{300, 2, 8},
		{-99, 10, 0.1},
		{-100, 3, 0},
		{25, 0, 0},
	}
	for _, c := range cases {
		if got := ApplyRelativePercentage(c.pct, c.value); got != c.want {
			t.Errorf("ApplyRelativePercentage(%v, %v) = %v, want %v", c.pct, c.value, got, c.want)
		}
	}
}

func TestApplyRelativePercentageIdentityRounds(t *testing.T) {
	if got := ApplyRelativePercentage(0, 0.123456); got != 0.1235 {
		t.Fatalf("identity rule should still round to 4 places; got %v", got)
	}
}

func TestApplyRelativePercentageCompounds(t *testing.T) {
	w := ApplyRelativePercentage(10, 1.0)
	w = ApplyRelativePercentage(10, w)
	if w != 1.21 {
		t.Fatalf("+10 then +10 on 1.0 should compound to 1.21; got %v", w)
	}
	if single := ApplyRelativePercentage(20, 1.0); single == w {
		t.Fatalf("compounded result must differ from a single +20 (%v)", single)
	}
}

func TestApplyRelativePercentageNeverNegativeAndFourPlaces(t *testing.T) {
	values := []float64{0, 0.0001, 0.05, 0.333333, 1, 2.71828, 17.5, 99.99999}
	for r := -99; r <= 300; r++ {
		for _, v := range values {
			got := ApplyRelativePercentage(float64(r), v)
			if got < 0 {
				t.Fatalf("rule %d value %v produced negative weight %v", r, v, got)
			}
			scaled := got * 10000
			if math.Abs(scaled-math.Round(scaled)) > 1e-6 {
				t.Fatalf("rule %d value %v produced %v with more than 4 decimals", r, v, got)
			}
		}
	}
}

func TestApplyRelativePercentageClampsNegativeInput(t *testing.T) {
	if got := ApplyRelativePercentage(10, -5); got != 0 {
		t.Fatalf("negative result must clamp to 0; got %v", got)
	}
}

func TestRound(t *testing.T) {
	if got := Round(2.5, 0); got != 3 {
		t.Errorf("Round(2.5, 0) = %v, want 3", got)
	}
	if got := Round(0.00005, 4); got != 0.0001 {
		t.Errorf("Round(0.00005, 4) = %v, want 0.0001", got)
	}
	if got := Round(1.23456, 2); got != 1.23 {
		t.Errorf("Round(1.23456, 2) = %v, want 1.23", got)
	}
}

func TestProportionalRescale(t *testing.T) {
	got, err := ProportionalRescale(10, 12, 20)
	if err != nil {
		t.Fatal(err)
	}
	if got != 24 {
		t.Fatalf("ProportionalRescale(10, 12, 20) = %v, want 24", got)
	}

	// below the anchor scales down the same way
	got, err = ProportionalRescale(26, 13, 52)
	if err != nil {
		t.Fatal(err)
	}
	if got != 26 {
		t.Fatalf("ProportionalRescale(26, 13, 52) = %v, want 26", got)
	}

	// result is rounded to whole units
	got, err = ProportionalRescale(3, 4, 10)
	if err != nil {
		t.Fatal(err)
	}
	if got != 13 {
		t.Fatalf("ProportionalRescale(3, 4, 10) = %v, want 13", got)
	}
}

func TestProportionalRescaleZeroAnchor(t *testing.T) {
	got, err := ProportionalRescale(0, 12, 20)
	if !errors.Is(err, ErrZeroAnchor) {
		t.Fatalf("zero anchor must return ErrZeroAnchor; got %v", err)
	}
	if math.IsNaN(got) {
		t.Fatalf("zero anchor must not leak NaN")
	}
}

func TestProportionalRescaleNonFinite(t *testing.T) {
	if _, err := ProportionalRescale(10, math.NaN(), 20); !errors.Is(err, ErrNonFinite) {
		t.Fatalf("NaN value must return ErrNonFinite; got %v", err)
	}
	if _, err := ProportionalRescale(10, 12, math.Inf(1)); !errors.Is(err, ErrNonFinite) {
		t.Fatalf("Inf anchor must return ErrNonFinite; got %v", err)
	}
}
