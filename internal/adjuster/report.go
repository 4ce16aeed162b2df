package adjuster

// Tier names the rule that wrote a weight.
type Tier string

const (
	TierGeneric  Tier = "generic"
	TierParent   Tier = "parent"
	TierSpecific Tier = "specific"
)

// Change records one weight write.
type Change struct {
	ID   string
	Name string
	Tier Tier
	Old  float64
	New  float64
}

// Report summarizes one catalog pass.
//
// Generic counts every item the blanket adjustment changed. Parent and
// Specific credit each item to the targeted tier that settled its final
// weight, so a parent change later replaced by a specific override counts as
// Specific only.
type Report struct {
	RunID string

	Generic  int
	Parent   int
	Specific int

	Blacklisted int // skipped by id or name
	Weightless  int // no weight field
	Malformed   int // weight present but NaN, infinite or negative

	Changes []Change
}

// Touched returns the number of distinct items whose weight was written.
func (r Report) Touched() int {
	seen := make(map[string]struct{}, len(r.Changes))
	for _, c := range r.Changes {
		seen[c.ID] = struct{}{}
	}
	return len(seen)
}
