// Package stamina holds the host's player overweight thresholds.
package stamina

// Vector is one threshold pair: X is the light (low) value, Y the heavy (high) one.
type Vector struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
}

// Limits mirrors the overweight fields of the host's stamina block.
type Limits struct {
	BaseOverweightLimits      Vector `json:"BaseOverweightLimits" yaml:"BaseOverweightLimits"`
	WalkOverweightLimits      Vector `json:"WalkOverweightLimits" yaml:"WalkOverweightLimits"`
	WalkSpeedOverweightLimits Vector `json:"WalkSpeedOverweightLimits" yaml:"WalkSpeedOverweightLimits"`
	SprintOverweightLimits    Vector `json:"SprintOverweightLimits" yaml:"SprintOverweightLimits"`
}

// Light and Heavy return the base anchors.
func (l Limits) Light() float64 { return l.BaseOverweightLimits.X }
func (l Limits) Heavy() float64 { return l.BaseOverweightLimits.Y }
