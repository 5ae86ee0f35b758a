// Package components defines the typed building blocks of an energy
// system model: sources, sinks, transformers, storages, busses and
// connectors, together with the value vocabulary their flow attributes
// use. Components are plain data; they describe a system, they do not
// simulate it.
package components

import (
	"fmt"
	"math"
	"strings"

	"gopkg.in/yaml.v3"
)

// Inf marks a flow attribute as unbounded.
var Inf = math.Inf(1)

// MinMax bounds a scalar flow attribute from below and above.
type MinMax struct {
	Min float64 `yaml:"min"`
	Max float64 `yaml:"max"`
}

// PositiveNegative holds direction dependent values, e.g. flow
// gradients for rising and falling output.
type PositiveNegative struct {
	Positive float64 `yaml:"positive"`
	Negative float64 `yaml:"negative"`
}

// InOut holds values that differ between charging and discharging.
type InOut struct {
	Inflow  float64 `yaml:"inflow"`
	Outflow float64 `yaml:"outflow"`
}

// OnOff holds values tied to a component's operating status.
type OnOff struct {
	On  float64 `yaml:"on"`
	Off float64 `yaml:"off"`
}

// SeriesMinMax bounds a flow per timestep. Both series must have the
// same length as the system's timeframe.
type SeriesMinMax struct {
	Min []float64 `yaml:"min"`
	Max []float64 `yaml:"max"`
}

// FixedSeries pins a flow to the given per-timestep values, i.e. the
// lower and upper bound coincide.
func FixedSeries(values ...float64) SeriesMinMax {
	return SeriesMinMax{Min: values, Max: values}
}

// Repeat returns a series of n copies of v. Convenience for
// per-timestep parameters that happen to be constant.
func Repeat(v float64, n int) []float64 {
	s := make([]float64, n)
	for i := range s {
		s[i] = v
	}
	return s
}

// Conversion keys an efficiency factor by its input and output carrier.
type Conversion struct {
	From string
	To   string
}

// MarshalText renders the conversion as "from->to" so it can serve as
// a mapping key.
func (c Conversion) MarshalText() ([]byte, error) {
	return []byte(c.From + "->" + c.To), nil
}

// UnmarshalText parses the "from->to" form produced by MarshalText.
func (c *Conversion) UnmarshalText(text []byte) error {
	from, to, ok := strings.Cut(string(text), "->")
	if !ok {
		return fmt.Errorf("conversion %q is not of the form from->to", text)
	}
	c.From, c.To = from, to
	return nil
}

// Factor is a conversion efficiency, either constant over the whole
// horizon or given per timestep.
type Factor struct {
	value  float64
	series []float64
}

// Fixed returns a factor that is constant over the whole horizon.
func Fixed(v float64) Factor {
	return Factor{value: v}
}

// Varying returns a factor with one value per timestep.
func Varying(values ...float64) Factor {
	return Factor{series: values}
}

// IsVarying reports whether the factor changes per timestep.
func (f Factor) IsVarying() bool { return f.series != nil }

// Value returns the constant factor. For varying factors it returns
// the value of the first timestep.
func (f Factor) Value() float64 {
	if f.series != nil {
		return f.series[0]
	}
	return f.value
}

// Series returns the per-timestep values, or nil for constant factors.
func (f Factor) Series() []float64 { return f.series }

// At returns the factor at timestep t.
func (f Factor) At(t int) float64 {
	if f.series != nil {
		return f.series[t]
	}
	return f.value
}

// MarshalYAML renders constant factors as a scalar and varying ones as
// a sequence.
func (f Factor) MarshalYAML() (any, error) {
	if f.series != nil {
		return f.series, nil
	}
	return f.value, nil
}

// UnmarshalYAML accepts either a scalar or a sequence of floats.
func (f *Factor) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.SequenceNode {
		f.value = 0
		return node.Decode(&f.series)
	}
	f.series = nil
	return node.Decode(&f.value)
}
