// Package systemmodel assembles typed components into a static energy
// system description: a named aggregate with a discrete time horizon,
// node collections partitioned by variant and optional global
// constraint bounds. The description is declarative; solving it is the
// job of an external optimization framework.
package systemmodel

import "time"

// Timeframe is the discrete simulation horizon: Periods steps of Freq
// starting at Start.
type Timeframe struct {
	Start   time.Time     `yaml:"start"`
	Periods int           `yaml:"periods" validate:"min=0"`
	Freq    time.Duration `yaml:"freq"`
}

// Hourly returns a timeframe of hourly steps, the resolution every
// shipped example uses.
func Hourly(start time.Time, periods int) Timeframe {
	return Timeframe{Start: start, Periods: periods, Freq: time.Hour}
}

// Len returns the number of timesteps.
func (tf Timeframe) Len() int { return tf.Periods }

// Timestamps materializes the horizon's point in time for each step.
func (tf Timeframe) Timestamps() []time.Time {
	ts := make([]time.Time, tf.Periods)
	for i := range ts {
		ts[i] = tf.Start.Add(time.Duration(i) * tf.Freq)
	}
	return ts
}
