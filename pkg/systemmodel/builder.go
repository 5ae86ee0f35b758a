package systemmodel

import (
	"errors"
	"fmt"

	"github.com/mathias-ammon/tessif-examples/pkg/components"
)

// Builder provides a fluent interface for assembling a System. Adding
// collections never fails on its own; Build performs the structural
// checks and reports the first problem encountered.
type Builder struct {
	sys System
	err error // captures first error for deferred checking
}

// New starts a system build with the given uid and timeframe. Global
// constraints default to the unconstrained set.
func New(uid string, tf Timeframe) *Builder {
	return &Builder{
		sys: System{
			UID:               uid,
			Timeframe:         tf,
			GlobalConstraints: DefaultGlobalConstraints(),
		},
	}
}

// Busses appends bus nodes.
func (b *Builder) Busses(busses ...components.Bus) *Builder {
	b.sys.Busses = append(b.sys.Busses, busses...)
	return b
}

// Sources appends source nodes.
func (b *Builder) Sources(sources ...components.Source) *Builder {
	b.sys.Sources = append(b.sys.Sources, sources...)
	return b
}

// Sinks appends sink nodes.
func (b *Builder) Sinks(sinks ...components.Sink) *Builder {
	b.sys.Sinks = append(b.sys.Sinks, sinks...)
	return b
}

// Transformers appends transformer nodes.
func (b *Builder) Transformers(transformers ...components.Transformer) *Builder {
	b.sys.Transformers = append(b.sys.Transformers, transformers...)
	return b
}

// CHPs appends combined heat and power nodes.
func (b *Builder) CHPs(chps ...components.CHP) *Builder {
	b.sys.CHPs = append(b.sys.CHPs, chps...)
	return b
}

// Storages appends storage nodes.
func (b *Builder) Storages(storages ...components.Storage) *Builder {
	b.sys.Storages = append(b.sys.Storages, storages...)
	return b
}

// Connectors appends connector nodes.
func (b *Builder) Connectors(connectors ...components.Connector) *Builder {
	b.sys.Connectors = append(b.sys.Connectors, connectors...)
	return b
}

// GlobalConstraints replaces the default constraint set.
func (b *Builder) GlobalConstraints(gc GlobalConstraints) *Builder {
	b.sys.GlobalConstraints = gc
	return b
}

// Merge copies every node of other into the system under construction.
// The timeframe and constraints of other are ignored.
func (b *Builder) Merge(other *System) *Builder {
	if other == nil {
		b.err = errors.New("cannot merge nil system")
		return b
	}
	b.sys.Busses = append(b.sys.Busses, other.Busses...)
	b.sys.Sources = append(b.sys.Sources, other.Sources...)
	b.sys.Sinks = append(b.sys.Sinks, other.Sinks...)
	b.sys.Transformers = append(b.sys.Transformers, other.Transformers...)
	b.sys.CHPs = append(b.sys.CHPs, other.CHPs...)
	b.sys.Storages = append(b.sys.Storages, other.Storages...)
	b.sys.Connectors = append(b.sys.Connectors, other.Connectors...)
	return b
}

// Build finalizes the system. It fails on an empty uid, a negative
// horizon, duplicate node names or any per-timestep series whose
// length does not match the timeframe.
func (b *Builder) Build() (*System, error) {
	if b.err != nil {
		return nil, b.err
	}
	if b.sys.UID == "" {
		return nil, errors.New("system uid must not be empty")
	}
	if b.sys.Timeframe.Periods < 0 {
		return nil, fmt.Errorf("timeframe periods must not be negative, got %d", b.sys.Timeframe.Periods)
	}
	if err := b.checkNames(); err != nil {
		return nil, err
	}
	if err := b.checkSeriesLengths(); err != nil {
		return nil, err
	}
	sys := b.sys
	return &sys, nil
}

func (b *Builder) checkNames() error {
	seen := make(map[string]bool)
	for _, n := range b.sys.Nodes() {
		if n.UID() == "" {
			return errors.New("node name must not be empty")
		}
		if seen[n.UID()] {
			return fmt.Errorf("duplicate node name %q", n.UID())
		}
		seen[n.UID()] = true
	}
	return nil
}

func (b *Builder) checkSeriesLengths() error {
	periods := b.sys.Timeframe.Periods

	checkTimeseries := func(name string, ts map[string]components.SeriesMinMax) error {
		for carrier, series := range ts {
			if len(series.Min) != periods || len(series.Max) != periods {
				return fmt.Errorf("node %q: timeseries for %q has %d/%d steps, timeframe has %d",
					name, carrier, len(series.Min), len(series.Max), periods)
			}
		}
		return nil
	}
	checkConversions := func(name string, conversions map[components.Conversion]components.Factor) error {
		for pair, factor := range conversions {
			if factor.IsVarying() && len(factor.Series()) != periods {
				return fmt.Errorf("node %q: conversion %s->%s has %d steps, timeframe has %d",
					name, pair.From, pair.To, len(factor.Series()), periods)
			}
		}
		return nil
	}
	checkSeries := func(name, field string, series []float64) error {
		if series != nil && len(series) != periods {
			return fmt.Errorf("node %q: %s has %d steps, timeframe has %d",
				name, field, len(series), periods)
		}
		return nil
	}

	for _, n := range b.sys.Sources {
		if err := checkTimeseries(n.Name, n.Timeseries); err != nil {
			return err
		}
	}
	for _, n := range b.sys.Sinks {
		if err := checkTimeseries(n.Name, n.Timeseries); err != nil {
			return err
		}
	}
	for _, n := range b.sys.Storages {
		if err := checkTimeseries(n.Name, n.Timeseries); err != nil {
			return err
		}
	}
	for _, n := range b.sys.Transformers {
		if err := checkTimeseries(n.Name, n.Timeseries); err != nil {
			return err
		}
		if err := checkConversions(n.Name, n.Conversions); err != nil {
			return err
		}
	}
	for _, n := range b.sys.CHPs {
		if err := checkTimeseries(n.Name, n.Timeseries); err != nil {
			return err
		}
		if err := checkConversions(n.Name, n.Conversions); err != nil {
			return err
		}
		if err := checkConversions(n.Name, n.ConversionFactorFullCondensation); err != nil {
			return err
		}
		for field, series := range map[string][]float64{
			"enthalpy_loss.min":              n.EnthalpyLoss.Min,
			"enthalpy_loss.max":              n.EnthalpyLoss.Max,
			"power_wo_dist_heat.min":         n.PowerWoDistHeat.Min,
			"power_wo_dist_heat.max":         n.PowerWoDistHeat.Max,
			"el_efficiency_wo_dist_heat.min": n.ElEfficiencyWoDistHeat.Min,
			"el_efficiency_wo_dist_heat.max": n.ElEfficiencyWoDistHeat.Max,
			"min_condenser_load":             n.MinCondenserLoad,
			"power_loss_index":               n.PowerLossIndex,
		} {
			if err := checkSeries(n.Name, field, series); err != nil {
				return err
			}
		}
	}
	return nil
}
