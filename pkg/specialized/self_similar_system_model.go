// Package specialized holds system model variants built for dedicated
// investigations: self similar replication at configurable depth and
// renamed derivatives of the reference grid and CHP systems.
package specialized

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/mathias-ammon/tessif-examples/pkg/components"
	"github.com/mathias-ammon/tessif-examples/pkg/systemmodel"
)

var catalogStart = time.Date(1990, time.July, 13, 0, 0, 0, 0, time.UTC)

// UnitKind selects which fractal unit a self similar system model is
// replicated from.
type UnitKind string

// UnitMinimal is the only unit kind currently shipped.
const UnitMinimal UnitKind = "minimal"

// CreateSelfSimilarSystemModel returns a system obtained by repeating
// the chosen unit n times. Consecutive units are coupled one level
// down through a connector between their central busses, so n units
// yield n-1 connectors. A zero value timeframe defaults to five hourly
// steps; the same seed reproduces the same system.
func CreateSelfSimilarSystemModel(n int, timeframe systemmodel.Timeframe, unit UnitKind, seed int64) (*systemmodel.System, error) {
	if unit == "" {
		unit = UnitMinimal
	}
	if unit != UnitMinimal {
		return nil, fmt.Errorf("unknown unit kind %q", unit)
	}
	if timeframe == (systemmodel.Timeframe{}) {
		timeframe = systemmodel.Hourly(catalogStart, 5)
	}

	rng := rand.New(rand.NewSource(seed))
	builder := systemmodel.New(fmt.Sprintf("Self Similar System Model (n=%d)", n), timeframe)
	for i := 0; i < n; i++ {
		fractal, err := minimalESUnit(i, timeframe, rng)
		if err != nil {
			return nil, err
		}
		builder.Merge(fractal)
	}
	return builder.Build()
}

// CreateMinimalESUnit returns the n-th minimal fractal unit on its
// own: randomized demand and renewable output, slack source and sink,
// a fuel driven generator, a storage and the two connecting busses.
// Units with n > 0 additionally carry the connector coupling them to
// their predecessor's central bus.
func CreateMinimalESUnit(n int, timeframe systemmodel.Timeframe, seed int64) (*systemmodel.System, error) {
	if timeframe == (systemmodel.Timeframe{}) {
		timeframe = systemmodel.Hourly(catalogStart, 5)
	}
	return minimalESUnit(n, timeframe, rand.New(rand.NewSource(seed)))
}

func minimalESUnit(n int, timeframe systemmodel.Timeframe, rng *rand.Rand) (*systemmodel.System, error) {
	demand := float64(1 + rng.Intn(100))
	renewableOutput := float64(1 + rng.Intn(50))

	demandSink := components.Sink{
		Name:   fmt.Sprintf("Sink %d", n),
		Inputs: []string{"electricity"},
		FlowRates: map[string]components.MinMax{
			"electricity": {Min: demand, Max: demand},
		},
	}

	// the slack sink keeps randomized systems solvable
	excessSink := components.Sink{
		Name:      fmt.Sprintf("Excess Sink %d", n),
		Inputs:    []string{"electricity"},
		FlowCosts: map[string]float64{"electricity": 100},
	}

	excessSource := components.Source{
		Name:      fmt.Sprintf("Excess Source %d", n),
		Outputs:   []string{"electricity"},
		FlowCosts: map[string]float64{"electricity": 100},
	}

	renewableSource := components.Source{
		Name:       fmt.Sprintf("Renewable Source %d", n),
		Outputs:    []string{"electricity"},
		FlowCosts:  map[string]float64{"electricity": 5},
		Attributes: components.Attributes{NodeType: "Renewable", Carrier: "Electricity"},
		FlowRates: map[string]components.MinMax{
			"electricity": {Min: renewableOutput, Max: renewableOutput},
		},
		FlowEmissions: map[string]float64{"electricity": 0},
	}

	nonRenewableSource := components.Source{
		Name:      fmt.Sprintf("Non Renewable Source %d", n),
		Outputs:   []string{"fuel"},
		FlowCosts: map[string]float64{"fuel": 10},
	}

	powerGenerator := components.Transformer{
		Name:    fmt.Sprintf("Power Generator %d", n),
		Inputs:  []string{"fuel"},
		Outputs: []string{"electricity"},
		Conversions: map[components.Conversion]components.Factor{
			{From: "fuel", To: "electricity"}: components.Fixed(0.42),
		},
	}

	var connectors []components.Connector
	if n > 0 {
		previous := fmt.Sprintf("Central Bus %d", n-1)
		current := fmt.Sprintf("Central Bus %d", n)
		connectors = append(connectors, components.Connector{
			Name:       fmt.Sprintf("Connector %d", n),
			Interfaces: [2]string{previous, current},
			Inputs:     []string{previous, current},
			Outputs:    []string{previous, current},
		})
	}

	storage := components.Storage{
		Name:       fmt.Sprintf("Storage %d", n),
		Input:      "electricity",
		Output:     "electricity",
		Capacity:   1,
		InitialSOC: 1,
	}

	centralBus := components.Bus{
		Name: fmt.Sprintf("Central Bus %d", n),
		Inputs: []string{
			fmt.Sprintf("Excess Source %d.electricity", n),
			fmt.Sprintf("Storage %d.electricity", n),
			fmt.Sprintf("Renewable Source %d.electricity", n),
			fmt.Sprintf("Power Generator %d.electricity", n),
		},
		Outputs: []string{
			fmt.Sprintf("Excess Sink %d.electricity", n),
			fmt.Sprintf("Sink %d.electricity", n),
			fmt.Sprintf("Storage %d.electricity", n),
		},
	}

	fuelLine := components.Bus{
		Name:    fmt.Sprintf("Fuel Line %d", n),
		Inputs:  []string{fmt.Sprintf("Non Renewable Source %d.fuel", n)},
		Outputs: []string{fmt.Sprintf("Power Generator %d.fuel", n)},
	}

	return systemmodel.New(fmt.Sprintf("Minimum Self Similar System Model Unit %d", n), timeframe).
		Busses(centralBus, fuelLine).
		Sinks(demandSink, excessSink).
		Sources(excessSource, nonRenewableSource, renewableSource).
		Connectors(connectors...).
		Transformers(powerGenerator).
		Storages(storage).
		Build()
}
