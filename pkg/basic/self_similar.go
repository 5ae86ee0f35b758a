package basic

import (
	"fmt"
	"math/rand"

	"github.com/mathias-ammon/tessif-examples/pkg/components"
	"github.com/mathias-ammon/tessif-examples/pkg/systemmodel"
)

// CreateMSSESU returns the n-th minimum self similar energy system
// unit: a randomized demand sink, slack sink and source, a randomized
// renewable source, a fuel driven generator, a storage and the two
// busses wiring them up. Demand is drawn from [1, 100] and renewable
// output from [1, 50]; the same seed reproduces the same unit.
func CreateMSSESU(n int, seed int64) (*systemmodel.System, error) {
	rng := rand.New(rand.NewSource(seed))
	unit := newSelfSimilarUnit(n, rng)

	return systemmodel.New(fmt.Sprintf("Energy_System_%d", n), systemmodel.Hourly(catalogStart, 1)).
		Busses(unit.centralBus, unit.fuelLine).
		Sinks(unit.demandSink, unit.excessSink).
		Sources(unit.excessSource, unit.nonRenewableSource, unit.renewableSource).
		Connectors(unit.connectors...).
		Transformers(unit.powerGenerator).
		Storages(unit.storage).
		Build()
}

// CreateSelfSimilarEnergySystem repeats the minimum unit n times and
// couples consecutive units through a connector between their central
// busses, yielding n-1 connectors overall. A zero value timeframe
// defaults to a single hourly step.
func CreateSelfSimilarEnergySystem(n int, timeframe systemmodel.Timeframe, seed int64) (*systemmodel.System, error) {
	if timeframe == (systemmodel.Timeframe{}) {
		timeframe = systemmodel.Hourly(catalogStart, 1)
	}

	rng := rand.New(rand.NewSource(seed))
	builder := systemmodel.New(fmt.Sprintf("Self_Similar_Energy_System_(N=%d)", n), timeframe)
	for i := 0; i < n; i++ {
		unit := newSelfSimilarUnit(i, rng)
		builder.
			Busses(unit.centralBus, unit.fuelLine).
			Sinks(unit.demandSink, unit.excessSink).
			Sources(unit.excessSource, unit.nonRenewableSource, unit.renewableSource).
			Connectors(unit.connectors...).
			Transformers(unit.powerGenerator).
			Storages(unit.storage)
	}
	return builder.Build()
}

// selfSimilarUnit bundles the components of one fractal unit.
type selfSimilarUnit struct {
	demandSink         components.Sink
	excessSink         components.Sink
	excessSource       components.Source
	renewableSource    components.Source
	nonRenewableSource components.Source
	powerGenerator     components.Transformer
	storage            components.Storage
	centralBus         components.Bus
	fuelLine           components.Bus
	connectors         []components.Connector
}

func newSelfSimilarUnit(n int, rng *rand.Rand) selfSimilarUnit {
	demand := float64(1 + rng.Intn(100))
	renewableOutput := float64(1 + rng.Intn(50))

	unit := selfSimilarUnit{
		demandSink: components.Sink{
			Name:   fmt.Sprintf("sink_%d", n),
			Inputs: []string{"electricity"},
			FlowRates: map[string]components.MinMax{
				"electricity": {Min: demand, Max: demand},
			},
		},
		// the slack sink keeps randomized systems solvable
		excessSink: components.Sink{
			Name:      fmt.Sprintf("excess_sink_%d", n),
			Inputs:    []string{"electricity"},
			FlowCosts: map[string]float64{"electricity": 100},
		},
		excessSource: components.Source{
			Name:      fmt.Sprintf("excess_source_%d", n),
			Outputs:   []string{"electricity"},
			FlowCosts: map[string]float64{"electricity": 100},
		},
		renewableSource: components.Source{
			Name:       fmt.Sprintf("renewable_source_%d", n),
			Outputs:    []string{"electricity"},
			FlowCosts:  map[string]float64{"electricity": 5},
			Attributes: components.Attributes{NodeType: "Renewable", Carrier: "Electricity"},
			FlowRates: map[string]components.MinMax{
				"electricity": {Min: renewableOutput, Max: renewableOutput},
			},
			FlowEmissions: map[string]float64{"electricity": 0},
		},
		nonRenewableSource: components.Source{
			Name:      fmt.Sprintf("non_renewable_source_%d", n),
			Outputs:   []string{"fuel"},
			FlowCosts: map[string]float64{"fuel": 10},
		},
		powerGenerator: components.Transformer{
			Name:    fmt.Sprintf("power_generator_%d", n),
			Inputs:  []string{"fuel"},
			Outputs: []string{"electricity"},
			Conversions: map[components.Conversion]components.Factor{
				{From: "fuel", To: "electricity"}: components.Fixed(0.42),
			},
		},
		storage: components.Storage{
			Name:       fmt.Sprintf("storage_%d", n),
			Input:      "electricity",
			Output:     "electricity",
			Capacity:   1,
			InitialSOC: 1,
		},
		centralBus: components.Bus{
			Name: fmt.Sprintf("central_bus_%d", n),
			Inputs: []string{
				fmt.Sprintf("excess_source_%d.electricity", n),
				fmt.Sprintf("storage_%d.electricity", n),
				fmt.Sprintf("renewable_source_%d.electricity", n),
				fmt.Sprintf("power_generator_%d.electricity", n),
			},
			Outputs: []string{
				fmt.Sprintf("excess_sink_%d.electricity", n),
				fmt.Sprintf("sink_%d.electricity", n),
				fmt.Sprintf("storage_%d.electricity", n),
			},
		},
		fuelLine: components.Bus{
			Name:    fmt.Sprintf("fuel_line_%d", n),
			Inputs:  []string{fmt.Sprintf("non_renewable_source_%d.fuel", n)},
			Outputs: []string{fmt.Sprintf("power_generator_%d.fuel", n)},
		},
	}

	// the 0th unit has no predecessor to couple to
	if n > 0 {
		previous := fmt.Sprintf("central_bus_%d", n-1)
		current := fmt.Sprintf("central_bus_%d", n)
		unit.connectors = []components.Connector{{
			Name:       fmt.Sprintf("connector_%d", n-1),
			Interfaces: [2]string{previous, current},
			Inputs:     []string{previous, current},
			Outputs:    []string{previous, current},
		}}
	}
	return unit
}
