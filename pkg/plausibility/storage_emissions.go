package plausibility

import (
	"github.com/mathias-ammon/tessif-examples/pkg/components"
	"github.com/mathias-ammon/tessif-examples/pkg/systemmodel"
)

// CreateStorageEmissions returns a single bus system where an emitting
// storage has to buffer the first timestep's oversupply under a global
// emission cap of 20 units.
func CreateStorageEmissions() (*systemmodel.System, error) {
	timeframe := systemmodel.Hourly(catalogStart, 4)

	constraints := systemmodel.DefaultGlobalConstraints()
	constraints.Name = "emissions_constraint"
	constraints.Emissions = 20

	demand := components.Sink{
		Name:      "Energy Demand Component",
		Inputs:    []string{"electricity"},
		FlowRates: map[string]components.MinMax{"electricity": {Min: 10, Max: 10}},
	}

	storage := components.Storage{
		Name:          "Energy Storage Component",
		Input:         "electricity",
		Output:        "electricity",
		Capacity:      100,
		InitialSOC:    0,
		FlowEmissions: map[string]float64{"electricity": 1},
	}

	// fixing flow rate to a timeseries helps parsing minimum flows
	source1 := components.Source{
		Name:      "Energy Source Component 1",
		Outputs:   []string{"electricity"},
		FlowRates: map[string]components.MinMax{"electricity": {Min: 0, Max: 100}},
		Timeseries: map[string]components.SeriesMinMax{
			"electricity": components.FixedSeries(110, 0, 0, 0),
		},
	}

	source2 := components.Source{
		Name:      "Energy Source Component 2",
		Outputs:   []string{"electricity"},
		FlowRates: map[string]components.MinMax{"electricity": {Min: 0, Max: 10}},
		FlowCosts: map[string]float64{"electricity": 1},
	}

	centralBus := components.Bus{
		Name: "Central Bus",
		Inputs: []string{
			"Energy Source Component 1.electricity",
			"Energy Source Component 2.electricity",
			"Energy Storage Component.electricity",
		},
		Outputs: []string{
			"Energy Storage Component.electricity",
			"Energy Demand Component.electricity",
		},
	}

	return systemmodel.New("Storage Emissions MSC", timeframe).
		Busses(centralBus).
		Sinks(demand).
		Sources(source1, source2).
		Storages(storage).
		GlobalConstraints(constraints).
		Build()
}
