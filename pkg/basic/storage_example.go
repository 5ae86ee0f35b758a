package basic

import (
	"github.com/mathias-ammon/tessif-examples/pkg/components"
	"github.com/mathias-ammon/tessif-examples/pkg/systemmodel"
)

// CreateStorageExample returns a system where generation exceeds
// demand in the first timesteps and drops to zero afterwards, so an
// expandable storage has to bridge the gap.
func CreateStorageExample() (*systemmodel.System, error) {
	timeframe := systemmodel.Hourly(catalogStart, 5)

	demand := components.Sink{
		Name:       "Demand",
		Inputs:     []string{"electricity"},
		Attributes: components.Attributes{Carrier: "electricity", NodeType: "sink"},
		FlowRates:  map[string]components.MinMax{"electricity": {Min: 0, Max: 10}},
		Timeseries: map[string]components.SeriesMinMax{
			"electricity": components.FixedSeries(10, 10, 7, 10, 10),
		},
	}

	generator := components.Source{
		Name:       "Generator",
		Outputs:    []string{"electricity"},
		Attributes: components.Attributes{Carrier: "electricity", NodeType: "source"},
		FlowRates:  map[string]components.MinMax{"electricity": {Min: 0, Max: 10}},
		FlowCosts:  map[string]float64{"electricity": 2},
		Timeseries: map[string]components.SeriesMinMax{
			"electricity": components.FixedSeries(19, 19, 19, 0, 0),
		},
	}

	powerline := components.Bus{
		Name:       "Powerline",
		Inputs:     []string{"Generator.electricity", "Storage.electricity"},
		Outputs:    []string{"Demand.electricity", "Storage.electricity"},
		Attributes: components.Attributes{Carrier: "electricity", NodeType: "bus"},
	}

	storage := components.Storage{
		Name:       "Storage",
		Input:      "electricity",
		Output:     "electricity",
		Capacity:   0,
		InitialSOC: 0,
		Attributes: components.Attributes{Carrier: "electricity", NodeType: "storage"},
		FlowEfficiencies: map[string]components.InOut{
			"electricity": {Inflow: 0.9, Outflow: 0.9},
		},
		FlowCosts:      map[string]float64{"electricity": 1},
		FlowEmissions:  map[string]float64{"electricity": 0.5},
		Expandable:     map[string]bool{"capacity": true, "electricity": false},
		ExpansionCosts: map[string]float64{"capacity": 0, "electricity": 0},
		ExpansionLimits: map[string]components.MinMax{
			"capacity":    {Min: 0, Max: components.Inf},
			"electricity": {Min: 0, Max: components.Inf},
		},
	}

	return systemmodel.New("Storage-Energysystem-Example", timeframe).
		Busses(powerline).
		Sinks(demand).
		Sources(generator).
		Storages(storage).
		Build()
}
