package basic

import (
	"github.com/mathias-ammon/tessif-examples/pkg/components"
	"github.com/mathias-ammon/tessif-examples/pkg/systemmodel"
)

// CreateStorageFixedRatioExpansionExample returns the storage bridging
// topology with capacity and flow expansion coupled by a fixed ratio.
func CreateStorageFixedRatioExpansionExample() (*systemmodel.System, error) {
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
		FlowCosts:  map[string]float64{"electricity": 0},
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
		Capacity:   1,
		InitialSOC: 0,
		Attributes: components.Attributes{Carrier: "electricity", NodeType: "storage"},
		FlowRates:  map[string]components.MinMax{"electricity": {Min: 0, Max: 0.1}},
		FlowEfficiencies: map[string]components.InOut{
			"electricity": {Inflow: 0.95, Outflow: 0.89},
		},
		FlowCosts:            map[string]float64{"electricity": 1},
		FlowEmissions:        map[string]float64{"electricity": 0.5},
		Expandable:           map[string]bool{"capacity": true, "electricity": true},
		FixedExpansionRatios: map[string]bool{"electricity": true},
		ExpansionCosts:       map[string]float64{"capacity": 2, "electricity": 0},
		ExpansionLimits: map[string]components.MinMax{
			"capacity":    {Min: 1, Max: components.Inf},
			"electricity": {Min: 0.1, Max: components.Inf},
		},
	}

	return systemmodel.New("Storage-Energysystem-Example", timeframe).
		Busses(powerline).
		Sinks(demand).
		Sources(generator).
		Storages(storage).
		Build()
}
