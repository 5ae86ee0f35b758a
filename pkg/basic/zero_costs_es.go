package basic

import (
	"github.com/mathias-ammon/tessif-examples/pkg/components"
	"github.com/mathias-ammon/tessif-examples/pkg/systemmodel"
)

// CreateZeroCostsES returns the expansion topology with all specific
// costs zeroed, so the optimum is driven by the emission cap alone.
func CreateZeroCostsES() (*systemmodel.System, error) {
	timeframe := systemmodel.Hourly(catalogStart, 4)

	emittingSource := components.Source{
		Name:          "Emitting Source",
		Outputs:       []string{"electricity"},
		FlowEmissions: map[string]float64{"electricity": 1},
	}

	cappedRenewable := components.Source{
		Name:       "Capped Renewable",
		Outputs:    []string{"electricity"},
		FlowRates:  map[string]components.MinMax{"electricity": {Min: 0, Max: 2}},
		Expandable: map[string]bool{"electricity": true},
		ExpansionLimits: map[string]components.MinMax{
			"electricity": {Min: 2, Max: 4},
		},
	}

	uncapped := []float64{1, 2, 3, 1}

	uncappedRenewable := components.Source{
		Name:       "Uncapped Renewable",
		Outputs:    []string{"electricity"},
		FlowRates:  map[string]components.MinMax{"electricity": {Min: 0, Max: 1}},
		Expandable: map[string]bool{"electricity": true},
		Timeseries: map[string]components.SeriesMinMax{
			"electricity": components.FixedSeries(uncapped...),
		},
		ExpansionLimits: map[string]components.MinMax{
			"electricity": {Min: 3, Max: components.Inf},
		},
	}

	electricityLine := components.Bus{
		Name: "Powerline",
		Inputs: []string{
			"Emitting Source.electricity",
			"Capped Renewable.electricity",
			"Uncapped Renewable.electricity",
		},
		Outputs: []string{"Demand.electricity"},
	}

	demand := components.Sink{
		Name:      "Demand",
		Inputs:    []string{"electricity"},
		FlowRates: map[string]components.MinMax{"electricity": {Min: 10, Max: 10}},
	}

	constraints := systemmodel.DefaultGlobalConstraints()
	constraints.Emissions = 8

	return systemmodel.New("Zero Costs Example", timeframe).
		Busses(electricityLine).
		Sinks(demand).
		Sources(emittingSource, cappedRenewable, uncappedRenewable).
		GlobalConstraints(constraints).
		Build()
}
