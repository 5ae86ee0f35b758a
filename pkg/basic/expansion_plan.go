package basic

import (
	"github.com/mathias-ammon/tessif-examples/pkg/components"
	"github.com/mathias-ammon/tessif-examples/pkg/systemmodel"
)

// CreateExpansionPlanExample returns a system where an emission cap
// forces capacity expansion of two renewable sources with differing
// expansion costs and limits.
func CreateExpansionPlanExample() (*systemmodel.System, error) {
	timeframe := systemmodel.Hourly(catalogStart, 4)

	// emitting source having no costs and no flow constraints but emissions
	emittingSource := components.Source{
		Name:          "Emitting Source",
		Outputs:       []string{"electricity"},
		FlowEmissions: map[string]float64{"electricity": 1},
	}

	// capped source with existing and max installed capacity plus
	// expansion costs
	cappedRenewable := components.Source{
		Name:           "Capped Renewable",
		Outputs:        []string{"electricity"},
		FlowRates:      map[string]components.MinMax{"electricity": {Min: 1, Max: 2}},
		FlowCosts:      map[string]float64{"electricity": 2},
		Expandable:     map[string]bool{"electricity": true},
		ExpansionCosts: map[string]float64{"electricity": 1},
		ExpansionLimits: map[string]components.MinMax{
			"electricity": {Min: 1, Max: 4},
		},
	}

	// uncapped source with an externally set timeseries; its expansion
	// starts at the series peak
	uncapped := []float64{1, 2, 3, 1}

	uncappedRenewable := components.Source{
		Name:           "Uncapped Renewable",
		Outputs:        []string{"electricity"},
		FlowCosts:      map[string]float64{"electricity": 2},
		Expandable:     map[string]bool{"electricity": true},
		ExpansionCosts: map[string]float64{"electricity": 2},
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
	constraints.Emissions = 20

	return systemmodel.New("Expansion Plan Example", timeframe).
		Busses(electricityLine).
		Sinks(demand).
		Sources(emittingSource, cappedRenewable, uncappedRenewable).
		GlobalConstraints(constraints).
		Build()
}
