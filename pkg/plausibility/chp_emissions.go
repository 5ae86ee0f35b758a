// Package plausibility holds small model scenario combinations whose
// optimum can be derived by hand, used to cross check how solver
// backends attribute emissions to coupled flows.
package plausibility

import (
	"time"

	"github.com/mathias-ammon/tessif-examples/pkg/components"
	"github.com/mathias-ammon/tessif-examples/pkg/systemmodel"
)

var catalogStart = time.Date(1990, time.July, 13, 0, 0, 0, 0, time.UTC)

// CreateCHPEmissions returns a combined heat and power system whose
// global emission cap of 54 units forces partial substitution by the
// emission free power and heat sources.
func CreateCHPEmissions() (*systemmodel.System, error) {
	timeframe := systemmodel.Hourly(catalogStart, 4)

	constraints := systemmodel.DefaultGlobalConstraints()
	constraints.Name = "emissions_constraint"
	constraints.Emissions = 54

	powerDemand := components.Sink{
		Name:      "Power Demand Component",
		Inputs:    []string{"electricity"},
		FlowRates: map[string]components.MinMax{"electricity": {Min: 10, Max: 10}},
	}

	heatDemand := components.Sink{
		Name:      "Heat Demand Component",
		Inputs:    []string{"hot_water"},
		FlowRates: map[string]components.MinMax{"hot_water": {Min: 8, Max: 8}},
	}

	chp := components.CHP{
		Transformer: components.Transformer{
			Name:    "CHP",
			Inputs:  []string{"gas"},
			Outputs: []string{"electricity", "hot_water"},
			Conversions: map[components.Conversion]components.Factor{
				{From: "gas", To: "electricity"}: components.Fixed(0.5),
				{From: "gas", To: "hot_water"}:   components.Fixed(0.4),
			},
			FlowRates: map[string]components.MinMax{
				"gas":         {Min: 0, Max: components.Inf},
				"electricity": {Min: 0, Max: 10},
				"hot_water":   {Min: 0, Max: 8},
			},
			FlowEmissions: map[string]float64{"electricity": 1, "hot_water": 1, "gas": 0},
		},
	}

	gasSource := components.Source{
		Name:      "Gas Commodity",
		Outputs:   []string{"gas"},
		FlowRates: map[string]components.MinMax{"gas": {Min: 0, Max: components.Inf}},
	}

	powerSource := components.Source{
		Name:      "Power Source Component",
		Outputs:   []string{"electricity"},
		FlowRates: map[string]components.MinMax{"electricity": {Min: 0, Max: 10}},
		FlowCosts: map[string]float64{"electricity": 1},
	}

	heatSource := components.Source{
		Name:      "Heat Source Component",
		Outputs:   []string{"hot_water"},
		FlowRates: map[string]components.MinMax{"hot_water": {Min: 0, Max: 8}},
		FlowCosts: map[string]float64{"hot_water": 1},
	}

	gasBus := components.Bus{
		Name:    "Gas Bus",
		Inputs:  []string{"Gas Commodity.gas"},
		Outputs: []string{"CHP.gas"},
	}

	powerBus := components.Bus{
		Name:    "Power Bus",
		Inputs:  []string{"Power Source Component.electricity", "CHP.electricity"},
		Outputs: []string{"Power Demand Component.electricity"},
	}

	heatBus := components.Bus{
		Name:    "Heat Bus",
		Inputs:  []string{"Heat Source Component.hot_water", "CHP.hot_water"},
		Outputs: []string{"Heat Demand Component.hot_water"},
	}

	return systemmodel.New("Chp Emissions MSC", timeframe).
		Busses(gasBus, powerBus, heatBus).
		Sinks(powerDemand, heatDemand).
		Sources(gasSource, powerSource, heatSource).
		CHPs(chp).
		GlobalConstraints(constraints).
		Build()
}
