package basic

import (
	"github.com/mathias-ammon/tessif-examples/pkg/components"
	"github.com/mathias-ammon/tessif-examples/pkg/systemmodel"
)

// CreateEmissionObjective returns a system where cheap but emitting
// supply chains compete against emission free wind power under a
// global emission cap of 60 units.
func CreateEmissionObjective() (*systemmodel.System, error) {
	timeframe := systemmodel.Hourly(catalogStart, 4)

	// first supply chain
	fuelSupply := components.Source{
		Name:          "Gas Station",
		Outputs:       []string{"fuel"},
		FlowEmissions: map[string]float64{"fuel": 1.5},
		FlowCosts:     map[string]float64{"fuel": 2},
	}

	fuelSupplyLine := components.Bus{
		Name:    "Pipeline",
		Inputs:  []string{"Gas Station.fuel"},
		Outputs: []string{"Generator.fuel"},
	}

	powerGenerator := components.Transformer{
		Name:    "Generator",
		Inputs:  []string{"fuel"},
		Outputs: []string{"electricity"},
		Conversions: map[components.Conversion]components.Factor{
			{From: "fuel", To: "electricity"}: components.Fixed(0.42),
		},
		FlowCosts:     map[string]float64{"electricity": 2, "fuel": 0},
		FlowEmissions: map[string]float64{"electricity": 3, "fuel": 0},
	}

	// second supply chain
	gasSupply := components.Source{
		Name:          "Gas Source",
		Outputs:       []string{"gas"},
		FlowEmissions: map[string]float64{"gas": 0.5},
		FlowCosts:     map[string]float64{"gas": 1},
	}

	gasGrid := components.Bus{
		Name:    "Gas Grid",
		Inputs:  []string{"Gas Source.gas"},
		Outputs: []string{"Gas Plant.gas"},
	}

	gasPlant := components.Transformer{
		Name:    "Gas Plant",
		Inputs:  []string{"gas"},
		Outputs: []string{"electricity"},
		Conversions: map[components.Conversion]components.Factor{
			{From: "gas", To: "electricity"}: components.Fixed(0.6),
		},
		FlowRates: map[string]components.MinMax{
			"electricity": {Min: 0, Max: 5},
			"gas":         {Min: 0, Max: components.Inf},
		},
		FlowCosts:     map[string]float64{"electricity": 1, "gas": 0},
		FlowEmissions: map[string]float64{"electricity": 2, "gas": 0},
	}

	// wind power is more expensive but has no emissions allocated to it
	windPower := components.Source{
		Name:      "Wind Power",
		Outputs:   []string{"electricity"},
		FlowCosts: map[string]float64{"electricity": 10},
	}

	demand := components.Sink{
		Name:      "Demand",
		Inputs:    []string{"electricity"},
		FlowRates: map[string]components.MinMax{"electricity": {Min: 10, Max: 10}},
	}

	electricityLine := components.Bus{
		Name: "Powerline",
		Inputs: []string{
			"Generator.electricity",
			"Wind Power.electricity",
			"Gas Plant.electricity",
		},
		Outputs: []string{"Demand.electricity"},
	}

	constraints := systemmodel.DefaultGlobalConstraints()
	constraints.Emissions = 60

	return systemmodel.New("Emission_Objective_Example", timeframe).
		Busses(fuelSupplyLine, electricityLine, gasGrid).
		Sinks(demand).
		Sources(fuelSupply, windPower, gasSupply).
		Transformers(powerGenerator, gasPlant).
		GlobalConstraints(constraints).
		Build()
}
