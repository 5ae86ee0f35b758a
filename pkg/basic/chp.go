package basic

import (
	"github.com/mathias-ammon/tessif-examples/pkg/components"
	"github.com/mathias-ammon/tessif-examples/pkg/systemmodel"
)

// CreateCHP returns a combined heat and power example where a gas
// fired CHP competes against expensive backup power and heat sources.
func CreateCHP() (*systemmodel.System, error) {
	timeframe := systemmodel.Hourly(catalogStart, 4)

	gasSupply := components.Source{
		Name:    "Gas Source",
		Outputs: []string{"gas"},
	}

	gasGrid := components.Bus{
		Name:    "Gas Grid",
		Inputs:  []string{"Gas Source.gas"},
		Outputs: []string{"CHP.gas"},
	}

	// conventional power supply is cheaper, but has emissions allocated to it
	chp := components.Transformer{
		Name:    "CHP",
		Inputs:  []string{"gas"},
		Outputs: []string{"electricity", "heat"},
		Conversions: map[components.Conversion]components.Factor{
			{From: "gas", To: "electricity"}: components.Fixed(0.3),
			{From: "gas", To: "heat"}:        components.Fixed(0.2),
		},
		FlowCosts:     map[string]float64{"electricity": 3, "heat": 2, "gas": 0},
		FlowEmissions: map[string]float64{"electricity": 2, "heat": 3, "gas": 0},
	}

	// back up power, expensive
	backupPower := components.Source{
		Name:      "Backup Power",
		Outputs:   []string{"electricity"},
		FlowCosts: map[string]float64{"electricity": 10},
	}

	powerDemand := components.Sink{
		Name:      "Power Demand",
		Inputs:    []string{"electricity"},
		FlowRates: map[string]components.MinMax{"electricity": {Min: 10, Max: 10}},
	}

	powerLine := components.Bus{
		Name:    "Powerline",
		Inputs:  []string{"Backup Power.electricity", "CHP.electricity"},
		Outputs: []string{"Power Demand.electricity"},
	}

	// back up heat, expensive
	backupHeat := components.Source{
		Name:      "Backup Heat",
		Outputs:   []string{"heat"},
		FlowCosts: map[string]float64{"heat": 10},
	}

	heatDemand := components.Sink{
		Name:      "Heat Demand",
		Inputs:    []string{"heat"},
		FlowRates: map[string]components.MinMax{"heat": {Min: 10, Max: 10}},
	}

	heatGrid := components.Bus{
		Name:    "Heat Grid",
		Inputs:  []string{"CHP.heat", "Backup Heat.heat"},
		Outputs: []string{"Heat Demand.heat"},
	}

	return systemmodel.New("CHP_Example", timeframe).
		Busses(gasGrid, powerLine, heatGrid).
		Sinks(powerDemand, heatDemand).
		Sources(gasSupply, backupPower, backupHeat).
		Transformers(chp).
		Build()
}
