package basic

import (
	"github.com/mathias-ammon/tessif-examples/pkg/components"
	"github.com/mathias-ammon/tessif-examples/pkg/systemmodel"
)

// CreateVariableCHP returns a system comparing two combined heat and
// power formulations: one with a fixed full condensation factor and
// one parameterized as an extraction turbine with variable power to
// heat ratio.
func CreateVariableCHP() (*systemmodel.System, error) {
	const periods = 4
	timeframe := systemmodel.Hourly(catalogStart, periods)

	gasSupply := components.Source{
		Name:    "Gas Source",
		Outputs: []string{"gas"},
	}

	gasGrid := components.Bus{
		Name:    "Gas Grid",
		Inputs:  []string{"Gas Source.gas"},
		Outputs: []string{"CHP1.gas", "CHP2.gas"},
	}

	// conventional power supply is cheaper, but has emissions allocated to it
	chp1 := components.CHP{
		Transformer: components.Transformer{
			Name:    "CHP1",
			Inputs:  []string{"gas"},
			Outputs: []string{"electricity", "heat"},
			Conversions: map[components.Conversion]components.Factor{
				{From: "gas", To: "electricity"}: components.Fixed(0.3),
				{From: "gas", To: "heat"}:        components.Fixed(0.2),
			},
			FlowRates: map[string]components.MinMax{
				"electricity": {Min: 0, Max: 9},
				"heat":        {Min: 0, Max: 6},
				"gas":         {Min: 0, Max: components.Inf},
			},
			FlowCosts:     map[string]float64{"electricity": 3, "heat": 2, "gas": 0},
			FlowEmissions: map[string]float64{"electricity": 2, "heat": 3, "gas": 0},
		},
		ConversionFactorFullCondensation: map[components.Conversion]components.Factor{
			{From: "gas", To: "electricity"}: components.Fixed(0.5),
		},
	}

	chp2 := components.CHP{
		Transformer: components.Transformer{
			Name:          "CHP2",
			Inputs:        []string{"gas"},
			Outputs:       []string{"electricity", "heat"},
			FlowCosts:     map[string]float64{"electricity": 3, "heat": 2, "gas": 0},
			FlowEmissions: map[string]float64{"electricity": 2, "heat": 3, "gas": 0},
		},
		EnthalpyLoss: components.SeriesMinMax{
			Min: components.Repeat(1.0, periods),
			Max: components.Repeat(0.18, periods),
		},
		PowerWoDistHeat: components.SeriesMinMax{
			Min: components.Repeat(8, periods),
			Max: components.Repeat(20, periods),
		},
		ElEfficiencyWoDistHeat: components.SeriesMinMax{
			Min: components.Repeat(0.43, periods),
			Max: components.Repeat(0.53, periods),
		},
		MinCondenserLoad: components.Repeat(3, periods),
		PowerLossIndex:   components.Repeat(0.19, periods),
		BackPressure:     false,
	}

	backupPower := components.Source{
		Name:      "Backup Power",
		Outputs:   []string{"electricity"},
		FlowCosts: map[string]float64{"electricity": 10},
	}

	powerDemand := components.Sink{
		Name:      "Power Demand",
		Inputs:    []string{"electricity"},
		FlowRates: map[string]components.MinMax{"electricity": {Min: 20, Max: 20}},
	}

	powerLine := components.Bus{
		Name:       "Powerline",
		Inputs:     []string{"Backup Power.electricity", "CHP1.electricity", "CHP2.electricity"},
		Outputs:    []string{"Power Demand.electricity"},
		Attributes: components.Attributes{Sector: "Power"},
	}

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
		Name:       "Heat Grid",
		Inputs:     []string{"CHP1.heat", "CHP2.heat", "Backup Heat.heat"},
		Outputs:    []string{"Heat Demand.heat"},
		Attributes: components.Attributes{Sector: "Heat"},
	}

	return systemmodel.New("CHP_Example", timeframe).
		Busses(gasGrid, powerLine, heatGrid).
		CHPs(chp1, chp2).
		Sinks(powerDemand, heatDemand).
		Sources(gasSupply, backupPower, backupHeat).
		Build()
}
