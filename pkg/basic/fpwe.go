package basic

import (
	"github.com/mathias-ammon/tessif-examples/pkg/components"
	"github.com/mathias-ammon/tessif-examples/pkg/systemmodel"
)

// CreateFPWE returns the fully parameterized working example. Every
// optional field of every component is spelled out, which makes it the
// go-to system for exercising attribute handling end to end.
func CreateFPWE() (*systemmodel.System, error) {
	timeframe := systemmodel.Hourly(catalogStart, 3)

	solarPanel := components.Source{
		Name:    "Solar Panel",
		Outputs: []string{"electricity"},
		Attributes: components.Attributes{
			Latitude:  42,
			Longitude: 42,
			Region:    "Here",
			Sector:    "Power",
			Carrier:   "electricity",
			NodeType:  "Renewable",
		},
		AccumulatedAmounts: map[string]components.MinMax{
			"electricity": {Min: 0, Max: 1000},
		},
		FlowRates:     map[string]components.MinMax{"electricity": {Min: 20, Max: 20}},
		FlowCosts:     map[string]float64{"electricity": 0},
		FlowEmissions: map[string]float64{"electricity": 0},
		FlowGradients: map[string]components.PositiveNegative{
			"electricity": {Positive: 42, Negative: 42},
		},
		GradientCosts: map[string]components.PositiveNegative{
			"electricity": {Positive: 0, Negative: 0},
		},
		Timeseries: map[string]components.SeriesMinMax{
			"electricity": components.FixedSeries(12, 3, 7),
		},
		Expandable:     map[string]bool{"electricity": false},
		ExpansionCosts: map[string]float64{"electricity": 5},
		ExpansionLimits: map[string]components.MinMax{
			"electricity": {Min: 0, Max: components.Inf},
		},
		MILP:                  map[string]bool{"electricity": false},
		InitialStatus:         true,
		StatusInertia:         components.OnOff{On: 1, Off: 1},
		StatusChangingCosts:   components.OnOff{On: 0, Off: 0},
		NumberOfStatusChanges: components.OnOff{On: components.Inf, Off: 10},
		CostsForBeingActive:   0,
	}

	fuelSupply := components.Source{
		Name:    "Gas Station",
		Outputs: []string{"fuel"},
		Attributes: components.Attributes{
			Latitude:  42,
			Longitude: 42,
			Region:    "Here",
			Sector:    "Power",
			Carrier:   "Gas",
			NodeType:  "source",
		},
		AccumulatedAmounts: map[string]components.MinMax{
			"fuel": {Min: 0, Max: components.Inf},
		},
		FlowRates:     map[string]components.MinMax{"fuel": {Min: 0, Max: 100}},
		FlowCosts:     map[string]float64{"fuel": 10},
		FlowEmissions: map[string]float64{"fuel": 3},
		FlowGradients: map[string]components.PositiveNegative{
			"fuel": {Positive: 100, Negative: 100},
		},
		GradientCosts: map[string]components.PositiveNegative{
			"fuel": {Positive: 0, Negative: 0},
		},
		Expandable:     map[string]bool{"fuel": false},
		ExpansionCosts: map[string]float64{"fuel": 5},
		ExpansionLimits: map[string]components.MinMax{
			"fuel": {Min: 0, Max: components.Inf},
		},
		MILP:                  map[string]bool{"fuel": false},
		InitialStatus:         true,
		StatusInertia:         components.OnOff{On: 1, Off: 1},
		StatusChangingCosts:   components.OnOff{On: 0, Off: 0},
		NumberOfStatusChanges: components.OnOff{On: components.Inf, Off: 10},
		CostsForBeingActive:   0,
	}

	powerGenerator := components.Transformer{
		Name:    "Generator",
		Inputs:  []string{"fuel"},
		Outputs: []string{"electricity"},
		Conversions: map[components.Conversion]components.Factor{
			{From: "fuel", To: "electricity"}: components.Fixed(0.42),
		},
		Attributes: components.Attributes{
			Latitude:  42,
			Longitude: 42,
			Region:    "Here",
			Sector:    "Power",
			Carrier:   "electricity",
			NodeType:  "transformer",
		},
		FlowRates: map[string]components.MinMax{
			"fuel":        {Min: 0, Max: 50},
			"electricity": {Min: 0, Max: 15},
		},
		FlowCosts:     map[string]float64{"fuel": 0, "electricity": 10},
		FlowEmissions: map[string]float64{"fuel": 0, "electricity": 10},
		FlowGradients: map[string]components.PositiveNegative{
			"fuel":        {Positive: 50, Negative: 50},
			"electricity": {Positive: 15, Negative: 15},
		},
		GradientCosts: map[string]components.PositiveNegative{
			"fuel":        {Positive: 0, Negative: 0},
			"electricity": {Positive: 0, Negative: 0},
		},
		Expandable:     map[string]bool{"fuel": false, "electricity": false},
		ExpansionCosts: map[string]float64{"fuel": 0, "electricity": 0},
		ExpansionLimits: map[string]components.MinMax{
			"fuel":        {Min: 0, Max: components.Inf},
			"electricity": {Min: 0, Max: components.Inf},
		},
		MILP:                  map[string]bool{"electricity": false, "fuel": false},
		InitialStatus:         true,
		StatusInertia:         components.OnOff{On: 0, Off: 2},
		StatusChangingCosts:   components.OnOff{On: 0, Off: 0},
		NumberOfStatusChanges: components.OnOff{On: components.Inf, Off: 9},
		CostsForBeingActive:   0,
	}

	demand := components.Sink{
		Name:   "Demand",
		Inputs: []string{"electricity"},
		Attributes: components.Attributes{
			Latitude:  42,
			Longitude: 42,
			Region:    "Here",
			Sector:    "Power",
			Carrier:   "electricity",
			NodeType:  "demand",
		},
		AccumulatedAmounts: map[string]components.MinMax{
			"electricity": {Min: 0, Max: components.Inf},
		},
		FlowRates:     map[string]components.MinMax{"electricity": {Min: 11, Max: 11}},
		FlowCosts:     map[string]float64{"electricity": 0},
		FlowEmissions: map[string]float64{"electricity": 0},
		FlowGradients: map[string]components.PositiveNegative{
			"electricity": {Positive: 12, Negative: 12},
		},
		GradientCosts: map[string]components.PositiveNegative{
			"electricity": {Positive: 0, Negative: 0},
		},
		Expandable:     map[string]bool{"electricity": false},
		ExpansionCosts: map[string]float64{"electricity": 0},
		ExpansionLimits: map[string]components.MinMax{
			"electricity": {Min: 0, Max: components.Inf},
		},
		MILP:                  map[string]bool{"electricity": false},
		InitialStatus:         true,
		StatusInertia:         components.OnOff{On: 2, Off: 1},
		StatusChangingCosts:   components.OnOff{On: 0, Off: 0},
		NumberOfStatusChanges: components.OnOff{On: components.Inf, Off: 8},
		CostsForBeingActive:   0,
	}

	storage := components.Storage{
		Name:       "Battery",
		Input:      "electricity",
		Output:     "electricity",
		Capacity:   10,
		InitialSOC: 10,
		Attributes: components.Attributes{
			Latitude:  42,
			Longitude: 42,
			Region:    "Here",
			Sector:    "Power",
			Carrier:   "electricity",
			NodeType:  "storage",
		},
		IdleChanges: components.PositiveNegative{Positive: 0, Negative: 1},
		FlowRates:   map[string]components.MinMax{"electricity": {Min: 0, Max: 30}},
		FlowEfficiencies: map[string]components.InOut{
			"electricity": {Inflow: 1, Outflow: 1},
		},
		FlowCosts:     map[string]float64{"electricity": 0},
		FlowEmissions: map[string]float64{"electricity": 0},
		FlowGradients: map[string]components.PositiveNegative{
			"electricity": {Positive: components.Inf, Negative: components.Inf},
		},
		GradientCosts: map[string]components.PositiveNegative{
			"electricity": {Positive: 0, Negative: 0},
		},
		Expandable:     map[string]bool{"capacity": false, "electricity": false},
		ExpansionCosts: map[string]float64{"capacity": 2, "electricity": 0},
		ExpansionLimits: map[string]components.MinMax{
			"capacity":    {Min: 0, Max: components.Inf},
			"electricity": {Min: 0, Max: components.Inf},
		},
		MILP:                  map[string]bool{"electricity": false},
		InitialStatus:         true,
		StatusInertia:         components.OnOff{On: 0, Off: 2},
		StatusChangingCosts:   components.OnOff{On: 0, Off: 0},
		NumberOfStatusChanges: components.OnOff{On: components.Inf, Off: 42},
		CostsForBeingActive:   0,
	}

	fuelSupplyLine := components.Bus{
		Name:    "Pipeline",
		Inputs:  []string{"Gas Station.fuel"},
		Outputs: []string{"Generator.fuel"},
		Attributes: components.Attributes{
			Latitude:  42,
			Longitude: 42,
			Region:    "Here",
			Sector:    "Power",
			Carrier:   "gas",
			NodeType:  "bus",
		},
	}

	electricityLine := components.Bus{
		Name: "Powerline",
		Inputs: []string{
			"Generator.electricity",
			"Battery.electricity",
			"Solar Panel.electricity",
		},
		Outputs: []string{"Demand.electricity", "Battery.electricity"},
		Attributes: components.Attributes{
			Latitude:  42,
			Longitude: 42,
			Region:    "Here",
			Sector:    "Power",
			Carrier:   "electricity",
			NodeType:  "bus",
		},
	}

	return systemmodel.New("Fully_Parameterized_Working_Example", timeframe).
		Busses(fuelSupplyLine, electricityLine).
		Sinks(demand).
		Sources(fuelSupply, solarPanel).
		Transformers(powerGenerator).
		Storages(storage).
		GlobalConstraints(systemmodel.DefaultGlobalConstraints()).
		Build()
}
