// Package scenarios collects the larger reference system models. These
// span several voltage levels and energy sectors and are the ones used
// for cross-framework commitment and expansion studies.
package scenarios

import (
	"time"

	"github.com/mathias-ammon/tessif-examples/pkg/components"
	"github.com/mathias-ammon/tessif-examples/pkg/systemmodel"
)

var catalogStart = time.Date(1990, time.July, 13, 0, 0, 0, 0, time.UTC)

// CreateGridES returns the generic grid scenario. Three voltage levels
// are coupled through loss free transformator connectors, with a
// district heating sector fed by CHP, solar thermal and power to heat.
func CreateGridES() (*systemmodel.System, error) {
	return newGridSystem("my_energy_system")
}

// CreateGenericGrid returns the grid scenario under its catalog uid.
// The topology and parameterization match CreateGridES.
func CreateGenericGrid() (*systemmodel.System, error) {
	return newGridSystem("Generic_Grid")
}

func newGridSystem(uid string) (*systemmodel.System, error) {
	timeframe := systemmodel.Hourly(catalogStart, 3)

	// Low voltage and heat

	solarPanel := components.Source{
		Name:    "Solar Panel",
		Outputs: []string{"electricity"},
		Attributes: components.Attributes{
			Latitude:  42,
			Longitude: 42,
			Region:    "Here",
			Sector:    "Power",
			Carrier:   "Electricity",
			NodeType:  "Renewable",
		},
		AccumulatedAmounts: map[string]components.MinMax{
			"electricity": {Min: 0, Max: 1000},
		},
		FlowRates:     map[string]components.MinMax{"electricity": {Min: 0, Max: 25}},
		FlowCosts:     map[string]float64{"electricity": 0},
		FlowEmissions: map[string]float64{"electricity": 0},
		FlowGradients: map[string]components.PositiveNegative{
			"electricity": {Positive: 42, Negative: 42},
		},
		GradientCosts: map[string]components.PositiveNegative{
			"electricity": {Positive: 0, Negative: 0},
		},
		Timeseries: map[string]components.SeriesMinMax{
			"electricity": components.FixedSeries(12, 22, 7),
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

	gasSupply := components.Source{
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
		FlowRates:     map[string]components.MinMax{"fuel": {Min: 0, Max: 1000}},
		FlowCosts:     map[string]float64{"fuel": 10},
		FlowEmissions: map[string]float64{"fuel": 3},
		FlowGradients: map[string]components.PositiveNegative{
			"fuel": {Positive: 1000, Negative: 1000},
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

	biogasSupply := components.Source{
		Name:    "Biogas plant",
		Outputs: []string{"fuel"},
		Attributes: components.Attributes{
			Latitude:  42,
			Longitude: 42,
			Region:    "Here",
			Sector:    "Coupled",
			Carrier:   "Gas",
			NodeType:  "source",
		},
		AccumulatedAmounts: map[string]components.MinMax{
			"fuel": {Min: 0, Max: components.Inf},
		},
		FlowRates:     map[string]components.MinMax{"fuel": {Min: 0, Max: 1000}},
		FlowCosts:     map[string]float64{"fuel": 0},
		FlowEmissions: map[string]float64{"fuel": 0},
		FlowGradients: map[string]components.PositiveNegative{
			"fuel": {Positive: 1000, Negative: 1000},
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

	bhkwGenerator := components.Transformer{
		Name:    "BHKW",
		Inputs:  []string{"fuel"},
		Outputs: []string{"electricity", "heat"},
		Conversions: map[components.Conversion]components.Factor{
			{From: "fuel", To: "electricity"}: components.Fixed(0.35),
			{From: "fuel", To: "heat"}:        components.Fixed(0.55),
		},
		Attributes: components.Attributes{
			Latitude:  42,
			Longitude: 42,
			Region:    "Here",
			Sector:    "Coupled",
			Carrier:   "electricity",
			NodeType:  "transformer",
		},
		FlowRates: map[string]components.MinMax{
			"fuel":        {Min: 0, Max: 100},
			"electricity": {Min: 0, Max: 30},
			"heat":        {Min: 0, Max: 100},
		},
		FlowCosts:     map[string]float64{"fuel": 0, "electricity": 10, "heat": 5},
		FlowEmissions: map[string]float64{"fuel": 0, "electricity": 10, "heat": 5},
		FlowGradients: map[string]components.PositiveNegative{
			"fuel":        {Positive: 100, Negative: 100},
			"electricity": {Positive: 30, Negative: 30},
			"heat":        {Positive: 100, Negative: 100},
		},
		GradientCosts: map[string]components.PositiveNegative{
			"fuel":        {Positive: 0, Negative: 0},
			"electricity": {Positive: 0, Negative: 0},
			"heat":        {Positive: 0, Negative: 0},
		},
		Expandable:     map[string]bool{"fuel": false, "electricity": false, "heat": false},
		ExpansionCosts: map[string]float64{"fuel": 0, "electricity": 0, "heat": 0},
		ExpansionLimits: map[string]components.MinMax{
			"fuel":        {Min: 0, Max: components.Inf},
			"electricity": {Min: 0, Max: components.Inf},
			"heat":        {Min: 0, Max: components.Inf},
		},
		MILP:                  map[string]bool{"electricity": false, "fuel": false, "heat": false},
		InitialStatus:         true,
		StatusInertia:         components.OnOff{On: 0, Off: 1},
		StatusChangingCosts:   components.OnOff{On: 0, Off: 0},
		NumberOfStatusChanges: components.OnOff{On: components.Inf, Off: 9},
		CostsForBeingActive:   0,
	}

	householdDemand := components.Sink{
		Name:   "Household Demand",
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
		FlowRates:     map[string]components.MinMax{"electricity": {Min: 190, Max: 190}},
		FlowCosts:     map[string]float64{"electricity": 0},
		FlowEmissions: map[string]float64{"electricity": 0},
		FlowGradients: map[string]components.PositiveNegative{
			"electricity": {Positive: 200, Negative: 200},
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

	commercialDemand := components.Sink{
		Name:   "Commercial Demand",
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
		FlowRates:     map[string]components.MinMax{"electricity": {Min: 0, Max: 200}},
		FlowCosts:     map[string]float64{"electricity": 0},
		FlowEmissions: map[string]float64{"electricity": 0},
		FlowGradients: map[string]components.PositiveNegative{
			"electricity": {Positive: 200, Negative: 200},
		},
		GradientCosts: map[string]components.PositiveNegative{
			"electricity": {Positive: 0, Negative: 0},
		},
		Timeseries: map[string]components.SeriesMinMax{
			"electricity": components.FixedSeries(80, 20, 130),
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

	heatDemand := components.Sink{
		Name:   "District Heating Demand",
		Inputs: []string{"heat"},
		Attributes: components.Attributes{
			Latitude:  42,
			Longitude: 42,
			Region:    "Here",
			Sector:    "Heat",
			Carrier:   "hot Water",
			NodeType:  "demand",
		},
		AccumulatedAmounts: map[string]components.MinMax{
			"heat": {Min: 0, Max: components.Inf},
		},
		FlowRates:     map[string]components.MinMax{"heat": {Min: 300, Max: 500}},
		FlowCosts:     map[string]float64{"heat": 0},
		FlowEmissions: map[string]float64{"heat": 0},
		FlowGradients: map[string]components.PositiveNegative{
			"heat": {Positive: 500, Negative: 500},
		},
		GradientCosts: map[string]components.PositiveNegative{
			"heat": {Positive: 0, Negative: 0},
		},
		Timeseries: map[string]components.SeriesMinMax{
			"heat": components.FixedSeries(340, 300, 380),
		},
		Expandable:     map[string]bool{"heat": false},
		ExpansionCosts: map[string]float64{"heat": 0},
		ExpansionLimits: map[string]components.MinMax{
			"heat": {Min: 0, Max: components.Inf},
		},
		MILP:                  map[string]bool{"heat": false},
		InitialStatus:         true,
		StatusInertia:         components.OnOff{On: 2, Off: 1},
		StatusChangingCosts:   components.OnOff{On: 0, Off: 0},
		NumberOfStatusChanges: components.OnOff{On: components.Inf, Off: 8},
		CostsForBeingActive:   0,
	}

	batteryStorage := components.Storage{
		Name:       "Battery",
		Input:      "electricity",
		Output:     "electricity",
		Capacity:   20,
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

	gasSupplyLine := components.Bus{
		Name:    "Gaspipeline",
		Inputs:  []string{"Gas Station.fuel"},
		Outputs: []string{"GuD.fuel"},
		Attributes: components.Attributes{
			Latitude:  42,
			Longitude: 42,
			Region:    "Here",
			Sector:    "Power",
			Carrier:   "gas",
			NodeType:  "bus",
		},
	}

	biogasSupplyLine := components.Bus{
		Name:    "Biogas",
		Inputs:  []string{"Biogas plant.fuel"},
		Outputs: []string{"BHKW.fuel"},
		Attributes: components.Attributes{
			Latitude:  42,
			Longitude: 42,
			Region:    "Here",
			Sector:    "Coupled",
			Carrier:   "gas",
			NodeType:  "bus",
		},
	}

	lowElectricityLine := components.Bus{
		Name: "Low Voltage Powerline",
		Inputs: []string{
			"BHKW.electricity",
			"Battery.electricity",
			"Solar Panel.electricity",
		},
		Outputs: []string{
			"Household Demand.electricity",
			"Commercial Demand.electricity",
			"Battery.electricity",
		},
		Attributes: components.Attributes{
			Latitude:  42,
			Longitude: 42,
			Region:    "Here",
			Sector:    "Power",
			Carrier:   "electricity",
			NodeType:  "bus",
		},
	}

	heatLine := components.Bus{
		Name: "District Heating",
		Inputs: []string{
			"BHKW.heat",
			"Solar Thermal.heat",
			"Heat Storage.heat",
			"Power to Heat.heat",
			"HKW.heat",
		},
		Outputs: []string{
			"District Heating Demand.heat",
			"Heat Storage.heat",
		},
		Attributes: components.Attributes{
			Latitude:  42,
			Longitude: 42,
			Region:    "Here",
			Sector:    "Heat",
			Carrier:   "hot Water",
			NodeType:  "bus",
		},
	}

	// Medium voltage and heat

	onshoreWindPower := components.Source{
		Name:    "Onshore Wind Power",
		Outputs: []string{"electricity"},
		Attributes: components.Attributes{
			Latitude:  42,
			Longitude: 42,
			Region:    "Here",
			Sector:    "Power",
			Carrier:   "Electricity",
			NodeType:  "Renewable",
		},
		AccumulatedAmounts: map[string]components.MinMax{
			"electricity": {Min: 0, Max: 2000},
		},
		FlowRates:     map[string]components.MinMax{"electricity": {Min: 0, Max: 100}},
		FlowCosts:     map[string]float64{"electricity": 0},
		FlowEmissions: map[string]float64{"electricity": 0},
		FlowGradients: map[string]components.PositiveNegative{
			"electricity": {Positive: 100, Negative: 100},
		},
		GradientCosts: map[string]components.PositiveNegative{
			"electricity": {Positive: 0, Negative: 0},
		},
		Timeseries: map[string]components.SeriesMinMax{
			"electricity": components.FixedSeries(60, 80, 34),
		},
		Expandable:     map[string]bool{"electricity": false},
		ExpansionCosts: map[string]float64{"electricity": 8},
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

	solarThermal := components.Source{
		Name:    "Solar Thermal",
		Outputs: []string{"heat"},
		Attributes: components.Attributes{
			Latitude:  42,
			Longitude: 42,
			Region:    "Here",
			Sector:    "Heat",
			Carrier:   "Hot Water",
			NodeType:  "Renewable",
		},
		AccumulatedAmounts: map[string]components.MinMax{
			"heat": {Min: 0, Max: 1000},
		},
		FlowRates:     map[string]components.MinMax{"heat": {Min: 0, Max: 50}},
		FlowCosts:     map[string]float64{"heat": 0},
		FlowEmissions: map[string]float64{"heat": 0},
		FlowGradients: map[string]components.PositiveNegative{
			"heat": {Positive: 42, Negative: 42},
		},
		GradientCosts: map[string]components.PositiveNegative{
			"heat": {Positive: 0, Negative: 0},
		},
		Timeseries: map[string]components.SeriesMinMax{
			"heat": components.FixedSeries(24, 44, 14),
		},
		Expandable:     map[string]bool{"heat": false},
		ExpansionCosts: map[string]float64{"heat": 4},
		ExpansionLimits: map[string]components.MinMax{
			"heat": {Min: 0, Max: components.Inf},
		},
		MILP:                  map[string]bool{"heat": false},
		InitialStatus:         true,
		StatusInertia:         components.OnOff{On: 1, Off: 1},
		StatusChangingCosts:   components.OnOff{On: 0, Off: 0},
		NumberOfStatusChanges: components.OnOff{On: components.Inf, Off: 10},
		CostsForBeingActive:   0,
	}

	industrialDemand := components.Sink{
		Name:   "Industrial Demand",
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
		FlowRates:     map[string]components.MinMax{"electricity": {Min: 0, Max: 400}},
		FlowCosts:     map[string]float64{"electricity": 0},
		FlowEmissions: map[string]float64{"electricity": 0},
		FlowGradients: map[string]components.PositiveNegative{
			"electricity": {Positive: 400, Negative: 400},
		},
		GradientCosts: map[string]components.PositiveNegative{
			"electricity": {Positive: 0, Negative: 0},
		},
		Timeseries: map[string]components.SeriesMinMax{
			"electricity": components.FixedSeries(160, 160, 120),
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

	carChargingStation := components.Sink{
		Name:   "Car charging Station",
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
		FlowRates:     map[string]components.MinMax{"electricity": {Min: 0, Max: 1000}},
		FlowCosts:     map[string]float64{"electricity": 0},
		FlowEmissions: map[string]float64{"electricity": 0},
		FlowGradients: map[string]components.PositiveNegative{
			"electricity": {Positive: 1000, Negative: 1000},
		},
		GradientCosts: map[string]components.PositiveNegative{
			"electricity": {Positive: 0, Negative: 0},
		},
		Timeseries: map[string]components.SeriesMinMax{
			"electricity": components.FixedSeries(0, 0, 100),
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

	powerToHeat := components.Transformer{
		Name:    "Power to Heat",
		Inputs:  []string{"electricity"},
		Outputs: []string{"heat"},
		Conversions: map[components.Conversion]components.Factor{
			{From: "electricity", To: "heat"}: components.Fixed(1.00),
		},
		Attributes: components.Attributes{
			Latitude:  42,
			Longitude: 42,
			Region:    "Here",
			Sector:    "coupled",
			Carrier:   "Hot Water",
			NodeType:  "transformer",
		},
		FlowRates: map[string]components.MinMax{
			"electricity": {Min: 0, Max: 100},
			"heat":        {Min: 0, Max: 100},
		},
		FlowCosts:     map[string]float64{"electricity": 0, "heat": 1},
		FlowEmissions: map[string]float64{"electricity": 0, "heat": 1},
		FlowGradients: map[string]components.PositiveNegative{
			"electricity": {Positive: 100, Negative: 100},
			"heat":        {Positive: 100, Negative: 100},
		},
		GradientCosts: map[string]components.PositiveNegative{
			"electricity": {Positive: 0, Negative: 0},
			"heat":        {Positive: 0, Negative: 0},
		},
		Expandable:     map[string]bool{"electricity": false, "heat": false},
		ExpansionCosts: map[string]float64{"electricity": 0, "heat": 0},
		ExpansionLimits: map[string]components.MinMax{
			"electricity": {Min: 0, Max: components.Inf},
			"heat":        {Min: 0, Max: components.Inf},
		},
		MILP:                  map[string]bool{"electricity": false, "fuel": false, "heat": false},
		InitialStatus:         true,
		StatusInertia:         components.OnOff{On: 0, Off: 0},
		StatusChangingCosts:   components.OnOff{On: 0, Off: 0},
		NumberOfStatusChanges: components.OnOff{On: components.Inf, Off: 9},
		CostsForBeingActive:   0,
	}

	heatStorage := components.Storage{
		Name:       "Heat Storage",
		Input:      "heat",
		Output:     "heat",
		Capacity:   50,
		InitialSOC: 10,
		Attributes: components.Attributes{
			Latitude:  42,
			Longitude: 42,
			Region:    "Here",
			Sector:    "Heat",
			Carrier:   "Hot Water",
			NodeType:  "storage",
		},
		IdleChanges: components.PositiveNegative{Positive: 0, Negative: 0.15},
		FlowRates:   map[string]components.MinMax{"heat": {Min: 0, Max: 50}},
		FlowEfficiencies: map[string]components.InOut{
			"heat": {Inflow: 0.95, Outflow: 0.95},
		},
		FlowCosts:     map[string]float64{"heat": 0},
		FlowEmissions: map[string]float64{"heat": 0},
		FlowGradients: map[string]components.PositiveNegative{
			"heat": {Positive: components.Inf, Negative: components.Inf},
		},
		GradientCosts: map[string]components.PositiveNegative{
			"heat": {Positive: 0, Negative: 0},
		},
		Expandable:     map[string]bool{"capacity": false, "heat": false},
		ExpansionCosts: map[string]float64{"capacity": 2, "heat": 0},
		ExpansionLimits: map[string]components.MinMax{
			"capacity": {Min: 0, Max: components.Inf},
			"heat":     {Min: 0, Max: components.Inf},
		},
		MILP:                  map[string]bool{"heat": false},
		InitialStatus:         true,
		StatusInertia:         components.OnOff{On: 0, Off: 2},
		StatusChangingCosts:   components.OnOff{On: 0, Off: 0},
		NumberOfStatusChanges: components.OnOff{On: components.Inf, Off: 42},
		CostsForBeingActive:   0,
	}

	mediumElectricityLine := components.Bus{
		Name:   "Medium Voltage Powerline",
		Inputs: []string{"Onshore Wind Power.electricity"},
		Outputs: []string{
			"Car charging Station.electricity",
			"Industrial Demand.electricity",
			"Power to Heat.electricity",
		},
		Attributes: components.Attributes{
			Latitude:  42,
			Longitude: 42,
			Region:    "Here",
			Sector:    "Power",
			Carrier:   "electricity",
			NodeType:  "bus",
		},
	}

	lowMediumTransformator := components.Connector{
		Name: "Low Voltage Transformator",
		Interfaces: [2]string{
			"Medium Voltage Powerline",
			"Low Voltage Powerline",
		},
		Conversions: map[components.Conversion]float64{
			{From: "Medium Voltage Powerline", To: "Low Voltage Powerline"}: 1,
			{From: "Low Voltage Powerline", To: "Medium Voltage Powerline"}: 1,
		},
		Attributes: components.Attributes{
			Sector:   "power",
			NodeType: "connector",
		},
	}

	// High voltage

	offshoreWindPower := components.Source{
		Name:    "Offshore Wind Power",
		Outputs: []string{"electricity"},
		Attributes: components.Attributes{
			Latitude:  42,
			Longitude: 42,
			Region:    "Here",
			Sector:    "Power",
			Carrier:   "Electricity",
			NodeType:  "Renewable",
		},
		AccumulatedAmounts: map[string]components.MinMax{
			"electricity": {Min: 0, Max: 4000},
		},
		FlowRates:     map[string]components.MinMax{"electricity": {Min: 0, Max: 200}},
		FlowCosts:     map[string]float64{"electricity": 0},
		FlowEmissions: map[string]float64{"electricity": 0},
		FlowGradients: map[string]components.PositiveNegative{
			"electricity": {Positive: 200, Negative: 200},
		},
		GradientCosts: map[string]components.PositiveNegative{
			"electricity": {Positive: 0, Negative: 0},
		},
		Timeseries: map[string]components.SeriesMinMax{
			"electricity": components.FixedSeries(120, 140, 70),
		},
		Expandable:     map[string]bool{"electricity": false},
		ExpansionCosts: map[string]float64{"electricity": 9},
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

	coalSupply := components.Source{
		Name:    "Coal Supply",
		Outputs: []string{"fuel"},
		Attributes: components.Attributes{
			Latitude:  42,
			Longitude: 42,
			Region:    "Here",
			Sector:    "Coupled",
			Carrier:   "Coal",
			NodeType:  "source",
		},
		AccumulatedAmounts: map[string]components.MinMax{
			"fuel": {Min: 0, Max: components.Inf},
		},
		FlowRates:     map[string]components.MinMax{"fuel": {Min: 0, Max: 500}},
		FlowCosts:     map[string]float64{"fuel": 8},
		FlowEmissions: map[string]float64{"fuel": 5},
		FlowGradients: map[string]components.PositiveNegative{
			"fuel": {Positive: 500, Negative: 500},
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

	hkwGenerator := components.Transformer{
		Name:    "HKW",
		Inputs:  []string{"fuel"},
		Outputs: []string{"electricity", "heat"},
		Conversions: map[components.Conversion]components.Factor{
			{From: "fuel", To: "electricity"}: components.Fixed(0.35),
			{From: "fuel", To: "heat"}:        components.Fixed(0.53),
		},
		Attributes: components.Attributes{
			Latitude:  42,
			Longitude: 42,
			Region:    "Here",
			Sector:    "Coupled",
			Carrier:   "electricity",
			NodeType:  "transformer",
		},
		FlowRates: map[string]components.MinMax{
			"fuel":        {Min: 0, Max: 500},
			"electricity": {Min: 0, Max: 500},
			"heat":        {Min: 0, Max: 500},
		},
		FlowCosts:     map[string]float64{"fuel": 0, "electricity": 5, "heat": 5},
		FlowEmissions: map[string]float64{"fuel": 0, "electricity": 5, "heat": 5},
		FlowGradients: map[string]components.PositiveNegative{
			"fuel":        {Positive: 500, Negative: 500},
			"electricity": {Positive: 500, Negative: 500},
			"heat":        {Positive: 500, Negative: 500},
		},
		GradientCosts: map[string]components.PositiveNegative{
			"fuel":        {Positive: 0, Negative: 0},
			"electricity": {Positive: 0, Negative: 0},
			"heat":        {Positive: 0, Negative: 0},
		},
		Expandable:     map[string]bool{"fuel": false, "electricity": false, "heat": false},
		ExpansionCosts: map[string]float64{"fuel": 0, "electricity": 0, "heat": 0},
		ExpansionLimits: map[string]components.MinMax{
			"fuel":        {Min: 0, Max: components.Inf},
			"electricity": {Min: 0, Max: components.Inf},
			"heat":        {Min: 0, Max: components.Inf},
		},
		MILP:                  map[string]bool{"electricity": false, "fuel": false, "heat": false},
		InitialStatus:         true,
		StatusInertia:         components.OnOff{On: 0, Off: 1},
		StatusChangingCosts:   components.OnOff{On: 0, Off: 0},
		NumberOfStatusChanges: components.OnOff{On: components.Inf, Off: 9},
		CostsForBeingActive:   0,
	}

	gudGenerator := components.Transformer{
		Name:    "GuD",
		Inputs:  []string{"fuel"},
		Outputs: []string{"electricity"},
		Conversions: map[components.Conversion]components.Factor{
			{From: "fuel", To: "electricity"}: components.Fixed(0.6),
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
			"fuel":        {Min: 0, Max: 500},
			"electricity": {Min: 0, Max: 500},
		},
		FlowCosts:     map[string]float64{"fuel": 0, "electricity": 5},
		FlowEmissions: map[string]float64{"fuel": 0, "electricity": 5},
		FlowGradients: map[string]components.PositiveNegative{
			"fuel":        {Positive: 500, Negative: 500},
			"electricity": {Positive: 500, Negative: 500},
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

	pumpedStorage := components.Storage{
		Name:       "Pumped Storage",
		Input:      "electricity",
		Output:     "electricity",
		Capacity:   400,
		InitialSOC: 50,
		Attributes: components.Attributes{
			Latitude:  42,
			Longitude: 42,
			Region:    "Here",
			Sector:    "Power",
			Carrier:   "electricity",
			NodeType:  "storage",
		},
		IdleChanges: components.PositiveNegative{Positive: 0, Negative: 0},
		FlowRates:   map[string]components.MinMax{"electricity": {Min: 0, Max: 100}},
		FlowEfficiencies: map[string]components.InOut{
			"electricity": {Inflow: 0.9, Outflow: 0.9},
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

	coalSupplyLine := components.Bus{
		Name:    "Coal Supply Line",
		Inputs:  []string{"Coal Supply.fuel"},
		Outputs: []string{"HKW.fuel"},
		Attributes: components.Attributes{
			Latitude:  42,
			Longitude: 42,
			Region:    "Here",
			Sector:    "Coupled",
			Carrier:   "Coal",
			NodeType:  "bus",
		},
	}

	highElectricityLine := components.Bus{
		Name: "High Voltage Powerline",
		Inputs: []string{
			"Offshore Wind Power.electricity",
			"Pumped Storage.electricity",
			"GuD.electricity",
			"HKW.electricity",
		},
		Outputs: []string{"Pumped Storage.electricity"},
		Attributes: components.Attributes{
			Latitude:  42,
			Longitude: 42,
			Region:    "Here",
			Sector:    "Power",
			Carrier:   "electricity",
			NodeType:  "bus",
		},
	}

	highMediumTransformator := components.Connector{
		Name: "High Voltage Transformator",
		Interfaces: [2]string{
			"Medium Voltage Powerline",
			"High Voltage Powerline",
		},
		Conversions: map[components.Conversion]float64{
			{From: "Medium Voltage Powerline", To: "High Voltage Powerline"}: 1,
			{From: "High Voltage Powerline", To: "Medium Voltage Powerline"}: 1,
		},
		Attributes: components.Attributes{
			Sector:   "coupled",
			NodeType: "connector",
		},
	}

	return systemmodel.New(uid, timeframe).
		Busses(
			gasSupplyLine,
			lowElectricityLine,
			heatLine,
			mediumElectricityLine,
			highElectricityLine,
			coalSupplyLine,
			biogasSupplyLine,
		).
		Sinks(
			householdDemand,
			commercialDemand,
			heatDemand,
			industrialDemand,
			carChargingStation,
		).
		Sources(
			solarPanel,
			gasSupply,
			onshoreWindPower,
			offshoreWindPower,
			coalSupply,
			solarThermal,
			biogasSupply,
		).
		Transformers(bhkwGenerator, powerToHeat, gudGenerator, hkwGenerator).
		Storages(batteryStorage, heatStorage, pumpedStorage).
		Connectors(lowMediumTransformator, highMediumTransformator).
		Build()
}
