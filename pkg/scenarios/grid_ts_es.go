package scenarios

import (
	"fmt"

	"github.com/mathias-ammon/tessif-examples/pkg/components"
	"github.com/mathias-ammon/tessif-examples/pkg/profiles"
	"github.com/mathias-ammon/tessif-examples/pkg/systemmodel"
)

// CreateGridTSES returns the grid scenario where the voltage levels are
// coupled through unidirectional grid transformers instead of
// connectors. Each voltage level carries its own commodity, so power
// can only cross levels through one of the four transformers.
//
// transformerEfficiency must lie between 0 and 1; gridCapacity caps the
// transmission rate of every grid transformer (0 decouples the levels).
func CreateGridTSES(periods int, transformerEfficiency, gridCapacity float64) (*systemmodel.System, error) {
	timeframe := systemmodel.Hourly(kupferplatteStart, periods)

	pv, err := profiles.Column("Renewable_Energy.csv", "pv_load", periods)
	if err != nil {
		return nil, fmt.Errorf("loading pv profile: %w", err)
	}
	wOn, err := profiles.Column("Renewable_Energy.csv", "won_load", periods)
	if err != nil {
		return nil, fmt.Errorf("loading onshore wind profile: %w", err)
	}
	wOff, err := profiles.Column("Renewable_Energy.csv", "woff_load", periods)
	if err != nil {
		return nil, fmt.Errorf("loading offshore wind profile: %w", err)
	}
	st, err := profiles.Column("Renewable_Energy.csv", "st_load", periods)
	if err != nil {
		return nil, fmt.Errorf("loading solar thermal profile: %w", err)
	}
	hd, err := profiles.Column("Loads.csv", "household_demand", periods)
	if err != nil {
		return nil, fmt.Errorf("loading household demand: %w", err)
	}
	id, err := profiles.Column("Loads.csv", "industrial_demand", periods)
	if err != nil {
		return nil, fmt.Errorf("loading industrial demand: %w", err)
	}
	cd, err := profiles.Column("Loads.csv", "commercial_demand", periods)
	if err != nil {
		return nil, fmt.Errorf("loading commercial demand: %w", err)
	}
	dhd, err := profiles.Column("Loads.csv", "heat_demand", periods)
	if err != nil {
		return nil, fmt.Errorf("loading heat demand: %w", err)
	}
	ccd, err := profiles.Column("Car_Charging.csv", "cc_demand", periods)
	if err != nil {
		return nil, fmt.Errorf("loading car charging demand: %w", err)
	}

	// Low voltage and heat

	solarPanel := components.Source{
		Name:    "Solar Panel",
		Outputs: []string{"low-voltage-electricity"},
		Attributes: components.Attributes{
			Latitude:  42,
			Longitude: 42,
			Region:    "Here",
			Sector:    "Power",
			Carrier:   "electricity",
			NodeType:  "Renewable",
		},
		FlowRates: map[string]components.MinMax{
			"low-voltage-electricity": {Min: 0, Max: profiles.Max(pv)},
		},
		FlowCosts:     map[string]float64{"low-voltage-electricity": 60.85},
		FlowEmissions: map[string]float64{"low-voltage-electricity": 0},
		Timeseries: map[string]components.SeriesMinMax{
			"low-voltage-electricity": components.FixedSeries(pv...),
		},
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
		FlowRates:     map[string]components.MinMax{"fuel": {Min: 0, Max: components.Inf}},
		FlowCosts:     map[string]float64{"fuel": 0},
		FlowEmissions: map[string]float64{"fuel": 0},
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
		FlowRates:     map[string]components.MinMax{"fuel": {Min: 0, Max: components.Inf}},
		FlowCosts:     map[string]float64{"fuel": 0},
		FlowEmissions: map[string]float64{"fuel": 0},
	}

	bhkwGenerator := components.Transformer{
		Name:    "BHKW",
		Inputs:  []string{"fuel"},
		Outputs: []string{"low-voltage-electricity", "heat"},
		Conversions: map[components.Conversion]components.Factor{
			{From: "fuel", To: "low-voltage-electricity"}: components.Fixed(0.33),
			{From: "fuel", To: "heat"}:                    components.Fixed(0.52),
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
			"fuel":                    {Min: 0, Max: 25987.87879},
			"low-voltage-electricity": {Min: 0, Max: 8576},
			"heat":                    {Min: 0, Max: 13513.69697},
		},
		FlowCosts: map[string]float64{
			"fuel": 0, "low-voltage-electricity": 124.4, "heat": 31.1,
		},
		FlowEmissions: map[string]float64{
			"fuel": 0, "low-voltage-electricity": 0.1573, "heat": 0.0732,
		},
	}

	householdDemand := components.Sink{
		Name:   "Household Demand",
		Inputs: []string{"low-voltage-electricity"},
		Attributes: components.Attributes{
			Latitude:  42,
			Longitude: 42,
			Region:    "Here",
			Sector:    "Power",
			Carrier:   "electricity",
			NodeType:  "demand",
		},
		FlowRates: map[string]components.MinMax{
			"low-voltage-electricity": {Min: 0, Max: profiles.Max(hd)},
		},
		FlowCosts:     map[string]float64{"low-voltage-electricity": 0},
		FlowEmissions: map[string]float64{"low-voltage-electricity": 0},
		Timeseries: map[string]components.SeriesMinMax{
			"low-voltage-electricity": components.FixedSeries(hd...),
		},
	}

	commercialDemand := components.Sink{
		Name:   "Commercial Demand",
		Inputs: []string{"low-voltage-electricity"},
		Attributes: components.Attributes{
			Latitude:  42,
			Longitude: 42,
			Region:    "Here",
			Sector:    "Power",
			Carrier:   "electricity",
			NodeType:  "demand",
		},
		FlowRates: map[string]components.MinMax{
			"low-voltage-electricity": {Min: 0, Max: profiles.Max(cd)},
		},
		FlowCosts:     map[string]float64{"low-voltage-electricity": 0},
		FlowEmissions: map[string]float64{"low-voltage-electricity": 0},
		Timeseries: map[string]components.SeriesMinMax{
			"low-voltage-electricity": components.FixedSeries(cd...),
		},
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
		FlowRates: map[string]components.MinMax{
			"heat": {Min: 0, Max: profiles.Max(dhd)},
		},
		FlowCosts:     map[string]float64{"heat": 0},
		FlowEmissions: map[string]float64{"heat": 0},
		Timeseries: map[string]components.SeriesMinMax{
			"heat": components.FixedSeries(dhd...),
		},
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
			"BHKW.low-voltage-electricity",
			"Solar Panel.low-voltage-electricity",
			"Medium Low Transformator.low-voltage-electricity",
			"Pumped Storage LV.low-voltage-electricity",
		},
		Outputs: []string{
			"Household Demand.low-voltage-electricity",
			"Commercial Demand.low-voltage-electricity",
			"Low Medium Transformator.low-voltage-electricity",
			"Pumped Storage LV.low-voltage-electricity",
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
			"Power to Heat.heat",
			"HKW.heat",
		},
		Outputs: []string{"District Heating Demand.heat"},
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
		Outputs: []string{"medium-voltage-electricity"},
		Attributes: components.Attributes{
			Latitude:  42,
			Longitude: 42,
			Region:    "Here",
			Sector:    "power",
			Carrier:   "electricity",
			NodeType:  "Renewable",
		},
		FlowRates: map[string]components.MinMax{
			"medium-voltage-electricity": {Min: 0, Max: profiles.Max(wOn)},
		},
		FlowCosts:     map[string]float64{"medium-voltage-electricity": 61.1},
		FlowEmissions: map[string]float64{"medium-voltage-electricity": 0},
		Timeseries: map[string]components.SeriesMinMax{
			"medium-voltage-electricity": components.FixedSeries(wOn...),
		},
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
		FlowRates: map[string]components.MinMax{
			"heat": {Min: 0, Max: profiles.Max(st)},
		},
		FlowCosts:     map[string]float64{"heat": 73},
		FlowEmissions: map[string]float64{"heat": 0},
		Timeseries: map[string]components.SeriesMinMax{
			"heat": components.FixedSeries(st...),
		},
	}

	industrialDemand := components.Sink{
		Name:   "Industrial Demand",
		Inputs: []string{"medium-voltage-electricity"},
		Attributes: components.Attributes{
			Latitude:  42,
			Longitude: 42,
			Region:    "Here",
			Sector:    "Power",
			Carrier:   "electricity",
			NodeType:  "demand",
		},
		FlowRates: map[string]components.MinMax{
			"medium-voltage-electricity": {Min: 0, Max: profiles.Max(id)},
		},
		FlowCosts:     map[string]float64{"medium-voltage-electricity": 0},
		FlowEmissions: map[string]float64{"medium-voltage-electricity": 0},
		Timeseries: map[string]components.SeriesMinMax{
			"medium-voltage-electricity": components.FixedSeries(id...),
		},
	}

	carChargingStation := components.Sink{
		Name:   "Car charging Station",
		Inputs: []string{"medium-voltage-electricity"},
		Attributes: components.Attributes{
			Latitude:  42,
			Longitude: 42,
			Region:    "Here",
			Sector:    "Power",
			Carrier:   "electricity",
			NodeType:  "demand",
		},
		FlowRates: map[string]components.MinMax{
			"medium-voltage-electricity": {Min: 0, Max: profiles.Max(ccd)},
		},
		FlowCosts:     map[string]float64{"medium-voltage-electricity": 0},
		FlowEmissions: map[string]float64{"medium-voltage-electricity": 0},
		Timeseries: map[string]components.SeriesMinMax{
			"medium-voltage-electricity": components.FixedSeries(ccd...),
		},
	}

	powerToHeat := components.Transformer{
		Name:    "Power to Heat",
		Inputs:  []string{"medium-voltage-electricity"},
		Outputs: []string{"heat"},
		Conversions: map[components.Conversion]components.Factor{
			{From: "medium-voltage-electricity", To: "heat"}: components.Fixed(1.00),
		},
		Attributes: components.Attributes{
			Latitude:  42,
			Longitude: 42,
			Region:    "Here",
			Carrier:   "Hot Water",
			NodeType:  "transformer",
		},
		FlowRates: map[string]components.MinMax{
			"medium-voltage-electricity": {Min: 0, Max: components.Inf},
			"heat":                       {Min: 0, Max: components.Inf},
		},
		FlowCosts:     map[string]float64{"medium-voltage-electricity": 0, "heat": 0},
		FlowEmissions: map[string]float64{"medium-voltage-electricity": 0, "heat": 0},
	}

	mediumElectricityLine := components.Bus{
		Name: "Medium Voltage Powerline",
		Inputs: []string{
			"Onshore Wind Power.medium-voltage-electricity",
			"High Medium Transformator.medium-voltage-electricity",
			"Low Medium Transformator.medium-voltage-electricity",
			"Pumped Storage MV.medium-voltage-electricity",
		},
		Outputs: []string{
			"Car charging Station.medium-voltage-electricity",
			"Industrial Demand.medium-voltage-electricity",
			"Power to Heat.medium-voltage-electricity",
			"Medium High Transformator.medium-voltage-electricity",
			"Medium Low Transformator.medium-voltage-electricity",
			"Pumped Storage MV.medium-voltage-electricity",
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

	// High voltage

	offshoreWindPower := components.Source{
		Name:    "Offshore Wind Power",
		Outputs: []string{"high-voltage-electricity"},
		Attributes: components.Attributes{
			Latitude:  42,
			Longitude: 42,
			Region:    "Here",
			Sector:    "Power",
			Carrier:   "electricity",
			NodeType:  "Renewable",
		},
		FlowRates: map[string]components.MinMax{
			"high-voltage-electricity": {Min: 0, Max: profiles.Max(wOff)},
		},
		FlowCosts:     map[string]float64{"high-voltage-electricity": 106.4},
		FlowEmissions: map[string]float64{"high-voltage-electricity": 0},
		Timeseries: map[string]components.SeriesMinMax{
			"high-voltage-electricity": components.FixedSeries(wOff...),
		},
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
		FlowRates:     map[string]components.MinMax{"fuel": {Min: 0, Max: 102123.3}},
		FlowCosts:     map[string]float64{"fuel": 0},
		FlowEmissions: map[string]float64{"fuel": 0},
	}

	hkwGenerator := components.Transformer{
		Name:    "HKW",
		Inputs:  []string{"fuel"},
		Outputs: []string{"high-voltage-electricity", "heat"},
		Conversions: map[components.Conversion]components.Factor{
			{From: "fuel", To: "high-voltage-electricity"}: components.Fixed(0.24),
			{From: "fuel", To: "heat"}:                     components.Fixed(0.6),
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
			"fuel":                     {Min: 0, Max: 102123.3},
			"high-voltage-electricity": {Min: 0, Max: 24509.6},
			"heat":                     {Min: 0, Max: 61273.96},
		},
		FlowCosts: map[string]float64{
			"fuel": 0, "high-voltage-electricity": 80.65, "heat": 20.1625,
		},
		FlowEmissions: map[string]float64{
			"fuel": 0, "high-voltage-electricity": 0.5136, "heat": 0.293,
		},
	}

	hkwGenerator2 := components.Transformer{
		Name:    "HKW2",
		Inputs:  []string{"fuel"},
		Outputs: []string{"high-voltage-electricity"},
		Conversions: map[components.Conversion]components.Factor{
			{From: "fuel", To: "high-voltage-electricity"}: components.Fixed(0.43),
		},
		Attributes: components.Attributes{
			Latitude:  42,
			Longitude: 42,
			Region:    "Here",
			Sector:    "Coupled",
			Carrier:   "electricity",
			NodeType:  "connector",
		},
		FlowRates: map[string]components.MinMax{
			"fuel":                     {Min: 0, Max: 102123.3},
			"high-voltage-electricity": {Min: 0, Max: 43913},
		},
		FlowCosts:     map[string]float64{"fuel": 0, "high-voltage-electricity": 80.65},
		FlowEmissions: map[string]float64{"fuel": 0, "high-voltage-electricity": 0.5136},
	}

	gudGenerator := components.Transformer{
		Name:    "GuD",
		Inputs:  []string{"fuel"},
		Outputs: []string{"high-voltage-electricity"},
		Conversions: map[components.Conversion]components.Factor{
			{From: "fuel", To: "high-voltage-electricity"}: components.Fixed(0.59),
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
			"fuel":                     {Min: 0, Max: 45325.42373},
			"high-voltage-electricity": {Min: 0, Max: 26742},
		},
		FlowCosts:     map[string]float64{"fuel": 0, "high-voltage-electricity": 88.7},
		FlowEmissions: map[string]float64{"fuel": 0, "high-voltage-electricity": 0.3366},
	}

	coalSupplyLine := components.Bus{
		Name:    "Coal Supply Line",
		Inputs:  []string{"Coal Supply.fuel"},
		Outputs: []string{"HKW.fuel", "HKW2.fuel"},
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
			"Offshore Wind Power.high-voltage-electricity",
			"HKW2.high-voltage-electricity",
			"GuD.high-voltage-electricity",
			"HKW.high-voltage-electricity",
			"Medium High Transformator.high-voltage-electricity",
			"Pumped Storage HV.high-voltage-electricity",
		},
		Outputs: []string{
			"High Medium Transformator.high-voltage-electricity",
			"Pumped Storage HV.high-voltage-electricity",
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

	// Grid structure

	lowMediumTransformator := components.Transformer{
		Name:    "Low Medium Transformator",
		Inputs:  []string{"low-voltage-electricity"},
		Outputs: []string{"medium-voltage-electricity"},
		Conversions: map[components.Conversion]components.Factor{
			{From: "low-voltage-electricity", To: "medium-voltage-electricity"}: components.Fixed(transformerEfficiency),
		},
		Attributes: components.Attributes{
			Latitude:  42,
			Longitude: 42,
			Region:    "Here",
			Sector:    "Power",
			Carrier:   "electricity",
			NodeType:  "connector",
		},
		FlowRates: map[string]components.MinMax{
			"low-voltage-electricity":    {Min: 0, Max: gridCapacity},
			"medium-voltage-electricity": {Min: 0, Max: transformerEfficiency * gridCapacity},
		},
		FlowCosts: map[string]float64{
			"low-voltage-electricity": 0, "medium-voltage-electricity": 0,
		},
		FlowEmissions: map[string]float64{
			"low-voltage-electricity": 0, "medium-voltage-electricity": 0,
		},
	}

	mediumLowTransformator := components.Transformer{
		Name:    "Medium Low Transformator",
		Inputs:  []string{"medium-voltage-electricity"},
		Outputs: []string{"low-voltage-electricity"},
		Conversions: map[components.Conversion]components.Factor{
			{From: "medium-voltage-electricity", To: "low-voltage-electricity"}: components.Fixed(transformerEfficiency),
		},
		Attributes: components.Attributes{
			Latitude:  42,
			Longitude: 42,
			Region:    "Here",
			Sector:    "Power",
			Carrier:   "electricity",
			NodeType:  "connector",
		},
		FlowRates: map[string]components.MinMax{
			"low-voltage-electricity":    {Min: 0, Max: transformerEfficiency * gridCapacity},
			"medium-voltage-electricity": {Min: 0, Max: gridCapacity},
		},
		FlowCosts: map[string]float64{
			"low-voltage-electricity": 0, "medium-voltage-electricity": 0,
		},
		FlowEmissions: map[string]float64{
			"low-voltage-electricity": 0, "medium-voltage-electricity": 0,
		},
	}

	mediumHighTransformator := components.Transformer{
		Name:    "Medium High Transformator",
		Inputs:  []string{"medium-voltage-electricity"},
		Outputs: []string{"high-voltage-electricity"},
		Conversions: map[components.Conversion]components.Factor{
			{From: "medium-voltage-electricity", To: "high-voltage-electricity"}: components.Fixed(transformerEfficiency),
		},
		Attributes: components.Attributes{
			Latitude:  42,
			Longitude: 42,
			Region:    "Here",
			Sector:    "Power",
			Carrier:   "electricity",
			NodeType:  "connector",
		},
		FlowRates: map[string]components.MinMax{
			"high-voltage-electricity":   {Min: 0, Max: transformerEfficiency * gridCapacity},
			"medium-voltage-electricity": {Min: 0, Max: gridCapacity},
		},
		FlowCosts: map[string]float64{
			"high-voltage-electricity": 0, "medium-voltage-electricity": 0,
		},
		FlowEmissions: map[string]float64{
			"high-voltage-electricity": 0, "medium-voltage-electricity": 0,
		},
	}

	highMediumTransformator := components.Transformer{
		Name:    "High Medium Transformator",
		Inputs:  []string{"high-voltage-electricity"},
		Outputs: []string{"medium-voltage-electricity"},
		Conversions: map[components.Conversion]components.Factor{
			{From: "high-voltage-electricity", To: "medium-voltage-electricity"}: components.Fixed(transformerEfficiency),
		},
		Attributes: components.Attributes{
			Latitude:  42,
			Longitude: 42,
			Region:    "Here",
			Sector:    "Power",
			Carrier:   "electricity",
			NodeType:  "connector",
		},
		FlowRates: map[string]components.MinMax{
			"high-voltage-electricity":   {Min: 0, Max: gridCapacity},
			"medium-voltage-electricity": {Min: 0, Max: transformerEfficiency * gridCapacity},
		},
		FlowCosts: map[string]float64{
			"high-voltage-electricity": 0, "medium-voltage-electricity": 0,
		},
		FlowEmissions: map[string]float64{
			"high-voltage-electricity": 0, "medium-voltage-electricity": 0,
		},
	}

	// Storages

	pumpedStorageLV := components.Storage{
		Name:       "Pumped Storage LV",
		Input:      "low-voltage-electricity",
		Output:     "low-voltage-electricity",
		Capacity:   40000,
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
		FlowRates: map[string]components.MinMax{
			"low-voltage-electricity": {Min: 0, Max: 8600},
		},
		FlowEfficiencies: map[string]components.InOut{
			"low-voltage-electricity": {Inflow: 0.86, Outflow: 0.86},
		},
		FlowCosts:     map[string]float64{"low-voltage-electricity": 0},
		FlowEmissions: map[string]float64{"low-voltage-electricity": 0},
	}

	pumpedStorageMV := components.Storage{
		Name:       "Pumped Storage MV",
		Input:      "medium-voltage-electricity",
		Output:     "medium-voltage-electricity",
		Capacity:   40000,
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
		FlowRates: map[string]components.MinMax{
			"medium-voltage-electricity": {Min: 0, Max: 8600},
		},
		FlowEfficiencies: map[string]components.InOut{
			"medium-voltage-electricity": {Inflow: 0.86, Outflow: 0.86},
		},
		FlowCosts:     map[string]float64{"medium-voltage-electricity": 0},
		FlowEmissions: map[string]float64{"medium-voltage-electricity": 0},
	}

	pumpedStorageHV := components.Storage{
		Name:       "Pumped Storage HV",
		Input:      "high-voltage-electricity",
		Output:     "high-voltage-electricity",
		Capacity:   40000,
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
		FlowRates: map[string]components.MinMax{
			"high-voltage-electricity": {Min: 0, Max: 8600},
		},
		FlowEfficiencies: map[string]components.InOut{
			"high-voltage-electricity": {Inflow: 0.86, Outflow: 0.86},
		},
		FlowCosts:     map[string]float64{"high-voltage-electricity": 0},
		FlowEmissions: map[string]float64{"high-voltage-electricity": 0},
	}

	return systemmodel.New("Energy System Grid Transformers and Storages", timeframe).
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
		Transformers(
			bhkwGenerator,
			powerToHeat,
			gudGenerator,
			hkwGenerator,
			highMediumTransformator,
			lowMediumTransformator,
			mediumLowTransformator,
			mediumHighTransformator,
			hkwGenerator2,
		).
		Storages(pumpedStorageLV, pumpedStorageMV, pumpedStorageHV).
		Build()
}
