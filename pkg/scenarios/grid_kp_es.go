package scenarios

import (
	"fmt"
	"time"

	"github.com/mathias-ammon/tessif-examples/pkg/components"
	"github.com/mathias-ammon/tessif-examples/pkg/profiles"
	"github.com/mathias-ammon/tessif-examples/pkg/systemmodel"
)

var kupferplatteStart = time.Date(2030, time.October, 13, 0, 0, 0, 0, time.UTC)

// CreateGridKPES returns the copper plate grid scenario. Grid capacity
// is treated as unlimited, so the transformator connectors pass power
// between voltage levels without losses or rate limits.
//
// The bus wiring deliberately keeps references to nodes that were
// dropped from this variant (Battery, Heat Storage, Power Sink), so the
// returned system fails strict endpoint resolution.
func CreateGridKPES(periods int) (*systemmodel.System, error) {
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
		Outputs: []string{"electricity"},
		Attributes: components.Attributes{
			Latitude:  42,
			Longitude: 42,
			Region:    "Here",
			Sector:    "Power",
			Carrier:   "Electricity",
			NodeType:  "Renewable",
		},
		FlowRates: map[string]components.MinMax{
			"electricity": {Min: 0, Max: profiles.Max(pv)},
		},
		FlowCosts:     map[string]float64{"electricity": 60.85},
		FlowEmissions: map[string]float64{"electricity": 0},
		Timeseries: map[string]components.SeriesMinMax{
			"electricity": components.FixedSeries(pv...),
		},
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
		FlowRates:     map[string]components.MinMax{"fuel": {Min: 0, Max: 25987.87879}},
		FlowCosts:     map[string]float64{"fuel": 0},
		FlowEmissions: map[string]float64{"fuel": 0},
	}

	bhkwGenerator := components.Transformer{
		Name:    "BHKW",
		Inputs:  []string{"fuel"},
		Outputs: []string{"electricity", "heat"},
		Conversions: map[components.Conversion]components.Factor{
			{From: "fuel", To: "electricity"}: components.Fixed(0.33),
			{From: "fuel", To: "heat"}:        components.Fixed(0.52),
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
			"fuel":        {Min: 0, Max: 25987.87879},
			"electricity": {Min: 0, Max: 8576},
			"heat":        {Min: 0, Max: 13513.69697},
		},
		FlowCosts:     map[string]float64{"fuel": 0, "electricity": 124.4, "heat": 31.1},
		FlowEmissions: map[string]float64{"fuel": 0, "electricity": 0.1573, "heat": 0.0732},
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
		FlowRates: map[string]components.MinMax{
			"electricity": {Min: 0, Max: profiles.Max(hd)},
		},
		FlowCosts:     map[string]float64{"electricity": 0},
		FlowEmissions: map[string]float64{"electricity": 0},
		Timeseries: map[string]components.SeriesMinMax{
			"electricity": components.FixedSeries(hd...),
		},
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
		FlowRates: map[string]components.MinMax{
			"electricity": {Min: 0, Max: profiles.Max(cd)},
		},
		FlowCosts:     map[string]float64{"electricity": 0},
		FlowEmissions: map[string]float64{"electricity": 0},
		Timeseries: map[string]components.SeriesMinMax{
			"electricity": components.FixedSeries(cd...),
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
		FlowRates: map[string]components.MinMax{
			"electricity": {Min: 0, Max: profiles.Max(wOn)},
		},
		FlowCosts:     map[string]float64{"electricity": 61.1},
		FlowEmissions: map[string]float64{"electricity": 0},
		Timeseries: map[string]components.SeriesMinMax{
			"electricity": components.FixedSeries(wOn...),
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
		Inputs: []string{"electricity"},
		Attributes: components.Attributes{
			Latitude:  42,
			Longitude: 42,
			Region:    "Here",
			Sector:    "Power",
			Carrier:   "electricity",
			NodeType:  "demand",
		},
		FlowRates: map[string]components.MinMax{
			"electricity": {Min: 0, Max: profiles.Max(id)},
		},
		FlowCosts:     map[string]float64{"electricity": 0},
		FlowEmissions: map[string]float64{"electricity": 0},
		Timeseries: map[string]components.SeriesMinMax{
			"electricity": components.FixedSeries(id...),
		},
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
		FlowRates: map[string]components.MinMax{
			"electricity": {Min: 0, Max: profiles.Max(ccd)},
		},
		FlowCosts:     map[string]float64{"electricity": 0},
		FlowEmissions: map[string]float64{"electricity": 0},
		Timeseries: map[string]components.SeriesMinMax{
			"electricity": components.FixedSeries(ccd...),
		},
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
			Carrier:   "Hot Water",
			NodeType:  "transformer",
		},
		FlowRates: map[string]components.MinMax{
			"electricity": {Min: 0, Max: 50000},
			"heat":        {Min: 0, Max: 50000},
		},
		FlowCosts:     map[string]float64{"electricity": 0, "heat": 0},
		FlowEmissions: map[string]float64{"electricity": 0, "heat": 0},
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
		Inputs:  []string{"Medium Voltage Powerline", "Low Voltage Powerline"},
		Outputs: []string{"Medium Voltage Powerline", "Low Voltage Powerline"},
		Attributes: components.Attributes{
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
		FlowRates: map[string]components.MinMax{
			"electricity": {Min: 0, Max: profiles.Max(wOff)},
		},
		FlowCosts:     map[string]float64{"electricity": 106.4},
		FlowEmissions: map[string]float64{"electricity": 0},
		Timeseries: map[string]components.SeriesMinMax{
			"electricity": components.FixedSeries(wOff...),
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

	hkwGenerator := components.Transformer{
		Name:    "HKW",
		Inputs:  []string{"fuel"},
		Outputs: []string{"electricity", "heat"},
		Conversions: map[components.Conversion]components.Factor{
			{From: "fuel", To: "electricity"}: components.Fixed(0.24),
			{From: "fuel", To: "heat"}:        components.Fixed(0.6),
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
			"fuel":        {Min: 0, Max: 102123.3},
			"electricity": {Min: 0, Max: 24509.6},
			"heat":        {Min: 0, Max: 61273.96},
		},
		FlowCosts:     map[string]float64{"fuel": 0, "electricity": 80.65, "heat": 20.1625},
		FlowEmissions: map[string]float64{"fuel": 0, "electricity": 0.5136, "heat": 0.293},
	}

	hkwGenerator2 := components.Transformer{
		Name:    "HKW2",
		Inputs:  []string{"fuel"},
		Outputs: []string{"electricity"},
		Conversions: map[components.Conversion]components.Factor{
			{From: "fuel", To: "electricity"}: components.Fixed(0.43),
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
			"fuel":        {Min: 0, Max: 102123.3},
			"electricity": {Min: 0, Max: 43913},
		},
		FlowCosts:     map[string]float64{"fuel": 0, "electricity": 80.65},
		FlowEmissions: map[string]float64{"fuel": 0, "electricity": 0.5136},
	}

	gudGenerator := components.Transformer{
		Name:    "GuD",
		Inputs:  []string{"fuel"},
		Outputs: []string{"electricity"},
		Conversions: map[components.Conversion]components.Factor{
			{From: "fuel", To: "electricity"}: components.Fixed(0.59),
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
			"fuel":        {Min: 0, Max: 45325.42373},
			"electricity": {Min: 0, Max: 26742},
		},
		FlowCosts:     map[string]float64{"fuel": 0, "electricity": 88.7},
		FlowEmissions: map[string]float64{"fuel": 0, "electricity": 0.3366},
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
			"Offshore Wind Power.electricity",
			"GuD.electricity",
			"HKW.electricity",
			"HKW2.electricity",
		},
		Outputs: []string{"Power Sink.electricity"},
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
		Inputs:  []string{"Medium Voltage Powerline", "High Voltage Powerline"},
		Outputs: []string{"Medium Voltage Powerline", "High Voltage Powerline"},
		Attributes: components.Attributes{
			NodeType: "connector",
		},
	}

	return systemmodel.New(`Energy System Grid "Kupferplatte"`, timeframe).
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
			hkwGenerator2,
		).
		Connectors(lowMediumTransformator, highMediumTransformator).
		Build()
}
