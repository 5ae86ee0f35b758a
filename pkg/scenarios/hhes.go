package scenarios

import (
	"fmt"
	"time"

	"github.com/mathias-ammon/tessif-examples/pkg/components"
	"github.com/mathias-ammon/tessif-examples/pkg/economics"
	"github.com/mathias-ammon/tessif-examples/pkg/profiles"
	"github.com/mathias-ammon/tessif-examples/pkg/systemmodel"
)

var hamburgStart = time.Date(2019, time.January, 1, 0, 0, 0, 0, time.UTC)

// CreateHHES returns the Hamburg energy system scenario. It models the
// city's 2019 power plant park on measured solar, wind, electricity and
// heat profiles, with annuity based expansion costs for the renewable
// and power to heat options.
func CreateHHES(periods int) (*systemmodel.System, error) {
	return NewHamburgSystem(periods)
}

// NewHamburgSystem builds the shared Hamburg plant park construction.
func NewHamburgSystem(periods int) (*systemmodel.System, error) {
	timeframe := systemmodel.Hourly(hamburgStart, periods)

	pvHH, err := profiles.Series("solar_HH_2019.csv", periods)
	if err != nil {
		return nil, fmt.Errorf("loading solar profile: %w", err)
	}
	woHH, err := profiles.Series("wind_HH_2019.csv", periods)
	if err != nil {
		return nil, fmt.Errorf("loading wind profile: %w", err)
	}
	deHH, err := profiles.Column("el_demand_HH_2019.csv", "Last (MW)", periods)
	if err != nil {
		return nil, fmt.Errorf("loading electricity demand: %w", err)
	}
	thHH, err := profiles.Column("th_demand_HH_2019.csv", "actual_total_load", periods)
	if err != nil {
		return nil, fmt.Errorf("loading heat demand: %w", err)
	}

	// Every plant starts shut down and pays nothing for staying active.
	inStat := false
	cfba := 0.0

	constraints := systemmodel.GlobalConstraints{
		Name:      "2019",
		Emissions: components.Inf,
		Resources: components.Inf,
		Material:  components.Inf,
	}

	// Fossil sources

	gass := components.Source{
		Name:    "gas supply",
		Outputs: []string{"gas"},
		Attributes: components.Attributes{
			Region:    "HH",
			NodeType:  "gas_supply",
			Component: "source",
			Sector:    "coupled",
			Carrier:   "gas",
		},
		FlowEmissions: map[string]float64{"gas": 0.2},
	}

	coals := components.Source{
		Name:    "coal supply",
		Outputs: []string{"coal"},
		Attributes: components.Attributes{
			Region:    "HH",
			NodeType:  "coal_supply",
			Component: "source",
			Sector:    "coupled",
			Carrier:   "coal",
		},
		FlowEmissions: map[string]float64{"coal": 0.34},
	}

	oils := components.Source{
		Name:    "oil supply",
		Outputs: []string{"oil"},
		Attributes: components.Attributes{
			Region:    "HH",
			NodeType:  "oil_supply",
			Component: "source",
			Sector:    "power",
			Carrier:   "oil",
		},
	}

	waste := components.Source{
		Name:    "waste",
		Outputs: []string{"waste"},
		Attributes: components.Attributes{
			Region:    "HH",
			NodeType:  "renewable",
			Component: "source",
			Sector:    "coupled",
			Carrier:   "waste",
		},
		FlowEmissions: map[string]float64{"waste": 0.0426},
	}

	// HKW ADM

	chp1 := components.Transformer{
		Name:    "chp1",
		Inputs:  []string{"gas"},
		Outputs: []string{"electricity", "hot_water"},
		Conversions: map[components.Conversion]components.Factor{
			{From: "gas", To: "electricity"}: components.Fixed(0.3773),
			{From: "gas", To: "hot_water"}:   components.Fixed(0.3),
		},
		Attributes: components.Attributes{
			Latitude:  53.51,
			Longitude: 9.94985,
			Region:    "HH",
			NodeType:  "HKW ADM",
			Component: "transformer",
			Sector:    "coupled",
			Carrier:   "gas",
		},
		FlowRates: map[string]components.MinMax{
			"gas":         {Min: 0, Max: components.Inf},
			"electricity": {Min: 0, Max: components.Inf},
			"hot_water":   {Min: 0, Max: components.Inf},
		},
		FlowCosts: map[string]float64{"gas": 0, "electricity": 90, "hot_water": 21.6},
		// emissions are attributed to the gas supply
		FlowEmissions:       map[string]float64{"gas": 0, "electricity": 0, "hot_water": 0},
		InitialStatus:       inStat,
		StatusInertia:       components.OnOff{On: 0, Off: 1},
		StatusChangingCosts: components.OnOff{On: 24, Off: 0},
		CostsForBeingActive: cfba,
	}

	// HKW Moorburg

	pp1 := components.Transformer{
		Name:    "pp1",
		Inputs:  []string{"coal"},
		Outputs: []string{"electricity"},
		Conversions: map[components.Conversion]components.Factor{
			{From: "coal", To: "electricity"}: components.Fixed(0.4625),
		},
		Attributes: components.Attributes{
			Latitude:  53.489,
			Longitude: 9.949,
			Region:    "HH",
			NodeType:  "HKW Moorburg Block A",
			Component: "transformer",
			Sector:    "power",
			Carrier:   "coal",
		},
		FlowRates: map[string]components.MinMax{
			"coal":        {Min: 0, Max: components.Inf},
			"electricity": {Min: 0, Max: 784},
		},
		FlowCosts:           map[string]float64{"coal": 0, "electricity": 82},
		FlowEmissions:       map[string]float64{"coal": 0, "electricity": 0.34 / 0.4625},
		InitialStatus:       inStat,
		StatusInertia:       components.OnOff{On: 0, Off: 7},
		StatusChangingCosts: components.OnOff{On: 49, Off: 0},
		CostsForBeingActive: cfba,
	}

	pp2 := components.Transformer{
		Name:    "pp2",
		Inputs:  []string{"coal"},
		Outputs: []string{"electricity"},
		Conversions: map[components.Conversion]components.Factor{
			{From: "coal", To: "electricity"}: components.Fixed(0.4625),
		},
		Attributes: components.Attributes{
			Latitude:  53.489,
			Longitude: 9.949,
			Region:    "HH",
			NodeType:  "HKW Moorburg Block B",
			Component: "transformer",
			Sector:    "power",
			Carrier:   "coal",
		},
		FlowRates: map[string]components.MinMax{
			"coal":        {Min: 0, Max: components.Inf},
			"electricity": {Min: 0, Max: 784},
		},
		FlowCosts:           map[string]float64{"coal": 0, "electricity": 82},
		FlowEmissions:       map[string]float64{"coal": 0, "electricity": 0.34 / 0.4625},
		InitialStatus:       inStat,
		StatusInertia:       components.OnOff{On: 0, Off: 7},
		StatusChangingCosts: components.OnOff{On: 49, Off: 0},
		CostsForBeingActive: cfba,
	}

	// HKW Tiefstack

	chp2 := components.Transformer{
		Name:    "chp2",
		Inputs:  []string{"gas"},
		Outputs: []string{"electricity", "hot_water"},
		Conversions: map[components.Conversion]components.Factor{
			{From: "gas", To: "electricity"}: components.Fixed(0.585),
			{From: "gas", To: "hot_water"}:   components.Fixed(0.40),
		},
		Attributes: components.Attributes{
			Latitude:  53.53,
			Longitude: 10.07,
			Region:    "HH",
			NodeType:  "HKW Tiefstack GuD",
			Component: "transformer",
			Sector:    "coupled",
			Carrier:   "gas",
		},
		FlowRates: map[string]components.MinMax{
			"gas":         {Min: 0, Max: components.Inf},
			"electricity": {Min: 0, Max: 123},
			"hot_water":   {Min: 0, Max: 180},
		},
		FlowCosts:           map[string]float64{"gas": 0, "electricity": 90, "hot_water": 18.9},
		FlowEmissions:       map[string]float64{"gas": 0, "electricity": 0, "hot_water": 0},
		InitialStatus:       inStat,
		StatusInertia:       components.OnOff{On: 0, Off: 5},
		StatusChangingCosts: components.OnOff{On: 40, Off: 0},
		CostsForBeingActive: cfba,
	}

	chp3 := components.Transformer{
		Name:    "chp3",
		Inputs:  []string{"coal"},
		Outputs: []string{"electricity", "hot_water"},
		Conversions: map[components.Conversion]components.Factor{
			{From: "coal", To: "electricity"}: components.Fixed(0.4075),
			{From: "coal", To: "hot_water"}:   components.Fixed(0.40),
		},
		Attributes: components.Attributes{
			Latitude:  53.53,
			Longitude: 10.06,
			Region:    "HH",
			NodeType:  "HKW Tiefstack Block 2",
			Component: "transformer",
			Sector:    "coupled",
			Carrier:   "coal",
		},
		FlowRates: map[string]components.MinMax{
			"coal":        {Min: 0, Max: components.Inf},
			"electricity": {Min: 0, Max: 188},
			"hot_water":   {Min: 0, Max: 293},
		},
		FlowCosts:           map[string]float64{"coal": 0, "electricity": 82, "hot_water": 19.68},
		FlowEmissions:       map[string]float64{"coal": 0, "electricity": 0, "hot_water": 0},
		InitialStatus:       inStat,
		StatusInertia:       components.OnOff{On: 0, Off: 7},
		StatusChangingCosts: components.OnOff{On: 49, Off: 0},
		CostsForBeingActive: cfba,
	}

	// Wedel GT

	pp3 := components.Transformer{
		Name:    "pp3",
		Inputs:  []string{"oil"},
		Outputs: []string{"electricity"},
		Conversions: map[components.Conversion]components.Factor{
			{From: "oil", To: "electricity"}: components.Fixed(0.3072),
		},
		Attributes: components.Attributes{
			Latitude:  53.5662,
			Longitude: 9.72864,
			Region:    "SH",
			NodeType:  "Wedel GT A",
			Component: "transformer",
			Sector:    "power",
			Carrier:   "oil",
		},
		FlowRates: map[string]components.MinMax{
			"oil":         {Min: 0, Max: components.Inf},
			"electricity": {Min: 0, Max: 50.5},
		},
		FlowCosts:           map[string]float64{"oil": 0, "electricity": 90},
		FlowEmissions:       map[string]float64{"oil": 0, "electricity": 0.28 / 0.3072},
		InitialStatus:       inStat,
		StatusInertia:       components.OnOff{On: 0, Off: 9},
		StatusChangingCosts: components.OnOff{On: 45, Off: 0},
		CostsForBeingActive: cfba,
	}

	pp4 := components.Transformer{
		Name:    "pp4",
		Inputs:  []string{"oil"},
		Outputs: []string{"electricity"},
		Conversions: map[components.Conversion]components.Factor{
			{From: "oil", To: "electricity"}: components.Fixed(0.3072),
		},
		Attributes: components.Attributes{
			Latitude:  53.5662,
			Longitude: 9.72864,
			Region:    "SH",
			NodeType:  "Wedel GT B",
			Component: "transformer",
			Sector:    "power",
			Carrier:   "oil",
		},
		FlowRates: map[string]components.MinMax{
			"oil":         {Min: 0, Max: components.Inf},
			"electricity": {Min: 0, Max: 50.5},
		},
		FlowCosts:           map[string]float64{"oil": 0, "electricity": 90},
		FlowEmissions:       map[string]float64{"oil": 0, "electricity": 0.28 / 0.3072},
		InitialStatus:       inStat,
		StatusInertia:       components.OnOff{On: 0, Off: 9},
		StatusChangingCosts: components.OnOff{On: 45, Off: 0},
		CostsForBeingActive: cfba,
	}

	// HKW Wedel

	chp4 := components.Transformer{
		Name:    "chp4",
		Inputs:  []string{"coal"},
		Outputs: []string{"electricity", "hot_water"},
		Conversions: map[components.Conversion]components.Factor{
			{From: "coal", To: "electricity"}: components.Fixed(0.4075),
			{From: "coal", To: "hot_water"}:   components.Fixed(0.40),
		},
		Attributes: components.Attributes{
			Latitude:  53.5667,
			Longitude: 9.72864,
			Region:    "SH",
			NodeType:  "HKW Wedel Block 1",
			Component: "transformer",
			Sector:    "coupled",
			Carrier:   "coal",
		},
		FlowRates: map[string]components.MinMax{
			"coal":        {Min: 0, Max: components.Inf},
			"electricity": {Min: 0, Max: 130},
			"hot_water":   {Min: 0, Max: 130},
		},
		FlowCosts:           map[string]float64{"coal": 0, "electricity": 82, "hot_water": 19.68},
		FlowEmissions:       map[string]float64{"coal": 0, "electricity": 0, "hot_water": 0},
		InitialStatus:       inStat,
		StatusInertia:       components.OnOff{On: 0, Off: 7},
		StatusChangingCosts: components.OnOff{On: 49, Off: 0},
		CostsForBeingActive: cfba,
	}

	chp5 := components.Transformer{
		Name:    "chp5",
		Inputs:  []string{"coal"},
		Outputs: []string{"electricity", "hot_water"},
		Conversions: map[components.Conversion]components.Factor{
			{From: "coal", To: "electricity"}: components.Fixed(0.4075),
			{From: "coal", To: "hot_water"}:   components.Fixed(0.40),
		},
		Attributes: components.Attributes{
			Latitude:  53.5667,
			Longitude: 9.72864,
			Region:    "SH",
			NodeType:  "HKW Wedel Block 2",
			Component: "transformer",
			Sector:    "coupled",
			Carrier:   "coal",
		},
		FlowRates: map[string]components.MinMax{
			"coal":        {Min: 0, Max: components.Inf},
			"electricity": {Min: 0, Max: 118},
			"hot_water":   {Min: 0, Max: 88},
		},
		FlowCosts:           map[string]float64{"coal": 0, "electricity": 82, "hot_water": 19.68},
		FlowEmissions:       map[string]float64{"coal": 0, "electricity": 0, "hot_water": 0},
		InitialStatus:       inStat,
		StatusInertia:       components.OnOff{On: 0, Off: 7},
		StatusChangingCosts: components.OnOff{On: 49, Off: 0},
		CostsForBeingActive: cfba,
	}

	// MVR waste combustion Rugenberger Damm

	chp6 := components.Transformer{
		Name:    "chp6",
		Inputs:  []string{"waste"},
		Outputs: []string{"electricity", "hot_water"},
		Conversions: map[components.Conversion]components.Factor{
			{From: "waste", To: "electricity"}: components.Fixed(0.06),
			{From: "waste", To: "hot_water"}:   components.Fixed(0.15),
		},
		Attributes: components.Attributes{
			Latitude:  53.52111,
			Longitude: 9.93339,
			Region:    "HH",
			NodeType:  "MVR Müllverwertung Rugenberger Damm",
			Component: "transformer",
			Sector:    "coupled",
			Carrier:   "waste",
		},
		FlowRates: map[string]components.MinMax{
			"waste":       {Min: 0, Max: components.Inf},
			"electricity": {Min: 0, Max: 24},
			"hot_water":   {Min: 0, Max: 70},
		},
		FlowCosts:           map[string]float64{"waste": 0, "electricity": 82, "hot_water": 20},
		FlowEmissions:       map[string]float64{"waste": 0, "electricity": 0, "hot_water": 0},
		InitialStatus:       inStat,
		StatusInertia:       components.OnOff{On: 0, Off: 9},
		StatusChangingCosts: components.OnOff{On: 40, Off: 0},
		CostsForBeingActive: cfba,
	}

	// Heizwerk Hafencity

	hp1 := components.Transformer{
		Name:    "hp1",
		Inputs:  []string{"gas"},
		Outputs: []string{"hot_water"},
		Conversions: map[components.Conversion]components.Factor{
			{From: "gas", To: "hot_water"}: components.Fixed(0.96666),
		},
		Attributes: components.Attributes{
			Latitude:  53.54106052,
			Longitude: 9.99590096,
			Region:    "HH",
			NodeType:  "Heizwerk Hafencity",
			Component: "transformer",
			Sector:    "heat",
			Carrier:   "gas",
		},
		FlowRates: map[string]components.MinMax{
			"gas":       {Min: 0, Max: components.Inf},
			"hot_water": {Min: 0, Max: 348},
		},
		FlowCosts:      map[string]float64{"gas": 0, "hot_water": 20},
		FlowEmissions:  map[string]float64{"gas": 0, "hot_water": 0.2 / 0.96666},
		Expandable:     map[string]bool{"gas": false, "hot_water": true},
		ExpansionCosts: map[string]float64{"gas": 0, "hot_water": 0},
		ExpansionLimits: map[string]components.MinMax{
			"gas":       {Min: 0, Max: components.Inf},
			"hot_water": {Min: 348, Max: components.Inf},
		},
	}

	// Biomass combined heat and power

	bmCHP := components.Transformer{
		Name:    "biomass chp",
		Inputs:  []string{"biomass"},
		Outputs: []string{"electricity", "hot_water"},
		Conversions: map[components.Conversion]components.Factor{
			{From: "biomass", To: "electricity"}: components.Fixed(48.4 / 126),
			{From: "biomass", To: "hot_water"}:   components.Fixed(1),
		},
		Attributes: components.Attributes{
			Latitude:  53.54106052,
			Longitude: 9.99590096,
			Region:    "HH",
			NodeType:  "Heizwerk Hafencity",
			Component: "transformer",
			Sector:    "heat",
			Carrier:   "gas",
		},
		FlowRates: map[string]components.MinMax{
			"biomass":     {Min: 0, Max: components.Inf},
			"electricity": {Min: 0, Max: 48.4},
			"hot_water":   {Min: 0, Max: 126},
		},
		FlowCosts: map[string]float64{"biomass": 0, "electricity": 61, "hot_water": 20},
		// emissions reallocated to the biomass supply
		FlowEmissions:       map[string]float64{"biomass": 0, "electricity": 0, "hot_water": 0},
		InitialStatus:       inStat,
		StatusInertia:       components.OnOff{On: 0, Off: 9},
		StatusChangingCosts: components.OnOff{On: 40, Off: 0},
	}

	// Renewables

	pv1 := components.Source{
		Name:    "pv1",
		Outputs: []string{"electricity"},
		Attributes: components.Attributes{
			Region:    "HH",
			NodeType:  "renewable",
			Component: "source",
			Sector:    "power",
			Carrier:   "solar",
		},
		FlowRates: map[string]components.MinMax{
			"electricity": {Min: 0, Max: profiles.Max(pvHH)},
		},
		FlowCosts:     map[string]float64{"electricity": 74},
		FlowEmissions: map[string]float64{"electricity": 0},
		Timeseries: map[string]components.SeriesMinMax{
			"electricity": components.FixedSeries(pvHH...),
		},
		Expandable: map[string]bool{"electricity": true},
		ExpansionCosts: map[string]float64{
			"electricity": economics.Annuity(1000000, 20, 0.05),
		},
		ExpansionLimits: map[string]components.MinMax{
			"electricity": {Min: profiles.Max(pvHH), Max: components.Inf},
		},
	}

	won1 := components.Source{
		Name:    "won1",
		Outputs: []string{"electricity"},
		Attributes: components.Attributes{
			Region:    "HH",
			NodeType:  "renewable",
			Component: "source",
			Sector:    "power",
			Carrier:   "wind",
		},
		FlowRates: map[string]components.MinMax{
			"electricity": {Min: 0, Max: profiles.Max(woHH)},
		},
		FlowCosts:     map[string]float64{"electricity": 61},
		FlowEmissions: map[string]float64{"electricity": 0.007},
		Timeseries: map[string]components.SeriesMinMax{
			"electricity": components.FixedSeries(woHH...),
		},
		Expandable: map[string]bool{"electricity": true},
		ExpansionCosts: map[string]float64{
			"electricity": economics.Annuity(1750000, 20, 0.05),
		},
		ExpansionLimits: map[string]components.MinMax{
			"electricity": {Min: profiles.Max(woHH), Max: components.Inf},
		},
	}

	bmSupply := components.Source{
		Name:    "biomass supply",
		Outputs: []string{"biomass"},
		Attributes: components.Attributes{
			Region:    "HH",
			NodeType:  "renewable",
			Component: "source",
			Sector:    "coupled",
			Carrier:   "biomass",
		},
		// carries the reallocated biomass chp emissions
		FlowEmissions: map[string]float64{"biomass": 0.001/1 + 0.001/(48.8/126)},
	}

	// Storages

	est := components.Storage{
		Name:       "est",
		Input:      "electricity",
		Output:     "electricity",
		Capacity:   1,
		InitialSOC: 1,
		Attributes: components.Attributes{
			Region:    "HH",
			Sector:    "power",
			Carrier:   "electricity",
			Component: "storage",
		},
		FlowRates: map[string]components.MinMax{
			"electricity": {Min: 0, Max: components.Inf},
		},
		FlowCosts:     map[string]float64{"electricity": 20},
		FlowEmissions: map[string]float64{"electricity": 0},
		Expandable:    map[string]bool{"capacity": true, "electricity": false},
		ExpansionCosts: map[string]float64{
			"capacity": economics.Annuity(1000000, 10, 0.05),
		},
	}

	// P2H Karoline

	p2h := components.Transformer{
		Name:    "p2h",
		Inputs:  []string{"electricity"},
		Outputs: []string{"hot_water"},
		Conversions: map[components.Conversion]components.Factor{
			{From: "electricity", To: "hot_water"}: components.Fixed(0.99),
		},
		Attributes: components.Attributes{
			Latitude:  53.55912,
			Longitude: 9.97148,
			Region:    "HH",
			NodeType:  "power2heat",
			Component: "transformer",
			Sector:    "heat",
			Carrier:   "hot_water",
		},
		FlowRates: map[string]components.MinMax{
			"electricity": {Min: 0, Max: components.Inf},
			"hot_water":   {Min: 0, Max: 45},
		},
		FlowCosts:     map[string]float64{"electricity": 0, "hot_water": 0},
		FlowEmissions: map[string]float64{"electricity": 0, "hot_water": 0},
		Expandable:    map[string]bool{"electricity": false, "hot_water": true},
		ExpansionCosts: map[string]float64{
			"hot_water": economics.Annuity(200000, 30, 0.05),
		},
		ExpansionLimits: map[string]components.MinMax{
			"hot_water": {Min: 45, Max: 200},
		},
	}

	// Imported electricity and heat

	imel := components.Source{
		Name:    "imported el",
		Outputs: []string{"electricity"},
		Attributes: components.Attributes{
			Region:    "HH",
			NodeType:  "import",
			Component: "source",
			Sector:    "power",
			Carrier:   "electricity",
		},
		FlowCosts:      map[string]float64{"electricity": 999},
		FlowEmissions:  map[string]float64{"electricity": 0.401},
		Expandable:     map[string]bool{"electricity": true},
		ExpansionCosts: map[string]float64{"electricity": 999999999},
	}

	imth := components.Source{
		Name:    "imported heat",
		Outputs: []string{"hot_water"},
		Attributes: components.Attributes{
			Region:    "HH",
			NodeType:  "import",
			Component: "source",
			Sector:    "heat",
			Carrier:   "hot_water",
		},
		FlowCosts:      map[string]float64{"hot_water": 999},
		FlowEmissions:  map[string]float64{"hot_water": 0.1},
		Expandable:     map[string]bool{"hot_water": true},
		ExpansionCosts: map[string]float64{"hot_water": 999999999},
	}

	// Sinks

	demandEl := components.Sink{
		Name:   "demand el",
		Inputs: []string{"electricity"},
		Attributes: components.Attributes{
			Region:    "HH",
			NodeType:  "demand",
			Component: "sink",
			Sector:    "power",
			Carrier:   "electricity",
		},
		FlowRates: map[string]components.MinMax{
			"electricity": {Min: 0, Max: profiles.Max(deHH)},
		},
		Timeseries: map[string]components.SeriesMinMax{
			"electricity": components.FixedSeries(deHH...),
		},
	}

	demandTh := components.Sink{
		Name:   "demand th",
		Inputs: []string{"hot_water"},
		Attributes: components.Attributes{
			Region:    "HH",
			NodeType:  "demand",
			Component: "sink",
			Sector:    "heat",
			Carrier:   "hot_water",
		},
		FlowRates: map[string]components.MinMax{
			"hot_water": {Min: 0, Max: profiles.Max(thHH)},
		},
		Timeseries: map[string]components.SeriesMinMax{
			"hot_water": components.FixedSeries(thHH...),
		},
	}

	excessEl := components.Sink{
		Name:   "excess el",
		Inputs: []string{"electricity"},
		Attributes: components.Attributes{
			Region:    "HH",
			NodeType:  "excess",
			Component: "sink",
			Sector:    "power",
			Carrier:   "electricity",
		},
	}

	excessTh := components.Sink{
		Name:   "excess th",
		Inputs: []string{"hot_water"},
		Attributes: components.Attributes{
			Region:    "HH",
			NodeType:  "excess",
			Component: "sink",
			Sector:    "heat",
			Carrier:   "hot_water",
		},
	}

	// Busses

	bmLogistics := components.Bus{
		Name:    "biomass logistics",
		Inputs:  []string{"biomass supply.biomass"},
		Outputs: []string{"biomass chp.biomass"},
		Attributes: components.Attributes{
			Region:    "HH",
			NodeType:  "logistics",
			Component: "bus",
			Sector:    "coupled",
			Carrier:   "biomass",
		},
	}

	gasPipeline := components.Bus{
		Name:    "gas pipeline",
		Inputs:  []string{"gas supply.gas"},
		Outputs: []string{"chp1.gas", "chp2.gas", "hp1.gas"},
		Attributes: components.Attributes{
			Region:    "HH",
			NodeType:  "gas_pipeline",
			Component: "bus",
			Sector:    "coupled",
			Carrier:   "gas",
		},
	}

	coalSupplyLine := components.Bus{
		Name:   "coal supply line",
		Inputs: []string{"coal supply.coal"},
		Outputs: []string{
			"pp1.coal",
			"pp2.coal",
			"chp3.coal",
			"chp4.coal",
			"chp5.coal",
		},
		Attributes: components.Attributes{
			Region:    "HH",
			NodeType:  "gas_pipeline",
			Component: "bus",
			Sector:    "coupled",
			Carrier:   "coal",
		},
	}

	oilSupplyLine := components.Bus{
		Name:    "oil supply line",
		Inputs:  []string{"oil supply.oil"},
		Outputs: []string{"pp3.oil", "pp4.oil"},
		Attributes: components.Attributes{
			Region:    "HH",
			NodeType:  "oil_delivery",
			Component: "bus",
			Sector:    "power",
			Carrier:   "oil",
		},
	}

	wasteSupply := components.Bus{
		Name:    "waste supply",
		Inputs:  []string{"waste.waste"},
		Outputs: []string{"chp6.waste"},
		Attributes: components.Attributes{
			Region:    "HH",
			NodeType:  "waste_supply",
			Component: "bus",
			Sector:    "coupled",
			Carrier:   "waste",
		},
	}

	powerline := components.Bus{
		Name: "powerline",
		Inputs: []string{
			"chp1.electricity",
			"chp2.electricity",
			"chp3.electricity",
			"chp4.electricity",
			"chp5.electricity",
			"chp6.electricity",
			"pp1.electricity",
			"pp2.electricity",
			"pp3.electricity",
			"pp4.electricity",
			"pv1.electricity",
			"won1.electricity",
			"biomass chp.electricity",
			"imported el.electricity",
			"est.electricity",
		},
		Outputs: []string{
			"demand el.electricity",
			"excess el.electricity",
			"est.electricity",
			"p2h.electricity",
		},
		Attributes: components.Attributes{
			Region:    "HH",
			NodeType:  "powerline",
			Component: "bus",
			Sector:    "power",
			Carrier:   "electricity",
		},
	}

	districtHeating := components.Bus{
		Name: "district heating pipeline",
		Inputs: []string{
			"chp1.hot_water",
			"chp2.hot_water",
			"chp3.hot_water",
			"chp4.hot_water",
			"chp6.hot_water",
			"chp5.hot_water",
			"biomass chp.hot_water",
			"imported heat.hot_water",
			"p2h.hot_water",
			"hp1.hot_water",
		},
		Outputs: []string{
			"demand th.hot_water",
			"excess th.hot_water",
		},
		Attributes: components.Attributes{
			Region:    "HH",
			NodeType:  "district_heating_pipeline",
			Component: "bus",
			Sector:    "heat",
			Carrier:   "hot_water",
		},
	}

	return systemmodel.New("Energy System Hamburg", timeframe).
		Busses(
			coalSupplyLine,
			gasPipeline,
			oilSupplyLine,
			wasteSupply,
			powerline,
			districtHeating,
			bmLogistics,
		).
		Sinks(demandEl, demandTh, excessEl, excessTh).
		Sources(gass, coals, oils, waste, pv1, won1, bmSupply, imel, imth).
		Transformers(
			chp1,
			chp2,
			chp3,
			chp4,
			chp5,
			chp6,
			pp1,
			pp2,
			pp3,
			pp4,
			hp1,
			p2h,
			bmCHP,
		).
		Storages(est).
		GlobalConstraints(constraints).
		Build()
}
