package basic

import (
	"time"

	"github.com/mathias-ammon/tessif-examples/pkg/components"
	"github.com/mathias-ammon/tessif-examples/pkg/profiles"
	"github.com/mathias-ammon/tessif-examples/pkg/systemmodel"
)

// CreateStatisticalIdentificationExample returns a single bus system
// driven by the 2019 Hamburg solar and household demand profiles, used
// for statistical identification of dispatch behaviour. One timestep
// is one hour.
func CreateStatisticalIdentificationExample(periods int) (*systemmodel.System, error) {
	timeframe := systemmodel.Hourly(
		time.Date(2019, time.January, 1, 0, 0, 0, 0, time.UTC), periods)

	pvHH, err := profiles.Series("solar_HH_2019.csv", periods)
	if err != nil {
		return nil, err
	}
	deHH, err := profiles.Column("el_demand_HH_2019.csv", "Last (MW)", periods)
	if err != nil {
		return nil, err
	}

	constraints := systemmodel.DefaultGlobalConstraints()
	constraints.Name = "2019"

	powerline := components.Bus{
		Name: "Powerline",
		Attributes: components.Attributes{
			Region:    "HH",
			Sector:    "Power",
			NodeType:  "AC-Bus",
			Component: "bus",
			Carrier:   "electricity",
		},
		Inputs: []string{
			"Gas Powerplant.electricity",
			"Import.electricity",
			"Solar.electricity",
		},
		Outputs: []string{
			"Demand.electricity",
			"Excess.electricity",
		},
	}

	demand := components.Sink{
		Name:   "Demand",
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
			"electricity": {Min: deHH, Max: deHH},
		},
	}

	excess := components.Sink{
		Name:   "Excess",
		Inputs: []string{"electricity"},
		Attributes: components.Attributes{
			Region:    "HH",
			NodeType:  "Demand",
			Component: "sink",
			Carrier:   "electricity",
		},
	}

	solar := components.Source{
		Name:    "Solar",
		Outputs: []string{"electricity"},
		Attributes: components.Attributes{
			Region:    "HH",
			Sector:    "Power",
			Carrier:   "electricity",
			Component: "source",
			NodeType:  "renewable",
		},
		FlowRates: map[string]components.MinMax{
			"electricity": {Min: 0, Max: profiles.Max(pvHH)},
		},
		FlowCosts:     map[string]float64{"electricity": 9},
		FlowEmissions: map[string]float64{"electricity": 0},
		Timeseries: map[string]components.SeriesMinMax{
			"electricity": {Min: pvHH, Max: pvHH},
		},
		Expandable:     map[string]bool{"electricity": true},
		ExpansionCosts: map[string]float64{"electricity": 5},
		ExpansionLimits: map[string]components.MinMax{
			"electricity": {Min: 0, Max: components.Inf},
		},
	}

	gasPipeline := components.Bus{
		Name: "Gas Pipeline",
		Attributes: components.Attributes{
			Region:    "HH",
			Sector:    "Power",
			NodeType:  "GAS",
			Component: "bus",
			Carrier:   "gas",
		},
		Inputs:  []string{"Gas Supply.gas"},
		Outputs: []string{"Gas Powerplant.gas"},
	}

	gasSupply := components.Source{
		Name:    "Gas Supply",
		Outputs: []string{"gas"},
		Attributes: components.Attributes{
			Region:    "HH",
			NodeType:  "Gas Supply",
			Component: "source",
			Carrier:   "GAS",
		},
	}

	gasPowerplant := components.Transformer{
		Name:    "Gas Powerplant",
		Inputs:  []string{"gas"},
		Outputs: []string{"electricity"},
		Conversions: map[components.Conversion]components.Factor{
			{From: "gas", To: "electricity"}: components.Fixed(0.4075),
		},
		Attributes: components.Attributes{
			Region:    "HH",
			NodeType:  "Gas Powerplant",
			Component: "transformer",
			Sector:    "ELECTRICITY",
			Carrier:   "GAS",
		},
		FlowRates: map[string]components.MinMax{
			"gas":         {Min: 0, Max: components.Inf},
			"electricity": {Min: 0, Max: 400},
		},
		FlowCosts:     map[string]float64{"gas": 10, "electricity": 82},
		FlowEmissions: map[string]float64{"gas": 0.2, "electricity": 0},
	}

	elImport := components.Source{
		Name:    "Import",
		Outputs: []string{"electricity"},
		Attributes: components.Attributes{
			Region:    "HH",
			NodeType:  "Import",
			Component: "source",
			Carrier:   "electricity",
		},
		FlowRates: map[string]components.MinMax{
			"electricity": {Min: 0, Max: components.Inf},
		},
		FlowCosts:     map[string]float64{"electricity": 999},
		FlowEmissions: map[string]float64{"electricity": 0.45},
	}

	return systemmodel.New("Statistical Identification Example", timeframe).
		Busses(powerline, gasPipeline).
		Sinks(demand, excess).
		Sources(elImport, solar, gasSupply).
		Transformers(gasPowerplant).
		GlobalConstraints(constraints).
		Build()
}
