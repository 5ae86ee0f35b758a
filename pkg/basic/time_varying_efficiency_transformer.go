package basic

import (
	"github.com/mathias-ammon/tessif-examples/pkg/components"
	"github.com/mathias-ammon/tessif-examples/pkg/systemmodel"
)

// CreateTimeVaryingEfficiencyTransformer returns a small system whose
// transformer efficiency changes every timestep, checked against an
// expensive electricity import.
func CreateTimeVaryingEfficiencyTransformer() (*systemmodel.System, error) {
	timeframe := systemmodel.Hourly(catalogStart, 3)

	demand := components.Sink{
		Name:       "Demand",
		Inputs:     []string{"electricity"},
		Attributes: components.Attributes{Carrier: "electricity", NodeType: "sink"},
		FlowRates:  map[string]components.MinMax{"electricity": {Min: 10, Max: 10}},
	}

	commodity := components.Source{
		Name:       "Commodity",
		Outputs:    []string{"energy"},
		Attributes: components.Attributes{Carrier: "energy", NodeType: "source"},
	}

	importSource := components.Source{
		Name:       "Import",
		Outputs:    []string{"electricity"},
		Attributes: components.Attributes{Carrier: "electricity", NodeType: "source"},
		FlowCosts:  map[string]float64{"electricity": 1000},
	}

	transformer := components.Transformer{
		Name:    "Transformer",
		Inputs:  []string{"energy"},
		Outputs: []string{"electricity"},
		Conversions: map[components.Conversion]components.Factor{
			{From: "energy", To: "electricity"}: components.Varying(3.0/5, 4.0/5, 2.0/5),
		},
		FlowCosts:     map[string]float64{"energy": 0, "electricity": 100},
		FlowEmissions: map[string]float64{"energy": 0, "electricity": 1000},
	}

	commodityBus := components.Bus{
		Name:       "Com Bus",
		Inputs:     []string{"Commodity.energy"},
		Outputs:    []string{"Transformer.energy"},
		Attributes: components.Attributes{Carrier: "energy", NodeType: "bus"},
	}

	powerline := components.Bus{
		Name:       "Powerline",
		Inputs:     []string{"Transformer.electricity", "Import.electricity"},
		Outputs:    []string{"Demand.electricity"},
		Attributes: components.Attributes{Carrier: "electricity", NodeType: "bus"},
	}

	return systemmodel.New("Transformer-Timeseries-Example", timeframe).
		Busses(commodityBus, powerline).
		Sinks(demand).
		Sources(commodity, importSource).
		Transformers(transformer).
		Build()
}
