package basic

import (
	"github.com/mathias-ammon/tessif-examples/pkg/components"
	"github.com/mathias-ammon/tessif-examples/pkg/systemmodel"
)

// CreateConnectedES returns two self contained supply/demand pairs
// coupled by a lossy bidirectional connector.
func CreateConnectedES() (*systemmodel.System, error) {
	timeframe := systemmodel.Hourly(catalogStart, 3)

	s1 := components.Sink{
		Name:      "sink-01",
		Inputs:    []string{"electricity"},
		FlowRates: map[string]components.MinMax{"electricity": {Min: 0, Max: 15}},
		Timeseries: map[string]components.SeriesMinMax{
			"electricity": components.FixedSeries(0, 15, 10),
		},
	}

	so1 := components.Source{
		Name:          "source-01",
		Outputs:       []string{"electricity"},
		FlowRates:     map[string]components.MinMax{"electricity": {Min: 0, Max: 10}},
		FlowCosts:     map[string]float64{"electricity": 1},
		FlowEmissions: map[string]float64{"electricity": 0.8},
	}

	mb1 := components.Bus{
		Name:    "bus-01",
		Inputs:  []string{"source-01.electricity"},
		Outputs: []string{"sink-01.electricity"},
	}

	s2 := components.Sink{
		Name:      "sink-02",
		Inputs:    []string{"electricity"},
		FlowRates: map[string]components.MinMax{"electricity": {Min: 0, Max: 15}},
		Timeseries: map[string]components.SeriesMinMax{
			"electricity": components.FixedSeries(15, 0, 10),
		},
	}

	so2 := components.Source{
		Name:          "source-02",
		Outputs:       []string{"electricity"},
		FlowRates:     map[string]components.MinMax{"electricity": {Min: 0, Max: 10}},
		FlowCosts:     map[string]float64{"electricity": 1},
		FlowEmissions: map[string]float64{"electricity": 1.2},
	}

	mb2 := components.Bus{
		Name:    "bus-02",
		Inputs:  []string{"source-02.electricity"},
		Outputs: []string{"sink-02.electricity"},
	}

	c := components.Connector{
		Name:       "connector",
		Interfaces: [2]string{"bus-01", "bus-02"},
		Conversions: map[components.Conversion]float64{
			{From: "bus-01", To: "bus-02"}: 0.9,
			{From: "bus-02", To: "bus-01"}: 0.8,
		},
	}

	return systemmodel.New("Connected-Energy-Systems-Example", timeframe).
		Busses(mb1, mb2).
		Sinks(s1, s2).
		Sources(so1, so2).
		Connectors(c).
		Build()
}
