// Package basic holds the entry level system model examples: small,
// hand sized systems exercising one modeling aspect each, from the
// minimum working example up to self similar generated systems.
package basic

import (
	"time"

	"github.com/mathias-ammon/tessif-examples/pkg/components"
	"github.com/mathias-ammon/tessif-examples/pkg/systemmodel"
)

// catalogStart is the reference point in time shared by the
// statically parameterized examples.
var catalogStart = time.Date(1990, time.July, 13, 0, 0, 0, 0, time.UTC)

// CreateMWE returns the minimum working example: a gas fueled
// generator, a battery and a fixed demand on a single powerline.
func CreateMWE() (*systemmodel.System, error) {
	timeframe := systemmodel.Hourly(catalogStart, 4)

	fuelSupply := components.Source{
		Name:    "Gas Station",
		Outputs: []string{"fuel"},
	}

	powerGenerator := components.Transformer{
		Name:    "Generator",
		Inputs:  []string{"fuel"},
		Outputs: []string{"electricity"},
		Conversions: map[components.Conversion]components.Factor{
			{From: "fuel", To: "electricity"}: components.Fixed(0.42),
		},
		FlowCosts: map[string]float64{"electricity": 2, "fuel": 0},
	}

	demand := components.Sink{
		Name:   "Demand",
		Inputs: []string{"electricity"},
		FlowRates: map[string]components.MinMax{
			"electricity": {Min: 10, Max: 10},
		},
	}

	storage := components.Storage{
		Name:       "Battery",
		Input:      "electricity",
		Output:     "electricity",
		Capacity:   20,
		InitialSOC: 10,
		FlowCosts:  map[string]float64{"electricity": 0.1},
	}

	fuelSupplyLine := components.Bus{
		Name:    "Pipeline",
		Inputs:  []string{"Gas Station.fuel"},
		Outputs: []string{"Generator.fuel"},
	}

	electricityLine := components.Bus{
		Name:    "Powerline",
		Inputs:  []string{"Generator.electricity", "Battery.electricity"},
		Outputs: []string{"Demand.electricity", "Battery.electricity"},
	}

	return systemmodel.New("Minimum_Working_Example", timeframe).
		Busses(fuelSupplyLine, electricityLine).
		Sinks(demand).
		Sources(fuelSupply).
		Transformers(powerGenerator).
		Storages(storage).
		Build()
}
