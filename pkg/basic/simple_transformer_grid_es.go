package basic

import (
	"github.com/mathias-ammon/tessif-examples/pkg/components"
	"github.com/mathias-ammon/tessif-examples/pkg/systemmodel"
)

// CreateSimpleTransformerGridES returns a two level grid emulating
// common congestion behaviours over six timesteps: the coupling
// transformers congest whenever one level over- or undersupplies, so
// balance sources and excess sinks have to compensate.
func CreateSimpleTransformerGridES() (*systemmodel.System, error) {
	timeframe := systemmodel.Hourly(catalogStart, 6)

	etaH2M := 10.0 / 12.0
	etaM2H := 10.0 / 11.0

	hvSource := components.Source{
		Name:      "HV-Source",
		Outputs:   []string{"hv-electricity"},
		FlowRates: map[string]components.MinMax{"hv-electricity": {Min: 0, Max: 30}},
		Timeseries: map[string]components.SeriesMinMax{
			"hv-electricity": components.FixedSeries(10+10/etaH2M, 30, 10, 0, 0, 0),
		},
	}

	mvSource := components.Source{
		Name:      "MV-Source",
		Outputs:   []string{"mv-electricity"},
		FlowRates: map[string]components.MinMax{"mv-electricity": {Min: 0, Max: 30}},
		Timeseries: map[string]components.SeriesMinMax{
			"mv-electricity": components.FixedSeries(0, 0, 0, 10+10/etaM2H, 30, 10),
		},
	}

	hvBalanceSource := components.Source{
		Name:      "HV-BS",
		Outputs:   []string{"hv-electricity"},
		FlowRates: map[string]components.MinMax{"hv-electricity": {Min: 0, Max: components.Inf}},
		FlowCosts: map[string]float64{"hv-electricity": 10},
	}

	mvBalanceSource := components.Source{
		Name:      "MV-BS",
		Outputs:   []string{"mv-electricity"},
		FlowRates: map[string]components.MinMax{"mv-electricity": {Min: 0, Max: components.Inf}},
		FlowCosts: map[string]float64{"mv-electricity": 10},
	}

	highToMed := components.Transformer{
		Name:    "H2M",
		Inputs:  []string{"hv-electricity"},
		Outputs: []string{"mv-electricity"},
		Conversions: map[components.Conversion]components.Factor{
			{From: "hv-electricity", To: "mv-electricity"}: components.Fixed(etaH2M),
		},
		FlowRates: map[string]components.MinMax{
			"hv-electricity": {Min: 0, Max: components.Inf},
			"mv-electricity": {Min: 0, Max: 10},
		},
	}

	medToHigh := components.Transformer{
		Name:    "M2H",
		Inputs:  []string{"mv-electricity"},
		Outputs: []string{"hv-electricity"},
		Conversions: map[components.Conversion]components.Factor{
			{From: "mv-electricity", To: "hv-electricity"}: components.Fixed(etaM2H),
		},
		FlowRates: map[string]components.MinMax{
			"mv-electricity": {Min: 0, Max: components.Inf},
			"hv-electricity": {Min: 0, Max: 10},
		},
	}

	mvDemand := components.Sink{
		Name:      "MV-Demand",
		Inputs:    []string{"mv-electricity"},
		FlowRates: map[string]components.MinMax{"mv-electricity": {Min: 10, Max: 10}},
		Timeseries: map[string]components.SeriesMinMax{
			"mv-electricity": components.FixedSeries(10, 12, 10, 10, 10, 10),
		},
	}

	hvDemand := components.Sink{
		Name:      "HV-Demand",
		Inputs:    []string{"hv-electricity"},
		FlowRates: map[string]components.MinMax{"hv-electricity": {Min: 10, Max: 10}},
		Timeseries: map[string]components.SeriesMinMax{
			"hv-electricity": components.FixedSeries(10, 10, 10, 10, 12, 10),
		},
	}

	hvExcessSink := components.Sink{
		Name:      "HV-XS",
		Inputs:    []string{"hv-electricity"},
		FlowRates: map[string]components.MinMax{"hv-electricity": {Min: 0, Max: components.Inf}},
		FlowCosts: map[string]float64{"hv-electricity": 10},
	}

	mvExcessSink := components.Sink{
		Name:      "MV-XS",
		Inputs:    []string{"mv-electricity"},
		FlowRates: map[string]components.MinMax{"mv-electricity": {Min: 0, Max: components.Inf}},
		FlowCosts: map[string]float64{"mv-electricity": 10},
	}

	hvBus := components.Bus{
		Name: "HV-Bus",
		Inputs: []string{
			"HV-Source.hv-electricity",
			"M2H.hv-electricity",
			"HV-BS.hv-electricity",
		},
		Outputs: []string{
			"H2M.hv-electricity",
			"HV-Demand.hv-electricity",
			"HV-XS.hv-electricity",
		},
	}

	mvBus := components.Bus{
		Name: "MV-Bus",
		Inputs: []string{
			"MV-Source.mv-electricity",
			"H2M.mv-electricity",
			"MV-BS.mv-electricity",
		},
		Outputs: []string{
			"M2H.mv-electricity",
			"MV-Demand.mv-electricity",
			"MV-XS.mv-electricity",
		},
	}

	return systemmodel.New("Two Transformer Grid Example", timeframe).
		Busses(hvBus, mvBus).
		Sinks(hvDemand, mvDemand, hvExcessSink, mvExcessSink).
		Sources(hvSource, mvSource, hvBalanceSource, mvBalanceSource).
		Transformers(medToHigh, highToMed).
		Build()
}
