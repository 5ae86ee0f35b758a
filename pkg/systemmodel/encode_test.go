package systemmodel

import (
	"bytes"
	"math"
	"strings"
	"testing"

	"github.com/mathias-ammon/tessif-examples/pkg/components"
)

func TestEncodeDecodeRoundTrip(t *testing.T) {
	sys, err := New("roundtrip", Hourly(testStart, 2)).
		Busses(components.Bus{
			Name:    "powerline",
			Inputs:  []string{"plant.electricity"},
			Outputs: []string{"demand.electricity"},
		}).
		Sources(components.Source{
			Name:    "fuel supply",
			Outputs: []string{"fuel"},
			FlowRates: map[string]components.MinMax{
				"fuel": {Min: 0, Max: components.Inf},
			},
			FlowCosts: map[string]float64{"fuel": 10},
		}).
		Sinks(components.Sink{
			Name:   "demand",
			Inputs: []string{"electricity"},
			Timeseries: map[string]components.SeriesMinMax{
				"electricity": components.FixedSeries(190, 210),
			},
		}).
		Transformers(components.Transformer{
			Name:    "plant",
			Inputs:  []string{"fuel"},
			Outputs: []string{"electricity"},
			Conversions: map[components.Conversion]components.Factor{
				{From: "fuel", To: "electricity"}: components.Varying(0.4, 0.5),
			},
		}).
		Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	var buf bytes.Buffer
	if err := Encode(&buf, sys); err != nil {
		t.Fatalf("Encode: %v", err)
	}

	text := buf.String()
	if !strings.Contains(text, "fuel->electricity") {
		t.Error("encoded output misses the conversion key")
	}
	if !strings.Contains(text, ".inf") {
		t.Error("encoded output misses the unbounded flow rate")
	}

	got, err := Decode(&buf)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}

	if got.UID != sys.UID {
		t.Errorf("UID = %q, want %q", got.UID, sys.UID)
	}
	if got.Timeframe.Periods != 2 {
		t.Errorf("periods = %d, want 2", got.Timeframe.Periods)
	}
	if !got.Timeframe.Start.Equal(testStart) {
		t.Errorf("start = %v, want %v", got.Timeframe.Start, testStart)
	}
	if got.GlobalConstraints.Name != "default" {
		t.Errorf("constraint name = %q", got.GlobalConstraints.Name)
	}
	if !math.IsInf(got.GlobalConstraints.Emissions, 1) {
		t.Error("emissions bound lost its unboundedness")
	}

	rate := got.Sources[0].FlowRates["fuel"]
	if !math.IsInf(rate.Max, 1) {
		t.Errorf("flow rate max = %v, want +Inf", rate.Max)
	}

	factor := got.Transformers[0].Conversions[components.Conversion{From: "fuel", To: "electricity"}]
	if !factor.IsVarying() {
		t.Fatal("decoded factor lost its series form")
	}
	if s := factor.Series(); len(s) != 2 || s[0] != 0.4 || s[1] != 0.5 {
		t.Errorf("decoded factor series = %v", s)
	}

	ts := got.Sinks[0].Timeseries["electricity"]
	if len(ts.Min) != 2 || ts.Min[0] != 190 || ts.Max[1] != 210 {
		t.Errorf("decoded timeseries = %+v", ts)
	}
}

func TestDecodeRejectsMalformedInput(t *testing.T) {
	_, err := Decode(strings.NewReader("uid: [not, a, string]\n"))
	if err == nil {
		t.Fatal("expected decode error")
	}
}
