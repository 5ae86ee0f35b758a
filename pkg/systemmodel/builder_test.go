package systemmodel

import (
	"math"
	"strings"
	"testing"
	"time"

	"github.com/mathias-ammon/tessif-examples/pkg/components"
)

var testStart = time.Date(1990, time.July, 13, 0, 0, 0, 0, time.UTC)

func minimalPair() (components.Source, components.Sink, components.Bus) {
	source := components.Source{
		Name:    "supply",
		Outputs: []string{"electricity"},
	}
	sink := components.Sink{
		Name:   "demand",
		Inputs: []string{"electricity"},
	}
	bus := components.Bus{
		Name:    "powerline",
		Inputs:  []string{"supply.electricity"},
		Outputs: []string{"demand.electricity"},
	}
	return source, sink, bus
}

func TestBuildDefaults(t *testing.T) {
	source, sink, bus := minimalPair()
	sys, err := New("test-system", Hourly(testStart, 3)).
		Busses(bus).
		Sources(source).
		Sinks(sink).
		Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if sys.UID != "test-system" {
		t.Errorf("UID = %q", sys.UID)
	}
	gc := sys.GlobalConstraints
	if gc.Name != "default" {
		t.Errorf("constraint name = %q, want default", gc.Name)
	}
	if !math.IsInf(gc.Emissions, 1) || !math.IsInf(gc.Resources, 1) || !math.IsInf(gc.Material, 1) {
		t.Errorf("default constraints not unbounded: %+v", gc)
	}
	if got := len(sys.Nodes()); got != 3 {
		t.Errorf("node count = %d, want 3", got)
	}
}

func TestBuildRejections(t *testing.T) {
	source, sink, bus := minimalPair()

	tests := []struct {
		name    string
		builder *Builder
		wantSub string
	}{
		{
			name:    "empty uid",
			builder: New("", Hourly(testStart, 1)),
			wantSub: "uid",
		},
		{
			name:    "negative periods",
			builder: New("sys", Timeframe{Start: testStart, Periods: -1, Freq: time.Hour}),
			wantSub: "negative",
		},
		{
			name: "duplicate node name",
			builder: New("sys", Hourly(testStart, 1)).
				Sources(source, source),
			wantSub: "duplicate",
		},
		{
			name: "empty node name",
			builder: New("sys", Hourly(testStart, 1)).
				Sources(components.Source{Outputs: []string{"electricity"}}),
			wantSub: "name",
		},
		{
			name: "short timeseries",
			builder: New("sys", Hourly(testStart, 3)).
				Busses(bus).
				Sinks(sink).
				Sources(components.Source{
					Name:    "supply",
					Outputs: []string{"electricity"},
					Timeseries: map[string]components.SeriesMinMax{
						"electricity": components.FixedSeries(1, 2),
					},
				}),
			wantSub: "timeseries",
		},
		{
			name: "varying conversion length mismatch",
			builder: New("sys", Hourly(testStart, 3)).
				Transformers(components.Transformer{
					Name:    "generator",
					Inputs:  []string{"fuel"},
					Outputs: []string{"electricity"},
					Conversions: map[components.Conversion]components.Factor{
						{From: "fuel", To: "electricity"}: components.Varying(0.4, 0.5),
					},
				}),
			wantSub: "conversion",
		},
		{
			name: "chp per-timestep series mismatch",
			builder: New("sys", Hourly(testStart, 4)).
				CHPs(components.CHP{
					Transformer: components.Transformer{
						Name:    "chp",
						Inputs:  []string{"gas"},
						Outputs: []string{"electricity", "heat"},
					},
					MinCondenserLoad: components.Repeat(3, 2),
				}),
			wantSub: "min_condenser_load",
		},
		{
			name:    "merge nil",
			builder: New("sys", Hourly(testStart, 1)).Merge(nil),
			wantSub: "nil",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.builder.Build()
			if err == nil {
				t.Fatal("expected build error")
			}
			if !strings.Contains(err.Error(), tt.wantSub) {
				t.Errorf("error %q does not mention %q", err, tt.wantSub)
			}
		})
	}
}

func TestMergeCombinesNodes(t *testing.T) {
	source, sink, bus := minimalPair()
	first, err := New("first", Hourly(testStart, 1)).
		Busses(bus).
		Sources(source).
		Sinks(sink).
		Build()
	if err != nil {
		t.Fatalf("Build first: %v", err)
	}

	other := components.Source{Name: "other supply", Outputs: []string{"electricity"}}
	combined, err := New("combined", Hourly(testStart, 1)).
		Sources(other).
		Merge(first).
		Build()
	if err != nil {
		t.Fatalf("Build combined: %v", err)
	}
	if got := len(combined.Nodes()); got != 4 {
		t.Errorf("node count = %d, want 4", got)
	}
	if _, ok := combined.Node("supply"); !ok {
		t.Error("merged node missing")
	}
	if combined.UID != "combined" {
		t.Errorf("UID = %q, merge must not overwrite it", combined.UID)
	}
}

func TestNodeLookupAndOrder(t *testing.T) {
	source, sink, bus := minimalPair()
	sys, err := New("sys", Hourly(testStart, 1)).
		Sinks(sink).
		Sources(source).
		Busses(bus).
		Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	want := []string{"powerline", "supply", "demand"}
	got := sys.NodeNames()
	if len(got) != len(want) {
		t.Fatalf("NodeNames = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("NodeNames[%d] = %q, want %q", i, got[i], want[i])
		}
	}

	if _, ok := sys.Node("powerline"); !ok {
		t.Error("Node(powerline) not found")
	}
	if _, ok := sys.Node("no such node"); ok {
		t.Error("Node returned ok for unknown uid")
	}
}

func TestTimeframe(t *testing.T) {
	tf := Hourly(testStart, 3)
	if tf.Len() != 3 {
		t.Errorf("Len = %d, want 3", tf.Len())
	}
	stamps := tf.Timestamps()
	if len(stamps) != 3 {
		t.Fatalf("len(Timestamps) = %d, want 3", len(stamps))
	}
	if !stamps[0].Equal(testStart) {
		t.Errorf("first stamp = %v, want %v", stamps[0], testStart)
	}
	if got := stamps[2].Sub(stamps[1]); got != time.Hour {
		t.Errorf("step width = %v, want 1h", got)
	}
}
