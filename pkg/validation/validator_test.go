package validation

import (
	"strings"
	"testing"
	"time"

	"github.com/mathias-ammon/tessif-examples/pkg/components"
	"github.com/mathias-ammon/tessif-examples/pkg/systemmodel"
)

var testStart = time.Date(1990, time.July, 13, 0, 0, 0, 0, time.UTC)

// buildSystem assembles a small gas-to-power system and applies the
// given mutation before the final Build.
func buildSystem(t *testing.T, mutate func(b *systemmodel.Builder)) *systemmodel.System {
	t.Helper()
	b := systemmodel.New("validation-test", systemmodel.Hourly(testStart, 2)).
		Busses(components.Bus{
			Name:    "powerline",
			Inputs:  []string{"plant.electricity"},
			Outputs: []string{"demand.electricity"},
		}).
		Busses(components.Bus{
			Name:    "gas pipeline",
			Inputs:  []string{"gas supply.gas"},
			Outputs: []string{"plant.gas"},
		}).
		Sources(components.Source{Name: "gas supply", Outputs: []string{"gas"}}).
		Sinks(components.Sink{Name: "demand", Inputs: []string{"electricity"}}).
		Transformers(components.Transformer{
			Name:    "plant",
			Inputs:  []string{"gas"},
			Outputs: []string{"electricity"},
			Conversions: map[components.Conversion]components.Factor{
				{From: "gas", To: "electricity"}: components.Fixed(0.6),
			},
		})
	if mutate != nil {
		mutate(b)
	}
	sys, err := b.Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	return sys
}

func TestValidateSystem(t *testing.T) {
	tests := []struct {
		name        string
		mutate      func(b *systemmodel.Builder)
		expectError bool
		wantSub     string
	}{
		{
			name:        "valid system",
			expectError: false,
		},
		{
			name: "dangling bus input",
			mutate: func(b *systemmodel.Builder) {
				b.Busses(components.Bus{
					Name:   "district heating",
					Inputs: []string{"heat plant.hot water"},
				})
			},
			expectError: true,
			wantSub:     "no such node",
		},
		{
			name: "carrier on the wrong side",
			mutate: func(b *systemmodel.Builder) {
				// demand consumes electricity, it does not produce it
				b.Busses(components.Bus{
					Name:   "backfeed",
					Inputs: []string{"demand.electricity"},
				})
			},
			expectError: true,
			wantSub:     "on that side",
		},
		{
			name: "producer referenced on the consuming side",
			mutate: func(b *systemmodel.Builder) {
				// gas supply only produces gas, it never consumes it
				b.Busses(components.Bus{
					Name:    "gas return",
					Outputs: []string{"gas supply.gas"},
				})
			},
			expectError: true,
			wantSub:     "on that side",
		},
		{
			name: "malformed endpoint reference",
			mutate: func(b *systemmodel.Builder) {
				b.Busses(components.Bus{
					Name:   "broken",
					Inputs: []string{"plant.electricity", "plant."},
				})
			},
			expectError: true,
			wantSub:     "NodeName.carrier",
		},
		{
			name: "connector interface without bus",
			mutate: func(b *systemmodel.Builder) {
				b.Connectors(components.Connector{
					Name:       "coupler",
					Interfaces: [2]string{"powerline", "no such bus"},
				})
			},
			expectError: true,
			wantSub:     "does not name a bus",
		},
		{
			name: "timeseries min above max",
			mutate: func(b *systemmodel.Builder) {
				b.Sources(components.Source{
					Name:    "solar panel",
					Outputs: []string{"electricity"},
					Timeseries: map[string]components.SeriesMinMax{
						"electricity": {Min: []float64{10, 10}, Max: []float64{10, 5}},
					},
				})
				b.Busses(components.Bus{
					Name:   "solar feed",
					Inputs: []string{"solar panel.electricity"},
				})
			},
			expectError: true,
			wantSub:     "min",
		},
		{
			name: "source without outputs",
			mutate: func(b *systemmodel.Builder) {
				b.Sources(components.Source{Name: "mute supply"})
			},
			expectError: true,
			wantSub:     "Outputs",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sys := buildSystem(t, tt.mutate)
			err := ValidateSystem(sys)
			if tt.expectError {
				if err == nil {
					t.Fatal("expected validation error")
				}
				if !strings.Contains(err.Error(), tt.wantSub) {
					t.Errorf("error %q does not mention %q", err, tt.wantSub)
				}
				return
			}
			if err != nil {
				t.Fatalf("ValidateSystem: %v", err)
			}
		})
	}
}

func TestValidateSystemNil(t *testing.T) {
	if err := ValidateSystem(nil); err == nil {
		t.Fatal("expected error for nil system")
	}
}

// Extraction turbine pairs hold operating point values at minimal and
// maximal heat extraction, so an enthalpy loss series with min above
// max is a legitimate parameterization, not an inverted bound.
func TestValidateSystemAcceptsExtractionTurbineSeries(t *testing.T) {
	sys := buildSystem(t, func(b *systemmodel.Builder) {
		b.CHPs(components.CHP{
			Transformer: components.Transformer{
				Name:    "extraction turbine",
				Inputs:  []string{"gas"},
				Outputs: []string{"electricity", "heat"},
			},
			EnthalpyLoss: components.SeriesMinMax{
				Min: components.Repeat(1.0, 2),
				Max: components.Repeat(0.18, 2),
			},
		})
		b.Busses(components.Bus{
			Name:    "turbine feed",
			Inputs:  []string{"gas supply.gas"},
			Outputs: []string{"extraction turbine.gas"},
		})
		b.Busses(components.Bus{
			Name:   "turbine heat",
			Inputs: []string{"extraction turbine.heat", "extraction turbine.electricity"},
		})
	})
	if err := ValidateSystem(sys); err != nil {
		t.Fatalf("ValidateSystem: %v", err)
	}
}

func TestResolveEndpointsCoversStorages(t *testing.T) {
	sys := buildSystem(t, func(b *systemmodel.Builder) {
		b.Storages(components.Storage{
			Name:   "battery",
			Input:  "electricity",
			Output: "electricity",
		})
		b.Busses(components.Bus{
			Name:    "battery link",
			Inputs:  []string{"battery.electricity"},
			Outputs: []string{"battery.electricity"},
		})
	})
	if err := ResolveEndpoints(sys); err != nil {
		t.Fatalf("ResolveEndpoints: %v", err)
	}
}
