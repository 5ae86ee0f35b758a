package basic

import (
	"fmt"
	"reflect"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"github.com/mathias-ammon/tessif-examples/pkg/systemmodel"
	"github.com/mathias-ammon/tessif-examples/pkg/validation"
)

func TestCreateMSSESU(t *testing.T) {
	sys, err := CreateMSSESU(0, 42)
	if err != nil {
		t.Fatalf("CreateMSSESU: %v", err)
	}
	if sys.UID != "Energy_System_0" {
		t.Errorf("UID = %q", sys.UID)
	}
	if sys.Timeframe.Periods != 1 {
		t.Errorf("periods = %d, want 1", sys.Timeframe.Periods)
	}
	// the 0th unit carries no connector to a predecessor
	if len(sys.Connectors) != 0 {
		t.Errorf("connectors = %d, want 0", len(sys.Connectors))
	}
	if got := len(sys.Nodes()); got != 9 {
		t.Errorf("node count = %d, want 9", got)
	}
	if err := validation.ValidateSystem(sys); err != nil {
		t.Errorf("ValidateSystem: %v", err)
	}

	for _, name := range []string{
		"central_bus_0", "fuel_line_0", "sink_0", "excess_sink_0",
		"excess_source_0", "renewable_source_0", "non_renewable_source_0",
		"power_generator_0", "storage_0",
	} {
		if _, ok := sys.Node(name); !ok {
			t.Errorf("node %q missing", name)
		}
	}
}

func TestSelfSimilarProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 20

	properties := gopter.NewProperties(parameters)

	properties.Property("consecutive units share one connector", prop.ForAll(
		func(n int, seed int64) bool {
			sys, err := CreateSelfSimilarEnergySystem(n, systemmodel.Timeframe{}, seed)
			if err != nil {
				return false
			}
			want := 0
			if n > 0 {
				want = n - 1
			}
			return len(sys.Connectors) == want
		},
		gen.IntRange(0, 12),
		gen.Int64(),
	))

	properties.Property("unit count determines node count", prop.ForAll(
		func(n int, seed int64) bool {
			sys, err := CreateSelfSimilarEnergySystem(n, systemmodel.Timeframe{}, seed)
			if err != nil {
				return false
			}
			want := 9 * n
			if n > 0 {
				want += n - 1
			}
			return len(sys.Nodes()) == want
		},
		gen.IntRange(0, 12),
		gen.Int64(),
	))

	properties.Property("node names stay unique", prop.ForAll(
		func(n int, seed int64) bool {
			sys, err := CreateSelfSimilarEnergySystem(n, systemmodel.Timeframe{}, seed)
			if err != nil {
				return false
			}
			seen := make(map[string]bool)
			for _, name := range sys.NodeNames() {
				if seen[name] {
					return false
				}
				seen[name] = true
			}
			return true
		},
		gen.IntRange(0, 12),
		gen.Int64(),
	))

	properties.Property("every endpoint reference resolves", prop.ForAll(
		func(n int, seed int64) bool {
			sys, err := CreateSelfSimilarEnergySystem(n, systemmodel.Timeframe{}, seed)
			if err != nil {
				return false
			}
			return validation.ResolveEndpoints(sys) == nil
		},
		gen.IntRange(1, 12),
		gen.Int64(),
	))

	properties.Property("same seed reproduces the same system", prop.ForAll(
		func(n int, seed int64) bool {
			first, err := CreateSelfSimilarEnergySystem(n, systemmodel.Timeframe{}, seed)
			if err != nil {
				return false
			}
			second, err := CreateSelfSimilarEnergySystem(n, systemmodel.Timeframe{}, seed)
			if err != nil {
				return false
			}
			return reflect.DeepEqual(first, second)
		},
		gen.IntRange(1, 8),
		gen.Int64(),
	))

	properties.TestingRun(t)
}

func TestSelfSimilarNaming(t *testing.T) {
	sys, err := CreateSelfSimilarEnergySystem(3, systemmodel.Timeframe{}, 7)
	if err != nil {
		t.Fatalf("CreateSelfSimilarEnergySystem: %v", err)
	}
	if sys.UID != "Self_Similar_Energy_System_(N=3)" {
		t.Errorf("UID = %q", sys.UID)
	}
	if sys.Timeframe.Periods != 1 {
		t.Errorf("default periods = %d, want 1", sys.Timeframe.Periods)
	}
	for i := 0; i < 2; i++ {
		name := fmt.Sprintf("connector_%d", i)
		if _, ok := sys.Node(name); !ok {
			t.Errorf("node %q missing", name)
		}
	}
}
