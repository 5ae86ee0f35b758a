package basic

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mathias-ammon/tessif-examples/pkg/systemmodel"
	"github.com/mathias-ammon/tessif-examples/pkg/validation"
)

// TestCatalog exercises every shipped factory once and checks the
// resulting system's identity, horizon and wiring.
func TestCatalog(t *testing.T) {
	tests := []struct {
		name    string
		create  func() (*systemmodel.System, error)
		uid     string
		periods int
		nodes   int
	}{
		{
			name:    "minimum working example",
			create:  CreateMWE,
			uid:     "Minimum_Working_Example",
			periods: 4,
			nodes:   6,
		},
		{
			name:    "fully parameterized working example",
			create:  CreateFPWE,
			uid:     "Fully_Parameterized_Working_Example",
			periods: 3,
			nodes:   7,
		},
		{
			name:    "emission objective",
			create:  CreateEmissionObjective,
			uid:     "Emission_Objective_Example",
			periods: 4,
			nodes:   9,
		},
		{
			name:    "connected energy systems",
			create:  CreateConnectedES,
			uid:     "Connected-Energy-Systems-Example",
			periods: 3,
			nodes:   7,
		},
		{
			name:    "combined heat and power",
			create:  CreateCHP,
			uid:     "CHP_Example",
			periods: 4,
			nodes:   9,
		},
		{
			name:    "variable chp",
			create:  CreateVariableCHP,
			uid:     "CHP_Example",
			periods: 4,
			nodes:   10,
		},
		{
			name:    "storage example",
			create:  CreateStorageExample,
			uid:     "Storage-Energysystem-Example",
			periods: 5,
			nodes:   4,
		},
		{
			name:    "storage fixed ratio expansion",
			create:  CreateStorageFixedRatioExpansionExample,
			uid:     "Storage-Energysystem-Example",
			periods: 5,
			nodes:   4,
		},
		{
			name:    "expansion plan",
			create:  CreateExpansionPlanExample,
			uid:     "Expansion Plan Example",
			periods: 4,
			nodes:   5,
		},
		{
			name:    "zero costs",
			create:  CreateZeroCostsES,
			uid:     "Zero Costs Example",
			periods: 4,
			nodes:   5,
		},
		{
			name:    "time varying efficiency transformer",
			create:  CreateTimeVaryingEfficiencyTransformer,
			uid:     "Transformer-Timeseries-Example",
			periods: 3,
			nodes:   6,
		},
		{
			name:    "two transformer grid",
			create:  CreateSimpleTransformerGridES,
			uid:     "Two Transformer Grid Example",
			periods: 6,
			nodes:   12,
		},
		{
			name: "statistical identification",
			create: func() (*systemmodel.System, error) {
				return CreateStatisticalIdentificationExample(24)
			},
			uid:     "Statistical Identification Example",
			periods: 24,
			nodes:   8,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sys, err := tt.create()
			require.NoError(t, err)
			require.NotNil(t, sys)

			assert.Equal(t, tt.uid, sys.UID)
			assert.Equal(t, tt.periods, sys.Timeframe.Periods)
			assert.Len(t, sys.Nodes(), tt.nodes)
			assert.NoError(t, validation.ValidateSystem(sys))
		})
	}
}

func TestEmissionObjectiveConstraint(t *testing.T) {
	sys, err := CreateEmissionObjective()
	require.NoError(t, err)

	assert.Equal(t, float64(60), sys.GlobalConstraints.Emissions)
}

func TestStatisticalIdentificationConstraintName(t *testing.T) {
	sys, err := CreateStatisticalIdentificationExample(24)
	require.NoError(t, err)

	assert.Equal(t, "2019", sys.GlobalConstraints.Name)
}

func TestStatisticalIdentificationShortProfile(t *testing.T) {
	_, err := CreateStatisticalIdentificationExample(100000)
	require.Error(t, err)
}
