package scenarios

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mathias-ammon/tessif-examples/pkg/validation"
)

func TestCreateGridES(t *testing.T) {
	sys, err := CreateGridES()
	require.NoError(t, err)

	assert.Equal(t, "my_energy_system", sys.UID)
	assert.Equal(t, 3, sys.Timeframe.Periods)
	assert.Len(t, sys.Nodes(), 28)
	assert.Len(t, sys.Connectors, 2)
	assert.NoError(t, validation.ValidateSystem(sys))

	for _, name := range []string{
		"Solar Panel", "Gas Station", "Biogas plant", "Onshore Wind Power",
		"Solar Thermal", "Offshore Wind Power", "Coal Supply",
		"BHKW", "Power to Heat", "GuD", "HKW",
		"Battery", "Heat Storage", "Pumped Storage",
		"Low Voltage Powerline", "Medium Voltage Powerline", "High Voltage Powerline",
		"District Heating", "Low Voltage Transformator", "High Voltage Transformator",
	} {
		_, ok := sys.Node(name)
		assert.True(t, ok, "node %q missing", name)
	}
}

func TestCreateGenericGrid(t *testing.T) {
	sys, err := CreateGenericGrid()
	require.NoError(t, err)

	assert.Equal(t, "Generic_Grid", sys.UID)
	assert.Equal(t, 3, sys.Timeframe.Periods)
	assert.Len(t, sys.Nodes(), 28)
	assert.NoError(t, validation.ValidateSystem(sys))
}

func TestCreateGridKPES(t *testing.T) {
	sys, err := CreateGridKPES(24)
	require.NoError(t, err)

	assert.Equal(t, `Energy System Grid "Kupferplatte"`, sys.UID)
	assert.Equal(t, 24, sys.Timeframe.Periods)
	assert.Len(t, sys.Nodes(), 26)
	assert.Empty(t, sys.Storages)

	// the bus wiring keeps references to nodes this variant dropped,
	// so strict endpoint resolution reports them
	assert.Error(t, validation.ResolveEndpoints(sys))
}

func TestCreateGridKPESProfileBounds(t *testing.T) {
	// the bundled profiles carry 72 hourly values
	_, err := CreateGridKPES(72)
	require.NoError(t, err)

	_, err = CreateGridKPES(73)
	require.Error(t, err)
}

func TestCreateGridTSES(t *testing.T) {
	sys, err := CreateGridTSES(24, 0.99, 60000)
	require.NoError(t, err)

	assert.Equal(t, "Energy System Grid Transformers and Storages", sys.UID)
	assert.Equal(t, 24, sys.Timeframe.Periods)
	assert.Len(t, sys.Nodes(), 31)
	assert.Len(t, sys.Transformers, 9)
	assert.Len(t, sys.Storages, 3)
	assert.Empty(t, sys.Connectors)
	assert.NoError(t, validation.ValidateSystem(sys))

	for _, name := range []string{
		"Pumped Storage LV", "Pumped Storage MV", "Pumped Storage HV",
	} {
		_, ok := sys.Node(name)
		assert.True(t, ok, "node %q missing", name)
	}
}

func TestCreateGridTSESGridCapacity(t *testing.T) {
	sys, err := CreateGridTSES(24, 0.99, 60000)
	require.NoError(t, err)

	var found bool
	for _, tr := range sys.Transformers {
		if tr.Name != "Low Medium Transformator" {
			continue
		}
		found = true
		assert.Equal(t, "connector", tr.NodeType)
		assert.Equal(t, 60000.0, tr.FlowRates["low-voltage-electricity"].Max)
		assert.InDelta(t, 0.99*60000, tr.FlowRates["medium-voltage-electricity"].Max, 1e-9)
	}
	assert.True(t, found, "grid transformer missing")
}

func TestCreateHHES(t *testing.T) {
	sys, err := CreateHHES(24)
	require.NoError(t, err)

	assert.Equal(t, "Energy System Hamburg", sys.UID)
	assert.Equal(t, 24, sys.Timeframe.Periods)
	assert.Len(t, sys.Nodes(), 34)
	assert.Equal(t, "2019", sys.GlobalConstraints.Name)
	assert.NoError(t, validation.ValidateSystem(sys))

	assert.Len(t, sys.Storages, 1)
	assert.Equal(t, "est", sys.Storages[0].Name)

	var foundPowerline bool
	for _, bus := range sys.Busses {
		if bus.Name != "powerline" {
			continue
		}
		foundPowerline = true
		assert.Len(t, bus.Inputs, 15)
		assert.Len(t, bus.Outputs, 4)
	}
	assert.True(t, foundPowerline, "powerline bus missing")
}
