package specialized

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mathias-ammon/tessif-examples/pkg/systemmodel"
	"github.com/mathias-ammon/tessif-examples/pkg/validation"
)

func TestCreateSelfSimilarSystemModel(t *testing.T) {
	sys, err := CreateSelfSimilarSystemModel(3, systemmodel.Timeframe{}, UnitMinimal, 42)
	require.NoError(t, err)

	assert.Equal(t, "Self Similar System Model (n=3)", sys.UID)
	assert.Equal(t, 5, sys.Timeframe.Periods)
	assert.Len(t, sys.Connectors, 2)
	assert.Len(t, sys.Nodes(), 9*3+2)
	assert.NoError(t, validation.ValidateSystem(sys))

	for _, name := range []string{"Central Bus 0", "Central Bus 2", "Connector 1", "Connector 2"} {
		_, ok := sys.Node(name)
		assert.True(t, ok, "node %q missing", name)
	}
}

func TestCreateSelfSimilarSystemModelDefaultsUnit(t *testing.T) {
	sys, err := CreateSelfSimilarSystemModel(1, systemmodel.Timeframe{}, "", 42)
	require.NoError(t, err)
	assert.Len(t, sys.Nodes(), 9)
}

func TestCreateSelfSimilarSystemModelUnknownUnit(t *testing.T) {
	_, err := CreateSelfSimilarSystemModel(2, systemmodel.Timeframe{}, UnitKind("fractal"), 42)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown unit kind")
}

func TestCreateSelfSimilarSystemModelDeterminism(t *testing.T) {
	first, err := CreateSelfSimilarSystemModel(4, systemmodel.Timeframe{}, UnitMinimal, 7)
	require.NoError(t, err)
	second, err := CreateSelfSimilarSystemModel(4, systemmodel.Timeframe{}, UnitMinimal, 7)
	require.NoError(t, err)

	assert.Equal(t, first, second)

	third, err := CreateSelfSimilarSystemModel(4, systemmodel.Timeframe{}, UnitMinimal, 8)
	require.NoError(t, err)
	assert.NotEqual(t, first, third)
}

func TestCreateMinimalESUnit(t *testing.T) {
	sys, err := CreateMinimalESUnit(0, systemmodel.Timeframe{}, 42)
	require.NoError(t, err)

	assert.Equal(t, "Minimum Self Similar System Model Unit 0", sys.UID)
	assert.Equal(t, 5, sys.Timeframe.Periods)
	assert.Empty(t, sys.Connectors)
	assert.Len(t, sys.Nodes(), 9)
	assert.NoError(t, validation.ValidateSystem(sys))
}

func TestCreateMinimalESUnitCarriesPredecessorConnector(t *testing.T) {
	sys, err := CreateMinimalESUnit(2, systemmodel.Timeframe{}, 42)
	require.NoError(t, err)

	require.Len(t, sys.Connectors, 1)
	assert.Equal(t, "Connector 2", sys.Connectors[0].Name)
	// the predecessor bus lives in another unit, so the standalone
	// unit does not resolve on its own
	assert.Error(t, validation.ResolveEndpoints(sys))
}

func TestCreateVariableCHP(t *testing.T) {
	sys, err := CreateVariableCHP()
	require.NoError(t, err)

	assert.Equal(t, "Variable_CHP_Example", sys.UID)
	assert.Len(t, sys.CHPs, 2)
	assert.NoError(t, validation.ValidateSystem(sys))
}

func TestCreateGenericGrid(t *testing.T) {
	sys, err := CreateGenericGrid()
	require.NoError(t, err)

	assert.Equal(t, "Generic_Grid", sys.UID)
	assert.Equal(t, 3, sys.Timeframe.Periods)
	assert.NoError(t, validation.ValidateSystem(sys))
}
