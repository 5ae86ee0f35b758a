package scientific

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mathias-ammon/tessif-examples/pkg/scenarios"
	"github.com/mathias-ammon/tessif-examples/pkg/validation"
)

func TestCreateHamburgInspiredHNPMSC(t *testing.T) {
	sys, err := CreateHamburgInspiredHNPMSC(24)
	require.NoError(t, err)

	assert.Equal(t, "Energy System Hamburg", sys.UID)
	assert.Equal(t, 24, sys.Timeframe.Periods)
	assert.NoError(t, validation.ValidateSystem(sys))
}

func TestHamburgInspiredMatchesPlantPark(t *testing.T) {
	published, err := CreateHamburgInspiredHNPMSC(24)
	require.NoError(t, err)
	reference, err := scenarios.CreateHHES(24)
	require.NoError(t, err)

	assert.Equal(t, reference.NodeNames(), published.NodeNames())
}
