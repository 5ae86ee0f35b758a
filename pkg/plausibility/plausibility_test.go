package plausibility

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mathias-ammon/tessif-examples/pkg/validation"
)

func TestCreateCHPEmissions(t *testing.T) {
	sys, err := CreateCHPEmissions()
	require.NoError(t, err)

	assert.Equal(t, "Chp Emissions MSC", sys.UID)
	assert.Equal(t, 4, sys.Timeframe.Periods)
	assert.Equal(t, float64(54), sys.GlobalConstraints.Emissions)
	assert.Len(t, sys.Nodes(), 9)
	assert.NoError(t, validation.ValidateSystem(sys))
}

func TestCreateStorageEmissions(t *testing.T) {
	sys, err := CreateStorageEmissions()
	require.NoError(t, err)

	assert.Equal(t, "Storage Emissions MSC", sys.UID)
	assert.Equal(t, 4, sys.Timeframe.Periods)
	assert.Equal(t, float64(20), sys.GlobalConstraints.Emissions)
	assert.Len(t, sys.Nodes(), 5)
	assert.NoError(t, validation.ValidateSystem(sys))
}
