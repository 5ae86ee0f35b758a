package specialized

import (
	"github.com/mathias-ammon/tessif-examples/pkg/scenarios"
	"github.com/mathias-ammon/tessif-examples/pkg/systemmodel"
)

// CreateGenericGrid returns the three voltage level grid model under
// its catalog uid.
func CreateGenericGrid() (*systemmodel.System, error) {
	return scenarios.CreateGenericGrid()
}
