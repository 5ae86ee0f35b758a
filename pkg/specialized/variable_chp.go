package specialized

import (
	"github.com/mathias-ammon/tessif-examples/pkg/basic"
	"github.com/mathias-ammon/tessif-examples/pkg/systemmodel"
)

// CreateVariableCHP returns the two formulation CHP comparison under
// its dedicated investigation uid.
func CreateVariableCHP() (*systemmodel.System, error) {
	sys, err := basic.CreateVariableCHP()
	if err != nil {
		return nil, err
	}
	sys.UID = "Variable_CHP_Example"
	return sys, nil
}
