// Package scientific collects system models taken from publications.
package scientific

import (
	"github.com/mathias-ammon/tessif-examples/pkg/scenarios"
	"github.com/mathias-ammon/tessif-examples/pkg/systemmodel"
)

// CreateHamburgInspiredHNPMSC returns the Hamburg network plan inspired
// minimum working system model combination used for scientific
// publications. It shares the Hamburg plant park construction.
func CreateHamburgInspiredHNPMSC(periods int) (*systemmodel.System, error) {
	return scenarios.NewHamburgSystem(periods)
}
