package systemmodel

import (
	"math"

	"github.com/mathias-ammon/tessif-examples/pkg/components"
)

// GlobalConstraints bounds system wide totals over the whole horizon.
// Unused bounds stay at +Inf.
type GlobalConstraints struct {
	Name      string  `yaml:"name"`
	Emissions float64 `yaml:"emissions"`
	Resources float64 `yaml:"resources"`
	Material  float64 `yaml:"material"`
}

// DefaultGlobalConstraints returns the unconstrained default set.
func DefaultGlobalConstraints() GlobalConstraints {
	return GlobalConstraints{
		Name:      "default",
		Emissions: math.Inf(1),
		Resources: math.Inf(1),
		Material:  math.Inf(1),
	}
}

// System is a complete, static energy system description.
type System struct {
	UID       string    `yaml:"uid" validate:"required"`
	Timeframe Timeframe `yaml:"timeframe"`

	Busses       []components.Bus         `yaml:"busses,omitempty"`
	Sources      []components.Source      `yaml:"sources,omitempty"`
	Sinks        []components.Sink        `yaml:"sinks,omitempty"`
	Transformers []components.Transformer `yaml:"transformers,omitempty"`
	CHPs         []components.CHP         `yaml:"chps,omitempty"`
	Storages     []components.Storage     `yaml:"storages,omitempty"`
	Connectors   []components.Connector   `yaml:"connectors,omitempty"`

	GlobalConstraints GlobalConstraints `yaml:"global_constraints"`
}

// Nodes returns every node of the system in a stable order: busses,
// sources, sinks, transformers, chps, storages, connectors.
func (s *System) Nodes() []components.Node {
	nodes := make([]components.Node, 0,
		len(s.Busses)+len(s.Sources)+len(s.Sinks)+len(s.Transformers)+
			len(s.CHPs)+len(s.Storages)+len(s.Connectors))
	for _, n := range s.Busses {
		nodes = append(nodes, n)
	}
	for _, n := range s.Sources {
		nodes = append(nodes, n)
	}
	for _, n := range s.Sinks {
		nodes = append(nodes, n)
	}
	for _, n := range s.Transformers {
		nodes = append(nodes, n)
	}
	for _, n := range s.CHPs {
		nodes = append(nodes, n)
	}
	for _, n := range s.Storages {
		nodes = append(nodes, n)
	}
	for _, n := range s.Connectors {
		nodes = append(nodes, n)
	}
	return nodes
}

// NodeNames returns the uids of all nodes in Nodes order.
func (s *System) NodeNames() []string {
	nodes := s.Nodes()
	names := make([]string, len(nodes))
	for i, n := range nodes {
		names[i] = n.UID()
	}
	return names
}

// Node looks a node up by uid. The second return value reports whether
// the system contains it.
func (s *System) Node(uid string) (components.Node, bool) {
	for _, n := range s.Nodes() {
		if n.UID() == uid {
			return n, true
		}
	}
	return nil, false
}
