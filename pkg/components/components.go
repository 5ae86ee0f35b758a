package components

// Node is implemented by every component variant. The uid doubles as
// the node's display name and must be unique within a system.
type Node interface {
	UID() string
}

// Attributes carries the descriptive metadata shared by every node.
// All fields are optional; they classify a node for post-processing
// and visualization but do not constrain it.
type Attributes struct {
	Latitude  float64 `yaml:"latitude,omitempty"`
	Longitude float64 `yaml:"longitude,omitempty"`
	Region    string  `yaml:"region,omitempty"`
	Sector    string  `yaml:"sector,omitempty"`
	Carrier   string  `yaml:"carrier,omitempty"`
	NodeType  string  `yaml:"node_type,omitempty"`
	Component string  `yaml:"component,omitempty"`
}

// Source feeds one or more carriers into the system. All flow
// attribute maps are keyed by carrier; absent entries fall back to the
// framework defaults (unbounded rates, zero costs and emissions).
type Source struct {
	Name    string   `yaml:"name" validate:"required"`
	Outputs []string `yaml:"outputs" validate:"required,min=1"`

	Attributes `yaml:",inline"`

	AccumulatedAmounts    map[string]MinMax           `yaml:"accumulated_amounts,omitempty"`
	FlowRates             map[string]MinMax           `yaml:"flow_rates,omitempty"`
	FlowCosts             map[string]float64          `yaml:"flow_costs,omitempty"`
	FlowEmissions         map[string]float64          `yaml:"flow_emissions,omitempty"`
	FlowGradients         map[string]PositiveNegative `yaml:"flow_gradients,omitempty"`
	GradientCosts         map[string]PositiveNegative `yaml:"gradient_costs,omitempty"`
	Timeseries            map[string]SeriesMinMax     `yaml:"timeseries,omitempty"`
	Expandable            map[string]bool             `yaml:"expandable,omitempty"`
	ExpansionCosts        map[string]float64          `yaml:"expansion_costs,omitempty"`
	ExpansionLimits       map[string]MinMax           `yaml:"expansion_limits,omitempty"`
	MILP                  map[string]bool             `yaml:"milp,omitempty"`
	InitialStatus         bool                        `yaml:"initial_status,omitempty"`
	StatusInertia         OnOff                       `yaml:"status_inertia,omitempty"`
	StatusChangingCosts   OnOff                       `yaml:"status_changing_costs,omitempty"`
	NumberOfStatusChanges OnOff                       `yaml:"number_of_status_changes,omitempty"`
	CostsForBeingActive   float64                     `yaml:"costs_for_being_active,omitempty"`
}

func (s Source) UID() string { return s.Name }

// Sink drains one or more carriers out of the system, e.g. a demand
// or an excess outlet.
type Sink struct {
	Name   string   `yaml:"name" validate:"required"`
	Inputs []string `yaml:"inputs" validate:"required,min=1"`

	Attributes `yaml:",inline"`

	AccumulatedAmounts    map[string]MinMax           `yaml:"accumulated_amounts,omitempty"`
	FlowRates             map[string]MinMax           `yaml:"flow_rates,omitempty"`
	FlowCosts             map[string]float64          `yaml:"flow_costs,omitempty"`
	FlowEmissions         map[string]float64          `yaml:"flow_emissions,omitempty"`
	FlowGradients         map[string]PositiveNegative `yaml:"flow_gradients,omitempty"`
	GradientCosts         map[string]PositiveNegative `yaml:"gradient_costs,omitempty"`
	Timeseries            map[string]SeriesMinMax     `yaml:"timeseries,omitempty"`
	Expandable            map[string]bool             `yaml:"expandable,omitempty"`
	ExpansionCosts        map[string]float64          `yaml:"expansion_costs,omitempty"`
	ExpansionLimits       map[string]MinMax           `yaml:"expansion_limits,omitempty"`
	MILP                  map[string]bool             `yaml:"milp,omitempty"`
	InitialStatus         bool                        `yaml:"initial_status,omitempty"`
	StatusInertia         OnOff                       `yaml:"status_inertia,omitempty"`
	StatusChangingCosts   OnOff                       `yaml:"status_changing_costs,omitempty"`
	NumberOfStatusChanges OnOff                       `yaml:"number_of_status_changes,omitempty"`
	CostsForBeingActive   float64                     `yaml:"costs_for_being_active,omitempty"`
}

func (s Sink) UID() string { return s.Name }

// Bus distributes a carrier between nodes. Inputs and Outputs are
// endpoint references of the form "NodeName.carrier"; the referenced
// node must declare that carrier on the matching side.
type Bus struct {
	Name    string   `yaml:"name" validate:"required"`
	Inputs  []string `yaml:"inputs,omitempty" validate:"dive,contains=."`
	Outputs []string `yaml:"outputs,omitempty" validate:"dive,contains=."`

	Attributes `yaml:",inline"`
}

func (b Bus) UID() string { return b.Name }
