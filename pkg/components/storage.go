package components

// Storage buffers a single carrier between timesteps. Capacity and the
// initial state of charge share the carrier's unit; flow attributes
// are keyed by the carrier like everywhere else.
type Storage struct {
	Name   string `yaml:"name" validate:"required"`
	Input  string `yaml:"input" validate:"required"`
	Output string `yaml:"output" validate:"required"`

	Capacity   float64 `yaml:"capacity"`
	InitialSOC float64 `yaml:"initial_soc"`

	Attributes `yaml:",inline"`

	IdleChanges      PositiveNegative `yaml:"idle_changes,omitempty"`
	FlowEfficiencies map[string]InOut `yaml:"flow_efficiencies,omitempty"`

	FlowRates             map[string]MinMax           `yaml:"flow_rates,omitempty"`
	FlowCosts             map[string]float64          `yaml:"flow_costs,omitempty"`
	FlowEmissions         map[string]float64          `yaml:"flow_emissions,omitempty"`
	FlowGradients         map[string]PositiveNegative `yaml:"flow_gradients,omitempty"`
	GradientCosts         map[string]PositiveNegative `yaml:"gradient_costs,omitempty"`
	Timeseries            map[string]SeriesMinMax     `yaml:"timeseries,omitempty"`
	Expandable            map[string]bool             `yaml:"expandable,omitempty"`
	ExpansionCosts        map[string]float64          `yaml:"expansion_costs,omitempty"`
	ExpansionLimits       map[string]MinMax           `yaml:"expansion_limits,omitempty"`
	FixedExpansionRatios  map[string]bool             `yaml:"fixed_expansion_ratios,omitempty"`
	MILP                  map[string]bool             `yaml:"milp,omitempty"`
	InitialStatus         bool                        `yaml:"initial_status,omitempty"`
	StatusInertia         OnOff                       `yaml:"status_inertia,omitempty"`
	StatusChangingCosts   OnOff                       `yaml:"status_changing_costs,omitempty"`
	NumberOfStatusChanges OnOff                       `yaml:"number_of_status_changes,omitempty"`
	CostsForBeingActive   float64                     `yaml:"costs_for_being_active,omitempty"`
}

func (s Storage) UID() string { return s.Name }

// Connector couples two busses, optionally with direction dependent
// losses. Interfaces names the two busses; Conversions maps each
// direction, keyed by bus names, to its transfer efficiency.
type Connector struct {
	Name       string    `yaml:"name" validate:"required"`
	Interfaces [2]string `yaml:"interfaces"`

	Conversions map[Conversion]float64 `yaml:"conversions,omitempty"`

	Attributes `yaml:",inline"`

	Inputs  []string `yaml:"inputs,omitempty"`
	Outputs []string `yaml:"outputs,omitempty"`
}

func (c Connector) UID() string { return c.Name }
