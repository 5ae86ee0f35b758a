package components

// Transformer converts one carrier into one or more others, e.g. a
// power plant turning fuel into electricity. Conversions map an
// (input, output) carrier pair to its efficiency, which may vary per
// timestep.
type Transformer struct {
	Name    string   `yaml:"name" validate:"required"`
	Inputs  []string `yaml:"inputs" validate:"required,min=1"`
	Outputs []string `yaml:"outputs" validate:"required,min=1"`

	Conversions map[Conversion]Factor `yaml:"conversions,omitempty"`

	Attributes `yaml:",inline"`

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

func (t Transformer) UID() string { return t.Name }

// CHP is a combined heat and power plant. On top of the plain
// transformer surface it carries the extraction turbine parameters
// used by variable power to heat ratios. The per-timestep series must
// match the system's timeframe. Unlike flow timeseries, the Min/Max
// pairs here are operating point values at minimal and maximal heat
// extraction, not ordered bounds; Min may exceed Max.
type CHP struct {
	Transformer `yaml:",inline"`

	ConversionFactorFullCondensation map[Conversion]Factor `yaml:"conversion_factor_full_condensation,omitempty"`
	EnthalpyLoss                     SeriesMinMax          `yaml:"enthalpy_loss,omitempty"`
	PowerWoDistHeat                  SeriesMinMax          `yaml:"power_wo_dist_heat,omitempty"`
	ElEfficiencyWoDistHeat           SeriesMinMax          `yaml:"el_efficiency_wo_dist_heat,omitempty"`
	MinCondenserLoad                 []float64             `yaml:"min_condenser_load,omitempty"`
	PowerLossIndex                   []float64             `yaml:"power_loss_index,omitempty"`
	BackPressure                     bool                  `yaml:"back_pressure,omitempty"`
}
