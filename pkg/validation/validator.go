// Package validation checks assembled system models beyond the
// structural rules the builder already enforces: struct level field
// validation, endpoint reference resolution and timeseries bound
// consistency. It is deliberately separate from construction because
// a handful of historical scenarios ship with unresolved references
// that downstream tooling tolerates.
package validation

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/mathias-ammon/tessif-examples/pkg/components"
	"github.com/mathias-ammon/tessif-examples/pkg/systemmodel"
)

var (
	// validate is a singleton validator instance
	validate *validator.Validate
)

func init() {
	validate = validator.New()
}

// ValidateSystem runs every check on the given system and returns the
// first violation found.
func ValidateSystem(sys *systemmodel.System) error {
	if sys == nil {
		return errors.New("system must not be nil")
	}
	if err := validate.Struct(sys); err != nil {
		return formatValidationError(err)
	}
	for _, node := range sys.Nodes() {
		if err := validate.Struct(node); err != nil {
			return fmt.Errorf("node %q: %w", node.UID(), formatValidationError(err))
		}
	}
	if err := checkTimeseriesBounds(sys); err != nil {
		return err
	}
	return ResolveEndpoints(sys)
}

// ResolveEndpoints verifies that every bus endpoint reference of the
// form "NodeName.carrier" names an existing node that declares the
// carrier on the matching side, and that connector interfaces name
// existing busses.
func ResolveEndpoints(sys *systemmodel.System) error {
	producers := make(map[string]map[string]bool)
	consumers := make(map[string]map[string]bool)
	busses := make(map[string]bool)

	add := func(into map[string]map[string]bool, name string, carriers ...string) {
		set := into[name]
		if set == nil {
			set = make(map[string]bool)
			into[name] = set
		}
		for _, c := range carriers {
			set[c] = true
		}
	}

	for _, n := range sys.Sources {
		add(producers, n.Name, n.Outputs...)
	}
	for _, n := range sys.Sinks {
		add(consumers, n.Name, n.Inputs...)
	}
	for _, n := range sys.Transformers {
		add(producers, n.Name, n.Outputs...)
		add(consumers, n.Name, n.Inputs...)
	}
	for _, n := range sys.CHPs {
		add(producers, n.Name, n.Outputs...)
		add(consumers, n.Name, n.Inputs...)
	}
	for _, n := range sys.Storages {
		add(producers, n.Name, n.Output)
		add(consumers, n.Name, n.Input)
	}
	for _, n := range sys.Busses {
		busses[n.Name] = true
	}

	names := make(map[string]bool)
	for _, n := range sys.Nodes() {
		names[n.UID()] = true
	}

	for _, bus := range sys.Busses {
		for _, ref := range bus.Inputs {
			if err := resolve(producers, names, ref); err != nil {
				return fmt.Errorf("bus %q input: %w", bus.Name, err)
			}
		}
		for _, ref := range bus.Outputs {
			if err := resolve(consumers, names, ref); err != nil {
				return fmt.Errorf("bus %q output: %w", bus.Name, err)
			}
		}
	}

	for _, conn := range sys.Connectors {
		for _, iface := range conn.Interfaces {
			if !busses[iface] {
				return fmt.Errorf("connector %q: interface %q does not name a bus", conn.Name, iface)
			}
		}
	}
	return nil
}

func resolve(carriers map[string]map[string]bool, names map[string]bool, ref string) error {
	i := strings.LastIndex(ref, ".")
	if i < 1 || i == len(ref)-1 {
		return fmt.Errorf("reference %q is not of the form NodeName.carrier", ref)
	}
	name, carrier := ref[:i], ref[i+1:]
	if carriers[name][carrier] {
		return nil
	}
	// a node known only on the opposite side still exists; report the
	// side mismatch rather than a missing node
	if !names[name] {
		return fmt.Errorf("reference %q: no such node", ref)
	}
	return fmt.Errorf("reference %q: node %q does not carry %q on that side", ref, name, carrier)
}

// checkTimeseriesBounds enforces min <= max per timestep on every flow
// timeseries. Builder length checks already guarantee matching series
// lengths.
func checkTimeseriesBounds(sys *systemmodel.System) error {
	check := func(name string, ts map[string]components.SeriesMinMax) error {
		for carrier, series := range ts {
			for t := range series.Min {
				if series.Min[t] > series.Max[t] {
					return fmt.Errorf("node %q: timeseries for %q has min %v > max %v at step %d",
						name, carrier, series.Min[t], series.Max[t], t)
				}
			}
		}
		return nil
	}

	for _, n := range sys.Sources {
		if err := check(n.Name, n.Timeseries); err != nil {
			return err
		}
	}
	for _, n := range sys.Sinks {
		if err := check(n.Name, n.Timeseries); err != nil {
			return err
		}
	}
	for _, n := range sys.Transformers {
		if err := check(n.Name, n.Timeseries); err != nil {
			return err
		}
	}
	for _, n := range sys.CHPs {
		if err := check(n.Name, n.Timeseries); err != nil {
			return err
		}
	}
	for _, n := range sys.Storages {
		if err := check(n.Name, n.Timeseries); err != nil {
			return err
		}
	}
	return nil
}

// formatValidationError turns validator's field errors into a single
// readable message.
func formatValidationError(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fmt.Sprintf("%s failed %q validation", fe.Field(), fe.Tag()))
	}
	return errors.New(strings.Join(msgs, "; "))
}
