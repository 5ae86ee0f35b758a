package systemmodel

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// Encode writes the system as YAML. Unbounded values render as .inf
// and survive a round trip through Decode.
func Encode(w io.Writer, sys *System) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(sys); err != nil {
		return fmt.Errorf("failed to encode system %q: %w", sys.UID, err)
	}
	return enc.Close()
}

// Decode reads a YAML system description produced by Encode.
func Decode(r io.Reader) (*System, error) {
	var sys System
	if err := yaml.NewDecoder(r).Decode(&sys); err != nil {
		return nil, fmt.Errorf("failed to decode system: %w", err)
	}
	return &sys, nil
}
