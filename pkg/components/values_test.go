package components

import (
	"math"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestConversionTextRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		conv Conversion
		text string
	}{
		{"simple", Conversion{From: "fuel", To: "electricity"}, "fuel->electricity"},
		{"spaced carriers", Conversion{From: "hot water", To: "steam"}, "hot water->steam"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			text, err := tt.conv.MarshalText()
			if err != nil {
				t.Fatalf("MarshalText: %v", err)
			}
			if string(text) != tt.text {
				t.Errorf("MarshalText = %q, want %q", text, tt.text)
			}

			var parsed Conversion
			if err := parsed.UnmarshalText(text); err != nil {
				t.Fatalf("UnmarshalText: %v", err)
			}
			if parsed != tt.conv {
				t.Errorf("round trip = %+v, want %+v", parsed, tt.conv)
			}
		})
	}
}

func TestConversionUnmarshalTextRejectsMalformed(t *testing.T) {
	var c Conversion
	if err := c.UnmarshalText([]byte("no separator")); err == nil {
		t.Error("expected error for text without separator")
	}
}

func TestFactorFixed(t *testing.T) {
	f := Fixed(0.42)
	if f.IsVarying() {
		t.Error("fixed factor reported as varying")
	}
	if got := f.Value(); got != 0.42 {
		t.Errorf("Value = %v, want 0.42", got)
	}
	if got := f.At(7); got != 0.42 {
		t.Errorf("At(7) = %v, want 0.42", got)
	}
	if f.Series() != nil {
		t.Errorf("Series = %v, want nil", f.Series())
	}
}

func TestFactorVarying(t *testing.T) {
	f := Varying(0.6, 0.8, 0.4)
	if !f.IsVarying() {
		t.Error("varying factor reported as fixed")
	}
	if got := f.Value(); got != 0.6 {
		t.Errorf("Value = %v, want first step 0.6", got)
	}
	if got := f.At(2); got != 0.4 {
		t.Errorf("At(2) = %v, want 0.4", got)
	}
	if got := len(f.Series()); got != 3 {
		t.Errorf("len(Series) = %d, want 3", got)
	}
}

func TestFactorYAML(t *testing.T) {
	type wrapper struct {
		Conversions map[Conversion]Factor `yaml:"conversions"`
	}
	in := wrapper{Conversions: map[Conversion]Factor{
		{From: "fuel", To: "electricity"}: Fixed(0.42),
		{From: "fuel", To: "heat"}:        Varying(0.5, 0.6),
	}}

	raw, err := yaml.Marshal(in)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if !strings.Contains(string(raw), "fuel->electricity") {
		t.Errorf("marshaled yaml lacks textual conversion key:\n%s", raw)
	}

	var out wrapper
	if err := yaml.Unmarshal(raw, &out); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	fixed := out.Conversions[Conversion{From: "fuel", To: "electricity"}]
	if fixed.IsVarying() || fixed.Value() != 0.42 {
		t.Errorf("fixed factor round trip = %+v", fixed)
	}
	varying := out.Conversions[Conversion{From: "fuel", To: "heat"}]
	if !varying.IsVarying() || varying.At(1) != 0.6 {
		t.Errorf("varying factor round trip = %+v", varying)
	}
}

func TestFixedSeries(t *testing.T) {
	s := FixedSeries(12, 3, 7)
	if len(s.Min) != 3 || len(s.Max) != 3 {
		t.Fatalf("series lengths = %d/%d, want 3/3", len(s.Min), len(s.Max))
	}
	for i := range s.Min {
		if s.Min[i] != s.Max[i] {
			t.Errorf("step %d: min %v != max %v", i, s.Min[i], s.Max[i])
		}
	}
}

func TestRepeat(t *testing.T) {
	s := Repeat(0.19, 4)
	if len(s) != 4 {
		t.Fatalf("len = %d, want 4", len(s))
	}
	for i, v := range s {
		if v != 0.19 {
			t.Errorf("step %d = %v, want 0.19", i, v)
		}
	}
}

func TestInfIsUnbounded(t *testing.T) {
	if !math.IsInf(Inf, 1) {
		t.Errorf("Inf = %v, want +Inf", Inf)
	}
}
