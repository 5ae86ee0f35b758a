package profiles

import (
	"errors"
	"testing"
)

func TestColumn(t *testing.T) {
	values, err := Column("Loads.csv", "household_demand", 24)
	if err != nil {
		t.Fatalf("Column: %v", err)
	}
	if len(values) != 24 {
		t.Fatalf("len = %d, want 24", len(values))
	}
	if values[0] != 10375.00 {
		t.Errorf("values[0] = %v, want 10375", values[0])
	}
	if values[1] != 9832.26 {
		t.Errorf("values[1] = %v, want 9832.26", values[1])
	}
}

func TestColumnErrors(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		column  string
		periods int
		wantErr error
	}{
		{
			name:    "unknown file",
			file:    "No_Such_File.csv",
			column:  "heat_demand",
			periods: 24,
			wantErr: ErrUnknownProfile,
		},
		{
			name:    "unknown column",
			file:    "Loads.csv",
			column:  "no_such_column",
			periods: 24,
			wantErr: ErrUnknownColumn,
		},
		{
			name:    "timestamp column is not addressable",
			file:    "Loads.csv",
			column:  "timestamp",
			periods: 24,
			wantErr: ErrUnknownColumn,
		},
		{
			name:    "more periods than rows",
			file:    "Loads.csv",
			column:  "heat_demand",
			periods: 73,
			wantErr: ErrShortProfile,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Column(tt.file, tt.column, tt.periods)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("err = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestSeries(t *testing.T) {
	values, err := Series("solar_HH_2019.csv", 72)
	if err != nil {
		t.Fatalf("Series: %v", err)
	}
	if len(values) != 72 {
		t.Fatalf("len = %d, want 72", len(values))
	}

	// Loads.csv carries four data columns, Series only accepts one.
	if _, err := Series("Loads.csv", 24); !errors.Is(err, ErrUnknownColumn) {
		t.Errorf("err = %v, want %v", err, ErrUnknownColumn)
	}
}

func TestMax(t *testing.T) {
	if got := Max([]float64{3, 12.5, 7}); got != 12.5 {
		t.Errorf("Max = %v, want 12.5", got)
	}
	if got := Max([]float64{-3, -1, -7}); got != -1 {
		t.Errorf("Max = %v, want -1", got)
	}
	if got := Max([]float64(nil)); got != 0 {
		t.Errorf("Max of empty = %v, want 0", got)
	}
}
