// Package profiles serves the measured load and generation profiles
// the data driven scenarios are parameterized with. Profiles are
// semicolon delimited CSV files with a leading timestamp column,
// bundled with the package so scenario construction needs no
// filesystem setup.
package profiles

import (
	"embed"
	"encoding/csv"
	"errors"
	"fmt"
	"strconv"

	"golang.org/x/exp/constraints"
)

//go:embed data/*.csv
var dataFS embed.FS

var (
	// ErrUnknownProfile is returned for a file name not bundled here.
	ErrUnknownProfile = errors.New("unknown profile")

	// ErrUnknownColumn is returned when a profile lacks the requested column.
	ErrUnknownColumn = errors.New("unknown profile column")

	// ErrShortProfile is returned when a profile has fewer rows than requested.
	ErrShortProfile = errors.New("profile too short")
)

// Column reads the first `periods` values of the named column from the
// given profile file, e.g. Column("Loads.csv", "heat_demand", 24).
func Column(file, column string, periods int) ([]float64, error) {
	header, rows, err := read(file)
	if err != nil {
		return nil, err
	}

	// column 0 is the timestamp index
	idx := -1
	for i := 1; i < len(header); i++ {
		if header[i] == column {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, fmt.Errorf("%w: %q has no column %q", ErrUnknownColumn, file, column)
	}
	return slice(file, rows, idx, periods)
}

// Series reads the first `periods` values of a single column profile
// such as solar_HH_2019.csv.
func Series(file string, periods int) ([]float64, error) {
	header, rows, err := read(file)
	if err != nil {
		return nil, err
	}
	if len(header) != 2 {
		return nil, fmt.Errorf("%w: %q has %d data columns, want 1", ErrUnknownColumn, file, len(header)-1)
	}
	return slice(file, rows, 1, periods)
}

// Max returns the largest value of a series. Handy for deriving flow
// rate caps from a profile.
func Max[T constraints.Float](series []T) T {
	var max T
	for i, v := range series {
		if i == 0 || v > max {
			max = v
		}
	}
	return max
}

func read(file string) (header []string, rows [][]string, err error) {
	f, err := dataFS.Open("data/" + file)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %q", ErrUnknownProfile, file)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.Comma = ';'
	records, err := r.ReadAll()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to parse profile %q: %w", file, err)
	}
	if len(records) == 0 {
		return nil, nil, fmt.Errorf("profile %q is empty", file)
	}
	return records[0], records[1:], nil
}

func slice(file string, rows [][]string, idx, periods int) ([]float64, error) {
	if periods < 0 {
		return nil, fmt.Errorf("periods must not be negative, got %d", periods)
	}
	if periods > len(rows) {
		return nil, fmt.Errorf("%w: %q has %d rows, want %d", ErrShortProfile, file, len(rows), periods)
	}
	values := make([]float64, periods)
	for i := 0; i < periods; i++ {
		v, err := strconv.ParseFloat(rows[i][idx], 64)
		if err != nil {
			return nil, fmt.Errorf("profile %q row %d: %w", file, i+1, err)
		}
		values[i] = v
	}
	return values, nil
}
