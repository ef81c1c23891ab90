package bar

import (
	"fmt"
	"math"
	"math/big"
	"regexp"
	"strconv"
	"strings"

	"github.com/jsphweid/abcsmith/duration"
)

var (
	meterPattern      = regexp.MustCompile(`^\s*(\d+)\s*/\s*(\d+)\s*$`)
	unitLengthPattern = regexp.MustCompile(`^\s*1\s*/\s*(\d+)\s*$`)

	// Tolerance is how far, in bars, a section may drift from its declared
	// length and still validate.
	Tolerance = big.NewRat(1, 100)
)

// ConfigError reports a meter or unit length that cannot produce a whole
// number of units per bar.
type ConfigError struct {
	Field  string
	Value  string
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("invalid %s %q: %s", e.Field, e.Value, e.Reason)
}

type BarMismatchError struct {
	Section       string
	ExpectedBars  float64
	ExpectedUnits float64
	ActualBars    float64
	ActualUnits   *big.Rat
}

func (e *BarMismatchError) Error() string {
	units, _ := e.ActualUnits.Float64()
	msg := fmt.Sprintf(
		"expected %v bars (%v units), got %.2f bars (%v units)",
		e.ExpectedBars, e.ExpectedUnits, e.ActualBars, units,
	)
	if e.Section == "" {
		return msg
	}
	return fmt.Sprintf("section '%s': %s", e.Section, msg)
}

type Meter struct {
	Num int
	Den int
}

func (m Meter) String() string {
	return fmt.Sprintf("%d/%d", m.Num, m.Den)
}

func ParseMeter(s string) (Meter, error) {
	switch strings.TrimSpace(s) {
	case "C":
		return Meter{4, 4}, nil
	case "C|":
		return Meter{2, 2}, nil
	}

	m := meterPattern.FindStringSubmatch(s)
	if m == nil {
		return Meter{}, &ConfigError{"meter", s, `expected "N/D"`}
	}
	num, numErr := strconv.Atoi(m[1])
	den, denErr := strconv.Atoi(m[2])
	if numErr != nil || denErr != nil {
		return Meter{}, &ConfigError{"meter", s, "out of range"}
	}
	if num <= 0 || den <= 0 {
		return Meter{}, &ConfigError{"meter", s, "both parts must be positive"}
	}
	return Meter{num, den}, nil
}

// ParseUnitLength returns D for a unit length of the form "1/D".
func ParseUnitLength(s string) (int, error) {
	m := unitLengthPattern.FindStringSubmatch(s)
	if m == nil {
		return 0, &ConfigError{"unit length", s, `expected "1/D"`}
	}
	den, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, &ConfigError{"unit length", s, "out of range"}
	}
	if den <= 0 {
		return 0, &ConfigError{"unit length", s, "denominator must be positive"}
	}
	return den, nil
}

// UnitsPerBar is how many unit lengths fill one bar. In 4/4 with 1/8 units
// that is 8.
func UnitsPerBar(meter, unitLength string) (int, error) {
	m, err := ParseMeter(meter)
	if err != nil {
		return 0, err
	}
	unitDen, err := ParseUnitLength(unitLength)
	if err != nil {
		return 0, err
	}

	if m.Num > math.MaxInt32/unitDen {
		return 0, &ConfigError{"meter", meter, fmt.Sprintf("too many %s units in a bar", unitLength)}
	}
	units := m.Num * unitDen
	if units%m.Den != 0 {
		return 0, &ConfigError{
			"meter", meter,
			fmt.Sprintf("a bar is not a whole number of %s units", unitLength),
		}
	}
	return units / m.Den, nil
}

// Check compares a unit count against the declared bar count. A nil error
// means the section is within Tolerance.
func Check(actualUnits *big.Rat, expectedBars float64, unitsPerBar int) error {
	if unitsPerBar <= 0 {
		return &ConfigError{"units per bar", strconv.Itoa(unitsPerBar), "must be positive"}
	}
	actualBars := new(big.Rat).Quo(actualUnits, big.NewRat(int64(unitsPerBar), 1))
	bars, _ := actualBars.Float64()

	// NaN and infinite bar counts never match
	if expected := new(big.Rat).SetFloat64(expectedBars); expected != nil {
		diff := new(big.Rat).Sub(actualBars, expected)
		if diff.Abs(diff).Cmp(Tolerance) < 0 {
			return nil
		}
	}

	return &BarMismatchError{
		ExpectedBars:  expectedBars,
		ExpectedUnits: expectedBars * float64(unitsPerBar),
		ActualBars:    bars,
		ActualUnits:   new(big.Rat).Set(actualUnits),
	}
}

// Validate counts the units in notation and checks them against
// expectedBars.
func Validate(notation string, expectedBars float64, meter, unitLength string, opts ...duration.Option) error {
	upb, err := UnitsPerBar(meter, unitLength)
	if err != nil {
		return err
	}
	return Check(duration.Total(notation, opts...), expectedBars, upb)
}

// Bars is the length of notation in bars.
func Bars(notation string, unitsPerBar int, opts ...duration.Option) float64 {
	if unitsPerBar <= 0 {
		return 0
	}
	units := duration.Total(notation, opts...)
	bars, _ := units.Quo(units, big.NewRat(int64(unitsPerBar), 1)).Float64()
	return bars
}
