package assemble

import (
	"errors"
	"fmt"
	"math/big"
	"strings"

	"github.com/jsphweid/abcsmith/bar"
	"github.com/jsphweid/abcsmith/duration"
	"github.com/jsphweid/abcsmith/events"
	"github.com/jsphweid/abcsmith/header"
	"github.com/jsphweid/abcsmith/model"
	"github.com/jsphweid/abcsmith/util"
)

type UnknownSectionError struct {
	Name string
}

func (e *UnknownSectionError) Error() string {
	return fmt.Sprintf("unknown section: %s", e.Name)
}

// SectionError is a problem with how a section is declared, as opposed to
// what it contains.
type SectionError struct {
	Section string
	Reason  string
}

func (e *SectionError) Error() string {
	return fmt.Sprintf("section '%s': %s", e.Section, e.Reason)
}

type Assembler struct {
	// CountChords weights bracketed chord groups instead of treating them as
	// zero length.
	CountChords bool
}

func (a *Assembler) options() []duration.Option {
	if a.CountChords {
		return []duration.Option{duration.WithChords()}
	}
	return nil
}

// Assemble builds one instrument's ABC document with the default Assembler.
func Assemble(instrument string, sections []model.Section, structure model.Structure, h model.Header) (string, error) {
	var a Assembler
	return a.Assemble(instrument, sections, structure, h)
}

// Validate checks every section against the header's meter and unit length,
// in the order given, and stops at the first failure.
func (a *Assembler) Validate(sections []model.Section, h model.Header) (model.SectionNameToSection, error) {
	upb, err := bar.UnitsPerBar(h.Meter, h.UnitLength)
	if err != nil {
		return nil, err
	}

	sectionMap := make(model.SectionNameToSection)
	for _, s := range sections {
		_, seen := sectionMap[s.Name]
		if err := checkDeclaration(s, seen); err != nil {
			return nil, err
		}
		if err := bar.Check(duration.Total(s.ABC, a.options()...), s.Bars, upb); err != nil {
			var mismatch *bar.BarMismatchError
			if errors.As(err, &mismatch) {
				mismatch.Section = s.Name
			}
			return nil, err
		}
		sectionMap[s.Name] = s
	}
	return sectionMap, nil
}

// checkDeclaration rejects a section whose name was already declared or
// whose bar count is not positive.
func checkDeclaration(s model.Section, seen bool) error {
	if seen {
		return &SectionError{s.Name, "declared more than once"}
	}
	if !(s.Bars > 0) {
		return &SectionError{s.Name, "bar count must be positive"}
	}
	return nil
}

// Report validates every section without stopping at the first failure.
func (a *Assembler) Report(sections []model.Section, h model.Header) ([]model.SectionResult, error) {
	upb, err := bar.UnitsPerBar(h.Meter, h.UnitLength)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]bool)
	res := make([]model.SectionResult, 0, len(sections))
	for _, s := range sections {
		r := model.SectionResult{
			Name:       s.Name,
			ActualBars: bar.Bars(s.ABC, upb, a.options()...),
		}
		err := checkDeclaration(s, seen[s.Name])
		if err == nil {
			err = bar.Check(duration.Total(s.ABC, a.options()...), s.Bars, upb)
		}
		if err != nil {
			r.Detail = err.Error()
		} else {
			r.OK = true
		}
		seen[s.Name] = true
		res = append(res, r)
	}
	return res, nil
}

// Assemble validates sections, then writes the header for instrument
// followed by each section named in structure. h is not modified.
func (a *Assembler) Assemble(instrument string, sections []model.Section, structure model.Structure, h model.Header) (string, error) {
	sectionMap, err := a.Validate(sections, h)
	if err != nil {
		return "", err
	}

	for _, name := range structure {
		if _, ok := sectionMap[name]; !ok {
			return "", &UnknownSectionError{name}
		}
	}

	unitDen, err := bar.ParseUnitLength(h.UnitLength)
	if err != nil {
		return "", err
	}
	unitsPerBeat := big.NewRat(int64(unitDen), 4)

	// a section is injected once, however often it repeats
	bodies := make(map[string]string)
	for _, name := range util.Unique(structure) {
		s := sectionMap[name]
		body, err := inject(name, s.ABC, events.ForSection(s), unitsPerBeat, a.options())
		if err != nil {
			return "", err
		}
		bodies[name] = body
	}

	content := []string{header.Render(header.ForInstrument(h, instrument)), ""}
	for _, name := range structure {
		content = append(content, fmt.Sprintf("%% Section: %s", name), bodies[name])
	}
	return strings.Join(content, "\n"), nil
}
