package manifest

import (
	"bytes"
	"os"

	"github.com/jsphweid/abcsmith/header"
	"github.com/jsphweid/abcsmith/model"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Song is a manifest describing every instrument part of one piece.
type Song struct {
	Header      model.Header `yaml:"header"`
	Structure   []string     `yaml:"structure"`
	CountChords bool         `yaml:"count_chords"`
	Instruments []Instrument `yaml:"instruments"`
}

type Instrument struct {
	Name    string `yaml:"name"`
	Program *int   `yaml:"program"`
	Channel *int   `yaml:"channel"`

	// Structure overrides the song structure for this part
	Structure []string        `yaml:"structure"`
	Sections  []model.Section `yaml:"sections"`
}

func Parse(data []byte) (*Song, error) {
	var s Song
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&s); err != nil {
		return nil, errors.Wrap(err, "could not decode manifest")
	}

	if len(s.Instruments) == 0 {
		return nil, errors.New("manifest has no instruments")
	}
	seen := make(map[string]bool)
	for _, inst := range s.Instruments {
		if inst.Name == "" {
			return nil, errors.New("manifest has an instrument without a name")
		}
		if seen[inst.Name] {
			return nil, errors.Errorf("instrument %q is listed more than once", inst.Name)
		}
		seen[inst.Name] = true
	}

	s.Header = s.Header.WithDefaults()
	return &s, nil
}

func Load(path string) (*Song, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "could not read manifest")
	}
	s, err := Parse(data)
	if err != nil {
		return nil, errors.Wrap(err, path)
	}
	return s, nil
}

// HeaderFor is the song header with the instrument's program and channel.
// The title is left alone; the assembler scopes it to the instrument.
func (s *Song) HeaderFor(inst Instrument) model.Header {
	h := s.Header
	if inst.Program != nil {
		h.Program = *inst.Program
	}
	if inst.Channel != nil {
		h.Channel = *inst.Channel
	}
	return h
}

func (s *Song) StructureFor(inst Instrument) []string {
	if len(inst.Structure) > 0 {
		return inst.Structure
	}
	return s.Structure
}

func (s *Song) Instrument(name string) (Instrument, bool) {
	for _, inst := range s.Instruments {
		if inst.Name == name {
			return inst, true
		}
	}
	return Instrument{}, false
}

// Title is what the instrument's document will be titled.
func (s *Song) Title(inst Instrument) string {
	return header.ForInstrument(s.Header, inst.Name).Title
}
