package model

type Section struct {
	Name string  `json:"name" yaml:"name"`
	Bars float64 `json:"bars" yaml:"bars"`
	ABC  string  `json:"abc" yaml:"abc"`

	Keyswitches []Keyswitch  `json:"keyswitches,omitempty" yaml:"keyswitches,omitempty"`
	Automation  []Automation `json:"automation,omitempty" yaml:"automation,omitempty"`
}

// Structure is the ordered list of section names making up a document.
// Names may repeat.
type Structure = []string

type SectionNameToSection = map[string]Section
