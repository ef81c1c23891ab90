package model

type Header struct {
	Index      int    `json:"index" yaml:"index"`
	Title      string `json:"title" yaml:"title"`
	Meter      string `json:"meter" yaml:"meter"`
	UnitLength string `json:"unit_length" yaml:"unit_length"`

	// NOTE: zero leaves tempo to the host (DAW/OSC), no Q: line is written
	Tempo int `json:"tempo,omitempty" yaml:"tempo,omitempty"`

	Key     string `json:"key" yaml:"key"`
	Program int    `json:"program" yaml:"program"`
	Channel int    `json:"channel" yaml:"channel"`
}

func NewHeader(title string) Header {
	return Header{
		Index:      1,
		Title:      title,
		Meter:      "4/4",
		UnitLength: "1/8",
		Key:        "C",
		Program:    0,
		Channel:    1,
	}
}

// WithDefaults fills zero-valued fields with the values NewHeader uses.
func (h Header) WithDefaults() Header {
	d := NewHeader(h.Title)
	if h.Index == 0 {
		h.Index = d.Index
	}
	if h.Meter == "" {
		h.Meter = d.Meter
	}
	if h.UnitLength == "" {
		h.UnitLength = d.UnitLength
	}
	if h.Key == "" {
		h.Key = d.Key
	}
	if h.Channel == 0 {
		h.Channel = d.Channel
	}
	return h
}
