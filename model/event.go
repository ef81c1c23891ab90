package model

// Beats are quarter notes counted from the start of the section.

type Keyswitch struct {
	Note uint8   `json:"note" yaml:"note"`
	Beat float64 `json:"beat" yaml:"beat"`
}

type Point struct {
	Beat  float64 `json:"beat" yaml:"beat"`
	Value int     `json:"value" yaml:"value"`
}

type Automation struct {
	CC     int     `json:"cc" yaml:"cc"`
	Points []Point `json:"points" yaml:"points"`
}
