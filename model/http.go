package model

type AssembleRequest struct {
	Instrument  string    `json:"instrument"`
	Header      Header    `json:"header"`
	Sections    []Section `json:"sections"`
	Structure   []string  `json:"structure"`
	CountChords bool      `json:"count_chords"`
}

type AssembleResponse struct {
	Document string `json:"document"`
}

type SectionResult struct {
	Name       string  `json:"name"`
	OK         bool    `json:"ok"`
	ActualBars float64 `json:"actual_bars"`
	Detail     string  `json:"detail,omitempty"`
}

type ValidateResponse struct {
	Results []SectionResult `json:"results"`
}

type ErrorResponse struct {
	Error   string `json:"detail"`
	Section string `json:"section,omitempty"`
}
