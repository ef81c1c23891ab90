package header

import (
	"fmt"
	"strings"

	"github.com/jsphweid/abcsmith/model"
)

// Lines renders h as ABC header fields. Values are written as given.
func Lines(h model.Header) []string {
	lines := []string{
		fmt.Sprintf("X:%d", h.Index),
		fmt.Sprintf("T:%s", h.Title),
		fmt.Sprintf("M:%s", h.Meter),
		fmt.Sprintf("L:%s", h.UnitLength),
	}
	if h.Tempo > 0 {
		lines = append(lines, fmt.Sprintf("Q:1/4=%d", h.Tempo))
	}
	return append(lines,
		fmt.Sprintf("K:%s", h.Key),
		fmt.Sprintf("%%%%MIDI program %d", h.Program),
		fmt.Sprintf("%%%%MIDI channel %d", h.Channel),
	)
}

func Render(h model.Header) string {
	return strings.Join(Lines(h), "\n")
}

// ForInstrument returns a copy of h titled for one instrument's part.
func ForInstrument(h model.Header, instrument string) model.Header {
	if instrument != "" {
		h.Title = fmt.Sprintf("%s - %s", h.Title, instrument)
	}
	return h
}
