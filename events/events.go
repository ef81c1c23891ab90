package events

import (
	"fmt"
	"sort"
	"strings"

	"github.com/jsphweid/abcsmith/model"
)

// MIDI 60 is middle C, written C in ABC
const middleCOctave = 5

var pitchNames = [12]string{"C", "^C", "D", "^D", "E", "F", "^F", "G", "^G", "A", "^A", "B"}

// PitchName writes a MIDI note number as an ABC pitch with octave marks.
func PitchName(note uint8) string {
	octave := int(note)/12 - middleCOctave
	pitch := pitchNames[note%12]

	switch {
	case octave < 0:
		pitch += strings.Repeat(",", -octave)
	case octave > 0:
		pitch = strings.ToLower(pitch) + strings.Repeat("'", octave-1)
	}
	return pitch
}

// KeyswitchToken strikes the keyswitch for an eighth of a unit and rests for
// the rest of it. The renderer plays it as one unit length, and so does
// counting with duration.WithChords; the default count skips the bracketed
// strike and sees only the 7/8 rest.
func KeyswitchToken(ks model.Keyswitch) string {
	return fmt.Sprintf("[%s/8]z7/8", PitchName(ks.Note))
}

// CCToken is a control change directive. cc and value are not range checked.
func CCToken(cc, value int) string {
	return fmt.Sprintf("%%%%MIDI control %d %d", cc, value)
}

type Kind int

const (
	Control Kind = iota
	Switch
)

// Event is a generated token due at a beat within a section.
type Event struct {
	Kind  Kind
	Beat  float64
	Token string
}

// ForSection lists the events of a section ordered by beat. At the same beat
// control changes come before keyswitches.
func ForSection(s model.Section) []Event {
	var res []Event
	for _, a := range s.Automation {
		for _, p := range a.Points {
			res = append(res, Event{Kind: Control, Beat: p.Beat, Token: CCToken(a.CC, p.Value)})
		}
	}
	for _, ks := range s.Keyswitches {
		res = append(res, Event{Kind: Switch, Beat: ks.Beat, Token: KeyswitchToken(ks)})
	}

	sort.SliceStable(res, func(i, j int) bool {
		if res[i].Beat != res[j].Beat {
			return res[i].Beat < res[j].Beat
		}
		return res[i].Kind < res[j].Kind
	})
	return res
}
