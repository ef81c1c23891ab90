package events

import (
	"testing"

	"github.com/jsphweid/abcsmith/duration"
	"github.com/jsphweid/abcsmith/model"
	"github.com/stretchr/testify/assert"
)

func TestPitchName(t *testing.T) {
	cases := map[uint8]string{
		60: "C",
		61: "^C",
		71: "B",
		48: "C,",
		24: "C,,,",
		72: "c",
		73: "^c",
		84: "c'",
		96: "c''",
		0:  "C,,,,,",
	}

	for note, want := range cases {
		assert.Equal(t, want, PitchName(note), "note %d", note)
	}
}

func TestKeyswitchTokenLastsOneUnit(t *testing.T) {
	token := KeyswitchToken(model.Keyswitch{Note: 36, Beat: 2})

	assert := assert.New(t)
	assert.Equal("[C,,/8]z7/8", token)
	assert.Equal("1", duration.Total(token, duration.WithChords()).RatString())
}

func TestCCTokenPassesValuesThrough(t *testing.T) {
	assert := assert.New(t)
	assert.Equal("%%MIDI control 1 64", CCToken(1, 64))
	assert.Equal("%%MIDI control 300 -5", CCToken(300, -5))
}

func TestForSectionOrdersByBeat(t *testing.T) {
	s := model.Section{
		Keyswitches: []model.Keyswitch{{Note: 24, Beat: 2}, {Note: 25, Beat: 0}},
		Automation: []model.Automation{
			{CC: 1, Points: []model.Point{{Beat: 2, Value: 10}, {Beat: 1, Value: 20}}},
		},
	}

	evts := ForSection(s)

	assert := assert.New(t)
	assert.Len(evts, 4)
	assert.Equal(Event{Switch, 0, "[^C,,,/8]z7/8"}, evts[0])
	assert.Equal(Event{Control, 1, "%%MIDI control 1 20"}, evts[1])
	assert.Equal(Event{Control, 2, "%%MIDI control 1 10"}, evts[2])
	assert.Equal(Switch, evts[3].Kind)
}
