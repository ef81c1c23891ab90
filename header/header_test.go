package header

import (
	"testing"

	"github.com/jsphweid/abcsmith/model"
	"github.com/stretchr/testify/assert"
)

func TestLinesWithoutTempo(t *testing.T) {
	h := model.NewHeader("Demo Song")
	h.Key = "Cmin"
	h.Program = 33
	h.Channel = 2

	assert.Equal(t, []string{
		"X:1",
		"T:Demo Song",
		"M:4/4",
		"L:1/8",
		"K:Cmin",
		"%%MIDI program 33",
		"%%MIDI channel 2",
	}, Lines(h))
}

func TestLinesWithTempo(t *testing.T) {
	h := model.NewHeader("Demo Song")
	h.Tempo = 120

	lines := Lines(h)

	assert := assert.New(t)
	assert.Len(lines, 8)
	assert.Equal("Q:1/4=120", lines[4])
	assert.Equal("K:C", lines[5])
}

func TestMalformedFieldsPassThrough(t *testing.T) {
	h := model.NewHeader("x")
	h.Meter = "not a meter"
	h.Channel = 99

	out := Render(h)

	assert := assert.New(t)
	assert.Contains(out, "M:not a meter\n")
	assert.Contains(out, "%%MIDI channel 99")
}

func TestForInstrumentLeavesCallerHeaderAlone(t *testing.T) {
	shared := model.NewHeader("Demo Song")

	bass := ForInstrument(shared, "bass")
	keys := ForInstrument(shared, "keys")

	assert := assert.New(t)
	assert.Equal("Demo Song - bass", bass.Title)
	assert.Equal("Demo Song - keys", keys.Title)
	assert.Equal("Demo Song", shared.Title)
	assert.Equal("Demo Song", ForInstrument(shared, "").Title)
}
