package midi

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gm "gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"
)

func createSMF() *smf.SMF {
	s := smf.New()
	var tr smf.Track
	tr = append(tr,
		smf.Event{Delta: 0, Message: smf.MetaTempo(100)},
		smf.Event{Delta: 0, Message: smf.Message(gm.NoteOn(0, 60, 100))},
		smf.Event{Delta: 480, Message: smf.MetaTempo(120)},
		smf.Event{Delta: 0, Message: smf.Message(gm.ControlChange(0, 1, 64))},
		smf.Event{Delta: 480, Message: smf.Message(gm.NoteOff(0, 60))},
	)
	tr.Close(0)
	s.Add(tr)
	return s
}

func writeSMF(t *testing.T, s *smf.SMF) string {
	var buf bytes.Buffer
	_, err := s.WriteTo(&buf)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "part.mid")
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0644))
	return path
}

func TestSummarize(t *testing.T) {
	summary := Summarize(createSMF())

	assert := assert.New(t)
	assert.Equal(1, summary.Tracks)
	assert.Equal(1, summary.Notes)
	assert.Equal(2, summary.TempoEvents)
	assert.Equal(1, summary.Controls)
	assert.Equal(uint64(960), summary.Ticks)
}

func TestWithoutTempoKeepsTiming(t *testing.T) {
	s := createSMF()
	before := Summarize(s)

	stripped, dropped := WithoutTempo(s)
	after := Summarize(stripped)

	assert := assert.New(t)
	assert.Equal(2, dropped)
	assert.Equal(0, after.TempoEvents)
	assert.Equal(before.Notes, after.Notes)
	assert.Equal(before.Controls, after.Controls)
	assert.Equal(before.Ticks, after.Ticks)
	// the control change inherits the delta of the tempo event before it
	assert.Equal(uint32(480), stripped.Tracks[0][1].Delta)
}

func TestStripTempoRewritesFile(t *testing.T) {
	path := writeSMF(t, createSMF())

	dropped, err := StripTempo(path)
	require.NoError(t, err)

	s, err := ReadMidiFile(path)
	require.NoError(t, err)

	assert := assert.New(t)
	assert.Equal(2, dropped)
	assert.Equal(0, Summarize(s).TempoEvents)
	assert.Equal(1, Summarize(s).Notes)
}

func TestReadMidiFileErrors(t *testing.T) {
	_, err := ReadMidiFile(filepath.Join(t.TempDir(), "missing.mid"))
	assert.Error(t, err)

	path := filepath.Join(t.TempDir(), "junk.mid")
	require.NoError(t, os.WriteFile(path, []byte("not midi"), 0644))
	_, err = ReadMidiFile(path)
	assert.Error(t, err)
}
