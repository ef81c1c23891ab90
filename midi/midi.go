package midi

import (
	"bytes"
	"fmt"
	"os"

	"github.com/pkg/errors"
	gm "gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"
)

func ReadMidiFile(filepath string) (s *smf.SMF, e error) {
	// handle panics
	// https://github.com/gomidi/midi/issues/20
	defer func() {
		if r := recover(); r != nil {
			s = nil
			e = errors.Errorf("Error parsing midi file %s... %v", filepath, r)
		}
	}()

	dat, err := os.ReadFile(filepath)
	if err != nil {
		return nil, errors.Wrap(err, "Error reading midi file")
	}

	res, err := smf.ReadFrom(bytes.NewReader(dat))
	if err != nil {
		return nil, errors.Wrap(err, "Error parsing midi file")
	}

	return res, nil
}

// WithoutTempo copies s, dropping every tempo meta event. The delta of a
// dropped event is carried over to the next one so timing is unchanged.
func WithoutTempo(s *smf.SMF) (*smf.SMF, int) {
	var res smf.SMF
	res.TimeFormat = s.TimeFormat

	var dropped int
	for _, track := range s.Tracks {
		var newTrack smf.Track
		var carry uint32
		for _, evt := range track {
			var bpm float64
			if evt.Message.GetMetaTempo(&bpm) {
				carry += evt.Delta
				dropped += 1
				continue
			}
			evt.Delta += carry
			carry = 0
			newTrack = append(newTrack, evt)
		}
		res.Tracks = append(res.Tracks, newTrack)
	}

	return &res, dropped
}

// StripTempo rewrites the file at path without tempo events so the host
// sequencer keeps control of tempo.
func StripTempo(path string) (int, error) {
	s, err := ReadMidiFile(path)
	if err != nil {
		return 0, err
	}

	stripped, dropped := WithoutTempo(s)
	if dropped == 0 {
		return 0, nil
	}

	var buf bytes.Buffer
	if _, err := stripped.WriteTo(&buf); err != nil {
		return 0, errors.Wrapf(err, "could not encode %s", path)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return 0, errors.Wrapf(err, "could not write %s", path)
	}
	return dropped, nil
}

type Summary struct {
	Tracks      int
	Notes       int
	TempoEvents int
	Controls    int
	Ticks       uint64
}

func (s Summary) String() string {
	return fmt.Sprintf(
		"tracks: %v, notes: %v, tempo events: %v, control changes: %v, ticks: %v",
		s.Tracks, s.Notes, s.TempoEvents, s.Controls, s.Ticks,
	)
}

func Summarize(s *smf.SMF) Summary {
	res := Summary{Tracks: len(s.Tracks)}
	for _, track := range s.Tracks {
		var absTicks uint64
		for _, evt := range track {
			absTicks += uint64(evt.Delta)
			var channel, key, velocity, controller, value uint8
			var bpm float64
			msg := gm.Message(evt.Message)
			switch {
			case msg.GetNoteStart(&channel, &key, &velocity):
				res.Notes += 1
			case msg.GetControlChange(&channel, &controller, &value):
				res.Controls += 1
			case evt.Message.GetMetaTempo(&bpm):
				res.TempoEvents += 1
			}
		}
		if absTicks > res.Ticks {
			res.Ticks = absTicks
		}
	}
	return res
}
