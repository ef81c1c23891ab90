package assemble

import (
	"fmt"
	"math/big"
	"sort"
	"strings"

	"github.com/jsphweid/abcsmith/duration"
	"github.com/jsphweid/abcsmith/events"
	"github.com/jsphweid/abcsmith/util"
)

// InjectionError reports a keyswitch or control change that cannot be placed
// at its beat.
type InjectionError struct {
	Section string
	Beat    float64
	Reason  string
}

func (e *InjectionError) Error() string {
	return fmt.Sprintf("section '%s': cannot place event at beat %v: %s", e.Section, e.Beat, e.Reason)
}

type edit struct {
	start, end int
	text       string
}

// inject places the section's events into notation. unitsPerBeat converts
// quarter-note beats into unit lengths.
func inject(name, notation string, evts []events.Event, unitsPerBeat *big.Rat, opts []duration.Option) (string, error) {
	if len(evts) == 0 {
		return notation, nil
	}

	tokens := duration.Parse(notation, opts...)
	starts := make([]*big.Rat, len(tokens))
	offset := new(big.Rat)
	for i, tok := range tokens {
		starts[i] = new(big.Rat).Set(offset)
		offset.Add(offset, tok.Duration)
	}
	total := offset
	groups := groupStarts(notation)

	used := make(map[int]bool)
	directives := make(map[int][]string)
	var edits []edit
	for _, evt := range evts {
		fail := func(reason string) error {
			return &InjectionError{Section: name, Beat: evt.Beat, Reason: reason}
		}

		at := new(big.Rat).SetFloat64(evt.Beat)
		if at == nil {
			return "", fail("beat is not a finite number")
		}
		at.Mul(at, unitsPerBeat)
		if at.Sign() < 0 || at.Cmp(total) > 0 {
			return "", fail("beat is outside the section")
		}

		idx := -1
		for i := range tokens {
			if starts[i].Cmp(at) == 0 {
				idx = i
				break
			}
		}

		switch evt.Kind {
		case events.Control:
			next := len(tokens)
			pos := len(notation)
			if idx >= 0 {
				next, pos = idx, tokens[idx].Start
			} else if at.Cmp(total) != 0 {
				return "", fail("beat falls inside a note")
			}
			lo := 0
			if next > 0 {
				lo = tokens[next-1].End
			}
			// a chord left out of the count still sounds at this beat
			for _, g := range groups {
				if g >= lo && g < pos {
					pos = g
					break
				}
			}
			directives[pos] = append(directives[pos], evt.Token)
		case events.Switch:
			if idx < 0 {
				return "", fail("no rest starts at this beat")
			}
			tok := tokens[idx]
			if !tok.Rest || tok.Chord || tok.Duration.Cmp(big.NewRat(1, 1)) < 0 {
				return "", fail(fmt.Sprintf("keyswitch needs a rest of at least one unit, found %q", tok.Text))
			}
			if used[idx] {
				return "", fail("another keyswitch already uses this rest")
			}
			used[idx] = true

			text := evt.Token
			if rest := new(big.Rat).Sub(tok.Duration, big.NewRat(1, 1)); rest.Sign() > 0 {
				text += "z" + duration.Format(rest)
			}
			edits = append(edits, edit{tok.Start, tok.End, text})
		}
	}
	for _, pos := range util.SortedKeys(directives) {
		edits = append(edits, edit{pos, pos, directiveLines(notation, pos, directives[pos])})
	}

	// apply back to front; at the same offset the replacement goes first so
	// the directives end up ahead of the keyswitch
	sort.Slice(edits, func(i, j int) bool {
		if edits[i].start != edits[j].start {
			return edits[i].start > edits[j].start
		}
		return edits[i].end > edits[j].end
	})
	out := notation
	for _, e := range edits {
		out = out[:e.start] + e.text + out[e.end:]
	}
	return out, nil
}

// groupStarts lists the raw offsets of bracketed chord groups in notation.
func groupStarts(notation string) []int {
	var res []int
	for _, tok := range duration.Parse(notation, duration.WithChords()) {
		if tok.Chord {
			res = append(res, tok.Start)
		}
	}
	return res
}

// directiveLines puts directives on lines of their own at pos without
// creating blank lines, which end the tune for abc2midi.
func directiveLines(notation string, pos int, directives []string) string {
	var b strings.Builder
	if pos > 0 && notation[pos-1] != '\n' {
		b.WriteString("\n")
	}
	b.WriteString(strings.Join(directives, "\n"))
	if pos < len(notation) {
		b.WriteString("\n")
	}
	return b.String()
}
