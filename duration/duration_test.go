package duration

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSingleTokenDurations(t *testing.T) {
	cases := []struct {
		notation string
		want     *big.Rat
	}{
		{"C", big.NewRat(1, 1)},
		{"C2", big.NewRat(2, 1)},
		{"C/2", big.NewRat(1, 2)},
		{"C3/2", big.NewRat(3, 2)},
		{"z4", big.NewRat(4, 1)},
		{"^f,,", big.NewRat(1, 1)},
		{"_b'3/4", big.NewRat(3, 4)},
		{"C3/", big.NewRat(3, 1)},
		{"C/", big.NewRat(1, 1)},
		{"[CEG]", new(big.Rat)},
	}

	for _, c := range cases {
		t.Run(c.notation, func(t *testing.T) {
			got := Total(c.notation)
			assert.Equal(t, 0, c.want.Cmp(got), "got %v", got.RatString())
		})
	}
}

func TestPreprocessingStripsNonDurationText(t *testing.T) {
	assert := assert.New(t)

	// annotations
	assert.Equal("8", Total(`"Cm"C2 "F"F2 "Gsus"G4`).RatString())
	// bar separators, including doubled and repeat bars
	assert.Equal("4", Total("C2 || D2 |").RatString())
	// directives and comments run to the end of the line
	assert.Equal("3", Total("C2 %%MIDI program 33\nD").RatString())
	assert.Equal("1", Total("% fade out\nz").RatString())
	// annotation text containing bar and directive markers
	assert.Equal("2", Total(`"A|B %x" C2`).RatString())
}

func TestAnnotationRemovalJoinsSurroundingText(t *testing.T) {
	tokens := Parse(`C"x"2`)

	assert := assert.New(t)
	assert.Len(tokens, 1)
	assert.Equal("2", tokens[0].Duration.RatString())
	assert.Equal(`C"x"2`, tokens[0].Text)
}

func TestZeroDenominatorIsSkipped(t *testing.T) {
	assert.Equal(t, "2", Total("C/0 D2").RatString())
}

func TestTokensKeepRawOffsets(t *testing.T) {
	notation := "\"Cm\"C,2 | z2 %% c\nD/2"
	tokens := Parse(notation)

	assert := assert.New(t)
	assert.Len(tokens, 3)
	assert.Equal("C,2", tokens[0].Text)
	assert.Equal("z2", tokens[1].Text)
	assert.True(tokens[1].Rest)
	assert.Equal("D/2", tokens[2].Text)
	for _, tok := range tokens {
		assert.Equal(tok.Text, notation[tok.Start:tok.End])
	}
}

func TestChordsCountWhenEnabled(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("0", Total("[CEG]2").RatString())
	assert.Equal("2", Total("[C2EG]", WithChords()).RatString())
	assert.Equal("4", Total("[CEG]4", WithChords()).RatString())
	assert.Equal("5/2", Total("[C/2E]3 z", WithChords()).RatString())
	assert.Equal("1", Total("[C/8]z7/8", WithChords()).RatString())
	// inline fields never count
	assert.Equal("2", Total("[K:Am]C2", WithChords()).RatString())
}

func TestChordSuffixDoesNotLeakIntoNextToken(t *testing.T) {
	tokens := Parse("C[EG]2 D", WithChords())

	assert := assert.New(t)
	assert.Len(tokens, 3)
	assert.Equal("C", tokens[0].Text)
	assert.Equal("[EG]2", tokens[1].Text)
	assert.True(tokens[1].Chord)
	assert.Equal("D", tokens[2].Text)
	assert.Equal("4", Sum(tokens).RatString())
}

func TestResolvePrecedence(t *testing.T) {
	cases := []struct {
		num, slash, den string
		want            string
	}{
		{"3", "/", "2", "3/2"},
		{"", "/", "4", "1/4"},
		{"5", "", "", "5"},
		{"", "", "", "1"},
		{"", "/", "", "1"},
	}

	for _, c := range cases {
		d, ok := Resolve(c.num, c.slash, c.den)
		assert.True(t, ok)
		assert.Equal(t, c.want, d.RatString())
	}
}

func TestFormat(t *testing.T) {
	assert := assert.New(t)
	assert.Equal("", Format(big.NewRat(1, 1)))
	assert.Equal("7", Format(big.NewRat(7, 1)))
	assert.Equal("/2", Format(big.NewRat(1, 2)))
	assert.Equal("7/8", Format(big.NewRat(7, 8)))
}
