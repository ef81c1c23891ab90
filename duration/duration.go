package duration

import (
	"math/big"
	"regexp"
	"strings"
)

var (
	annotationPattern = regexp.MustCompile(`"[^"]*"`)
	barPattern        = regexp.MustCompile(`\|+`)
	directivePattern  = regexp.MustCompile(`%.*`)
	chordPattern      = regexp.MustCompile(`\[.*?\]`)

	// accidental, pitch or rest, octave marks, numerator, slash, denominator
	tokenPattern = regexp.MustCompile(`([_^=]?)([A-Ga-gz])([,']*)(\d*)(/?)(\d*)`)

	// chord body, then the shared modifier after the closing bracket
	groupPattern = regexp.MustCompile(`\[([^\]]*)\](\d*)(/?)(\d*)`)
)

type Token struct {
	Text  string
	Start int // byte offset into the raw notation
	End   int
	Rest  bool
	Chord bool

	Duration *big.Rat
}

type config struct {
	countChords bool
}

type Option func(*config)

// WithChords weights a bracketed group by the length of its first note times
// the modifier following the closing bracket, instead of stripping it.
func WithChords() Option {
	return func(c *config) {
		c.countChords = true
	}
}

// source is rewritten notation text that remembers where every byte came from.
type source struct {
	text string
	pos  []int
}

func newSource(s string) source {
	pos := make([]int, len(s)+1)
	for i := range pos {
		pos[i] = i
	}
	return source{text: s, pos: pos}
}

func (s source) replace(re *regexp.Regexp, repl string) source {
	var b strings.Builder
	pos := make([]int, 0, len(s.pos))
	last := 0
	for _, m := range re.FindAllStringIndex(s.text, -1) {
		b.WriteString(s.text[last:m[0]])
		pos = append(pos, s.pos[last:m[0]]...)
		b.WriteString(repl)
		for i := 0; i < len(repl); i++ {
			pos = append(pos, s.pos[m[0]])
		}
		last = m[1]
	}
	b.WriteString(s.text[last:])
	pos = append(pos, s.pos[last:]...)
	return source{text: b.String(), pos: pos}
}

// span maps [start, end) of the rewritten text back onto the raw notation.
func (s source) span(start, end int) (int, int) {
	return s.pos[start], s.pos[end-1] + 1
}

func clean(notation string, c config) source {
	src := newSource(notation)
	src = src.replace(annotationPattern, "")
	src = src.replace(barPattern, " ")
	src = src.replace(directivePattern, "")
	if !c.countChords {
		src = src.replace(chordPattern, "")
	}
	return src
}

// Resolve turns the numerator, slash and denominator parts of a token into a
// length in unit lengths. ok is false for a zero denominator.
func Resolve(num, slash, den string) (d *big.Rat, ok bool) {
	switch {
	case num != "" && slash != "" && den != "":
		return ratio(num, den)
	case slash != "" && den != "":
		return ratio("1", den)
	case num != "":
		n, _ := new(big.Int).SetString(num, 10)
		return new(big.Rat).SetInt(n), true
	default:
		return big.NewRat(1, 1), true
	}
}

func ratio(num, den string) (*big.Rat, bool) {
	n, _ := new(big.Int).SetString(num, 10)
	d, _ := new(big.Int).SetString(den, 10)
	if d.Sign() == 0 {
		return nil, false
	}
	return new(big.Rat).SetFrac(n, d), true
}

func scan(src source) []Token {
	var res []Token
	for _, m := range tokenPattern.FindAllStringSubmatchIndex(src.text, -1) {
		part := func(i int) string {
			return src.text[m[2*i]:m[2*i+1]]
		}
		d, ok := Resolve(part(4), part(5), part(6))
		if !ok {
			continue
		}
		start, end := src.span(m[0], m[1])
		res = append(res, Token{
			Start:    start,
			End:      end,
			Rest:     part(2) == "z",
			Duration: d,
		})
	}
	return res
}

// scanGroups pulls chord groups out of src and returns them along with the
// text that is left to scan for single notes.
func scanGroups(src source) ([]Token, source) {
	var res []Token
	for _, m := range groupPattern.FindAllStringSubmatchIndex(src.text, -1) {
		body := src.text[m[2]:m[3]]
		// inline fields like [K:Am] carry no duration
		if strings.Contains(body, ":") {
			continue
		}
		inner := scan(newSource(body))
		if len(inner) == 0 {
			continue
		}
		mult, ok := Resolve(src.text[m[4]:m[5]], src.text[m[6]:m[7]], src.text[m[8]:m[9]])
		if !ok {
			continue
		}
		start, end := src.span(m[0], m[1])
		res = append(res, Token{
			Start:    start,
			End:      end,
			Rest:     inner[0].Rest,
			Chord:    true,
			Duration: new(big.Rat).Mul(inner[0].Duration, mult),
		})
	}
	return res, src.replace(groupPattern, "")
}

// Parse returns the note, rest and (optionally) chord tokens of notation in
// the order they appear. Text the grammar does not model is skipped.
func Parse(notation string, opts ...Option) []Token {
	var c config
	for _, opt := range opts {
		opt(&c)
	}

	src := clean(notation, c)
	var groups []Token
	if c.countChords {
		groups, src = scanGroups(src)
	}
	notes := scan(src)

	res := make([]Token, 0, len(groups)+len(notes))
	i, j := 0, 0
	for i < len(groups) || j < len(notes) {
		if j == len(notes) || (i < len(groups) && groups[i].Start < notes[j].Start) {
			res = append(res, groups[i])
			i++
		} else {
			res = append(res, notes[j])
			j++
		}
	}
	for k := range res {
		res[k].Text = notation[res[k].Start:res[k].End]
	}
	return res
}

// Total sums the lengths of every token in notation, in unit lengths.
func Total(notation string, opts ...Option) *big.Rat {
	return Sum(Parse(notation, opts...))
}

func Sum(tokens []Token) *big.Rat {
	total := new(big.Rat)
	for _, t := range tokens {
		total.Add(total, t.Duration)
	}
	return total
}

// Format writes d as a token length modifier: "" for 1, "3" for 3, "/2" for
// 1/2 and "3/2" for 3/2.
func Format(d *big.Rat) string {
	switch {
	case d.Cmp(big.NewRat(1, 1)) == 0:
		return ""
	case d.IsInt():
		return d.Num().String()
	case d.Num().Cmp(big.NewInt(1)) == 0:
		return "/" + d.Denom().String()
	default:
		return d.Num().String() + "/" + d.Denom().String()
	}
}
