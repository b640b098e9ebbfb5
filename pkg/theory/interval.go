package theory

import (
	"fmt"
	"regexp"
	"strconv"
)

// Direction is the sense of an interval
type Direction int

const (
	Descending Direction = -1
	Ascending  Direction = 1
)

// Interval is a directed distance: a quality offset (mod) applied to an
// interval number, plus whole octaves.
//
// For the perfect-class numbers 1, 4, 5 and 8 mod is -1 diminished,
// 0 perfect, 1 augmented. For 2, 3, 6 and 7 it is -2 diminished, -1 minor,
// 0 major, 1 augmented.
//
// Zero value is not a valid interval; build one with ParseInterval,
// IntervalFromInteger or NewInterval.
type Interval struct {
	direction Direction
	octave    int
	number    int
	mod       int
}

var intervalPattern = regexp.MustCompile(`^(-?)([mMdap])(\d+)$`)

var (
	majorClassMods   = map[byte]int{'d': -2, 'm': -1, 'M': 0, 'a': 1}
	perfectClassMods = map[byte]int{'d': -1, 'p': 0, 'a': 1}

	majorClassQualities   = map[int]string{-2: "d", -1: "m", 0: "M", 1: "a"}
	perfectClassQualities = map[int]string{-1: "d", 0: "p", 1: "a"}
)

var qualityNames = map[string]string{
	"p":  "Perfect",
	"dd": "Doubly-diminished",
	"d":  "Diminished",
	"m":  "Minor",
	"M":  "Major",
	"a":  "Augmented",
	"aa": "Doubly-augmented",
}

var sizeNames = [...]string{
	1: "Unison",
	2: "Second",
	3: "Third",
	4: "Fourth",
	5: "Fifth",
	6: "Sixth",
	7: "Seventh",
	8: "Octave",
}

// (mod, number) for each semitone count inside an octave
var semitoneSpellings = [12]struct{ mod, number int }{
	{0, 1},          // unison
	{-1, 2}, {0, 2}, // second
	{-1, 3}, {0, 3}, // third
	{0, 4},          // fourth
	{-1, 5},         // diminished fifth
	{0, 5},          // fifth
	{-1, 6}, {0, 6}, // sixth
	{-1, 7}, {0, 7}, // seventh
}

// major or perfect size in semitones for each interval number
var numberSemitones = [...]int{1: 0, 2: 2, 3: 4, 4: 5, 5: 7, 6: 9, 7: 11, 8: 12}

// NewInterval builds an Interval from its fields.
func NewInterval(direction Direction, octave, number, mod int) (Interval, error) {
	if direction != Ascending && direction != Descending {
		return Interval{}, fmt.Errorf("%w: %d", ErrInvalidDirection, direction)
	}
	if octave < 0 {
		return Interval{}, fmt.Errorf("%w: negative octave %d", ErrOutOfDomain, octave)
	}
	iv := Interval{direction: direction, octave: octave, number: number, mod: mod}
	if _, err := iv.quality(); err != nil {
		return Interval{}, err
	}
	return iv, nil
}

// ParseInterval parses a token such as "M3", "-p5" or "m9": an optional
// minus for a descending interval, a quality letter (d, m, M, a, p) and
// the interval size.
//
// Sizes above 7 fold into octaves as size mod 8, so "p8" is an octave with
// no octave count and "M9" is a second one octave up. Most larger sizes
// fold to no valid interval number and fail.
func ParseInterval(s string) (Interval, error) {
	m := intervalPattern.FindStringSubmatch(s)
	if m == nil {
		return Interval{}, fmt.Errorf("%w: %q", ErrMissingQualityOrSize, s)
	}

	iv := Interval{direction: Ascending}
	if m[1] == "-" {
		iv.direction = Descending
	}

	size, err := strconv.Atoi(m[3])
	if err != nil {
		return Interval{}, fmt.Errorf("%w: size %s", ErrUnknownIntervalNumber, m[3])
	}
	if size > 7 {
		iv.octave = size % 8
	}
	iv.number = size - iv.octave*7

	var mods map[byte]int
	switch iv.number {
	case 2, 3, 6, 7:
		mods = majorClassMods
	case 1, 4, 5, 8:
		mods = perfectClassMods
	default:
		return Interval{}, fmt.Errorf("%w: %d from size %d", ErrUnknownIntervalNumber, iv.number, size)
	}

	mod, ok := mods[m[2][0]]
	if !ok {
		return Interval{}, fmt.Errorf("%w: %q for interval number %d", ErrUnknownQuality, m[2], iv.number)
	}
	iv.mod = mod
	return iv, nil
}

// IntervalFromInteger spells a signed semitone count. Zero is ascending.
func IntervalFromInteger(n int) Interval {
	iv := Interval{direction: Ascending}
	u := uint(n)
	if n < 0 {
		iv.direction = Descending
		u = -u // also exact for math.MinInt
	}
	iv.octave = int(u / 12)
	sp := semitoneSpellings[u%12]
	iv.mod = sp.mod
	iv.number = sp.number
	return iv
}

// Between returns the interval from one pitch to another.
func Between(from, to Pitch) Interval {
	return IntervalFromInteger(to.Semitone() - from.Semitone())
}

// MustParseInterval is like ParseInterval but panics on error.
func MustParseInterval(s string) Interval {
	iv, err := ParseInterval(s)
	if err != nil {
		panic(err)
	}
	return iv
}

// Direction returns Ascending or Descending.
func (iv Interval) Direction() Direction { return iv.direction }

// Octave returns the number of whole octaves beyond the interval number.
func (iv Interval) Octave() int { return iv.octave }

// Number returns the interval number, 1 (unison) to 8 (octave).
func (iv Interval) Number() int { return iv.number }

// Mod returns the quality offset within the class of the interval number.
func (iv Interval) Mod() int { return iv.mod }

// quality returns the short quality code for mod in the class of the
// interval number.
func (iv Interval) quality() (string, error) {
	var qualities map[int]string
	switch iv.number {
	case 2, 3, 6, 7:
		qualities = majorClassQualities
	case 1, 4, 5, 8:
		qualities = perfectClassQualities
	default:
		return "", fmt.Errorf("%w: %d", ErrUnknownIntervalNumber, iv.number)
	}
	q, ok := qualities[iv.mod]
	if !ok {
		return "", fmt.Errorf("%w: mod %d for interval number %d", ErrUnknownQuality, iv.mod, iv.number)
	}
	return q, nil
}

// LongName renders e.g. "Major Third". A unison spanning one or more
// octaves is named "Octave".
func (iv Interval) LongName() (string, error) {
	q, err := iv.quality()
	if err != nil {
		return "", err
	}
	size := sizeNames[iv.number]
	if iv.number == 1 && iv.octave > 0 {
		size = "Octave"
	}
	return qualityNames[q] + " " + size, nil
}

// ShortName renders the interval as a display token: direction, quality
// and the compound size number+7*octave ("M3", "-m10", "p15"). Within an
// octave, and for M9-style seconds, ParseInterval reads the token back; other
// compound sizes do not survive its size mod 8 fold. An invalid Interval
// renders its quality as "?".
func (iv Interval) ShortName() string {
	q, err := iv.quality()
	if err != nil {
		q = "?"
	}
	prefix := ""
	if iv.direction == Descending {
		prefix = "-"
	}
	return fmt.Sprintf("%s%s%d", prefix, q, iv.number+iv.octave*7)
}

// String implements fmt.Stringer
func (iv Interval) String() string {
	return iv.ShortName()
}

// Semitones returns the signed size of the interval in semitones, or 0
// for an invalid Interval.
func (iv Interval) Semitones() int {
	if iv.number < 1 || iv.number >= len(numberSemitones) {
		return 0
	}
	n := numberSemitones[iv.number] + iv.mod + iv.octave*12
	return n * int(iv.direction)
}
