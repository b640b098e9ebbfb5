// Package theory converts musical pitches and intervals between their text
// notation, integer semitone values and display names.
package theory

import (
	"fmt"
	"math"
	"strings"
	"unicode/utf8"
)

// ReferenceSemitone is the semitone value of notename c at octave 0.
const ReferenceSemitone = 48

// Pitch is a notename with an octave displacement and an accidental.
// Zero value is not meaningful; build one with ParsePitch, PitchFromInteger
// or NewPitch.
type Pitch struct {
	notename   byte
	accidental int
	octave     int
}

// Semitone offsets of each notename inside an octave. g sits at 6, one
// below its chromatic position, and integer input compensates through the
// accidental.
var notenameSemitones = map[byte]int{
	'c': 0,
	'd': 2,
	'e': 4,
	'f': 5,
	'g': 6,
	'a': 9,
	'b': 11,
}

// Pitch class -> notename used when spelling an integer. Class 11 is
// spelled from c, so integer input never yields a b.
var pitchClassNotenames = [12]byte{
	'c', 'c',
	'd', 'd',
	'e',
	'f', 'f',
	'g', 'g',
	'a', 'a',
	'c',
}

var accidentalNames = map[int]string{
	-2: " double flat",
	-1: " flat",
	0:  "",
	1:  " sharp",
	2:  " double sharp",
}

// NewPitch builds a Pitch from its fields. notename is case-insensitive.
func NewPitch(notename rune, accidental, octave int) (Pitch, error) {
	n, ok := normalizeNotename(notename)
	if !ok {
		return Pitch{}, fmt.Errorf("%w: %q", ErrInvalidNotename, notename)
	}
	return Pitch{notename: n, accidental: accidental, octave: octave}, nil
}

// ParsePitch parses a token such as "c", "F#", "bb'" or "e,,".
// The first character is the notename; each following ' or , moves the
// octave up or down and each # or b raises or lowers the accidental.
func ParsePitch(s string) (Pitch, error) {
	first, size := utf8.DecodeRuneInString(s)
	if size == 0 {
		return Pitch{}, fmt.Errorf("%w: empty token", ErrInvalidNotename)
	}
	n, ok := normalizeNotename(first)
	if !ok {
		return Pitch{}, fmt.Errorf("%w: %q", ErrInvalidNotename, first)
	}

	p := Pitch{notename: n}
	for _, c := range s[size:] {
		switch c {
		case '\'':
			p.octave++
		case ',':
			p.octave--
		case '#':
			p.accidental++
		case 'b':
			p.accidental--
		default:
			return Pitch{}, fmt.Errorf("%w: %q in %q", ErrInvalidModifier, c, s)
		}
	}
	return p, nil
}

// PitchFromInteger spells a semitone value, ReferenceSemitone being c at
// octave 0. Any integer is accepted.
func PitchFromInteger(n int) Pitch {
	octave := floorDiv(n-ReferenceSemitone, 12)
	notename := pitchClassNotenames[floorMod(n, 12)]
	return Pitch{
		notename:   notename,
		octave:     octave,
		accidental: n - (octave+4)*12 - notenameSemitones[notename],
	}
}

// MustParsePitch is like ParsePitch but panics on error.
func MustParsePitch(s string) Pitch {
	p, err := ParsePitch(s)
	if err != nil {
		panic(err)
	}
	return p
}

// Notename returns the lowercase letter name.
func (p Pitch) Notename() rune { return rune(p.notename) }

// Accidental returns the semitone offset from the natural note.
func (p Pitch) Accidental() int { return p.accidental }

// Octave returns the octave displacement from the reference octave.
func (p Pitch) Octave() int { return p.octave }

// Semitone returns the absolute semitone value of the pitch.
func (p Pitch) Semitone() int {
	return notenameSemitones[p.notename] + p.accidental + p.octave*12 + ReferenceSemitone
}

// LongName renders e.g. "C sharp" or "B double flat". Only accidentals
// between -2 and 2 have a name.
func (p Pitch) LongName() (string, error) {
	suffix, ok := accidentalNames[p.accidental]
	if !ok {
		return "", fmt.Errorf("%w: %d", ErrUnknownAccidental, p.accidental)
	}
	return strings.ToUpper(string(p.notename)) + suffix, nil
}

// ShortName renders the pitch in the notation ParsePitch reads, with
// accidentals before octave marks: "c#'", "ebb,".
func (p Pitch) ShortName() string {
	var b strings.Builder
	b.WriteByte(p.notename)
	switch {
	case p.accidental > 0:
		b.WriteString(strings.Repeat("#", p.accidental))
	case p.accidental < 0:
		b.WriteString(strings.Repeat("b", -p.accidental))
	}
	switch {
	case p.octave > 0:
		b.WriteString(strings.Repeat("'", p.octave))
	case p.octave < 0:
		b.WriteString(strings.Repeat(",", -p.octave))
	}
	return b.String()
}

// String implements fmt.Stringer
func (p Pitch) String() string {
	return p.ShortName()
}

// MIDINote returns the MIDI key number, the reference c being middle C (60).
func (p Pitch) MIDINote() (uint8, error) {
	key := p.Semitone() + 12
	if key < 0 || key > 127 {
		return 0, fmt.Errorf("%w: %d", ErrMIDIRange, key)
	}
	return uint8(key), nil
}

// Frequency returns the equal-tempered frequency in Hz with A4 at 440 Hz.
func (p Pitch) Frequency() float64 {
	st := p.Semitone() + 12 - 69 // 69 is the MIDI note number for A4
	return 440 * math.Pow(2, float64(st)/12)
}

// Transpose moves the pitch by iv and respells the result from its
// semitone value.
func (p Pitch) Transpose(iv Interval) Pitch {
	return PitchFromInteger(p.Semitone() + iv.Semitones())
}

func normalizeNotename(r rune) (byte, bool) {
	if r >= 'A' && r <= 'Z' {
		r += 'a' - 'A'
	}
	if r >= utf8.RuneSelf {
		return 0, false
	}
	if _, ok := notenameSemitones[byte(r)]; !ok {
		return 0, false
	}
	return byte(r), true
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

func floorMod(a, b int) int {
	m := a % b
	if m < 0 {
		m += b
	}
	return m
}
