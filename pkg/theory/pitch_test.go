package theory

import (
	"errors"
	"math"
	"testing"
)

func TestParsePitch(t *testing.T) {
	tests := []struct {
		token      string
		notename   rune
		octave     int
		accidental int
		semitone   int
	}{
		{"c", 'c', 0, 0, 48},
		{"c#'", 'c', 1, 1, 61},
		{"C", 'c', 0, 0, 48},
		{"bb", 'b', 0, -1, 58},
		{"e,,", 'e', -2, 0, 28},
		{"f#b", 'f', 0, 0, 53},
		{"G##'", 'g', 1, 2, 68},
		{"a'b,b", 'a', 0, -2, 55},
		{"g", 'g', 0, 0, 54},
	}

	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			p, err := ParsePitch(tt.token)
			if err != nil {
				t.Fatalf("ParsePitch(%q) error = %v", tt.token, err)
			}
			if p.Notename() != tt.notename {
				t.Errorf("Notename() = %q, want %q", p.Notename(), tt.notename)
			}
			if p.Octave() != tt.octave {
				t.Errorf("Octave() = %d, want %d", p.Octave(), tt.octave)
			}
			if p.Accidental() != tt.accidental {
				t.Errorf("Accidental() = %d, want %d", p.Accidental(), tt.accidental)
			}
			if p.Semitone() != tt.semitone {
				t.Errorf("Semitone() = %d, want %d", p.Semitone(), tt.semitone)
			}
		})
	}
}

func TestParsePitchErrors(t *testing.T) {
	tests := []struct {
		token string
		want  error
	}{
		{"", ErrInvalidNotename},
		{"x", ErrInvalidNotename},
		{"h#", ErrInvalidNotename},
		{"#c", ErrInvalidNotename},
		{"ĉ", ErrInvalidNotename},
		{"c!", ErrInvalidModifier},
		{"c 4", ErrInvalidModifier},
	}

	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			_, err := ParsePitch(tt.token)
			if !errors.Is(err, tt.want) {
				t.Fatalf("ParsePitch(%q) error = %v, want %v", tt.token, err, tt.want)
			}
			if !errors.Is(err, ErrMalformedInput) {
				t.Errorf("ParsePitch(%q) error = %v, want a malformed input error", tt.token, err)
			}
		})
	}
}

func TestPitchFromInteger(t *testing.T) {
	tests := []struct {
		n          int
		notename   rune
		octave     int
		accidental int
	}{
		{48, 'c', 0, 0},
		{61, 'c', 1, 1},
		{50, 'd', 0, 0},
		{54, 'f', 0, 1},
		{55, 'g', 0, 1},
		{56, 'g', 0, 2},
		{59, 'c', 0, 11}, // class 11 is spelled from c
		{47, 'c', -1, 11},
		{36, 'c', -1, 0},
		{0, 'c', -4, 0},
		{-1, 'c', -5, 11},
	}

	for _, tt := range tests {
		p := PitchFromInteger(tt.n)
		if p.Notename() != tt.notename || p.Octave() != tt.octave || p.Accidental() != tt.accidental {
			t.Errorf("PitchFromInteger(%d) = {%q %d %d}, want {%q %d %d}",
				tt.n, p.Notename(), p.Octave(), p.Accidental(), tt.notename, tt.octave, tt.accidental)
		}
		if p.Semitone() != tt.n {
			t.Errorf("PitchFromInteger(%d).Semitone() = %d", tt.n, p.Semitone())
		}
	}
}

func TestPitchIntegerRoundTrip(t *testing.T) {
	for _, n := range "cdefgab" {
		for acc := -2; acc <= 2; acc++ {
			for oct := -3; oct <= 3; oct++ {
				p, err := NewPitch(n, acc, oct)
				if err != nil {
					t.Fatalf("NewPitch(%q, %d, %d) error = %v", n, acc, oct, err)
				}
				got := PitchFromInteger(p.Semitone()).Semitone()
				if got != p.Semitone() {
					t.Errorf("round trip of %s = %d, want %d", p, got, p.Semitone())
				}
			}
		}
	}
}

func TestPitchShortNameRoundTrip(t *testing.T) {
	tokens := []string{"c", "c#'", "bb", "Bbb,,", "e''", "f#b#", "g,#", "a'''", "dbbb"}
	for n := -30; n <= 130; n++ {
		tokens = append(tokens, PitchFromInteger(n).ShortName())
	}

	for _, token := range tokens {
		p, err := ParsePitch(token)
		if err != nil {
			t.Fatalf("ParsePitch(%q) error = %v", token, err)
		}
		again, err := ParsePitch(p.ShortName())
		if err != nil {
			t.Fatalf("ParsePitch(%q) error = %v", p.ShortName(), err)
		}
		if again.Semitone() != p.Semitone() {
			t.Errorf("%q -> %q: semitone %d, want %d", token, p.ShortName(), again.Semitone(), p.Semitone())
		}
	}
}

func TestPitchLongName(t *testing.T) {
	tests := []struct {
		token string
		want  string
	}{
		{"c", "C"},
		{"c#'", "C sharp"},
		{"eb", "E flat"},
		{"bbb", "B double flat"},
		{"G##,", "G double sharp"},
	}

	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			got, err := MustParsePitch(tt.token).LongName()
			if err != nil {
				t.Fatalf("LongName() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("LongName() = %q, want %q", got, tt.want)
			}
		})
	}

	got, err := PitchFromInteger(61).LongName()
	if err != nil || got != "C sharp" {
		t.Errorf("PitchFromInteger(61).LongName() = %q, %v, want %q", got, err, "C sharp")
	}
}

func TestPitchLongNameUnknownAccidental(t *testing.T) {
	for _, token := range []string{"c###", "dbbb"} {
		_, err := MustParsePitch(token).LongName()
		if !errors.Is(err, ErrUnknownAccidental) || !errors.Is(err, ErrOutOfDomain) {
			t.Errorf("%q LongName() error = %v, want %v", token, err, ErrUnknownAccidental)
		}
	}
	if _, err := PitchFromInteger(59).LongName(); !errors.Is(err, ErrUnknownAccidental) {
		t.Errorf("PitchFromInteger(59).LongName() error = %v, want %v", err, ErrUnknownAccidental)
	}
}

func TestPitchShortName(t *testing.T) {
	tests := []struct {
		notename   rune
		accidental int
		octave     int
		want       string
	}{
		{'c', 0, 0, "c"},
		{'C', 1, 1, "c#'"},
		{'b', -1, 0, "bb"},
		{'b', -2, -1, "bbb,"},
		{'e', 3, 2, "e###''"},
	}

	for _, tt := range tests {
		p, err := NewPitch(tt.notename, tt.accidental, tt.octave)
		if err != nil {
			t.Fatalf("NewPitch() error = %v", err)
		}
		if got := p.ShortName(); got != tt.want {
			t.Errorf("ShortName() = %q, want %q", got, tt.want)
		}
		if got := p.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}

func TestNewPitchInvalidNotename(t *testing.T) {
	if _, err := NewPitch('h', 0, 0); !errors.Is(err, ErrInvalidNotename) {
		t.Errorf("NewPitch('h') error = %v, want %v", err, ErrInvalidNotename)
	}
}

func TestPitchMIDINote(t *testing.T) {
	tests := []struct {
		token string
		want  uint8
	}{
		{"c", 60},
		{"a", 69},
		{"c,,,,,", 0},
		{"c''''", 108},
	}

	for _, tt := range tests {
		got, err := MustParsePitch(tt.token).MIDINote()
		if err != nil {
			t.Fatalf("%q MIDINote() error = %v", tt.token, err)
		}
		if got != tt.want {
			t.Errorf("%q MIDINote() = %d, want %d", tt.token, got, tt.want)
		}
	}

	for _, token := range []string{"c,,,,,,", "c''''''"} {
		if _, err := MustParsePitch(token).MIDINote(); !errors.Is(err, ErrMIDIRange) {
			t.Errorf("%q MIDINote() error = %v, want %v", token, err, ErrMIDIRange)
		}
	}
}

func TestPitchFrequency(t *testing.T) {
	tests := []struct {
		token string
		want  float64
	}{
		{"a", 440},
		{"a'", 880},
		{"a,", 220},
		{"c", 261.6256},
	}

	for _, tt := range tests {
		got := MustParsePitch(tt.token).Frequency()
		if math.Abs(got-tt.want) > 0.001 {
			t.Errorf("%q Frequency() = %f, want %f", tt.token, got, tt.want)
		}
	}
}

func TestPitchTranspose(t *testing.T) {
	tests := []struct {
		pitch    string
		interval string
		want     string
	}{
		{"c", "M3", "e"},
		{"c", "-p1", "c"},
		{"d", "m3", "f"},
		{"e", "-M3", "c"},
		{"c", "M9", "d'"},
	}

	for _, tt := range tests {
		got := MustParsePitch(tt.pitch).Transpose(MustParseInterval(tt.interval))
		if got.ShortName() != tt.want {
			t.Errorf("%s + %s = %s, want %s", tt.pitch, tt.interval, got, tt.want)
		}
	}
}

func TestMustParsePitchPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("MustParsePitch(\"x\") did not panic")
		}
	}()
	MustParsePitch("x")
}
