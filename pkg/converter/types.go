// Package converter provides conversion between pitch token text and Standard MIDI Files
package converter

import "github.com/james-see/interval/pkg/theory"

// Melody is an ordered sequence of pitches
type Melody struct {
	Name    string
	Pitches []theory.Pitch
	Tempo   float64
}

// Step describes one pitch of a melody and its move to the next pitch
type Step struct {
	Pitch       theory.Pitch
	ShortName   string
	LongName    string
	LongNameErr error // Set, with LongName empty, when the accidental has no name
	Semitone    int
	Interval    *theory.Interval // Nil for the last step
}

// Converter handles format conversions
type Converter struct {
	tempo float64
}

// New creates a new Converter writing MIDI at the given tempo
func New(tempo float64) *Converter {
	if tempo <= 0 {
		tempo = DefaultTempo
	}
	return &Converter{tempo: tempo}
}

// GetTempo returns the tempo used for generated MIDI
func (c *Converter) GetTempo() float64 {
	return c.tempo
}

// SetTempo sets the tempo used for generated MIDI
func (c *Converter) SetTempo(tempo float64) {
	if tempo > 0 {
		c.tempo = tempo
	}
}
