package converter

import (
	"fmt"
	"strings"

	"github.com/james-see/interval/pkg/theory"
)

// ParseTokens parses whitespace separated pitch tokens
func ParseTokens(text string) ([]theory.Pitch, error) {
	fields := strings.Fields(text)
	pitches := make([]theory.Pitch, 0, len(fields))
	for i, tok := range fields {
		p, err := theory.ParsePitch(tok)
		if err != nil {
			return nil, fmt.Errorf("token %d: %w", i+1, err)
		}
		pitches = append(pitches, p)
	}
	return pitches, nil
}

// FormatTokens renders pitches as space separated short names
func FormatTokens(pitches []theory.Pitch) string {
	names := make([]string, len(pitches))
	for i, p := range pitches {
		names[i] = p.ShortName()
	}
	return strings.Join(names, " ")
}

// Analyze names every pitch and the melodic interval to the one after it
func Analyze(pitches []theory.Pitch) []Step {
	steps := make([]Step, len(pitches))
	for i, p := range pitches {
		step := Step{
			Pitch:     p,
			ShortName: p.ShortName(),
			Semitone:  p.Semitone(),
		}
		step.LongName, step.LongNameErr = p.LongName()
		if i+1 < len(pitches) {
			iv := theory.Between(p, pitches[i+1])
			step.Interval = &iv
		}
		steps[i] = step
	}
	return steps
}
