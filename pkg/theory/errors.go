package theory

import (
	"errors"
	"fmt"
)

// Error categories. Every error returned by this package matches exactly
// one of them with errors.Is.
var (
	// ErrMalformedInput reports text that does not have the expected shape
	ErrMalformedInput = errors.New("malformed input")
	// ErrOutOfDomain reports a value no lookup table covers
	ErrOutOfDomain = errors.New("out of domain")
)

var (
	ErrInvalidNotename       = fmt.Errorf("%w: invalid notename", ErrMalformedInput)
	ErrInvalidModifier       = fmt.Errorf("%w: invalid pitch modifier", ErrMalformedInput)
	ErrMissingQualityOrSize  = fmt.Errorf("%w: missing quality or size", ErrMalformedInput)
	ErrUnknownIntervalNumber = fmt.Errorf("%w: unknown interval number", ErrOutOfDomain)
	ErrUnknownQuality        = fmt.Errorf("%w: unknown quality", ErrOutOfDomain)
	ErrUnknownAccidental     = fmt.Errorf("%w: unknown accidental", ErrOutOfDomain)
	ErrInvalidDirection      = fmt.Errorf("%w: invalid direction", ErrOutOfDomain)
	ErrMIDIRange             = fmt.Errorf("%w: outside MIDI key range", ErrOutOfDomain)
)
