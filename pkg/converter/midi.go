package converter

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"sort"

	"github.com/james-see/interval/pkg/theory"
	"gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"
)

// DefaultTempo is the tempo in BPM used when none is given
const DefaultTempo = 120.0

// MIDIConverter handles MIDI file parsing and generation
type MIDIConverter struct {
	ticksPerQuarter uint16
	tempo           float64
	channel         uint8
	velocity        uint8
}

// NewMIDIConverter creates a new MIDI converter
func NewMIDIConverter() *MIDIConverter {
	return &MIDIConverter{
		ticksPerQuarter: 480,
		tempo:           DefaultTempo,
		channel:         0,
		velocity:        100,
	}
}

// ParseMIDIFile reads a MIDI file and extracts its melody
func (m *MIDIConverter) ParseMIDIFile(filename string) (*Melody, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read MIDI file: %w", err)
	}
	return m.ParseMIDI(data)
}

// ParseMIDI parses MIDI data into a melody. Note starts from all tracks
// are taken in tick order; each MIDI key becomes a spelled pitch.
func (m *MIDIConverter) ParseMIDI(data []byte) (*Melody, error) {
	s, err := smf.ReadFrom(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to parse MIDI: %w", err)
	}

	type noteStart struct {
		tick int64
		key  uint8
	}

	melody := &Melody{
		Name:  "MIDI Melody",
		Tempo: m.tempo,
	}

	var starts []noteStart
	for _, track := range s.Tracks {
		var tick int64
		for _, ev := range track {
			tick += int64(ev.Delta)

			var bpm float64
			if ev.Message.GetMetaTempo(&bpm) && bpm > 0 {
				melody.Tempo = bpm
				continue
			}

			var ch, key, vel uint8
			if midi.Message(ev.Message).GetNoteStart(&ch, &key, &vel) {
				starts = append(starts, noteStart{tick: tick, key: key})
			}
		}
	}

	sort.SliceStable(starts, func(i, j int) bool { return starts[i].tick < starts[j].tick })

	melody.Pitches = make([]theory.Pitch, len(starts))
	for i, st := range starts {
		melody.Pitches[i] = theory.PitchFromInteger(int(st.key) - 12)
	}
	return melody, nil
}

// GenerateMIDI writes a melody as a single track SMF, one quarter note
// per pitch.
func (m *MIDIConverter) GenerateMIDI(melody *Melody) ([]byte, error) {
	if melody == nil {
		return nil, errors.New("nil melody")
	}
	if len(melody.Pitches) == 0 {
		return nil, errors.New("empty melody")
	}

	tempo := melody.Tempo
	if tempo <= 0 {
		tempo = m.tempo
	}

	s := smf.New()
	s.TimeFormat = smf.MetricTicks(m.ticksPerQuarter)

	var track smf.Track
	track.Add(0, smf.MetaTempo(tempo))
	track.Add(0, smf.MetaMeter(4, 4))

	noteLength := uint32(m.ticksPerQuarter)
	for i, p := range melody.Pitches {
		key, err := p.MIDINote()
		if err != nil {
			return nil, fmt.Errorf("pitch %d (%s): %w", i+1, p, err)
		}
		track.Add(0, midi.NoteOn(m.channel, key, m.velocity))
		track.Add(noteLength, midi.NoteOff(m.channel, key))
	}
	track.Close(0)

	if err := s.Add(track); err != nil {
		return nil, fmt.Errorf("failed to add track: %w", err)
	}

	var buf bytes.Buffer
	if _, err := s.WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("failed to write MIDI: %w", err)
	}
	return buf.Bytes(), nil
}

// WriteMIDIFile writes a melody to a MIDI file
func (m *MIDIConverter) WriteMIDIFile(melody *Melody, filename string) error {
	data, err := m.GenerateMIDI(melody)
	if err != nil {
		return err
	}
	return os.WriteFile(filename, data, 0644)
}
