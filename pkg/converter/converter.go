package converter

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Format represents a file format
type Format string

const (
	FormatMIDI    Format = "midi"
	FormatText    Format = "text"
	FormatUnknown Format = "unknown"
)

// DetectFormat detects the format of a file based on extension
func DetectFormat(filename string) Format {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".mid", ".midi":
		return FormatMIDI
	case ".txt", ".notes":
		return FormatText
	default:
		return FormatUnknown
	}
}

// DetectFormatFromContent detects format from file content
func DetectFormatFromContent(data []byte) Format {
	if len(data) >= 4 && string(data[:4]) == "MThd" {
		return FormatMIDI
	}
	if len(data) == 0 {
		return FormatUnknown
	}
	return FormatText
}

// ConvertFile converts a file from one format to another
func (c *Converter) ConvertFile(inputPath, outputPath string) error {
	data, err := os.ReadFile(inputPath)
	if err != nil {
		return fmt.Errorf("failed to read input file: %w", err)
	}

	inputFormat := DetectFormat(inputPath)
	if inputFormat == FormatUnknown {
		inputFormat = DetectFormatFromContent(data)
	}
	outputFormat := DetectFormat(outputPath)
	if outputFormat == FormatUnknown {
		return errors.New("cannot determine output format from filename")
	}

	var outputData []byte
	switch {
	case inputFormat == FormatText && outputFormat == FormatMIDI:
		outputData, err = c.TextToMIDI(data)
	case inputFormat == FormatMIDI && outputFormat == FormatText:
		outputData, err = c.MIDIToText(data)
	default:
		return fmt.Errorf("unsupported conversion: %s to %s", inputFormat, outputFormat)
	}
	if err != nil {
		return fmt.Errorf("conversion failed: %w", err)
	}

	if err := os.WriteFile(outputPath, outputData, 0644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	return nil
}

// TextToMIDI converts pitch token text to MIDI data
func (c *Converter) TextToMIDI(text []byte) ([]byte, error) {
	pitches, err := ParseTokens(string(text))
	if err != nil {
		return nil, err
	}
	melody := &Melody{Name: "Text Melody", Pitches: pitches, Tempo: c.tempo}
	return NewMIDIConverter().GenerateMIDI(melody)
}

// MIDIToText converts MIDI data to pitch token text
func (c *Converter) MIDIToText(midiData []byte) ([]byte, error) {
	melody, err := NewMIDIConverter().ParseMIDI(midiData)
	if err != nil {
		return nil, err
	}
	return []byte(FormatTokens(melody.Pitches) + "\n"), nil
}

// GetSupportedConversions returns a list of supported conversion paths
func GetSupportedConversions() []string {
	return []string{
		"text -> midi",
		"midi -> text",
	}
}
