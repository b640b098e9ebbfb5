// Package main is the entry point for the interval CLI
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/james-see/interval/pkg/api"
	"github.com/james-see/interval/pkg/converter"
	"github.com/james-see/interval/pkg/theory"
	"github.com/james-see/interval/pkg/tui"
	"github.com/spf13/cobra"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "interval",
		Short: "Parse and name musical pitches and intervals",
		Long: `interval converts pitches and intervals between their text notation,
semitone values and display names.

Pitch tokens are a notename followed by # (sharp), b (flat), ' (octave up)
and , (octave down). Interval tokens are an optional - for descending, a
quality (d, m, M, a, p) and a size. Pass "--" before a descending token.

Examples:
  interval pitch "c#'"
  interval pitch --semitone 61
  interval interval M3
  interval interval -- -p5
  interval interval --semitones 7
  interval between c e
  interval convert melody.txt -o melody.mid
  interval analyze melody.mid
  interval tui
  interval serve --port 8080`,
		Version:      fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date),
		SilenceUsage: true,
	}

	rootCmd.AddCommand(newPitchCmd())
	rootCmd.AddCommand(newIntervalCmd())
	rootCmd.AddCommand(newBetweenCmd())
	rootCmd.AddCommand(newConvertCmd())
	rootCmd.AddCommand(newAnalyzeCmd())
	rootCmd.AddCommand(&cobra.Command{
		Use:   "tui",
		Short: "Launch interactive terminal UI",
		RunE: func(cmd *cobra.Command, args []string) error {
			return tui.Run()
		},
	})
	rootCmd.AddCommand(newServeCmd())
	return rootCmd
}

func newPitchCmd() *cobra.Command {
	var semitone int
	cmd := &cobra.Command{
		Use:   "pitch [token]",
		Short: "Show a pitch token or spell a semitone value",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var p theory.Pitch
			switch {
			case cmd.Flags().Changed("semitone"):
				p = theory.PitchFromInteger(semitone)
			case len(args) == 1:
				var err error
				if p, err = theory.ParsePitch(args[0]); err != nil {
					return err
				}
			default:
				return fmt.Errorf("need a pitch token or --semitone")
			}
			printPitch(cmd, p)
			return nil
		},
	}
	cmd.Flags().IntVarP(&semitone, "semitone", "s", 0, "Semitone value to spell (48 is c)")
	return cmd
}

func newIntervalCmd() *cobra.Command {
	var semitones int
	cmd := &cobra.Command{
		Use:   "interval [token]",
		Short: "Show an interval token or spell a semitone count",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var iv theory.Interval
			switch {
			case cmd.Flags().Changed("semitones"):
				iv = theory.IntervalFromInteger(semitones)
			case len(args) == 1:
				var err error
				if iv, err = theory.ParseInterval(args[0]); err != nil {
					return err
				}
			default:
				return fmt.Errorf("need an interval token or --semitones")
			}
			return printInterval(cmd, iv)
		},
	}
	cmd.Flags().IntVarP(&semitones, "semitones", "s", 0, "Signed semitone count to spell")
	return cmd
}

func newBetweenCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "between <from> <to>",
		Short: "Show the interval from one pitch to another",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			from, err := theory.ParsePitch(args[0])
			if err != nil {
				return fmt.Errorf("from: %w", err)
			}
			to, err := theory.ParsePitch(args[1])
			if err != nil {
				return fmt.Errorf("to: %w", err)
			}
			return printInterval(cmd, theory.Between(from, to))
		},
	}
}

func newConvertCmd() *cobra.Command {
	var (
		outputFile string
		tempo      float64
	)
	cmd := &cobra.Command{
		Use:   "convert <input>",
		Short: "Convert between pitch token text and MIDI",
		Long:  `Converts a text file of pitch tokens (.txt, .notes) to MIDI (.mid, .midi) or back, chosen by file extension.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input := args[0]
			output := getOutputPath(input, outputFile)
			conv := converter.New(tempo)

			fmt.Fprintf(cmd.OutOrStdout(), "Converting %s -> %s\n", input, output)
			if err := conv.ConvertFile(input, output); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Conversion complete!")
			return nil
		},
	}
	cmd.Flags().StringVarP(&outputFile, "output", "o", "", "Output file path")
	cmd.Flags().Float64VarP(&tempo, "tempo", "t", converter.DefaultTempo, "Tempo in BPM for MIDI output")
	return cmd
}

func newAnalyzeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "analyze <file>",
		Short: "List the pitches of a melody and the intervals between them",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			pitches, err := readMelody(args[0])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, st := range converter.Analyze(pitches) {
				name := st.LongName
				if st.LongNameErr != nil {
					name = "- (" + st.LongNameErr.Error() + ")"
				}
				fmt.Fprintf(out, "%-10s %-16s %4d", st.ShortName, name, st.Semitone)
				if st.Interval != nil {
					ivName, err := st.Interval.LongName()
					if err != nil {
						return err
					}
					fmt.Fprintf(out, "  %s %s", st.Interval.ShortName(), ivName)
				}
				fmt.Fprintln(out)
			}
			return nil
		},
	}
}

func newServeCmd() *cobra.Command {
	var serverPort int
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the API server",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintf(cmd.OutOrStdout(), "Starting API server on port %d...\n", serverPort)
			return api.StartServer(serverPort)
		},
	}
	cmd.Flags().IntVarP(&serverPort, "port", "p", 8080, "Server port")
	return cmd
}

func printPitch(cmd *cobra.Command, p theory.Pitch) {
	out := cmd.OutOrStdout()
	name, err := p.LongName()
	if err != nil {
		name = "- (" + err.Error() + ")"
	}
	fmt.Fprintf(out, "Name:       %s\n", name)
	fmt.Fprintf(out, "Short:      %s\n", p.ShortName())
	fmt.Fprintf(out, "Octave:     %d\n", p.Octave())
	fmt.Fprintf(out, "Accidental: %d\n", p.Accidental())
	fmt.Fprintf(out, "Semitone:   %d\n", p.Semitone())
	if key, err := p.MIDINote(); err == nil {
		fmt.Fprintf(out, "MIDI:       %d\n", key)
	}
	fmt.Fprintf(out, "Frequency:  %.2f Hz\n", p.Frequency())
}

func printInterval(cmd *cobra.Command, iv theory.Interval) error {
	name, err := iv.LongName()
	if err != nil {
		return err
	}
	dir := "up"
	if iv.Direction() == theory.Descending {
		dir = "down"
	}
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Name:      %s %s\n", name, dir)
	fmt.Fprintf(out, "Short:     %s\n", iv.ShortName())
	fmt.Fprintf(out, "Octaves:   %d\n", iv.Octave())
	fmt.Fprintf(out, "Semitones: %d\n", iv.Semitones())
	return nil
}

func readMelody(path string) ([]theory.Pitch, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	format := converter.DetectFormat(path)
	if format == converter.FormatUnknown {
		format = converter.DetectFormatFromContent(data)
	}
	if format == converter.FormatMIDI {
		melody, err := converter.NewMIDIConverter().ParseMIDI(data)
		if err != nil {
			return nil, err
		}
		return melody.Pitches, nil
	}
	return converter.ParseTokens(string(data))
}

func getOutputPath(input, output string) string {
	if output != "" {
		return output
	}
	base := strings.TrimSuffix(input, filepath.Ext(input))
	if converter.DetectFormat(input) == converter.FormatMIDI {
		return base + ".txt"
	}
	return base + ".mid"
}
