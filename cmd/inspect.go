package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/jsphweid/midisynth/chord"
	"github.com/jsphweid/midisynth/constants"
	"github.com/jsphweid/midisynth/midi"
	"github.com/jsphweid/midisynth/model"
	"github.com/jsphweid/midisynth/progress"
	"github.com/jsphweid/midisynth/sequencer"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(inspectCmd)
}

var inspectCmd = &cobra.Command{
	Use:   "inspect <midifile>",
	Short: "Inspects a MIDI file",
	Long:  `Prints the tracks of a MIDI file as the renderer sees them.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := midi.ReadMidiFile(args[0])
		if err != nil {
			return err
		}
		tracks, err := sequencer.Play(s, progress.Nop())
		if err != nil {
			return err
		}
		inspect(os.Stdout, tracks)
		return nil
	},
}

func seconds(micros uint64) float64 {
	return float64(micros) / constants.MicrosPerSecond
}

func inspect(out io.Writer, tracks []model.PlayerTrack) {
	for idx, track := range tracks {
		name := "(unnamed)"
		if track.Name != nil {
			name = fmt.Sprintf("%q", *track.Name)
		}
		fmt.Fprintf(out, "track %d: %s\n", idx, name)
		fmt.Fprintf(out, "  length: %.3fs\n", seconds(track.Length))
		fmt.Fprintf(out, "  notes: %d\n", len(track.Events))
		if len(track.Events) > 0 {
			first := track.Events[0]
			last := track.Events[len(track.Events)-1]
			fmt.Fprintf(out, "  first note: %d at %.3fs\n", first.Note, seconds(first.Time))
			fmt.Fprintf(out, "  last note: %d at %.3fs\n", last.Note, seconds(last.Time))
		}
		chords := chord.GetChords(track)
		if widest, ok := chord.Widest(chords); ok {
			fmt.Fprintf(out, "  chords: %d, widest %s at %.3fs\n", len(chords), chord.CreateChordKey(widest.Notes), seconds(widest.Time))
		}
	}
}
