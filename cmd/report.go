package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/jsphweid/midisynth/config"
	"github.com/jsphweid/midisynth/midi"
	"github.com/jsphweid/midisynth/model"
	"github.com/jsphweid/midisynth/pipeline"
	"github.com/jsphweid/midisynth/progress"
	"github.com/jsphweid/midisynth/render"
	"github.com/jsphweid/midisynth/sequencer"
	"github.com/spf13/cobra"
)

func init() {
	reportCmd.Flags().StringVarP(&configPath, "config", "c", "config.toml", "instrument configuration")
	rootCmd.AddCommand(reportCmd)
}

var reportCmd = &cobra.Command{
	Use:   "report <midifile>",
	Short: "Reports which tracks would be rendered",
	Long: `Matches the tracks of a MIDI file against the configured instruments
without loading the soundfont or rendering anything.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(configPath)
		if err != nil {
			return err
		}
		s, err := midi.ReadMidiFile(args[0])
		if err != nil {
			return err
		}
		tracks, err := sequencer.Play(s, progress.Nop())
		if err != nil {
			return err
		}
		report(os.Stdout, tracks, cfg)
		return nil
	},
}

func report(out io.Writer, tracks []model.PlayerTrack, cfg *config.Config) {
	mon := &progress.Silent{}
	jobs := pipeline.MatchJobs(tracks, cfg, mon)

	for _, job := range jobs {
		instr := job.Instrument
		fmt.Fprintf(out, "%s: bank %d preset %d tsp %d pan %.2f gain %.1fdB (%d notes)\n",
			job.Name, instr.Bank, instr.Preset, instr.Transpose, instr.Pan, instr.Gain, len(job.Track.Events))
	}
	for _, warning := range mon.Warnings() {
		fmt.Fprintf(out, "%s: %s\n", progress.WarningLabel(), warning)
	}
	fmt.Fprintf(out, "%d instrument(s) on %d track(s) would be rendered\n", len(jobs), countTracks(jobs))
}

func countTracks(jobs []render.Job) int {
	names := make(map[string]struct{})
	for _, job := range jobs {
		names[job.Name] = struct{}{}
	}
	return len(names)
}
