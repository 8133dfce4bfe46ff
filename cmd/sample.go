package cmd

import (
	"fmt"
	"os"

	"github.com/jsphweid/midisynth/sample"
	"github.com/spf13/cobra"
)

var sampleSoundFont string

func init() {
	sampleCmd.Flags().StringVar(&sampleSoundFont, "soundfont", "~/soundfonts/default.sf2", "soundfont written into the printed configuration")
	rootCmd.AddCommand(sampleCmd)
}

var sampleCmd = &cobra.Command{
	Use:   "sample <midifile>",
	Short: "Writes a demo MIDI file",
	Long: `Writes a short demo MIDI file and prints a configuration that renders
it, useful for checking a soundfont.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := sample.Demo().WriteFile(args[0]); err != nil {
			return err
		}
		fmt.Fprint(os.Stdout, sample.DemoConfig(sampleSoundFont))
		return nil
	},
}
