package cmd

import (
	"fmt"
	"os"

	"github.com/jsphweid/midisynth/progress"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "midisynth",
	Short: "Renders MIDI files to WAV with a SoundFont",
	Long: `midisynth renders every named track of a Standard MIDI File with the
instruments listed in a TOML configuration and mixes them to a stereo WAV.`,
	SilenceErrors: true,
	SilenceUsage:  true,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", progress.ErrorLabel(), err)
		os.Exit(1)
	}
}
