package cmd

import (
	"os"

	"github.com/jsphweid/midisynth/config"
	"github.com/jsphweid/midisynth/constants"
	"github.com/jsphweid/midisynth/file"
	"github.com/jsphweid/midisynth/midi"
	"github.com/jsphweid/midisynth/pipeline"
	"github.com/jsphweid/midisynth/progress"
	"github.com/jsphweid/midisynth/synth"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var (
	configPath string
	sampleRate int
	padding    uint64
	format     string
	noEffects  bool
)

func init() {
	renderCmd.Flags().StringVarP(&configPath, "config", "c", "config.toml", "instrument configuration")
	renderCmd.Flags().IntVar(&sampleRate, "sample-rate", constants.SampleRate, "output sample rate in Hz")
	renderCmd.Flags().Uint64Var(&padding, "padding", constants.PaddingMicros, "silence after each track in microseconds")
	renderCmd.Flags().StringVar(&format, "format", string(file.FormatFloat32), "sample format: f32|s16|s24|s32")
	renderCmd.Flags().BoolVar(&noEffects, "no-effects", false, "disable reverb and chorus")
	rootCmd.AddCommand(renderCmd)
}

var renderCmd = &cobra.Command{
	Use:   "render <midifile> <wavfile>",
	Short: "Renders a MIDI file",
	Long: `Renders a MIDI file to a stereo WAV. The output may be a local path
or an s3://bucket/key URL.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		f, err := file.ParseFormat(format)
		if err != nil {
			return err
		}
		if err := checkSampleRate(sampleRate); err != nil {
			return err
		}
		return renderFile(args[0], &file.Writer{Path: args[1], Format: f})
	},
}

func checkSampleRate(rate int) error {
	if rate <= 0 {
		return errors.Errorf("invalid sample rate %d", rate)
	}
	return nil
}

func loadFactory(cfg *config.Config) (*synth.Factory, error) {
	path, err := cfg.SoundFontPath()
	if err != nil {
		return nil, err
	}
	sf, err := synth.LoadSoundFont(path)
	if err != nil {
		return nil, err
	}
	return synth.NewFactory(sf, synth.Options{SampleRate: sampleRate, NoEffects: noEffects}), nil
}

func renderFile(midiPath string, w pipeline.Writer) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	factory, err := loadFactory(cfg)
	if err != nil {
		return err
	}
	s, err := midi.ReadMidiFile(midiPath)
	if err != nil {
		return err
	}

	mon := progress.NewConsole(os.Stdout, os.Stderr)
	defer mon.Wait()
	return pipeline.Run(s, cfg, factory, w, pipeline.Options{Padding: padding}, mon)
}
