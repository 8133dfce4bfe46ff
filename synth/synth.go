package synth

import (
	"os"

	"github.com/jsphweid/midisynth/render"
	"github.com/pkg/errors"
	"github.com/sinshu/go-meltysynth/meltysynth"
)

func LoadSoundFont(path string) (*meltysynth.SoundFont, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "Opening soundfont file %s failed", path)
	}
	defer f.Close()

	sf, err := meltysynth.NewSoundFont(f)
	if err != nil {
		return nil, errors.Wrapf(err, "Loading soundfont file %s failed", path)
	}
	return sf, nil
}

type Options struct {
	SampleRate int
	// disables the synthesizer's built-in reverb and chorus
	NoEffects bool
}

// Factory hands out one synthesizer per render job. The SoundFont is only
// read after loading, so all synthesizers share it.
type Factory struct {
	soundFont *meltysynth.SoundFont
	settings  *meltysynth.SynthesizerSettings
}

func NewFactory(sf *meltysynth.SoundFont, opts Options) *Factory {
	settings := meltysynth.NewSynthesizerSettings(int32(opts.SampleRate))
	settings.EnableReverbAndChorus = !opts.NoEffects
	return &Factory{soundFont: sf, settings: settings}
}

func (f *Factory) NewEngine() (render.Engine, error) {
	s, err := meltysynth.NewSynthesizer(f.soundFont, f.settings)
	if err != nil {
		return nil, errors.Wrap(err, "Creating synthesizer failed")
	}
	return s, nil
}

func (f *Factory) SampleRate() int {
	return int(f.settings.SampleRate)
}

func (f *Factory) BlockSize() int {
	return int(f.settings.BlockSize)
}
