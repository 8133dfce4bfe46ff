//go:build e2e
// +build e2e

package e2e_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/go-audio/wav"
	"github.com/jsphweid/midisynth/config"
	"github.com/jsphweid/midisynth/file"
	"github.com/jsphweid/midisynth/midi"
	"github.com/jsphweid/midisynth/pipeline"
	"github.com/jsphweid/midisynth/progress"
	"github.com/jsphweid/midisynth/sample"
	"github.com/jsphweid/midisynth/synth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Renders the demo song with a real soundfont, given by
// MIDISYNTH_SOUNDFONT.
func setup(t *testing.T) (dir string, cfg *config.Config, factory *synth.Factory) {
	sf := os.Getenv("MIDISYNTH_SOUNDFONT")
	if sf == "" {
		t.Skip("MIDISYNTH_SOUNDFONT not set")
	}

	dir = t.TempDir()
	cfgPath := filepath.Join(dir, "config.toml")
	require.NoError(t, os.WriteFile(cfgPath, []byte(sample.DemoConfig(sf)), 0o644))

	cfg, err := config.Load(cfgPath)
	require.NoError(t, err)
	path, err := cfg.SoundFontPath()
	require.NoError(t, err)
	soundFont, err := synth.LoadSoundFont(path)
	require.NoError(t, err)

	return dir, cfg, synth.NewFactory(soundFont, synth.Options{SampleRate: 44100})
}

func TestRenderDemoE2E(t *testing.T) {
	dir, cfg, factory := setup(t)
	assert := assert.New(t)

	midiPath := filepath.Join(dir, "demo.mid")
	require.NoError(t, sample.Demo().WriteFile(midiPath))
	s, err := midi.ReadMidiFile(midiPath)
	require.NoError(t, err)

	out := filepath.Join(dir, "demo.wav")
	mon := &progress.Silent{}
	err = pipeline.Run(s, cfg, factory, &file.Writer{Path: out, Format: file.FormatS16}, pipeline.DefaultOptions(), mon)
	require.NoError(t, err)
	assert.Empty(mon.Warnings())

	f, err := os.Open(out)
	require.NoError(t, err)
	defer f.Close()

	dec := wav.NewDecoder(f)
	buf, err := dec.FullPCMBuffer()
	require.NoError(t, err)
	assert.Equal(uint16(2), dec.NumChans)
	assert.Equal(uint32(44100), dec.SampleRate)

	// 4s of music plus 1.5s padding, rounded up to whole blocks
	frames := len(buf.Data) / 2
	assert.GreaterOrEqual(frames, 5*44100+44100/2)
	assert.Less(frames, 5*44100+44100/2+factory.BlockSize())

	var peak int
	for _, v := range buf.Data {
		if v > peak {
			peak = v
		}
	}
	assert.Greater(peak, 0, "expected audible output")
}
