package pipeline

import (
	"errors"
	"testing"

	"github.com/jsphweid/midisynth/config"
	"github.com/jsphweid/midisynth/midi"
	"github.com/jsphweid/midisynth/model"
	"github.com/jsphweid/midisynth/progress"
	"github.com/jsphweid/midisynth/render"
	"github.com/jsphweid/midisynth/sample"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gitlab.com/gomidi/midi/v2/smf"
)

type toneEngine struct {
	notes int
}

func (e *toneEngine) ProcessMidiMessage(channel int32, command int32, data1 int32, data2 int32) {}

func (e *toneEngine) NoteOn(channel int32, key int32, velocity int32) {
	e.notes++
}

func (e *toneEngine) Render(left []float32, right []float32) {
	for i := range left {
		left[i] = 0.25 * float32(e.notes)
		right[i] = 0.25 * float32(e.notes)
	}
}

type toneFactory struct {
	sampleRate, blockSize int
}

func (f toneFactory) NewEngine() (render.Engine, error) { return &toneEngine{}, nil }
func (f toneFactory) SampleRate() int                   { return f.sampleRate }
func (f toneFactory) BlockSize() int                    { return f.blockSize }

type spyWriter struct {
	calls      int
	samples    []float32
	sampleRate int
	channels   int
}

func (w *spyWriter) Write(samples []float32, sampleRate int, channels int) error {
	w.calls++
	w.samples = samples
	w.sampleRate = sampleRate
	w.channels = channels
	return nil
}

func mustParse(t *testing.T, text string) *config.Config {
	c, err := config.Parse([]byte(text))
	require.NoError(t, err)
	return c
}

// an unnamed tempo track and a three note "Lead" track ending at 2s
func twoTrackSong() *smf.SMF {
	return sample.New(480).
		Track(sample.At(0, smf.MetaTempo(120)), sample.At(0, smf.EOT)).
		Named("Lead",
			sample.At(0, sample.NoteOn(60, 100)),
			sample.At(480, sample.NoteOn(64, 100)),
			sample.At(480, sample.NoteOn(67, 100)),
			sample.At(960, smf.EOT),
		).
		SMF()
}

func TestRunEndToEnd(t *testing.T) {
	cfg := mustParse(t, `
[[instr.Lead]]
bank = 0
preset = 0
pan = 0
gain = 0
`)
	factory := toneFactory{sampleRate: 44100, blockSize: 64}
	w := &spyWriter{}
	mon := &progress.Silent{}

	err := Run(twoTrackSong(), cfg, factory, w, DefaultOptions(), mon)
	require.NoError(t, err)

	// (2s + 1.5s) * 44100 = 154350 samples, rounded up to 64
	frames := 154368
	assert.Equal(t, 1, w.calls)
	assert.Equal(t, 44100, w.sampleRate)
	assert.Equal(t, 2, w.channels)
	assert.Len(t, w.samples, 2*frames)
	assert.Equal(t, 0, frames%64)
	assert.GreaterOrEqual(t, frames, 154350)

	// centre pan: each channel at cos(π/4), three notes sounding at the end
	assert.InDelta(t, 0.75*0.70710678, w.samples[len(w.samples)-1], 1e-5)
	assert.Equal(t, []string{"Sequencing MIDI file...", "Rendering tracks...", "Mixing..."}, mon.Phases())
	assert.Empty(t, mon.Warnings())
}

func TestRunWithoutMatchingInstruments(t *testing.T) {
	cfg := mustParse(t, `
[[instr.Strings]]
bank = 0
preset = 48
`)
	w := &spyWriter{}
	mon := &progress.Silent{}

	err := Run(twoTrackSong(), cfg, toneFactory{sampleRate: 44100, blockSize: 64}, w, DefaultOptions(), mon)

	assert.True(t, errors.Is(err, ErrNoAudio))
	assert.EqualError(t, err, "no audio was produced")
	assert.Equal(t, 0, w.calls)
	assert.Equal(t, []string{"No instruments defined for Lead, skipping track!"}, mon.Warnings())
}

func TestRunRejectsTimeCode(t *testing.T) {
	s := twoTrackSong()
	s.TimeFormat = smf.TimeCode{FramesPerSecond: 25, SubFrames: 40}
	w := &spyWriter{}

	err := Run(s, mustParse(t, "[instr]\n"), toneFactory{sampleRate: 44100, blockSize: 64}, w, DefaultOptions(), &progress.Silent{})
	assert.True(t, errors.Is(err, midi.ErrUnsupportedTiming))
	assert.Equal(t, 0, w.calls)
}

func TestMatchJobs(t *testing.T) {
	name := func(s string) *string { return &s }
	tracks := []model.PlayerTrack{
		{Name: name("Conductor")},
		{Name: nil},
		{Name: name("Piano"), Length: 1},
		{Name: name("Drums")},
		{Name: name("Bass"), Length: 2},
	}
	cfg := mustParse(t, `
[[instr.Piano]]
bank = 0
preset = 0

[[instr.Piano]]
bank = 0
preset = 6
tsp = 12

[[instr.Bass]]
preset = 33

[[instr.Bass]]
bank = 1
preset = 34
pan = 0.5
`)
	mon := &progress.Silent{}
	jobs := MatchJobs(tracks, cfg, mon)

	require.Len(t, jobs, 3)
	assert.Equal(t, "Piano", jobs[0].Name)
	assert.Equal(t, model.Instrument{}, jobs[0].Instrument)
	assert.Equal(t, model.Instrument{Preset: 6, Transpose: 12}, jobs[1].Instrument)
	assert.Equal(t, "Bass", jobs[2].Name)
	assert.Equal(t, uint64(2), jobs[2].Track.Length)
	assert.Equal(t, model.Instrument{Bank: 1, Preset: 34, Pan: 0.5}, jobs[2].Instrument)

	assert.Equal(t, []string{
		"No instruments defined for Drums, skipping track!",
		"Missing bank value for Bass, skipping track!",
	}, mon.Warnings())
}

func TestMatchJobsWithMistypedConfig(t *testing.T) {
	name := func(s string) *string { return &s }
	tracks := []model.PlayerTrack{
		{Name: name("Conductor")},
		{Name: name("Piano")},
		{Name: name("Organ")},
		{Name: name("Bass")},
	}
	cfg := mustParse(t, `
[instr.Organ]
bank = 0
preset = 16

[[instr.Piano]]
bank = "0"
preset = 0

[[instr.Bass]]
bank = 0
preset = 33
`)
	mon := &progress.Silent{}
	jobs := MatchJobs(tracks, cfg, mon)

	require.Len(t, jobs, 1)
	assert.Equal(t, "Bass", jobs[0].Name)
	assert.Equal(t, []string{
		"Missing bank value for Piano, skipping track!",
		"No instruments defined for Organ, skipping track!",
	}, mon.Warnings())
}
