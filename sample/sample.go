package sample

import (
	"io"
	"os"

	"github.com/jsphweid/midisynth/midi"
	"github.com/pkg/errors"
	gomidi "gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"
)

// Builder assembles a metrical SMF in memory.
type Builder struct {
	s smf.SMF
}

func New(ticksPerQuarter uint16) *Builder {
	var b Builder
	b.s.TimeFormat = smf.MetricTicks(ticksPerQuarter)
	return &b
}

func At(delta uint32, msg smf.Message) smf.Event {
	return smf.Event{Delta: delta, Message: msg}
}

func NoteOn(key uint8, velocity uint8) smf.Message {
	return smf.Message(gomidi.NoteOn(0, key, velocity))
}

func NoteOff(key uint8) smf.Message {
	return smf.Message(gomidi.NoteOff(0, key))
}

// Track appends a track made of events. An end-of-track event is added
// unless the events already end with one.
func (b *Builder) Track(events ...smf.Event) *Builder {
	track := append(smf.Track(nil), events...)
	if len(track) == 0 || !midi.IsEndOfTrack(track[len(track)-1].Message) {
		track = append(track, At(0, smf.EOT))
	}
	b.s.Tracks = append(b.s.Tracks, track)
	return b
}

// Named appends a track that starts with a track name event.
func (b *Builder) Named(name string, events ...smf.Event) *Builder {
	return b.Track(append([]smf.Event{At(0, smf.MetaTrackSequenceName(name))}, events...)...)
}

func (b *Builder) SMF() *smf.SMF {
	return &b.s
}

func (b *Builder) WriteTo(w io.Writer) (int64, error) {
	return b.s.WriteTo(w)
}

func (b *Builder) WriteFile(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "Creating MIDI file %s failed", path)
	}
	defer f.Close()

	if _, err := b.WriteTo(f); err != nil {
		return errors.Wrapf(err, "Writing MIDI file %s failed", path)
	}
	return f.Close()
}

// Demo is a two bar phrase on a "Piano" and a "Bass" track at 120 bpm,
// handy for trying out a soundfont and configuration.
func Demo() *Builder {
	const quarter = 480
	b := New(quarter)
	b.Named("Tempo", At(0, smf.MetaTempo(120)), At(8*quarter, smf.EOT))

	var piano []smf.Event
	for _, key := range []uint8{60, 62, 64, 65, 67, 69, 71, 72} {
		piano = append(piano, At(0, NoteOn(key, 96)), At(quarter, NoteOff(key)))
	}
	b.Named("Piano", piano...)

	var bass []smf.Event
	for _, key := range []uint8{36, 43} {
		bass = append(bass, At(0, NoteOn(key, 110)), At(4*quarter, NoteOff(key)))
	}
	b.Named("Bass", bass...)

	return b
}

// DemoConfig is a configuration matching Demo for soundfont.
func DemoConfig(soundfont string) string {
	return `soundfont = "` + soundfont + `"

[[instr.Piano]]
bank = 0
preset = 0
pan = -0.3

[[instr.Bass]]
bank = 0
preset = 33
tsp = -12
pan = 0.3
gain = -3
`
}
