package render

import (
	"github.com/jsphweid/midisynth/constants"
	"github.com/jsphweid/midisynth/model"
	"github.com/jsphweid/midisynth/progress"
	"github.com/jsphweid/midisynth/util"
)

// Renderer plays one track's notes through an engine, one block at a time.
type Renderer struct {
	engine     Engine
	sampleRate int
	blockSize  int
	track      model.PlayerTrack
}

func NewRenderer(engine Engine, sampleRate int, blockSize int, track model.PlayerTrack) *Renderer {
	return &Renderer{
		engine:     engine,
		sampleRate: sampleRate,
		blockSize:  blockSize,
		track:      track,
	}
}

// SampleCount is the rendered length in samples per channel: the track
// plus padding, rounded up to whole blocks.
func (r *Renderer) SampleCount(padding uint64) int {
	n := (r.track.Length + padding) * uint64(r.sampleRate) / constants.MicrosPerSecond
	return int(util.NextMultiple(n, uint64(r.blockSize)))
}

func (r *Renderer) Render(instr model.Instrument, padding uint64, rep progress.Reporter) (left []float32, right []float32) {
	defer rep.Finish()

	sc := r.SampleCount(padding)
	left = make([]float32, sc)
	right = make([]float32, sc)

	// the engine has no API for bank and program, so send them as MIDI
	r.engine.ProcessMidiMessage(0, controlChange, bankSelect, int32(instr.Bank))
	r.engine.ProcessMidiMessage(0, programChange, int32(instr.Preset), 0)

	rep.SetTotal(int64(sc))

	events := r.track.Events
	next := 0
	for si := 0; si < sc; si += r.blockSize {
		t := uint64(si) * constants.MicrosPerSecond / uint64(r.sampleRate)

		for next < len(events) && events[next].Time <= t {
			e := events[next]
			r.engine.NoteOn(0, int32(transpose(e.Note, instr.Transpose)), int32(e.Velocity))
			next++
		}

		r.engine.Render(left[si:si+r.blockSize], right[si:si+r.blockSize])
		rep.Increment(int64(r.blockSize))
	}

	return left, right
}

// transpose shifts a note, saturating at the ends of the MIDI note range.
func transpose(note uint8, semitones int8) uint8 {
	return uint8(util.Clamp(int(note)+int(semitones), 0, 127))
}
