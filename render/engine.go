package render

// Engine is a synthesizer driven by MIDI messages that renders stereo
// audio in fixed-size blocks. *meltysynth.Synthesizer implements it.
type Engine interface {
	ProcessMidiMessage(channel int32, command int32, data1 int32, data2 int32)
	NoteOn(channel int32, key int32, velocity int32)
	Render(left []float32, right []float32)
}

// EngineFactory creates a fresh engine for every render job.
type EngineFactory interface {
	NewEngine() (Engine, error)
	SampleRate() int
	BlockSize() int
}

const (
	controlChange = 0xB0
	programChange = 0xC0
	bankSelect    = 0x00
)
