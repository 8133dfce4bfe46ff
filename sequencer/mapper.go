package sequencer

import (
	"github.com/jsphweid/midisynth/constants"
	"github.com/jsphweid/midisynth/midi"
	"github.com/jsphweid/midisynth/model"
	"github.com/jsphweid/midisynth/progress"
	"gitlab.com/gomidi/midi/v2/smf"
)

// Mapper turns merged events into per-track note lists with absolute
// times in microseconds. Events must arrive in tick order.
type Mapper struct {
	ticksPerQuarter uint64
	tempo           uint64 // microseconds per quarter note
	anchorTick      uint64
	anchorTime      uint64
	tracks          []model.PlayerTrack
}

func NewMapper(numTracks int, ticksPerQuarter uint16) *Mapper {
	return &Mapper{
		ticksPerQuarter: uint64(ticksPerQuarter),
		tempo:           constants.DefaultTempo,
		tracks:          make([]model.PlayerTrack, numTracks),
	}
}

// TimeAt converts tick to microseconds using the tempo in effect since the
// last tempo change.
func (m *Mapper) TimeAt(tick uint64) uint64 {
	elapsed := tick - m.anchorTick
	return m.anchorTime + elapsed*m.tempo/m.ticksPerQuarter
}

func (m *Mapper) Tempo() uint32 {
	return uint32(m.tempo)
}

func (m *Mapper) Consume(ev Event) {
	time := m.TimeAt(ev.Tick)
	track := &m.tracks[ev.Track]

	var tempo uint32
	var name *string
	var key, velocity uint8
	switch {
	case midi.GetTempo(ev.Message, &tempo):
		// the new tempo applies from this event on
		m.anchorTick = ev.Tick
		m.anchorTime = time
		m.tempo = uint64(tempo)
	case midi.GetTrackName(ev.Message, &name):
		track.Name = name
	case midi.IsEndOfTrack(ev.Message):
		track.Length = time
	case midi.GetNoteOn(ev.Message, &key, &velocity):
		track.Events = append(track.Events, model.PlayerEvent{
			Time:     time,
			Note:     key,
			Velocity: velocity,
		})
	default:
		// note-offs, controllers and other metas don't affect rendering
	}
}

func (m *Mapper) Tracks() []model.PlayerTrack {
	return m.tracks
}

// Play sequences every track of s and returns one PlayerTrack per input
// track.
func Play(s *smf.SMF, rep progress.Reporter) ([]model.PlayerTrack, error) {
	ticksPerQuarter, err := midi.TicksPerQuarter(s)
	if err != nil {
		return nil, err
	}
	return PlayTracks(s.Tracks, ticksPerQuarter, rep), nil
}

func PlayTracks(tracks []smf.Track, ticksPerQuarter uint16, rep progress.Reporter) []model.PlayerTrack {
	defer rep.Finish()

	seq := New(tracks)
	mapper := NewMapper(seq.NumTracks(), ticksPerQuarter)
	rep.SetTotal(int64(seq.EventCount()))

	for {
		ev, ok := seq.Next()
		if !ok {
			break
		}
		mapper.Consume(ev)
		rep.Increment(1)
	}

	return mapper.Tracks()
}
