package sequencer

import (
	"github.com/jsphweid/midisynth/util"
	"gitlab.com/gomidi/midi/v2/smf"
)

// Event is one event of the merged stream.
type Event struct {
	Track   int
	Tick    uint64
	Message smf.Message
}

// Sequencer merges the tracks of a file into a single stream ordered by
// absolute tick. Events at the same tick come out in track order.
type Sequencer struct {
	cursors []Cursor
}

func New(tracks []smf.Track) *Sequencer {
	cursors := make([]Cursor, len(tracks))
	for i, track := range tracks {
		cursors[i] = NewCursor(i, track)
	}
	return &Sequencer{cursors: cursors}
}

func (s *Sequencer) NumTracks() int {
	return len(s.cursors)
}

// EventCount is the number of events Next will return in total.
func (s *Sequencer) EventCount() int {
	counts := make([]int, len(s.cursors))
	for i := range s.cursors {
		counts[i] = s.cursors[i].Count()
	}
	return int(util.Sum(counts))
}

// Next returns the earliest pending event, or false once every track is
// exhausted. A linear scan is fine for the tens of tracks a file has.
func (s *Sequencer) Next() (Event, bool) {
	best := -1
	var bestTick uint64
	for i := range s.cursors {
		tick, ok := s.cursors[i].Tick()
		if !ok {
			continue
		}
		if best < 0 || tick < bestTick {
			best = i
			bestTick = tick
		}
	}
	if best < 0 {
		return Event{}, false
	}

	cursor := &s.cursors[best]
	ev, _ := cursor.Peek()
	cursor.Advance()

	return Event{Track: cursor.Index(), Tick: bestTick, Message: ev.Message}, true
}
