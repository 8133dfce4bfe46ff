package model

// PlayerEvent is a note-on at an absolute time in microseconds.
type PlayerEvent struct {
	Time     uint64
	Note     uint8
	Velocity uint8
}

// PlayerTrack holds the note-ons of one input track in time order.
type PlayerTrack struct {
	// nil when the track carries no (decodable) track name
	Name   *string
	Length uint64
	Events []PlayerEvent
}

func (t PlayerTrack) DisplayName() string {
	if t.Name == nil {
		return ""
	}
	return *t.Name
}

// Clone returns a copy that shares no memory with t.
func (t PlayerTrack) Clone() PlayerTrack {
	c := t
	if t.Name != nil {
		name := *t.Name
		c.Name = &name
	}
	c.Events = append([]PlayerEvent(nil), t.Events...)
	return c
}
