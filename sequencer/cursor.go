package sequencer

import "gitlab.com/gomidi/midi/v2/smf"

// Cursor walks one track's delta-time events and keeps the next event and
// its absolute tick as lookahead.
type Cursor struct {
	index     int
	events    smf.Track
	pos       int
	next      smf.Event
	ticks     uint64
	exhausted bool
	count     int
}

func NewCursor(index int, track smf.Track) Cursor {
	c := Cursor{
		index:  index,
		events: track,
		count:  len(track),
	}
	c.Advance()
	return c
}

// Advance moves the lookahead to the following event. Once the track runs
// out the cursor is exhausted and keeps no tick.
func (c *Cursor) Advance() {
	if c.exhausted {
		return
	}
	if c.pos >= len(c.events) {
		c.next = smf.Event{}
		c.exhausted = true
		return
	}
	c.next = c.events[c.pos]
	c.pos++
	c.ticks += uint64(c.next.Delta)
}

// Tick returns the absolute tick of the lookahead event; ok is false for
// an exhausted cursor.
func (c *Cursor) Tick() (tick uint64, ok bool) {
	if c.exhausted {
		return 0, false
	}
	return c.ticks, true
}

func (c *Cursor) Peek() (smf.Event, bool) {
	if c.exhausted {
		return smf.Event{}, false
	}
	return c.next, true
}

func (c *Cursor) Index() int {
	return c.index
}

func (c *Cursor) Count() int {
	return c.count
}

func (c *Cursor) Exhausted() bool {
	return c.exhausted
}
