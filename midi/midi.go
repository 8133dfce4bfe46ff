package midi

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/pkg/errors"
	"gitlab.com/gomidi/midi/v2/smf"
)

var ErrUnsupportedTiming = errors.New("only metrical (ticks per quarter note) timing is supported")

func ReadMidiFile(filepath string) (*smf.SMF, error) {
	dat, err := os.ReadFile(filepath)
	if err != nil {
		return nil, errors.Wrapf(err, "Reading MIDI file %s failed", filepath)
	}
	s, err := ReadMidi(bytes.NewReader(dat))
	if err != nil {
		return nil, errors.Wrapf(err, "Loading MIDI file %s failed", filepath)
	}
	return s, nil
}

func ReadMidi(r io.Reader) (s *smf.SMF, e error) {
	// handle panics
	// https://github.com/gomidi/midi/issues/20
	defer func() {
		if r := recover(); r != nil {
			s = nil
			e = errors.New(fmt.Sprint(r))
		}
	}()

	res, err := smf.ReadFrom(r)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	return res, nil
}

// TicksPerQuarter returns the header's metrical resolution. SMPTE time
// codes are rejected with ErrUnsupportedTiming.
func TicksPerQuarter(s *smf.SMF) (uint16, error) {
	ticks, ok := s.TimeFormat.(smf.MetricTicks)
	if !ok || ticks == 0 {
		return 0, errors.Wrapf(ErrUnsupportedTiming, "time format %v", s.TimeFormat)
	}
	return uint16(ticks), nil
}
