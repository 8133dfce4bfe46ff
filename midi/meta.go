package midi

import (
	"unicode/utf8"

	"gitlab.com/gomidi/midi/v2/smf"
)

// GetTempo reports the microseconds per quarter note of a set-tempo meta.
// The raw value is read instead of GetMetaTempo's bpm to stay exact.
func GetTempo(msg smf.Message, microsPerQuarter *uint32) bool {
	if !msg.Is(smf.MetaTempoMsg) || len(msg) != 6 || msg[2] != 3 {
		return false
	}
	*microsPerQuarter = uint32(msg[3])<<16 | uint32(msg[4])<<8 | uint32(msg[5])
	return true
}

// GetTrackName reports whether msg is a track name meta. name is left nil
// when the text is not valid UTF-8.
func GetTrackName(msg smf.Message, name **string) bool {
	var text string
	if !msg.GetMetaTrackName(&text) {
		return false
	}
	*name = nil
	if utf8.ValidString(text) {
		*name = &text
	}
	return true
}

func IsEndOfTrack(msg smf.Message) bool {
	return msg.Is(smf.MetaEndOfTrackMsg)
}

// GetNoteOn matches note-on messages of any velocity, including the
// zero-velocity form some writers use instead of note-off.
func GetNoteOn(msg smf.Message, key *uint8, velocity *uint8) bool {
	var channel uint8
	return msg.GetNoteOn(&channel, key, velocity)
}
