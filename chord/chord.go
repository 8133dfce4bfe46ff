package chord

import (
	"fmt"
	"sort"

	"github.com/jsphweid/midisynth/model"
)

// CreateChordKey renders notes in ascending order, e.g. "60-64-67".
func CreateChordKey(notes []uint8) string {
	sorted := append([]uint8(nil), notes...)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i] < sorted[j]
	})
	var res string
	for i, note := range sorted {
		res += fmt.Sprintf("%v", note)
		if i < len(sorted)-1 {
			res += "-"
		}
	}
	return res
}

// GetChords groups the note-ons of a track by onset time. Only onsets with
// at least two distinct notes count as chords.
func GetChords(track model.PlayerTrack) []model.Chord {
	var chords []model.Chord

	for i := 0; i < len(track.Events); {
		t := track.Events[i].Time
		pressed := make(map[uint8]bool)
		for ; i < len(track.Events) && track.Events[i].Time == t; i++ {
			pressed[track.Events[i].Note] = true
		}
		if len(pressed) < 2 {
			continue
		}

		var notes model.Notes
		for note := range pressed {
			notes = append(notes, note)
		}
		sort.Slice(notes, func(i, j int) bool {
			return notes[i] < notes[j]
		})
		chords = append(chords, model.Chord{Time: t, Notes: notes})
	}
	return chords
}

// Widest returns the chord with the most notes, the earliest on ties.
func Widest(chords []model.Chord) (model.Chord, bool) {
	if len(chords) == 0 {
		return model.Chord{}, false
	}
	widest := chords[0]
	for _, c := range chords[1:] {
		if len(c.Notes) > len(widest.Notes) {
			widest = c
		}
	}
	return widest, true
}
