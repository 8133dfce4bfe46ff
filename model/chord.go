package model

type Notes = []uint8

// Chord is a set of notes struck at the same time.
type Chord struct {
	Time  uint64
	Notes Notes
}
