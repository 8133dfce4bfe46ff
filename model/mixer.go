package model

// GainFactors are the per-channel coefficients applied when mixing a track.
// LeftToRight and RightToLeft are the cross-feed terms.
type GainFactors struct {
	LeftToLeft   float32
	LeftToRight  float32
	RightToLeft  float32
	RightToRight float32
}

type RenderedTrack struct {
	Name        string
	Left        []float32
	Right       []float32
	GainFactors GainFactors
}

func (t RenderedTrack) Len() int {
	return len(t.Left)
}
