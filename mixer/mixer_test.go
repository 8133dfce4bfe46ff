package mixer

import (
	"testing"

	"github.com/jsphweid/midisynth/model"
	"github.com/stretchr/testify/assert"
)

type countingReporter struct {
	total, count int64
	finished     bool
}

func (r *countingReporter) SetTotal(total int64) { r.total = total }
func (r *countingReporter) Increment(n int64)    { r.count += n }
func (r *countingReporter) Finish()              { r.finished = true }

var unity = model.GainFactors{LeftToLeft: 1, RightToRight: 1}

func TestMixUnequalLengths(t *testing.T) {
	long := model.RenderedTrack{
		Left:        []float32{0.1, 0.2, 0.3, 0.4},
		Right:       []float32{-0.1, -0.2, -0.3, -0.4},
		GainFactors: unity,
	}
	short := model.RenderedTrack{
		Left:        []float32{1, 1},
		Right:       []float32{2, 2},
		GainFactors: unity,
	}

	rep := &countingReporter{}
	out := MixStereo([]model.RenderedTrack{short, long}, rep)

	assert.Len(t, out, 8)
	assert.InDeltaSlice(t, []float32{1.1, 1.9, 1.2, 1.8, 0.3, -0.3, 0.4, -0.4}, out, 1e-6)
	assert.Equal(t, int64(4), rep.total)
	assert.Equal(t, int64(4), rep.count)
	assert.True(t, rep.finished)
}

func TestMixAppliesCrossFeed(t *testing.T) {
	track := model.RenderedTrack{
		Left:  []float32{1},
		Right: []float32{10},
		GainFactors: model.GainFactors{
			LeftToLeft:   0.5,
			LeftToRight:  0.25,
			RightToLeft:  0.1,
			RightToRight: 2,
		},
	}
	out := MixStereo([]model.RenderedTrack{track}, &countingReporter{})
	assert.InDeltaSlice(t, []float32{0.5 + 1, 0.25 + 20}, out, 1e-6)
}

func TestMixDoesNotClip(t *testing.T) {
	track := model.RenderedTrack{Left: []float32{0.9}, Right: []float32{0.9}, GainFactors: unity}
	out := MixStereo([]model.RenderedTrack{track, track, track}, &countingReporter{})
	assert.InDeltaSlice(t, []float32{2.7, 2.7}, out, 1e-6)
}

func TestMixNothing(t *testing.T) {
	rep := &countingReporter{}
	assert.Empty(t, MixStereo(nil, rep))
	assert.True(t, rep.finished)
}

func TestMixReportsInBatches(t *testing.T) {
	n := reportEvery*2 + 7
	track := model.RenderedTrack{Left: make([]float32, n), Right: make([]float32, n), GainFactors: unity}
	rep := &countingReporter{}
	out := MixStereo([]model.RenderedTrack{track}, rep)
	assert.Len(t, out, 2*n)
	assert.Equal(t, int64(n), rep.count)
}
