package mixer

import (
	"github.com/jsphweid/midisynth/model"
	"github.com/jsphweid/midisynth/progress"
)

// progress is reported every this many frames
const reportEvery = 4096

// MixStereo sums all tracks into one interleaved stereo buffer as long as
// the longest track. Shorter tracks are silent past their end. The result
// is neither normalized nor clipped.
func MixStereo(tracks []model.RenderedTrack, rep progress.Reporter) []float32 {
	defer rep.Finish()

	var sc int
	for _, t := range tracks {
		if t.Len() > sc {
			sc = t.Len()
		}
	}

	out := make([]float32, 0, sc*2)
	rep.SetTotal(int64(sc))

	for si := 0; si < sc; si++ {
		var sl, sr float32
		for i := range tracks {
			t := &tracks[i]
			gf := &t.GainFactors
			var il, ir float32
			if si < len(t.Left) {
				il = t.Left[si]
			}
			if si < len(t.Right) {
				ir = t.Right[si]
			}
			sl += gf.LeftToLeft*il + gf.RightToLeft*ir
			sr += gf.LeftToRight*il + gf.RightToRight*ir
		}
		out = append(out, sl, sr)

		if (si+1)%reportEvery == 0 {
			rep.Increment(reportEvery)
		}
	}
	if rest := sc % reportEvery; rest != 0 {
		rep.Increment(int64(rest))
	}

	return out
}
