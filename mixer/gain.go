package mixer

import (
	"math"

	"github.com/jsphweid/midisynth/model"
)

// NewGainFactors computes the pan law for a gain in dB and a pan position
// in [-1, 1]. Direct terms follow cos/sin of the pan angle, cross terms
// never go negative.
//
// The pan is taken modulo 1 before scaling, so -1 and 1 land in the
// centre rather than hard left or right. Whether that is intended is
// unknown; it is kept as is.
func NewGainFactors(gainDB float32, pan float32) model.GainFactors {
	// map pan from [-1 .. 1] to [0 .. π/2]
	angle := ((math.Mod(float64(pan), 1) + 1) / 2) * (math.Pi / 2)
	gain := math.Pow(10, float64(gainDB)/20)

	return model.GainFactors{
		LeftToLeft:   float32(gain * math.Cos(angle)),
		RightToLeft:  float32(math.Max(0, gain*math.Cos(angle+math.Pi/4))),
		RightToRight: float32(gain * math.Sin(angle)),
		LeftToRight:  float32(math.Max(0, gain*math.Sin(angle-math.Pi/4))),
	}
}
