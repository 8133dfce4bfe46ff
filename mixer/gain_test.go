package mixer

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGainFactorsCentre(t *testing.T) {
	assert := assert.New(t)
	gf := NewGainFactors(0, 0)

	assert.InDelta(math.Sqrt2/2, gf.LeftToLeft, 1e-6)
	assert.InDelta(math.Sqrt2/2, gf.RightToRight, 1e-6)
	assert.InDelta(0, gf.RightToLeft, 1e-6)
	assert.InDelta(0, gf.LeftToRight, 1e-6)
	assert.GreaterOrEqual(gf.RightToLeft, float32(0))
	assert.GreaterOrEqual(gf.LeftToRight, float32(0))
}

func TestGainFactorsGain(t *testing.T) {
	gf := NewGainFactors(-6, 0)
	want := math.Pow(10, -6.0/20) * math.Sqrt2 / 2
	assert.InDelta(t, want, gf.LeftToLeft, 1e-6)
	assert.InDelta(t, want, gf.RightToRight, 1e-6)
}

func TestGainFactorsPanLeft(t *testing.T) {
	assert := assert.New(t)
	gf := NewGainFactors(0, -0.5)

	angle := 0.25 * math.Pi / 2
	assert.InDelta(math.Cos(angle), gf.LeftToLeft, 1e-6)
	assert.InDelta(math.Sin(angle), gf.RightToRight, 1e-6)
	assert.InDelta(math.Cos(angle+math.Pi/4), gf.RightToLeft, 1e-6)
	assert.Greater(gf.RightToLeft, float32(0))
	assert.Equal(float32(0), gf.LeftToRight)
}

func TestGainFactorsPanRight(t *testing.T) {
	assert := assert.New(t)
	gf := NewGainFactors(0, 0.5)

	angle := 0.75 * math.Pi / 2
	assert.InDelta(math.Sin(angle-math.Pi/4), gf.LeftToRight, 1e-6)
	assert.Greater(gf.LeftToRight, float32(0))
	assert.Equal(float32(0), gf.RightToLeft)
}

func TestGainFactorsPanWrapsAtEdges(t *testing.T) {
	centre := NewGainFactors(0, 0)
	assert.InDelta(t, centre.LeftToLeft, NewGainFactors(0, 1).LeftToLeft, 1e-6)
	assert.InDelta(t, centre.LeftToLeft, NewGainFactors(0, -1).LeftToLeft, 1e-6)
	assert.InDelta(t, NewGainFactors(0, 0.25).RightToRight, NewGainFactors(0, 1.25).RightToRight, 1e-6)
}
