// Package input maps tilt samples onto the current scale of chords.
package input

import (
	"errors"
	"math"

	"github.com/jsphweid/movements/model"
	"github.com/jsphweid/movements/state"
	"github.com/jsphweid/movements/util"
)

var ErrNoMotion = errors.New("no motion sample")

// Sample is one accelerometer reading, each axis nominally in [-1, 1].
type Sample struct {
	X, Y, Z float64
}

func (s Sample) valid() bool {
	return !math.IsNaN(s.X) && !math.IsNaN(s.Y) && !math.IsNaN(s.Z)
}

// Mapping is what a sample resolves to. Moving feeds the voicing engine and
// Pivot replaces the state's pivot pitch, holding the bottom note (oblique
// motion). The caller applies both.
type Mapping struct {
	Moving model.Pitch
	Pivot  model.Pitch
}

// ladder positions span two octaves of the scale of chords, 17 steps
const ladderTop = 16

// Map resolves a sample against st without modifying it.
func Map(st *state.HarmonicState, s Sample) (Mapping, error) {
	if !s.valid() {
		return Mapping{}, ErrNoMotion
	}

	x := util.Clamp(s.X, -1, 0)
	y := util.Clamp(s.Y, -1, 0)
	switch {
	case s.Z > 1:
		x, y = 0, 0
	case s.Z > 0:
		x, y = -1, -1
	}

	xMapped := util.MapValue(x, -1, 1, 0, ladderTop)
	yMapped := util.MapValue(y, -1, 1, ladderTop, 0)

	// on chords live on even degrees, off chords on odd ones
	if st.OnChordLock && xMapped%2 == 1 {
		xMapped++
	} else if st.OffChordLock && xMapped%2 == 0 {
		xMapped++
	}
	xMapped %= ladderTop
	yMapped %= ladderTop

	degrees := st.Scale.Degrees()

	octaveX := model.Pitch(xMapped/8 + 4)
	pitchX := model.Pitch(degrees[xMapped%8]) + st.ScaleRoot + 12*octaveX
	// keep chord roots above the tonic
	if st.ScaleRoot < st.KeyRoot {
		pitchX += 12
	}

	octaveY := model.Pitch((yMapped+1)/9 + 4)
	pitchY := model.Pitch(degrees[yMapped%8]) + st.ScaleRoot + 12*octaveY

	return Mapping{Moving: pitchX, Pivot: pitchY}, nil
}
