package input

import (
	"math"
	"testing"

	"github.com/jsphweid/movements/model"
	"github.com/jsphweid/movements/scale"
	"github.com/jsphweid/movements/state"
	"github.com/stretchr/testify/assert"
)

func chordOne() *state.HarmonicState {
	st := state.New(scale.Major, 0)
	st.Press(model.Chord1)
	return st
}

func TestMapSamples(t *testing.T) {
	cases := []struct {
		name   string
		sample Sample
		want   Mapping
	}{
		{"face up centers", Sample{-0.8, -0.3, 1.5}, Mapping{Moving: 60, Pivot: 60}},
		{"tilted over drops low", Sample{-0.2, -0.2, 0.5}, Mapping{Moving: 48, Pivot: 48}},
		{"pass through", Sample{-0.5, -0.25, -0.1}, Mapping{Moving: 55, Pivot: 64}},
		{"positive axes clamp to center", Sample{0.7, 0.9, -1}, Mapping{Moving: 60, Pivot: 60}},
		{"out of range clamps to low", Sample{-3, -3, -1}, Mapping{Moving: 48, Pivot: 48}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			m, err := Map(chordOne(), c.sample)
			assert.NoError(t, err)
			assert.Equal(t, c.want, m)
		})
	}
}

func TestOnChordLockForcesEvenDegrees(t *testing.T) {
	st := chordOne()
	assert.True(t, st.OnChordLock)

	// x = -0.625 lands on ladder position 3
	m, err := Map(st, Sample{-0.625, -1, -1})
	assert.NoError(t, err)
	assert.Equal(t, model.Pitch(55), m.Moving)

	st.OnChordLock = false
	m, err = Map(st, Sample{-0.625, -1, -1})
	assert.NoError(t, err)
	assert.Equal(t, model.Pitch(53), m.Moving)
}

func TestOffChordLockForcesOddDegrees(t *testing.T) {
	st := chordOne()
	st.Press(model.OffLock)

	m, err := Map(st, Sample{-0.5, -1, -1})
	assert.NoError(t, err)
	// position 4 becomes 5: the G# of the diminished seventh
	assert.Equal(t, model.Pitch(56), m.Moving)
}

func TestRootBelowTonicIsRaised(t *testing.T) {
	st := state.New(scale.Major, 2)
	st.Press(model.Chord7)
	assert.Equal(t, model.Pitch(1), st.ScaleRoot)

	m, err := Map(st, Sample{-1, -1, -1})
	assert.NoError(t, err)
	assert.Equal(t, model.Pitch(61), m.Moving)
	assert.Equal(t, model.Pitch(49), m.Pivot)
}

func TestMapDoesNotTouchState(t *testing.T) {
	st := chordOne()
	before := st.Clone()
	_, err := Map(st, Sample{-0.5, -0.5, 0})
	assert.NoError(t, err)
	assert.Equal(t, before, st.Clone())
}

func TestNaNIsNoMotion(t *testing.T) {
	_, err := Map(chordOne(), Sample{math.NaN(), 0, 0})
	assert.ErrorIs(t, err, ErrNoMotion)
}

func TestMappedPitchesStayInScale(t *testing.T) {
	for _, b := range []model.Button{model.Chord1, model.Chord2, model.Chord5, model.Chord7, model.Chord8} {
		st := state.New(scale.Major, 0)
		st.Press(b)
		degrees := st.Scale.Degrees()
		for x := -1.0; x <= 0; x += 0.05 {
			m, err := Map(st, Sample{x, x, -1})
			assert.NoError(t, err)
			pc := int((m.Moving - st.ScaleRoot).Class())
			assert.NotEqual(t, -1, degrees.Index(pc), "%v x=%v", b, x)
			pc = int((m.Pivot - st.ScaleRoot).Class())
			assert.NotEqual(t, -1, degrees.Index(pc), "%v x=%v", b, x)
		}
	}
}
