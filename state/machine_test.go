package state

import (
	"testing"

	"github.com/jsphweid/movements/model"
	"github.com/jsphweid/movements/scale"
	"github.com/stretchr/testify/assert"
)

func newCMajor() *HarmonicState {
	return New(scale.Major, 0)
}

func TestPressChordOne(t *testing.T) {
	s := newCMajor()
	s.Press(model.Chord1)

	assert := assert.New(t)
	assert.Equal(1, s.ChordNumeral)
	assert.Equal(scale.MajorSixthDiminished, s.Scale)
	assert.Equal(scale.Degrees{0, 2, 4, 5, 7, 8, 9, 11}, s.Scale.Degrees())
	assert.Equal(model.Pitch(0), s.ScaleRoot)
	assert.Equal(model.Pitch(24), s.BassNote)
	assert.True(s.OnChordLock)
	assert.False(s.EightChord)
	assert.Equal(model.Chord1, s.LastButton)
}

func TestPressEachNumeral(t *testing.T) {
	cases := []struct {
		button model.Button
		scale  scale.Scale
		root   model.Pitch
		bass   model.Pitch
	}{
		{model.Chord2, scale.MinorSeventhDiminished, 2, 26},
		{model.Chord3, scale.MinorSeventhDiminished, 4, 28},
		{model.Chord4, scale.MajorSixthDiminished, 5, 29},
		{model.Chord5, scale.DominantSeventhDiminished, 7, 31},
		{model.Chord6, scale.MinorSeventhDiminished, 9, 33},
		{model.Chord7, scale.MinorSeventhFlatFiveDiminished, 11, 35},
		{model.Chord8, scale.MajorSixthDiminished, 0, 36},
	}
	for _, c := range cases {
		t.Run(c.button.String(), func(t *testing.T) {
			s := newCMajor()
			s.Press(c.button)
			assert := assert.New(t)
			assert.Equal(c.button.Numeral(), s.ChordNumeral)
			assert.Equal(c.scale, s.Scale)
			assert.Equal(c.root, s.ScaleRoot)
			assert.Equal(c.bass, s.BassNote)
			assert.Equal(c.button == model.Chord8, s.EightChord)
			assert.True(s.OnChordLock)
		})
	}
}

func TestRepeatGuard(t *testing.T) {
	s := newCMajor()
	s.Press(model.Chord4)
	s.Press(model.FamilyUp)
	s.Press(model.Chord2)
	before := s.Clone()

	s.Press(model.Chord2)

	assert := assert.New(t)
	assert.Equal(before.Scale, s.Scale)
	assert.Equal(before.ScaleRoot, s.ScaleRoot)
	assert.Equal(before.ChordNumeral, s.ChordNumeral)
	assert.Equal(before.BassNote, s.BassNote)
	assert.Equal(before.LastButton, s.LastButton)
	assert.Equal(before.FamilyUp, s.FamilyUp)
	assert.Equal(before.Alternate, s.Alternate)
	// the per-press lock reset still happens, so a second tap plays freely
	assert.False(s.OnChordLock)
	assert.False(s.OffChordLock)
}

func TestRepeatGuardKeepsActiveModifiers(t *testing.T) {
	s := newCMajor()
	s.Press(model.Chord1)
	s.Press(model.Alternate)
	s.Press(model.Alternate)

	assert := assert.New(t)
	assert.True(s.Alternate)
	assert.Equal(scale.MajorSixthDiminishedFromFifth, s.Scale)
	assert.Equal(model.Pitch(2), s.ScaleRoot)
	assert.True(s.OnChordLock)
}

func TestLocksAreExclusiveAndLastOnePress(t *testing.T) {
	s := newCMajor()
	s.Press(model.Chord1)
	s.Press(model.OffLock)

	assert := assert.New(t)
	assert.True(s.OffChordLock)
	assert.False(s.OnChordLock)

	s.Press(model.OnLock)
	assert.True(s.OnChordLock)
	assert.False(s.OffChordLock)

	s.Press(model.Chord5)
	assert.True(s.OnChordLock)
	assert.False(s.OffChordLock)
}

func TestFamilyMovesAreExclusive(t *testing.T) {
	s := newCMajor()
	s.Press(model.Chord1)

	s.Press(model.FamilyUp)
	assert := assert.New(t)
	assert.True(s.FamilyUp)
	assert.Equal(scale.MinorSeventhDiminished, s.Scale)
	assert.Equal(model.Pitch(0), s.ScaleRoot)

	s.Press(model.FamilyDown)
	assert.False(s.FamilyUp)
	assert.True(s.FamilyDown)
	// up was undone before moving down from the default
	assert.Equal(scale.MajorSixthDiminishedFromThird, s.Scale)
	assert.Equal(model.Pitch(1), s.ScaleRoot)

	s.Press(model.FamilyAcross)
	assert.False(s.FamilyDown)
	assert.True(s.FamilyAcross)
	assert.Equal(scale.MajorSixthDiminishedFromFifth, s.Scale)
	assert.Equal(model.Pitch(1), s.ScaleRoot)

	dir, ok := s.Family()
	assert.True(ok)
	assert.Equal(scale.Across, dir)
}

func TestPressingActiveFamilyAgainDoesNotMoveTwice(t *testing.T) {
	s := newCMajor()
	s.Press(model.Chord1)
	s.Press(model.FamilyUp)
	s.Press(model.FamilyUp)

	assert := assert.New(t)
	assert.True(s.FamilyUp)
	assert.Equal(scale.MinorSeventhDiminished, s.Scale)
}

func TestOnLockCancelsModifiers(t *testing.T) {
	cases := []model.Button{model.FamilyUp, model.FamilyDown, model.FamilyAcross, model.Alternate}
	for _, modifier := range cases {
		t.Run(modifier.String(), func(t *testing.T) {
			s := newCMajor()
			s.Press(model.Chord5)
			s.Press(modifier)
			s.Press(model.OnLock)

			assert := assert.New(t)
			assert.Equal(scale.DominantSeventhDiminished, s.Scale)
			assert.Equal(model.Pitch(7), s.ScaleRoot)
			assert.False(s.FamilyUp || s.FamilyDown || s.FamilyAcross)
			assert.False(s.Alternate || s.Dominant)
			assert.True(s.OnChordLock)
		})
	}
}

func TestNewChordCancelsModifiers(t *testing.T) {
	s := newCMajor()
	s.Press(model.Chord6)
	s.Press(model.Alternate)
	s.Press(model.Chord2)

	assert := assert.New(t)
	assert.False(s.Alternate)
	assert.Equal(scale.MinorSeventhDiminished, s.Scale)
	assert.Equal(model.Pitch(2), s.ScaleRoot)
	assert.Equal(2, s.ChordNumeral)
}

func TestReturningToTheSameChordAfterAModifierRestoresDefault(t *testing.T) {
	s := newCMajor()
	s.Press(model.Chord4)
	s.Press(model.FamilyAcross)
	s.Press(model.Chord4)

	assert := assert.New(t)
	assert.False(s.FamilyAcross)
	assert.Equal(scale.MajorSixthDiminished, s.Scale)
	assert.Equal(model.Pitch(5), s.ScaleRoot)
	assert.True(s.OnChordLock)
}

func TestAlternateCancelsFamily(t *testing.T) {
	s := newCMajor()
	s.Press(model.Chord1)
	s.Press(model.FamilyDown)
	s.Press(model.Alternate)

	assert := assert.New(t)
	assert.False(s.FamilyDown)
	assert.True(s.Alternate)
	assert.Equal(scale.MajorSixthDiminishedFromFifth, s.Scale)
	assert.Equal(model.Pitch(2), s.ScaleRoot)
}

func TestFamilyCancelsAlternate(t *testing.T) {
	s := newCMajor()
	s.Press(model.Chord1)
	s.Press(model.Alternate)
	s.Press(model.FamilyUp)

	assert := assert.New(t)
	assert.False(s.Alternate)
	assert.True(s.FamilyUp)
	// moved up from the default, not from the alternate
	assert.Equal(scale.MinorSeventhDiminished, s.Scale)
	assert.Equal(model.Pitch(0), s.ScaleRoot)
}

func TestDominantKeepsRoot(t *testing.T) {
	s := newCMajor()
	s.Press(model.Chord2)
	s.Press(model.Dominant)

	assert := assert.New(t)
	assert.Equal(scale.DominantSeventhDiminished, s.Scale)
	assert.Equal(model.Pitch(2), s.ScaleRoot)
	assert.False(s.Dominant)
	assert.True(s.OnChordLock)
}

func TestDominantCancelsFamilyFirst(t *testing.T) {
	s := newCMajor()
	s.Press(model.Chord1)
	s.Press(model.FamilyDown)
	s.Press(model.Dominant)

	assert := assert.New(t)
	assert.False(s.FamilyDown)
	assert.Equal(scale.DominantSeventhDiminished, s.Scale)
	assert.Equal(model.Pitch(0), s.ScaleRoot)
}

func TestUnknownButtonIsIgnored(t *testing.T) {
	s := newCMajor()
	s.Press(model.Chord3)
	s.Press(model.FamilyUp)
	before := s.Clone()

	s.Press(model.ButtonNone)
	s.Release(model.ButtonNone)

	assert.Equal(t, before, s.Clone())
}

func TestButtonsHeldNeverNegative(t *testing.T) {
	s := newCMajor()
	assert := assert.New(t)

	assert.Equal(0, s.Release(model.Chord1))
	assert.Equal(0, s.ButtonsHeld)

	s.Press(model.Chord1)
	s.Press(model.FamilyUp)
	assert.Equal(2, s.ButtonsHeld)
	assert.Equal(1, s.Release(model.FamilyUp))
	assert.Equal(0, s.Release(model.Chord1))
	assert.Equal(0, s.Release(model.Chord1))
	assert.Equal(0, s.ButtonsHeld)
}

func TestInvariantsHoldAcrossAPressSequence(t *testing.T) {
	sequence := []model.Button{
		model.Chord1, model.FamilyUp, model.Alternate, model.FamilyAcross, model.OffLock,
		model.Chord5, model.Dominant, model.FamilyDown, model.OnLock, model.Chord8,
		model.FamilyDown, model.FamilyUp, model.Chord7, model.Alternate, model.Chord7,
		model.FamilyAcross, model.FamilyAcross, model.Chord3, model.OffLock, model.Chord3,
	}
	s := newCMajor()
	for i, b := range sequence {
		s.Press(b)
		if i%3 == 0 {
			s.Release(b)
		}

		families := 0
		for _, f := range []bool{s.FamilyUp, s.FamilyDown, s.FamilyAcross} {
			if f {
				families++
			}
		}
		assert := assert.New(t)
		assert.LessOrEqual(families, 1, "after %v", b)
		assert.False(s.OnChordLock && s.OffChordLock, "after %v", b)
		assert.False(families > 0 && s.Alternate, "after %v", b)
		assert.GreaterOrEqual(s.ChordNumeral, 1)
		assert.LessOrEqual(s.ChordNumeral, 8)
		assert.GreaterOrEqual(s.ButtonsHeld, 0)
	}
}
