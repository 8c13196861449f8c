package state

import (
	"github.com/jsphweid/movements/model"
	"github.com/jsphweid/movements/scale"
)

func directionOf(b model.Button) (scale.Direction, bool) {
	switch b {
	case model.FamilyUp:
		return scale.Up, true
	case model.FamilyDown:
		return scale.Down, true
	case model.FamilyAcross:
		return scale.Across, true
	}
	return noDirection, false
}

// Press runs the button state machine for a touch-down on b.
//
// Locks only last for one press. Modifiers cancel each other by undoing their
// moves, and pressing a new chord button cancels all of them. The first
// contact with a chord button always locks to its on chord; pressing the same
// chord button again leaves everything but the locks alone.
func (s *HarmonicState) Press(b model.Button) {
	if b == model.ButtonNone {
		return
	}
	s.ButtonsHeld++
	s.OnChordLock = false
	s.OffChordLock = false

	switch b {
	case model.OnLock:
		s.cancelFamilies(noDirection)
		s.cancelSubstitutions()
		s.OnChordLock = true
	case model.OffLock:
		s.OffChordLock = true
	case model.Alternate:
		s.OnChordLock = true
		s.cancelFamilies(noDirection)
		if !s.Alternate {
			s.Scale, s.ScaleRoot = scale.Alternate(s.ChordNumeral, s.Key, s.KeyRoot)
			s.Alternate = true
		}
	case model.Dominant:
		s.OnChordLock = true
		s.cancelFamilies(noDirection)
		s.cancelSubstitutions()
		s.Scale = scale.Dominant()
	case model.FamilyUp, model.FamilyDown, model.FamilyAcross:
		d, _ := directionOf(b)
		s.OnChordLock = true
		s.cancelFamilies(d)
		s.cancelSubstitutions()
		if f := s.familyFlag(d); !*f {
			s.move(d)
			*f = true
		}
	case s.LastButton:
		return
	default:
		s.cancelFamilies(noDirection)
		s.cancelSubstitutions()
	}

	if n := b.Numeral(); n > 0 {
		s.selectNumeral(n)
	}
	if !b.IsLock() && b != s.LastButton {
		s.OnChordLock = true
	}
	s.LastButton = b
}

// Release counts a touch-up and returns how many buttons are still held.
func (s *HarmonicState) Release(b model.Button) int {
	if b != model.ButtonNone && s.ButtonsHeld > 0 {
		s.ButtonsHeld--
	}
	return s.ButtonsHeld
}

func (s *HarmonicState) selectNumeral(n int) {
	s.ChordNumeral = n
	s.EightChord = n == 8
	s.BassNote = s.Key.Degree(n) + s.KeyRoot + 12*bassOctaves
	if s.EightChord {
		s.BassNote += 12
	}
	s.applyDefault()
}

// cancelFamilies undoes every active family move except keep.
func (s *HarmonicState) cancelFamilies(keep scale.Direction) {
	for _, d := range scale.Directions {
		if d == keep {
			continue
		}
		if f := s.familyFlag(d); *f {
			s.move(d.Inverse())
			*f = false
		}
	}
}

// cancelSubstitutions reverts an alternate or dominant scale to the numeral's
// default.
func (s *HarmonicState) cancelSubstitutions() {
	if s.Alternate || s.Dominant {
		s.applyDefault()
		s.Alternate = false
		s.Dominant = false
	}
}
