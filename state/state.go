// Package state holds the harmonic state of the instrument and the button
// state machine that mutates it.
package state

import (
	"github.com/jsphweid/movements/model"
	"github.com/jsphweid/movements/scale"
)

const (
	// octaves added to the key degree for the bass note
	bassOctaves = 2
	noDirection = scale.Direction(-1)
)

// HarmonicState is owned by a single goroutine; nothing in here is safe for
// concurrent use.
type HarmonicState struct {
	Key       scale.Key
	KeyRoot   model.Pitch
	Scale     scale.Scale
	ScaleRoot model.Pitch

	// PivotPitch is the note contrary motion expands around.
	PivotPitch model.Pitch
	BassNote   model.Pitch

	ChordNumeral int
	OnChordLock  bool
	OffChordLock bool
	Alternate    bool
	// Dominant is never set; the dominant conversion has no cancel.
	Dominant     bool
	FamilyUp     bool
	FamilyDown   bool
	FamilyAcross bool
	EightChord   bool

	LastButton  model.Button
	LastChord   model.Chord
	ButtonsHeld int
}

func New(key scale.Key, keyRoot model.Pitch) *HarmonicState {
	s := &HarmonicState{
		Key:          key,
		KeyRoot:      keyRoot,
		PivotPitch:   keyRoot + 60, // C4
		BassNote:     keyRoot + 12*bassOctaves,
		ChordNumeral: 1,
	}
	s.Scale, s.ScaleRoot = scale.Default(1, key, keyRoot)
	return s
}

// Clone returns a copy that shares nothing with s.
func (s *HarmonicState) Clone() HarmonicState {
	c := *s
	c.LastChord = append(model.Chord(nil), s.LastChord...)
	return c
}

func (s *HarmonicState) familyFlag(d scale.Direction) *bool {
	switch d {
	case scale.Up:
		return &s.FamilyUp
	case scale.Down:
		return &s.FamilyDown
	}
	return &s.FamilyAcross
}

// Family returns the active family move, if any.
func (s *HarmonicState) Family() (scale.Direction, bool) {
	for _, d := range scale.Directions {
		if *s.familyFlag(d) {
			return d, true
		}
	}
	return noDirection, false
}

func (s *HarmonicState) move(d scale.Direction) {
	s.Scale, s.ScaleRoot = scale.Apply(s.Scale, s.ScaleRoot, d)
}

func (s *HarmonicState) applyDefault() {
	s.Scale, s.ScaleRoot = scale.Default(s.ChordNumeral, s.Key, s.KeyRoot)
}
