package model

import "fmt"

// Pitch is an absolute note number, 60 being middle C.
type Pitch int

// PitchClass is a pitch reduced to 0-11.
type PitchClass int

// Chord is an ascending list of at most 4 pitches.
type Chord = []Pitch

var noteNames = [12]string{"C", "C#", "D", "D#", "E", "F", "F#", "G", "G#", "A", "A#", "B"}

func (p Pitch) Class() PitchClass {
	return PitchClass(((int(p) % 12) + 12) % 12)
}

func (p Pitch) Name() string {
	if p < 0 {
		return fmt.Sprintf("?%d", int(p))
	}
	return fmt.Sprintf("%s%d", noteNames[p.Class()], int(p)/12-1)
}

// Ints converts pitches for JSON output.
func Ints(c Chord) []int {
	res := make([]int, len(c))
	for i, p := range c {
		res[i] = int(p)
	}
	return res
}
