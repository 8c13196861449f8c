package scale

import (
	"fmt"

	"github.com/jsphweid/movements/model"
)

// Direction is a family move. Up and Down travel by minor thirds, Across by a
// tritone.
type Direction int

const (
	Up Direction = iota
	Down
	Across
)

var Directions = [...]Direction{Up, Down, Across}

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Across:
		return "across"
	}
	return fmt.Sprintf("direction(%d)", int(d))
}

// Inverse is the move that undoes d.
func (d Direction) Inverse() Direction {
	switch d {
	case Up:
		return Down
	case Down:
		return Up
	}
	return Across
}

// Step is where a family move lands: the new scale and the semitone
// adjustment to the scale root that keeps the off chord in place.
type Step struct {
	Scale     Scale
	RootDelta model.Pitch
}

// transitions is indexed by Direction. The bass of the scale of chords cycles
// 1 - 3 - 5 - 6/7 for voice leading while the scale moves by minor thirds.
var transitions = map[Scale][3]Step{
	MajorSixthDiminished: {
		Up:     {MinorSeventhDiminished, 0},
		Down:   {MajorSixthDiminishedFromThird, 1},
		Across: {MajorSixthDiminishedFromFifth, 1},
	},
	MajorSixthDiminishedFromThird: {
		Up:     {MajorSixthDiminished, -1},
		Down:   {MajorSixthDiminishedFromFifth, 0},
		Across: {MinorSeventhDiminished, -1},
	},
	MajorSixthDiminishedFromFifth: {
		Up:     {MajorSixthDiminishedFromThird, 0},
		Down:   {MinorSeventhDiminished, -1},
		Across: {MajorSixthDiminished, -1},
	},
	MinorSeventhDiminished: {
		Up:     {MajorSixthDiminishedFromFifth, 1},
		Down:   {MajorSixthDiminished, 0},
		Across: {MajorSixthDiminishedFromThird, 1},
	},

	MinorSixthDiminished: {
		Up:     {MinorSeventhFlatFiveDiminished, 0},
		Down:   {MinorSixthDiminishedFromThird, 0},
		Across: {MinorSixthDiminishedFromFifth, 1},
	},
	MinorSixthDiminishedFromThird: {
		Up:     {MinorSixthDiminished, 0},
		Down:   {MinorSixthDiminishedFromFifth, 1},
		Across: {MinorSeventhFlatFiveDiminished, 0},
	},
	MinorSixthDiminishedFromFifth: {
		Up:     {MinorSixthDiminishedFromThird, -1},
		Down:   {MinorSeventhFlatFiveDiminished, -1},
		Across: {MinorSixthDiminished, -1},
	},
	MinorSeventhFlatFiveDiminished: {
		Up:     {MinorSixthDiminishedFromFifth, 1},
		Down:   {MinorSixthDiminished, 0},
		Across: {MinorSixthDiminishedFromThird, 0},
	},

	DominantSeventhDiminished: {
		Up:     {DominantSeventhDiminishedFromSeventh, 1},
		Down:   {DominantSeventhDiminishedFromThird, 1},
		Across: {DominantSeventhDiminishedFromFifth, 1},
	},
	DominantSeventhDiminishedFromThird: {
		Up:     {DominantSeventhDiminished, -1},
		Down:   {DominantSeventhDiminishedFromFifth, 0},
		Across: {DominantSeventhDiminishedFromSeventh, 0},
	},
	DominantSeventhDiminishedFromFifth: {
		Up:     {DominantSeventhDiminishedFromThird, 0},
		Down:   {DominantSeventhDiminishedFromSeventh, 0},
		Across: {DominantSeventhDiminished, -1},
	},
	DominantSeventhDiminishedFromSeventh: {
		Up:     {DominantSeventhDiminishedFromFifth, 0},
		Down:   {DominantSeventhDiminished, -1},
		Across: {DominantSeventhDiminishedFromThird, 0},
	},
}

// Move returns the step taken from s in direction d.
func Move(s Scale, d Direction) Step {
	return transitions[s][d]
}

// Apply moves the (scale, root) pair one family step in direction d.
func Apply(s Scale, root model.Pitch, d Direction) (Scale, model.Pitch) {
	step := Move(s, d)
	return step.Scale, root + step.RootDelta
}
