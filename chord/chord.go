package chord

import (
	"errors"
	"fmt"
	"sort"

	"github.com/jsphweid/movements/model"
	"github.com/jsphweid/movements/scale"
	"github.com/jsphweid/movements/util"
)

var ErrPitchOutsideScale = errors.New("pitch outside scale of chords")

// MaxWidth is a double octave chord, wide enough for oblique motion.
const MaxWidth = 9

// dropped lists, per chord width, the 1-based construction steps left out so
// that at most 4 voices sound.
var dropped = map[int][]int{
	5: {3},             // octave chord
	6: {2, 5},          // drop 2
	7: {2, 3, 5},       // drop 3
	8: {2, 4, 5, 7},    // drop 2 and 4
	9: {2, 3, 5, 7, 8}, // double octave chord
}

func CreateChordKey(notes model.Chord) string {
	sorted := append(model.Chord(nil), notes...)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i] < sorted[j]
	})
	var res string
	for i, note := range sorted {
		res += fmt.Sprintf("%v", int(note))
		if i < len(sorted)-1 {
			res += "-"
		}
	}
	return res
}

// Width is how many construction steps a chord between two degrees takes.
func Width(pivotDegree, inputDegree, octaveSpread int) int {
	width := 1 + util.Mod(pivotDegree-inputDegree, 8) + 8*octaveSpread
	return util.Min(width, MaxWidth)
}

func isDropped(width, step int) bool {
	for _, d := range dropped[width] {
		if d == step {
			return true
		}
	}
	return false
}

func degreeOf(degrees scale.Degrees, root, pitch model.Pitch) (int, error) {
	pc := int((pitch - root).Class())
	degree := degrees.Index(pc)
	if degree < 0 {
		return 0, fmt.Errorf("%w: %v", ErrPitchOutsideScale, pitch.Name())
	}
	return degree, nil
}

// Voice fills in a contrary motion chord from input towards pivot by taking a
// note and skipping a note of the scale of chords. Voices are strictly
// ascending and there are never more than 4 of them.
func Voice(degrees scale.Degrees, root, pivot, input model.Pitch) (model.Chord, error) {
	if input == pivot {
		return model.Chord{input}, nil
	}

	inputDegree, err := degreeOf(degrees, root, input)
	if err != nil {
		return nil, err
	}
	pivotDegree, err := degreeOf(degrees, root, pivot)
	if err != nil {
		return nil, err
	}

	spread := int(input - pivot)
	if spread < 0 {
		spread = -spread
	}
	width := Width(pivotDegree, inputDegree, spread/12)

	// roots above 11 only place the scale for the mapper; voices are built
	// from the input octave
	root = util.Mod(root, 12)
	octave := input / 12
	previous := input
	res := make(model.Chord, 0, 4)
	for step := 1; step <= width; step++ {
		degree := (inputDegree + 2*(step-1)) % 8
		pitch := model.Pitch(degrees[degree]) + root + 12*(octave-1)
		if pitch < previous {
			octave++
			pitch += 12
		}
		previous = pitch

		if isDropped(width, step) {
			continue
		}
		res = append(res, pitch)
	}
	return res, nil
}
