package scale

import "github.com/jsphweid/movements/model"

type numeralScale struct {
	scale Scale
	// degree of the key the scale is rooted on, 1-7
	degree int
	// keep the root out of 0-11 so it lands in the right octave
	unreduced bool
}

var defaults = map[int]numeralScale{
	1: {MajorSixthDiminished, 1, true},
	2: {MinorSeventhDiminished, 2, false},
	3: {MinorSeventhDiminished, 3, false},
	4: {MajorSixthDiminished, 4, false},
	5: {DominantSeventhDiminished, 5, true},
	6: {MinorSeventhDiminished, 6, false},
	7: {MinorSeventhFlatFiveDiminished, 7, false},
	8: {MajorSixthDiminished, 1, false},
}

// Ex: Cmaj6 -> Gmaj6/C, Dmin7 -> Cmaj6/D, G7 -> Dmin6/G, Bmin7b5 -> G7/B
var alternates = map[int]numeralScale{
	1: {MajorSixthDiminishedFromFifth, 2, true},
	2: {MajorSixthDiminishedFromThird, 3, true},
	3: {MajorSixthDiminishedFromThird, 3, true},
	4: {MajorSixthDiminishedFromFifth, 5, true},
	5: {MinorSixthDiminishedFromFifth, 6, true},
	6: {MajorSixthDiminishedFromThird, 7, true},
	7: {DominantSeventhDiminishedFromThird, 7, true},
	8: {MajorSixthDiminishedFromFifth, 2, true},
}

func (n numeralScale) resolve(key Key, keyRoot model.Pitch) (Scale, model.Pitch) {
	root := key.Degree(n.degree) + keyRoot
	if !n.unreduced {
		root %= 12
	}
	return n.scale, root
}

// Default is the scale of chords a numeral selects on first contact.
func Default(numeral int, key Key, keyRoot model.Pitch) (Scale, model.Pitch) {
	return defaults[numeral].resolve(key, keyRoot)
}

// Alternate substitutes a fixed scale of chords for the numeral.
func Alternate(numeral int, key Key, keyRoot model.Pitch) (Scale, model.Pitch) {
	return alternates[numeral].resolve(key, keyRoot)
}

// Dominant is the scale of chords any chord converts to; the root is kept.
func Dominant() Scale {
	return DominantSeventhDiminished
}
