// Package scale holds the 8-note "scales of chords" and the moves between them.
//
// Every scale of chords alternates an "on" chord (even degrees) with a
// diminished seventh "off" chord (odd degrees). Scales whose off chords match
// once rooted are family.
package scale

import (
	"fmt"

	"golang.org/x/exp/slices"
)

type Family int

const (
	MajorSixth Family = iota
	MinorSixth
	DominantSeventh
)

func (f Family) String() string {
	switch f {
	case MajorSixth:
		return "major-sixth"
	case MinorSixth:
		return "minor-sixth"
	case DominantSeventh:
		return "dominant-seventh"
	}
	return fmt.Sprintf("family(%d)", int(f))
}

// Rotation is the chord tone a family member starts from.
type Rotation int

const (
	Root Rotation = iota
	Third
	Fifth
	Seventh
)

func (r Rotation) String() string {
	switch r {
	case Root:
		return "root"
	case Third:
		return "third"
	case Fifth:
		return "fifth"
	case Seventh:
		return "seventh"
	}
	return fmt.Sprintf("rotation(%d)", int(r))
}

// Degrees are the pitch classes of a scale of chords relative to its root.
type Degrees [8]int

// Index returns the scale degree of a root-relative pitch class, or -1.
func (d Degrees) Index(pc int) int {
	return slices.Index(d[:], pc)
}

type Scale int

const (
	MajorSixthDiminished Scale = iota
	MajorSixthDiminishedFromThird
	MajorSixthDiminishedFromFifth
	MinorSeventhDiminished
	MinorSixthDiminished
	MinorSixthDiminishedFromThird
	MinorSixthDiminishedFromFifth
	MinorSeventhFlatFiveDiminished
	DominantSeventhDiminished
	DominantSeventhDiminishedFromThird
	DominantSeventhDiminishedFromFifth
	DominantSeventhDiminishedFromSeventh
)

type entry struct {
	name     string
	family   Family
	rotation Rotation
	degrees  Degrees
}

var catalog = [...]entry{
	MajorSixthDiminished:          {"major-sixth-diminished", MajorSixth, Root, Degrees{0, 2, 4, 5, 7, 8, 9, 11}},
	MajorSixthDiminishedFromThird: {"major-sixth-diminished-from-third", MajorSixth, Third, Degrees{0, 1, 3, 4, 5, 7, 8, 10}},
	MajorSixthDiminishedFromFifth: {"major-sixth-diminished-from-fifth", MajorSixth, Fifth, Degrees{0, 1, 2, 4, 5, 7, 9, 10}},
	// the major sixth diminished scale started from its sixth
	MinorSeventhDiminished: {"minor-seventh-diminished", MajorSixth, Seventh, Degrees{0, 2, 3, 5, 7, 8, 10, 11}},

	MinorSixthDiminished:          {"minor-sixth-diminished", MinorSixth, Root, Degrees{0, 2, 3, 5, 7, 8, 9, 11}},
	MinorSixthDiminishedFromThird: {"minor-sixth-diminished-from-third", MinorSixth, Third, Degrees{0, 2, 4, 5, 6, 8, 9, 11}},
	MinorSixthDiminishedFromFifth: {"minor-sixth-diminished-from-fifth", MinorSixth, Fifth, Degrees{0, 1, 2, 4, 5, 7, 8, 10}},
	// the minor sixth diminished scale started from its sixth
	MinorSeventhFlatFiveDiminished: {"minor-seventh-flat-five-diminished", MinorSixth, Seventh, Degrees{0, 2, 3, 5, 6, 8, 10, 11}},

	DominantSeventhDiminished:            {"dominant-seventh-diminished", DominantSeventh, Root, Degrees{0, 2, 4, 5, 7, 8, 10, 11}},
	DominantSeventhDiminishedFromThird:   {"dominant-seventh-diminished-from-third", DominantSeventh, Third, Degrees{0, 1, 3, 4, 6, 7, 8, 10}},
	DominantSeventhDiminishedFromFifth:   {"dominant-seventh-diminished-from-fifth", DominantSeventh, Fifth, Degrees{0, 1, 3, 4, 5, 7, 9, 10}},
	DominantSeventhDiminishedFromSeventh: {"dominant-seventh-diminished-from-seventh", DominantSeventh, Seventh, Degrees{0, 1, 2, 4, 6, 7, 9, 10}},
}

// All lists the catalog in declaration order.
func All() []Scale {
	res := make([]Scale, len(catalog))
	for i := range catalog {
		res[i] = Scale(i)
	}
	return res
}

// Of returns the family member starting on rotation r.
func Of(f Family, r Rotation) Scale {
	return Scale(int(f)*4 + int(r))
}

func (s Scale) Degrees() Degrees { return catalog[s].degrees }
func (s Scale) Family() Family   { return catalog[s].family }
func (s Scale) Rotation() Rotation {
	return catalog[s].rotation
}

func (s Scale) String() string {
	if s < 0 || int(s) >= len(catalog) {
		return fmt.Sprintf("scale(%d)", int(s))
	}
	return catalog[s].name
}

// ByName looks a scale up by its catalog name.
func ByName(name string) (Scale, error) {
	for i, e := range catalog {
		if e.name == name {
			return Scale(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownScale, name)
}

// OffChord returns the sorted pitch classes of the diminished seventh shared by
// the family, with the scale rooted on root.
func (s Scale) OffChord(root int) [4]int {
	d := s.Degrees()
	var res [4]int
	for i := range res {
		res[i] = ((d[2*i+1]+root)%12 + 12) % 12
	}
	slices.Sort(res[:])
	return res
}
