package scale

import (
	"errors"
	"fmt"

	"github.com/jsphweid/movements/model"
	"github.com/jsphweid/movements/util"
)

var (
	ErrUnknownKey   = errors.New("unknown key")
	ErrUnknownScale = errors.New("unknown scale of chords")
)

// Key is a 7 note diatonic scale used to number the chords.
type Key [7]int

var (
	Major         = Key{0, 2, 4, 5, 7, 9, 11}
	NaturalMinor  = Key{0, 2, 3, 5, 7, 8, 10}
	HarmonicMinor = Key{0, 2, 3, 5, 7, 8, 11}
	Dorian        = Key{0, 2, 3, 5, 7, 9, 10}
)

var keys = map[string]Key{
	"major":          Major,
	"minor":          NaturalMinor,
	"harmonic-minor": HarmonicMinor,
	"dorian":         Dorian,
}

// KeyNames lists the known keys alphabetically.
func KeyNames() []string {
	return util.GetKeys(keys)
}

func KeyByName(name string) (Key, error) {
	k, ok := keys[name]
	if !ok {
		return Key{}, fmt.Errorf("%w: %q", ErrUnknownKey, name)
	}
	return k, nil
}

// Degree returns the pitch of the numeral's chord root relative to the key
// root. Numeral 8 is the tonic again.
func (k Key) Degree(numeral int) model.Pitch {
	if numeral == 8 {
		numeral = 1
	}
	return model.Pitch(k[numeral-1])
}
