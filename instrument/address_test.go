package instrument

import (
	"testing"

	"github.com/jsphweid/movements/model"
	"github.com/stretchr/testify/assert"
)

func TestParseButton(t *testing.T) {
	cases := map[string]model.Button{
		"/7/push16": model.Chord1,
		"/7/push15": model.Chord5,
		"/7/push12": model.Chord2,
		"/7/push11": model.Chord6,
		"/7/push8":  model.Chord3,
		"/7/push7":  model.Chord7,
		"/7/push4":  model.Chord4,
		"/7/push3":  model.Chord8,
		"/7/push2":  model.Dominant,
		"/7/push5":  model.FamilyDown,
		"/7/push9":  model.FamilyAcross,
		"/7/push13": model.FamilyUp,
		"/7/push14": model.Alternate,
		"/7/push6":  model.OffLock,
		"/7/push10": model.OnLock,
		"/7/push1":  model.ButtonNone,
		"/7/push17": model.ButtonNone,
		"/accxyz":   model.ButtonNone,
		"7":         model.ButtonNone,
	}
	for address, want := range cases {
		assert.Equal(t, want, ParseButton(address), address)
	}
}

func TestPadAddressRoundTrip(t *testing.T) {
	for n := 1; n <= 16; n++ {
		assert.Equal(t, PadButton(n), ParseButton(PadAddress(n)), n)
	}
	assert.Equal(t, "/7/push16", PadAddress(16))
}

func TestEveryButtonHasAPad(t *testing.T) {
	seen := map[model.Button]bool{}
	for n := 1; n <= 16; n++ {
		seen[PadButton(n)] = true
	}
	assert.Len(t, seen, 16)
}
