package instrument

import (
	"fmt"
	"strconv"

	"github.com/jsphweid/movements/constants"
	"github.com/jsphweid/movements/model"
)

// padButtons is the TouchOSC layout, indexed by push number - 1. Push 1 is
// unassigned.
var padButtons = [16]model.Button{
	model.ButtonNone,
	model.Dominant,
	model.Chord8,
	model.Chord4,
	model.FamilyDown,
	model.OffLock,
	model.Chord7,
	model.Chord3,
	model.FamilyAcross,
	model.OnLock,
	model.Chord6,
	model.Chord2,
	model.FamilyUp,
	model.Alternate,
	model.Chord5,
	model.Chord1,
}

// PadButton returns the button on push pad n (1-16).
func PadButton(n int) model.Button {
	if n < 1 || n > len(padButtons) {
		return model.ButtonNone
	}
	return padButtons[n-1]
}

// PadAddress is the touch address of push pad n.
func PadAddress(n int) string {
	return fmt.Sprintf("%s%d", constants.TouchAddressPrefix, n)
}

// ParseButton identifies a button by the last two characters of its touch
// address: "/7/push16" is "16", "/7/push3" is "h3".
func ParseButton(address string) model.Button {
	if len(address) < 2 {
		return model.ButtonNone
	}
	suffix := address[len(address)-2:]
	if suffix[0] == 'h' {
		suffix = suffix[1:]
	}
	n, err := strconv.Atoi(suffix)
	if err != nil {
		return model.ButtonNone
	}
	return PadButton(n)
}
