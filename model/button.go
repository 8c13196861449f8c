package model

// Button identifies a pad on the controller surface.
type Button int

const (
	ButtonNone Button = iota
	OnLock
	OffLock
	Alternate
	Dominant
	FamilyUp
	FamilyDown
	FamilyAcross
	Chord1
	Chord2
	Chord3
	Chord4
	Chord5
	Chord6
	Chord7
	Chord8
)

var buttonNames = map[Button]string{
	ButtonNone:   "none",
	OnLock:       "on-lock",
	OffLock:      "off-lock",
	Alternate:    "alternate",
	Dominant:     "dominant",
	FamilyUp:     "family-up",
	FamilyDown:   "family-down",
	FamilyAcross: "family-across",
	Chord1:       "I",
	Chord2:       "II",
	Chord3:       "III",
	Chord4:       "IV",
	Chord5:       "V",
	Chord6:       "VI",
	Chord7:       "VII",
	Chord8:       "VIII",
}

func (b Button) String() string {
	if name, ok := buttonNames[b]; ok {
		return name
	}
	return "unknown"
}

// Numeral returns 1-8 for chord buttons and 0 for everything else.
func (b Button) Numeral() int {
	if b >= Chord1 && b <= Chord8 {
		return int(b-Chord1) + 1
	}
	return 0
}

func (b Button) IsLock() bool {
	return b == OnLock || b == OffLock
}

// ChordButton returns the button selecting numeral n, or ButtonNone.
func ChordButton(n int) Button {
	if n < 1 || n > 8 {
		return ButtonNone
	}
	return Chord1 + Button(n-1)
}
