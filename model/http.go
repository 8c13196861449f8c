package model

type TouchRequestBody struct {
	Address string  `json:"address"`
	Value   float64 `json:"value"`
}

type MotionRequestBody struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

type TouchResponse struct {
	EventId  string `json:"event_id,omitempty"`
	Button   string `json:"button"`
	Pressed  bool   `json:"pressed"`
	Chord    []int  `json:"chord"`
	ChordKey string `json:"chord_key"`
}

type StateResponse struct {
	Key          [7]int      `json:"key"`
	KeyRoot      int         `json:"key_root"`
	Scale        string      `json:"scale"`
	ScaleRoot    int         `json:"scale_root"`
	PivotPitch   int         `json:"pivot_pitch"`
	BassNote     int         `json:"bass_note"`
	ChordNumeral int         `json:"chord_numeral"`
	OnChordLock  bool        `json:"on_chord_lock"`
	OffChordLock bool        `json:"off_chord_lock"`
	Alternate    bool        `json:"alternate"`
	Dominant     bool        `json:"dominant"`
	FamilyUp     bool        `json:"family_up"`
	FamilyDown   bool        `json:"family_down"`
	FamilyAcross bool        `json:"family_across"`
	EightChord   bool        `json:"eight_chord"`
	LastButton   string      `json:"last_button"`
	LastChord    []int       `json:"last_chord"`
	ButtonsHeld  int         `json:"buttons_held"`
	Decaying     bool        `json:"decaying"`
	EventId      string      `json:"event_id,omitempty"`
	Motion       *[3]float64 `json:"motion,omitempty"`
}

type ScaleResponse struct {
	Name     string `json:"name"`
	Family   string `json:"family"`
	Rotation string `json:"rotation"`
	Degrees  [8]int `json:"degrees"`
	// transitions by direction name, each with the root shift it applies
	Moves map[string]MoveResponse `json:"moves"`
}

type MoveResponse struct {
	Scale     string `json:"scale"`
	RootDelta int    `json:"root_delta"`
}

type ErrorResponse struct {
	Error string `json:"detail"`
}

