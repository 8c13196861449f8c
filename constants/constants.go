package constants

import (
	"os"
	"strconv"
	"time"
)

func GetKeyName() string {
	if name := os.Getenv("MOVEMENTS_KEY"); name != "" {
		return name
	}
	return "major"
}

// GetKeyRoot is the pitch class of the home key, 0 = C.
func GetKeyRoot() int {
	root, err := strconv.Atoi(os.Getenv("MOVEMENTS_KEY_ROOT"))
	if err != nil || root < 0 || root > 11 {
		return 0
	}
	return root
}

// GetMidiOut names the output port; empty picks the first one.
func GetMidiOut() string {
	return os.Getenv("MOVEMENTS_MIDI_OUT")
}

// GetMidiIn names the pad controller input port; empty disables it.
func GetMidiIn() string {
	return os.Getenv("MOVEMENTS_MIDI_IN")
}

func GetHTTPAddr() string {
	if addr := os.Getenv("MOVEMENTS_HTTP_ADDR"); addr != "" {
		return addr
	}
	return ":8080"
}

func GetDecayInterval() time.Duration {
	d, err := time.ParseDuration(os.Getenv("MOVEMENTS_DECAY_INTERVAL"))
	if err != nil || d <= 0 {
		return time.Millisecond
	}
	return d
}

const (
	ChordChannel  = 0
	BassChannel   = 1
	ChordVelocity = 127
	BassVelocity  = 100

	MaxVolume = 127
	// volume lost per decay tick
	DecayStep = 3
)

// Pad controllers send notes PadBase..PadBase+15 for pads 1-16 and the tilt
// axes on these controllers.
const (
	PadBase = 36
	XAxisCC = 1
	YAxisCC = 2
	ZAxisCC = 3
)

const TouchAddressPrefix = "/7/push"
