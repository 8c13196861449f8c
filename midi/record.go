package midi

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/jsphweid/movements/constants"
	"github.com/jsphweid/movements/model"
	gomidi "gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"
)

const (
	recordingResolution = smf.MetricTicks(960)
	recordingTempo      = 120.0
)

// Recorder keeps every message sent through it so a session can be written
// out as a standard MIDI file.
type Recorder struct {
	mu    sync.Mutex
	track smf.Track
	last  time.Time
	now   func() time.Time
}

func NewRecorder() *Recorder {
	r := &Recorder{now: time.Now}
	r.track.Add(0, smf.MetaTempo(recordingTempo))
	return r
}

func (r *Recorder) add(msg gomidi.Message) {
	r.mu.Lock()
	defer r.mu.Unlock()
	t := r.now()
	var delta uint32
	if !r.last.IsZero() {
		delta = recordingResolution.Ticks(recordingTempo, t.Sub(r.last))
	}
	r.last = t
	r.track.Add(delta, msg)
}

// Wrap returns a Sender that records msg before handing it to send.
func (r *Recorder) Wrap(send Sender) Sender {
	return func(msg gomidi.Message) error {
		r.add(msg)
		return send(msg)
	}
}

func (r *Recorder) WriteFile(path string) error {
	r.mu.Lock()
	track := append(smf.Track(nil), r.track...)
	r.mu.Unlock()

	track.Close(0)
	s := smf.New()
	s.TimeFormat = recordingResolution
	if err := s.Add(track); err != nil {
		return fmt.Errorf("add track: %w", err)
	}
	return s.WriteFile(path)
}

func ReadMidiFile(filepath string) (s *smf.SMF, e error) {
	var blank smf.SMF

	// handle panics
	// https://github.com/gomidi/midi/issues/20
	defer func() {
		if r, ok := recover().(string); ok {
			e = errors.New(r)
		}
	}()

	dat, err := os.ReadFile(filepath)
	if err != nil {
		return &blank, fmt.Errorf("error reading midi file: %w", err)
	}
	res, err := smf.ReadFrom(bytes.NewReader(dat))
	if err != nil {
		return &blank, fmt.Errorf("error parsing midi file: %w", err)
	}
	return res, nil
}

// RecordedChords splits the chord channel of a recording into the chords that
// were played. Every chord starts with an all notes off.
func RecordedChords(s *smf.SMF) []model.Chord {
	var chords []model.Chord
	var current model.Chord
	flush := func() {
		if len(current) > 0 {
			chords = append(chords, current)
		}
		current = nil
	}
	for _, track := range s.Tracks {
		for _, ev := range track {
			msg := gomidi.Message(ev.Message)
			var ch, key, vel, cc, val uint8
			switch {
			case msg.GetControlChange(&ch, &cc, &val):
				if ch == constants.ChordChannel && cc == allNotesOffCC {
					flush()
				}
			case msg.GetNoteStart(&ch, &key, &vel):
				if ch == constants.ChordChannel {
					current = append(current, model.Pitch(key))
				}
			}
		}
	}
	flush()
	return chords
}
