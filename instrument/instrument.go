// Package instrument runs the harmonic state machine behind one event loop.
//
// Touches, tilt samples and the volume decay tick all arrive on channels and
// are handled one at a time by Run, so the harmonic state is never shared.
package instrument

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/bep/debounce"
	"github.com/google/uuid"
	"github.com/jsphweid/movements/chord"
	"github.com/jsphweid/movements/constants"
	"github.com/jsphweid/movements/input"
	"github.com/jsphweid/movements/model"
	"github.com/jsphweid/movements/scale"
	"github.com/jsphweid/movements/state"
)

var ErrStopped = errors.New("instrument stopped")

const motionQueue = 64

// Sound is whatever makes the noise.
type Sound interface {
	// PlayChord silences everything, restores full volume and plays c.
	PlayChord(c model.Chord) error
	ToggleBassNote(pitch model.Pitch, on bool) error
	// Decay lowers the volume one step and reports when it hit the floor.
	Decay(channel uint8) (silent bool, err error)
}

type Config struct {
	Key           scale.Key
	KeyRoot       model.Pitch
	DecayInterval time.Duration
}

// Result is what a touch did.
type Result struct {
	EventID string
	Button  model.Button
	Pressed bool
	Chord   model.Chord
}

// Snapshot is a copy of the instrument's state at one point of the loop.
type Snapshot struct {
	State    state.HarmonicState
	Decaying bool
	EventID  string
	Motion   *input.Sample
}

type touch struct {
	address string
	value   float64
	reply   chan Result
}

type Instrument struct {
	cfg    Config
	sound  Sound
	logger *slog.Logger

	touches   chan touch
	motions   chan input.Sample
	snapshots chan chan Snapshot

	// owned by Run
	st        *state.HarmonicState
	motion    *input.Sample
	decaying  bool
	lastEvent string
	logMotion func(func())
}

func New(cfg Config, sound Sound, logger *slog.Logger) *Instrument {
	if cfg.DecayInterval <= 0 {
		cfg.DecayInterval = constants.GetDecayInterval()
	}
	return &Instrument{
		cfg:       cfg,
		sound:     sound,
		logger:    logger,
		touches:   make(chan touch),
		motions:   make(chan input.Sample, motionQueue),
		snapshots: make(chan chan Snapshot),
		st:        state.New(cfg.Key, cfg.KeyRoot),
		logMotion: debounce.New(100 * time.Millisecond),
	}
}

// Run handles events until ctx is done.
func (in *Instrument) Run(ctx context.Context) error {
	var ticker *time.Ticker
	var tick <-chan time.Time
	defer func() {
		if ticker != nil {
			ticker.Stop()
		}
	}()

	for {
		switch {
		case in.decaying && ticker == nil:
			ticker = time.NewTicker(in.cfg.DecayInterval)
			tick = ticker.C
		case !in.decaying && ticker != nil:
			ticker.Stop()
			ticker, tick = nil, nil
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case t := <-in.touches:
			in.drainMotions()
			t.reply <- in.handleTouch(t.address, t.value)
		case s := <-in.motions:
			in.handleMotion(s)
		case req := <-in.snapshots:
			req <- in.snapshot()
		case <-tick:
			in.decayTick()
		}
	}
}

// Touch delivers a touch event and waits until it has been handled. value
// 0 is a release, anything else a press.
func (in *Instrument) Touch(ctx context.Context, address string, value float64) (Result, error) {
	t := touch{address: address, value: value, reply: make(chan Result, 1)}
	select {
	case in.touches <- t:
	case <-ctx.Done():
		return Result{}, ErrStopped
	}
	select {
	case res := <-t.reply:
		return res, nil
	case <-ctx.Done():
		return Result{}, ErrStopped
	}
}

// Motion queues a tilt sample. It never blocks; when the loop is behind, the
// oldest queued sample is dropped to make room.
func (in *Instrument) Motion(x, y, z float64) {
	s := input.Sample{X: x, Y: y, Z: z}
	for {
		select {
		case in.motions <- s:
			return
		default:
		}
		select {
		case <-in.motions:
			in.logger.Debug("motion: dropped oldest sample")
		default:
		}
	}
}

func (in *Instrument) Snapshot(ctx context.Context) (Snapshot, error) {
	req := make(chan Snapshot, 1)
	select {
	case in.snapshots <- req:
	case <-ctx.Done():
		return Snapshot{}, ErrStopped
	}
	select {
	case s := <-req:
		return s, nil
	case <-ctx.Done():
		return Snapshot{}, ErrStopped
	}
}

func (in *Instrument) snapshot() Snapshot {
	s := Snapshot{
		State:    in.st.Clone(),
		Decaying: in.decaying,
		EventID:  in.lastEvent,
	}
	if in.motion != nil {
		m := *in.motion
		s.Motion = &m
	}
	return s
}

// drainMotions applies samples queued before a touch so the touch sees the
// latest tilt.
func (in *Instrument) drainMotions() {
	for {
		select {
		case s := <-in.motions:
			in.handleMotion(s)
		default:
			return
		}
	}
}

func (in *Instrument) handleMotion(s input.Sample) {
	in.motion = &s
	in.logMotion(func() {
		in.logger.Debug("motion: sample", "x", s.X, "y", s.Y, "z", s.Z)
	})
}

func (in *Instrument) handleTouch(address string, value float64) Result {
	b := ParseButton(address)
	if b == model.ButtonNone {
		in.logger.Debug("touch: unrecognized button", "address", address)
		return Result{}
	}
	if value == 0 {
		in.release(b)
		return Result{Button: b}
	}
	return in.press(b)
}

func (in *Instrument) release(b model.Button) {
	if held := in.st.Release(b); held > 0 {
		return
	}
	in.decaying = true
	if err := in.sound.ToggleBassNote(in.st.BassNote, false); err != nil {
		in.logger.Warn("touch: bass note off failed", "err", err)
	}
	in.logger.Debug("touch: all released", "button", b.String())
}

func (in *Instrument) press(b model.Button) Result {
	in.st.Press(b)
	in.decaying = false

	c := in.resolve()
	in.st.LastChord = c
	in.lastEvent = uuid.New().String()

	if err := in.sound.PlayChord(c); err != nil {
		in.logger.Warn("touch: play chord failed", "err", err)
	}
	if err := in.sound.ToggleBassNote(in.st.BassNote, true); err != nil {
		in.logger.Warn("touch: bass note on failed", "err", err)
	}
	in.logger.Info("touch: press",
		"event", in.lastEvent,
		"button", b.String(),
		"scale", in.st.Scale.String(),
		"root", in.st.ScaleRoot.Name(),
		"chord", chord.CreateChordKey(c),
	)
	return Result{
		EventID: in.lastEvent,
		Button:  b,
		Pressed: true,
		Chord:   append(model.Chord(nil), c...),
	}
}

// resolve turns the latest tilt sample into a chord, falling back to the
// last chord when there is nothing to map.
func (in *Instrument) resolve() model.Chord {
	if in.motion == nil {
		in.logger.Debug("touch: no motion yet, repeating last chord")
		return in.st.LastChord
	}
	m, err := input.Map(in.st, *in.motion)
	if err != nil {
		in.logger.Debug("touch: repeating last chord", "err", err)
		return in.st.LastChord
	}
	// the eight chord is the one chord an octave up
	if in.st.EightChord {
		m.Moving += 12
		m.Pivot += 12
	}
	in.st.PivotPitch = m.Pivot

	c, err := chord.Voice(in.st.Scale.Degrees(), in.st.ScaleRoot, in.st.PivotPitch, m.Moving)
	if err != nil {
		in.logger.Warn("touch: repeating last chord", "err", err)
		return in.st.LastChord
	}
	return c
}

func (in *Instrument) decayTick() {
	if in.st.ButtonsHeld > 0 {
		in.decaying = false
		return
	}
	silent, err := in.sound.Decay(constants.ChordChannel)
	if err != nil {
		in.logger.Warn("decay: failed", "err", err)
	}
	if silent {
		in.decaying = false
		in.logger.Debug("decay: silent")
	}
}
