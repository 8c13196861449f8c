package midi

import (
	"log/slog"

	"github.com/jsphweid/movements/constants"
	"github.com/jsphweid/movements/model"
	gomidi "gitlab.com/gomidi/midi/v2"
)

const (
	volumeCC      = 7
	allNotesOffCC = 123
)

// Sender delivers one message to an output port.
type Sender func(msg gomidi.Message) error

// Player is the sound layer: a chord channel, a bass channel and a volume
// that decays between touches.
type Player struct {
	send   Sender
	logger *slog.Logger
	volume [16]uint8
}

func NewPlayer(send Sender, logger *slog.Logger) *Player {
	return &Player{send: send, logger: logger}
}

func (p *Player) Volume(channel uint8) uint8 {
	return p.volume[channel&0x0f]
}

func (p *Player) sendAll(msgs ...gomidi.Message) error {
	var first error
	for _, msg := range msgs {
		if err := p.send(msg); err != nil {
			p.logger.Warn("midi: send failed", "msg", msg.String(), "err", err)
			if first == nil {
				first = err
			}
		}
	}
	return first
}

func (p *Player) setVolume(channel, volume uint8) error {
	p.volume[channel&0x0f] = volume
	return p.sendAll(gomidi.ControlChange(channel, volumeCC, volume))
}

// AllNotesOff silences both channels.
func (p *Player) AllNotesOff() error {
	return p.sendAll(
		gomidi.ControlChange(constants.ChordChannel, allNotesOffCC, 0),
		gomidi.ControlChange(constants.BassChannel, allNotesOffCC, 0),
	)
}

func inRange(pitch model.Pitch) bool {
	return pitch >= 0 && pitch <= 127
}

// PlayChord silences whatever is sounding, restores full volume and plays c.
func (p *Player) PlayChord(c model.Chord) error {
	p.volume[constants.ChordChannel] = constants.MaxVolume
	msgs := []gomidi.Message{
		gomidi.ControlChange(constants.ChordChannel, allNotesOffCC, 0),
		gomidi.ControlChange(constants.BassChannel, allNotesOffCC, 0),
		gomidi.ControlChange(constants.ChordChannel, volumeCC, constants.MaxVolume),
	}
	for _, note := range c {
		if !inRange(note) {
			p.logger.Warn("midi: pitch out of range", "pitch", int(note))
			continue
		}
		msgs = append(msgs, gomidi.NoteOn(constants.ChordChannel, uint8(note), constants.ChordVelocity))
	}
	p.logger.Debug("midi: chord on", "notes", len(c))
	return p.sendAll(msgs...)
}

// ToggleBassNote starts or stops the bass note. Stopping sends a single note
// off, which is harmless if the note already stopped.
func (p *Player) ToggleBassNote(pitch model.Pitch, on bool) error {
	if !inRange(pitch) {
		p.logger.Warn("midi: bass pitch out of range", "pitch", int(pitch))
		return nil
	}
	if on {
		p.logger.Debug("midi: bass on", "pitch", pitch.Name())
		return p.sendAll(gomidi.NoteOn(constants.BassChannel, uint8(pitch), constants.BassVelocity))
	}
	p.logger.Debug("midi: bass off", "pitch", pitch.Name())
	return p.sendAll(gomidi.NoteOff(constants.BassChannel, uint8(pitch)))
}

// Decay turns the channel down one step. Once the volume reaches the floor
// everything is silenced and silent is true.
func (p *Player) Decay(channel uint8) (silent bool, err error) {
	next := int(p.Volume(channel)) - constants.DecayStep
	if next <= 0 {
		p.volume[channel&0x0f] = 0
		return true, p.AllNotesOff()
	}
	return false, p.setVolume(channel, uint8(next))
}
