package midi

import (
	"fmt"
	"log/slog"
	"sync"

	"github.com/jsphweid/movements/constants"
	gomidi "gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/drivers"
)

const pads = 16

// PadHandler receives pad touches (pads numbered 1-16) and tilt updates.
type PadHandler interface {
	Pad(pad int, pressed bool)
	Tilt(x, y, z float64)
}

// padListener turns a pad controller into touch and tilt events. Notes from
// PadBase up are the pads; three controllers carry the axes.
type padListener struct {
	mu      sync.Mutex
	handler PadHandler
	logger  *slog.Logger
	axes    [3]float64
}

func ccToAxis(val uint8) float64 {
	return float64(val)/127*2 - 1
}

func (l *padListener) handle(msg gomidi.Message) {
	var ch, key, vel, cc, val uint8
	switch {
	case msg.GetNoteStart(&ch, &key, &vel):
		if pad, ok := padOf(key); ok {
			l.handler.Pad(pad, true)
		}
	case msg.GetNoteEnd(&ch, &key):
		if pad, ok := padOf(key); ok {
			l.handler.Pad(pad, false)
		}
	case msg.GetControlChange(&ch, &cc, &val):
		axis := -1
		switch cc {
		case constants.XAxisCC:
			axis = 0
		case constants.YAxisCC:
			axis = 1
		case constants.ZAxisCC:
			axis = 2
		}
		if axis < 0 {
			return
		}
		l.mu.Lock()
		l.axes[axis] = ccToAxis(val)
		x, y, z := l.axes[0], l.axes[1], l.axes[2]
		l.mu.Unlock()
		l.handler.Tilt(x, y, z)
	default:
		l.logger.Debug("midi: unhandled message", "msg", msg.String())
	}
}

func padOf(key uint8) (int, bool) {
	if key < constants.PadBase || key >= constants.PadBase+pads {
		return 0, false
	}
	return int(key-constants.PadBase) + 1, true
}

// Listen feeds messages from in to h until stop is called.
func Listen(in drivers.In, h PadHandler, logger *slog.Logger) (stop func(), err error) {
	if !in.IsOpen() {
		if err := in.Open(); err != nil {
			return nil, fmt.Errorf("open %q: %w", in.String(), err)
		}
	}
	l := &padListener{handler: h, logger: logger}
	stop, err = gomidi.ListenTo(in, func(msg gomidi.Message, _ int32) {
		l.handle(msg)
	}, gomidi.HandleError(func(listenErr error) {
		logger.Warn("midi: listener error", "device", in.String(), "err", listenErr)
	}))
	if err != nil {
		return nil, fmt.Errorf("listen %q: %w", in.String(), err)
	}
	logger.Info("midi: listening", "device", in.String())
	return stop, nil
}
