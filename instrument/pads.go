package instrument

import "context"

// Pads adapts the instrument to a pad controller: pad n behaves like a touch
// on PadAddress(n) and tilt updates become motion samples.
type Pads struct {
	ctx  context.Context
	inst *Instrument
}

func (in *Instrument) Pads(ctx context.Context) *Pads {
	return &Pads{ctx: ctx, inst: in}
}

func (p *Pads) Pad(pad int, pressed bool) {
	value := 0.0
	if pressed {
		value = 1
	}
	if _, err := p.inst.Touch(p.ctx, PadAddress(pad), value); err != nil {
		p.inst.logger.Debug("pads: touch dropped", "pad", pad, "err", err)
	}
}

func (p *Pads) Tilt(x, y, z float64) {
	p.inst.Motion(x, y, z)
}
