package midi

import (
	"fmt"
	"strings"

	gomidi "gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/drivers"
)

func containsCI(s, sub string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(sub))
}

// FindOut returns the first output whose name contains name, or the first
// output at all when name is empty.
func FindOut(drv drivers.Driver, name string) (drivers.Out, error) {
	outs, err := drv.Outs()
	if err != nil {
		return nil, fmt.Errorf("list outputs: %w", err)
	}
	for _, out := range outs {
		if name == "" || containsCI(out.String(), name) {
			return out, nil
		}
	}
	return nil, fmt.Errorf("output %q not found", name)
}

// FindIn returns the first input whose name contains name.
func FindIn(drv drivers.Driver, name string) (drivers.In, error) {
	ins, err := drv.Ins()
	if err != nil {
		return nil, fmt.Errorf("list inputs: %w", err)
	}
	for _, in := range ins {
		if containsCI(in.String(), name) {
			return in, nil
		}
	}
	return nil, fmt.Errorf("input %q not found", name)
}

// PortNames lists the output and input names of drv.
func PortNames(drv drivers.Driver) (outs []string, ins []string, err error) {
	o, err := drv.Outs()
	if err != nil {
		return nil, nil, fmt.Errorf("list outputs: %w", err)
	}
	for _, out := range o {
		outs = append(outs, out.String())
	}
	i, err := drv.Ins()
	if err != nil {
		return nil, nil, fmt.Errorf("list inputs: %w", err)
	}
	for _, in := range i {
		ins = append(ins, in.String())
	}
	return outs, ins, nil
}

// OpenSender opens out and returns a Sender writing to it.
func OpenSender(out drivers.Out) (Sender, error) {
	send, err := gomidi.SendTo(out)
	if err != nil {
		return nil, fmt.Errorf("open %q: %w", out.String(), err)
	}
	return send, nil
}
