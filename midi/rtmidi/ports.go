// Package rtmidi opens MIDI output ports through the RtMidi driver. Without
// cgo the driver is unavailable and opening a port always fails.
package rtmidi

import (
	"errors"
	"fmt"
	"strings"

	"gitlab.com/gomidi/midi/v2/drivers"
)

var (
	ErrNoDriver = errors.New("no MIDI driver available")
	ErrNoOutput = errors.New("no MIDI output found")
)

// throughPort names the loopback port ALSA always provides; it is never
// picked by default.
const throughPort = "Midi Through"

// SelectPort picks a port by name. A non-empty prefix picks the first port
// whose name starts with it. Otherwise the only port is picked, or the first
// one that is not a loopback port.
func SelectPort(names []string, prefix string) (int, error) {
	if prefix != "" {
		for i, n := range names {
			if strings.HasPrefix(n, prefix) {
				return i, nil
			}
		}
		return -1, fmt.Errorf("no MIDI output starting with %q: %w", prefix, ErrNoOutput)
	}
	if len(names) == 1 {
		return 0, nil
	}
	for i, n := range names {
		if !strings.Contains(n, throughPort) {
			return i, nil
		}
	}
	return -1, ErrNoOutput
}

func portNames(outs []drivers.Out) []string {
	ret := make([]string, len(outs))
	for i, o := range outs {
		ret[i] = o.String()
	}
	return ret
}
