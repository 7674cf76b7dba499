package motif

import (
	"fmt"
	"strings"
)

// Volume is a MIDI velocity, 0 to 127.
type Volume uint8

const (
	Softest Volume = 0
	Loudest Volume = 127
)

// ClampVolume converts v into a Volume, saturating at both ends.
func ClampVolume(v int64) Volume {
	switch {
	case v < int64(Softest):
		return Softest
	case v > int64(Loudest):
		return Loudest
	}
	return Volume(v)
}

// StdLoudness is one of the standard dynamic markings.
type StdLoudness int

const (
	DynPPP StdLoudness = iota
	DynPP
	DynP
	DynMP
	DynSF
	DynMF
	DynF
	DynFF
	DynFFF
)

var stdLoudnessVolumes = [...]Volume{40, 50, 60, 70, 80, 90, 100, 110, 120}

var stdLoudnessNames = [...]string{"ppp", "pp", "p", "mp", "sf", "mf", "f", "ff", "fff"}

// Volume returns the velocity conventionally used for the marking.
func (l StdLoudness) Volume() Volume {
	return stdLoudnessVolumes[l]
}

func (l StdLoudness) String() string {
	return stdLoudnessNames[l]
}

func ParseStdLoudness(s string) (StdLoudness, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for l, n := range stdLoudnessNames {
		if n == s {
			return StdLoudness(l), nil
		}
	}
	return 0, fmt.Errorf("invalid loudness %q", s)
}
